// This file is part of Gopher16.
//
// Gopher16 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher16 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher16.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Collection groups preference values under string keys.
type Collection struct {
	entries map[string]Pref
}

// NewCollection is the preferred method of initialisation for the
// Collection type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]Pref),
	}
}

// Add preference value to collection. It is an error to add the same key
// twice.
func (c *Collection) Add(key string, p Pref) error {
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: key %s already in collection", key)
	}
	c.entries[key] = p
	return nil
}

// Set the value of the preference identified by key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("prefs: no preference with key %s", key)
	}
	return p.Set(v)
}

// ApplyCommandLine sets any preference in the collection that has a value
// in the top of the command line stack.
func (c *Collection) ApplyCommandLine() error {
	for key, p := range c.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

func (c *Collection) String() string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, c.entries[k]))
	}
	return s.String()
}
