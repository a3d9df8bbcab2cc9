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
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by all preference types.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// Hook functions are run when a preference value changes.
type Hook func(value Value) error

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value    atomic.Value // bool
	hookPre  Hook
	hookPost Hook
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value can be a bool or a string.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		switch strings.ToLower(v) {
		case "true", "on", "yes":
			nv = true
		case "false", "off", "no":
			nv = false
		default:
			return fmt.Errorf("prefs: cannot convert %q to prefs.Bool", v)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return store(&p.value, nv, p.hookPre, p.hookPost)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return false
	}
	return ov.(bool)
}

// SetHookPre sets the callback function to be called just before the value
// is updated.
func (p *Bool) SetHookPre(f Hook) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value
// has been updated.
func (p *Bool) SetHookPost(f Hook) {
	p.hookPost = f
}

// String implements a string type in the prefs system. A String can be
// restricted to a list of options.
type String struct {
	value    atomic.Value // string
	options  []string
	hookPre  Hook
	hookPost Hook
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// SetOptions restricts the values the String can take. Options are
// compared without regard to case and are stored in upper case.
func (p *String) SetOptions(options ...string) {
	p.options = p.options[:0]
	for _, o := range options {
		p.options = append(p.options, strings.ToUpper(o))
	}
}

// Set new value to String type. The new value is converted with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)

	if len(p.options) > 0 {
		nv = strings.ToUpper(nv)
		ok := false
		for _, o := range p.options {
			if o == nv {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("prefs: %q is not one of %s", nv, strings.Join(p.options, ", "))
		}
	}

	return store(&p.value, nv, p.hookPre, p.hookPost)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// SetHookPre sets the callback function to be called just before the value
// is updated.
func (p *String) SetHookPre(f Hook) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value
// has been updated.
func (p *String) SetHookPost(f Hook) {
	p.hookPost = f
}

// Int implements an integer type in the prefs system.
type Int struct {
	value    atomic.Value // int
	hookPre  Hook
	hookPost Hook
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return store(&p.value, nv, p.hookPre, p.hookPost)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return 0
	}
	return ov.(int)
}

// SetHookPre sets the callback function to be called just before the value
// is updated.
func (p *Int) SetHookPre(f Hook) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the value
// has been updated.
func (p *Int) SetHookPost(f Hook) {
	p.hookPost = f
}

func store(dest *atomic.Value, nv Value, pre Hook, post Hook) error {
	if pre != nil {
		if err := pre(nv); err != nil {
			return err
		}
	}

	dest.Store(nv)

	if post != nil {
		if err := post(nv); err != nil {
			return err
		}
	}

	return nil
}
