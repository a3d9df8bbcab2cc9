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

package memorymap

import (
	"fmt"
	"sort"
	"strings"
)

// Summary returns a multiline string listing the owners of every address
// range in the bank. Useful for reference.
func (m *Map) Summary(bank uint8) string {
	bounds := map[uint32]bool{0x0000: true, 0x10000: true}
	for _, r := range m.Regions() {
		if bank < r.BankLo || bank > r.BankHi {
			continue
		}
		bounds[uint32(r.AddrLo)] = true
		bounds[uint32(r.AddrHi)+1] = true
	}

	edges := make([]uint32, 0, len(bounds))
	for b := range bounds {
		edges = append(edges, b)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })

	s := strings.Builder{}

	start := edges[0]
	owner := m.Owner(uint32(bank)<<16 | start)
	for _, e := range edges[1:] {
		if e == 0x10000 {
			break
		}
		o := m.Owner(uint32(bank)<<16 | e)
		if o != owner {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, e-1, owner))
			start = e
			owner = o
		}
	}
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, 0xffff, owner))

	return s.String()
}
