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

package input

import "fmt"

// PortID identifies a controller port.
type PortID int

// List of controller ports.
const (
	Port1 PortID = iota
	Port2
	NumPorts
)

func (p PortID) String() string {
	return fmt.Sprintf("Port%d", int(p)+1)
}

// Device is the kind of peripheral plugged into a port.
type Device string

// List of supported devices.
const (
	Unplugged Device = "None"
	Joypad    Device = "Joypad"
	Mouse     Device = "Mouse"
)

// ParseDevice converts a string to a Device. Matching is case sensitive.
func ParseDevice(s string) (Device, error) {
	switch Device(s) {
	case Unplugged, Joypad, Mouse:
		return Device(s), nil
	}
	return Unplugged, fmt.Errorf("input: unknown device: %s", s)
}

// Button is a bit in the joypad report. The report is shifted out most
// significant bit first.
type Button uint16

// List of joypad buttons.
const (
	ButtonB      Button = 1 << 15
	ButtonY      Button = 1 << 14
	ButtonSelect Button = 1 << 13
	ButtonStart  Button = 1 << 12
	ButtonUp     Button = 1 << 11
	ButtonDown   Button = 1 << 10
	ButtonLeft   Button = 1 << 9
	ButtonRight  Button = 1 << 8
	ButtonA      Button = 1 << 7
	ButtonX      Button = 1 << 6
	ButtonL      Button = 1 << 5
	ButtonR      Button = 1 << 4
)

// MouseState is the accumulated movement and button state of a mouse since
// the last time it was latched.
type MouseState struct {
	DX, DY int
	Left   bool
	Right  bool
}

// the report is 32 bits, most significant bit first: eight zero bits, the
// right and left buttons, two bits of sensitivity, a four bit signature of
// 0001, then the Y and X movement as sign and magnitude bytes.
func (m *MouseState) report() uint32 {
	var r uint32
	if m.Right {
		r |= 1 << 23
	}
	if m.Left {
		r |= 1 << 22
	}
	r |= 1 << 16
	r |= uint32(signMagnitude(m.DY)) << 8
	r |= uint32(signMagnitude(m.DX))
	m.DX = 0
	m.DY = 0
	return r
}

func signMagnitude(d int) uint8 {
	var s uint8
	if d < 0 {
		s = 0x80
		d = -d
	}
	if d > 0x7f {
		d = 0x7f
	}
	return s | uint8(d)
}
