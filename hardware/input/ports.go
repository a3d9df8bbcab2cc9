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

import (
	"fmt"
)

// Ports is the state of both controller ports.
type Ports struct {
	Devices [NumPorts]Device
	Buttons [NumPorts]uint16
	Mice    [NumPorts]MouseState

	// the strobe line written through bit 0 of $4016
	Strobe bool

	// serial shift registers. reports are left aligned
	Shift [NumPorts]uint32
}

// NewPorts is the preferred method of initialisation for the Ports type.
// A joypad is plugged into the first port.
func NewPorts() *Ports {
	p := &Ports{}
	p.Devices[Port1] = Joypad
	p.Devices[Port2] = Unplugged
	return p
}

// Snapshot creates a copy of the ports in their current state.
func (p *Ports) Snapshot() *Ports {
	n := *p
	return &n
}

// Reset the serial state of the ports. Devices stay plugged in.
func (p *Ports) Reset() {
	p.Strobe = false
	p.Shift = [NumPorts]uint32{}
	p.Buttons = [NumPorts]uint16{}
	p.Mice = [NumPorts]MouseState{}
}

func (p *Ports) String() string {
	return fmt.Sprintf("1: %s %04x  2: %s %04x", p.Devices[Port1], p.Buttons[Port1], p.Devices[Port2], p.Buttons[Port2])
}

func checkPort(port PortID) error {
	if port < Port1 || port >= NumPorts {
		return fmt.Errorf("input: no such port: %d", int(port))
	}
	return nil
}

// Plug a device into a port.
func (p *Ports) Plug(port PortID, dev Device) error {
	if err := checkPort(port); err != nil {
		return err
	}
	p.Devices[port] = dev
	p.Buttons[port] = 0
	p.Mice[port] = MouseState{}
	return nil
}

// SetJoypad sets the complete button state of a joypad.
func (p *Ports) SetJoypad(port PortID, buttons uint16) error {
	if err := checkPort(port); err != nil {
		return err
	}
	p.Buttons[port] = buttons & 0xfff0
	return nil
}

// SetButton presses or releases a single joypad button.
func (p *Ports) SetButton(port PortID, b Button, pressed bool) error {
	if err := checkPort(port); err != nil {
		return err
	}
	if pressed {
		p.Buttons[port] |= uint16(b)
	} else {
		p.Buttons[port] &^= uint16(b)
	}
	return nil
}

// MoveMouse adds movement to a mouse and sets its button state.
func (p *Ports) MoveMouse(port PortID, dx int, dy int, left bool, right bool) error {
	if err := checkPort(port); err != nil {
		return err
	}
	p.Mice[port].DX += dx
	p.Mice[port].DY += dy
	p.Mice[port].Left = left
	p.Mice[port].Right = right
	return nil
}

func (p *Ports) report(port PortID) uint32 {
	switch p.Devices[port] {
	case Joypad:
		return uint32(p.Buttons[port])<<16 | 0xffff
	case Mouse:
		return p.Mice[port].report()
	}
	return 0
}

func (p *Ports) latch() {
	for i := Port1; i < NumPorts; i++ {
		p.Shift[i] = p.report(i)
	}
}

// Write is called when the CPU writes to $4016.
func (p *Ports) Write(data uint8) {
	strobe := data&0x01 == 0x01
	if strobe {
		p.latch()
	}
	p.Strobe = strobe
}

// Read is called when the CPU reads from $4016 (Port1) or $4017 (Port2).
func (p *Ports) Read(port PortID, openBus uint8) uint8 {
	var bit uint8
	if p.Devices[port] != Unplugged {
		if p.Strobe {
			p.latch()
		}
		bit = uint8(p.Shift[port] >> 31)
		if !p.Strobe {
			p.Shift[port] = p.Shift[port]<<1 | 0x01
		}
	}

	if port == Port1 {
		return openBus&0xfc | bit
	}
	return openBus&0xe0 | 0x1c | bit
}

// AutoRead performs the automatic joypad read. The first sixteen bits of
// each port are returned and consumed from the serial shift register. The
// third and fourth values are always zero because multitap adaptors are
// not supported.
func (p *Ports) AutoRead() [4]uint16 {
	p.latch()
	var data [4]uint16
	for i := Port1; i < NumPorts; i++ {
		data[i] = uint16(p.Shift[i] >> 16)
		if p.Devices[i] != Unplugged {
			p.Shift[i] = p.Shift[i]<<16 | 0xffff
		}
	}
	return data
}
