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

package cpuio_test

import (
	"testing"

	"github.com/jetsetilly/gopher16/hardware/cpuio"
	"github.com/jetsetilly/gopher16/test"
)

type mockLatch struct {
	n int
}

func (l *mockLatch) LatchCounters() {
	l.n++
}

type mockJoypads struct{}

func (mockJoypads) AutoRead() [4]uint16 {
	return [4]uint16{0x8000, 0x0010, 0, 0}
}

func TestMultiply(t *testing.T) {
	io := cpuio.NewCPUIO(nil, nil)
	io.Write(cpuio.WRMPYA, 0xff)
	io.Write(cpuio.WRMPYB, 0xff)
	test.ExpectEquality(t, io.Read(cpuio.RDMPYL, 0), uint8(0x01))
	test.ExpectEquality(t, io.Read(cpuio.RDMPYH, 0), uint8(0xfe))
}

func TestDivide(t *testing.T) {
	io := cpuio.NewCPUIO(nil, nil)
	io.Write(cpuio.WRDIVL, 0x39)
	io.Write(cpuio.WRDIVH, 0x30)
	io.Write(cpuio.WRDIVB, 0x10)
	test.ExpectEquality(t, io.Quotient, uint16(0x0303))
	test.ExpectEquality(t, io.Product, uint16(0x0009))

	// division by zero
	io.Write(cpuio.WRDIVB, 0x00)
	test.ExpectEquality(t, io.Read(cpuio.RDDIVL, 0), uint8(0xff))
	test.ExpectEquality(t, io.Read(cpuio.RDDIVH, 0), uint8(0xff))
	test.ExpectEquality(t, io.Product, uint16(0x3039))
}

func TestNMIEdge(t *testing.T) {
	io := cpuio.NewCPUIO(nil, nil)

	// vblank without NMI enabled
	io.StartVBlank()
	test.ExpectEquality(t, io.PollNMI(), false)

	// enabling NMI while the flag is set is a rising edge
	io.Write(cpuio.NMITIMEN, 0x80)
	test.ExpectEquality(t, io.PollNMI(), true)
	test.ExpectEquality(t, io.PollNMI(), false)

	// reading RDNMI clears the flag. the version is in the low bits
	test.ExpectEquality(t, io.Read(cpuio.RDNMI, 0x00), uint8(0x82))
	test.ExpectEquality(t, io.Read(cpuio.RDNMI, 0x00), uint8(0x02))

	// re-enabling with the flag clear is not an edge
	io.Write(cpuio.NMITIMEN, 0x00)
	io.Write(cpuio.NMITIMEN, 0x80)
	test.ExpectEquality(t, io.PollNMI(), false)

	io.EndVBlank()
	io.StartVBlank()
	test.ExpectEquality(t, io.PollNMI(), true)
}

func TestRDNMIOpenBus(t *testing.T) {
	io := cpuio.NewCPUIO(nil, nil)
	test.ExpectEquality(t, io.Read(cpuio.RDNMI, 0xff), uint8(0x72))
	test.ExpectEquality(t, io.Read(cpuio.NMITIMEN, 0xab), uint8(0xab))
}

func TestTimerIRQ(t *testing.T) {
	io := cpuio.NewCPUIO(nil, nil)
	io.Write(cpuio.HTIMEL, 0x20)
	io.Write(cpuio.HTIMEH, 0x00)
	io.Write(cpuio.NMITIMEN, 0x10)

	io.Dot(0x1f, 10)
	test.ExpectEquality(t, io.IRQ(), false)
	io.Dot(0x20, 10)
	test.ExpectEquality(t, io.IRQ(), true)

	// the flag is cleared by reading TIMEUP
	test.ExpectEquality(t, io.Read(cpuio.TIMEUP, 0x00), uint8(0x80))
	test.ExpectEquality(t, io.IRQ(), false)

	// V timer fires at the start of the line
	io.Write(cpuio.VTIMEL, 100)
	io.Write(cpuio.NMITIMEN, 0x20)
	io.Dot(5, 100)
	test.ExpectEquality(t, io.IRQ(), false)
	io.Dot(0, 100)
	test.ExpectEquality(t, io.IRQ(), true)

	// disabling both timers clears the flag
	io.Write(cpuio.NMITIMEN, 0x00)
	test.ExpectEquality(t, io.IRQ(), false)
}

func TestCounterLatch(t *testing.T) {
	l := &mockLatch{}
	io := cpuio.NewCPUIO(l, nil)
	io.Write(cpuio.WRIO, 0x7f)
	test.ExpectEquality(t, l.n, 1)
	io.Write(cpuio.WRIO, 0x00)
	test.ExpectEquality(t, l.n, 1)
	io.Write(cpuio.WRIO, 0x80)
	io.Write(cpuio.WRIO, 0x00)
	test.ExpectEquality(t, l.n, 2)
	test.ExpectEquality(t, io.Read(cpuio.RDIO, 0), uint8(0x00))
}

func TestAutoJoypad(t *testing.T) {
	io := cpuio.NewCPUIO(nil, mockJoypads{})
	io.Write(cpuio.NMITIMEN, 0x01)
	io.StartVBlank()
	test.ExpectEquality(t, io.Read(cpuio.HVBJOY, 0)&0x81, uint8(0x81))
	test.ExpectEquality(t, io.Read(cpuio.JOY1L+1, 0), uint8(0x80))
	test.ExpectEquality(t, io.Read(cpuio.JOY1L+2, 0), uint8(0x10))

	io.Advance(cpuio.AutoJoypadCycles - 1)
	test.ExpectEquality(t, io.Read(cpuio.HVBJOY, 0)&0x01, uint8(0x01))
	io.Advance(1)
	test.ExpectEquality(t, io.Read(cpuio.HVBJOY, 0)&0x01, uint8(0x00))
}
