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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware"
	"github.com/jetsetilly/gopher16/hardware/apu"
	"github.com/jetsetilly/gopher16/hardware/clocks"
	"github.com/jetsetilly/gopher16/hardware/coprocessor/faults"
	"github.com/jetsetilly/gopher16/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher16/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher16/test"
)

func newConsole(t *testing.T, syn cartridge.Synthetic) *hardware.Console {
	t.Helper()

	env, err := environment.NewEnvironment(environment.Label("test"), nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	c, err := hardware.NewConsole(env)
	test.DemandSuccess(t, err)

	err = c.AttachCartridge(cartridgeloader.NewLoaderFromData("test", syn.Image()))
	test.DemandSuccess(t, err)

	return c
}

// step until the program counter reaches the address
func runUntilPC(t *testing.T, c *hardware.Console, pc uint16) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if c.CPU.PC == pc {
			return
		}
		_, err := c.RunInstruction()
		test.DemandSuccess(t, err)
	}
	t.Fatalf("program counter never reached %04x", pc)
}

func TestStoreToWRAM(t *testing.T) {
	c := newConsole(t, cartridge.Synthetic{
		Program: []uint8{
			0xa9, 0x42, // LDA #$42
			0x8d, 0x10, 0x00, // STA $0010
			0x80, 0xfe, // BRA *
		},
	})

	test.ExpectEquality(t, c.CPU.PC, uint16(0x8000))

	n, err := c.RunInstruction()
	test.DemandSuccess(t, err)

	// two bytes from slow ROM
	test.ExpectEquality(t, n, 2*clocks.Slow)

	// the store is four slow cycles: opcode, two operand bytes and the write
	// to WRAM
	start := c.Clocks()
	n, err = c.RunInstruction()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 4*clocks.Slow)
	test.ExpectEquality(t, c.Clocks().Master-start.Master, uint64(4*clocks.Slow))
	test.ExpectEquality(t, c.Clocks().CPU-start.CPU, uint64(4))

	test.ExpectEquality(t, c.Mem.WRAM[0x10], uint8(0x42))

	// the first 8K of WRAM is mirrored in the system banks
	test.ExpectEquality(t, c.Read(0x7e0010), uint8(0x42))
	test.ExpectEquality(t, c.Read(0x800010), uint8(0x42))
}

func TestFastROM(t *testing.T) {
	c := newConsole(t, cartridge.Synthetic{
		FastROM: true,
		Program: []uint8{
			0xa9, 0x01, // LDA #$01
			0x8d, 0x0d, 0x42, // STA $420D
			0x5c, 0x0a, 0x80, 0x80, // JML $80800A
			0x00,       // padding
			0xea,       // NOP
			0x80, 0xfe, // BRA *
		},
	})

	runUntilPC(t, c, 0x800a)
	test.ExpectEquality(t, c.CPU.PB, uint8(0x80))

	// opcode fetch from fast ROM and one internal cycle
	n, err := c.RunInstruction()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, clocks.Fast+clocks.Internal)
}

func TestGeneralDMA(t *testing.T) {
	src := []uint8{
		0x10, 0x21, 0x32, 0x43, 0x54, 0x65, 0x76, 0x87,
		0x98, 0xa9, 0xba, 0xcb, 0xdc, 0xed, 0xfe, 0x0f,
	}

	program := func(vmain uint8, mode uint8) []uint8 {
		return []uint8{
			0xa9, vmain, // LDA #vmain
			0x8d, 0x15, 0x21, // STA VMAIN
			0x9c, 0x16, 0x21, // STZ VMADDL
			0x9c, 0x17, 0x21, // STZ VMADDH
			0xa9, mode, // LDA #mode
			0x8d, 0x00, 0x43, // STA DMAP0
			0xa9, 0x18, // LDA #$18
			0x8d, 0x01, 0x43, // STA BBAD0
			0xa9, 0x00, // LDA #$00
			0x8d, 0x02, 0x43, // STA A1T0L
			0xa9, 0x90, // LDA #$90
			0x8d, 0x03, 0x43, // STA A1T0H
			0x9c, 0x04, 0x43, // STZ A1B0
			0xa9, uint8(len(src)), // LDA #len
			0x8d, 0x05, 0x43, // STA DAS0L
			0x9c, 0x06, 0x43, // STZ DAS0H
			0xa9, 0x01, // LDA #$01
			0x8d, 0x0b, 0x42, // STA MDMAEN
			0x80, 0xfe, // BRA *
		}
	}

	// the STA MDMAEN instruction
	const start = 0x802c
	const staCost = 3*clocks.Slow + clocks.Fast
	const dmaCost = 8 + 8 + 16*8

	t.Run("one register", func(t *testing.T) {
		c := newConsole(t, cartridge.Synthetic{
			Program: program(0x00, 0x00),
			Data:    map[int][]uint8{0x1000: src},
		})

		runUntilPC(t, c, start)
		n, err := c.RunInstruction()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, n, staCost+dmaCost)

		// VMAIN increments after the low byte is written
		for i, v := range src {
			test.ExpectEquality(t, uint8(c.PPU.VRAM[i]), v)
		}
		test.ExpectEquality(t, c.PPU.VRAMAddress, uint16(len(src)))

		ch := c.DMA.Channels[0]
		test.ExpectEquality(t, ch.Count, uint16(0))
		test.ExpectEquality(t, ch.AAddress, uint16(0x9000+len(src)))
		test.ExpectEquality(t, c.DMA.GeneralPending(), false)
	})

	t.Run("two registers", func(t *testing.T) {
		c := newConsole(t, cartridge.Synthetic{
			Program: program(0x80, 0x01),
			Data:    map[int][]uint8{0x1000: src},
		})

		runUntilPC(t, c, start)
		n, err := c.RunInstruction()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, n, staCost+dmaCost)

		// low byte to 2118 and high byte to 2119
		for i := 0; i < len(src)/2; i++ {
			test.ExpectEquality(t, c.PPU.VRAM[i], uint16(src[i*2])|uint16(src[i*2+1])<<8)
		}
		test.ExpectEquality(t, c.DMA.Channels[0].Count, uint16(0))
	})
}

func TestNMIAtInstructionBoundary(t *testing.T) {
	c := newConsole(t, cartridge.Synthetic{
		Program: []uint8{
			0xa9, 0x80, // LDA #$80
			0x8d, 0x00, 0x42, // STA NMITIMEN
			0xea,       // NOP
			0x80, 0xfd, // BRA -3
		},
		Data: map[int][]uint8{
			0x100: {
				0xee, 0x00, 0x00, // INC $0000
				0x40, // RTI
			},
		},
		NMI: 0x8100,
	})

	var raised bool
	for i := 0; i < 100000 && !raised; i++ {
		_, err := c.RunInstruction()
		test.DemandSuccess(t, err)

		if c.CPUIO.NMIFlag {
			raised = true

			// the instruction during which vblank started completes normally.
			// the NMI is latched but not yet serviced
			test.ExpectEquality(t, c.CPU.LastResult.Interrupt, "")
			test.ExpectEquality(t, c.CPU.NMIPending, true)
			test.ExpectEquality(t, c.Mem.WRAM[0], uint8(0))
		}
	}
	test.DemandEquality(t, raised, true)

	_, err := c.RunInstruction()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.CPU.LastResult.Interrupt, "NMI")
	test.ExpectEquality(t, c.CPU.PC, uint16(0x8100))

	// the handler runs once for the edge
	runUntilPC(t, c, 0x8005)
	test.ExpectEquality(t, c.Mem.WRAM[0], uint8(1))
	for i := 0; i < 100; i++ {
		_, err := c.RunInstruction()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, c.Mem.WRAM[0], uint8(1))
}

func TestOpenBus(t *testing.T) {
	c := newConsole(t, cartridge.Synthetic{
		Program: []uint8{
			0xad, 0x00, 0x60, // LDA $6000
			0x80, 0xfe, // BRA *
		},
	})

	// the last value on the bus was the high byte of the operand
	_, err := c.RunInstruction()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.CPU.A.Lo(), uint8(0x60))

	c.Write(0x7e0000, 0x33)
	test.ExpectEquality(t, c.Read(0x006000), uint8(0x33))
	c.Write(0x7e0000, 0xcc)
	test.ExpectEquality(t, c.Read(0x006000), uint8(0xcc))

	// write-only registers also read as open bus
	c.Write(0x7e0000, 0x5a)
	test.ExpectEquality(t, c.Read(0x00420b), uint8(0x5a))
}

// a program that turns on the display and changes the background colour
// every frame. the program does not use the APU
var colourCycle = cartridge.Synthetic{
	Program: []uint8{
		0xa9, 0x0f, // LDA #$0F
		0x8d, 0x00, 0x21, // STA INIDISP
		0x9c, 0x21, 0x21, // loop: STZ CGADD
		0xee, 0x00, 0x00, // INC $0000
		0xad, 0x00, 0x00, // LDA $0000
		0x8d, 0x22, 0x21, // STA CGDATA
		0x8d, 0x22, 0x21, // STA CGDATA
		0x2c, 0x12, 0x42, // wait: BIT HVBJOY
		0x10, 0xfb, // BPL wait
		0x2c, 0x12, 0x42, // vbl: BIT HVBJOY
		0x30, 0xfb, // BMI vbl
		0x80, 0xe5, // BRA loop
	},
}

func TestRunFrame(t *testing.T) {
	c := newConsole(t, colourCycle)

	test.ExpectEquality(t, c.Frame() == nil, true)

	test.DemandSuccess(t, c.RunFrame())
	f := c.Frame()
	test.DemandEquality(t, f != nil, true)
	test.ExpectEquality(t, f.Width, 256)
	test.ExpectEquality(t, f.Height, 224)
	test.ExpectEquality(t, len(f.Pixels), 256*224)

	test.DemandSuccess(t, c.RunFrame())

	// one frame of NTSC audio
	n := len(c.Samples())
	test.ExpectApproximate(t, n, apu.SampleRate*357368/21477272, 0.01)

	// the counters of every clock domain have moved forward
	clk := c.Clocks()
	test.ExpectInequality(t, clk.Master, 0)
	test.ExpectInequality(t, clk.CPU, 0)
	test.ExpectEquality(t, clk.Dots, clk.Master/clocks.MasterPerDot)
	test.ExpectInequality(t, clk.APU, 0)

	frames := 0
	err := c.RunForFrameCount(3, func(frame int) (bool, error) {
		frames = frame
		return true, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 3)

	frames = 0
	err = c.Run(func() (bool, error) {
		frames++
		return frames < 2, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 2)
}

func runFrames(t *testing.T, c *hardware.Console, n int) ([][]uint16, [][]apu.Sample) {
	t.Helper()
	var frames [][]uint16
	var samples [][]apu.Sample
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, c.RunFrame())
		frames = append(frames, c.Frame().Pixels)
		samples = append(samples, c.Samples())
	}
	return frames, samples
}

func compareOutput(t *testing.T, af [][]uint16, as [][]apu.Sample, bf [][]uint16, bs [][]apu.Sample) {
	t.Helper()
	test.DemandEquality(t, len(af), len(bf))
	for i := range af {
		test.DemandEquality(t, len(af[i]), len(bf[i]))
		for j := range af[i] {
			if af[i][j] != bf[i][j] {
				t.Fatalf("frame %d differs at pixel %d", i, j)
			}
		}
		test.DemandEquality(t, len(as[i]), len(bs[i]))
		for j := range as[i] {
			if as[i][j] != bs[i][j] {
				t.Fatalf("audio of frame %d differs at sample %d", i, j)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := newConsole(t, colourCycle)
	b := newConsole(t, colourCycle)

	af, as := runFrames(t, a, 5)
	bf, bs := runFrames(t, b, 5)
	compareOutput(t, af, as, bf, bs)

	// the colour changes so the frames are not all the same
	test.ExpectInequality(t, af[1][0], af[2][0])
}

func TestSnapshot(t *testing.T) {
	c := newConsole(t, colourCycle)
	test.DemandSuccess(t, c.RunFrame())

	s := c.Snapshot()
	master := c.Timing.Master

	af, as := runFrames(t, c, 3)

	c.Plumb(s, false)
	test.ExpectEquality(t, c.Timing.Master, master)
	bf, bs := runFrames(t, c, 3)
	compareOutput(t, af, as, bf, bs)

	// the snapshot is not changed by plumbing it in and running
	test.ExpectEquality(t, s.Timing.Master, master)
}

func TestSnapshotMidFrame(t *testing.T) {
	c := newConsole(t, colourCycle)
	test.DemandSuccess(t, c.RunFrame())
	for i := 0; i < 2000; i++ {
		_, err := c.RunInstruction()
		test.DemandSuccess(t, err)
	}

	// samples produced so far this frame belong to the snapshot
	test.DemandSuccess(t, len(c.APU.Samples) > 0)
	s := c.Snapshot()
	pending := len(s.APU.Samples)
	test.ExpectEquality(t, pending, len(c.APU.Samples))

	af, as := runFrames(t, c, 2)
	test.ExpectEquality(t, len(s.APU.Samples), pending)

	c.Plumb(s, false)
	test.ExpectEquality(t, len(c.APU.Samples), pending)
	bf, bs := runFrames(t, c, 2)
	compareOutput(t, af, as, bf, bs)
}

func TestAPUPortWriteOrder(t *testing.T) {
	c := newConsole(t, colourCycle)

	// the IPL is waiting for $CC in port 0 after signalling $AA/$BB
	test.DemandSuccess(t, c.RunFrame())
	test.DemandEquality(t, c.APU.ReadPort(0), uint8(0xaa))

	// cycles owed from before the write run without seeing the new value
	cycles := c.APU.Cycles
	owed := c.APU.Credit + 200
	c.APU.AddCredit(200)
	c.Write(0x002140, 0xcc)
	test.ExpectSuccess(t, int64(c.APU.Cycles-cycles) >= owed)
	test.ExpectSuccess(t, c.APU.Credit <= 0)
	test.ExpectEquality(t, c.APU.StagedMask, uint8(0x01))
	test.ExpectInequality(t, c.APU.Input[0], uint8(0xcc))
	test.ExpectEquality(t, c.APU.ReadPort(0), uint8(0xaa))

	// the write is seen by cycles credited after it
	c.APU.AddCredit(200)
	c.APU.Catchup()
	test.ExpectEquality(t, c.APU.Input[0], uint8(0xcc))
	test.ExpectEquality(t, c.APU.ReadPort(0), uint8(0xcc))
}

type mockCoprocessor struct {
	data    [0x1000]uint8
	cycles  int
	resets  int
	failAdr uint32
}

var errMock = errors.New("mock fault")

func (m *mockCoprocessor) ID() string {
	return "mock"
}

func (m *mockCoprocessor) Read(address uint32) (uint8, error) {
	if address == m.failAdr {
		return 0, errMock
	}
	return m.data[address&0xfff], nil
}

func (m *mockCoprocessor) Write(address uint32, data uint8) error {
	if address == m.failAdr {
		return errMock
	}
	m.data[address&0xfff] = data
	return nil
}

func (m *mockCoprocessor) Advance(masterCycles int) error {
	m.cycles += masterCycles
	return nil
}

func (m *mockCoprocessor) Reset() {
	m.resets++
}

func TestCoprocessor(t *testing.T) {
	c := newConsole(t, cartridge.Synthetic{
		Program: []uint8{
			0xa9, 0x77, // LDA #$77
			0x8d, 0x01, 0x30, // STA $3001
			0xad, 0x00, 0x30, // LDA $3000
			0x80, 0xfe, // BRA *
		},
	})

	m := &mockCoprocessor{failAdr: 0x003000}
	err := c.AttachCoprocessor(m, memorymap.Region{BankLo: 0x00, BankHi: 0x3f, AddrLo: 0x3000, AddrHi: 0x3fff})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.resets, 1)

	// a region overlapping work RAM cannot be attached
	err = c.AttachCoprocessor(&mockCoprocessor{}, memorymap.Region{BankLo: 0x00, BankHi: 0x00, AddrLo: 0x0000, AddrHi: 0x0fff})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, memorymap.ErrOverlap), true)

	c.Reset()
	test.ExpectEquality(t, m.resets, 2)

	for i := 0; i < 3; i++ {
		_, err := c.RunInstruction()
		test.DemandSuccess(t, err)
	}

	test.ExpectEquality(t, m.data[1], uint8(0x77))
	test.ExpectEquality(t, m.cycles, int(c.Timing.Master))

	// the read fault returns open bus and is recorded
	test.ExpectEquality(t, c.CPU.A.Lo(), uint8(0x30))
	test.DemandEquality(t, len(c.Faults.Log), 1)
	test.ExpectEquality(t, c.Faults.Log[0].Category, faults.ReadFault)
	test.ExpectEquality(t, c.Faults.Log[0].Address, uint32(0x003000))

	// repeated faults are counted
	c.Read(0x003000)
	test.ExpectEquality(t, len(c.Faults.Log), 1)
	test.ExpectEquality(t, c.Faults.Log[0].Count, 2)

	c.Write(0x003000, 0x01)
	test.ExpectEquality(t, len(c.Faults.Log), 2)
	test.ExpectEquality(t, c.Faults.Log[1].Category, faults.WriteFault)
}

func TestRegion(t *testing.T) {
	c := newConsole(t, cartridge.Synthetic{Country: 2})
	test.ExpectEquality(t, c.Region, clocks.RegionPAL)
	test.ExpectEquality(t, c.PPU.Region, clocks.RegionPAL)

	c = newConsole(t, cartridge.Synthetic{Country: 1})
	test.ExpectEquality(t, c.Region, clocks.RegionNTSC)
}

func TestBadCartridge(t *testing.T) {
	env, err := environment.NewEnvironment(environment.Label("test"), nil)
	test.DemandSuccess(t, err)
	c, err := hardware.NewConsole(env)
	test.DemandSuccess(t, err)

	err = c.AttachCartridge(cartridgeloader.NewLoaderFromData("short", make([]uint8, 0x400)))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cartridge.ErrTooShort), true)
	test.ExpectEquality(t, c.Cart == nil, true)
}
