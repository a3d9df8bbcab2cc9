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

package hardware

import "fmt"

// RunInstruction executes one CPU instruction, or one interrupt sequence,
// and returns the number of master cycles that passed. The count includes
// any DMA and HDMA that ran during or after the instruction.
func (c *Console) RunInstruction() (int, error) {
	start := c.Timing.Master

	if err := c.CPU.ExecuteInstruction(c.cpuCycle); err != nil {
		return int(c.Timing.Master - start), fmt.Errorf("console: %w", err)
	}

	c.boundary()

	if c.Timing.FrameComplete {
		c.completeFrame()
	}

	return int(c.Timing.Master - start), nil
}

// completeFrame collects the output of the frame.
func (c *Console) completeFrame() {
	c.Timing.FrameComplete = false
	c.Timing.Frames++
	c.frame = c.PPU.Frame()
	c.samples = c.APU.Drain()
}

// RunFrame runs the emulation until the next frame is complete. The frame
// and the audio samples of the frame are then available through Frame() and
// Samples().
func (c *Console) RunFrame() error {
	target := c.Timing.Frames + 1
	for c.Timing.Frames < target {
		if _, err := c.RunInstruction(); err != nil {
			return err
		}
	}
	return nil
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every frame. The emulation stops when it returns
// false or an error.
func (c *Console) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := c.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount runs the emulation for the specified number of frames.
// The continueCheck function is called after every frame with the number of
// frames completed so far.
func (c *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	for frame := 1; frame <= numFrames; frame++ {
		if err := c.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck(frame)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
