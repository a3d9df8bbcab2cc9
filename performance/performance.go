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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher16/cartridgeloader"
	"github.com/jetsetilly/gopher16/environment"
	"github.com/jetsetilly/gopher16/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time given for the frame rate to settle before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu or
// memory profile, a trace, or a combination of those, as defined by the
// profile argument.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, duration string) error {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	con, err := hardware.NewConsole(env)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = con.AttachCartridge(cartload)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startFrame uint64

	runner := func() error {
		// signals false when the lead time has elapsed and measurement should
		// start. signals true when the measurement period is over
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// the check is made at the end of every frame
		return con.Run(func() (bool, error) {
			select {
			case v := <-timerChan:
				if v {
					return false, timedOut
				}
				startFrame = con.Timing.Frames
			default:
			}
			return true, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := int(con.Timing.Frames - startFrame)
	fps, accuracy := CalcFPS(con.Region, numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
