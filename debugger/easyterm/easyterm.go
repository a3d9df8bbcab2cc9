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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides terminal geometry and single key input, and wraps the termios
// functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of the output terminal.
type TermGeometry struct {
	// characters
	Rows uint16
	Cols uint16

	// pixels
	X uint16
	Y uint16
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// Geometry is updated from the signal handler
	mu sync.Mutex
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	_ = pt.UpdateGeometry()

	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores canonical mode and stops the signal handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// ReadKey waits for a single key press. The terminal should be in cbreak
// mode. Escape sequences are returned one byte at a time.
func (pt *Terminal) ReadKey() (rune, error) {
	var b [1]byte
	for {
		n, err := pt.input.Read(b[:])
		if err != nil {
			return 0, fmt.Errorf("easyterm: %w", err)
		}
		if n == 1 {
			return rune(b[0]), nil
		}
	}
}

// Width returns the number of columns of the output terminal. A sensible
// value is returned if the geometry is unknown.
func (pt *Terminal) Width() int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if pt.Geometry.Cols == 0 {
		return 80
	}
	return int(pt.Geometry.Cols)
}

// UpdateGeometry gets the current dimensions (in characters and pixels) of
// the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry: %w", err)
	}
	pt.Geometry = TermGeometry{
		Rows: ws.Row,
		Cols: ws.Col,
		X:    ws.Xpixel,
		Y:    ws.Ypixel,
	}
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (pt *Terminal) CBreakMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
