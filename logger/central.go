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

// Package logger is the central log repository for Gopher16. Log entries
// are of the form "tag: detail". Consecutive entries with the same tag and
// detail are collapsed into one entry with a repeat count.
package logger

import (
	"fmt"
	"io"
)

// central logger
var central *logger

// the maximum number of entries kept by the central logger
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger. The detail argument can be a
// string, an error, a fmt.Stringer or any other type, in which case it is
// formatted with the %v verb.
func Log(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		switch d := detail.(type) {
		case string:
			central.log(tag, d)
		case error:
			central.log(tag, d.Error())
		case fmt.Stringer:
			central.log(tag, d.String())
		default:
			central.log(tag, fmt.Sprintf("%v", d))
		}
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, fmt.Sprintf(detail, args...))
	}
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints new entries to io.Writer as they are added. A nil writer
// turns echoing off.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries.
func BorrowLog(f func([]Entry)) {
	central.borrowLog(f)
}
