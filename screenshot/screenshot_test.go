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

package screenshot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher16/hardware/ppu"
	"github.com/jetsetilly/gopher16/screenshot"
	"github.com/jetsetilly/gopher16/test"
)

func testFrame() *ppu.Frame {
	f := &ppu.Frame{
		Width:  4,
		Height: 2,
		Pixels: make([]uint16, 8),
	}

	// red, green and blue in BGR555
	f.Pixels[0] = 0x001f
	f.Pixels[1] = 0x03e0
	f.Pixels[2] = 0x7c00
	f.Pixels[7] = 0x7fff
	return f
}

func TestImage(t *testing.T) {
	img := screenshot.Image(testFrame(), 1)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)
	test.ExpectEquality(t, img.Bounds().Dy(), 2)

	c := img.RGBAAt(0, 0)
	test.ExpectEquality(t, c.R, uint8(0xff))
	test.ExpectEquality(t, c.G, uint8(0x00))
	c = img.RGBAAt(1, 0)
	test.ExpectEquality(t, c.G, uint8(0xff))
	c = img.RGBAAt(2, 0)
	test.ExpectEquality(t, c.B, uint8(0xff))
	c = img.RGBAAt(3, 1)
	test.ExpectEquality(t, c.R&c.G&c.B, uint8(0xff))

	scaled := screenshot.Image(testFrame(), 3)
	test.ExpectEquality(t, scaled.Bounds().Dx(), 12)
	test.ExpectEquality(t, scaled.Bounds().Dy(), 6)
	test.ExpectEquality(t, scaled.RGBAAt(2, 2), img.RGBAAt(0, 0))
	test.ExpectEquality(t, scaled.RGBAAt(11, 5), img.RGBAAt(3, 1))
}

func TestSave(t *testing.T) {
	test.ExpectFailure(t, screenshot.Save(nil, 1, filepath.Join(t.TempDir(), "none.png")))

	fn := filepath.Join(t.TempDir(), "frame.png")
	test.DemandSuccess(t, screenshot.Save(testFrame(), 2, fn))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectEquality(t, img.Bounds().Dy(), 4)
}
