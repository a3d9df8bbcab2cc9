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

// Package screenshot converts frames produced by the console into images and
// saves them as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/gopher16/hardware/ppu"
	"github.com/jetsetilly/gopher16/logger"
)

// Image converts the frame to an RGBA image. The image is scaled with the
// nearest neighbour method. A scale of less than one is treated as one.
func Image(f *ppu.Frame, scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.Pixel(x, y)
			src.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}

	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Save writes the frame to the path as a PNG file.
func Save(f *ppu.Frame, scale int, path string) (rerr error) {
	if f == nil {
		return fmt.Errorf("screenshot: no frame")
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		err := fh.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("screenshot: %w", err)
		}
	}()

	if err := png.Encode(fh, Image(f, scale)); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)

	return nil
}
