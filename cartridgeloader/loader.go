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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher16/logger"
)

// CopierHeaderSize is the size of the header added to images by copier
// devices.
const CopierHeaderSize = 512

// ErrUnexpectedHash is returned by Load() when the Hash field has been set
// and does not match the loaded data.
var ErrUnexpectedHash = errors.New("cartridgeloader: unexpected hash value")

// Loader is used to specify the cartridge to use when attaching to the
// console.
type Loader struct {
	// filename of cartridge to load
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data, without any copier header
	Data []byte

	// whether a copier header was removed from the data
	CopierHeader bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name is used as the filename of the Loader.
func NewLoaderFromData(name string, data []byte) Loader {
	cl := Loader{
		Filename: name,
	}
	cl.setData(data)
	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// setData removes the copier header if one is present and computes the hash.
func (cl *Loader) setData(data []byte) {
	if len(data)%1024 == CopierHeaderSize {
		data = data[CopierHeaderSize:]
		cl.CopierHeader = true
	}
	cl.Data = make([]byte, len(data))
	copy(cl.Data, data)
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))
}

// Load the cartridge data. Loader filenames with a valid scheme will use
// that method to load the data. Currently supported schemes are HTTP and
// local files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	// the data is loaded anyway. the cartridge header decides whether the
	// image is usable
	if !RecognisedExtension(cl.Filename) {
		logger.Logf(logger.Allow, "cartridgeloader", "unrecognised file extension: %s", path.Base(cl.Filename))
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	case "file", "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return fmt.Errorf("cartridgeloader: %w", err)
		}

	default:
		return fmt.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}

	expected := cl.Hash
	cl.setData(data)

	if expected != "" && expected != cl.Hash {
		h := cl.Hash
		cl.Data = nil
		cl.Hash = expected
		return fmt.Errorf("%w: %s", ErrUnexpectedHash, h)
	}

	return nil
}
