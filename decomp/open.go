/*
 * open.go, part of mmpbsa.
 *
 * Copyright 2025 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package decomp

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//zstd.Decoder doesn't implement io.ReadCloser (its Close returns nothing)
//so we wrap it.
type zstdrc struct {
	*zstd.Decoder
}

func (z zstdrc) Close() error {
	z.Decoder.Close()
	return nil
}

//fileReader closes both the decompressor and the underlying file.
type fileReader struct {
	io.Reader
	dec io.Closer //nil for plain files
	f   *os.File
}

func (r *fileReader) Close() error {
	var err error
	if r.dec != nil {
		err = r.dec.Close()
	}
	if ferr := r.f.Close(); err == nil {
		err = ferr
	}
	return err
}

//Open opens the file name for reading. Files ending in .zst or .zstd
//are decompressed with zstd, files ending in .gz with gzip. Anything else
//is read as is. MMPBSA decomposition tables compress very well, so
//keeping them compressed is common.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen, name, err.Error(), []string{"Open"}, false}
	}
	buf := bufio.NewReader(f)
	ret := &fileReader{Reader: buf, f: f}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		d, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, Error{UnableToOpen, name, err.Error(), []string{"Open"}, false}
		}
		ret.Reader = d
		ret.dec = zstdrc{d}
	case ".gz":
		d, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, Error{UnableToOpen, name, err.Error(), []string{"Open"}, false}
		}
		ret.Reader = d
		ret.dec = d
	}
	return ret, nil
}
