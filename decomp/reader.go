/*
 * reader.go, part of mmpbsa.
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
	"encoding/csv"
	"io"
	"strings"
)

//Options contains the layout information needed to read a decomposition table.
type Options struct {
	Sentinel      string //a line starting with this marks the table header
	ResidueColumn string
	EnergyColumn  string
	ChunkSize     int //max number of rows returned by each call to Next
}

//DefaultOptions returns options for the per-frame CSV decomposition
//files written by gmx_MMPBSA.
func DefaultOptions() *Options {
	r := new(Options)
	r.Sentinel = "Frame #"
	r.ResidueColumn = "Residue"
	r.EnergyColumn = "TOTAL"
	r.ChunkSize = 50000
	return r
}

//Row is one line of the table, reduced to the two fields we care about.
type Row struct {
	Residue string
	Total   Energy
}

//Chunk is a batch of at most ChunkSize rows.
type Chunk struct {
	Rows []Row
}

//Len returns the number of rows in the chunk
func (C *Chunk) Len() int {
	if C == nil {
		return 0
	}
	return len(C.Rows)
}

//Reader reads a decomposition table chunk by chunk.
type Reader struct {
	name       string
	rc         io.ReadCloser
	br         *bufio.Reader
	header     []string
	headerLine int
	rescol     int
	encol      int
	chunkSize  int
	rows       int
	malformed  int
	readable   bool
}

//New opens the decomposition file name, finds the table header and checks that
//the residue and energy columns are there. If O is nil, DefaultOptions is used.
//The file is read only once, the header search and the table share the same stream.
//Each line of the table is parsed on its own, so a quote is never allowed to
//extend a field into the following lines.
func New(name string, O *Options) (*Reader, error) {
	if O == nil {
		O = DefaultOptions()
	}
	rc, err := Open(name)
	if err != nil {
		return nil, err
	}
	R := &Reader{name: name, rc: rc, chunkSize: O.ChunkSize}
	if R.chunkSize <= 0 {
		R.chunkSize = DefaultOptions().ChunkSize
	}
	R.br = bufio.NewReader(rc)
	var line string
	R.headerLine, line, err = LocateHeader(R.br, O.Sentinel)
	if err != nil {
		rc.Close()
		return nil, R.fileErr(err, "New")
	}
	R.header, err = splitLine(line, -1)
	if err != nil {
		rc.Close()
		return nil, Error{MissingColumns, name, "unreadable header: " + err.Error(), []string{"New"}, false}
	}
	R.rescol = columnIndex(R.header, O.ResidueColumn)
	R.encol = columnIndex(R.header, O.EnergyColumn)
	missing := make([]string, 0, 2)
	if R.rescol < 0 {
		missing = append(missing, O.ResidueColumn)
	}
	if R.encol < 0 {
		missing = append(missing, O.EnergyColumn)
	}
	if len(missing) > 0 {
		rc.Close()
		return nil, missingColumnsError(name, missing)
	}
	R.readable = true
	return R, nil
}

//splitLine parses a single CSV line. If fields is positive, the line must
//have exactly that many fields.
func splitLine(line string, fields int) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = fields
	return r.Read()
}

func columnIndex(header []string, name string) int {
	name = strings.TrimSpace(name)
	for i, v := range header {
		if strings.TrimSpace(v) == name {
			return i
		}
	}
	return -1
}

//puts the file name in errors coming from lower-level functions.
func (R *Reader) fileErr(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return Error{ReadError, R.name, err.Error(), []string{caller}, false}
	}
	e.filename = R.name
	e.deco = append(e.deco, caller)
	return e
}

//Next returns the next chunk of rows. Lines with a number of fields other than
//the header's, or that can't be parsed as CSV, are dropped and counted (see Malformed).
//Empty lines are skipped. After the last chunk, Next closes the reader and returns io.EOF.
func (R *Reader) Next() (*Chunk, error) {
	if !R.readable {
		return nil, io.EOF
	}
	c := &Chunk{Rows: make([]Row, 0, min(R.chunkSize, 4096))}
	for len(c.Rows) < R.chunkSize {
		line, err := R.br.ReadString('\n')
		if err != nil && err != io.EOF {
			R.Close()
			return nil, Error{ReadError, R.name, err.Error(), []string{"Next"}, false}
		}
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			rec, perr := splitLine(line, len(R.header))
			if perr != nil {
				R.malformed++
			} else {
				R.rows++
				c.Rows = append(c.Rows, Row{Residue: rec[R.rescol], Total: ParseEnergy(rec[R.encol])})
			}
		}
		if err == io.EOF {
			R.Close()
			break
		}
	}
	if len(c.Rows) == 0 {
		return nil, io.EOF
	}
	return c, nil
}

//Close closes the underlying file. It is safe to call more than once.
func (R *Reader) Close() {
	if !R.readable && R.rc == nil {
		return
	}
	R.readable = false
	if R.rc != nil {
		R.rc.Close()
		R.rc = nil
	}
}

//Name returns the name of the file being read.
func (R *Reader) Name() string { return R.name }

//HeaderLine returns the zero-based index of the header line in the file.
func (R *Reader) HeaderLine() int { return R.headerLine }

//Columns returns the column names in the header.
func (R *Reader) Columns() []string { return R.header }

//Rows returns the number of well-formed rows read so far.
func (R *Reader) Rows() int { return R.rows }

//Malformed returns the number of rows dropped so far.
func (R *Reader) Malformed() int { return R.malformed }
