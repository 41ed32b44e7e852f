/*
 * extract.go, part of mmpbsa.
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

package mmpbsa

import (
	"context"
	"fmt"
	"io"

	"github.com/rmera/mmpbsa/decomp"
)

//FileResult contains what was obtained from one decomposition file.
type FileResult struct {
	Name       string
	Set        ResidueSet //the significant residues
	Rows       int        //well-formed rows read
	Malformed  int        //rows dropped for bad structure
	NonNumeric int        //rows whose energy was not a number
	Energies   map[string]*EnergyStats
	Err        error //if not nil, the file is not used.
}

//String returns a one-line description of the result.
func (F *FileResult) String() string {
	if F.Err != nil {
		return fmt.Sprintf("%s: %v", F.Name, F.Err)
	}
	return fmt.Sprintf("%s: %d significant residues, rows: %d, malformed: %d, non-numeric: %d", F.Name, F.Set.Len(), F.Rows, F.Malformed, F.NonNumeric)
}

//ExtractFile reads the decomposition file name chunk by chunk and returns the
//set of residues with a TOTAL energy lower than O.Threshold in at least one row.
//Only one chunk is held in memory at a time. ctx is checked between chunks.
//Errors are not returned but put in the Err field of the result, since they
//only mean that the file can't be used.
func ExtractFile(ctx context.Context, name string, O *Options) *FileResult {
	if O == nil {
		O = DefaultOptions()
	}
	ret := &FileResult{Name: name, Set: make(ResidueSet), Energies: make(map[string]*EnergyStats)}
	r, err := decomp.New(name, O.readerOptions())
	if err != nil {
		ret.Err = errDecorate(err, "ExtractFile")
		return ret
	}
	defer r.Close()
	for {
		if err := ctx.Err(); err != nil {
			ret.Err = err
			break
		}
		c, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			ret.Err = errDecorate(err, "ExtractFile")
			break
		}
		s, nonnum := Significant(c, O.Threshold)
		ret.Set.Union(s)
		ret.NonNumeric += nonnum
		accumulate(ret.Energies, c)
	}
	ret.Rows = r.Rows()
	ret.Malformed = r.Malformed()
	return ret
}
