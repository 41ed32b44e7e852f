/*
 * sink.go, part of mmpbsa.
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
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
)

//ResidueHeader is the name of the only column in the consensus file.
const ResidueHeader = "Residue"

//WriteResiduesTo writes set to w as a CSV table with a single
//"Residue" column. Rows are sorted (see ResidueSet.Sorted) so the same
//set always gives the same bytes.
func WriteResiduesTo(w io.Writer, set ResidueSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ResidueHeader}); err != nil {
		return err
	}
	for _, v := range set.Sorted() {
		if err := cw.Write([]string{v}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteResidues writes set to the file name (see WriteResiduesTo).
//The file is replaced in one step, so it is never left half-written.
func WriteResidues(name string, set ResidueSet) error {
	err := writeAtomic(name, func(w io.Writer) error { return WriteResiduesTo(w, set) })
	if err != nil {
		return RunError{WriteFailed, name, err.Error(), []string{"WriteResidues"}, true}
	}
	return nil
}

//writeAtomic writes to a temporary file in the same directory as name,
//and renames it to name once everything went fine.
func writeAtomic(name string, write func(io.Writer) error) error {
	dir := filepath.Dir(name)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(name)+"-*")
	if err != nil {
		return err
	}
	tmpname := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpname)
		return err
	}
	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpname)
		return err
	}
	//CreateTemp uses 0600
	os.Chmod(tmpname, 0o644)
	if err := os.Rename(tmpname, name); err != nil {
		os.Remove(tmpname)
		return err
	}
	return nil
}
