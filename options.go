/*
 * options.go, part of mmpbsa.
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
	"log"
	"runtime"

	"github.com/rmera/mmpbsa/decomp"
)

//Options contains the parameters for a consensus run. Each run gets its
//own Options, so runs with different parameters can go on concurrently.
type Options struct {
	Dir           string  //directory where the decomposition files are searched
	Pattern       string  //glob pattern for the decomposition files
	Threshold     float64 //a residue is significant if its TOTAL is strictly lower than this, in kcal/mol
	ChunkSize     int     //max number of rows held in memory per file
	Cpus          int     //max number of files processed at the same time
	Output        string  //the consensus CSV. Nothing is written if empty.
	Summary       string  //if not empty, a JSON summary is written here.
	Sentinel      string  //a line starting with this marks the table header
	ResidueColumn string
	EnergyColumn  string
	Logger        *log.Logger
}

//DefaultOptions return the options for the usual gmx_MMPBSA workflow:
//all FINAL_DECOMP_MMPBSA_PB*.csv files in the current directory, a
//-1.0 kcal/mol threshold, chunks of 50000 rows and all logical CPUs.
func DefaultOptions() *Options {
	d := decomp.DefaultOptions()
	r := new(Options)
	r.Dir = "."
	r.Pattern = "FINAL_DECOMP_MMPBSA_PB*.csv"
	r.Threshold = -1.0
	r.ChunkSize = d.ChunkSize
	r.Cpus = runtime.NumCPU()
	r.Output = "common_active_residues.csv"
	r.Sentinel = d.Sentinel
	r.ResidueColumn = d.ResidueColumn
	r.EnergyColumn = d.EnergyColumn
	r.Logger = log.Default()
	return r
}

//readerOptions returns the options for the table reader.
func (O *Options) readerOptions() *decomp.Options {
	return &decomp.Options{
		Sentinel:      O.Sentinel,
		ResidueColumn: O.ResidueColumn,
		EnergyColumn:  O.EnergyColumn,
		ChunkSize:     O.ChunkSize,
	}
}

func (O *Options) logf(format string, v ...any) {
	if O.Logger == nil {
		log.Printf(format, v...)
		return
	}
	O.Logger.Printf(format, v...)
}
