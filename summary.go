/*
 * summary.go, part of mmpbsa.
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
	"encoding/json"
	"io"
	"math"

	"github.com/rmera/mmpbsa/residue"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//FileSummary has the counters for one input file.
type FileSummary struct {
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	Malformed   int    `json:"malformed"`
	NonNumeric  int    `json:"non_numeric"`
	Significant int    `json:"significant"`
	Error       string `json:"error,omitempty"`
}

//ResidueSummary describes one consensus residue. Mean and StdDev are taken over
//the mean TOTAL energy of the residue in each file used for the consensus, Min is
//the lowest TOTAL energy found for the residue in any of those files.
type ResidueSummary struct {
	Residue string  `json:"residue"`
	Chain   string  `json:"chain,omitempty"`
	Name    string  `json:"name,omitempty"`
	Number  int     `json:"number,omitempty"`
	Class   string  `json:"class,omitempty"`
	Files   int     `json:"files"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"stddev"`
	Min     float64 `json:"min"`
}

//Summary is a JSON-friendly description of a consensus run.
type Summary struct {
	Threshold float64          `json:"threshold"`
	Files     []FileSummary    `json:"files"`
	Consensus []ResidueSummary `json:"consensus"`
}

//JSON can't represent NaN or infinities.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

//Summarize builds a Summary from a Report. Residues are in the same order
//as in the consensus CSV.
func Summarize(R *Report) *Summary {
	S := &Summary{Threshold: R.Threshold, Files: make([]FileSummary, 0, len(R.Files))}
	used := make([]*FileResult, 0, len(R.Files))
	for _, v := range R.Files {
		fs := FileSummary{Name: v.Name, Rows: v.Rows, Malformed: v.Malformed, NonNumeric: v.NonNumeric}
		if v.Err != nil {
			fs.Error = v.Err.Error()
		} else {
			fs.Significant = v.Set.Len()
			if v.Set.Len() > 0 {
				used = append(used, v)
			}
		}
		S.Files = append(S.Files, fs)
	}
	S.Consensus = make([]ResidueSummary, 0, R.Consensus.Len())
	means := make([]float64, 0, len(used))
	mins := make([]float64, 0, len(used))
	for _, res := range R.Consensus.Sorted() {
		means = means[:0]
		mins = mins[:0]
		for _, f := range used {
			e, ok := f.Energies[res]
			if !ok || e.N == 0 {
				continue
			}
			means = append(means, e.Mean())
			mins = append(mins, e.Min)
		}
		rs := ResidueSummary{Residue: res, Files: len(means)}
		if id, err := residue.Parse(res); err == nil {
			rs.Chain = id.Chain
			rs.Name = id.Name
			rs.Number = id.Number
			rs.Class = id.Class().String()
		}
		switch len(means) {
		case 0:
		case 1:
			rs.Mean = finite(means[0])
			rs.Min = finite(mins[0])
		default:
			m, sd := stat.MeanStdDev(means, nil)
			rs.Mean = finite(m)
			rs.StdDev = finite(sd)
			rs.Min = finite(floats.Min(mins))
		}
		S.Consensus = append(S.Consensus, rs)
	}
	return S
}

//WriteSummaryTo writes S to w as indented JSON.
func WriteSummaryTo(w io.Writer, S *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(S)
}

//WriteSummary writes S to the file name, replacing it in one step.
func WriteSummary(name string, S *Summary) error {
	err := writeAtomic(name, func(w io.Writer) error { return WriteSummaryTo(w, S) })
	if err != nil {
		return RunError{WriteFailed, name, err.Error(), []string{"WriteSummary"}, true}
	}
	return nil
}
