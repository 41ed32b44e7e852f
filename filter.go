/*
 * filter.go, part of mmpbsa.
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
	"math"

	"github.com/rmera/mmpbsa/decomp"
)

//Significant returns the set of residues in the chunk c with a TOTAL energy
//strictly lower than threshold. Rows whose energy is not a number, and rows with
//an empty residue identifier, are skipped. The number of rows with non-numeric
//energies is also returned.
func Significant(c *decomp.Chunk, threshold float64) (ResidueSet, int) {
	ret := make(ResidueSet)
	if c == nil {
		return ret, 0
	}
	nonnum := 0
	for _, r := range c.Rows {
		if !r.Total.Present() {
			nonnum++
			continue
		}
		if r.Residue == "" {
			continue
		}
		if r.Total.Below(threshold) {
			ret.Add(r.Residue)
		}
	}
	return ret, nonnum
}

//EnergyStats accumulates the TOTAL energies found for one residue in one file.
type EnergyStats struct {
	N   int
	Sum float64
	Min float64
}

//Mean returns the average energy, or NaN if there is no data.
func (E *EnergyStats) Mean() float64 {
	if E == nil || E.N == 0 {
		return math.NaN()
	}
	return E.Sum / float64(E.N)
}

func (E *EnergyStats) add(v float64) {
	if E.N == 0 || v < E.Min {
		E.Min = v
	}
	E.N++
	E.Sum += v
}

//accumulate adds the energies in c to stats.
func accumulate(stats map[string]*EnergyStats, c *decomp.Chunk) {
	for _, r := range c.Rows {
		v, ok := r.Total.Value()
		if !ok || r.Residue == "" {
			continue
		}
		s, ok := stats[r.Residue]
		if !ok {
			s = new(EnergyStats)
			stats[r.Residue] = s
		}
		s.add(v)
	}
}
