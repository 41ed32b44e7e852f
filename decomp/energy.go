/*
 * energy.go, part of mmpbsa.
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
	"math"
	"strconv"
	"strings"
)

//Energy is the result of parsing an energy field. A field that is
//empty or not a number gives an absent Energy, which is never
//treated as zero.
type Energy struct {
	v  float64
	ok bool
}

//ParseEnergy parses the text of an energy field. Surrounding spaces are ignored.
//NaN is considered absent.
func ParseEnergy(s string) Energy {
	s = strings.TrimSpace(s)
	if s == "" {
		return Energy{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return Energy{}
	}
	return Energy{v: f, ok: true}
}

//Value returns the numeric value and true, or 0 and false if the energy is absent.
func (e Energy) Value() (float64, bool) {
	return e.v, e.ok
}

//Present returns true if the field held a number.
func (e Energy) Present() bool { return e.ok }

//Below returns true only if the energy is present and strictly lower than t.
func (e Energy) Below(t float64) bool {
	return e.ok && e.v < t
}
