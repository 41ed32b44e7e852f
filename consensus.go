/*
 * consensus.go, part of mmpbsa.
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

import "sort"

//Consensus returns the intersection of the non-empty sets given. Empty
//sets are ignored, they don't make the result empty. If no non-empty set
//is given, an empty set is returned. The arguments are not modified.
func Consensus(sets ...ResidueSet) ResidueSet {
	operands := make([]ResidueSet, 0, len(sets))
	for _, v := range sets {
		if len(v) > 0 {
			operands = append(operands, v)
		}
	}
	if len(operands) == 0 {
		return make(ResidueSet)
	}
	//starting from the smallest set keeps the intermediate results small.
	sort.Slice(operands, func(i, j int) bool { return len(operands[i]) < len(operands[j]) })
	ret := operands[0].Clone()
	for _, v := range operands[1:] {
		if len(ret) == 0 {
			break
		}
		ret = ret.Intersect(v)
	}
	return ret
}
