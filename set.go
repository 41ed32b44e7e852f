/*
 * set.go, part of mmpbsa.
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
	"sort"

	"github.com/rmera/mmpbsa/residue"
)

//ResidueSet is a set of residue identifiers. Identifiers are compared
//as plain strings.
type ResidueSet map[string]struct{}

//NewResidueSet returns a set containing ids.
func NewResidueSet(ids ...string) ResidueSet {
	S := make(ResidueSet, len(ids))
	for _, v := range ids {
		S[v] = struct{}{}
	}
	return S
}

//Add puts id in the set.
func (S ResidueSet) Add(id string) {
	S[id] = struct{}{}
}

//Has returns true if id is in the set.
func (S ResidueSet) Has(id string) bool {
	_, ok := S[id]
	return ok
}

func (S ResidueSet) Len() int { return len(S) }

//Union adds all the elements of T to S. It returns S.
func (S ResidueSet) Union(T ResidueSet) ResidueSet {
	for k := range T {
		S[k] = struct{}{}
	}
	return S
}

//Intersect returns a new set with the elements present in both S and T.
func (S ResidueSet) Intersect(T ResidueSet) ResidueSet {
	small, big := S, T
	if len(big) < len(small) {
		small, big = big, small
	}
	ret := make(ResidueSet, len(small))
	for k := range small {
		if big.Has(k) {
			ret[k] = struct{}{}
		}
	}
	return ret
}

//Clone returns a copy of S.
func (S ResidueSet) Clone() ResidueSet {
	ret := make(ResidueSet, len(S))
	return ret.Union(S)
}

//Equal returns true if S and T have the same elements.
func (S ResidueSet) Equal(T ResidueSet) bool {
	if len(S) != len(T) {
		return false
	}
	for k := range S {
		if !T.Has(k) {
			return false
		}
	}
	return true
}

//Sorted returns the identifiers in S, ordered by chain and residue
//number (see residue.Less).
func (S ResidueSet) Sorted() []string {
	ret := make([]string, 0, len(S))
	for k := range S {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return residue.Less(ret[i], ret[j]) })
	return ret
}
