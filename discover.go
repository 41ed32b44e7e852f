/*
 * discover.go, part of mmpbsa.
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
	"os"
	"path/filepath"
	"sort"
)

//Discover returns the regular files in dir whose names match the glob pattern,
//sorted. If nothing matches, it returns a critical NoInputFiles error.
func Discover(dir, pattern string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, RunError{BadPattern, "", pattern, []string{"Discover"}, true}
	}
	ret := make([]string, 0, len(matches))
	for _, v := range matches {
		info, err := os.Stat(v)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		ret = append(ret, v)
	}
	if len(ret) == 0 {
		return nil, RunError{NoInputFiles, "", filepath.Join(dir, pattern), []string{"Discover"}, true}
	}
	sort.Strings(ret)
	return ret, nil
}
