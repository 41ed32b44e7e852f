/*
 * header.go, part of mmpbsa.
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
	"io"
	"strings"
)

//LocateHeader reads lines from r until it finds one that, after trimming spaces,
//starts with sentinel. It returns the zero-based index of that line and the
//line itself, without the trailing newline. r is left positioned right after
//the header, so the table can be read from it with no second pass over the file.
//If the sentinel is never found, a HeaderNotFound Error is returned. An empty
//sentinel would match the first line, so it is rejected.
func LocateHeader(r *bufio.Reader, sentinel string) (int, string, error) {
	sentinel = strings.TrimSpace(sentinel)
	if sentinel == "" {
		return -1, "", Error{message: EmptySentinel, deco: []string{"LocateHeader"}}
	}
	for i := 0; ; i++ {
		line, err := r.ReadString('\n')
		if len(line) > 0 && strings.HasPrefix(strings.TrimSpace(line), sentinel) {
			return i, strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return -1, "", Error{message: HeaderNotFound, detail: "sentinel " + sentinel, deco: []string{"LocateHeader"}}
		}
		if err != nil {
			return -1, "", Error{message: ReadError, detail: err.Error(), deco: []string{"LocateHeader"}}
		}
	}
}
