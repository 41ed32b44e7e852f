/*
 * errors.go, part of mmpbsa.
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
	"fmt"
	"strings"
)

//Error is the general structure for errors in decomposition files. It fullfills mmpbsa.Error
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	detail   string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.detail != "" {
		return fmt.Sprintf("decomposition file %s error: %s: %s", err.filename, err.message, err.detail)
	}
	return fmt.Sprintf("decomposition file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Message returns the error class, one of the constants in this package.
func (err Error) Message() string { return err.message }

//Detail returns extra information on the error, such as the missing columns.
func (err Error) Detail() string { return err.detail }

//FileName returns the file to which the error is associated
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
//A non-critical error only excludes its file from the analysis.
func (err Error) Critical() bool { return err.critical }

const (
	HeaderNotFound = "No table header found"
	MissingColumns = "Required columns missing"
	UnableToOpen   = "Unable to open file"
	ReadError      = "Error reading table"
	ReaderClosed   = "Reader already closed"
	EmptySentinel  = "Empty header sentinel"
)

//IsHeaderNotFound returns true if err is a decomp Error signaling that no header line was found.
func IsHeaderNotFound(err error) bool {
	e, ok := err.(Error)
	return ok && e.message == HeaderNotFound
}

//IsMissingColumns returns true if err is a decomp Error signaling missing required columns.
func IsMissingColumns(err error) bool {
	e, ok := err.(Error)
	return ok && e.message == MissingColumns
}

func missingColumnsError(filename string, missing []string) Error {
	return Error{MissingColumns, filename, strings.Join(missing, ", "), []string{"New"}, false}
}
