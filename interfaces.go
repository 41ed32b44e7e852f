/*
 * interfaces.go, part of mmpbsa.
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

import "fmt"

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
	//Critical errors stop a run. Non-critical ones only exclude the offending file.
	Critical() bool
	//FileName returns the file associated with the error, or an empty string.
	FileName() string
}

//RunError is the error returned by the functions of this package. It fullfills Error.
type RunError struct {
	message  string
	filename string
	detail   string
	deco     []string
	critical bool
}

func (err RunError) Error() string {
	ret := "mmpbsa error: " + err.message
	if err.filename != "" {
		ret = fmt.Sprintf("mmpbsa file %s error: %s", err.filename, err.message)
	}
	if err.detail != "" {
		ret += ": " + err.detail
	}
	return ret
}

//Decorate Adds new information to the error
func (E RunError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Message returns the error class, one of the constants in this package.
func (err RunError) Message() string { return err.message }

//FileName returns the file associated to the error, if any.
func (err RunError) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err RunError) Critical() bool { return err.critical }

const (
	NoInputFiles  = "No input files match the pattern"
	NoUsableInput = "None of the input files could be used"
	BadPattern    = "Malformed file pattern"
	WriteFailed   = "Unable to write output"
)

//IsNoInputFiles returns true if err signals that no decomposition file was found.
func IsNoInputFiles(err error) bool {
	e, ok := err.(RunError)
	return ok && e.message == NoInputFiles
}

//errDecorate decorates err with the caller's name, if err implements Error.
//Other errors are returned as they are.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}
