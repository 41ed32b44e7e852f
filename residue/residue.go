/*
 * residue.go, part of mmpbsa.
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

//Package residue gives a structured view of the residue identifiers found
//in MMPBSA decomposition files, such as "R:A:LYS:12". The rest of mmpbsa treats
//identifiers as opaque strings, this package is only used where the parts
//(chain, residue name, number) are needed, and it fails softly: an identifier
//that can't be parsed is still a perfectly good set key.
package residue

import (
	"fmt"
	"strconv"
	"strings"
)

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//Class is a rough classification of a residue by the kind of interaction
//its side chain can do.
type Class int

const (
	Other Class = iota
	Positive
	Negative
	Hydrophobic
	Polar
)

var classNames = [...]string{"other", "positive", "negative", "hydrophobic", "polar"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "other"
	}
	return classNames[c]
}

var classes = map[string]Class{
	"ARG": Positive,
	"LYS": Positive,
	"HIS": Positive,
	"ASP": Negative,
	"GLU": Negative,
	"ALA": Hydrophobic,
	"VAL": Hydrophobic,
	"LEU": Hydrophobic,
	"ILE": Hydrophobic,
	"MET": Hydrophobic,
	"PHE": Hydrophobic,
	"TRP": Hydrophobic,
	"PRO": Hydrophobic,
	"SER": Polar,
	"THR": Polar,
	"ASN": Polar,
	"GLN": Polar,
	"TYR": Polar,
	"CYS": Polar,
}

//ID is the structured form of a residue identifier.
type ID struct {
	Raw       string //the identifier as found in the file
	Molecule  string //"R" for receptor, "L" for ligand, empty if not given
	Chain     string
	Name      string //3-letter residue name
	Number    int
	Insertion string //PDB insertion code, if any
}

//Parse returns the structured form of a residue identifier. It understands
//"R:A:LYS:12", "R:A:LYS:12:B" (with insertion code), "A:LYS:12" and the short
//"LYS 12" form. Anything else gives an Error.
func Parse(id string) (ID, error) {
	ret := ID{Raw: id}
	s := strings.TrimSpace(id)
	var num string
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 5:
		ret.Insertion = parts[4]
		fallthrough
	case 4:
		ret.Molecule, ret.Chain, ret.Name, num = parts[0], parts[1], parts[2], parts[3]
	case 3:
		ret.Chain, ret.Name, num = parts[0], parts[1], parts[2]
	case 1:
		f := strings.Fields(s)
		if len(f) != 2 {
			return ret, Error{UnknownFormat, id, []string{"Parse"}}
		}
		ret.Name, num = f[0], f[1]
	default:
		return ret, Error{UnknownFormat, id, []string{"Parse"}}
	}
	ret.Name = strings.ToUpper(strings.TrimSpace(ret.Name))
	if ret.Name == "" {
		return ret, Error{NoName, id, []string{"Parse"}}
	}
	var err error
	ret.Number, err = strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return ret, Error{BadNumber, id, []string{"Parse"}}
	}
	return ret, nil
}

//Class returns the interaction class of the residue.
func (I ID) Class() Class {
	return classes[I.Name] //Other is the zero value
}

//OneLetter returns the 1-letter code for the residue, or 'X' for
//non-standard residues (ligands, ions, modified residues).
func (I ID) OneLetter() byte {
	if l, ok := three2OneLetter[I.Name]; ok {
		return l
	}
	return 'X'
}

//Label returns a short label such as "LYS12".
func (I ID) Label() string {
	return fmt.Sprintf("%s%d%s", I.Name, I.Number, I.Insertion)
}

func (I ID) String() string {
	return I.Raw
}

//Less reports whether the identifier a sorts before b. Parseable identifiers
//go first, ordered by chain, residue number and insertion code. Identifiers
//that can't be parsed go last, in plain string order. Ties are broken with
//the raw strings, so the order is total.
func Less(a, b string) bool {
	ia, erra := Parse(a)
	ib, errb := Parse(b)
	switch {
	case erra == nil && errb != nil:
		return true
	case erra != nil && errb == nil:
		return false
	case erra != nil && errb != nil:
		return a < b
	}
	if ia.Chain != ib.Chain {
		return ia.Chain < ib.Chain
	}
	if ia.Number != ib.Number {
		return ia.Number < ib.Number
	}
	if ia.Insertion != ib.Insertion {
		return ia.Insertion < ib.Insertion
	}
	return a < b
}

//Error is returned when an identifier can't be parsed. It is never
//a reason to drop the identifier itself.
type Error struct {
	message string
	id      string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("residue identifier %q: %s", err.id, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns an empty string, identifiers don't belong to a file.
func (err Error) FileName() string { return "" }

//Critical always returns false.
func (err Error) Critical() bool { return false }

const (
	UnknownFormat = "Unknown identifier format"
	NoName        = "No residue name"
	BadNumber     = "Residue number is not an integer"
)
