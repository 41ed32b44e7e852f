/*
 * doc.go, part of mmpbsa.
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

/*Package mmpbsa finds the protein residues that contribute significantly
to the binding free energy in every one of a set of MMPBSA/MMGBSA per-frame
decomposition files (one per simulated ligand or complex).


	**Capabilities**


    Reads the per-frame decomposition CSV files written by gmx_MMPBSA, plain or
	compressed with gzip or zstd. The table header is found by scanning for
	a sentinel ("Frame #") so any amount of preamble is tolerated.

    Reads tables in bounded chunks, so memory use doesn't depend on the size
	of the file. Malformed rows and non-numeric energies are dropped without
	stopping the analysis.

    Selects, for each file, the residues with at least one frame where the
	TOTAL contribution is strictly below a threshold (-1.0 kcal/mol by default).

    Intersects the per-file sets into a consensus set. Files without
	significant residues are left out of the intersection.

    Processes files concurrently, writes the consensus as a one-column CSV
	("Residue") and, optionally, a JSON summary with per-residue statistics.


Residue identifiers are opaque strings for all set operations. The residue
subpackage provides a structured view ("R:A:LYS:12") where one is needed.*/
package mmpbsa
