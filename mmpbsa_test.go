/*
 * mmpbsa_test.go, part of mmpbsa.
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
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/mmpbsa/decomp"
)

const header = "Frame #,Residue,Internal,van der Waals,Electrostatic,Polar Solvation,Non-Polar Solv.,TOTAL\n"

//writeDecomp writes a small decomposition file with the given residue/TOTAL pairs.
func writeDecomp(Te *testing.T, dir, name string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString("| Run on Mon Mar 10 12:01:44 2025\n|Energy Decomposition Analysis (All units kcal/mol)\nComplex:\nTotal Energy Decomposition:\n")
	b.WriteString(header)
	for i, v := range rows {
		fmt.Fprintf(&b, "%d,%s,0.0,0.0,0.0,0.0,0.0,%s\n", i/10+1, v[0], v[1])
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func quietOptions(dir string) *Options {
	O := DefaultOptions()
	O.Dir = dir
	O.Output = filepath.Join(dir, "common_active_residues.csv")
	O.Logger = log.New(io.Discard, "", 0)
	return O
}

//the scenario with three ligands, plus two broken files.
func scenario(Te *testing.T) string {
	dir := Te.TempDir()
	writeDecomp(Te, dir, "FINAL_DECOMP_MMPBSA_PB_lig1.csv", [][2]string{
		{"R:A:ALA:1", "-2.0"}, {"R:A:ALA:2", "-2.0"}, {"R:A:ALA:2", "-4.0"}, {"R:A:ALA:3", "-1.5"}, {"R:A:ALA:9", "-0.5"},
	})
	writeDecomp(Te, dir, "FINAL_DECOMP_MMPBSA_PB_lig2.csv", [][2]string{
		{"R:A:ALA:2", "-1.5"}, {"R:A:ALA:3", "-3.0"}, {"R:A:ALA:4", "-2.0"}, {"R:A:ALA:1", "-1.0"},
	})
	writeDecomp(Te, dir, "FINAL_DECOMP_MMPBSA_PB_lig3.csv", [][2]string{
		{"R:A:ALA:1", "-0.2"}, {"R:A:ALA:2", "0.5"}, {"R:A:ALA:3", "abc"},
	})
	os.WriteFile(filepath.Join(dir, "FINAL_DECOMP_MMPBSA_PB_lig4.csv"), []byte("Frame #,Residue,Internal\n1,R:A:ALA:2,-9\n"), 0o644)
	os.WriteFile(filepath.Join(dir, "FINAL_DECOMP_MMPBSA_PB_lig5.csv"), []byte("nothing to see here\nR:A:ALA:2,-9\n"), 0o644)
	//should not be picked up
	writeDecomp(Te, dir, "other.csv", [][2]string{{"R:A:ALA:7", "-9"}})
	return dir
}

func TestThreshold(Te *testing.T) {
	c := &decomp.Chunk{}
	for _, v := range [][2]string{{"R1", "-1.0"}, {"R2", "-1.0000001"}, {"R3", "-0.5"}, {"R4", "-3"}, {"R5", ""}, {"", "-5"}, {"R6", "x"}} {
		c.Rows = append(c.Rows, decomp.Row{Residue: v[0], Total: decomp.ParseEnergy(v[1])})
	}
	s, nonnum := Significant(c, -1.0)
	if !s.Equal(NewResidueSet("R2", "R4")) {
		Te.Errorf("wrong significant set %v", s.Sorted())
	}
	if nonnum != 2 {
		Te.Errorf("%d non-numeric rows, expected 2", nonnum)
	}
	s, _ = Significant(c, -3)
	if s.Len() != 0 {
		Te.Errorf("-3 is not below -3: %v", s.Sorted())
	}
	s, _ = Significant(nil, 0)
	if s == nil || s.Len() != 0 {
		Te.Error("a nil chunk should give an empty set")
	}
}

func TestChunkIndependence(Te *testing.T) {
	dir := Te.TempDir()
	rnd := rand.New(rand.NewSource(42))
	rows := make([][2]string, 0, 300)
	for i := 0; i < 300; i++ {
		e := fmt.Sprintf("%.3f", rnd.Float64()*4-3)
		if i%37 == 0 {
			e = "n/a"
		}
		rows = append(rows, [2]string{fmt.Sprintf("R:A:GLY:%d", rnd.Intn(60)), e})
	}
	name := writeDecomp(Te, dir, "FINAL_DECOMP_MMPBSA_PB_rnd.csv", rows)
	var ref *FileResult
	for _, n := range []int{50000, 1, 10, 7} {
		O := quietOptions(dir)
		O.ChunkSize = n
		r := ExtractFile(context.Background(), name, O)
		if r.Err != nil {
			Te.Fatal(r.Err)
		}
		if ref == nil {
			ref = r
			if r.Set.Len() == 0 {
				Te.Fatal("no significant residues in the random file")
			}
			continue
		}
		if !r.Set.Equal(ref.Set) {
			Te.Errorf("chunk size %d gives a different set", n)
		}
		if r.Rows != ref.Rows || r.NonNumeric != ref.NonNumeric {
			Te.Errorf("chunk size %d: rows %d non-numeric %d, expected %d %d", n, r.Rows, r.NonNumeric, ref.Rows, ref.NonNumeric)
		}
	}
}

func TestMalformedTolerance(Te *testing.T) {
	dir := Te.TempDir()
	clean := [][2]string{{"R:A:LYS:1", "-2"}, {"R:A:LYS:2", "-0.3"}, {"R:A:LYS:3", "-1.7"}}
	dirty := [][2]string{{"R:A:LYS:1", "-2"}, {"R:A:LYS:4", "oops"}, {"R:A:LYS:2", "-0.3"}, {"R:A:LYS:3", "-1.7"}}
	a := ExtractFile(context.Background(), writeDecomp(Te, dir, "clean.csv", clean), quietOptions(dir))
	b := ExtractFile(context.Background(), writeDecomp(Te, dir, "dirty.csv", dirty), quietOptions(dir))
	if a.Err != nil || b.Err != nil {
		Te.Fatal(a.Err, b.Err)
	}
	if !a.Set.Equal(b.Set) {
		Te.Errorf("non-numeric row changed the set: %v vs %v", a.Set.Sorted(), b.Set.Sorted())
	}
	if b.NonNumeric != 1 {
		Te.Errorf("%d non-numeric rows, expected 1", b.NonNumeric)
	}
}

func TestConsensus(Te *testing.T) {
	A := NewResidueSet("R1", "R2", "R3")
	B := NewResidueSet("R2", "R3", "R4")
	C := NewResidueSet()
	got := Consensus(A, B, C)
	if !got.Equal(NewResidueSet("R2", "R3")) {
		Te.Errorf("consensus %v, expected [R2 R3]", got.Sorted())
	}
	if !Consensus(C, B, A).Equal(got) {
		Te.Error("consensus depends on the order of the sets")
	}
	if A.Len() != 3 || B.Len() != 3 {
		Te.Error("Consensus modified its arguments")
	}
	if Consensus().Len() != 0 || Consensus(C, NewResidueSet()).Len() != 0 {
		Te.Error("consensus of nothing should be empty")
	}
	if !Consensus(A).Equal(A) {
		Te.Error("consensus of a single set should be the set")
	}
	if Consensus(A, NewResidueSet("R9")).Len() != 0 {
		Te.Error("disjoint sets should give an empty consensus")
	}
}

func TestRun(Te *testing.T) {
	dir := scenario(Te)
	O := quietOptions(dir)
	O.Cpus = 2
	rep, err := Run(context.Background(), O)
	if err != nil {
		Te.Fatal(err)
	}
	if !rep.Consensus.Equal(NewResidueSet("R:A:ALA:2", "R:A:ALA:3")) {
		Te.Errorf("wrong consensus %v", rep.Consensus.Sorted())
	}
	if len(rep.Files) != 5 {
		Te.Fatalf("%d files processed, expected 5", len(rep.Files))
	}
	if rep.Used() != 2 {
		Te.Errorf("%d files used, expected 2", rep.Used())
	}
	if !decomp.IsMissingColumns(rep.Files[3].Err) {
		Te.Errorf("expected MissingColumns for %s, got %v", rep.Files[3].Name, rep.Files[3].Err)
	}
	if !decomp.IsHeaderNotFound(rep.Files[4].Err) {
		Te.Errorf("expected HeaderNotFound for %s, got %v", rep.Files[4].Name, rep.Files[4].Err)
	}
	first, err := os.ReadFile(O.Output)
	if err != nil {
		Te.Fatal(err)
	}
	if string(first) != "Residue\nR:A:ALA:2\nR:A:ALA:3\n" {
		Te.Errorf("unexpected output:\n%s", first)
	}
	//idempotence
	if _, err := Run(context.Background(), O); err != nil {
		Te.Fatal(err)
	}
	second, _ := os.ReadFile(O.Output)
	if !bytes.Equal(first, second) {
		Te.Error("two runs on the same files gave different outputs")
	}
	leftovers, _ := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	if len(leftovers) > 0 {
		Te.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestRunFailures(Te *testing.T) {
	dir := Te.TempDir()
	O := quietOptions(dir)
	_, err := Run(context.Background(), O)
	if !IsNoInputFiles(err) {
		Te.Errorf("expected NoInputFiles, got %v", err)
	}
	if e, ok := err.(Error); !ok || !e.Critical() {
		Te.Errorf("NoInputFiles should be critical: %v", err)
	}
	if _, err := os.Stat(O.Output); !os.IsNotExist(err) {
		Te.Error("output written with no input files")
	}
	os.WriteFile(filepath.Join(dir, "FINAL_DECOMP_MMPBSA_PB_bad.csv"), []byte("no header\n"), 0o644)
	_, err = Run(context.Background(), O)
	if e, ok := err.(RunError); !ok || e.Message() != NoUsableInput {
		Te.Errorf("expected NoUsableInput, got %v", err)
	}
	if _, err := os.Stat(O.Output); !os.IsNotExist(err) {
		Te.Error("output written with no usable input")
	}
	O.Pattern = "[FINAL"
	if _, err = Run(context.Background(), O); err == nil {
		Te.Error("a malformed pattern should fail")
	}
}

func TestRunEmptyConsensus(Te *testing.T) {
	dir := Te.TempDir()
	writeDecomp(Te, dir, "FINAL_DECOMP_MMPBSA_PB_1.csv", [][2]string{{"R:A:TRP:1", "-5"}})
	writeDecomp(Te, dir, "FINAL_DECOMP_MMPBSA_PB_2.csv", [][2]string{{"R:A:TRP:2", "-5"}})
	O := quietOptions(dir)
	rep, err := Run(context.Background(), O)
	if err != nil {
		Te.Fatal(err)
	}
	if rep.Consensus.Len() != 0 {
		Te.Errorf("expected an empty consensus, got %v", rep.Consensus.Sorted())
	}
	out, _ := os.ReadFile(O.Output)
	if string(out) != "Residue\n" {
		Te.Errorf("unexpected output %q", out)
	}
}

func TestRunCancel(Te *testing.T) {
	dir := scenario(Te)
	O := quietOptions(dir)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, O); err != context.Canceled {
		Te.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(O.Output); !os.IsNotExist(err) {
		Te.Error("output written by a cancelled run")
	}
}

func TestSummary(Te *testing.T) {
	dir := scenario(Te)
	O := quietOptions(dir)
	O.Summary = filepath.Join(dir, "summary.json")
	rep, err := Run(context.Background(), O)
	if err != nil {
		Te.Fatal(err)
	}
	S := Summarize(rep)
	if len(S.Files) != 5 || S.Files[2].Significant != 0 || S.Files[2].NonNumeric != 1 || S.Files[3].Error == "" {
		Te.Errorf("wrong file summaries %+v", S.Files)
	}
	if len(S.Consensus) != 2 {
		Te.Fatalf("wrong consensus summary %+v", S.Consensus)
	}
	sd := math.Sqrt(1.125)
	expected := []ResidueSummary{
		{Residue: "R:A:ALA:2", Chain: "A", Name: "ALA", Number: 2, Class: "hydrophobic", Files: 2, Mean: -2.25, StdDev: sd, Min: -4},
		{Residue: "R:A:ALA:3", Chain: "A", Name: "ALA", Number: 3, Class: "hydrophobic", Files: 2, Mean: -2.25, StdDev: sd, Min: -3},
	}
	for i, v := range S.Consensus {
		e := expected[i]
		if v.Residue != e.Residue || v.Chain != e.Chain || v.Number != e.Number || v.Class != e.Class || v.Files != e.Files {
			Te.Errorf("residue summary %+v, expected %+v", v, e)
		}
		if math.Abs(v.Mean-e.Mean) > 1e-9 || math.Abs(v.StdDev-e.StdDev) > 1e-9 || math.Abs(v.Min-e.Min) > 1e-9 {
			Te.Errorf("residue statistics %+v, expected %+v", v, e)
		}
	}
	b, err := os.ReadFile(O.Summary)
	if err != nil {
		Te.Fatal(err)
	}
	if !bytes.Contains(b, []byte(`"residue": "R:A:ALA:2"`)) {
		Te.Errorf("summary file lacks the consensus:\n%s", b)
	}
}

func TestRunSummaryFails(Te *testing.T) {
	dir := scenario(Te)
	O := quietOptions(dir)
	O.Summary = filepath.Join(dir, "no_such_dir", "summary.json")
	rep, err := Run(context.Background(), O)
	if e, ok := err.(RunError); !ok || e.Message() != WriteFailed {
		Te.Fatalf("expected WriteFailed, got %v", err)
	}
	if rep == nil || rep.Consensus.Len() != 2 {
		Te.Fatalf("the report should come with the error: %v", rep)
	}
	out, err := os.ReadFile(O.Output)
	if err != nil {
		Te.Fatal(err)
	}
	if string(out) != "Residue\nR:A:ALA:2\nR:A:ALA:3\n" {
		Te.Errorf("consensus file not complete:\n%s", out)
	}
}

func TestDiscover(Te *testing.T) {
	dir := scenario(Te)
	os.Mkdir(filepath.Join(dir, "FINAL_DECOMP_MMPBSA_PB_dir.csv"), 0o755)
	files, err := Discover(dir, DefaultOptions().Pattern)
	if err != nil {
		Te.Fatal(err)
	}
	if len(files) != 5 {
		Te.Fatalf("found %v", files)
	}
	for i, v := range files {
		if filepath.Base(v) != fmt.Sprintf("FINAL_DECOMP_MMPBSA_PB_lig%d.csv", i+1) {
			Te.Errorf("unexpected file %s at position %d", v, i)
		}
	}
}

func TestWriteResiduesTo(Te *testing.T) {
	var b bytes.Buffer
	S := NewResidueSet("weird,id", "R:B:ALA:1", "R:A:GLU:10", "R:A:GLU:9")
	if err := WriteResiduesTo(&b, S); err != nil {
		Te.Fatal(err)
	}
	expected := "Residue\nR:A:GLU:9\nR:A:GLU:10\nR:B:ALA:1\n\"weird,id\"\n"
	if b.String() != expected {
		Te.Errorf("got\n%s\nexpected\n%s", b.String(), expected)
	}
}
