/*
 * run.go, part of mmpbsa.
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
	"context"
	"runtime"
	"sync"
)

//Report contains the results of a consensus run.
type Report struct {
	Threshold float64
	Files     []*FileResult //in the order returned by Discover
	Consensus ResidueSet
}

//Used returns the number of files that contributed a non-empty set to the consensus.
func (R *Report) Used() int {
	n := 0
	for _, v := range R.Files {
		if v.Err == nil && v.Set.Len() > 0 {
			n++
		}
	}
	return n
}

//Run finds the decomposition files given by O, extracts the significant residues
//from each of them concurrently, and computes their consensus. The consensus is
//written to O.Output (and a summary to O.Summary, if set) only after all files
//have been processed. Files that can't be read are logged and left out.
//Run fails only if no file matches, if no file could be used, or if ctx is cancelled,
//and in those cases nothing is written. The consensus is written before the
//summary, so if writing the summary fails, the error is returned together with
//the Report and O.Output already holds the complete consensus.
func Run(ctx context.Context, O *Options) (*Report, error) {
	if O == nil {
		O = DefaultOptions()
	}
	files, err := Discover(O.Dir, O.Pattern)
	if err != nil {
		return nil, errDecorate(err, "Run")
	}
	O.logf("Processing %d files, threshold %.3f", len(files), O.Threshold)
	results := extractAll(ctx, files, O)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sets := make([]ResidueSet, 0, len(results))
	for _, v := range results {
		if v.Err != nil {
			O.logf("Warning: %s will be skipped: %v", v.Name, v.Err)
			continue
		}
		O.logf("%s", v)
		sets = append(sets, v.Set)
	}
	if len(sets) == 0 {
		return nil, RunError{NoUsableInput, "", "", []string{"Run"}, true}
	}
	rep := &Report{Threshold: O.Threshold, Files: results, Consensus: Consensus(sets...)}
	O.logf("%d residues in common across %d files with significant residues", rep.Consensus.Len(), rep.Used())
	if O.Output != "" {
		if err := WriteResidues(O.Output, rep.Consensus); err != nil {
			return rep, errDecorate(err, "Run")
		}
		O.logf("Results saved to %s", O.Output)
	}
	if O.Summary != "" {
		if err := WriteSummary(O.Summary, Summarize(rep)); err != nil {
			return rep, errDecorate(err, "Run")
		}
	}
	return rep, nil
}

//extractAll runs ExtractFile on all files with at most O.Cpus goroutines.
//Each goroutine writes only its own elements of the returned slice.
func extractAll(ctx context.Context, files []string, O *Options) []*FileResult {
	results := make([]*FileResult, len(files))
	workers := O.Cpus
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}
	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j] = ExtractFile(ctx, files[j], O)
			}
		}()
	}
	wg.Wait()
	return results
}
