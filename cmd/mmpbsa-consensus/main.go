/*
 * main.go, part of mmpbsa.
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

//mmpbsa-consensus finds the residues that contribute significantly to the
//binding free energy in all the MMPBSA decomposition files in a directory,
//and writes them to a CSV file with a single "Residue" column.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rmera/mmpbsa"
	"github.com/rmera/mmpbsa/watch"
)

func init() {
	log.SetFlags(0)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Finds the residues with a TOTAL decomposition energy below the threshold in every decomposition file.")
	flag.PrintDefaults()
}

func main() {
	O := mmpbsa.DefaultOptions()
	flag.StringVar(&O.Dir, "dir", O.Dir, "Directory with the decomposition files.")
	flag.StringVar(&O.Pattern, "pattern", O.Pattern, "Glob pattern for the decomposition files. Files ending in .gz or .zst are decompressed.")
	flag.Float64Var(&O.Threshold, "threshold", O.Threshold, "A residue is significant if its TOTAL energy is lower than this (kcal/mol).")
	flag.IntVar(&O.ChunkSize, "chunk", O.ChunkSize, "Number of rows read at a time from each file.")
	flag.IntVar(&O.Cpus, "cpu", O.Cpus, "The max number of files processed at the same time.")
	flag.StringVar(&O.Output, "out", O.Output, "Output CSV file for the consensus residues.")
	flag.StringVar(&O.Summary, "summary", "", "If given, a JSON summary with per-file counts and per-residue statistics is written here.")
	flag.StringVar(&O.Sentinel, "sentinel", O.Sentinel, "A line starting with this marks the table header.")
	flag.StringVar(&O.ResidueColumn, "residue-col", O.ResidueColumn, "Name of the residue column.")
	flag.StringVar(&O.EnergyColumn, "energy-col", O.EnergyColumn, "Name of the total energy column.")
	watchMode := flag.Bool("watch", false, "Keep running, and recompute the consensus whenever a decomposition file is created or modified.")
	quiet := flag.Duration("quiet", 2*time.Second, "In watch mode, wait until files have been unchanged for this long before recomputing.")
	flag.Usage = usage
	flag.Parse()
	if O.Cpus <= 0 || O.ChunkSize <= 0 {
		log.Fatal("-cpu and -chunk must be positive")
	}
	if strings.TrimSpace(O.Sentinel) == "" {
		log.Fatal("-sentinel can't be empty")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if !*watchMode {
		if _, err := mmpbsa.Run(ctx, O); err != nil {
			stop()
			log.Fatal(err)
		}
		return
	}
	w, err := watch.New(O.Dir, O.Pattern, *quiet)
	if err != nil {
		stop()
		log.Fatal(err)
	}
	defer w.Close()
	changes, err := w.Changes(ctx)
	if err != nil {
		stop()
		log.Fatal(err)
	}
	runOnce(ctx, O)
	for name := range changes {
		log.Printf("%s changed, recomputing", name)
		runOnce(ctx, O)
	}
}

//runOnce runs the analysis, errors are only logged since in watch mode
//more files may come later.
func runOnce(ctx context.Context, O *mmpbsa.Options) {
	_, err := mmpbsa.Run(ctx, O)
	if err == nil || ctx.Err() != nil {
		return
	}
	if mmpbsa.IsNoInputFiles(err) {
		log.Printf("No decomposition files yet, waiting: %v", err)
		return
	}
	log.Printf("Error: %v", err)
}
