/*
 * watch.go, part of mmpbsa.
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

//Package watch signals when decomposition files appear or change in a
//directory, so the consensus can be recomputed as simulations finish.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

//Watcher watches a directory for files matching a glob pattern.
type Watcher struct {
	w       *fsnotify.Watcher
	dir     string
	pattern string
	quiet   time.Duration
}

//New returns a Watcher for the files in dir matching pattern. Bursts of events
//are merged: a change is only reported once nothing has happened for quiet.
func New(dir, pattern string, quiet time.Duration) (*Watcher, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("watch: bad pattern %q: %w", pattern, err)
	}
	if dir == "" {
		dir = "."
	}
	if quiet <= 0 {
		quiet = time.Second
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{w: w, dir: dir, pattern: pattern, quiet: quiet}, nil
}

//matches returns true if the event is a creation or modification of a watched file.
func (W *Watcher) matches(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Rename) {
		return false
	}
	ok, _ := filepath.Match(W.pattern, filepath.Base(ev.Name))
	return ok
}

//Changes starts watching and returns a channel that gets the name of the last
//changed file after each burst of changes. If the receiver is busy, further
//changes are merged into the one pending. The channel is closed when ctx is
//done or the Watcher is closed.
func (W *Watcher) Changes(ctx context.Context) (<-chan string, error) {
	if err := W.w.Add(W.dir); err != nil {
		return nil, err
	}
	out := make(chan string, 1)
	go func() {
		defer close(out)
		var timer *time.Timer
		var fire <-chan time.Time
		var last string
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case ev, ok := <-W.w.Events:
				if !ok {
					return
				}
				if !W.matches(ev) {
					continue
				}
				last = ev.Name
				if timer == nil {
					timer = time.NewTimer(W.quiet)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(W.quiet)
				}
				fire = timer.C
			case err, ok := <-W.w.Errors:
				if !ok {
					return
				}
				log.Printf("Error watching %s: %v", W.dir, err)
			case <-fire:
				fire = nil
				select {
				case out <- last:
				default:
				}
			}
		}
	}()
	return out, nil
}

//Close stops watching.
func (W *Watcher) Close() error {
	return W.w.Close()
}
