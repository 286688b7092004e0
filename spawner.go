/**
 * Copyright (c) 2019, The Specialized Futures Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package future

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// A GoroutineSpawner is a Spawner that runs every spawned future on its own goroutine, each driven
// to completion by BlockOn with the spawner itself as the sibling spawner. It is the smallest real
// executor this package's contracts admit: there is no run queue and no fairness policy because
// scheduling is left entirely to the Go runtime.
//
// The zero value is a usable spawner with no concurrency cap. A GoroutineSpawner must not be
// copied after first use.
type GoroutineSpawner struct {
	group    errgroup.Group
	shutdown int32
}

var _ Spawner = (*GoroutineSpawner)(nil)

// NewGoroutineSpawner creates a GoroutineSpawner that runs at most maxTasks tasks at the same
// time; maxTasks <= 0 means no cap. When the cap is reached further spawns fail (with the future
// returned to the caller) rather than block, since SpawnObj may be called from inside a Poll and
// must never block there.
func NewGoroutineSpawner(maxTasks int) *GoroutineSpawner {
	s := &GoroutineSpawner{}
	if maxTasks > 0 {
		s.group.SetLimit(maxTasks)
	}
	return s
}

// SpawnObj implements Spawner. The spawned task polls fut with a fresh Context per poll, parks on
// its waker between polls, and releases fut after it produces its final value.
//
// The returned *SpawnError currently reports the shutdown kind for capacity rejections too; the
// kind taxonomy defines nothing finer yet.
func (s *GoroutineSpawner) SpawnObj(fut FutureObj) error {
	if atomic.LoadInt32(&s.shutdown) != 0 {
		return &SpawnError{
			Kind:   SpawnErrorKindShutdown(),
			Future: fut,
		}
	}

	started := s.group.TryGo(func() error {
		BlockOn(&fut, s)
		fut.Release()
		return nil
	})
	if !started {
		return &SpawnError{
			Kind:   SpawnErrorKindShutdown(),
			Future: fut,
		}
	}
	return nil
}

// Status implements Spawner.
func (s *GoroutineSpawner) Status() error {
	if atomic.LoadInt32(&s.shutdown) != 0 {
		return SpawnErrorKindShutdown()
	}
	return nil
}

// Shutdown stops the spawner from accepting new tasks. Tasks that were already spawned keep
// running; use Wait to join them. Shutdown is idempotent and safe for concurrent use.
func (s *GoroutineSpawner) Shutdown() {
	atomic.StoreInt32(&s.shutdown, 1)
}

// Wait blocks until every task spawned so far has completed. It does not prevent further spawns;
// callers that want a drained spawner call Shutdown first.
func (s *GoroutineSpawner) Wait() {
	// Task functions never return a non-nil error; the group is used for joining and the
	// concurrency cap only.
	_ = s.group.Wait()
}
