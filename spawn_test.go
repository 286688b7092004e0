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

package future_test

import (
	"sync/atomic"

	future "github.com/AlphaModder/specialized-futures"
	"github.com/AlphaModder/specialized-futures/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// failingLocalSpawner rejects every spawn, returning the future to the caller.
type failingLocalSpawner struct{}

var _ future.LocalSpawner = failingLocalSpawner{}

// SpawnObj implements future.Spawner.
func (failingLocalSpawner) SpawnObj(fut future.FutureObj) error {
	return &future.SpawnError{
		Kind:   future.SpawnErrorKindShutdown(),
		Future: fut,
	}
}

// SpawnLocalObj implements future.LocalSpawner.
func (failingLocalSpawner) SpawnLocalObj(fut future.LocalFutureObj) error {
	return &future.SpawnLocalError{
		Kind:   future.SpawnErrorKindShutdown(),
		Future: fut,
	}
}

// Status implements future.Spawner.
func (failingLocalSpawner) Status() error {
	return future.SpawnErrorKindShutdown()
}

var _ = Describe("SpawnErrorKind", func() {
	It("classifies the shutdown kind", func() {
		kind := future.SpawnErrorKindShutdown()
		Expect(kind.IsShutdown()).Should(BeTrue())
		Expect(kind.Error()).Should(ContainSubstring("shut down"))
	})
})

var _ = Describe("Spawn failure", func() {
	var cx *future.Context

	BeforeEach(func() {
		cx = future.NewContext(future.NopWaker, nil)
	})

	It("returns the original future unchanged inside the error", func() {
		var spawner future.Spawner = failingLocalSpawner{}

		obj := future.NewFutureObj(future.NewRawFuture(future.Ready("unique tag")))
		err := spawner.SpawnObj(obj)
		Expect(err).Should(HaveOccurred())

		spawnErr, ok := err.(*future.SpawnError)
		Expect(ok).Should(BeTrue())
		Expect(spawnErr.Kind.IsShutdown()).Should(BeTrue())

		// Ownership came back: the carried future is the one we tried to spawn.
		returned := spawnErr.Future
		Expect(returned.Poll(cx)).Should(testutil.BeReadyWith("unique tag"))
		returned.Release()
	})

	It("returns the original confined future unchanged inside the local error", func() {
		var spawner future.LocalSpawner = failingLocalSpawner{}

		obj := future.NewLocalFutureObj(future.NewRawFuture(future.Ready("local tag")))
		err := spawner.SpawnLocalObj(obj)
		Expect(err).Should(HaveOccurred())

		spawnErr, ok := err.(*future.SpawnLocalError)
		Expect(ok).Should(BeTrue())
		Expect(spawnErr.Kind.IsShutdown()).Should(BeTrue())

		returned := spawnErr.Future
		Expect(returned.Poll(cx)).Should(testutil.BeReadyWith("local tag"))
		returned.Release()
	})

	It("reports unhealthy through the status probe", func() {
		Expect(failingLocalSpawner{}.Status()).Should(HaveOccurred())
	})
})

var _ = Describe("GoroutineSpawner", func() {
	newTaskObj := func(run func()) future.FutureObj {
		return future.NewFutureObj(future.NewRawFuture(futureFunc(
			func(cx *future.Context) future.PollResult {
				run()
				return nil
			})))
	}

	It("reports healthy while accepting tasks", func() {
		spawner := future.NewGoroutineSpawner(0)
		Expect(spawner.Status()).Should(Succeed())
	})

	It("runs every spawned future to completion", func() {
		var completed int32

		spawner := future.NewGoroutineSpawner(0)
		for i := 0; i < 10; i++ {
			obj := newTaskObj(func() { atomic.AddInt32(&completed, 1) })
			Expect(spawner.SpawnObj(obj)).Should(Succeed())
		}

		spawner.Shutdown()
		spawner.Wait()
		Expect(atomic.LoadInt32(&completed)).Should(Equal(int32(10)))
	})

	It("lets a task spawn siblings through its poll context", func() {
		var (
			childRan int32
			spawnErr error
		)

		// Assertions happen after Wait; the task goroutine only records.
		spawner := future.NewGoroutineSpawner(0)
		parent := future.NewFutureObj(future.NewRawFuture(futureFunc(
			func(cx *future.Context) future.PollResult {
				child := newTaskObj(func() { atomic.AddInt32(&childRan, 1) })
				spawnErr = cx.Spawner().SpawnObj(child)
				return nil
			})))

		Expect(spawner.SpawnObj(parent)).Should(Succeed())
		spawner.Wait()
		Expect(spawnErr).Should(Succeed())
		Expect(atomic.LoadInt32(&childRan)).Should(Equal(int32(1)))
	})

	It("rejects spawns after shutdown and hands the future back", func() {
		spawner := future.NewGoroutineSpawner(0)
		spawner.Shutdown()
		Expect(spawner.Status()).Should(HaveOccurred())

		obj := future.NewFutureObj(future.NewRawFuture(future.Ready("rejected")))
		err := spawner.SpawnObj(obj)
		spawnErr, ok := err.(*future.SpawnError)
		Expect(ok).Should(BeTrue())
		Expect(spawnErr.Kind.IsShutdown()).Should(BeTrue())

		cx := future.NewContext(future.NopWaker, nil)
		returned := spawnErr.Future
		Expect(returned.Poll(cx)).Should(testutil.BeReadyWith("rejected"))
		returned.Release()
	})

	It("rejects spawns over the concurrent-task cap without blocking", func() {
		spawner := future.NewGoroutineSpawner(1)

		gate := &gateFuture{value: "occupant done"}
		occupant := future.NewFutureObj(future.NewRawFuture(gate))
		Expect(spawner.SpawnObj(occupant)).Should(Succeed())

		// The single seat is taken until the gate opens.
		overflow := future.NewFutureObj(future.NewRawFuture(future.Ready("overflow")))
		err := spawner.SpawnObj(overflow)
		spawnErr, ok := err.(*future.SpawnError)
		Expect(ok).Should(BeTrue())
		returned := spawnErr.Future
		returned.Release()

		gate.Open()
		spawner.Wait()
	})
})
