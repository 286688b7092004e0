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

// A Spawner spawns tasks that poll futures to completion onto its associated task executor.
//
// The term "task" refers to a kind of lightweight "thread". Executors are responsible for
// scheduling the execution of tasks; this package does not prescribe how (a Spawner may be backed
// by anything from a single-threaded cooperative loop to a work-stealing pool).
//
// A Spawner is owned by its executor and is exclusively borrowed by a Context for the duration of
// one Poll call; only the currently polling future may spawn through it during that call.
type Spawner interface {
	// SpawnObj spawns a new task with the given future. The future will be polled until completion;
	// its final value is discarded.
	//
	// On failure SpawnObj returns a *SpawnError which carries fut back to the caller unmodified.
	// Spawning never silently discards caller-owned work: the caller may retry, redirect the future
	// to another spawner, or release it explicitly.
	SpawnObj(fut FutureObj) error

	// Status determines whether the spawner is able to spawn new tasks.
	//
	// The probe is best-effort and non-binding: a nil return means a subsequent spawn is *likely*
	// (but not guaranteed) to be accepted, and a non-nil return (a SpawnErrorKind) means a
	// subsequent spawn is likely, but not guaranteed, to fail. Implementations with no failure
	// conditions simply return nil.
	Status() error
}

// A LocalSpawner is a Spawner that can additionally spawn futures confined to its own execution
// context. Executors that only ever poll tasks on one goroutine never need transferability from
// the futures they run and can accept the confined container directly.
type LocalSpawner interface {
	Spawner

	// SpawnLocalObj spawns a new task with the given confined future, which will only ever be
	// polled on the spawner's own execution context.
	//
	// On failure SpawnLocalObj returns a *SpawnLocalError which carries fut back to the caller
	// unmodified, with the same never-discard guarantee as SpawnObj.
	SpawnLocalObj(fut LocalFutureObj) error
}

// SpawnErrorKind classifies the reason a spawner was unable to spawn. The classification is
// deliberately narrow today and extensible without breaking callers that match generically.
//
// SpawnErrorKind implements error so a Spawner's Status can return it directly.
type SpawnErrorKind struct {
	kind int
}

// Enumeration of spawn error kinds. New kinds must be appended.
const (
	spawnErrorShutdown = iota
)

// SpawnErrorKindShutdown returns the kind reporting that spawning failed because the executor has
// been shut down. It is the only kind currently defined.
func SpawnErrorKindShutdown() SpawnErrorKind {
	return SpawnErrorKind{kind: spawnErrorShutdown}
}

// IsShutdown reports whether this kind is the shutdown kind.
//
// Until further kinds are defined every SpawnErrorKind in existence is the shutdown kind, so a
// true return currently tells the caller no more than "spawn failed".
func (kind SpawnErrorKind) IsShutdown() bool {
	return kind.kind == spawnErrorShutdown
}

// Error implements error.
func (kind SpawnErrorKind) Error() string {
	return "future: spawner has been shut down"
}

// A SpawnError is returned by Spawner.SpawnObj when a spawn fails. It carries the future for which
// spawning was attempted so ownership returns to the caller.
type SpawnError struct {
	// The kind of error
	Kind SpawnErrorKind

	// The future that failed to spawn, exactly as it was handed to SpawnObj
	Future FutureObj
}

// SpawnError implements error.
var _ error = (*SpawnError)(nil)

// Error implements error.
func (e *SpawnError) Error() string {
	return "future: failed to spawn task: " + e.Kind.Error()
}

// A SpawnLocalError is returned by LocalSpawner.SpawnLocalObj when a spawn fails. It carries the
// confined future for which spawning was attempted so ownership returns to the caller.
type SpawnLocalError struct {
	// The kind of error
	Kind SpawnErrorKind

	// The future that failed to spawn, exactly as it was handed to SpawnLocalObj
	Future LocalFutureObj
}

// SpawnLocalError implements error.
var _ error = (*SpawnLocalError)(nil)

// Error implements error.
func (e *SpawnLocalError) Error() string {
	return "future: failed to spawn local task: " + e.Kind.Error()
}
