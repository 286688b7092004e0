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

// shutdownSpawner rejects every spawn with the shutdown kind. It backs BlockOn when the caller
// provides no spawner.
type shutdownSpawner int

var _ Spawner = shutdownSpawner(0)

// SpawnObj implements Spawner.
func (shutdownSpawner) SpawnObj(fut FutureObj) error {
	return &SpawnError{
		Kind:   SpawnErrorKindShutdown(),
		Future: fut,
	}
}

// Status implements Spawner.
func (shutdownSpawner) Status() error {
	return SpawnErrorKindShutdown()
}

// BlockOn drives f on the calling goroutine until it produces a final value, and returns that
// value. Between polls the goroutine parks until the waker handed to the previous poll fires; the
// waker may fire from any goroutine, redundantly or early, and a poll that still comes up pending
// simply parks again.
//
// A fresh Context is constructed for every poll. Futures polled by BlockOn spawn through spawner;
// passing nil makes every spawn attempt fail with the shutdown kind, so callers that expect f to
// spawn siblings must provide a real spawner explicitly.
//
// f must not be polled through any other path while BlockOn runs.
func BlockOn(f Future, spawner Spawner) PollResult {
	if spawner == nil {
		spawner = shutdownSpawner(0)
	}

	// A 1-buffered channel coalesces redundant wakeups; a Wake while a poll is in flight is kept
	// and unparks the next wait immediately.
	wakeups := make(chan struct{}, 1)
	waker := WakerFunc(func() error {
		select {
		case wakeups <- struct{}{}:
		default:
		}
		return nil
	})

	for {
		result := f.Poll(NewContext(waker, spawner))
		if result != PollResultPending {
			return result
		}
		<-wakeups
	}
}
