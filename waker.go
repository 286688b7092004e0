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

// A Waker is a handle to "wake up" a Future that was previously polled to a pending. Practically,
// it notifies the executor to place the associated task back on its queue of ready tasks.
//
// A Waker is the only part of a Context that a pending future is allowed to retain past the Poll
// call. Implementations must tolerate Wake being invoked from any goroutine, any number of times,
// concurrently, and possibly while a Poll on the associated task is still in flight.
type Waker interface {
	// Wake indicates the associated task is ready to make progress and should be polled again.
	Wake() error
}

// LocalWaker is the confinement form of a Waker: the wake handle as seen from within the execution
// context that owns the task. In environments where wake handles are not freely transferable the
// two forms are distinct types; here every Waker already satisfies the "invocable from any
// goroutine" requirement, so the confinement form carries no extra restriction and the two names
// denote the same notification target.
type LocalWaker = Waker

// The WakerFunc type is an adapter to allow the use of ordinary functions as Waker.
type WakerFunc func() error

// Wake implements Waker which calls f().
func (f WakerFunc) Wake() error {
	return f()
}

// Type for NopWaker
type nopWaker int

func (nopWaker) Wake() error {
	return nil
}

// NopWaker is a Waker that does nothing. It is useful to be used as an initial value for Waker.
const NopWaker nopWaker = 0
