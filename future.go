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

// A Future represents an asynchronous computation.
//
// The design is borrowed from Rust's Future [0][1][2].
//
// A Future is a value that may not have finished computing yet. Futures alone are inert; they must
// be actively polled to make progress, meaning that each time the current task is woken up, it
// should actively re-poll pending futures that it still has an interest in.
//
// Poll is not called repeatedly in a tight loop — instead, it should only be called when the future
// indicates that it is ready to make progress (by calling Wake on the Waker obtained from the
// Context passed to the previous Poll). If you're familiar with the poll(2) or select(2) syscalls
// on Unix it's worth noting that futures typically do *not* suffer the same problems of "all
// wakeups must poll all events"; they are more like epoll(4).
//
// An implementation of Poll should strive to return quickly, and must *never* block. Returning
// quickly prevents unnecessarily clogging up threads or event loops. If it is known ahead of time
// that a call to Poll may end up taking awhile, the work should be offloaded to a thread pool (or
// something similar) to ensure that Poll can return quickly.
//
// Note for implementers: a Future may keep state that refers into its own storage (e.g., a parser
// keeping a slice over its own buffer across suspensions). Such a future must only ever be polled
// through a pointer, never copied between polls. Go never relocates an object that is reachable
// through a pointer, so a future held behind a pointer is location-locked for as long as the
// pointer is held. A future that keeps no such interior references may additionally declare the
// Relocatable marker, which permits callers to copy it freely between polls.
//
// [0]: https://doc.rust-lang.org/std/future/index.html
// [1]: http://aturon.github.io/blog/2016/08/11/futures/
// [2]: https://aturon.github.io/blog/2016/09/07/futures-design/
type Future interface {
	// Poll attempts to resolve the future to a final value, registering the current task for wakeup
	// if the value is not yet available.
	//
	// Poll returns PollResultPending to indicate that the future is not ready yet; any other return
	// value (nil included) is the final value and the future is finished. Once a future has
	// finished, clients must not poll it again; implementations are not required to detect this.
	//
	// There is no error return. A future whose computation can fail encodes the failure in its
	// final value (e.g., by completing with an error value) and it is between the future and its
	// consumer how that value is shaped.
	//
	// When a future is not ready yet, Poll returns PollResultPending and stores the Waker obtained
	// from cx to be invoked once the future can make progress. For example, a future waiting for a
	// socket to become readable would store the waker. When a signal arrives elsewhere indicating
	// that the socket is readable, Wake is called and the future's task is awoken. Once a task has
	// been woken up, it should attempt to poll the future again, which may or may not produce a
	// final value; a wakeup delivered early or redundantly simply results in another
	// PollResultPending.
	//
	// Note that on multiple calls to Poll, only the waker from the most recent call should be
	// scheduled to receive a wakeup.
	//
	// cx is only valid for the duration of the call. The only part of it designed for retention is
	// the Waker; everything else (the Context itself and the Spawner reached through it) must not
	// be stored past the call's return.
	Poll(cx *Context) PollResult
}

// Relocatable is declared by futures that keep no references into their own storage and can
// therefore be copied between Poll calls without invalidating internal state. Containers and
// combinators that need to move futures around in memory should require this capability; for all
// other futures they must operate on a fixed storage slot instead (see NewRawFuture).
//
// Declaring Relocatable is a promise checked by nothing but the implementation itself.
type Relocatable interface {
	Future

	// Relocatable is a marker method and does nothing.
	Relocatable()
}
