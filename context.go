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

// A Context carries information about the currently-running task into a Poll call: the wake handle
// under which the task is being polled and the Spawner of the executor driving it.
//
// Contexts are ephemeral. A driver constructs a fresh Context for every Poll invocation and the
// Context is only valid until that invocation returns. A future must not store a Context; the only
// part designed for retention is the Waker.
//
// There is no implicit process-wide executor: whoever performs the Poll decides which Spawner the
// polled future sees, explicitly, at construction time.
type Context struct {
	localWaker LocalWaker
	spawner    Spawner
}

// NewContext creates a task Context with the provided wake handle and spawner. Drivers call this
// once per Poll invocation.
func NewContext(localWaker LocalWaker, spawner Spawner) *Context {
	return &Context{
		localWaker: localWaker,
		spawner:    spawner,
	}
}

// LocalWaker returns the wake handle associated with the current task in its confinement form.
func (cx *Context) LocalWaker() LocalWaker {
	return cx.localWaker
}

// Waker returns the wake handle associated with the current task in the form that may be retained
// and invoked from any goroutine. It denotes the same notification target as LocalWaker.
func (cx *Context) Waker() Waker {
	return cx.localWaker
}

// Spawner returns the spawner associated with the current task.
//
// This method is useful primarily if you want to explicitly handle spawn failures.
func (cx *Context) Spawner() Spawner {
	return cx.spawner
}

// WithWaker produces a Context like the current one, but using the given wake handle instead. The
// receiver is left untouched.
//
// This advanced method is primarily used when building "internal schedulers" within a task, where
// sub-futures should wake through customized wakeup logic while still spawning through the same
// spawner.
func (cx *Context) WithWaker(localWaker LocalWaker) *Context {
	return &Context{
		localWaker: localWaker,
		spawner:    cx.spawner,
	}
}

// WithSpawner produces a Context like the current one, but using the given spawner instead. The
// receiver is left untouched.
//
// This is useful for futures that impose spawn-time policy (quotas, tagging, redirection) on their
// sub-futures: the substituted spawner is only ever seen by futures polled through the derived
// Context.
func (cx *Context) WithSpawner(spawner Spawner) *Context {
	return &Context{
		localWaker: cx.localWaker,
		spawner:    spawner,
	}
}
