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

import "unsafe"

//===----------------------------------------------------------------------------------------====//
// RawFuture
//===----------------------------------------------------------------------------------------====//

// A RawFuture is a hand-rolled dispatch-table representation of a future: an opaque handle plus
// poll and release operations that act on that handle. It exists so a container can hold and poll
// "some future" without knowing its concrete type and without relying on interface dispatch over
// the concrete value (the handle may just as well index into an arena as point at a Go object).
//
// The implementer must uphold the following contract:
//
//   - IntoRaw consumes the value: after it returns, the handle is the sole ownership channel to
//     the underlying future and the implementer must not touch the future through any other path.
//   - PollRaw and ReleaseRaw must operate solely on the handle they are given, never on state of
//     the receiver; containers capture them once at construction and invoke them long after.
//   - It must be safe to call PollRaw repeatedly (never concurrently with another PollRaw or with
//     ReleaseRaw on the same handle) until ReleaseRaw is called.
//   - ReleaseRaw must be safe to call exactly once per handle, not concurrently with PollRaw or
//     another ReleaseRaw.
//
// These are also preconditions the caller must respect; LocalFutureObj and FutureObj are the
// intended callers and enforce them with runtime assertions.
type RawFuture interface {
	// IntoRaw consumes the value and yields the opaque handle for it.
	IntoRaw() unsafe.Pointer

	// PollRaw polls the future represented by the given handle.
	PollRaw(handle unsafe.Pointer, cx *Context) PollResult

	// ReleaseRaw releases the future represented by the given handle, including when it never
	// completed (cancellation).
	ReleaseRaw(handle unsafe.Pointer)
}

// rawFutureSlot adapts an ordinary Future into a RawFuture by placing it in a dedicated heap slot.
// The slot's address never changes for the lifetime of the handle, so the adapted future is
// location-locked regardless of whether it declares Relocatable.
type rawFutureSlot struct {
	future Future
}

// NewRawFuture adapts f into a RawFuture backed by a stable heap slot, transferring ownership of f
// into the returned value. The caller must not poll f through any other path afterwards.
func NewRawFuture(f Future) RawFuture {
	return &rawFutureSlot{future: f}
}

// IntoRaw implements RawFuture.
func (slot *rawFutureSlot) IntoRaw() unsafe.Pointer {
	return unsafe.Pointer(slot)
}

// PollRaw implements RawFuture.
func (*rawFutureSlot) PollRaw(handle unsafe.Pointer, cx *Context) PollResult {
	return (*rawFutureSlot)(handle).future.Poll(cx)
}

// ReleaseRaw implements RawFuture.
func (*rawFutureSlot) ReleaseRaw(handle unsafe.Pointer) {
	(*rawFutureSlot)(handle).future = nil
}

//===----------------------------------------------------------------------------------------====//
// LocalFutureObj
//===----------------------------------------------------------------------------------------====//

// A LocalFutureObj is a type-erased container for a future confined to one execution context,
// roughly akin to an owned "boxed future" value. It captures the opaque handle and the poll and
// release functions from a RawFuture at construction time, and from then on the handle is only
// ever operated on through those captured functions.
//
// A LocalFutureObj is itself a Future, so it composes with any code written against the Future
// contract; this is the container's entire purpose: letting heterogeneous concrete futures be
// stored and polled through one uniform type. It holds no interior references of its own — just
// the handle and two function values — so it declares Relocatable and may be moved freely between
// polls.
//
// The owner must call Release exactly once when done with the container, whether or not it was
// ever polled to completion (releasing before the future is ready is the expected cancellation
// path). Poll after Release, double Release, and concurrent Poll/Release are contract violations;
// the first two panic, the last is the owner's responsibility.
type LocalFutureObj struct {
	handle    unsafe.Pointer
	pollFn    func(unsafe.Pointer, *Context) PollResult
	releaseFn func(unsafe.Pointer)
}

var (
	_ Future      = (*LocalFutureObj)(nil)
	_ Relocatable = (*LocalFutureObj)(nil)
)

// NewLocalFutureObj creates a LocalFutureObj from a custom dispatch-table representation,
// consuming f.
func NewLocalFutureObj(f RawFuture) LocalFutureObj {
	return LocalFutureObj{
		handle:    f.IntoRaw(),
		pollFn:    f.PollRaw,
		releaseFn: f.ReleaseRaw,
	}
}

// Poll implements Future. It forwards to the poll function captured at construction.
func (obj *LocalFutureObj) Poll(cx *Context) PollResult {
	if obj.releaseFn == nil {
		panic("future: Poll called on a released LocalFutureObj")
	}
	return obj.pollFn(obj.handle, cx)
}

// Relocatable is a marker method and does nothing.
func (obj *LocalFutureObj) Relocatable() {}

// Release releases the underlying future. It must be called exactly once per container, even if
// the container is discarded without ever being polled to completion; calling it a second time
// panics.
func (obj *LocalFutureObj) Release() {
	releaseFn := obj.releaseFn
	if releaseFn == nil {
		panic("future: Release called twice on a LocalFutureObj")
	}
	obj.releaseFn = nil
	obj.pollFn = nil
	releaseFn(obj.handle)
	obj.handle = nil
}

// IntoFutureObj converts the LocalFutureObj into a FutureObj, consuming the receiver (it must not
// be used afterwards).
//
// To make this operation sound the caller has to guarantee that the RawFuture from which this
// LocalFutureObj was created is actually safe to poll from other goroutines; nothing about the
// confined form alone can establish that, so it is asserted, not checked.
func (obj *LocalFutureObj) IntoFutureObj() FutureObj {
	return FutureObj{inner: *obj}
}

//===----------------------------------------------------------------------------------------====//
// FutureObj
//===----------------------------------------------------------------------------------------====//

// A FutureObj is a LocalFutureObj whose underlying future is additionally guaranteed — by the
// code that constructed it, not mechanically checked — to be safe to hand across goroutine
// boundaries. It is the currency of Spawner.SpawnObj: a spawned task may be polled by whichever
// execution context the executor chooses.
//
// Identical mechanics to LocalFutureObj otherwise: it is itself a Future and Relocatable, forwards
// Poll to the captured function unchanged, and must be released exactly once. The dispatch-table
// exclusivity rule still applies; transferability only means the exclusive Poll/Release calls may
// come from different goroutines over time, never concurrently.
type FutureObj struct {
	inner LocalFutureObj
}

var (
	_ Future      = (*FutureObj)(nil)
	_ Relocatable = (*FutureObj)(nil)
)

// NewFutureObj creates a FutureObj from a custom dispatch-table representation, consuming f. The
// caller guarantees that f is safe to poll from other goroutines.
func NewFutureObj(f RawFuture) FutureObj {
	return FutureObj{inner: NewLocalFutureObj(f)}
}

// Poll implements Future. It forwards to the poll function captured at construction.
func (obj *FutureObj) Poll(cx *Context) PollResult {
	return obj.inner.Poll(cx)
}

// Relocatable is a marker method and does nothing.
func (obj *FutureObj) Relocatable() {}

// Release releases the underlying future. Same discipline as LocalFutureObj.Release.
func (obj *FutureObj) Release() {
	obj.inner.Release()
}

// IntoLocalFutureObj converts the FutureObj into a LocalFutureObj, consuming the receiver (it
// must not be used afterwards). Dropping transferability is always safe, so this is a plain
// conversion.
func (obj *FutureObj) IntoLocalFutureObj() LocalFutureObj {
	return obj.inner
}
