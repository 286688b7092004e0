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

// Package future provides the core mechanics for cooperative, poll-driven asynchronous
// computation: the Future suspend/resume contract, the per-poll Context bundling a wake handle
// with a task Spawner, the spawn capability and its error model, and type-erased future
// containers (LocalFutureObj, FutureObj) built on a hand-rolled dispatch table (RawFuture).
//
// The package deliberately stops at the contracts. Executors that schedule tasks, the delivery
// mechanism behind a Waker, and future combinators all live outside and interact with this core
// purely through its interfaces; GoroutineSpawner and BlockOn are the minimal collaborators
// provided so the contracts can be exercised out of the box.
package future
