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

package testutil

import (
	future "github.com/AlphaModder/specialized-futures"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
)

// BePending matches a PollResult which indicates the future is not ready yet.
//
//		Expect(f.Poll(cx)).Should(BePending())
func BePending() types.GomegaMatcher {
	return gomega.Equal(future.PollResultPending)
}

// BeReadyWith matches a PollResult which carries the given final value. Note that a pending
// result never matches, even against PollResultPending itself.
//
//		Expect(f.Poll(cx)).Should(BeReadyWith(42))
func BeReadyWith(value interface{}) types.GomegaMatcher {
	return gomega.SatisfyAll(
		gomega.Not(BePending()),
		gomega.Equal(value),
	)
}
