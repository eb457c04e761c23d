// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

// Merge extends the result with other's content, preserving both orders.
//
// Sequences are appended after the current entries. Timeout is
// last-writer-wins: a timeout set anywhere in other overrides the current
// value, so the merged tree behaves like one textually inlined document.
func (r *ParseResult) Merge(other *ParseResult) {
	if other == nil {
		return
	}

	r.Bind = append(r.Bind, other.Bind...)
	r.Proxy = append(r.Proxy, other.Proxy...)
	r.Hosts.Merge(&other.Hosts)
	r.Invalid = append(r.Invalid, other.Invalid...)
	r.Sources = append(r.Sources, other.Sources...)

	if other.Timeout != nil {
		r.Timeout = other.Timeout
	}
}
