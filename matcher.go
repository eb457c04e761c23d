// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import "regexp"

// HostKind identifies the matching strategy selected for one pattern.
type HostKind uint8

const (
	// HostLiteral matches by exact string equality.
	HostLiteral HostKind = iota
	// HostWildcard matches by an anchored pattern compiled from "*" syntax.
	HostWildcard
	// HostPattern matches by a user-supplied pattern compiled verbatim.
	HostPattern
)

// Host matches candidate domains against one compiled pattern.
//
// The strategy is chosen at construction by charset inspection and is
// immutable afterwards. Wildcard matching is anchored to the whole domain
// while raw patterns stay unanchored, so a raw pattern matches on any
// substring unless its author anchors it. The asymmetry is part of the file
// format contract.
type Host struct {
	// re is the compiled pattern for wildcard and raw pattern hosts.
	re *regexp.Regexp
	// text is the original pattern for literal hosts.
	text string
	// kind is the selected matching strategy.
	kind HostKind
}

// NewHost classifies and compiles one raw domain pattern.
//
// Classification order:
//  1. only [a-z0-9.-] bytes: literal, matched by equality
//  2. only [a-z0-9.-*] bytes: wildcard, "*" matches one or more non-dot
//     characters, anchored at both ends
//  3. anything else: compiled verbatim as a regular expression, unanchored
func NewHost(pattern string) (*Host, error) {
	return compileHost(pattern)
}

// IsMatch reports whether the host pattern accepts the candidate domain.
func (h *Host) IsMatch(domain string) bool {
	if h.re != nil {
		return h.re.MatchString(domain)
	}

	return h.text == domain
}

// Kind returns the matching strategy selected at construction.
func (h *Host) Kind() HostKind {
	return h.kind
}

// String returns the original pattern for literal hosts or the compiled
// pattern source for wildcard and raw pattern hosts. For wildcards this is
// the anchored compiled form, not the original input.
func (h *Host) String() string {
	if h.re != nil {
		return h.re.String()
	}

	return h.text
}
