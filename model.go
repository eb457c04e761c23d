// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import "net/netip"

// Kind represents an error category of one rejected line.
type Kind uint8

const (
	// KindUnknown is unset/invalid kind placeholder.
	KindUnknown Kind = iota
	// KindRegex means a host pattern failed compilation.
	KindRegex
	// KindSocketAddr means a bind/proxy value is not a valid socket address.
	KindSocketAddr
	// KindIPAddr means neither token of a host record is a valid IP address.
	KindIPAddr
	// KindTimeout means a timeout value is not a non-negative integer.
	KindTimeout
	// KindOther means the line does not split into exactly two tokens.
	KindOther
)

// Invalid is one per-line diagnostic produced while scanning a file.
//
// Line numbers are local to the file that produced the diagnostic; after an
// import merge, diagnostics from nested files are not distinguishable by
// source file. This is a documented limitation of the format.
type Invalid struct {
	// Source is the comment-stripped line text.
	Source string `json:"source" yaml:"source"`
	// Line is the 1-based line number within its own file.
	Line int `json:"line" yaml:"line"`
	// Kind is the error category.
	Kind Kind `json:"kind" yaml:"kind"`
}

// ParseResult is the aggregate produced by parsing one file tree.
type ParseResult struct {
	// Bind is the ordered sequence of listen endpoints.
	Bind []netip.AddrPort `json:"bind,omitempty" yaml:"bind,omitempty"`
	// Proxy is the ordered sequence of upstream endpoints.
	Proxy []netip.AddrPort `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	// Hosts is the ordered host-override table.
	Hosts Table `json:"hosts" yaml:"hosts"`
	// Timeout is the last timeout directive seen across the whole merged
	// document tree, in seconds. Nil when no timeout directive was present.
	Timeout *uint64 `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	// Invalid is the ordered sequence of per-line diagnostics.
	Invalid []Invalid `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	// Sources lists canonical paths of every parsed file in document order.
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// Text returns the fixed human-readable description for the kind.
func (k Kind) Text() string {
	switch k {
	case KindSocketAddr:
		return "Cannot parse socket address"
	case KindIPAddr:
		return "Cannot parse ip address"
	case KindRegex:
		return "Cannot parse regular expression"
	case KindTimeout:
		return "Cannot parse timeout"
	case KindOther:
		return "Invalid line"
	default:
		return "Unknown"
	}
}

// String returns a short stable kind name.
func (k Kind) String() string {
	switch k {
	case KindRegex:
		return "regex"
	case KindSocketAddr:
		return "socket-addr"
	case KindIPAddr:
		return "ip-addr"
	case KindTimeout:
		return "timeout"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// MarshalText encodes kind as its short name for json/yaml output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
