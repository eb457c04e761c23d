// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"fmt"
	"regexp"
	"strings"
)

// compileHost classifies one source pattern by charset inspection and
// compiles the cheapest matching strategy that preserves format semantics.
func compileHost(pattern string) (*Host, error) {
	if isLiteralPattern(pattern) {
		return &Host{
			text: pattern,
			kind: HostLiteral,
		}, nil
	}

	if isWildcardPattern(pattern) {
		re, err := regexp.Compile(wildcardToRegex(pattern))
		if err != nil {
			// Not expected from the wildcard charset, still a checked path.
			return nil, fmt.Errorf("%w: compile wildcard %q: %v", ErrInvalidPattern, pattern, err)
		}

		return &Host{
			re:   re,
			kind: HostWildcard,
		}, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrInvalidPattern, pattern, err)
	}

	return &Host{
		re:   re,
		kind: HostPattern,
	}, nil
}

// isLiteralPattern reports whether pattern contains only plain domain bytes.
func isLiteralPattern(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if !isDomainByte(pattern[i]) {
			return false
		}
	}

	return true
}

// isWildcardPattern reports whether pattern contains only domain bytes and "*".
func isWildcardPattern(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '*' && !isDomainByte(pattern[i]) {
			return false
		}
	}

	return true
}

// wildcardToRegex converts a wildcard domain pattern to anchored regexp source.
//
// "." becomes a literal dot and each "*" matches one or more non-dot bytes,
// so "*.example.com" accepts exactly one extra label.
func wildcardToRegex(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)
	b.WriteByte('^')

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '.':
			b.WriteString(`\.`)
		case '*':
			b.WriteString(`[^.]+`)
		default:
			b.WriteByte(pattern[i])
		}
	}

	b.WriteByte('$')
	return b.String()
}

// isDomainByte reports whether c is allowed in literal domain patterns.
func isDomainByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.':
		return true
	default:
		return false
	}
}
