// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"errors"
	"testing"
)

func TestHostLiteral(t *testing.T) {
	t.Parallel()

	host, err := NewHost("example.com")
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	if host.Kind() != HostLiteral {
		t.Fatalf("Kind()=%v, want HostLiteral", host.Kind())
	}

	if !host.IsMatch("example.com") {
		t.Fatalf("example.com must match itself")
	}

	if host.IsMatch("-example.com") {
		t.Fatalf("-example.com must not match literal example.com")
	}

	if host.IsMatch("example.com.cn") {
		t.Fatalf("example.com.cn must not match literal example.com")
	}

	if host.String() != "example.com" {
		t.Fatalf("String()=%q, want original pattern", host.String())
	}
}

func TestHostWildcard(t *testing.T) {
	t.Parallel()

	host, err := NewHost("*.example.com")
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	if host.Kind() != HostWildcard {
		t.Fatalf("Kind()=%v, want HostWildcard", host.Kind())
	}

	if !host.IsMatch("test.example.com") {
		t.Fatalf("test.example.com must match *.example.com")
	}

	if host.IsMatch("test.example.test") {
		t.Fatalf("test.example.test must not match *.example.com")
	}

	if host.IsMatch("test.test.com") {
		t.Fatalf("test.test.com must not match *.example.com")
	}

	if host.IsMatch("a.b.example.com") {
		t.Fatalf("star must match exactly one label, not a dotted prefix")
	}
}

func TestHostWildcardBothEnds(t *testing.T) {
	t.Parallel()

	host, err := NewHost("*.example.*")
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	if !host.IsMatch("test.example.test") {
		t.Fatalf("test.example.test must match *.example.*")
	}

	if host.IsMatch("example.com") {
		t.Fatalf("example.com must not match *.example.*")
	}

	if host.IsMatch("test.test.test") {
		t.Fatalf("test.test.test must not match *.example.*")
	}
}

func TestHostPatternAnchoredByAuthor(t *testing.T) {
	t.Parallel()

	host, err := NewHost(`^example.com$`)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	if host.Kind() != HostPattern {
		t.Fatalf("Kind()=%v, want HostPattern", host.Kind())
	}

	if !host.IsMatch("example.com") {
		t.Fatalf("example.com must match author-anchored pattern")
	}

	if host.IsMatch("test.example.com") {
		t.Fatalf("test.example.com must not match author-anchored pattern")
	}
}

func TestHostPatternUnanchored(t *testing.T) {
	t.Parallel()

	// Raw patterns are compiled verbatim: a substring match suffices.
	host, err := NewHost(`example\.(com|org)`)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	if !host.IsMatch("api.example.org.internal") {
		t.Fatalf("raw patterns must match substrings, wildcards stay anchored")
	}
}

func TestHostPatternCompileError(t *testing.T) {
	t.Parallel()

	_, err := NewHost(`^example\.(com$`)
	if err == nil {
		t.Fatalf("unbalanced pattern must fail compilation")
	}

	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
}

func TestHostWildcardStringIsCompiledForm(t *testing.T) {
	t.Parallel()

	host, err := NewHost("*.example.com")
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}

	if host.String() != `^[^.]+\.example\.com$` {
		t.Fatalf("String()=%q, want compiled anchored form", host.String())
	}
}
