// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"net/netip"
	"testing"
)

func TestMergeParseResults(t *testing.T) {
	t.Parallel()

	ten := uint64(10)
	twenty := uint64(20)

	a := &ParseResult{
		Bind:    []netip.AddrPort{netip.MustParseAddrPort("0.0.0.0:53")},
		Timeout: &ten,
		Invalid: []Invalid{{Line: 2, Source: "broken", Kind: KindOther}},
		Sources: []string{"/etc/a.conf"},
	}
	a.Hosts.Push(mustHost(t, "a.example.com"), netip.MustParseAddr("10.0.0.1"))

	b := &ParseResult{
		Proxy:   []netip.AddrPort{netip.MustParseAddrPort("1.2.3.4:53")},
		Timeout: &twenty,
		Sources: []string{"/etc/b.conf"},
	}
	b.Hosts.Push(mustHost(t, "b.example.com"), netip.MustParseAddr("10.0.0.2"))

	a.Merge(b)
	a.Merge(nil)

	if len(a.Bind) != 1 || len(a.Proxy) != 1 {
		t.Fatalf("bind=%v proxy=%v", a.Bind, a.Proxy)
	}

	if a.Hosts.Len() != 2 {
		t.Fatalf("hosts len=%d, want 2", a.Hosts.Len())
	}

	if a.Timeout == nil || *a.Timeout != 20 {
		t.Fatalf("timeout=%v, want last writer 20", a.Timeout)
	}

	if len(a.Invalid) != 1 {
		t.Fatalf("invalid=%+v", a.Invalid)
	}

	if len(a.Sources) != 2 || a.Sources[1] != "/etc/b.conf" {
		t.Fatalf("sources=%v", a.Sources)
	}
}

func TestMergeKeepsTimeoutWhenOtherUnset(t *testing.T) {
	t.Parallel()

	ten := uint64(10)
	a := &ParseResult{Timeout: &ten}

	a.Merge(&ParseResult{})

	if a.Timeout == nil || *a.Timeout != 10 {
		t.Fatalf("timeout=%v, want 10 preserved", a.Timeout)
	}
}
