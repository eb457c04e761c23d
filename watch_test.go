// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchDeliversInitialResult(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.conf")
	writeConf(t, path, "example.com 10.0.0.1\n")

	results := make(chan *ParseResult, 8)
	w, err := Watch(path, WatchOptions{
		Debounce: 20 * time.Millisecond,
		OnResult: func(res *ParseResult) { results <- res },
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer func() { _ = w.Close() }()

	select {
	case res := <-results:
		if res.Hosts.Len() != 1 {
			t.Fatalf("initial hosts len=%d, want 1", res.Hosts.Len())
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no initial result delivered")
	}
}

func TestWatchReparsesOnChange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.conf")
	writeConf(t, path, "example.com 10.0.0.1\n")

	results := make(chan *ParseResult, 8)
	w, err := Watch(path, WatchOptions{
		Debounce: 20 * time.Millisecond,
		OnResult: func(res *ParseResult) { results <- res },
		OnError:  func(err error) { t.Logf("reload error: %v", err) },
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer func() { _ = w.Close() }()

	<-results // initial

	err = os.WriteFile(path, []byte("example.com 10.0.0.1\nexample.org 10.0.0.2\n"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case res := <-results:
			addr, ok := res.Hosts.Lookup("example.org")
			if ok && addr == netip.MustParseAddr("10.0.0.2") {
				return
			}
		case <-deadline:
			t.Fatalf("updated result not delivered")
		}
	}
}
