// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"fmt"
	"net/netip"
	"strings"
)

// Entry is one in-memory host-override record source.
type Entry struct {
	// Pattern is a raw domain pattern in file-format syntax.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Address is the override IP address text.
	Address string `json:"address" yaml:"address"`
}

// NewTable compiles in-memory entries into an ordered table.
//
// Entries keep input order, so first-match-wins lookup semantics apply the
// same way as for file-parsed tables. Unlike file parsing, a bad entry is a
// hard error: in-memory input comes from code, not from user files.
func NewTable(entries []Entry) (*Table, error) {
	table := &Table{}

	for i := range entries {
		addr, err := netip.ParseAddr(strings.TrimSpace(entries[i].Address))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrInvalidAddress, entries[i].Address)
		}

		host, err := NewHost(strings.TrimSpace(entries[i].Pattern))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}

		table.Push(host, addr)
	}

	return table, nil
}
