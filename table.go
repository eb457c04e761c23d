// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import "net/netip"

// Record is one compiled host-override entry.
type Record struct {
	// Host is the compiled domain pattern.
	Host *Host
	// Addr is the override address returned when Host matches.
	Addr netip.Addr
}

// Table is an ordered collection of host-override records.
//
// Insertion order is semantically significant: lookup returns the first
// structurally matching entry, so more specific patterns must be listed
// before broader ones by the file author. The table never reorders or
// deduplicates.
type Table struct {
	records []Record
}

// Push appends one record without uniqueness or shadowing validation.
func (t *Table) Push(host *Host, addr netip.Addr) {
	t.records = append(t.records, Record{
		Host: host,
		Addr: addr,
	})
}

// Lookup scans records in insertion order and returns the address of the
// first entry whose pattern accepts domain.
//
// Patterns are behaviorally opaque (wildcards, regex), so there is no
// index; every lookup is an O(n) scan.
func (t *Table) Lookup(domain string) (netip.Addr, bool) {
	for i := range t.records {
		if t.records[i].Host.IsMatch(domain) {
			return t.records[i].Addr, true
		}
	}

	return netip.Addr{}, false
}

// Merge appends all of other's records after the current entries,
// preserving both tables' internal orders.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}

	t.records = append(t.records, other.records...)
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the record sequence in insertion order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}
