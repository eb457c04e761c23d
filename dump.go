// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// recordDoc is the serialized form of one table record.
type recordDoc struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Address string `json:"address" yaml:"address"`
}

// docs converts records to their serialized form in insertion order.
func (t Table) docs() []recordDoc {
	out := make([]recordDoc, len(t.records))
	for i := range t.records {
		out[i] = recordDoc{
			Pattern: t.records[i].Host.String(),
			Address: t.records[i].Addr.String(),
		}
	}

	return out
}

// MarshalYAML encodes the table as an ordered pattern/address list.
//
// Wildcard patterns serialize in their compiled anchored form, so the dump
// is not guaranteed byte-identical to the original file input.
func (t Table) MarshalYAML() (any, error) {
	return t.docs(), nil
}

// MarshalJSON encodes the table as an ordered pattern/address list.
func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.docs())
}

// Dump writes the parse result as YAML for reporting and tooling.
func (r *ParseResult) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode result: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}
