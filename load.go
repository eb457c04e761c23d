// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

// Load opens and parses one root config file in a single call.
//
// The file is created if absent, exactly as with Open.
func Load(path string) (*ParseResult, error) {
	cfg, err := Open(path)
	if err != nil {
		return nil, err
	}

	return cfg.Parse()
}
