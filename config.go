// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Config is an exclusively owned handle to one host-override file.
//
// The same handle backs both Add and Parse. The design provides no internal
// mutual exclusion: callers interleaving Add and Parse on one handle must
// serialize those calls themselves.
type Config struct {
	file *os.File
	path string
}

// Open ensures parent directories exist and opens the file for read and
// append, creating it if absent.
func Open(path string) (*Config, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create parent dir for %s: %w", path, err)
		}
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o640) // #nosec G304 -- path is caller-provided by contract
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Config{
		file: file,
		path: path,
	}, nil
}

// Close releases the underlying handle without parsing.
//
// Not needed after Parse, which consumes the handle itself.
func (c *Config) Close() error {
	if c == nil {
		return ErrNilConfig
	}

	return c.file.Close()
}

// Path returns the path the config was opened with.
func (c *Config) Path() string {
	if c == nil {
		return ""
	}

	return c.path
}

// Add appends one two-token host record line to the underlying file.
//
// A leading newline is written only when the file does not already end with
// one. The tokens are written verbatim: validation happens on the next
// Parse, where a bad record surfaces as a diagnostic.
func (c *Config) Add(pattern string, address string) error {
	if c == nil {
		return ErrNilConfig
	}

	content, err := c.readAll()
	if err != nil {
		return err
	}

	line := pattern + "  " + address
	if !endsWithNewline(content) {
		line = "\n" + line
	}

	if _, err := c.file.WriteString(line); err != nil {
		return fmt.Errorf("append to %s: %w", c.path, err)
	}

	return nil
}

// Parse consumes the handle and performs the full recursive parse.
//
// Imports are resolved strictly sequentially and depth-first: an imported
// file fully completes before the next line of the importing file is
// processed. Content problems are collected as diagnostics; I/O failures
// and import cycles abort the whole chain with no partial result.
func (c *Config) Parse() (*ParseResult, error) {
	if c == nil {
		return nil, ErrNilConfig
	}

	return c.parse(make(map[string]struct{}))
}

// parse runs one recursion frame with the shared visited-path set.
func (c *Config) parse(visited map[string]struct{}) (*ParseResult, error) {
	defer func() { _ = c.file.Close() }()

	key, err := canonicalPath(c.path)
	if err != nil {
		return nil, err
	}

	// visited tracks the current ancestor chain only: a file shared by two
	// sibling imports is valid and simply inlines twice, so each frame
	// removes its own entry on return.
	if _, ok := visited[key]; ok {
		return nil, fmt.Errorf("%w: %s", ErrImportCycle, c.path)
	}
	visited[key] = struct{}{}
	defer delete(visited, key)

	content, err := c.readAll()
	if err != nil {
		return nil, err
	}

	res := &ParseResult{
		Sources: []string{key},
	}

	err = parseLines(content, res, func(target string) (*ParseResult, error) {
		sub, err := Open(resolveImport(c.path, target))
		if err != nil {
			return nil, err
		}

		return sub.parse(visited)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// readAll reads the whole file from the start, leaving the offset at the end.
func (c *Config) readAll() (string, error) {
	if _, err := c.file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seek %s: %w", c.path, err)
	}

	content, err := io.ReadAll(c.file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", c.path, err)
	}

	return string(content), nil
}

// endsWithNewline reports whether content ends with a newline.
func endsWithNewline(content string) bool {
	return len(content) > 0 && content[len(content)-1] == '\n'
}
