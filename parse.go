// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

package hostrules

import (
	"net/netip"
	"strconv"
	"strings"
)

// importFunc recursively parses one imported file path.
type importFunc func(path string) (*ParseResult, error)

// parseLines scans one file's text line by line and populates res.
//
// Content problems become Invalid diagnostics and never stop the scan.
// The only returned errors are importer failures, which are fatal for the
// whole parse chain.
func parseLines(text string, res *ParseResult, importer importFunc) error {
	n := 0
	for start := 0; start < len(text); {
		// Lines are sliced by hand so their length is unbounded: an
		// over-long line is still content, never a fatal error.
		var line string
		if end := strings.IndexByte(text[start:], '\n'); end < 0 {
			line = text[start:]
			start = len(text)
		} else {
			line = text[start : start+end]
			start += end + 1
		}

		n++
		line = strings.TrimRight(line, "\r")
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		invalid := func(kind Kind) {
			res.Invalid = append(res.Invalid, Invalid{
				Line:   n,
				Source: line,
				Kind:   kind,
			})
		}

		key, value, ok := splitTokens(line)
		if !ok {
			invalid(KindOther)
			continue
		}

		switch key {
		case "bind":
			addr, err := netip.ParseAddrPort(value)
			if err != nil {
				invalid(KindSocketAddr)
				continue
			}

			res.Bind = append(res.Bind, addr)
		case "proxy":
			addr, err := netip.ParseAddrPort(value)
			if err != nil {
				invalid(KindSocketAddr)
				continue
			}

			res.Proxy = append(res.Proxy, addr)
		case "timeout":
			timeout, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				invalid(KindTimeout)
				continue
			}

			res.Timeout = &timeout
		case "import":
			sub, err := importer(value)
			if err != nil {
				return err
			}

			// Depth-first merge at the import line keeps document order
			// identical to textually inlining the imported file here.
			res.Merge(sub)
		default:
			host, addr, kind := parseHostRecord(key, value)
			if kind != KindUnknown {
				invalid(kind)
				continue
			}

			res.Hosts.Push(host, addr)
		}
	}

	return nil
}

// splitTokens splits a line on ASCII whitespace into exactly two tokens.
func splitTokens(line string) (string, string, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false
	}

	return fields[0], fields[1], true
}

// parseHostRecord interprets a two-token host record in either order:
// "<pattern> <ip>" or "<ip> <pattern>". Returned kind is KindUnknown on
// success and the diagnostic category otherwise.
func parseHostRecord(key string, value string) (*Host, netip.Addr, Kind) {
	if addr, err := netip.ParseAddr(key); err == nil {
		host, err := NewHost(value)
		if err != nil {
			return nil, netip.Addr{}, KindRegex
		}

		return host, addr, KindUnknown
	}

	if addr, err := netip.ParseAddr(value); err == nil {
		host, err := NewHost(key)
		if err != nil {
			return nil, netip.Addr{}, KindRegex
		}

		return host, addr, KindUnknown
	}

	return nil, netip.Addr{}, KindIPAddr
}
