// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

/*
Package hostrules parses line-oriented host-override files used by proxies
and resolvers to redirect lookups for specific domain patterns to fixed
addresses, alongside bind/proxy listen endpoints and a timeout directive.

The package is intentionally small and can back routing tables, local
override files, split-horizon setups, and other domain-to-address pipelines.

Basic flow:
  - open a file-backed config (`Open`) or parse in one call (`Load`)
  - append records to the underlying file (`Config.Add`)
  - parse the file and its imports (`Config.Parse`)
  - query the resulting table (`Table.Lookup`)
  - optionally build a table from in-memory entries (`NewTable`)
  - optionally keep results fresh on file changes (`Watch`)

Malformed lines never abort a parse: each one is reported as an `Invalid`
diagnostic alongside the successfully parsed data. Only storage problems
(open, read, write failures and import cycles) are fatal.
*/
package hostrules
