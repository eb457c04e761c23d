// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/hostrules

// Command hostrules inspects and edits host-override config files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/woozymasta/hostrules"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "hostrules",
		Short:         "Inspect and edit host-override config files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "hosts.conf", "path to config file")

	root.AddCommand(
		newCheckCmd(&cfgPath),
		newLookupCmd(&cfgPath),
		newAddCmd(&cfgPath),
		newWatchCmd(&cfgPath),
	)

	return root
}

func newCheckCmd(cfgPath *string) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse the config tree and report its content and diagnostics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := hostrules.Load(*cfgPath)
			if err != nil {
				return err
			}

			if err := res.Dump(cmd.OutOrStdout()); err != nil {
				return err
			}

			for _, inv := range res.Invalid {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %s: %s\n", inv.Line, inv.Kind.Text(), inv.Source)
			}

			if strict && len(res.Invalid) > 0 {
				return fmt.Errorf("%d invalid line(s)", len(res.Invalid))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any line is invalid")

	return cmd
}

func newLookupCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <domain>",
		Short: "Resolve a domain against the host-override table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := hostrules.NormalizeDomain(args[0])
			if err != nil {
				return err
			}

			res, err := hostrules.Load(*cfgPath)
			if err != nil {
				return err
			}

			addr, ok := res.Hosts.Lookup(domain)
			if !ok {
				return fmt.Errorf("no match for %q", domain)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), addr)
			return err
		},
	}
}

func newAddCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <pattern> <address>",
		Short: "Append one host record to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := hostrules.Open(*cfgPath)
			if err != nil {
				return err
			}
			defer func() { _ = cfg.Close() }()

			return cfg.Add(args[0], args[1])
		},
	}
}

func newWatchCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-parse and print the config tree on every change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := hostrules.Watch(*cfgPath, hostrules.WatchOptions{
				OnResult: func(res *hostrules.ParseResult) {
					if err := res.Dump(cmd.OutOrStdout()); err != nil {
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "dump: %v\n", err)
					}
				},
				OnError: func(err error) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "reload: %v\n", err)
				},
			})
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			return nil
		},
	}
}
