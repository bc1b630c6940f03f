package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Summarize container headers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, path := range args {
				file, kind, err := a.load(path)
				if err != nil {
					return err
				}

				header := file.Header()
				fmt.Fprintf(w, "%s: %v\n", path, kind)
				fmt.Fprintf(w, "  version: %d.%d\n", header.Major, header.Minor)
				fmt.Fprintf(w, "  cpu: %v (%q)\n", header.CpuType, header.CpuID)
				fmt.Fprintf(w, "  tests: %d\n", file.Len())

				if meta, ok := file.Metadata(); ok {
					fmt.Fprintf(w, "  set: %d.%d opcode %02X %s\n", meta.SetMajor, meta.SetMinor, meta.Opcode, meta.Mnemonic)
					fmt.Fprintf(w, "  seed: %016X flag mask: %04X\n", meta.Seed, meta.FlagMask)
				}

				if a.revoked != nil {
					revoked := 0
					for range a.revoked.Revoked(file) {
						revoked++
					}
					fmt.Fprintf(w, "  revoked: %d\n", revoked)
				}
			}
			return nil
		},
	}
}
