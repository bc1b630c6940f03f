package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ezrec/moo/vector"
)

func (a *app) findCmd() *cobra.Command {
	var hash string

	cmd := &cobra.Command{
		Use:   "find --hash HASH PATH",
		Short: "Locate a test by hash in a file or directory of containers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			want, err := vector.ParseHash(hash)
			if err != nil {
				return
			}

			sc, ws, err := a.scanner(args[0])
			if err != nil {
				return
			}

			match, summary, err := sc.Find(cmd.Context(), ws, want)
			a.logger.Info("find",
				zap.Int("searched", summary.Searched),
				zap.Int("errors", summary.Errors))
			if err != nil {
				return
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s:%d\n", match.Path, match.Position)
			renderTest(w, match.Position, match.Test, match.File.Header().CpuType, a.revoked.IsRevoked(match.Test), false)

			return
		},
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Test hash, 40 hex digits")
	_ = cmd.MarkFlagRequired("hash")

	return cmd
}
