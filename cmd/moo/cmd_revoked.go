package main

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/ezrec/moo/internal"
	"github.com/ezrec/moo/revocation"
	"github.com/ezrec/moo/vector"
)

func (a *app) revokedCmd() *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "revoked [--list FILE] CONTAINER...",
		Short: "List the revoked tests of containers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			set := a.revoked
			if len(list) != 0 {
				set, err = revocation.LoadFile(list)
				if err != nil {
					return
				}
			}
			if set == nil {
				return ErrNoRevocation
			}

			var seqs []iter.Seq2[int, *vector.Test]
			for _, path := range args {
				file, _, err := a.load(path)
				if err != nil {
					return err
				}
				seqs = append(seqs, set.Revoked(file))
			}

			w := cmd.OutOrStdout()
			count := 0
			for _, test := range internal.IterSeq2Concat(seqs...) {
				fmt.Fprintf(w, "%v %s\n", test.Hash, test.Name)
				count++
			}
			fmt.Fprintf(w, "%d revoked\n", count)

			return
		},
	}

	cmd.Flags().StringVarP(&list, "list", "l", "", "Revocation list (overrides --revocation)")

	return cmd
}
