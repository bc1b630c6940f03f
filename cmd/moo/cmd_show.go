package main

import (
	"github.com/spf13/cobra"

	"github.com/ezrec/moo/vector"
)

func (a *app) showCmd() *cobra.Command {
	var index int
	var hash string
	var limit int
	var cycles bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Dump the tests of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			file, _, err := a.load(args[0])
			if err != nil {
				return
			}

			w := cmd.OutOrStdout()
			cpuType := file.Header().CpuType

			if len(hash) != 0 {
				var want vector.Hash
				want, err = vector.ParseHash(hash)
				if err != nil {
					return
				}
				test, position, err := file.Lookup(want)
				if err != nil {
					return err
				}
				renderTest(w, position, test, cpuType, a.revoked.IsRevoked(test), cycles)
				return nil
			}

			if index >= 0 {
				if index >= file.Len() {
					return &ErrIndex{Index: index, Len: file.Len()}
				}
				test := file.Test(index)
				renderTest(w, index, test, cpuType, a.revoked.IsRevoked(test), cycles)
				return
			}

			shown := 0
			for n, test := range file.All() {
				if limit > 0 && shown >= limit {
					break
				}
				renderTest(w, n, test, cpuType, a.revoked.IsRevoked(test), cycles)
				shown++
			}

			return
		},
	}

	cmd.Flags().IntVarP(&index, "index", "i", -1, "Show only the test at this position")
	cmd.Flags().StringVar(&hash, "hash", "", "Show only the test with this hash")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many tests")
	cmd.Flags().BoolVar(&cycles, "cycles", false, "Include the bus cycle trace")
	cmd.MarkFlagsMutuallyExclusive("index", "hash")

	return cmd
}
