package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ezrec/moo/query"
	"github.com/ezrec/moo/scan"
)

type selected struct {
	path     string
	position int
	hash     string
	name     string
}

func (a *app) selectCmd() *cobra.Command {
	var where string
	var revoked bool

	cmd := &cobra.Command{
		Use:   "select --where EXPR PATH",
		Short: "List the tests matching a predicate",
		Long: `select evaluates a Starlark expression against every test under PATH
and lists those for which it is true. For example:

  moo select --where 'opcode == 0x90 and exception == None' tests/

Revoked tests are skipped unless --revoked is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			pred, err := query.Compile(where)
			if err != nil {
				return
			}

			sc, ws, err := a.scanner(args[0])
			if err != nil {
				return
			}

			var found []selected
			err = sc.Each(cmd.Context(), ws, func(result scan.Result) (err error) {
				if result.Err != nil {
					return
				}
				cpuType := result.File.Header().CpuType
				for n, test := range result.File.All() {
					if !revoked && a.revoked.IsRevoked(test) {
						continue
					}
					var ok bool
					ok, err = pred.Match(test, cpuType)
					if err != nil {
						return fmt.Errorf("%v: test %d: %w", result.Path, n, err)
					}
					if !ok {
						continue
					}
					entry := selected{path: result.Path, position: n, name: test.Name, hash: "-"}
					if test.Hash != nil {
						entry.hash = test.Hash.String()
					}
					found = append(found, entry)
				}
				return
			})
			if err != nil {
				return
			}

			slices.SortFunc(found, func(x, y selected) int {
				if x.path != y.path {
					if x.path < y.path {
						return -1
					}
					return 1
				}
				return x.position - y.position
			})

			w := cmd.OutOrStdout()
			for _, entry := range found {
				fmt.Fprintf(w, "%s:%d %s %s\n", entry.path, entry.position, entry.hash, entry.name)
			}

			return
		},
	}

	cmd.Flags().StringVarP(&where, "where", "w", "True", "Starlark predicate")
	cmd.Flags().BoolVar(&revoked, "revoked", false, "Include revoked tests")

	return cmd
}
