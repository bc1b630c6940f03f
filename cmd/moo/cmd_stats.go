package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/moo/cpu"
)

func joinFlags(flags []cpu.Flag) string {
	names := make([]string, len(flags))
	for n, flag := range flags {
		names[n] = flag.String()
	}
	return strings.Join(names, " ")
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE...",
		Short: "Report bus activity of containers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, path := range args {
				file, _, err := a.load(path)
				if err != nil {
					return err
				}

				stats := file.Stats()
				fmt.Fprintf(w, "%s:\n", path)
				fmt.Fprintf(w, "  tests:         %d\n", stats.Tests)
				fmt.Fprintf(w, "  cycles:        %d (min %d, max %d, avg %.2f)\n",
					stats.TotalCycles, stats.MinCycles, stats.MaxCycles, stats.AvgCycles)
				fmt.Fprintf(w, "  memory:        %d reads, %d writes\n", stats.MemoryReads, stats.MemoryWrites)
				fmt.Fprintf(w, "  code fetches:  %d\n", stats.CodeFetches)
				fmt.Fprintf(w, "  io:            %d reads, %d writes\n", stats.IoReads, stats.IoWrites)
				fmt.Fprintf(w, "  wait states:   %d\n", stats.WaitStates)

				exceptions := make([]string, len(stats.Exceptions))
				for n, number := range stats.Exceptions {
					exceptions[n] = fmt.Sprint(number)
				}
				fmt.Fprintf(w, "  exceptions:    %s\n", strings.Join(exceptions, " "))
				fmt.Fprintf(w, "  modified:      %s\n", strings.Join(stats.Modified, " "))
				fmt.Fprintf(w, "  flags set:     %s\n", joinFlags(stats.FlagsSet))
				fmt.Fprintf(w, "  flags cleared: %s\n", joinFlags(stats.FlagsCleared))
				fmt.Fprintf(w, "  flags changed: %s\n", joinFlags(stats.FlagsModified))
				fmt.Fprintf(w, "  always set:    %s\n", joinFlags(stats.FlagsAlwaysSet))
				fmt.Fprintf(w, "  always clear:  %s\n", joinFlags(stats.FlagsAlwaysCleared))
			}
			return nil
		},
	}
}
