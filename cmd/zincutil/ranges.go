package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cmlibs/zincutil/pkg/ranges"
	"github.com/cmlibs/zincutil/pkg/remap"
)

func rangesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Work with identifier range strings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "normalize TEXT",
		Short: "Parse free-form range text and print the canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ranges.Format(ranges.Parse(args[0])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "expand TEXT",
		Short: "Print every identifier covered by the range text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := ranges.Parse(args[0]).IDs()

			s := make([]string, len(ids))
			for i, id := range ids {
				s[i] = id.String()
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(s, " "))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "count TEXT",
		Short: "Print how many identifiers the range text covers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ranges.Parse(args[0]).Count())
			return nil
		},
	})

	return cmd
}

func gapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gaps TEXT",
		Short: "Print the unused identifiers below and between the given ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gaps := remap.Gaps(ranges.Parse(args[0]).IDs())

			rl, err := ranges.FromSorted(gaps)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ranges.Format(rl))
			return nil
		},
	}
}
