package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cmlibs/zincutil/pkg/document"
	"github.com/cmlibs/zincutil/pkg/model"
	"github.com/cmlibs/zincutil/pkg/region"
)

func describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Load a region document and print its normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(args[0])
			if err != nil {
				return err
			}

			return printRegion(cmd, r)
		},
	}
}

func convertCmd() *cobra.Command {
	var sourcePath, targetPath string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Convert a region's nodes to datapoints and print the result",
		Long: "Convert loads a region document, moves the source region's nodes into\n" +
			"the target region as datapoints (renumbering colliding datapoints into\n" +
			"unused identifier space), and prints the resulting document.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadRegion(args[0])
			if err != nil {
				return err
			}

			source := root.FindSubregion(sourcePath)
			if source == nil {
				return fmt.Errorf("no region at path %q", sourcePath)
			}

			target := root.FindSubregion(targetPath)
			if target == nil {
				return fmt.Errorf("no region at path %q", targetPath)
			}

			c := region.NewConverter(logger)
			if err := c.ConvertNodesToDatapoints(target, source); err != nil {
				return err
			}

			return printRegion(cmd, root)
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "", "path of the region whose nodes are converted (default root)")
	cmd.Flags().StringVar(&targetPath, "target", "", "path of the region receiving the datapoints (default root)")

	return cmd
}

func loadRegion(path string) (*model.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d, err := document.Load(data)
	if err != nil {
		return nil, err
	}

	return d.Build()
}

func printRegion(cmd *cobra.Command, r *model.Region) error {
	out, err := document.Describe(r).Marshal()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
