package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiaolou86/dydx-v4-clients/config"
)

func GetSampleConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample-config",
		Short: "Write a sample config file with the default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteSample(output); err != nil {
				return fmt.Errorf("failed to write sample config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample config written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "./sample-dydxquery.yml", "path of the sample file")
	return cmd
}
