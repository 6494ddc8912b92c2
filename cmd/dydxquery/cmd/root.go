package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xiaolou86/dydx-v4-clients/config"
)

func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "dydxquery",
		Short:         "Typed queries against a dYdX v4 node",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile(), "config file")

	rootCmd.AddCommand(GetBankCmds(&cfgFile)...)
	rootCmd.AddCommand(GetAccountCmd(&cfgFile))
	rootCmd.AddCommand(GetSubaccountCmds(&cfgFile)...)
	rootCmd.AddCommand(GetClobCmds(&cfgFile)...)
	rootCmd.AddCommand(GetMarketCmds(&cfgFile)...)
	rootCmd.AddCommand(GetParamsCmds(&cfgFile)...)
	rootCmd.AddCommand(GetStakingCmds(&cfgFile)...)
	rootCmd.AddCommand(GetBridgeCmd(&cfgFile))
	rootCmd.AddCommand(GetBlockCmds(&cfgFile)...)
	rootCmd.AddCommand(GetSampleConfigCmd())

	return rootCmd
}
