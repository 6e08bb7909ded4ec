package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"storefront.GO/config"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront backend CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure(config.AppConfig.AppName, "", true).Print()
		fmt.Println()
		_ = cmd.Help()
	},
}

// Execute runs the root command with all registered subcommands.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
