package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gatehouse",
	Short: "Gatehouse is a minimal user-account service",
	Long: `A minimal user-account service: register users, authenticate them via a
session cookie, serve the authenticated profile, and log out.
Complete documentation is available at https://github.com/tcallow/gatehouse`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
