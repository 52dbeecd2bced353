package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set by the release pipeline at build time.
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prgate version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("prgate %s (%s)\n", version, commit)
	},
}
