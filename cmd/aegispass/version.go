package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time:
//
//	go build -ldflags "-X main.version=v1.2.3" ./cmd/aegispass
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the aegispass version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "aegispass %s\n", version)
	},
}
