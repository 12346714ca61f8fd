package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("psyctl", version.Version, version.Commit)
	},
}
