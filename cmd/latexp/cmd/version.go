package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrunoMiglioretto/Parser-Latex/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Printf("%s v%s\n", info.Service, info.Version)
		fmt.Printf("  Git Commit: %s\n", info.Commit)
		fmt.Printf("  Build Date: %s\n", info.Date)
		fmt.Printf("  Go Version: %s\n", info.GoVersion)
		fmt.Printf("  OS/Arch:    %s\n", info.Platform)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
