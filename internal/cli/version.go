package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/mcoot/game2048/internal/cli.Version=..."
var Version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output(cmd).Print(VersionInfo{Version: Version})
			return nil
		},
	}
}
