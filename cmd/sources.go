package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"openvid/models"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd 列出支持的数据源
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "列出支持的数据源",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range models.Catalogue() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", s.ID, s.Label)
		}
	},
}
