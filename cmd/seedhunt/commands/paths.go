package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"seedhunt/internal/domain"
)

func pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the built-in derivation paths in priority order",
		Run: func(cmd *cobra.Command, args []string) {
			for i, p := range domain.DefaultPaths() {
				fmt.Printf("%d. %s\n", i+1, p)
			}
		},
	}
}
