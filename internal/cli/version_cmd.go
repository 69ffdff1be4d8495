package cli

import (
	"fmt"

	"github.com/alexanderramin/triagelab/internal/config"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("triagelab", config.AppVersion)
		},
	}
}
