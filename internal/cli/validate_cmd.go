package cli

import (
	"fmt"

	"github.com/alexanderramin/triagelab/internal/contentpack"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var packPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a content pack",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := packPath
			if path == "" {
				path = app.Cfg.PackPath
			}

			pack, err := contentpack.Load(path)
			if err != nil {
				return err
			}

			fmt.Printf("Content pack OK: %s\n", path)
			fmt.Printf("  actions:  %d\n", len(pack.Config))
			fmt.Printf("  tools:    %d (%d buttons)\n", len(pack.ToolIDs()), len(pack.Tools))
			fmt.Printf("  patients: %d\n", len(pack.Patients))
			fmt.Printf("  fingerprint: %s\n", pack.Fingerprint)
			return nil
		},
	}

	cmd.Flags().StringVar(&packPath, "pack", "", "Content pack path (default from config)")

	return cmd
}
