package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/triagelab/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var sessionID, packPath, rapidTool string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive study",
		Long: "Resumes the session given with --session when its content pack still\n" +
			"matches, otherwise starts a fresh session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("run requires an interactive terminal")
			}

			eng, cleanup, err := app.OpenEngine(packPath)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := context.Background()
			sess, resumed, warnings, err := eng.ResumeOrCreate(ctx, sessionID)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(os.Stderr, StyleWarn.Render("warning: "+w))
			}

			// Rapid entry for piloting: pre-filled profile, straight into
			// the first case.
			if rapidTool != "" && sess.Phase == domain.PhaseOnboarding {
				profile := domain.Profile{
					Role:            "Paramedic",
					YearsExperience: "5-10 years",
					FatigueStatus:   "Rested",
					ToolID:          rapidTool,
				}
				if err := eng.SubmitOnboarding(ctx, sess, profile); err != nil {
					return err
				}
			}

			m := newStudyModel(eng, sess, resumed)
			p := tea.NewProgram(m, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running study: %w", err)
			}

			if sm, ok := final.(studyModel); ok && sm.withdrawn {
				fmt.Println("Session withdrawn and log deleted.")
				return nil
			}
			fmt.Printf("Session ID: %s\n", sess.ID)
			if sess.Phase == domain.PhaseComplete {
				fmt.Printf("Completion code: %s\n", sess.CompletionCode())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to resume")
	cmd.Flags().StringVar(&packPath, "pack", "", "Content pack path (default from config)")
	cmd.Flags().StringVar(&rapidTool, "rapid", "", "Skip onboarding with a pre-filled profile for the given tool")

	return cmd
}
