package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// onboardingAnswers binds the questionnaire fields while the form runs.
type onboardingAnswers struct {
	Role    string
	Years   string
	Fatigue string
	Tool    string
}

func newOnboardingForm(toolIDs []string, a *onboardingAnswers) *huh.Form {
	toolOptions := make([]huh.Option[string], 0, len(toolIDs))
	for _, id := range toolIDs {
		toolOptions = append(toolOptions, huh.NewOption(id, id))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Paramedic", "Paramedic"),
					huh.NewOption("Nurse", "Nurse"),
					huh.NewOption("Doctor", "Doctor"),
					huh.NewOption("Police", "Police"),
					huh.NewOption("Fire/Rescue", "Fire/Rescue"),
					huh.NewOption("Student/Other", "Student/Other"),
				).
				Value(&a.Role),
			huh.NewSelect[string]().
				Title("Years Experience").
				Options(
					huh.NewOption("0-2 years", "0-2 years"),
					huh.NewOption("2-5 years", "2-5 years"),
					huh.NewOption("5-10 years", "5-10 years"),
					huh.NewOption("10+ years", "10+ years"),
				).
				Value(&a.Years),
			huh.NewSelect[string]().
				Title("Fatigue Status").
				Options(
					huh.NewOption("On Shift (Currently working)", "On Shift (Currently working)"),
					huh.NewOption("Off Shift (<12 hours since last shift)", "Off Shift (<12 hours since last shift)"),
					huh.NewOption("Rested (>12 hours since last shift)", "Rested (>12 hours since last shift)"),
				).
				Value(&a.Fatigue),
			huh.NewSelect[string]().
				Title("Assigned Tool").
				Options(toolOptions...).
				Value(&a.Tool),
		),
	).WithTheme(triagelabHuhTheme()).WithShowHelp(false)
}

// surveyAnswers binds the workload questionnaire fields while the form runs.
type surveyAnswers struct {
	Ratings  [6]string
	Comments string
}

var surveyLabels = [6]string{
	"Mental Demand",
	"Physical Demand",
	"Temporal Demand",
	"Performance",
	"Effort",
	"Frustration",
}

func newSurveyForm(finishedScenario string, a *surveyAnswers) *huh.Form {
	fields := make([]huh.Field, 0, 8)
	fields = append(fields, huh.NewNote().
		Title("Workload Survey").
		Description(fmt.Sprintf("You just finished the %q scenario.\nRate each dimension from 0 (very low) to 100 (very high).", finishedScenario)))

	for i := range a.Ratings {
		fields = append(fields, huh.NewInput().
			Title(surveyLabels[i]+" (0-100)").
			Placeholder("50").
			Value(&a.Ratings[i]).
			Validate(validateRating))
	}
	fields = append(fields, huh.NewInput().
		Title("Comments (optional)").
		Value(&a.Comments))

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(triagelabHuhTheme()).WithShowHelp(false)
}

func validateRating(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}

func parseRating(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
