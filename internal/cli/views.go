package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/triagelab/internal/domain"
)

func (m studyModel) View() string {
	if m.quitting {
		return ""
	}
	if m.confirmingWithdraw {
		return m.viewConfirmWithdraw()
	}

	switch m.sess.Phase {
	case domain.PhaseOnboarding:
		return m.viewForm("Triage Study: Onboarding")
	case domain.PhaseInCase:
		return m.viewCase()
	case domain.PhaseSurveyPending:
		return m.viewForm("Workload Survey")
	case domain.PhaseWashoutPending:
		return m.viewWashout()
	case domain.PhaseComplete:
		return m.viewComplete()
	}
	return ""
}

func (m studyModel) viewConfirmWithdraw() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Withdraw from the study?") + "\n\n")
	b.WriteString(StyleFg.Render("This deletes the session snapshot and its event log. It cannot be undone.") + "\n\n")
	b.WriteString(StyleErr.Render("[y] withdraw") + StyleDim.Render("  ·  any other key: cancel") + "\n")
	return b.String()
}

func (m studyModel) viewForm(title string) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(title) + "\n")
	if m.resumed && m.sess.Phase == domain.PhaseOnboarding {
		b.WriteString(StyleNote.Render("Resumed session "+m.sess.ID) + "\n")
	}
	b.WriteString("\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	if m.errText != "" {
		b.WriteString("\n" + StyleErr.Render(m.errText) + "\n")
	}
	return b.String()
}

func (m studyModel) viewCase() string {
	p, ok := m.eng.CurrentPatient(m.sess)
	if !ok {
		return ""
	}

	var b strings.Builder

	pct := float64(m.sess.Cursor) / float64(len(m.sess.Queue))
	b.WriteString(m.prog.ViewAs(pct) + "\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("Patient %d / %d", m.sess.Cursor+1, len(m.sess.Queue))) + "\n\n")

	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s — %s", p.Name, p.ID)))
	if p.IsTutorial {
		b.WriteString("  " + StyleNote.Render("[tutorial]"))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("Scenario: "+p.Scenario) + "\n\n")
	b.WriteString(StyleFg.Render(p.VisibleText) + "\n\n")

	if revealed := m.sess.RevealedList(); len(revealed) > 0 {
		b.WriteString(StyleHeader.Render("Clinical Findings") + "\n")
		for _, key := range revealed {
			b.WriteString(StyleFinding.Render(fmt.Sprintf("  %s: %s", strings.ToUpper(key), p.ResultText(key))) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(StyleHeader.Render("Investigation") + "\n")
	for i, a := range m.eng.OfferedActions(m.sess) {
		line := fmt.Sprintf("  [%d] %s (+%.1fs)", i+1, a.Label, float64(a.CostMs)/1000)
		if m.sess.IsRevealed(a.Key) {
			b.WriteString(StyleDim.Render(line+"  (revealed — press to hide)") + "\n")
		} else {
			b.WriteString(StyleFg.Render(line) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(StyleHeader.Render("Triage Decision") + "\n")
	for i, opt := range m.eng.Pack().OptionsForTool(m.sess.Profile.ToolID) {
		b.WriteString("  " + TriageStyle(opt.Normalized).Render(fmt.Sprintf("[%c] %s", 'a'+i, opt.Label)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(StyleDim.Render(fmt.Sprintf("Simulated time spent: +%.1fs", float64(m.sess.AccumulatedCostMs)/1000)) + "\n")
	if m.errText != "" {
		b.WriteString(StyleErr.Render(m.errText) + "\n")
	}
	b.WriteString(StyleDim.Render("1-9 toggle investigation · a-" + string(rune('a'+len(m.eng.Pack().OptionsForTool(m.sess.Profile.ToolID))-1)) + " decide · ctrl+w withdraw · ctrl+c save & exit"))
	return b.String()
}

func (m studyModel) viewWashout() string {
	remaining := m.eng.WashoutRemaining(m.sess, time.Now())
	secs := int(remaining.Seconds()) + 1
	if remaining == 0 {
		secs = 0
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render("WASHOUT PERIOD") + "\n\n")
	b.WriteString(StyleFg.Render(fmt.Sprintf("Next scenario starting in %d seconds...", secs)) + "\n\n")
	b.WriteString(StyleDim.Render("Take a deep breath.") + "\n")
	if m.errText != "" {
		b.WriteString("\n" + StyleErr.Render(m.errText) + "\n")
	}
	return b.String()
}

func (m studyModel) viewComplete() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Study Complete") + "\n\n")
	b.WriteString(StyleFg.Render("Thank you for your participation.") + "\n\n")
	b.WriteString(StyleFinding.Render("Completion Code: "+m.sess.CompletionCode()) + "\n")
	b.WriteString(StyleDim.Render("Please record this code, then press enter to exit.") + "\n")
	return b.String()
}
