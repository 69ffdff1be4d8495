package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/triagelab/internal/domain"
	"github.com/alexanderramin/triagelab/internal/engine"
	"github.com/alexanderramin/triagelab/internal/eventlog"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// tickMsg drives the washout countdown.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// studyModel is the root bubbletea model for one study run. The engine
// owns all semantics; the model only translates key presses into engine
// calls and renders the session.
type studyModel struct {
	eng  *engine.Controller
	sess *domain.Session

	form       *huh.Form
	onboarding *onboardingAnswers
	survey     *surveyAnswers

	prog    progress.Model
	width   int
	errText string
	resumed bool

	confirmingWithdraw bool
	withdrawn          bool
	quitting           bool
}

func newStudyModel(eng *engine.Controller, sess *domain.Session, resumed bool) studyModel {
	m := studyModel{
		eng:     eng,
		sess:    sess,
		prog:    progress.New(progress.WithDefaultGradient()),
		resumed: resumed,
	}
	m.syncForm()
	return m
}

// syncForm (re)builds the active huh form for form-driven phases.
func (m *studyModel) syncForm() {
	switch m.sess.Phase {
	case domain.PhaseOnboarding:
		m.onboarding = &onboardingAnswers{}
		m.form = newOnboardingForm(m.eng.Pack().ToolIDs(), m.onboarding)
	case domain.PhaseSurveyPending:
		m.survey = &surveyAnswers{}
		m.form = newSurveyForm(m.sess.LastFinishedScenario, m.survey)
	default:
		m.form = nil
	}
}

func (m studyModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	if m.sess.Phase == domain.PhaseWashoutPending {
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

func (m studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.prog.Width = min(msg.Width-4, 60)
		return m, nil

	case tickMsg:
		if m.sess.Phase != domain.PhaseWashoutPending {
			return m, nil
		}
		if m.eng.WashoutRemaining(m.sess, time.Now()) > 0 {
			return m, tickCmd()
		}
		if err := m.eng.CompleteWashout(context.Background(), m.sess); err != nil {
			if err == engine.ErrWashoutActive {
				return m, tickCmd()
			}
			m.errText = err.Error()
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateForm(msg)
}

func (m studyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmingWithdraw {
		switch msg.String() {
		case "y", "Y":
			if err := m.eng.Withdraw(context.Background(), m.sess.ID); err != nil {
				m.errText = err.Error()
				m.confirmingWithdraw = false
				return m, nil
			}
			m.withdrawn = true
			m.quitting = true
			return m, tea.Quit
		default:
			m.confirmingWithdraw = false
			return m, nil
		}
	}

	switch msg.String() {
	case "ctrl+c":
		// Progress is already on disk; quitting leaves the session
		// resumable.
		m.quitting = true
		return m, tea.Quit
	case "ctrl+w":
		m.confirmingWithdraw = true
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch m.sess.Phase {
	case domain.PhaseInCase:
		return m.handleCaseKey(msg)
	case domain.PhaseComplete:
		if msg.String() == "enter" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleCaseKey maps digits onto investigation toggles and letters onto
// decision buttons.
func (m studyModel) handleCaseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	ctx := context.Background()

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		actions := m.eng.OfferedActions(m.sess)
		idx := int(key[0] - '1')
		if idx >= len(actions) {
			return m, nil
		}
		k := actions[idx].Key
		var err error
		if m.sess.IsRevealed(k) {
			err = m.eng.Hide(ctx, m.sess, k)
		} else {
			err = m.eng.Reveal(ctx, m.sess, k)
		}
		if err != nil {
			m.errText = err.Error()
		} else {
			m.errText = ""
		}
		return m, nil
	}

	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		options := m.eng.Pack().OptionsForTool(m.sess.Profile.ToolID)
		idx := int(key[0] - 'a')
		if idx >= len(options) {
			return m, nil
		}
		if err := m.eng.SubmitDecision(ctx, m.sess, options[idx]); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.errText = ""
		m.syncForm()
		var cmds []tea.Cmd
		if m.form != nil {
			cmds = append(cmds, m.form.Init())
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// updateForm advances the active huh form and fires the matching engine
// call when it completes.
func (m studyModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	ctx := context.Background()
	switch m.sess.Phase {
	case domain.PhaseOnboarding:
		profile := domain.Profile{
			Role:            m.onboarding.Role,
			YearsExperience: m.onboarding.Years,
			FatigueStatus:   m.onboarding.Fatigue,
			ToolID:          m.onboarding.Tool,
		}
		if err := m.eng.SubmitOnboarding(ctx, m.sess, profile); err != nil {
			m.errText = err.Error()
			m.syncForm()
			return m, m.form.Init()
		}
		m.errText = ""
		m.syncForm()
		return m, nil

	case domain.PhaseSurveyPending:
		var resp eventlog.SurveyResponse
		for i, s := range m.survey.Ratings {
			resp.Ratings[i] = parseRating(s)
		}
		resp.Comments = m.survey.Comments
		if err := m.eng.SubmitSurvey(ctx, m.sess, resp); err != nil {
			m.errText = err.Error()
			m.syncForm()
			return m, m.form.Init()
		}
		m.errText = ""
		m.syncForm()
		return m, tickCmd()
	}

	m.syncForm()
	return m, cmd
}
