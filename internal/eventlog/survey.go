package eventlog

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SurveyDimensions are the six subjective workload scales, each rated
// 0-100, in their fixed question order.
var SurveyDimensions = [6]string{
	"mental_demand", "physical_demand", "temporal_demand",
	"performance", "effort", "frustration",
}

// SurveyResponse is one submitted workload questionnaire.
type SurveyResponse struct {
	Ratings  [6]int
	Comments string
}

// Validate checks every rating is within 0-100.
func (r SurveyResponse) Validate() error {
	for i, v := range r.Ratings {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s rating %d out of range 0-100", SurveyDimensions[i], v)
		}
	}
	return nil
}

// RawScore is the arithmetic mean of the six ratings, rounded to two
// decimals.
func (r SurveyResponse) RawScore() float64 {
	var sum int
	for _, v := range r.Ratings {
		sum += v
	}
	return math.Round(float64(sum)/6*100) / 100
}

// SurveyRow is one row of the shared workload-survey log. Surveys are not
// tied to a single case, so they live in a cross-session file rather than
// the per-session event log.
type SurveyRow struct {
	Timestamp time.Time
	SessionID string

	Role            string
	YearsExperience string
	FatigueStatus   string
	ToolID          string

	FinishedScenario string
	Response         SurveyResponse
}

var surveyHeader = []string{
	"timestamp_utc", "session_id",
	"participant_role", "years_experience", "fatigue_status", "tool_id",
	"finished_scenario",
	"mental_demand", "physical_demand", "temporal_demand",
	"performance", "effort", "frustration",
	"raw_score", "comments",
}

// SurveyLog appends workload-survey rows with the same append-only,
// flush-before-return semantics as the event log.
type SurveyLog struct {
	path string
}

// NewSurveyLog creates a survey log targeting the given file path.
func NewSurveyLog(path string) *SurveyLog {
	return &SurveyLog{path: path}
}

// Append writes one survey row.
func (l *SurveyLog) Append(row SurveyRow) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening survey log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat survey log: %w", err)
	}

	rec := []string{
		row.Timestamp.UTC().Format(time.RFC3339),
		row.SessionID,
		orNA(row.Role),
		orNA(row.YearsExperience),
		orNA(row.FatigueStatus),
		orNA(row.ToolID),
		orNA(row.FinishedScenario),
	}
	for _, v := range row.Response.Ratings {
		rec = append(rec, strconv.Itoa(v))
	}
	rec = append(rec, strconv.FormatFloat(row.Response.RawScore(), 'f', 2, 64), row.Response.Comments)

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(surveyHeader); err != nil {
			return fmt.Errorf("writing survey log header: %w", err)
		}
	}
	if err := w.Write(rec); err != nil {
		return fmt.Errorf("writing survey row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing survey row: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing survey log: %w", err)
	}
	return nil
}
