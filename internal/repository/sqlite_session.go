package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/triagelab/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database. The
// queue and revealed-action set are stored as JSON text columns; the queue
// holds case identifiers only, full records are re-resolved from the live
// content pack on load.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	queue, err := json.Marshal(s.Queue)
	if err != nil {
		return fmt.Errorf("encoding queue: %w", err)
	}
	revealed, err := json.Marshal(s.RevealedList())
	if err != nil {
		return fmt.Errorf("encoding revealed set: %w", err)
	}

	query := `INSERT INTO sessions (
			id, schema_version, created_at, created_stamp, fingerprint, app_version,
			role, years_experience, fatigue_status, tool_id,
			onboarding_complete, phase, queue, cursor,
			card_started_at, revealed, accumulated_cost_ms,
			washout_started_at, last_finished_scenario, log_path, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			role = excluded.role,
			years_experience = excluded.years_experience,
			fatigue_status = excluded.fatigue_status,
			tool_id = excluded.tool_id,
			onboarding_complete = excluded.onboarding_complete,
			phase = excluded.phase,
			queue = excluded.queue,
			cursor = excluded.cursor,
			card_started_at = excluded.card_started_at,
			revealed = excluded.revealed,
			accumulated_cost_ms = excluded.accumulated_cost_ms,
			washout_started_at = excluded.washout_started_at,
			last_finished_scenario = excluded.last_finished_scenario,
			log_path = excluded.log_path,
			updated_at = excluded.updated_at`

	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.SchemaVersion,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.CreatedStamp,
		s.Fingerprint,
		s.AppVersion,
		s.Profile.Role,
		s.Profile.YearsExperience,
		s.Profile.FatigueStatus,
		s.Profile.ToolID,
		boolToInt(s.OnboardingComplete),
		string(s.Phase),
		string(queue),
		s.Cursor,
		nullableTimeToString(s.CardStartedAt, time.RFC3339Nano),
		string(revealed),
		s.AccumulatedCostMs,
		nullableTimeToString(s.WashoutStartedAt, time.RFC3339Nano),
		s.LastFinishedScenario,
		s.LogPath,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving session snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, schema_version, created_at, created_stamp, fingerprint, app_version,
			role, years_experience, fatigue_status, tool_id,
			onboarding_complete, phase, queue, cursor,
			card_started_at, revealed, accumulated_cost_ms,
			washout_started_at, last_finished_scenario, log_path
		FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting session snapshot: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var createdAtStr, phaseStr, queueStr, revealedStr string
	var onboarding int
	var cardStartedAt, washoutStartedAt sql.NullString

	err := row.Scan(
		&s.ID, &s.SchemaVersion, &createdAtStr, &s.CreatedStamp, &s.Fingerprint, &s.AppVersion,
		&s.Profile.Role, &s.Profile.YearsExperience, &s.Profile.FatigueStatus, &s.Profile.ToolID,
		&onboarding, &phaseStr, &queueStr, &s.Cursor,
		&cardStartedAt, &revealedStr, &s.AccumulatedCostMs,
		&washoutStartedAt, &s.LastFinishedScenario, &s.LogPath,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session snapshot: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session snapshot: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.OnboardingComplete = intToBool(onboarding)
	s.Phase = domain.Phase(phaseStr)
	s.CardStartedAt = parseNullableTime(cardStartedAt, time.RFC3339Nano)
	s.WashoutStartedAt = parseNullableTime(washoutStartedAt, time.RFC3339Nano)

	if err := json.Unmarshal([]byte(queueStr), &s.Queue); err != nil {
		return nil, fmt.Errorf("decoding queue: %w", err)
	}
	var revealed []string
	if err := json.Unmarshal([]byte(revealedStr), &revealed); err != nil {
		return nil, fmt.Errorf("decoding revealed set: %w", err)
	}
	s.Revealed = make(map[string]bool, len(revealed))
	for _, k := range revealed {
		s.Revealed[k] = true
	}

	return &s, nil
}
