package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/triagelab/internal/domain"
)

// ErrNotFound is returned when no snapshot exists for a session id.
var ErrNotFound = errors.New("not found")

// SessionRepo persists full session snapshots keyed by session id. Save is
// called after every state-affecting operation, so the stored snapshot is
// always consistent with the most recently appended event.
type SessionRepo interface {
	Save(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
