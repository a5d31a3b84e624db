package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ritika/selfmap/ent"
	"github.com/ritika/selfmap/ent/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, attemptID string) (*ProgressRecord, error) {
	p, err := r.client.Progress.Query().
		Where(progress.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}

	completedAt := time.Time{}
	if p.CompletedAt != nil {
		completedAt = *p.CompletedAt
	}
	return &ProgressRecord{
		AttemptID:     p.AttemptID,
		CurrentModule: p.CurrentModule,
		Completed:     p.Completed,
		IsComplete:    p.IsComplete,
		CompletedAt:   completedAt,
		UpdatedAt:     p.UpdatedAt,
	}, nil
}

func (r *progressRepo) Save(ctx context.Context, rec ProgressRecord) error {
	existing, err := r.client.Progress.Query().
		Where(progress.AttemptID(rec.AttemptID)).
		Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().
			SetCurrentModule(rec.CurrentModule).
			SetCompleted(rec.Completed).
			SetIsComplete(rec.IsComplete)
		if !rec.CompletedAt.IsZero() {
			upd.SetCompletedAt(rec.CompletedAt)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		create := r.client.Progress.Create().
			SetAttemptID(rec.AttemptID).
			SetCurrentModule(rec.CurrentModule).
			SetCompleted(rec.Completed).
			SetIsComplete(rec.IsComplete)
		if !rec.CompletedAt.IsZero() {
			create.SetCompletedAt(rec.CompletedAt)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query progress: %w", err)
	}
}
