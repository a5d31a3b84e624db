package store

import (
	"context"
	"fmt"

	"github.com/ritika/selfmap/ent"
	"github.com/ritika/selfmap/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetModuleID(data.ModuleID).
		SetItemID(data.ItemID).
		SetOptionIndex(data.OptionIndex).
		SetElapsedMs(data.ElapsedMs).
		SetWordCount(data.WordCount).
		SetText(data.Text).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendModuleEvent(ctx context.Context, data ModuleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ModuleEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetModuleID(data.ModuleID).
		SetAction(data.Action).
		SetItemsAnswered(data.ItemsAnswered).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save module event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountAnswers(ctx context.Context, attemptID string) (int, error) {
	n, err := r.client.AnswerEvent.Query().
		Where(answerevent.AttemptID(attemptID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answer events: %w", err)
	}
	return n, nil
}
