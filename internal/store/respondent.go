package store

import (
	"context"
	"fmt"

	"github.com/ritika/selfmap/ent"
	"github.com/ritika/selfmap/ent/respondent"
)

// respondentRepo implements RespondentRepo using the ent client.
type respondentRepo struct {
	client *ent.Client
}

func (r *respondentRepo) Save(ctx context.Context, rec RespondentRecord) error {
	_, err := r.client.Respondent.Create().
		SetAttemptID(rec.AttemptID).
		SetName(rec.Name).
		SetParentContact(rec.ParentContact).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save respondent: %w", err)
	}
	return nil
}

func (r *respondentRepo) Load(ctx context.Context, attemptID string) (*RespondentRecord, error) {
	rec, err := r.client.Respondent.Query().
		Where(respondent.AttemptID(attemptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query respondent: %w", err)
	}
	return entRespondentToRecord(rec), nil
}

func (r *respondentRepo) Latest(ctx context.Context) (*RespondentRecord, error) {
	rec, err := r.client.Respondent.Query().
		Order(ent.Desc(respondent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest respondent: %w", err)
	}
	return entRespondentToRecord(rec), nil
}

func entRespondentToRecord(rec *ent.Respondent) *RespondentRecord {
	return &RespondentRecord{
		AttemptID:     rec.AttemptID,
		Name:          rec.Name,
		ParentContact: rec.ParentContact,
		CreatedAt:     rec.CreatedAt,
	}
}
