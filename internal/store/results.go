package store

import (
	"context"
	"fmt"

	"github.com/ritika/selfmap/ent"
	"github.com/ritika/selfmap/ent/moduleresult"
	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/scoring"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, attemptID string, moduleID bank.ModuleID, result scoring.ModuleResult) error {
	scores := make(map[string]float64, len(result.Scores))
	for d, v := range result.Scores {
		scores[string(d)] = v
	}

	existing, err := r.client.ModuleResult.Query().
		Where(
			moduleresult.AttemptID(attemptID),
			moduleresult.ModuleID(string(moduleID)),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetResultType(string(result.Type)).
			SetScores(scores).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update module result: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.ModuleResult.Create().
			SetAttemptID(attemptID).
			SetModuleID(string(moduleID)).
			SetResultType(string(result.Type)).
			SetScores(scores).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save module result: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query module result: %w", err)
	}
}

func (r *resultRepo) LoadAll(ctx context.Context, attemptID string) (map[bank.ModuleID]scoring.ModuleResult, error) {
	rows, err := r.client.ModuleResult.Query().
		Where(moduleresult.AttemptID(attemptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query module results: %w", err)
	}

	results := make(map[bank.ModuleID]scoring.ModuleResult, len(rows))
	for _, row := range rows {
		scores := make(map[bank.Domain]float64, len(row.Scores))
		for d, v := range row.Scores {
			scores[bank.Domain(d)] = v
		}
		results[bank.ModuleID(row.ModuleID)] = scoring.ModuleResult{
			Type:   scoring.ResultType(row.ResultType),
			Scores: scores,
		}
	}
	return results, nil
}
