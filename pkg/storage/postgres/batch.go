package postgres

import (
	"context"
	"fmt"

	"civic/pkg/domain"
	"civic/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	batchesTable  = "identity_batches"
	feedbackTable = "feedback"
)

func (p *PgSQL) StoreBatch(ctx context.Context, batch domain.IdentityBatch) (*domain.IdentityBatch, error) {
	var row PgBatch
	row.FromDomain(batch)

	var result PgBatch
	if _, err := p.Builder.Insert(batchesTable).
		Rows(row).
		Returning(&PgBatch{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store batch into pg: %w", err)
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) batchWhere(ctx context.Context, w ...goqu.Expression) (*domain.IdentityBatch, error) {
	var row PgBatch
	found, err := p.Builder.From(batchesTable).Where(w...).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch batch: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BatchByID(ctx context.Context, id domain.BatchID) (*domain.IdentityBatch, error) {
	return p.batchWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserBatchByID(ctx context.Context,
	userID domain.UserID,
	id domain.BatchID) (*domain.IdentityBatch, error) {
	return p.batchWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	)
}

// UpdateBatch changes the fields set in updates and refreshes updated_at.
func (p *PgSQL) UpdateBatch(ctx context.Context,
	id domain.BatchID,
	updates storage.BatchUpdates) (*domain.IdentityBatch, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Generated != nil {
		rec["generated"] = *updates.Generated
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}
	if updates.IncrementAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}

	var row PgBatch
	found, err := p.Builder.Update(batchesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgBatch{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update batch in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreFeedback(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error) {
	var row PgFeedback
	row.FromDomain(feedback)

	var result PgFeedback
	if _, err := p.Builder.Insert(feedbackTable).
		Rows(row).
		Returning(&PgFeedback{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store feedback into pg: %w", err)
	}

	out := result.ToDomain()

	return &out, nil
}

func (p *PgSQL) RecentFeedback(ctx context.Context, limit uint) ([]domain.Feedback, error) {
	var rows []PgFeedback
	if err := p.Builder.From(feedbackTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch feedback from pg: %w", err)
	}

	out := make([]domain.Feedback, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
