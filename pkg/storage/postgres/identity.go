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
	identitiesTable = "identities"
)

func (p *PgSQL) StoreIdentities(ctx context.Context,
	identities ...domain.DigitalIdentity) ([]domain.DigitalIdentity, error) {
	if len(identities) == 0 {
		return nil, nil
	}

	rows := make([]PgIdentity, len(identities))
	for i := range identities {
		rows[i].FromDomain(identities[i])
	}

	var result []PgIdentity
	if err := p.Builder.Insert(identitiesTable).
		Rows(rows).
		Returning(&PgIdentity{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicateNumber
		}

		return nil, fmt.Errorf("could not store identities into pg: %w", err)
	}

	return pgIdentitiesToDomain(result), nil
}

// NumbersInUse returns which of numbers already belong to live identities.
func (p *PgSQL) NumbersInUse(ctx context.Context, numbers []string) ([]string, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	var taken []string
	if err := p.Builder.From(identitiesTable).
		Select("number").
		Where(
			goqu.I("number").In(numbers),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanValsContext(ctx, &taken); err != nil {
		return nil, fmt.Errorf("could not fetch numbers in use from pg: %w", err)
	}

	return taken, nil
}

// IdentityByID returns a live identity owned by userID.
func (p *PgSQL) IdentityByID(ctx context.Context,
	userID domain.UserID,
	id domain.IdentityID) (*domain.DigitalIdentity, error) {
	var row PgIdentity
	found, err := p.Builder.From(identitiesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch identity by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

// UserIdentities pages through a user's identities ordered by created_at DESC, id DESC.
// Rows inserted in the same transaction share created_at, so the cursor
// carries the id as a tie breaker.
func (p *PgSQL) UserIdentities(ctx context.Context,
	userID domain.UserID,
	cursor storage.Cursor,
	limit uint) (storage.UserIdentities, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID))
	}

	// fetch one extra to know whether there is a next page
	var rows []PgIdentity
	if err := p.Builder.From(identitiesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserIdentities{}, fmt.Errorf("could not fetch user identities from pg: %w", err)
	}

	var next *storage.Cursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			next = &storage.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
		}
	}

	return storage.UserIdentities{
		Identities: pgIdentitiesToDomain(rows),
		Next:       next,
	}, nil
}

// DeleteIdentity soft-deletes an identity owned by userID.
func (p *PgSQL) DeleteIdentity(ctx context.Context,
	userID domain.UserID,
	id domain.IdentityID) (*domain.DigitalIdentity, error) {
	var row PgIdentity
	found, err := p.Builder.Update(identitiesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgIdentity{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete identity in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}
