package postgres

import (
	"database/sql"
	"time"

	"civic/pkg/domain"

	"github.com/google/uuid"
)

type PgIdentity struct {
	ID      uuid.UUID     `db:"id"       goqu:"skipinsert"`
	UserID  uuid.UUID     `db:"user_id"`
	BatchID uuid.NullUUID `db:"batch_id"`

	Number    string `db:"number"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgIdentity) ToDomain() domain.DigitalIdentity {
	out := domain.DigitalIdentity{
		ID:     domain.IdentityID(p.ID),
		UserID: domain.UserID(p.UserID),
		Number: p.Number,
		Holder: domain.Holder{
			FirstName: p.FirstName,
			LastName:  p.LastName,
		},
		CreatedAt: p.CreatedAt,
		DeletedAt: p.DeletedAt.Time,
	}
	if p.BatchID.Valid {
		batchID := domain.BatchID(p.BatchID.UUID)
		out.BatchID = &batchID
	}

	return out
}

func (p *PgIdentity) FromDomain(identity domain.DigitalIdentity) {
	*p = PgIdentity{
		ID:        uuid.UUID(identity.ID),
		UserID:    uuid.UUID(identity.UserID),
		Number:    identity.Number,
		FirstName: identity.Holder.FirstName,
		LastName:  identity.Holder.LastName,
	}
	if identity.BatchID != nil {
		p.BatchID = uuid.NullUUID{UUID: uuid.UUID(*identity.BatchID), Valid: true}
	}
}

func pgIdentitiesToDomain(rows []PgIdentity) []domain.DigitalIdentity {
	out := make([]domain.DigitalIdentity, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

type PgBatch struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Size      int    `db:"size"`
	Status    string `db:"status"`
	Generated int    `db:"generated"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBatch) ToDomain() *domain.IdentityBatch {
	return &domain.IdentityBatch{
		ID:        domain.BatchID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Size:      p.Size,
		Status:    domain.BatchStatus(p.Status),
		Generated: p.Generated,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgBatch) FromDomain(batch domain.IdentityBatch) {
	*p = PgBatch{
		ID:        uuid.UUID(batch.ID),
		UserID:    uuid.UUID(batch.UserID),
		Size:      batch.Size,
		Status:    string(batch.Status),
		Generated: batch.Generated,
	}
}

type PgFeedback struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name    sql.NullString `db:"name"`
	Email   sql.NullString `db:"email"`
	Message string         `db:"message"`
	Rating  sql.NullInt16  `db:"rating"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgFeedback) ToDomain() domain.Feedback {
	return domain.Feedback{
		ID:        domain.FeedbackID(p.ID),
		Name:      p.Name.String,
		Email:     p.Email.String,
		Message:   p.Message,
		Rating:    int(p.Rating.Int16),
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgFeedback) FromDomain(f domain.Feedback) {
	*p = PgFeedback{
		ID:      uuid.UUID(f.ID),
		Name:    sql.NullString{String: f.Name, Valid: f.Name != ""},
		Email:   sql.NullString{String: f.Email, Valid: f.Email != ""},
		Message: f.Message,
		Rating:  sql.NullInt16{Int16: int16(f.Rating), Valid: f.Rating != 0}, //nolint: gosec
	}
}
