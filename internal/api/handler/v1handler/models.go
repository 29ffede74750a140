package v1handler

import (
	"time"

	"civic/pkg/domain"

	"github.com/google/uuid"
)

type GenerateNumbersResponse struct {
	Numbers []string `json:"numbers"`
}

type ValidateNumberRequest struct {
	Number string `json:"number"`
}

type IssueIdentityRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Identity struct {
	ID        uuid.UUID  `json:"id"`
	BatchID   *uuid.UUID `json:"batchId,omitempty"`
	Number    string     `json:"number"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	CreatedAt time.Time  `json:"createdAt"`
}

func DomainIdentityToV1(in *domain.DigitalIdentity) Identity {
	out := Identity{
		ID:        uuid.UUID(in.ID),
		Number:    in.Number,
		FirstName: in.Holder.FirstName,
		LastName:  in.Holder.LastName,
		CreatedAt: in.CreatedAt,
	}
	if in.BatchID != nil {
		batchID := uuid.UUID(*in.BatchID)
		out.BatchID = &batchID
	}

	return out
}

type IdentityList struct {
	Items      []Identity `json:"items"`
	NextCursor *string    `json:"nextCursor"`
}

type EnqueueBatchRequest struct {
	Size int `json:"size"`
}

type Batch struct {
	ID        uuid.UUID  `json:"id"`
	Size      int        `json:"size"`
	Status    string     `json:"status"`
	Generated int        `json:"generated"`
	Attempts  int        `json:"attempts"`
	LastError string     `json:"lastError,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func DomainBatchToV1(in *domain.IdentityBatch) Batch {
	out := Batch{
		ID:        uuid.UUID(in.ID),
		Size:      in.Size,
		Status:    string(in.Status),
		Generated: in.Generated,
		Attempts:  int(in.Attempts), //nolint: gosec
		LastError: in.LastError,
		CreatedAt: in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		updatedAt := in.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	Rating    int       `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func DomainFeedbackToV1(in *domain.Feedback) Feedback {
	return Feedback{
		ID:        uuid.UUID(in.ID),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Rating:    in.Rating,
		CreatedAt: in.CreatedAt,
	}
}

type FeedbackList struct {
	Items []Feedback `json:"items"`
}

type VisitRequest struct {
	Page string `json:"page"`
}
