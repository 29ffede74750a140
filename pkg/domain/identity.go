package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdentityID uniquely identifies an issued digital identity.
type IdentityID uuid.UUID

// BatchID uniquely identifies an identity batch.
type BatchID uuid.UUID

// Holder is the person a digital identity is issued to.
type Holder struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DigitalIdentity is a fabricated identity card: a generated identity number
// bound to a holder name. It is never a real document.
type DigitalIdentity struct {
	ID     IdentityID `json:"id"`
	UserID UserID     `json:"userId"`
	// BatchID is set when the identity was produced by a batch job.
	BatchID *BatchID `json:"batchId,omitempty"`

	// Number is an 11-digit identity number that passes tckn.Validate.
	Number string `json:"number"`
	Holder Holder `json:"holder"`

	CreatedAt time.Time `json:"createdAt"`
	// DeletedAt marks soft deletion; zero means live.
	DeletedAt time.Time `json:"-"`
}

// BatchStatus is the lifecycle state of an identity batch.
type BatchStatus string

const (
	// BatchStatusPending means the batch job has not finished yet.
	BatchStatusPending BatchStatus = "PENDING"
	// BatchStatusCompleted means all identities of the batch were generated.
	BatchStatusCompleted BatchStatus = "COMPLETED"
	// BatchStatusFailed means the job gave up; see LastError.
	BatchStatusFailed BatchStatus = "FAILED"
)

// IdentityBatch is an asynchronous request to issue Size identities.
type IdentityBatch struct {
	ID     BatchID `json:"id"`
	UserID UserID  `json:"userId"`

	Size      int         `json:"size"`
	Status    BatchStatus `json:"status"`
	Generated int         `json:"generated"`

	Attempts  uint   `json:"attempts"`
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Remaining is how many identities the batch still has to produce.
func (b *IdentityBatch) Remaining() int {
	if r := b.Size - b.Generated; r > 0 {
		return r
	}

	return 0
}
