package identity

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"civic/internal/config"
	"civic/pkg/domain"
	"civic/pkg/logger"
	"civic/pkg/serrors"
	"civic/pkg/storage"
	"civic/pkg/tckn"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure identity issuing and batch processing.
type Options struct {
	// MaxBatchSize caps GenerateNumbers and EnqueueBatch.
	MaxBatchSize int
	// MaxAttempts is how many times a batch job runs before the batch is marked failed.
	MaxAttempts int
	// GenerationAttempts bounds how often a taken number is replaced by a fresh one.
	GenerationAttempts int
	// Generator produces identity numbers. Defaults to tckn.NewGenerator().
	Generator *tckn.Generator
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxBatchSize:       cfg.Identity.MaxBatchSize,
		MaxAttempts:        cfg.Identity.MaxAttempts,
		GenerationAttempts: cfg.Identity.GenerationAttempts,
	}
}

type service struct {
	options   Options
	storage   storage.Storage
	generator *tckn.Generator
}

func (s service) Validate(number string) ValidationResult {
	res := ValidationResult{Number: number, Valid: true}
	if err := tckn.Check(number); err != nil {
		res.Valid = false
		res.Reason = err.Error()
	}

	return res
}

func (s service) checkCount(n int) error {
	if n < 1 || n > s.options.MaxBatchSize {
		return serrors.With(serrors.ErrBadRequest, "count must be between 1 and %d", s.options.MaxBatchSize)
	}

	return nil
}

// GenerateNumbers returns n distinct identity numbers without storing them.
func (s service) GenerateNumbers(n int) ([]string, error) {
	if err := s.checkCount(n); err != nil {
		return nil, err
	}

	numbers, err := s.generator.GenerateBatch(n)
	if err != nil {
		return nil, fmt.Errorf("could not generate identity numbers: %w", err)
	}

	return numbers, nil
}

// freshNumbers generates n numbers not held by any live identity.
func (s service) freshNumbers(ctx context.Context, st storage.IdentityStorage, n int) ([]string, error) {
	numbers, err := s.generator.GenerateBatch(n)
	if err != nil {
		return nil, fmt.Errorf("could not generate identity numbers: %w", err)
	}

	for range s.options.GenerationAttempts {
		taken, err := st.NumbersInUse(ctx, numbers)
		if err != nil {
			return nil, fmt.Errorf("could not check numbers in use: %w", err)
		}
		if len(taken) == 0 {
			return numbers, nil
		}

		logger.Debug(ctx, "replacing identity numbers already in use", zap.Int("count", len(taken)))
		for i, number := range numbers {
			if !slices.Contains(taken, number) {
				continue
			}
			if numbers[i], err = s.generator.Generate(); err != nil {
				return nil, fmt.Errorf("could not generate identity number: %w", err)
			}
		}
	}

	return nil, serrors.With(serrors.ErrConflict, "could not find unused identity numbers")
}

// Issue normalises the holder's names and stores a new identity with a fresh
// number. A number taken concurrently by another writer is replaced and the
// insert retried.
func (s service) Issue(ctx context.Context,
	userID domain.UserID,
	holder domain.Holder) (*domain.DigitalIdentity, error) {
	var err error
	if holder.FirstName, err = NormalizeName(holder.FirstName); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid first name")
	}
	if holder.LastName, err = NormalizeName(holder.LastName); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid last name")
	}

	for range s.options.GenerationAttempts {
		numbers, err := s.freshNumbers(ctx, s.storage, 1)
		if err != nil {
			return nil, err
		}

		stored, err := s.storage.StoreIdentities(ctx, domain.DigitalIdentity{
			UserID: userID,
			Number: numbers[0],
			Holder: holder,
		})
		if errors.Is(err, storage.ErrDuplicateNumber) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not store identity: %w", err)
		}

		return &stored[0], nil
	}

	return nil, serrors.With(serrors.ErrConflict, "could not issue a unique identity number")
}

func (s service) Get(ctx context.Context,
	userID domain.UserID,
	id domain.IdentityID) (*domain.DigitalIdentity, error) {
	res, err := s.storage.IdentityByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get identity: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "identity not found")
	}

	return res, nil
}

// Delete soft-deletes the identity, which frees its number for reuse.
func (s service) Delete(ctx context.Context, userID domain.UserID, id domain.IdentityID) error {
	res, err := s.storage.DeleteIdentity(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete identity: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "identity not found")
	}

	return nil
}

// List returns a page of the user's identities, newest first, and the cursor
// of the next page, which is empty on the last page.
func (s service) List(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.DigitalIdentity, string, error) {
	c, err := ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := s.storage.UserIdentities(ctx, userID, c, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user identities: %w", err)
	}

	var next string
	if page.Next != nil {
		next = EncodeCursor(*page.Next)
	}

	return page.Identities, next, nil
}

// EnqueueBatch stores a pending batch and its job in one transaction, so a
// batch never exists without a job to fill it.
func (s service) EnqueueBatch(ctx context.Context, userID domain.UserID, size int) (*domain.IdentityBatch, error) {
	if err := s.checkCount(size); err != nil {
		return nil, err
	}

	var batch *domain.IdentityBatch
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		batch, err = tx.StoreBatch(ctx, domain.IdentityBatch{
			UserID: userID,
			Size:   size,
			Status: domain.BatchStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store batch: %w", err)
		}

		if _, err := tx.AddJob(ctx, BatchJobArgs{
			BatchID:     uuid.UUID(batch.ID).String(),
			maxAttempts: s.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue batch: %w", err)
	}

	return batch, nil
}

func (s service) Batch(ctx context.Context, userID domain.UserID, id domain.BatchID) (*domain.IdentityBatch, error) {
	res, err := s.storage.UserBatchByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get batch: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "batch not found")
	}

	return res, nil
}

// ProcessBatch fills a pending batch with holderless identities. Batches that
// are no longer pending are left alone, so a redelivered job is harmless. A
// failed run is recorded on the batch and the batch is marked failed once
// MaxAttempts runs failed.
func (s service) ProcessBatch(ctx context.Context, id domain.BatchID) error {
	batch, err := s.storage.BatchByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get batch: %w", err)
	}
	if batch == nil {
		return serrors.With(serrors.ErrNotFound, "batch not found")
	}
	if batch.Status != domain.BatchStatusPending {
		logger.Info(ctx, "batch is not pending, skipping", zap.String("status", string(batch.Status)))

		return nil
	}

	if err := s.fillBatch(ctx, batch); err != nil {
		return s.failBatch(ctx, batch, err)
	}

	return nil
}

func (s service) fillBatch(ctx context.Context, batch *domain.IdentityBatch) error {
	remaining := batch.Remaining()

	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error { //nolint: wrapcheck
		if remaining > 0 {
			numbers, err := s.freshNumbers(ctx, tx, remaining)
			if err != nil {
				return err
			}

			batchID := batch.ID
			identities := make([]domain.DigitalIdentity, len(numbers))
			for i, number := range numbers {
				identities[i] = domain.DigitalIdentity{
					UserID:  batch.UserID,
					BatchID: &batchID,
					Number:  number,
				}
			}
			if _, err := tx.StoreIdentities(ctx, identities...); err != nil {
				return fmt.Errorf("could not store batch identities: %w", err)
			}
		}

		cleared := ""
		if _, err := tx.UpdateBatch(ctx, batch.ID, storage.BatchUpdates{
			Status:    domain.BatchStatusCompleted,
			Generated: &batch.Size,
			LastError: &cleared,
		}); err != nil {
			return fmt.Errorf("could not complete batch: %w", err)
		}

		return nil
	})
}

func (s service) failBatch(ctx context.Context, batch *domain.IdentityBatch, cause error) error {
	lastErr := cause.Error()
	updates := storage.BatchUpdates{
		LastError:         &lastErr,
		IncrementAttempts: true,
	}
	if int(batch.Attempts)+1 >= s.options.MaxAttempts { //nolint: gosec
		updates.Status = domain.BatchStatusFailed
	}

	if _, err := s.storage.UpdateBatch(ctx, batch.ID, updates); err != nil {
		logger.Error(ctx, "could not record batch failure", zap.Error(err), zap.NamedError("cause", cause))
	}

	return fmt.Errorf("could not process batch: %w", cause)
}

// New creates a new identity Service backed by the provided storage.
func New(storage storage.Storage, options Options) Service {
	gen := options.Generator
	if gen == nil {
		gen = tckn.NewGenerator()
	}

	return &service{
		options:   options,
		storage:   storage,
		generator: gen,
	}
}
