// Package engagement collects visitor feedback and page visit counts.
package engagement

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"civic/pkg/domain"
	"civic/pkg/serrors"
	"civic/pkg/storage"
)

const (
	MaxNameLength    = 100
	MaxEmailLength   = 320
	MaxMessageLength = 2000
	MaxPageLength    = 200
	MaxRating        = 5
)

type service struct {
	feedback storage.FeedbackStorage
	visits   storage.VisitStorage
}

func validEmail(email string) bool {
	local, host, ok := strings.Cut(email, "@")

	return ok && local != "" && host != "" && !strings.Contains(host, "@")
}

// Submit validates and stores feedback. Name, email and rating are optional.
func (s service) Submit(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error) {
	feedback.Name = strings.TrimSpace(feedback.Name)
	feedback.Email = strings.TrimSpace(feedback.Email)
	feedback.Message = strings.TrimSpace(feedback.Message)

	switch {
	case utf8.RuneCountInString(feedback.Name) > MaxNameLength:
		return nil, serrors.With(serrors.ErrBadRequest, "name must be at most %d characters", MaxNameLength)
	case feedback.Message == "":
		return nil, serrors.With(serrors.ErrBadRequest, "message is required")
	case utf8.RuneCountInString(feedback.Message) > MaxMessageLength:
		return nil, serrors.With(serrors.ErrBadRequest, "message must be at most %d characters", MaxMessageLength)
	case utf8.RuneCountInString(feedback.Email) > MaxEmailLength:
		return nil, serrors.With(serrors.ErrBadRequest, "email must be at most %d characters", MaxEmailLength)
	case feedback.Email != "" && !validEmail(feedback.Email):
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email")
	case feedback.Rating < 0 || feedback.Rating > MaxRating:
		return nil, serrors.With(serrors.ErrBadRequest, "rating must be between 0 and %d", MaxRating)
	}

	stored, err := s.feedback.StoreFeedback(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("could not store feedback: %w", err)
	}

	return stored, nil
}

func (s service) Recent(ctx context.Context, limit uint) ([]domain.Feedback, error) {
	res, err := s.feedback.RecentFeedback(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get recent feedback: %w", err)
	}

	return res, nil
}

var errVisitsDisabled = serrors.With(serrors.ErrUnavailable, "visit counter is not configured") //nolint: gochecknoglobals

func checkPage(page string) error {
	if !strings.HasPrefix(page, "/") || len(page) > MaxPageLength {
		return serrors.With(serrors.ErrBadRequest, "page must be a path of at most %d bytes", MaxPageLength)
	}

	return nil
}

func (s service) RecordVisit(ctx context.Context, page string) (domain.PageVisits, error) {
	if err := checkPage(page); err != nil {
		return domain.PageVisits{}, err
	}

	if s.visits == nil {
		return domain.PageVisits{}, errVisitsDisabled
	}

	total, err := s.visits.IncrVisits(ctx, page)
	if err != nil {
		return domain.PageVisits{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not record visit")
	}

	return domain.PageVisits{Page: page, Total: total}, nil
}

func (s service) Visits(ctx context.Context, page string) (domain.PageVisits, error) {
	if err := checkPage(page); err != nil {
		return domain.PageVisits{}, err
	}

	if s.visits == nil {
		return domain.PageVisits{}, errVisitsDisabled
	}

	total, err := s.visits.Visits(ctx, page)
	if err != nil {
		return domain.PageVisits{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not get visits")
	}

	return domain.PageVisits{Page: page, Total: total}, nil
}

// New creates an engagement Service. Feedback goes to feedback, visit counts to
// visits. A nil visits makes the visit operations report ErrUnavailable.
func New(feedback storage.FeedbackStorage, visits storage.VisitStorage) Service {
	return &service{
		feedback: feedback,
		visits:   visits,
	}
}
