package engagement_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"civic/internal/engagement"
	"civic/pkg/domain"
	"civic/pkg/serrors"
	mockstorage "civic/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*mockstorage.MockAllStorage, *mockstorage.MockVisitStorage, engagement.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	visits := mockstorage.NewMockVisitStorage(ctrl)

	return st, visits, engagement.New(st, visits)
}

func TestService_Submit(t *testing.T) {
	st, _, s := newTestService(t)

	st.EXPECT().StoreFeedback(gomock.Any(), domain.Feedback{
		Name:    "Ayşe",
		Email:   "ayse@example.com",
		Message: "Harika bir site",
		Rating:  5,
	}).DoAndReturn(func(_ context.Context, f domain.Feedback) (*domain.Feedback, error) {
		return &f, nil
	})

	stored, err := s.Submit(context.Background(), domain.Feedback{
		Name:    "  Ayşe ",
		Email:   " ayse@example.com",
		Message: "Harika bir site\n",
		Rating:  5,
	})
	require.NoError(t, err)
	require.Equal(t, "Ayşe", stored.Name)
}

func TestService_Submit_Invalid(t *testing.T) {
	_, _, s := newTestService(t)

	tests := []struct {
		name     string
		feedback domain.Feedback
	}{
		{name: "empty message", feedback: domain.Feedback{Message: "  "}},
		{name: "long message", feedback: domain.Feedback{Message: strings.Repeat("ğ", engagement.MaxMessageLength+1)}},
		{name: "long name", feedback: domain.Feedback{Name: strings.Repeat("a", engagement.MaxNameLength+1), Message: "hi"}},
		{name: "email without at", feedback: domain.Feedback{Email: "ayse.example.com", Message: "hi"}},
		{name: "long email", feedback: domain.Feedback{
			Email:   strings.Repeat("a", engagement.MaxEmailLength-len("@example.com")+1) + "@example.com",
			Message: "hi",
		}},
		{name: "email with two ats", feedback: domain.Feedback{Email: "a@b@c", Message: "hi"}},
		{name: "email without local part", feedback: domain.Feedback{Email: "@example.com", Message: "hi"}},
		{name: "rating too high", feedback: domain.Feedback{Message: "hi", Rating: 6}},
		{name: "negative rating", feedback: domain.Feedback{Message: "hi", Rating: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Submit(context.Background(), tt.feedback)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestService_Submit_StorageError(t *testing.T) {
	st, _, s := newTestService(t)

	st.EXPECT().StoreFeedback(gomock.Any(), gomock.Any()).Return(nil, errors.New("pg down"))
	_, err := s.Submit(context.Background(), domain.Feedback{Message: "hi"})
	require.Error(t, err)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestService_Recent(t *testing.T) {
	st, _, s := newTestService(t)

	st.EXPECT().RecentFeedback(gomock.Any(), uint(10)).Return([]domain.Feedback{{Message: "a"}, {Message: "b"}}, nil)
	res, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
}

func TestService_Visits(t *testing.T) {
	_, visits, s := newTestService(t)
	ctx := context.Background()

	visits.EXPECT().IncrVisits(gomock.Any(), "/tckn").Return(int64(7), nil)
	res, err := s.RecordVisit(ctx, "/tckn")
	require.NoError(t, err)
	require.Equal(t, domain.PageVisits{Page: "/tckn", Total: 7}, res)

	visits.EXPECT().Visits(gomock.Any(), "/tckn").Return(int64(7), nil)
	res, err = s.Visits(ctx, "/tckn")
	require.NoError(t, err)
	require.Equal(t, int64(7), res.Total)

	visits.EXPECT().IncrVisits(gomock.Any(), "/tckn").Return(int64(0), errors.New("redis down"))
	_, err = s.RecordVisit(ctx, "/tckn")
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	for _, page := range []string{"", "tckn", "/" + strings.Repeat("a", engagement.MaxPageLength)} {
		_, err := s.RecordVisit(ctx, page)
		require.ErrorIs(t, err, serrors.ErrBadRequest, page)
		_, err = s.Visits(ctx, page)
		require.ErrorIs(t, err, serrors.ErrBadRequest, page)
	}
}

func TestService_VisitsDisabled(t *testing.T) {
	svc := engagement.New(nil, nil)

	_, err := svc.RecordVisit(context.Background(), "/home")
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	_, err = svc.Visits(context.Background(), "/home")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
