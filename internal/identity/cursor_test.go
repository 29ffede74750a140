package identity_test

import (
	"testing"
	"time"

	"civic/internal/identity"
	"civic/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	c := storage.Cursor{
		CreatedAt: time.Date(2025, 3, 4, 5, 6, 7, 123456000, time.UTC),
		ID:        uuid.MustParse("7f1c8a52-8a7d-4c61-9d3f-2b4f6f0e9a11"),
	}

	raw := identity.EncodeCursor(c)
	require.Equal(t, "2025-03-04T05:06:07.123456Z_7f1c8a52-8a7d-4c61-9d3f-2b4f6f0e9a11", raw)

	parsed, err := identity.ParseCursor(raw)
	require.NoError(t, err)
	require.True(t, c.CreatedAt.Equal(parsed.CreatedAt))
	require.Equal(t, c.ID, parsed.ID)

	empty, err := identity.ParseCursor("")
	require.NoError(t, err)
	require.True(t, empty.IsZero())

	for _, bad := range []string{"2025-03-04T05:06:07Z", "yesterday_7f1c8a52-8a7d-4c61-9d3f-2b4f6f0e9a11", "2025-03-04T05:06:07Z_nope"} {
		_, err := identity.ParseCursor(bad)
		require.Error(t, err, bad)
	}
}
