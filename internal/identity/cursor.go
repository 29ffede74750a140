package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"civic/pkg/storage"

	"github.com/google/uuid"
)

// EncodeCursor renders a keyset position as "<RFC3339Nano>_<uuid>".
func EncodeCursor(c storage.Cursor) string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + "_" + c.ID.String()
}

// ParseCursor is the inverse of EncodeCursor. An empty string is the first page.
func ParseCursor(raw string) (storage.Cursor, error) {
	if raw == "" {
		return storage.Cursor{}, nil
	}

	ts, id, ok := strings.Cut(raw, "_")
	if !ok {
		return storage.Cursor{}, errors.New("cursor has no id part")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.Cursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return storage.Cursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return storage.Cursor{CreatedAt: createdAt, ID: parsedID}, nil
}
