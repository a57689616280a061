package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	cursorVersion    = "v1"
)

var errMalformedCursor = errs.New("malformed cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microsecond precision to match postgres timestamps.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorVersion + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(errMalformedCursor, err.Error())
	}

	payload, ok := strings.CutPrefix(string(decoded), cursorVersion+":")
	if !ok {
		return time.Time{}, uuid.Nil, errs.Wrap(errMalformedCursor, "unknown cursor version")
	}

	micros, rawID, ok := strings.Cut(payload, "-")
	if !ok {
		return time.Time{}, uuid.Nil, errs.Wrap(errMalformedCursor, "expected <micros>-<uuid>")
	}

	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(errMalformedCursor, "invalid timestamp")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(errMalformedCursor, "invalid id")
	}

	return time.UnixMicro(ts).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// paginate trims a limit+1 result to limit rows and derives the next cursor
// from the last kept row. key reports false when the row cannot anchor a cursor.
func paginate(rows []*ListingView, limit int, key func(*ListingView) (time.Time, bool)) ([]*ListingView, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	last := rows[limit-1]
	at, ok := key(last)
	if !ok {
		return rows, nil
	}
	return rows, &Cursor{After: EncodeAfterCursor(at, last.ID)}
}

func byCreatedAt(v *ListingView) (time.Time, bool) { return v.CreatedAt, true }

func byClaimedAt(v *ListingView) (time.Time, bool) {
	if v.ClaimedAt == nil {
		return time.Time{}, false
	}
	return *v.ClaimedAt, true
}
