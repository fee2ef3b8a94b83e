package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

// UTCTime stores a timestamp as fixed-width RFC 3339 UTC text. Writing the
// zero time and reading offset-less text both fail with
// biztime.ErrNaiveTimestamp.
type UTCTime struct {
	time.Time
}

func NewUTCTime(t time.Time) UTCTime {
	return UTCTime{Time: t.UTC()}
}

func (t UTCTime) Value() (driver.Value, error) {
	aware, err := biztime.RequireAware(t.Time)
	if err != nil {
		return nil, fmt.Errorf("refusing to persist unset timestamp: %w", err)
	}
	return biztime.FormatStorage(aware), nil
}

func (t *UTCTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case time.Time:
		t.Time = v.UTC()
		return nil
	default:
		return fmt.Errorf("cannot scan %T into UTCTime", value)
	}
}

func (t *UTCTime) parse(s string) error {
	parsed, err := biztime.ParseAware(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
