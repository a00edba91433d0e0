package habits

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form used on the wire and
// as map keys. Records carry no time-of-day component.
const DateLayout = "2006-01-02"

// NormalizeDate strips the time component and pins the date to UTC.
// Every date must pass through here before reaching streak or
// analytics computations.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a normalized date in the canonical form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseFlexibleDate accepts the date representations that have
// accumulated across write paths: native times, "YYYY-MM-DD" strings,
// and full RFC3339 timestamps. The result is always normalized.
func ParseFlexibleDate(v interface{}) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return NormalizeDate(d), nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("nil date")
		}
		return NormalizeDate(*d), nil
	case string:
		if t, err := time.Parse(DateLayout, d); err == nil {
			return NormalizeDate(t), nil
		}
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return NormalizeDate(t), nil
		}
		return time.Time{}, fmt.Errorf("unparseable date %q", d)
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}
}

// Today returns the current calendar date, normalized.
func Today() time.Time {
	return NormalizeDate(time.Now())
}
