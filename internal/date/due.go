package date

import "time"

// Due describes when a task is due: always a calendar date, optionally a
// specific time of day. A task with no Due is never overdue.
type Due struct {
	Date    Date      `json:"date"`
	HasTime bool      `json:"has_time,omitempty"`
	At      time.Time `json:"at,omitempty"` // full instant, valid only when HasTime
}

// ParseDue builds a Due from a date string and an optional RFC 3339 datetime
// string, as delivered by the upstream API. The datetime wins when both are
// present and parseable.
func ParseDue(dateStr, datetimeStr string) (*Due, error) {
	if datetimeStr != "" {
		at, err := time.Parse(time.RFC3339, datetimeStr)
		if err == nil {
			return &Due{Date: FromTime(at), HasTime: true, At: at}, nil
		}
		// Fall through to the plain date; a malformed datetime alone
		// should not discard the due date.
	}
	if dateStr == "" {
		return nil, nil
	}
	d, err := Parse(dateStr)
	if err != nil {
		return nil, err
	}
	return &Due{Date: d}, nil
}

// SortKey returns the instant used for chronological ordering: the full
// timestamp when a time-of-day is present, otherwise midnight UTC of the
// due date.
func (d *Due) SortKey() time.Time {
	if d.HasTime {
		return d.At
	}
	return d.Date.Time
}

// Before reports whether d sorts strictly before other.
func (d *Due) Before(other *Due) bool {
	return d.SortKey().Before(other.SortKey())
}
