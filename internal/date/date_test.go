package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := Parse("2026-03-04")
		if err != nil {
			t.Fatal(err)
		}
		if d.Year() != 2026 || d.Month() != time.March || d.Day() != 4 {
			t.Errorf("got %s", d)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "04-03-2026", "2026/03/04", "next tuesday"} {
			if _, err := Parse(s); err == nil {
				t.Errorf("Parse(%q) expected error", s)
			}
		}
	})
}

func TestDateString(t *testing.T) {
	d := New(2026, time.March, 4)
	if got := d.String(); got != "2026-03-04" {
		t.Errorf("got %q, want 2026-03-04", got)
	}
}

func TestAddDays(t *testing.T) {
	d := New(2026, time.February, 28)
	if got := d.AddDays(1).String(); got != "2026-03-01" {
		t.Errorf("got %q, want 2026-03-01", got)
	}
	if got := d.AddDays(-28).String(); got != "2026-01-31" {
		t.Errorf("got %q, want 2026-01-31", got)
	}
}

func TestFromTimeDropsClock(t *testing.T) {
	at := time.Date(2026, 3, 4, 23, 59, 59, 0, time.UTC)
	if got := FromTime(at).String(); got != "2026-03-04" {
		t.Errorf("got %q, want 2026-03-04", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2026, time.March, 4)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-03-04"` {
		t.Errorf("got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("roundtrip got %s, want %s", back, d)
	}
}

func TestParseDue(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		due, err := ParseDue("2026-03-10", "")
		if err != nil {
			t.Fatal(err)
		}
		if due.HasTime || due.Date.String() != "2026-03-10" {
			t.Errorf("got %+v", due)
		}
	})

	t.Run("datetime wins", func(t *testing.T) {
		due, err := ParseDue("2026-03-10", "2026-03-11T09:30:00Z")
		if err != nil {
			t.Fatal(err)
		}
		if !due.HasTime || due.Date.String() != "2026-03-11" {
			t.Errorf("got %+v", due)
		}
		if due.At.Hour() != 9 || due.At.Minute() != 30 {
			t.Errorf("got instant %s", due.At)
		}
	})

	t.Run("malformed datetime falls back to date", func(t *testing.T) {
		due, err := ParseDue("2026-03-10", "tomorrow at nine")
		if err != nil {
			t.Fatal(err)
		}
		if due.HasTime || due.Date.String() != "2026-03-10" {
			t.Errorf("got %+v", due)
		}
	})

	t.Run("both empty yields nil", func(t *testing.T) {
		due, err := ParseDue("", "")
		if err != nil || due != nil {
			t.Errorf("got %+v, %v; want nil, nil", due, err)
		}
	})

	t.Run("malformed date errors", func(t *testing.T) {
		if _, err := ParseDue("soon", ""); err == nil {
			t.Error("expected error")
		}
	})
}

func TestDueBefore(t *testing.T) {
	day := New(2026, time.March, 4)
	morning := &Due{Date: day, HasTime: true, At: time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)}
	evening := &Due{Date: day, HasTime: true, At: time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC)}
	dateOnly := &Due{Date: day}
	nextDay := &Due{Date: New(2026, time.March, 5)}

	if !morning.Before(evening) {
		t.Error("morning should sort before evening")
	}
	if evening.Before(morning) {
		t.Error("evening should not sort before morning")
	}
	if !dateOnly.Before(nextDay) {
		t.Error("earlier day should sort first")
	}
	// A date-only due compares as midnight, ahead of any timed due that day.
	if !dateOnly.Before(morning) {
		t.Error("date-only should sort before a timed due on the same day")
	}
}
