package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const fechaLayout = "2006-01-02"

// Fecha is a calendar date with day precision. Payments and sales carry
// dates, never times, so comparisons are always whole-day comparisons.
type Fecha struct {
	time.Time
}

func NuevaFecha(year int, month time.Month, day int) Fecha {
	return Fecha{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FechaDe drops the time-of-day component of t.
func FechaDe(t time.Time) Fecha {
	return NuevaFecha(t.Year(), t.Month(), t.Day())
}

func (f Fecha) MismoDia(o Fecha) bool {
	return f.Year() == o.Year() && f.YearDay() == o.YearDay()
}

func (f Fecha) AddDias(n int) Fecha {
	return Fecha{f.AddDate(0, 0, n)}
}

func (f Fecha) String() string {
	return f.Format(fechaLayout)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Format(fechaLayout) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = Fecha{}
		return nil
	}
	// Tolerate full timestamps; only the date part matters.
	if len(s) > len(fechaLayout) {
		s = s[:len(fechaLayout)]
	}
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*f = Fecha{t}
	return nil
}

func (f Fecha) Value() (driver.Value, error) {
	return f.Time, nil
}

func (f *Fecha) Scan(v interface{}) error {
	switch x := v.(type) {
	case time.Time:
		*f = FechaDe(x)
		return nil
	case []byte:
		return f.UnmarshalJSON(x)
	case string:
		return f.UnmarshalJSON([]byte(x))
	case nil:
		*f = Fecha{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Fecha", v)
	}
}
