package erp

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount is a lenient currency value. ERPNext returns numbers, but custom fields and
// older endpoints sometimes return strings. Invalid values decode as zero with Valid unset.
type Amount struct {
	Value decimal.Decimal
	Valid bool
	Raw   string
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	a.Value = decimal.Zero
	a.Valid = false
	a.Raw = string(b)

	s := strings.TrimSpace(string(b))
	if s == "null" || s == "" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.ReplaceAll(strings.TrimSpace(str), ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	a.Value = d
	a.Valid = true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Value.String()), nil
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Value: d, Valid: true}
}

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999",
	DateTimeLayout,
	DateLayout,
	time.RFC3339Nano,
}

// Time decodes Frappe date and datetime strings in the server's local zone. Empty or
// malformed values decode as the zero time.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	t.Time = ParseTime(s)
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(DateTimeLayout))
}

func ParseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// FormatDate renders t as a Frappe date, or an empty string for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}
