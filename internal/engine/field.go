package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Name is the display name of a contact and the key it is stored under.
type Name string

// NewName rejects empty and whitespace-only names. The value is kept as typed.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrEmptyName
	}
	return Name(value), nil
}

func (n Name) String() string { return string(n) }

// Phone is a validated 10-digit phone number.
type Phone string

// ValidatePhone accepts exactly config.PhoneLength ASCII digits.
func ValidatePhone(value string) bool {
	if len(value) != config.PhoneLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// ParsePhone returns ErrInvalidPhone unless ValidatePhone accepts the value.
func ParsePhone(value string) (Phone, error) {
	if !ValidatePhone(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, value)
	}
	return Phone(value), nil
}

func (p Phone) String() string { return string(p) }

// DateFormat selects one of the supported textual date layouts.
type DateFormat int

const (
	// FormatDayFirst is DD.MM.YYYY, the format contacts are entered in.
	FormatDayFirst DateFormat = iota
	// FormatYearFirst is YYYY.MM.DD.
	FormatYearFirst
)

// ParseDateFormat maps a settings name such as "DD.MM.YYYY" to a DateFormat.
func ParseDateFormat(name string) (DateFormat, error) {
	switch name {
	case config.DateFormatNameDayFirst:
		return FormatDayFirst, nil
	case config.DateFormatNameYearFirst:
		return FormatYearFirst, nil
	default:
		return FormatDayFirst, fmt.Errorf("%w: %q", ErrUnknownDateFormat, name)
	}
}

// Layout returns the time package layout for the format.
func (f DateFormat) Layout() string {
	if f == FormatYearFirst {
		return config.DateFormatYearFirst
	}
	return config.DateFormatDayFirst
}

// String returns the human-readable pattern, e.g. "DD.MM.YYYY".
func (f DateFormat) String() string {
	if f == FormatYearFirst {
		return config.DateFormatNameYearFirst
	}
	return config.DateFormatNameDayFirst
}

// ParseDate parses value with the given format. The result is midnight UTC
// of that calendar date.
func ParseDate(value string, f DateFormat) (time.Time, error) {
	t, err := time.Parse(f.Layout(), value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, use %s", ErrInvalidDate, value, f)
	}
	return t, nil
}

// Birthday is a calendar date without a time of day.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses value with the given format.
func ParseBirthday(value string, f DateFormat) (Birthday, error) {
	t, err := ParseDate(value, f)
	if err != nil {
		return Birthday{}, err
	}
	return Birthday{date: t}, nil
}

// NewBirthday truncates t to its calendar date.
func NewBirthday(t time.Time) Birthday {
	return Birthday{date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Date returns the birthday as midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// Format renders the birthday with the given format.
func (b Birthday) Format(f DateFormat) string {
	return b.date.Format(f.Layout())
}

// String renders the birthday as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.Format(FormatDayFirst)
}
