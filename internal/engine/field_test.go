package engine_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"0987654321", true},
		{"123456789", false},   // too short
		{"12345678901", false}, // too long
		{"", false},
		{"12345abcde", false},
		{"123-456-78", false},
		{"+123456789", false},
		{"١٢٣٤٥٦٧٨٩٠", false}, // non-ASCII digits
		{" 123456789", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.ValidatePhone(tt.in))
		})
	}
}

// TestValidatePhone_AllDigitStrings walks every single-digit substitution of a
// valid number to check any ten ASCII digits are accepted.
func TestValidatePhone_AllDigitStrings(t *testing.T) {
	for pos := 0; pos < 10; pos++ {
		for d := '0'; d <= '9'; d++ {
			b := []byte("5555555555")
			b[pos] = byte(d)
			assert.True(t, engine.ValidatePhone(string(b)), string(b))
		}
	}
	for n := 0; n < 20; n++ {
		if n == 10 {
			continue
		}
		assert.False(t, engine.ValidatePhone(strings.Repeat("1", n)), "length %d", n)
	}
}

func TestParsePhone(t *testing.T) {
	p, err := engine.ParsePhone("1234567890")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", p.String())

	_, err = engine.ParsePhone("12345")
	assert.ErrorIs(t, err, engine.ErrInvalidPhone)
}

func TestNewName(t *testing.T) {
	n, err := engine.NewName("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", n.String())

	for _, bad := range []string{"", "   ", "\t"} {
		_, err := engine.NewName(bad)
		assert.ErrorIs(t, err, engine.ErrEmptyName)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		format  engine.DateFormat
		want    time.Time
		wantErr bool
	}{
		{"day first", "15.06.1990", engine.FormatDayFirst, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"year first", "1990.06.15", engine.FormatYearFirst, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"leap day", "29.02.2000", engine.FormatDayFirst, time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"wrong format for layout", "1990.06.15", engine.FormatDayFirst, time.Time{}, true},
		{"iso dashes", "1990-06-15", engine.FormatDayFirst, time.Time{}, true},
		{"impossible day", "31.02.1990", engine.FormatDayFirst, time.Time{}, true},
		{"not a leap year", "29.02.2001", engine.FormatDayFirst, time.Time{}, true},
		{"garbage", "birthday", engine.FormatYearFirst, time.Time{}, true},
		{"empty", "", engine.FormatDayFirst, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ParseDate(tt.value, tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, engine.ErrInvalidDate)
				assert.Contains(t, err.Error(), tt.format.String(), "error names the expected format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestBirthday_RoundTrip formats a parsed birthday and parses it again.
func TestBirthday_RoundTrip(t *testing.T) {
	inputs := []string{"01.01.1970", "15.06.1990", "29.02.2000", "31.12.2023"}

	for _, f := range []engine.DateFormat{engine.FormatDayFirst, engine.FormatYearFirst} {
		for _, in := range inputs {
			b, err := engine.ParseBirthday(in, engine.FormatDayFirst)
			require.NoError(t, err)

			again, err := engine.ParseBirthday(b.Format(f), f)
			require.NoError(t, err)
			assert.True(t, b.Date().Equal(again.Date()), "%s via %s", in, f)
		}
	}
}

func TestBirthday_Display(t *testing.T) {
	b, err := engine.ParseBirthday("1990.06.15", engine.FormatYearFirst)
	require.NoError(t, err)

	assert.Equal(t, "15.06.1990", b.String())
	assert.Equal(t, "1990.06.15", b.Format(engine.FormatYearFirst))
}

func TestNewBirthday_TruncatesTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	b := engine.NewBirthday(time.Date(1990, 6, 15, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), b.Date())
}

func TestParseDateFormat(t *testing.T) {
	f, err := engine.ParseDateFormat("DD.MM.YYYY")
	require.NoError(t, err)
	assert.Equal(t, engine.FormatDayFirst, f)

	f, err = engine.ParseDateFormat("YYYY.MM.DD")
	require.NoError(t, err)
	assert.Equal(t, engine.FormatYearFirst, f)
	assert.Equal(t, "YYYY.MM.DD", f.String())
	assert.Equal(t, "2006.01.02", f.Layout())

	_, err = engine.ParseDateFormat("MM/DD/YYYY")
	assert.ErrorIs(t, err, engine.ErrUnknownDateFormat)
}
