package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermUserRW))
	return path
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, DefaultWindowDays, s.Birthdays.WindowDays)
	assert.Equal(t, DateFormatNameDayFirst, s.Birthdays.DateFormat)
	assert.Equal(t, DefaultReminder, s.Birthdays.Reminder)
	assert.Equal(t, DefaultLanguage, s.Locale.Language)
	assert.Equal(t, DefaultLogLevel, s.Log.Level)
	assert.NoError(t, s.Validate(), "Embedded defaults must always validate")
}

func TestLoadSettings_PartialOverride(t *testing.T) {
	path := writeSettings(t, `[birthdays]
window_days = 30
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 30, s.Birthdays.WindowDays)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DateFormatNameDayFirst, s.Birthdays.DateFormat)
	assert.Equal(t, DefaultLanguage, s.Locale.Language)
	assert.Empty(t, s.Unknown)
}

func TestLoadSettings_UnknownKeys(t *testing.T) {
	path := writeSettings(t, `colour = "blue"

[birthdays]
window_days = 10
horizon = 3
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Birthdays.WindowDays)
	assert.ElementsMatch(t, []string{"colour", "birthdays.horizon"}, s.Unknown)
}

func TestLoadSettings_FullFile(t *testing.T) {
	path := writeSettings(t, `[birthdays]
window_days = 14
date_format = "YYYY.MM.DD"
reminder = ""

[locale]
language = "en"

[log]
level = "debug"
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 14, s.Birthdays.WindowDays)
	assert.Equal(t, DateFormatNameYearFirst, s.Birthdays.DateFormat)
	assert.Empty(t, s.Birthdays.Reminder)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrSettingsRead)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := LoadSettings(writeSettings(t, "[birthdays\nwindow_days = "))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrSettingsParse)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadSettings(writeSettings(t, `[birthdays]
window_days = -1
date_format = "MM/DD/YYYY"
reminder = "1D"

[log]
level = "loud"
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrSettingsInvalid)
		assert.Contains(t, err.Error(), ErrInvalidWindow)
		assert.Contains(t, err.Error(), ErrUnknownDateFormat)
		assert.Contains(t, err.Error(), ErrInvalidReminder)
		assert.Contains(t, err.Error(), ErrInvalidLogLevel)
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_Reminder(t *testing.T) {
	tests := []struct {
		reminder string
		valid    bool
	}{
		{"", true},
		{"-P1D", true},
		{"P2W", true},
		{"PT15M", true},
		{"-P1DT12H", true},
		{"+PT1H30M", true},
		{"P", false},
		{"-P", false},
		{"PT", false},
		{"P1DT", false},
		{"Pgarbage", false},
		{"P1D2W", false},
		{"1D", false},
		{"-p1d", false},
	}

	for _, tt := range tests {
		t.Run(tt.reminder, func(t *testing.T) {
			s := DefaultSettings()
			s.Birthdays.Reminder = tt.reminder

			err := s.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), ErrInvalidReminder)
		})
	}
}
