package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed settings.toml
var defaultSettings []byte

// Settings holds the user-tunable values read from a TOML file.
type Settings struct {
	Birthdays BirthdaySettings `toml:"birthdays"`
	Locale    LocaleSettings   `toml:"locale"`
	Log       LogSettings      `toml:"log"`

	// Unknown lists keys the file set that no field reads. The caller logs
	// them once logging is configured.
	Unknown []string `toml:"-"`
}

// BirthdaySettings controls the upcoming-birthday window and date handling.
type BirthdaySettings struct {
	WindowDays int    `toml:"window_days"`
	DateFormat string `toml:"date_format"`
	Reminder   string `toml:"reminder"`
}

// LocaleSettings selects the message catalogue language.
type LocaleSettings struct {
	Language string `toml:"language"`
}

// LogSettings controls the minimum log level.
type LogSettings struct {
	Level string `toml:"level"`
}

// DefaultSettings returns the settings embedded in the binary.
func DefaultSettings() *Settings {
	var s Settings
	if err := toml.Unmarshal(defaultSettings, &s); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default settings: %v", err))
	}
	return &s
}

// LoadSettings reads a TOML file on top of the defaults, so a partial file
// only overrides the keys it names. The result is validated.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	s := DefaultSettings()
	md, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}

	for _, key := range md.Undecoded() {
		s.Unknown = append(s.Unknown, key.String())
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports every invalid field at once.
func (s *Settings) Validate() error {
	var errs []error

	if s.Birthdays.WindowDays < 0 || s.Birthdays.WindowDays > MaxWindowDays {
		errs = append(errs, fmt.Errorf("%s: window_days must be between 0 and %d, got %d",
			ErrInvalidWindow, MaxWindowDays, s.Birthdays.WindowDays))
	}

	switch s.Birthdays.DateFormat {
	case DateFormatNameDayFirst, DateFormatNameYearFirst:
	default:
		errs = append(errs, fmt.Errorf("%s: %q", ErrUnknownDateFormat, s.Birthdays.DateFormat))
	}

	if r := s.Birthdays.Reminder; r != "" && !validDuration(r) {
		errs = append(errs, fmt.Errorf("%s: %q", ErrInvalidReminder, r))
	}

	if _, err := ParseLogLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", ErrSettingsInvalid, errors.Join(errs...))
	}
	return nil
}

var durationPattern = regexp.MustCompile(ISODurationPattern)

// validDuration accepts RFC 5545 durations such as -P1D, PT15M or P1W. A
// bare designator like P or P1DT carries no component and is rejected.
func validDuration(value string) bool {
	return durationPattern.MatchString(value) &&
		!strings.HasSuffix(value, ISOPeriodPrefix) &&
		!strings.HasSuffix(value, ISOTimePrefix)
}

// ParseLogLevel maps the textual level used in settings to a slog level.
// An empty string selects info.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", DefaultLogLevel:
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: %q", ErrInvalidLogLevel, level)
	}
}
