// Package commands turns parsed user input into replies. It owns the address
// book for the lifetime of a session and never touches the terminal.
package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/locale"
)

// Options are the user-tunable values a session runs with.
type Options struct {
	WindowDays int
	DateFormat engine.DateFormat
	Reminder   string
}

// DefaultOptions mirrors the embedded settings file.
func DefaultOptions() Options {
	return Options{
		WindowDays: config.DefaultWindowDays,
		DateFormat: engine.FormatDayFirst,
		Reminder:   config.DefaultReminder,
	}
}

// OptionsFromSettings converts loaded settings. The settings are expected to
// have been validated already.
func OptionsFromSettings(s *config.Settings) (Options, error) {
	f, err := engine.ParseDateFormat(s.Birthdays.DateFormat)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", config.ErrSettingsInvalid, err)
	}
	return Options{
		WindowDays: s.Birthdays.WindowDays,
		DateFormat: f,
		Reminder:   s.Birthdays.Reminder,
	}, nil
}

// Response is the outcome of one command.
type Response struct {
	Text string // final display string
	Err  error  // set when the command failed, Text already explains it
	Exit bool   // the session should end
}

// Assistant dispatches commands against one address book.
type Assistant struct {
	book    *engine.AddressBook
	catalog *locale.Catalog
	clock   engine.Clock
	opts    Options
}

// New creates an assistant. A nil book starts empty and a nil clock uses the
// system time.
func New(book *engine.AddressBook, catalog *locale.Catalog, clock engine.Clock, opts Options) *Assistant {
	if book == nil {
		book = engine.NewAddressBook()
	}
	if clock == nil {
		clock = engine.RealClock{}
	}
	return &Assistant{book: book, catalog: catalog, clock: clock, opts: opts}
}

// Book exposes the underlying address book.
func (a *Assistant) Book() *engine.AddressBook { return a.book }

// ParseInput splits a line on whitespace. The first token is the command,
// lower-cased; the rest are arguments kept as typed.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Handle parses line and executes it.
func (a *Assistant) Handle(line string) Response {
	cmd, args := ParseInput(line)
	return a.Execute(cmd, args)
}

// Execute runs one command. It never panics on user input and every failure
// is turned into a display string.
func (a *Assistant) Execute(cmd string, args []string) Response {
	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyCommand, cmd,
		config.LogKeyArgs, len(args),
	)

	c, ok := lookup(cmd)
	if !ok {
		return a.fail(cmd, "", &Error{Kind: ErrInvalidCommand, Value: cmd})
	}

	text, err := c.run(a, args)
	if err != nil {
		return a.fail(cmd, text, err)
	}
	return Response{Text: text, Exit: c.exit}
}

// fail renders err after any partial text the handler produced.
func (a *Assistant) fail(cmd, partial string, err error) Response {
	slog.Info(config.MsgCommandFailed,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyCommand, cmd,
		config.LogKeyError, err,
	)

	msg := a.translate(err)
	if partial != "" {
		msg = partial + " " + msg
	}
	return Response{Text: msg, Err: err}
}
