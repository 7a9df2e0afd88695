package commands

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// Error kinds raised by the handlers themselves. Validation kinds come from
// the engine package (engine.ErrInvalidPhone, engine.ErrInvalidDate,
// engine.ErrPhoneNotFound).
var (
	ErrMissingArgument = errors.New(config.ErrMissingArgument)
	ErrUnknownContact  = errors.New(config.ErrUnknownContact)
	ErrInvalidCommand  = errors.New(config.ErrInvalidCommand)
	ErrInvalidWindow   = errors.New(config.ErrInvalidWindow)
)

// Error carries a failure kind together with what the user typed, so the
// dispatcher can render a precise message.
type Error struct {
	Kind  error
	Name  string
	Value string
	Usage string // message key shown for ErrMissingArgument
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Name != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Name)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	}
	return msg
}

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

func missing(usageKey string) error {
	return &Error{Kind: ErrMissingArgument, Usage: usageKey}
}

func unknownContact(name string) error {
	return &Error{Kind: ErrUnknownContact, Name: name}
}

// translate maps an error to its catalogue message. Anything unrecognised is
// reported as an internal error rather than leaking to the session.
func (a *Assistant) translate(err error) string {
	var ce *Error
	errors.As(err, &ce)
	if ce == nil {
		ce = &Error{}
	}

	switch {
	case errors.Is(err, ErrMissingArgument):
		return a.catalog.Msg(ce.Usage, nil)
	case errors.Is(err, ErrUnknownContact):
		return a.catalog.Msg(config.TKeyErrUnknownContact, map[string]any{"Name": ce.Name})
	case errors.Is(err, engine.ErrInvalidPhone):
		return a.catalog.Msg(config.TKeyPhoneRejected, nil)
	case errors.Is(err, engine.ErrInvalidDate):
		return a.catalog.Msg(config.TKeyErrInvalidDate, map[string]any{"Format": a.opts.DateFormat.String()})
	case errors.Is(err, engine.ErrPhoneNotFound):
		return a.catalog.Msg(config.TKeyErrPhoneNotFound, map[string]any{"Name": ce.Name, "Value": ce.Value})
	case errors.Is(err, ErrInvalidWindow):
		return a.catalog.Msg(config.TKeyErrInvalidWindow, map[string]any{"Value": ce.Value})
	case errors.Is(err, ErrInvalidCommand):
		return a.catalog.Msg(config.TKeyErrInvalidCommand, nil)
	default:
		return a.catalog.Msg(config.TKeyErrInternal, map[string]any{"Value": err.Error()})
	}
}
