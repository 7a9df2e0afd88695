package commands

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func (a *Assistant) hello(_ []string) (string, error) {
	return a.catalog.Msg(config.TKeyHello, nil), nil
}

func (a *Assistant) goodbye(_ []string) (string, error) {
	return a.catalog.Msg(config.TKeyGoodbye, nil), nil
}

// findOrCreate returns the record for name, creating and storing it when
// absent, along with the matching "added"/"updated" message.
func (a *Assistant) findOrCreate(name string) (*engine.Record, string, error) {
	if r, ok := a.book.Find(name); ok {
		return r, a.catalog.Msg(config.TKeyContactUpdated, nil), nil
	}

	r, err := engine.NewRecord(name)
	if err != nil {
		return nil, "", err
	}
	a.book.AddRecord(r)

	slog.Info(config.MsgContactCreated,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyName, name,
	)
	return r, a.catalog.Msg(config.TKeyContactAdded, nil), nil
}

func (a *Assistant) mustFind(name string) (*engine.Record, error) {
	r, ok := a.book.Find(name)
	if !ok {
		return nil, unknownContact(name)
	}
	return r, nil
}

// add creates the contact if needed, then appends the phone. The contact
// stays even when the phone is rejected.
func (a *Assistant) add(args []string) (string, error) {
	if len(args) < 2 {
		return "", missing(config.TKeyUsageAdd)
	}
	name, number := args[0], args[1]

	r, prefix, err := a.findOrCreate(name)
	if err != nil {
		return "", err
	}

	if err := r.AddPhone(number); err != nil {
		slog.Info(config.MsgPhoneRejected,
			config.LogKeyComponent, config.CompAssistant,
			config.LogKeyName, name,
		)
		return prefix, err
	}

	slog.Debug(config.MsgPhoneAdded,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyName, name,
		config.LogKeyPhones, len(r.Phones()),
	)
	return prefix + " " + a.catalog.Msg(config.TKeyPhoneAdded, nil), nil
}

// change with two arguments replaces the whole phone list; with three it
// edits the first phone equal to the old number.
func (a *Assistant) change(args []string) (string, error) {
	if len(args) < 2 {
		return "", missing(config.TKeyUsageChange)
	}
	name := args[0]

	r, err := a.mustFind(name)
	if err != nil {
		return "", err
	}

	if len(args) >= 3 {
		if err := r.EditPhone(args[1], args[2]); err != nil {
			return "", &Error{Kind: err, Name: name, Value: args[1]}
		}
	} else if err := r.ReplacePhones(args[1]); err != nil {
		return "", err
	}

	return a.catalog.Msg(config.TKeyPhoneChanged, map[string]any{"Name": name}), nil
}

func (a *Assistant) phone(args []string) (string, error) {
	if len(args) < 1 {
		return "", missing(config.TKeyUsageName)
	}
	name := args[0]

	r, err := a.mustFind(name)
	if err != nil {
		return "", err
	}

	phones := r.Phones()
	if len(phones) == 0 {
		return a.catalog.Msg(config.TKeyPhoneNone, map[string]any{"Name": name}), nil
	}
	return a.catalog.Msg(config.TKeyPhoneList, map[string]any{
		"Name":   name,
		"Phones": engine.JoinPhones(phones),
	}), nil
}

func (a *Assistant) all(_ []string) (string, error) {
	if a.book.Len() == 0 {
		return a.catalog.Msg(config.TKeyAllEmpty, nil), nil
	}
	return a.catalog.Msg(config.TKeyAllHeader, nil) + config.LineSeparator +
		a.book.ShowAll(a.opts.DateFormat), nil
}

// addBirthday validates the date before touching the book, so a bad date
// never creates a contact.
func (a *Assistant) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", missing(config.TKeyUsageAddBirthday)
	}
	name, value := args[0], args[1]

	bday, err := engine.ParseBirthday(value, a.opts.DateFormat)
	if err != nil {
		return "", err
	}

	r, prefix, err := a.findOrCreate(name)
	if err != nil {
		return "", err
	}
	r.SetBirthdayDate(bday)

	slog.Debug(config.MsgBirthdaySet,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyName, name,
		config.LogKeyDOB, bday.String(),
	)
	return prefix + " " + a.catalog.Msg(config.TKeyBirthdayAdded, nil), nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", missing(config.TKeyUsageName)
	}
	name := args[0]

	r, err := a.mustFind(name)
	if err != nil {
		return "", err
	}

	bday, ok := r.Birthday()
	if !ok {
		return a.catalog.Msg(config.TKeyBirthdayNone, map[string]any{"Name": name}), nil
	}
	return a.catalog.Msg(config.TKeyBirthdayShow, map[string]any{
		"Name": name,
		"Date": bday.Format(a.opts.DateFormat),
	}), nil
}

// window reads the optional day count argument, defaulting to the
// configured window.
func (a *Assistant) window(args []string) (int, error) {
	if len(args) == 0 {
		return a.opts.WindowDays, nil
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 0 || days > config.MaxWindowDays {
		return 0, &Error{Kind: ErrInvalidWindow, Value: args[0]}
	}
	return days, nil
}

func (a *Assistant) birthdays(args []string) (string, error) {
	days, err := a.window(args)
	if err != nil {
		return "", err
	}

	upcoming := a.book.UpcomingBirthdays(days, a.clock.Now())
	if len(upcoming) == 0 {
		return a.catalog.Plural(config.TKeyUpcomingNone, days, map[string]any{"Days": days}), nil
	}

	lines := []string{a.catalog.Msg(config.TKeyUpcomingHeader, nil)}
	for _, u := range upcoming {
		lines = append(lines, a.catalog.Msg(config.TKeyUpcomingLine, map[string]any{
			"Name": u.Name.String(),
			"Date": u.Date.Format(a.opts.DateFormat.Layout()),
		}))
	}
	return strings.Join(lines, config.LineSeparator), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", missing(config.TKeyUsageName)
	}
	name := args[0]

	if !a.book.Delete(name) {
		return "", unknownContact(name)
	}

	slog.Info(config.MsgContactDeleted,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyName, name,
	)
	return a.catalog.Msg(config.TKeyContactDeleted, map[string]any{"Name": name}), nil
}

func (a *Assistant) vcard(args []string) (string, error) {
	if len(args) < 1 {
		return "", missing(config.TKeyUsageName)
	}

	r, err := a.mustFind(args[0])
	if err != nil {
		return "", err
	}

	text, err := engine.VCard(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func (a *Assistant) calendar(args []string) (string, error) {
	days, err := a.window(args)
	if err != nil {
		return "", err
	}

	gen := &engine.Generator{Clock: a.clock}
	data, err := gen.Calendar(a.book.UpcomingBirthdays(days, a.clock.Now()), a.opts.Reminder)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
