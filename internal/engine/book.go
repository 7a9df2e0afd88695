package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// AddressBook is the in-memory registry of records keyed by name.
// Iteration follows insertion order so listings are deterministic.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. An existing entry with the same name is
// replaced in place and keeps its position.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.Name().String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name and reports whether one existed.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// UpcomingBirthdays lists contacts whose next birthday falls within
// [reference, reference+windowDays], both ends inclusive, compared by
// calendar day. A negative window yields nothing.
func (b *AddressBook) UpcomingBirthdays(windowDays int, reference time.Time) []Upcoming {
	var out []Upcoming
	if windowDays < 0 {
		return out
	}

	loc := reference.Location()
	start := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, windowDays)

	for _, r := range b.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		next, age := nextOccurrence(start, bday.Date())
		if next.After(end) {
			continue
		}

		out = append(out, Upcoming{
			Name:     r.Name(),
			UID:      r.UID(),
			Birthday: bday,
			Date:     next,
			Age:      age,
		})
	}

	slog.Debug(config.MsgUpcoming,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyWindow, windowDays,
		config.LogKeyCount, len(out),
	)
	return out
}

// ShowAll renders one line per contact in insertion order, dates in format f.
// An empty book renders as the empty string.
func (b *AddressBook) ShowAll(f DateFormat) string {
	lines := make([]string, 0, b.Len())
	for _, r := range b.Records() {
		birthday := config.BirthdayUnknown
		if bday, ok := r.Birthday(); ok {
			birthday = bday.Format(f)
		}
		lines = append(lines, fmt.Sprintf(config.FormatContactLine,
			r.Name(), JoinPhones(r.Phones()), birthday))
	}
	return strings.Join(lines, config.LineSeparator)
}

// JoinPhones joins phone numbers with config.PhoneSeparator.
func JoinPhones(phones []Phone) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, config.PhoneSeparator)
}
