package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Record holds everything known about one contact.
// Phones keep insertion order and may repeat.
type Record struct {
	uid      string
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name with a fresh UID.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{
		uid:  uuid.NewString(),
		name: n,
	}, nil
}

// UID is a random identifier used when the record is exported.
func (r *Record) UID() string { return r.uid }

// Name returns the contact name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends number after validating it.
func (r *Record) AddPhone(number string) error {
	p, err := ParsePhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// ReplacePhones makes number the only phone of the record.
func (r *Record) ReplacePhones(number string) error {
	p, err := ParsePhone(number)
	if err != nil {
		return err
	}
	r.phones = []Phone{p}
	return nil
}

// EditPhone replaces the first occurrence of oldNumber with newNumber.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	p, err := ParsePhone(newNumber)
	if err != nil {
		return err
	}
	for i, existing := range r.phones {
		if string(existing) == oldNumber {
			r.phones[i] = p
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrPhoneNotFound, oldNumber)
}

// SetBirthday parses value with f and stores it, replacing any previous one.
func (r *Record) SetBirthday(value string, f DateFormat) error {
	b, err := ParseBirthday(value, f)
	if err != nil {
		return err
	}
	r.SetBirthdayDate(b)
	return nil
}

// SetBirthdayDate stores an already parsed birthday.
func (r *Record) SetBirthdayDate(b Birthday) {
	r.birthday = &b
}
