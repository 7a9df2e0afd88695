package engine

import (
	"bytes"
	"fmt"
	"io"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Card converts the record to a vCard 4.0 card.
func (r *Record) Card() vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldUID, config.VCardURNUUID+r.uid)
	card.SetValue(vcard.FieldFormattedName, r.name.String())

	for _, p := range r.phones {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p.String(),
			Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
		})
	}

	if bday, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bday.Date().Format(config.DateFormatFullDash))
	}
	return card
}

// EncodeVCards writes the cards of records to w, one after another.
func EncodeVCards(w io.Writer, records ...*Record) error {
	enc := vcard.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r.Card()); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}

// VCard renders a single record as vCard text.
func VCard(r *Record) (string, error) {
	var buf bytes.Buffer
	if err := EncodeVCards(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
