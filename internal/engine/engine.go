package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Generator renders upcoming birthdays as an iCalendar feed.
type Generator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary lets the caller inject localized event titles.
	FormatSummary func(name string, age int) string
}

// Calendar builds one all-day event per entry, dated on its congratulation
// date. A non-empty reminderTrigger (e.g. "-P1D") adds a DISPLAY alarm.
func (g *Generator) Calendar(entries []Upcoming, reminderTrigger string) ([]byte, error) {
	if len(entries) == 0 {
		// A feed without events still has to be a valid VCALENDAR.
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(g.now().UTC())

	for _, e := range entries {
		event := g.createEvent(e, reminderTrigger)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, len(entries),
	)
	return buf.Bytes(), nil
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}

// createEvent turns one upcoming birthday into an all-day event.
func (g *Generator) createEvent(e Upcoming, reminderTrigger string) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, e.UID, e.Date.Year(), config.ICalDomain))

	summary := fmt.Sprintf(config.FallbackSummaryAge, e.Name, e.Age)
	if e.Age == 0 {
		summary = fmt.Sprintf(config.FallbackSummaryBirth, e.Name)
	}
	if g.FormatSummary != nil {
		summary = g.FormatSummary(e.Name.String(), e.Age)
	}
	event.Props.SetText(config.PropSummary, summary)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(e.Date)
	event.Props.Set(dtStartProp)

	if reminderTrigger != "" {
		addAlarm(event, reminderTrigger, summary)
	}
	return event
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
