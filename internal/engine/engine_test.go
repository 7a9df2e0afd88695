package engine_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing using `testify/mock`.
type MockClock struct {
	mock.Mock
}

// Now implements the engine.Clock interface.
func (m *MockClock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func upcomingFixture(t *testing.T, now time.Time) []engine.Upcoming {
	t.Helper()
	book := engine.NewAddressBook()
	book.AddRecord(withBirthday(t, "alice", "03.01.1990"))
	book.AddRecord(withBirthday(t, "bob", "05.01.2000"))
	return book.UpcomingBirthdays(7, now)
}

func TestCalendar_Events(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := new(MockClock)
	clock.On("Now").Return(now)

	gen := &engine.Generator{Clock: clock}
	data, err := gen.Calendar(upcomingFixture(t, now), "")
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "PRODID:"+config.ICalProdid)
	assert.Contains(t, text, "SUMMARY:Birthday: alice (34)")
	assert.Contains(t, text, "SUMMARY:Birthday: bob (24)")
	assert.Contains(t, text, "20240103")
	assert.Contains(t, text, "20240105")
	assert.NotContains(t, text, "BEGIN:VALARM", "No reminder requested")

	clock.AssertExpectations(t)
}

func TestCalendar_BirthDayHasNoAge(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	book := engine.NewAddressBook()
	book.AddRecord(withBirthday(t, "kid", "12.06.2024"))
	book.AddRecord(withBirthday(t, "later", "12.06.2030"))

	entries := book.UpcomingBirthdays(7, now)
	require.Len(t, entries, 1, "A birth years away is outside the window")
	assert.Equal(t, 0, entries[0].Age)

	gen := &engine.Generator{Clock: engine.FixedClock(now)}
	data, err := gen.Calendar(entries, "")
	require.NoError(t, err)

	assert.Contains(t, string(data), "SUMMARY:Birth: kid")
	assert.NotContains(t, string(data), "(-")
}

func TestCalendar_Decodable(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	gen := &engine.Generator{Clock: engine.FixedClock(now)}

	data, err := gen.Calendar(upcomingFixture(t, now), config.DefaultReminder)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	for _, ev := range events {
		start, err := ev.DateTimeStart(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, 2024, start.Year())

		require.Len(t, ev.Children, 1, "Each event carries one alarm")
		assert.Equal(t, config.ICalComponent, ev.Children[0].Name)
		assert.Equal(t, config.DefaultReminder, ev.Children[0].Props.Get(config.PropTrigger).Value)
	}
}

func TestCalendar_Empty(t *testing.T) {
	gen := &engine.Generator{Clock: engine.FixedClock(time.Now())}

	data, err := gen.Calendar(nil, config.DefaultReminder)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestCalendar_CustomSummary(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gen := &engine.Generator{
		Clock: engine.FixedClock(now),
		FormatSummary: func(name string, age int) string {
			return fmt.Sprintf("%s turns %d", name, age)
		},
	}

	data, err := gen.Calendar(upcomingFixture(t, now), "")
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:alice turns 34")
}

func TestCalendar_UIDIncludesYear(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := upcomingFixture(t, now)
	gen := &engine.Generator{Clock: engine.FixedClock(now)}

	data, err := gen.Calendar(entries, "")
	require.NoError(t, err)

	want := fmt.Sprintf(config.FormatUID, entries[0].UID, 2024, config.ICalDomain)
	assert.Contains(t, string(data), "UID:"+want)
}
