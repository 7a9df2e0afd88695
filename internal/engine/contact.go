package engine

import "time"

// Upcoming is one entry of the upcoming-birthdays list.
type Upcoming struct {
	// Name is the contact the birthday belongs to.
	Name Name

	// UID is the record's identifier, used for calendar event UIDs.
	UID string

	// Birthday is the stored date of birth.
	Birthday Birthday

	// Date is the congratulation date: the next occurrence of the birthday
	// on or after the reference date.
	Date time.Time

	// Age is how old the contact turns on Date.
	Age int
}

// nextOccurrence returns the first occurrence of birthDate's month/day that is
// not before the calendar day of now, and the age turned on that day.
//
// Feb 29 falls back to Feb 28 in years without a leap day. A date of birth
// after now yields the birth date itself, so the age is never negative.
func nextOccurrence(now time.Time, birthDate time.Time) (time.Time, int) {
	loc := now.Location()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	candidate := occurrenceIn(now.Year(), birthDate, loc)
	if candidate.Before(todayStart) {
		// Already passed this year.
		candidate = occurrenceIn(now.Year()+1, birthDate, loc)
	}
	if candidate.Year() < birthDate.Year() {
		candidate = occurrenceIn(birthDate.Year(), birthDate, loc)
	}

	return candidate, candidate.Year() - birthDate.Year()
}

// occurrenceIn places birthDate's month/day in year. time.Date would roll
// Feb 29 over to Mar 1 in a common year, so that case is clamped first.
func occurrenceIn(year int, birthDate time.Time, loc *time.Location) time.Time {
	month, day := birthDate.Month(), birthDate.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
