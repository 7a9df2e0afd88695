package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "go-contacts"
	AppUsage    = "Command-line assistant for contacts, phone numbers and birthdays"
	AppID       = "com.github.tartampluch.go-contacts"
	LogFileName = "app.log"

	FormatVersion = "%s (commit %s, built %s)"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig      = "config"
	FlagConfigAlias = "c"
	FlagDebug       = "debug"
	FlagWindow      = "window"
	FlagWindowAlias = "w"

	FlagDescConfig = "Path to a TOML settings file"
	FlagDescDebug  = "Enable debug logging to stderr"
	FlagDescWindow = "Days ahead to look for upcoming birthdays (overrides settings)"
)

// -----------------------------------------------------------------------------
// Assistant Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdVCard        = "vcard"
	CmdCalendar     = "calendar"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Message Catalogue Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Session
	TKeyWelcome = "welcome"
	TKeyPrompt  = "prompt"
	TKeyHello   = "hello"
	TKeyGoodbye = "goodbye"

	// Contacts & Phones
	TKeyContactAdded   = "contact_added"
	TKeyContactUpdated = "contact_updated"
	TKeyContactDeleted = "contact_deleted" // Requires Name
	TKeyPhoneAdded     = "phone_added"
	TKeyPhoneRejected  = "phone_rejected"
	TKeyPhoneChanged   = "phone_changed" // Requires Name
	TKeyPhoneList      = "phone_list"    // Requires Name, Phones
	TKeyPhoneNone      = "phone_none"    // Requires Name
	TKeyAllHeader      = "all_header"
	TKeyAllEmpty       = "all_empty"

	// Birthdays
	TKeyBirthdayAdded  = "birthday_added"
	TKeyBirthdayShow   = "birthday_show" // Requires Name, Date
	TKeyBirthdayNone   = "birthday_none" // Requires Name
	TKeyUpcomingHeader = "upcoming_header"
	TKeyUpcomingLine   = "upcoming_line" // Requires Name, Date
	TKeyUpcomingNone   = "upcoming_none" // Plural on Days

	// Help
	TKeyHelpHeader       = "help_header"
	TKeyHelpHello        = "help_hello"
	TKeyHelpAdd          = "help_add"
	TKeyHelpChange       = "help_change"
	TKeyHelpPhone        = "help_phone"
	TKeyHelpAll          = "help_all"
	TKeyHelpAddBirthday  = "help_add_birthday"
	TKeyHelpShowBirthday = "help_show_birthday"
	TKeyHelpBirthdays    = "help_birthdays"
	TKeyHelpDelete       = "help_delete"
	TKeyHelpVCard        = "help_vcard"
	TKeyHelpCalendar     = "help_calendar"
	TKeyHelpHelp         = "help_help"
	TKeyHelpExit         = "help_exit"

	// Missing arguments (one per command that takes arguments)
	TKeyUsageAdd         = "usage_add"
	TKeyUsageChange      = "usage_change"
	TKeyUsageName        = "usage_name"
	TKeyUsageAddBirthday = "usage_add_birthday"

	// Errors (user facing)
	TKeyErrUnknownContact = "err_unknown_contact" // Requires Name
	TKeyErrInvalidDate    = "err_invalid_date"    // Requires Format
	TKeyErrInvalidCommand = "err_invalid_command"
	TKeyErrPhoneNotFound  = "err_phone_not_found" // Requires Name, Value
	TKeyErrInvalidWindow  = "err_invalid_window"  // Requires Value
	TKeyErrInternal       = "err_internal"        // Requires Value
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage   = "en"
	DefaultWindowDays = 7
	DefaultReminder   = "-P1D"
	DefaultLogLevel   = "info"
	PhoneLength       = 10
	MaxWindowDays     = 366

	// MaxLineBytes caps one input line. Longer lines are discarded whole.
	MaxLineBytes = 1 << 20
)

// -----------------------------------------------------------------------------
// Data Formats & Display
// -----------------------------------------------------------------------------

const (
	// Date layouts accepted for birthdays
	DateFormatDayFirst      = "02.01.2006"
	DateFormatYearFirst     = "2006.01.02"
	DateFormatNameDayFirst  = "DD.MM.YYYY"
	DateFormatNameYearFirst = "YYYY.MM.DD"
	DateFormatFullDash      = "2006-01-02" // vCard BDAY

	FormatContactLine = "Name: %s, Phones: %s, Birthday: %s"
	FormatHelpLine    = "  %-32s %s"
	PhoneSeparator    = "; "
	LineSeparator     = "\n"
	BirthdayUnknown   = "N/A"
	UsageSuffixDays   = "[days]"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contacts//Assistant//EN"
	ICalCalName   = "Upcoming Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontacts"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"
	PropRefresh     = "REFRESH-INTERVAL"

	// vCard
	VCardVersion = "4.0"
	VCardURNUUID = "urn:uuid:"

	FormatUID = "%s-%d@%s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birth: %s"

	// ISO8601 durations accepted for reminders
	ISODurationPattern = `^[+-]?P(\d+W|(\d+D)?(T(\d+H)?(\d+M)?(\d+S)?)?)$`
	ISOPeriodPrefix    = "P"
	ISOTimePrefix      = "T"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrEmptyName         = "contact name is empty"
	ErrInvalidPhone      = "phone number must be exactly 10 digits"
	ErrInvalidDate       = "invalid date format"
	ErrUnknownDateFormat = "unknown date format"
	ErrPhoneNotFound     = "phone number not found"
	ErrUnknownContact    = "contact not found"
	ErrMissingArgument   = "missing required argument"
	ErrInvalidCommand    = "invalid command"
	ErrInvalidWindow     = "invalid birthday window"
	ErrInvalidReminder   = "reminder must be an ISO8601 duration such as -P1D"
	ErrInvalidLogLevel   = "unknown log level"
	ErrVCardEncode       = "failed to encode vCard data"
	ErrICalEncode        = "failed to encode iCalendar data"
	ErrSettingsRead      = "failed to read settings file"
	ErrSettingsParse     = "failed to parse settings"
	ErrSettingsInvalid   = "invalid settings"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
	ErrLogFile           = "failed to open log file"
	ErrCacheDir          = "could not determine user cache dir"
	ErrCreateDir         = "could not create app cache dir"
	ErrAppFailed         = "application failed unexpectedly"
	ErrReadInput         = "failed to read input"
	ErrWriteOutput       = "failed to write output"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgSettingsLoaded  = "Settings loaded"
	MsgSessionStart    = "Session started"
	MsgSessionEnd      = "Session ended"
	MsgSessionEOF      = "End of input reached"
	MsgCtxCancel       = "Context cancelled, closing session"
	MsgLineTooLong     = "Input line too long, discarded"
	MsgCommand         = "Command dispatched"
	MsgCommandFailed   = "Command failed"
	MsgContactCreated  = "Contact created"
	MsgSettingsUnknown = "Ignoring unknown settings key"
	MsgContactDeleted  = "Contact deleted"
	MsgPhoneAdded      = "Phone number added"
	MsgPhoneRejected   = "Phone number rejected"
	MsgBirthdaySet     = "Birthday stored"
	MsgUpcoming        = "Upcoming birthdays computed"
	MsgCalendarBuilt   = "Calendar generation successful"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgWindowOverride  = "Birthday window overridden from command line"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCommand   = "command"
	LogKeyArgs      = "arg_count"
	LogKeyName      = "name"
	LogKeyPhones    = "phones"
	LogKeyDOB       = "date_of_birth"
	LogKeyWindow    = "window_days"
	LogKeyCount     = "count"
	LogKeyFormat    = "date_format"
	LogKeyPath      = "path"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompEngine    = "engine"
	CompAssistant = "assistant"
	CompUI        = "ui"
	CompI18n      = "i18n"
	CompConfig    = "config"
)
