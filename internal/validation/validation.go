// Package validation checks parsed submissions against the booking and
// registration rules. Every rule is evaluated; violations accumulate in order.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

// Layouts accepted for the booking date and time fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// Upper bounds matching the column sizes of the bookings and users tables.
// MaxPasswordLength is in bytes: bcrypt rejects longer input.
const (
	MaxNameLength         = 100
	MaxBookingPhoneLength = 30
	MaxUsernameLength     = 50
	MaxPasswordLength     = 72
)

var (
	bookingPhonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
	accountPhonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Booking messages.
const (
	MsgNameRequired     = "name is required"
	MsgPhoneRequired    = "phone is required"
	MsgServiceRequired  = "service is required"
	MsgDateRequired     = "date is required"
	MsgTimeRequired     = "time is required"
	MsgDateInvalid      = "invalid date format"
	MsgDateInPast       = "date cannot be before today"
	MsgPhoneInvalid     = "invalid phone format"
	MsgTimeInvalid      = "invalid time format"
	msgServiceUnknownFm = "unknown service %q, must be one of: %s"
)

// Length messages.
var (
	MsgNameTooLong      = fmt.Sprintf("name must be at most %d characters", MaxNameLength)
	MsgPhoneTooLong     = fmt.Sprintf("phone must be at most %d characters", MaxBookingPhoneLength)
	MsgFirstNameTooLong = fmt.Sprintf("first name must be at most %d characters", MaxNameLength)
	MsgLastNameTooLong  = fmt.Sprintf("last name must be at most %d characters", MaxNameLength)
	MsgUsernameTooLong  = fmt.Sprintf("username must be at most %d characters", MaxUsernameLength)
	MsgPasswordTooLong  = fmt.Sprintf("password must be at most %d bytes", MaxPasswordLength)
)

// Registration messages.
const (
	MsgFirstNameRequired = "first name is required"
	MsgLastNameRequired  = "last name is required"
	MsgPhoneDigits       = "phone must have exactly 10 digits"
	MsgUsernameRequired  = "username is required"
	MsgPasswordRequired  = "password is required"
	MsgPasswordTooShort  = "password must be at least 6 characters"
)

// ValidateBooking returns every violated booking rule, or nil when in is valid.
// now fixes "today" and its location.
func ValidateBooking(in models.BookingInput, now time.Time) []string {
	var errs []string

	if in.Name == "" {
		errs = append(errs, MsgNameRequired)
	} else if tooLong(in.Name, MaxNameLength) {
		errs = append(errs, MsgNameTooLong)
	}
	if in.Phone == "" {
		errs = append(errs, MsgPhoneRequired)
	} else if tooLong(in.Phone, MaxBookingPhoneLength) {
		errs = append(errs, MsgPhoneTooLong)
	}
	if in.Service == "" {
		errs = append(errs, MsgServiceRequired)
	} else if !models.IsKnownService(in.Service) {
		errs = append(errs, fmt.Sprintf(msgServiceUnknownFm, in.Service, strings.Join(models.Services, ", ")))
	}
	if in.Date == "" {
		errs = append(errs, MsgDateRequired)
	}
	if in.Time == "" {
		errs = append(errs, MsgTimeRequired)
	}
	if in.Date != "" {
		errs = append(errs, ValidateDate(in.Date, now)...)
	}
	if in.Phone != "" && !bookingPhonePattern.MatchString(in.Phone) {
		errs = append(errs, MsgPhoneInvalid)
	}
	if in.Time != "" {
		if _, err := time.Parse(TimeLayout, in.Time); err != nil {
			errs = append(errs, MsgTimeInvalid)
		}
	}

	return errs
}

// ValidateDate checks that date is a YYYY-MM-DD day not before now's calendar day.
func ValidateDate(date string, now time.Time) []string {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return []string{MsgDateInvalid}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return []string{MsgDateInPast}
	}
	return nil
}

// ValidateRegistration returns every violated registration rule, or nil when in is valid.
func ValidateRegistration(in models.RegistrationInput) []string {
	var errs []string

	if in.FirstName == "" {
		errs = append(errs, MsgFirstNameRequired)
	} else if tooLong(in.FirstName, MaxNameLength) {
		errs = append(errs, MsgFirstNameTooLong)
	}
	if in.LastName == "" {
		errs = append(errs, MsgLastNameRequired)
	} else if tooLong(in.LastName, MaxNameLength) {
		errs = append(errs, MsgLastNameTooLong)
	}
	if in.Phone == "" {
		errs = append(errs, MsgPhoneRequired)
	} else if !accountPhonePattern.MatchString(in.Phone) {
		errs = append(errs, MsgPhoneDigits)
	}
	if in.Username == "" {
		errs = append(errs, MsgUsernameRequired)
	} else if tooLong(in.Username, MaxUsernameLength) {
		errs = append(errs, MsgUsernameTooLong)
	}
	if in.Password == "" {
		errs = append(errs, MsgPasswordRequired)
	} else if len(in.Password) < MinPasswordLength {
		errs = append(errs, MsgPasswordTooShort)
	} else if len(in.Password) > MaxPasswordLength {
		errs = append(errs, MsgPasswordTooLong)
	}

	return errs
}

// tooLong counts characters, as VARCHAR(n) does.
func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}
