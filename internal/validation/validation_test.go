package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/nailstudio-booking/internal/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.October, 18, 15, 30, 0, 0, time.UTC)

func validBooking() models.BookingInput {
	return models.BookingInput{
		Name:    "Ana",
		Phone:   "+54 (11) 5555-1234",
		Service: models.ServiceGel,
		Date:    "2026-10-20",
		Time:    "10:00",
	}
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *models.BookingInput)
		want   []string
	}{
		{
			name:   "valid",
			modify: func(in *models.BookingInput) {},
			want:   nil,
		},
		{
			name:   "today is allowed",
			modify: func(in *models.BookingInput) { in.Date = "2026-10-18" },
			want:   nil,
		},
		{
			name:   "yesterday is rejected",
			modify: func(in *models.BookingInput) { in.Date = "2026-10-17" },
			want:   []string{MsgDateInPast},
		},
		{
			name:   "unparseable date",
			modify: func(in *models.BookingInput) { in.Date = "20/10/2026" },
			want:   []string{MsgDateInvalid},
		},
		{
			name:   "name at column size",
			modify: func(in *models.BookingInput) { in.Name = strings.Repeat("ñ", MaxNameLength) },
			want:   nil,
		},
		{
			name:   "name over column size",
			modify: func(in *models.BookingInput) { in.Name = strings.Repeat("a", MaxNameLength+1) },
			want:   []string{MsgNameTooLong},
		},
		{
			name:   "phone over column size",
			modify: func(in *models.BookingInput) { in.Phone = strings.Repeat("1", MaxBookingPhoneLength+1) },
			want:   []string{MsgPhoneTooLong},
		},
		{
			name:   "phone with letters",
			modify: func(in *models.BookingInput) { in.Phone = "call me" },
			want:   []string{MsgPhoneInvalid},
		},
		{
			name:   "bad time",
			modify: func(in *models.BookingInput) { in.Time = "25:99" },
			want:   []string{MsgTimeInvalid},
		},
		{
			name:   "unknown service",
			modify: func(in *models.BookingInput) { in.Service = "waxing" },
			want:   []string{`unknown service "waxing", must be one of: manicura, pedicura, nailart, gel`},
		},
		{
			name:   "everything missing accumulates",
			modify: func(in *models.BookingInput) { *in = models.BookingInput{} },
			want: []string{
				MsgNameRequired,
				MsgPhoneRequired,
				MsgServiceRequired,
				MsgDateRequired,
				MsgTimeRequired,
			},
		},
		{
			name: "several violations do not short-circuit",
			modify: func(in *models.BookingInput) {
				in.Name = ""
				in.Phone = "abc"
				in.Date = "2020-01-01"
			},
			want: []string{MsgNameRequired, MsgDateInPast, MsgPhoneInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validBooking()
			tt.modify(&in)
			assert.Equal(t, tt.want, ValidateBooking(in, now))
		})
	}
}

func TestValidateBooking_Pure(t *testing.T) {
	in := models.BookingInput{Phone: "x", Date: "2001-01-01"}
	assert.Equal(t, ValidateBooking(in, now), ValidateBooking(in, now))
}

func TestValidateDate(t *testing.T) {
	for offset := -3; offset <= 3; offset++ {
		date := now.AddDate(0, 0, offset).Format(DateLayout)
		errs := ValidateDate(date, now)
		if offset < 0 {
			assert.Equal(t, []string{MsgDateInPast}, errs, date)
		} else {
			assert.Empty(t, errs, date)
		}
	}
}

func TestValidateDate_UsesLocationOfNow(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	// 01:00 UTC on the 19th is still the 18th in ART.
	lateNight := time.Date(2026, time.October, 19, 1, 0, 0, 0, time.UTC).In(loc)

	assert.Empty(t, ValidateDate("2026-10-18", lateNight))
	assert.Equal(t, []string{MsgDateInPast}, ValidateDate("2026-10-17", lateNight))
}

func validRegistration() models.RegistrationInput {
	return models.RegistrationInput{
		FirstName: "Ana",
		LastName:  "García",
		Phone:     "1155551234",
		Username:  "ana",
		Password:  "secret1",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *models.RegistrationInput)
		want   []string
	}{
		{
			name:   "valid",
			modify: func(in *models.RegistrationInput) {},
			want:   nil,
		},
		{
			name:   "short phone",
			modify: func(in *models.RegistrationInput) { in.Phone = "12345" },
			want:   []string{MsgPhoneDigits},
		},
		{
			name:   "eleven digits",
			modify: func(in *models.RegistrationInput) { in.Phone = "11555512345" },
			want:   []string{MsgPhoneDigits},
		},
		{
			name:   "formatted phone",
			modify: func(in *models.RegistrationInput) { in.Phone = "115-555-1234" },
			want:   []string{MsgPhoneDigits},
		},
		{
			name:   "password of five",
			modify: func(in *models.RegistrationInput) { in.Password = "12345" },
			want:   []string{MsgPasswordTooShort},
		},
		{
			name:   "password of six",
			modify: func(in *models.RegistrationInput) { in.Password = "123456" },
			want:   nil,
		},
		{
			name:   "password of 72 bytes",
			modify: func(in *models.RegistrationInput) { in.Password = strings.Repeat("a", MaxPasswordLength) },
			want:   nil,
		},
		{
			name:   "password of 73 bytes",
			modify: func(in *models.RegistrationInput) { in.Password = strings.Repeat("a", MaxPasswordLength+1) },
			want:   []string{MsgPasswordTooLong},
		},
		{
			name:   "multibyte password over 72 bytes",
			modify: func(in *models.RegistrationInput) { in.Password = strings.Repeat("ñ", 37) },
			want:   []string{MsgPasswordTooLong},
		},
		{
			name: "names and username over column size",
			modify: func(in *models.RegistrationInput) {
				in.FirstName = strings.Repeat("a", MaxNameLength+1)
				in.LastName = strings.Repeat("b", MaxNameLength+1)
				in.Username = strings.Repeat("c", MaxUsernameLength+1)
			},
			want: []string{MsgFirstNameTooLong, MsgLastNameTooLong, MsgUsernameTooLong},
		},
		{
			name:   "everything missing",
			modify: func(in *models.RegistrationInput) { *in = models.RegistrationInput{} },
			want: []string{
				MsgFirstNameRequired,
				MsgLastNameRequired,
				MsgPhoneRequired,
				MsgUsernameRequired,
				MsgPasswordRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRegistration()
			tt.modify(&in)
			assert.Equal(t, tt.want, ValidateRegistration(in))
		})
	}
}
