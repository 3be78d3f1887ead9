package facades

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator is the part of the Twilio REST API used to send SMS.
// *twilioApi.ApiService satisfies it.
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

// BookingSMSFacade sends booking confirmations through Twilio.
type BookingSMSFacade struct {
	client      MessageCreator
	from        string
	countryCode string
}

// NewBookingSMSFacade creates a new facade sending from the given number.
// countryCode is prefixed to local phone numbers, e.g. "+54".
func NewBookingSMSFacade(client MessageCreator, from, countryCode string) *BookingSMSFacade {
	return &BookingSMSFacade{
		client:      client,
		from:        from,
		countryCode: countryCode,
	}
}

// SendBookingConfirmation texts the customer the details of booking b.
func (f *BookingSMSFacade) SendBookingConfirmation(ctx context.Context, b models.Booking) error {
	log := logger.FromContext(ctx)

	to, err := toE164(b.Phone, f.countryCode)
	if err != nil {
		log.Warnw("cannot send booking confirmation", "booking_id", b.ID, "error", err)
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(f.from)
	params.SetBody(confirmationBody(b))

	resp, err := f.client.CreateMessage(params)
	if err != nil {
		log.Errorw("failed to send booking confirmation via Twilio", "booking_id", b.ID, "error", err)
		return err
	}

	if resp != nil && resp.Sid != nil {
		log.Infow("booking confirmation sent", "booking_id", b.ID, "sid", *resp.Sid)
	} else {
		log.Infow("booking confirmation sent, no SID returned", "booking_id", b.ID)
	}
	return nil
}

func confirmationBody(b models.Booking) string {
	return fmt.Sprintf(
		"Hola %s, recibimos tu turno #%d de %s para el %s a las %s. Precio: $%d. Te contactaremos para confirmarlo.",
		b.Name, b.ID, b.Service, b.Date, b.Time, b.Price,
	)
}

// toE164 strips formatting from phone and prefixes countryCode unless the
// number already carries one.
func toE164(phone, countryCode string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = countryCode + strings.TrimLeft(cleaned, "0")
	}
	if !e164Pattern.MatchString(cleaned) {
		return "", fmt.Errorf("phone %q is not a valid E.164 number", phone)
	}
	return cleaned, nil
}
