package services

import (
	"context"

	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
	"github.com/sbilibin2017/nailstudio-booking/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=services

// UserReader defines read-only operations for user accounts.
type UserReader interface {
	FindByUsername(ctx context.Context, username string) (*int64, error)
	FindByPhone(ctx context.Context, phone string) (*int64, error)
}

// UserWriter defines write operations for user accounts.
type UserWriter interface {
	Save(ctx context.Context, u *models.UserAccount) (int64, error)
}

// RegistrationService handles account registration.
type RegistrationService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
	cost        int
}

// NewRegistrationService creates a new RegistrationService instance.
// cost is the bcrypt cost; kafkaWriter may be nil.
func NewRegistrationService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter, cost int) *RegistrationService {
	return &RegistrationService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		cost:        cost,
	}
}

// Register validates in, checks username then phone uniqueness, hashes the
// password and stores an active account.
func (svc *RegistrationService) Register(ctx context.Context, in models.RegistrationInput) (*models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if err := apperr.NewValidationError(validation.ValidateRegistration(in)); err != nil {
		log.Warnw("registration rejected", "username", in.Username, "error", err)
		return nil, err
	}

	id, err := svc.reader.FindByUsername(ctx, in.Username)
	if err != nil {
		log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if id != nil {
		log.Warnw("username already exists", "username", in.Username)
		return nil, &apperr.ConflictError{Message: apperr.MsgUsernameExists}
	}

	id, err = svc.reader.FindByPhone(ctx, in.Phone)
	if err != nil {
		log.Errorw("failed to check phone", "err", err)
		return nil, err
	}
	if id != nil {
		log.Warnw("phone already registered", "username", in.Username)
		return nil, &apperr.ConflictError{Message: apperr.MsgPhoneRegistered}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), svc.cost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	account := models.UserAccount{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Username:     in.Username,
		PasswordHash: string(hashedPassword),
		Active:       true,
	}

	newID, err := svc.writer.Save(ctx, &account)
	if err != nil {
		log.Errorw("failed to save user", "username", in.Username, "err", err)
		return nil, err
	}
	account.ID = newID

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EventUserRegistered, account.ID, map[string]any{
		"usuario": account.Username,
	}))

	return &account, nil
}
