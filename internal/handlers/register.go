package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/nailstudio-booking/internal/apperr"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegistrationInput) (*models.UserAccount, error)
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Success message
	// default: account created successfully
	Message string `json:"message"`

	// Id of the new account
	// default: 1
	UserID int64 `json:"user_id"`

	// Username of the new account
	// default: ana
	Username string `json:"usuario"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an active account. Username and phone must be unique. Password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param nombre formData string true "First name"
// @Param apellido formData string true "Last name"
// @Param celular formData string true "Phone, 10 digits"
// @Param usuario formData string true "Username"
// @Param password formData string true "Password, at least 6 characters"
// @Success 200 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid data / username or phone already taken"
// @Failure 405 {object} handlers.ErrorResponse "Method not allowed"
// @Failure 500 {object} handlers.ErrorResponse "Database error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, apperr.ErrMethodNotAllowed.Error())
			return
		}

		if err := parseForm(r); err != nil {
			logger.FromContext(ctx).Warnw("invalid registration form", "error", err)
			writeError(w, http.StatusBadRequest, "invalid form data")
			return
		}

		in := models.RegistrationInput{
			FirstName: formText(r, "nombre"),
			LastName:  formText(r, "apellido"),
			Phone:     formText(r, "celular"),
			Username:  formText(r, "usuario"),
			Password:  r.PostForm.Get("password"),
		}

		account, err := svc.Register(ctx, in)
		if err != nil {
			var (
				vErr *apperr.ValidationError
				cErr *apperr.ConflictError
			)
			switch {
			case errors.As(err, &vErr):
				writeError(w, http.StatusBadRequest, vErr.Error())
			case errors.As(err, &cErr):
				writeError(w, http.StatusBadRequest, cErr.Message)
			default:
				logger.FromContext(ctx).Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, internalMessage(err))
			}
			return
		}

		writeJSON(w, http.StatusOK, RegisterResponse{
			Success:  true,
			Message:  "account created successfully",
			UserID:   account.ID,
			Username: account.Username,
		})
	}
}
