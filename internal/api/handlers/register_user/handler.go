package register_user

import (
	"errors"
	"net/http"

	"github.com/parqr/parqr-backend/internal/api/handlers"
	registerUser "github.com/parqr/parqr-backend/internal/usecase/register_user"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidInput           = "некорректные данные регистрации"
	msgCountryNotServiced     = "страна не обслуживается"
	msgInvalidPhoneNumber     = "некорректный формат номера телефона"
	msgPhoneAlreadyRegistered = "номер телефона уже зарегистрирован"
)

type Handler struct {
	useCase RegisterUserUseCase
	logger  Logger
}

func NewHandler(useCase RegisterUserUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v01/users/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerUser.ErrInvalidInput):
			h.logger.Warn("POST /users/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, registerUser.ErrCountryNotServiced):
			h.logger.Warn("POST /users/register - Country not serviced: country=%s", req.SignupCountryISO)
			handlers.RespondBadRequest(w, msgCountryNotServiced)

		case errors.Is(err, registerUser.ErrInvalidPhoneNumber):
			h.logger.Warn("POST /users/register - Invalid phone number format")
			handlers.RespondBadRequest(w, msgInvalidPhoneNumber)

		case errors.Is(err, registerUser.ErrPhoneAlreadyRegistered):
			h.logger.Warn("POST /users/register - Phone already registered")
			handlers.RespondError(w, http.StatusConflict, msgPhoneAlreadyRegistered)

		default:
			h.logger.Error("POST /users/register - Failed to register user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/register - User registered successfully: user_id=%d, user_code=%s",
		result.ID, result.UserCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
