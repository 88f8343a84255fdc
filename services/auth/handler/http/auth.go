package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/internal/utils"
	"github.com/staffloop/identity/services/auth"
)

// AuthHandler handles HTTP requests for the OTP session machine
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// StartRegister opens a REGISTER OTP session
func (h *AuthHandler) StartRegister(c echo.Context) error {
	var request models.RegisterRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.FirstName == "" || request.Email == "" || request.Mobile == "" || request.Password == "" {
		return utils.BadRequestResponse(c, "first_name, email, mobile and password are required")
	}

	resp, err := h.authUC.StartRegister(c.Request().Context(), &request)
	if err != nil {
		if apperr.CodeOf(err) != "" {
			return utils.AppErrorResponse(c, err)
		}
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	return utils.SuccessResponse(c, nethttp.StatusAccepted, "Verification codes sent", resp)
}

// StartLogin opens a LOGIN (step-up) OTP session
func (h *AuthHandler) StartLogin(c echo.Context) error {
	var request models.LoginRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.UserID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	resp, err := h.authUC.StartLogin(c.Request().Context(), request.UserID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusAccepted, "Verification codes sent", resp)
}

// SubmitCode verifies a single channel code for a session
func (h *AuthHandler) SubmitCode(c echo.Context) error {
	var request models.SubmitCodeRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.SessionID == "" || request.Channel == "" || request.Code == "" {
		return utils.BadRequestResponse(c, "session_id, channel and code are required")
	}

	status, err := h.authUC.SubmitCode(c.Request().Context(), request.SessionID, request.Channel, request.Code)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Code accepted", models.SubmitCodeResponse{
		SessionID: request.SessionID,
		Status:    status,
	})
}

// Consume resolves a fully verified session
func (h *AuthHandler) Consume(c echo.Context) error {
	var request models.ConsumeRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if request.SessionID == "" {
		return utils.BadRequestResponse(c, "session_id is required")
	}

	outcome, err := h.authUC.Consume(c.Request().Context(), request.SessionID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if outcome.Flow == models.FlowRegister {
		return utils.SuccessResponse(c, nethttp.StatusCreated, "Account created", outcome)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Authenticated", outcome)
}

// GetUser returns a durable user record
func (h *AuthHandler) GetUser(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "user id is required")
	}

	user, err := h.authUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "User retrieved", user)
}
