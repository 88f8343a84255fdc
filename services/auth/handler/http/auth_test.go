package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/services/auth/mocks"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC, ctrl
}

func doJSON(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStartRegisterHandler_Accepted(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		StartRegister(gomock.Any(), gomock.Any()).
		Return(&models.StartResponse{SessionID: "sess-1", ExpiresAt: time.Now().Add(10 * time.Minute)}, nil)

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/register",
		`{"first_name":"Asha","email":"a@x.com","mobile":"9990001111","password":"s3cret"}`)

	require.NoError(t, handler.StartRegister(c))
	assert.Equal(t, nethttp.StatusAccepted, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestStartRegisterHandler_MissingFields(t *testing.T) {
	handler, _, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/register", `{"email":"a@x.com"}`)

	require.NoError(t, handler.StartRegister(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestStartRegisterHandler_Conflict(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		StartRegister(gomock.Any(), gomock.Any()).
		Return(nil, apperr.New(apperr.CodeConflict, "email or mobile already registered"))

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/register",
		`{"first_name":"Asha","email":"a@x.com","mobile":"9990001111","password":"s3cret"}`)

	require.NoError(t, handler.StartRegister(c))
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestSubmitCodeHandler_InvalidCode(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SubmitCode(gomock.Any(), "sess-1", models.ChannelEmail, "000000").
		Return(models.SessionStatus(""), apperr.New(apperr.CodeInvalidCode, "invalid code"))

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/otp/submit",
		`{"session_id":"sess-1","channel":"email","code":"000000"}`)

	require.NoError(t, handler.SubmitCode(c))
	assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
}

func TestSubmitCodeHandler_Accepted(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SubmitCode(gomock.Any(), "sess-1", models.ChannelMobile, "333444").
		Return(models.StatusVerified, nil)

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/otp/submit",
		`{"session_id":"sess-1","channel":"mobile","code":"333444"}`)

	require.NoError(t, handler.SubmitCode(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"verified"`)
}

func TestConsumeHandler_RegisterCreated(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Consume(gomock.Any(), "sess-1").
		Return(&models.ConsumeOutcome{
			Flow: models.FlowRegister,
			User: &models.User{ID: "user-1", Email: "a@x.com"},
		}, nil)

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/otp/consume", `{"session_id":"sess-1"}`)

	require.NoError(t, handler.Consume(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestConsumeHandler_NotReady(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Consume(gomock.Any(), "sess-1").
		Return(nil, apperr.New(apperr.CodeNotReady, "session not fully verified"))

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/otp/consume", `{"session_id":"sess-1"}`)

	require.NoError(t, handler.Consume(c))
	assert.Equal(t, nethttp.StatusPreconditionFailed, rec.Code)
}

func TestConsumeHandler_AlreadyConsumed(t *testing.T) {
	handler, mockUC, ctrl := setupAuthHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Consume(gomock.Any(), "sess-1").
		Return(nil, apperr.New(apperr.CodeNotFound, "session not found or expired"))

	e := echo.New()
	c, rec := doJSON(e, nethttp.MethodPost, "/auth/otp/consume", `{"session_id":"sess-1"}`)

	require.NoError(t, handler.Consume(c))
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}
