package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/identity/internal/pkg/apperr"
	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/services/org/mocks"
)

func setupRoleHandler(t *testing.T) (*RoleHandler, *mocks.MockOrgUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockOrgUC(ctrl)
	return NewRoleHandler(mockUC), mockUC, ctrl
}

func TestCreateRoleHandler_Created(t *testing.T) {
	handler, mockUC, ctrl := setupRoleHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		CreateRole(gomock.Any(), "inst-1", "Principal", gomock.Nil()).
		Return(&models.RoleNode{ID: "role-1", InstituteID: "inst-1", Name: "Principal"}, nil)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/institutes/inst-1/roles",
		strings.NewReader(`{"name":"Principal"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("instituteID")
	c.SetParamValues("inst-1")

	require.NoError(t, handler.CreateRole(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestReparentHandler_CycleRejected(t *testing.T) {
	handler, mockUC, ctrl := setupRoleHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		Reparent(gomock.Any(), "role-1", "role-2").
		Return(apperr.New(apperr.CodeCycleDetected, "re-parent would create a cycle"))

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPut, "/roles/role-1/parent",
		strings.NewReader(`{"new_parent_role_id":"role-2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("role-1")

	require.NoError(t, handler.Reparent(c))
	assert.Equal(t, nethttp.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteRoleHandler_HasChildren(t *testing.T) {
	handler, mockUC, ctrl := setupRoleHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		DeleteRole(gomock.Any(), "role-1", models.DeletePolicy("")).
		Return(apperr.New(apperr.CodeHasChildren, "role has child roles"))

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodDelete, "/roles/role-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("role-1")

	require.NoError(t, handler.DeleteRole(c))
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestDeleteRoleHandler_CascadePolicy(t *testing.T) {
	handler, mockUC, ctrl := setupRoleHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		DeleteRole(gomock.Any(), "role-1", models.DeleteCascade).
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodDelete, "/roles/role-1?policy=cascade", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("role-1")

	require.NoError(t, handler.DeleteRole(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestGrantCapabilityHandler(t *testing.T) {
	handler, mockUC, ctrl := setupRoleHandler(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		GrantCapability(gomock.Any(), "role-1", "leave.approve").
		Return(nil)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/roles/role-1/grants",
		strings.NewReader(`{"capability":"leave.approve"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("role-1")

	require.NoError(t, handler.GrantCapability(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}
