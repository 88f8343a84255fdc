package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffloop/identity/internal/pkg/models"
	"github.com/staffloop/identity/internal/utils"
	"github.com/staffloop/identity/services/org"
)

// RoleHandler handles HTTP requests for role tree management
type RoleHandler struct {
	orgUC org.OrgUC
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(orgUC org.OrgUC) *RoleHandler {
	return &RoleHandler{orgUC: orgUC}
}

// CreateRole creates a role in an institute's tree
func (h *RoleHandler) CreateRole(c echo.Context) error {
	instituteID := c.Param("instituteID")
	if instituteID == "" {
		return utils.BadRequestResponse(c, "institute id is required")
	}

	var request models.CreateRoleRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.Name == "" {
		return utils.BadRequestResponse(c, "name is required")
	}

	role, err := h.orgUC.CreateRole(c.Request().Context(), instituteID, request.Name, request.ParentRoleID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Role created", role)
}

// GetTree returns an institute's role forest
func (h *RoleHandler) GetTree(c echo.Context) error {
	instituteID := c.Param("instituteID")
	if instituteID == "" {
		return utils.BadRequestResponse(c, "institute id is required")
	}

	tree, err := h.orgUC.GetTree(c.Request().Context(), instituteID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Role tree retrieved", tree)
}

// Reparent moves a role under a new parent
func (h *RoleHandler) Reparent(c echo.Context) error {
	roleID := c.Param("id")

	var request models.ReparentRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.NewParentRoleID == "" {
		return utils.BadRequestResponse(c, "new_parent_role_id is required")
	}

	if err := h.orgUC.Reparent(c.Request().Context(), roleID, request.NewParentRoleID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Role reparented", nil)
}

// Ancestors returns a role's ancestor chain up to its root
func (h *RoleHandler) Ancestors(c echo.Context) error {
	roleID := c.Param("id")

	ancestors, err := h.orgUC.Ancestors(c.Request().Context(), roleID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Ancestors retrieved", ancestors)
}

// DeleteRole removes a role according to the requested policy
func (h *RoleHandler) DeleteRole(c echo.Context) error {
	roleID := c.Param("id")
	policy := models.DeletePolicy(c.QueryParam("policy"))

	if err := h.orgUC.DeleteRole(c.Request().Context(), roleID, policy); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Role deleted", nil)
}

// GrantCapability grants a capability at a role
func (h *RoleHandler) GrantCapability(c echo.Context) error {
	roleID := c.Param("id")

	var request models.GrantRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if request.Capability == "" {
		return utils.BadRequestResponse(c, "capability is required")
	}

	if err := h.orgUC.GrantCapability(c.Request().Context(), roleID, request.Capability); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Capability granted", nil)
}

// RevokeCapability removes a direct capability grant from a role
func (h *RoleHandler) RevokeCapability(c echo.Context) error {
	roleID := c.Param("id")
	capability := c.Param("capability")

	if err := h.orgUC.RevokeCapability(c.Request().Context(), roleID, capability); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Capability revoked", nil)
}
