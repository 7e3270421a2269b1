// Package permission implements the permission service contract with a static role table.
package permission

import (
	"context"
	"log/slog"

	"catalog-service/internal/domain/aggregate"
	dompermission "catalog-service/internal/domain/permission"
)

var roleHierarchy = map[dompermission.Role]int{
	dompermission.RoleViewer:   1,
	dompermission.RoleOperator: 2,
	dompermission.RoleAdmin:    3,
}

// Actions absent from the table are reserved to the system agent.
var minimumRole = map[dompermission.Action]dompermission.Role{
	dompermission.ActionCreate:           dompermission.RoleOperator,
	dompermission.ActionPublish:          dompermission.RoleOperator,
	dompermission.ActionUnpublish:        dompermission.RoleOperator,
	dompermission.ActionReserve:          dompermission.RoleOperator,
	dompermission.ActionUnreserve:        dompermission.RoleOperator,
	dompermission.ActionArchive:          dompermission.RoleOperator,
	dompermission.ActionUpdateTitle:      dompermission.RoleOperator,
	dompermission.ActionUpdateSize:       dompermission.RoleOperator,
	dompermission.ActionUpdateCategories: dompermission.RoleOperator,
	dompermission.ActionUpdateImages:     dompermission.RoleOperator,
	dompermission.ActionUpdateNotes:      dompermission.RoleOperator,
	dompermission.ActionUpdatePrice:      dompermission.RoleOperator,
	dompermission.ActionAddDiscount:      dompermission.RoleOperator,
	dompermission.ActionRemoveDiscount:   dompermission.RoleOperator,
	dompermission.ActionDelete:           dompermission.RoleAdmin,
	dompermission.ActionRead:             dompermission.RoleViewer,
}

type RoleChecker struct {
	logger *slog.Logger
}

func NewRoleChecker(logger *slog.Logger) *RoleChecker {
	return &RoleChecker{logger: logger}
}

func (c *RoleChecker) Check(_ context.Context, holder aggregate.Agent, action dompermission.Action, res dompermission.Resource) error {
	if holder.IsSystem() {
		return nil
	}
	if action == dompermission.ActionRead {
		return nil
	}

	minRole, ok := minimumRole[action]
	if ok && !holder.IsAnonymous() && hasMinimumRole(dompermission.Role(holder.Role()), minRole) {
		return nil
	}

	c.logger.Debug("permission denied",
		"agent", holder.String(),
		"action", string(action),
		"resource", res.String())
	return dompermission.NewMissingPermission(holder, action, res)
}

func hasMinimumRole(userRole, minRole dompermission.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	if !userExists || !minExists {
		return false
	}
	return userLevel >= minLevel
}
