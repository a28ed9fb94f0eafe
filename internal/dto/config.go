package dto

import (
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// --- System Config DTOs ---

// UpdateConfigRequest toggles the approval-required flag. Pointer so an explicit
// false is distinguishable from an absent field.
type UpdateConfigRequest struct {
	ApprovalRequired *bool `json:"approvalRequired" binding:"required"`
}

// ConfigResponse defines data returned for the system configuration.
type ConfigResponse struct {
	ApprovalRequired bool       `json:"approvalRequired"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy        string     `json:"updatedBy,omitempty"`
}

// ToConfigResponse converts domain.SystemConfig to DTO.
func ToConfigResponse(c domain.SystemConfig) ConfigResponse {
	resp := ConfigResponse{
		ApprovalRequired: c.ApprovalRequired,
		UpdatedBy:        c.UpdatedBy,
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		resp.UpdatedAt = &t
	}
	return resp
}
