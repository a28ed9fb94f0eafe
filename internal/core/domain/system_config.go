package domain

import "time"

// SystemConfig is the process-wide configuration singleton. Only admins may mutate
// it; plan submission reads ApprovalRequired to decide whether submit lands on
// "submitted" or goes straight to "approved".
type SystemConfig struct {
	ApprovalRequired bool      `json:"approvalRequired"`
	UpdatedAt        time.Time `json:"updatedAt"`
	UpdatedBy        string    `json:"updatedBy"`
}

// DefaultSystemConfig is the configuration used before an admin ever touches it.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{ApprovalRequired: true}
}
