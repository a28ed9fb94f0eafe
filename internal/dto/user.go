package dto

import (
	"time"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// --- Persona / User DTOs ---

// SelectPersonaRequest defines data for login-time persona selection. Passing an
// existing userID reuses that user; otherwise a new one is created.
type SelectPersonaRequest struct {
	UserID       string          `json:"userId"`
	Name         string          `json:"name" binding:"required_without=UserID"`
	Role         domain.UserRole `json:"role" binding:"required_without=UserID,omitempty,oneof=sales_engineer team_leader admin"`
	TeamLeaderID string          `json:"teamLeaderId"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID       string          `json:"id"`
	Name         string          `json:"name"`
	Role         domain.UserRole `json:"role"`
	TeamLeaderID string          `json:"teamLeaderId,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Role:         u.Role,
		TeamLeaderID: u.TeamLeaderID,
		CreatedAt:    u.CreatedAt,
	}
}
