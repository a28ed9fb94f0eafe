package services

import (
	"context"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	"github.com/fieldtrax/sales_visit_app/internal/dto"
)

// UserSvcFacade defines persona and user lookup operations.
type UserSvcFacade interface {
	// SelectPersona creates or reuses a user and persists it as the current persona.
	SelectPersona(ctx context.Context, req dto.SelectPersonaRequest) (*domain.User, error)

	// GetCurrentUser returns the persisted persona.
	GetCurrentUser(ctx context.Context) (*domain.User, error)

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
