package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/fieldtrax/sales_visit_app/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct {
	Users portsrepo.UserReader
}

// GetLogger gets the logger from context or returns a default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireRole resolves the acting user and checks their role against the allowed
// set. Unknown actors are treated as forbidden, not as missing resources.
func (s *BaseService) RequireRole(ctx context.Context, userID string, roles ...domain.UserRole) (*domain.User, error) {
	user, err := s.Users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Acting user not found", slog.String("user_id", userID))
			return nil, apperrors.ErrForbidden
		}
		return nil, err
	}
	for _, role := range roles {
		if user.Role == role {
			return user, nil
		}
	}
	s.LogDebug(ctx, "Acting user lacks required role",
		slog.String("user_id", userID),
		slog.String("user_role", string(user.Role)))
	return nil, apperrors.ErrForbidden
}
