package middleware

import (
	"errors"
	"log/slog"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// ActorHeader overrides the persisted persona for a single request, mainly so tests
// and multi-persona tooling can act as different users without re-selecting.
const ActorHeader = "X-Actor-ID"

// ActorMiddleware resolves the acting user for the request: the X-Actor-ID header if
// present, otherwise the persisted current-user persona. Requests without a
// resolvable actor still pass through; handlers that need one reject them.
func ActorMiddleware(users portsrepo.UserReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(ActorHeader)
		if actorID == "" {
			current, err := users.FindCurrentUser(c.Request.Context())
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					logger := GetLoggerFromCtx(c.Request.Context())
					if logger != nil {
						logger.Error("Failed to resolve current user", slog.String("error", err.Error()))
					}
				}
			} else {
				actorID = current.UserID
			}
		}
		if actorID != "" {
			c.Request = c.Request.WithContext(WithActorID(c.Request.Context(), actorID))
		}
		c.Next()
	}
}

// GetActorID retrieves the acting user's ID for a gin request.
func GetActorID(c *gin.Context) (string, bool) {
	return GetActorIDFromCtx(c.Request.Context())
}
