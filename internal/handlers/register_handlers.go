package handlers

import (
	"github.com/gin-gonic/gin"

	portsrepo "github.com/fieldtrax/sales_visit_app/internal/core/ports/repositories"
	portssvc "github.com/fieldtrax/sales_visit_app/internal/core/ports/services"
	"github.com/fieldtrax/sales_visit_app/internal/middleware"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	users portsrepo.UserReader,
) {
	registerHomeRoutes(r)

	// The actor middleware resolves the acting user once for the whole API group.
	v1 := r.Group("/api/v1", middleware.ActorMiddleware(users))

	registerSessionRoutes(v1, services.User)
	registerPlanRoutes(v1, services.Plan)
	registerPlanEntryRoutes(v1, services.PlanEntry)
	registerVisitRoutes(v1, services.Visit)
	registerConfigRoutes(v1, services.Config)
}
