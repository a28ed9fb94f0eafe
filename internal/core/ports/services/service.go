package services

// ServiceContainer groups the service facades handed to the HTTP layer.
type ServiceContainer struct {
	User      UserSvcFacade
	Plan      PlanSvcFacade
	PlanEntry PlanEntrySvcFacade
	Visit     VisitSvcFacade
	Config    ConfigSvcFacade
}
