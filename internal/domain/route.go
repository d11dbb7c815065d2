package domain

// Route is an opaque destination tag handed to the presentation layer.
type Route string

const (
	RouteLoginEntry   Route = "LoginEntry"
	RouteRegistration Route = "Registration"
	RouteAdminReview  Route = "AdminReview"
	RouteDashboard    Route = "Dashboard"
)
