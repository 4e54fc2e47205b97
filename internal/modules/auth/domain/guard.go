package domain

// Route is a navigable view and its access requirement.
type Route struct {
	Name      string
	AdminOnly bool
}

type Decision int

const (
	// Render the requested route.
	Render Decision = iota
	// RedirectLogin ends the navigation at the login view.
	RedirectLogin
	// RedirectHome bounces an under-privileged navigation to the default
	// authenticated view.
	RedirectHome
)

const (
	RouteLogin     = "login"
	RouteUserHome  = "dashboard"
	RouteAdminHome = "admin"
)

// Decide gates rendering of a route on the current session state. It is
// consulted once per navigation attempt.
func Decide(authenticated bool, sess Session, route Route) Decision {
	if !authenticated {
		return RedirectLogin
	}
	if route.AdminOnly && !sess.Role.IsAdmin() {
		return RedirectHome
	}
	return Render
}

// DefaultRoute resolves the "/" navigation by role alone.
func DefaultRoute(sess Session) string {
	if sess.Role.IsAdmin() {
		return RouteAdminHome
	}
	return RouteUserHome
}
