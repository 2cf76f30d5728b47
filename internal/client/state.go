package client

// State is the client's authentication state.
type State int

const (
	StateLoggedOut State = iota
	StateLoggedIn
)

func (s State) String() string {
	if s == StateLoggedIn {
		return "logged in"
	}
	return "logged out"
}

// Route names a view.
type Route string

const (
	RouteLogin     Route = "#/login"
	RouteDashboard Route = "#/dashboard"
)

// ParseRoute maps a route string to a known Route. Unknown routes go to login.
func ParseRoute(s string) Route {
	switch Route(s) {
	case RouteDashboard:
		return RouteDashboard
	default:
		return RouteLogin
	}
}

// guard returns the route that is actually shown when state asks for r.
func guard(state State, r Route) Route {
	switch {
	case state == StateLoggedOut && r != RouteLogin:
		return RouteLogin
	case state == StateLoggedIn && r == RouteLogin:
		return RouteDashboard
	}
	return r
}
