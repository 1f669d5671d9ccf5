package core

import (
	"net/url"

	"reseller-portal-go/internal/models"
)

// Portal page paths the guard reasons about.
const (
	PathHome             = "/"
	PathLogin            = "/login"
	PathSignup           = "/signup"
	PathDashboard        = "/dashboard"
	PathPremiumDashboard = "/premium-dashboard"
)

// GuardAction is the outcome class of a guard evaluation.
type GuardAction int

const (
	ActionAllow GuardAction = iota
	ActionRedirect
)

// Decision is the result of evaluating the guard for one path.
type Decision struct {
	Action GuardAction
	Target string // redirect target, set only for ActionRedirect
}

func allow() Decision {
	return Decision{Action: ActionAllow}
}

func redirect(target string) Decision {
	return Decision{Action: ActionRedirect, Target: target}
}

// IsPublicPath reports whether a path requires no authentication.
func IsPublicPath(path string) bool {
	return path == PathHome || path == PathLogin || path == PathSignup
}

// IsDashboardPath reports whether a path is one of the two dashboards.
func IsDashboardPath(path string) bool {
	return path == PathDashboard || path == PathPremiumDashboard
}

// RoleDashboard returns the dashboard a role lands on.
func RoleDashboard(role string) string {
	if role == models.RolePremium {
		return PathPremiumDashboard
	}
	return PathDashboard
}

// LoginRedirect builds the login target preserving the origin path.
func LoginRedirect(fromPath string) string {
	return PathLogin + "?from=" + url.QueryEscape(fromPath)
}

// EvaluateEdge is the pre-render guard. It sees only whether a session
// cookie is present; it knows nothing about roles. Protected paths
// without a cookie bounce to login with the origin path preserved.
func EvaluateEdge(path string, hasCookie bool) Decision {
	if IsPublicPath(path) {
		return allow()
	}
	if !hasCookie {
		return redirect(LoginRedirect(path))
	}
	return allow()
}

// ClientGuard is the post-hydration guard. It evaluates once the session
// store has resolved, and fires at most one redirect per resolved session
// so mid-flight target computation cannot cause redirect loops.
type ClientGuard struct {
	fired bool
}

// NewClientGuard returns a guard that has not yet redirected.
func NewClientGuard() *ClientGuard {
	return &ClientGuard{}
}

// Evaluate applies the redirect state machine to the current session
// state, path and optional "from" query parameter.
//
// An explicit "from" parameter naming a dashboard path wins over the
// role-derived target, uniformly. Honoring it cannot leak privilege: a
// free user sent to the premium dashboard is demoted by the
// re-verification gate on entry.
func (g *ClientGuard) Evaluate(state SessionState, path, from string) Decision {
	if state.Loading || g.fired {
		return allow()
	}

	authenticated := state.Identity != nil

	if !authenticated {
		if IsPublicPath(path) {
			return allow()
		}
		g.fired = true
		return redirect(LoginRedirect(path))
	}

	if IsPublicPath(path) {
		g.fired = true
		if from != "" && IsDashboardPath(from) {
			return redirect(from)
		}
		return redirect(RoleDashboard(state.Role))
	}

	if path == PathDashboard && state.Role == models.RolePremium {
		g.fired = true
		return redirect(PathPremiumDashboard)
	}
	if path == PathPremiumDashboard && state.Role != models.RolePremium {
		g.fired = true
		return redirect(PathDashboard)
	}

	return allow()
}
