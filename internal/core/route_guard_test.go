package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reseller-portal-go/internal/models"
)

func authedState(role string) SessionState {
	return SessionState{Identity: &Identity{UID: "uid-1"}, Role: role}
}

func TestEvaluateEdge(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		hasCookie bool
		want      Decision
	}{
		{"public path without cookie", "/", false, Decision{Action: ActionAllow}},
		{"login without cookie", "/login", false, Decision{Action: ActionAllow}},
		{"signup with cookie", "/signup", true, Decision{Action: ActionAllow}},
		{"protected without cookie", "/dashboard", false, Decision{Action: ActionRedirect, Target: "/login?from=%2Fdashboard"}},
		{"premium area without cookie", "/premium-dashboard", false, Decision{Action: ActionRedirect, Target: "/login?from=%2Fpremium-dashboard"}},
		{"protected with cookie", "/dashboard", true, Decision{Action: ActionAllow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateEdge(tt.path, tt.hasCookie))
		})
	}
}

func TestClientGuard_AnonymousOnProtectedPath(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(SessionState{}, "/dashboard", "")

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/login?from=%2Fdashboard", decision.Target)
}

func TestClientGuard_AnonymousOnPublicPath(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(SessionState{}, "/login", "")

	assert.Equal(t, ActionAllow, decision.Action)
}

func TestClientGuard_PremiumOnFreeDashboard(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(authedState(models.RolePremium), "/dashboard", "")

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/premium-dashboard", decision.Target)
}

func TestClientGuard_FreeOnPremiumDashboard(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(authedState(models.RoleFree), "/premium-dashboard", "")

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/dashboard", decision.Target)
}

func TestClientGuard_AuthenticatedOnPublicPathUsesRole(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(authedState(models.RolePremium), "/", "")

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/premium-dashboard", decision.Target)
}

// An explicit from parameter naming a dashboard wins over the
// role-derived target, even when the role does not match: the
// re-verification gate on the premium area makes this safe.
func TestClientGuard_FromParamBeatsRoleTarget(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(authedState(models.RoleFree), "/login", "/premium-dashboard")

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/premium-dashboard", decision.Target)
}

func TestClientGuard_FromParamIgnoredWhenNotDashboard(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(authedState(models.RoleFree), "/login", "/somewhere-else")

	assert.Equal(t, ActionRedirect, decision.Action)
	assert.Equal(t, "/dashboard", decision.Target)
}

func TestClientGuard_NoDecisionWhileLoading(t *testing.T) {
	guard := NewClientGuard()
	decision := guard.Evaluate(SessionState{Loading: true}, "/dashboard", "")

	assert.Equal(t, ActionAllow, decision.Action)
}

func TestClientGuard_FiresAtMostOnce(t *testing.T) {
	guard := NewClientGuard()

	first := guard.Evaluate(SessionState{}, "/dashboard", "")
	assert.Equal(t, ActionRedirect, first.Action)

	second := guard.Evaluate(SessionState{}, "/dashboard", "")
	assert.Equal(t, ActionAllow, second.Action)
}

func TestClientGuard_MatchingDashboardAllowed(t *testing.T) {
	guard := NewClientGuard()

	assert.Equal(t, ActionAllow, guard.Evaluate(authedState(models.RolePremium), "/premium-dashboard", "").Action)
	assert.Equal(t, ActionAllow, NewClientGuard().Evaluate(authedState(models.RoleFree), "/dashboard", "").Action)
}
