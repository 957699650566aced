// Package guard decides whether the current session may reach a requested
// view. The policy is stateless: it is evaluated fresh on every navigation
// and never caches a prior decision.
package guard

import "github.com/mighty-stack/swiftship/internal/models"

// Decision is the outcome of a navigation check.
type Decision int

const (
	// Allow renders the requested view.
	Allow Decision = iota
	// RedirectLogin sends the visitor to the login view: no principal.
	RedirectLogin
	// RedirectHome sends the visitor home: signed in, wrong role.
	RedirectHome
)

// Evaluate checks the principal against a view's required roles. An empty
// required set means the view is public.
func Evaluate(principal *models.User, required []string) Decision {
	if len(required) == 0 {
		return Allow
	}
	if principal == nil {
		return RedirectLogin
	}
	for _, role := range required {
		if principal.Role == role {
			return Allow
		}
	}
	return RedirectHome
}

// RoleHome resolves the dashboard a signed-in principal lands on. Only the
// explicit /redirect interstitial consults it; the guard itself never does.
// Admins are not auto-routed to their dashboard and land on the customer one
// like everybody else.
func RoleHome(principal *models.User) string {
	if principal == nil {
		return "/login"
	}
	if principal.Role == models.RoleDriver {
		return "/driver/dashboard"
	}
	return "/customer/dashboard"
}
