package interfaces

import (
	"context"
	"net/http"
)

// AuthProvider exposes the identity facts admin services need. Session
// issuance and credential handling live entirely in the host application.
type AuthProvider interface {
	CurrentUserID(ctx context.Context) (string, error)
	HasPermission(ctx context.Context, permission string) (bool, error)
}

// AdminGuard wraps admin HTTP handlers with whatever authentication the host
// application uses. The CMS never inspects credentials itself.
type AdminGuard interface {
	Protect(next http.Handler) http.Handler
}

// AdminGuardFunc adapts a middleware function to the AdminGuard interface.
type AdminGuardFunc func(next http.Handler) http.Handler

// Protect implements AdminGuard.
func (f AdminGuardFunc) Protect(next http.Handler) http.Handler {
	if f == nil {
		return next
	}
	return f(next)
}
