package httpx

import (
	"net/http"
	"strings"
)

// RequireRole admits the request only when the authenticated role matches one
// of the allowed roles. This is the route guard: unauthenticated callers are
// stopped earlier by AuthnMiddleware with a 401; an authenticated caller with
// the wrong role gets a 403 and the client is expected to send them to their
// own home section.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromCtx(r.Context())
			if _, ok := want[role]; ok {
				next.ServeHTTP(w, r)
				return
			}

			writeRoleError(w, allowed...)
		})
	}
}

func writeRoleError(w http.ResponseWriter, allowed ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_role", role="`+strings.Join(allowed, " ")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
