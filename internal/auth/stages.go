package auth

import (
	"context"
	"net/http"
)

// Stage inspects a request before it reaches a handler and either lets it
// pass or rejects it with an HTTP status. Stages run in the order given to
// Stages; the first rejection wins and later stages never run.
type Stage interface {
	Check(r *http.Request) Decision
}

// Decision is one stage's verdict on a request.
type Decision struct {
	Reject    bool
	Status    int
	Principal string
}

type principalKey struct{}

// Stages composes an ordered list of request stages into middleware.
// Rejections are written with an empty body; the status alone is the answer.
func Stages(stages ...Stage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, s := range stages {
				d := s.Check(r)
				if d.Reject {
					w.WriteHeader(d.Status)
					return
				}
				if d.Principal != "" {
					r = r.WithContext(context.WithValue(r.Context(), principalKey{}, d.Principal))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Check lets a Gate act as a request stage.
func (g *Gate) Check(r *http.Request) Decision {
	res := g.Authenticate(r.Header.Get("Authorization"))
	switch res.Status {
	case StatusAuthenticated:
		return Decision{Principal: res.Principal}
	case StatusForbidden:
		return Decision{Reject: true, Status: http.StatusForbidden}
	default:
		return Decision{Reject: true, Status: http.StatusUnauthorized}
	}
}

// Principal returns the authenticated caller identity set by Stages,
// or an empty string when the request never passed an identity stage.
func Principal(ctx context.Context) string {
	p, _ := ctx.Value(principalKey{}).(string)
	return p
}
