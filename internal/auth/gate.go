package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const (
	expectedIssuer = "civicfix-backend"
	expectedRole   = "INTERNAL_SERVICE"

	// ServicePrincipal is the single recognized internal caller identity.
	ServicePrincipal = "CIVICFIX_SERVICE"

	bearerPrefix = "Bearer "
)

// Claims is the service token payload issued by the internal backend.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Status is the outcome of authenticating one request.
type Status int

const (
	// StatusUnauthenticated covers missing, malformed, expired, or
	// badly signed tokens. The reasons are deliberately not distinguished.
	StatusUnauthenticated Status = iota
	// StatusForbidden means the token verified but names the wrong principal.
	StatusForbidden
	// StatusAuthenticated means the caller is the trusted internal service.
	StatusAuthenticated
)

// Result carries the authentication outcome and, on success, the principal.
type Result struct {
	Status    Status
	Principal string
}

// Gate validates signed service tokens from the internal backend.
// The secret is fixed at construction and never mutated afterwards.
type Gate struct {
	secret []byte
}

// NewGate builds a gate verifying HS256 tokens signed with secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Authenticate inspects a raw Authorization header value and decides whether
// the request originates from the trusted internal caller.
func (g *Gate) Authenticate(header string) Result {
	raw, found := strings.CutPrefix(header, bearerPrefix)
	if !found || raw == "" {
		return Result{Status: StatusUnauthenticated}
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (any, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Result{Status: StatusUnauthenticated}
	}

	if claims.Issuer != expectedIssuer || claims.Role != expectedRole {
		return Result{Status: StatusForbidden}
	}

	return Result{Status: StatusAuthenticated, Principal: ServicePrincipal}
}
