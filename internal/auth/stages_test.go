package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type stageFunc func(r *http.Request) Decision

func (f stageFunc) Check(r *http.Request) Decision { return f(r) }

func TestStagesRejectWritesEmptyBody(t *testing.T) {
	gate := NewGate(testSecret)
	handlerCalled := false
	handler := Stages(gate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/ai/verify", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
	if handlerCalled {
		t.Error("handler must not run after a rejection")
	}
}

func TestStagesForbiddenStatus(t *testing.T) {
	gate := NewGate(testSecret)
	token := signToken(t, testSecret, "someone-else", "INTERNAL_SERVICE", time.Now().Add(time.Hour), jwt.SigningMethodHS256)

	handler := Stages(gate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a forbidden caller")
	}))

	req := httptest.NewRequest(http.MethodPost, "/ai/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestStagesPassSetsPrincipal(t *testing.T) {
	gate := NewGate(testSecret)
	token := signToken(t, testSecret, "civicfix-backend", "INTERNAL_SERVICE", time.Now().Add(time.Hour), jwt.SigningMethodHS256)

	var gotPrincipal string
	handler := Stages(gate)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal = Principal(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/ai/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if gotPrincipal != ServicePrincipal {
		t.Errorf("expected principal %q, got %q", ServicePrincipal, gotPrincipal)
	}
}

func TestStagesRunInOrder(t *testing.T) {
	var order []string
	first := stageFunc(func(r *http.Request) Decision {
		order = append(order, "first")
		return Decision{}
	})
	second := stageFunc(func(r *http.Request) Decision {
		order = append(order, "second")
		return Decision{Reject: true, Status: http.StatusTeapot}
	})
	third := stageFunc(func(r *http.Request) Decision {
		order = append(order, "third")
		return Decision{}
	})

	handler := Stages(first, second, third)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run after a rejection")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, w.Code)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected stages [first second], got %v", order)
	}
}

func TestPrincipalWithoutStages(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if p := Principal(req.Context()); p != "" {
		t.Errorf("expected empty principal, got %q", p)
	}
}
