package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/matchday/internal/platform/id"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type fixedIDGenerator struct {
	id  string
	err error
}

func (g fixedIDGenerator) NewID() (string, error) {
	return g.id, g.err
}

func TestRequestID_KeepsValidInboundID(t *testing.T) {
	const inbound = "6f1c2a8e-3b8f-4c55-9a5e-0d6c3f5a9b21"

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	})
	handler := RequestID(fixedIDGenerator{id: "unused"}, next)

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	req.Header.Set("X-Request-ID", inbound)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen != inbound {
		t.Fatalf("expected request id %q in context, got %q", inbound, seen)
	}
	if got := rec.Header().Get("X-Request-ID"); got != inbound {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}

func TestRequestID_ReplacesGarbage(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	})
	handler := RequestID(id.NewUUIDGenerator(), next)

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	req.Header.Set("X-Request-ID", "<script>")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !id.Valid(seen) {
		t.Fatalf("expected generated uuid, got %q", seen)
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Fatalf("response header and context disagree")
	}
}

func TestRequestID_GeneratorFailure(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	handler := RequestID(fixedIDGenerator{err: errors.New("entropy")}, next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players", nil))

	if !called {
		t.Fatalf("expected request to pass through")
	}
	if got := rec.Header().Get("X-Request-ID"); got != "" {
		t.Fatalf("expected no request id header, got %q", got)
	}
}
