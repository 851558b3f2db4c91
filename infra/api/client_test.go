package api

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

type staticCookies struct {
	header string
	csrf   string
}

func (s staticCookies) CookieHeader() (string, error) { return s.header, nil }
func (s staticCookies) CSRFToken() (string, error)    { return s.csrf, nil }

type handlerRoundTripper struct {
	h http.Handler
}

func (rt handlerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := newResponseRecorder()
	rt.h.ServeHTTP(rec, req)
	return rec.response(req), nil
}

type responseRecorder struct {
	header http.Header
	body   strings.Builder
	code   int
}

func newResponseRecorder() *responseRecorder {
	return &responseRecorder{header: make(http.Header), code: http.StatusOK}
}

func (r *responseRecorder) Header() http.Header         { return r.header }
func (r *responseRecorder) Write(p []byte) (int, error) { return r.body.Write(p) }
func (r *responseRecorder) WriteHeader(statusCode int)  { r.code = statusCode }

func (r *responseRecorder) response(req *http.Request) *http.Response {
	return &http.Response{
		StatusCode: r.code,
		Header:     r.header.Clone(),
		Body:       io.NopCloser(strings.NewReader(r.body.String())),
		Request:    req,
	}
}

func newTestClient(h http.Handler) *Client {
	c := NewClient("https://paroquia.test", staticCookies{header: "sessionid=sid; csrftoken=tok", csrf: "tok"}, nil)
	c.http.Transport = handlerRoundTripper{h: h}
	return c
}

func TestClient_MutatingRequestsCarryCSRF(t *testing.T) {
	var gotCSRF, gotCookie, gotRequestedWith string
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCSRF = r.Header.Get("X-CSRFToken")
		gotCookie = r.Header.Get("Cookie")
		gotRequestedWith = r.Header.Get("X-Requested-With")
		w.Write([]byte(`{}`))
	}))

	if _, err := c.Post("/api2/comments/add/1", strings.NewReader(`{"content":"hi"}`)); err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if gotCSRF != "tok" {
		t.Fatalf("mutating request must carry X-CSRFToken, got %q", gotCSRF)
	}
	if gotCookie != "sessionid=sid; csrftoken=tok" {
		t.Fatalf("request must carry session cookies, got %q", gotCookie)
	}
	if gotRequestedWith != "XMLHttpRequest" {
		t.Fatalf("unexpected X-Requested-With: %q", gotRequestedWith)
	}
}

func TestClient_GetOmitsCSRF(t *testing.T) {
	var gotCSRF string
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCSRF = r.Header.Get("X-CSRFToken")
		w.Write([]byte(`[]`))
	}))

	if _, err := c.Get("/api2/comments/1"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotCSRF != "" {
		t.Fatalf("GET must not carry a CSRF token, got %q", gotCSRF)
	}
}

func TestClient_NonSuccessIsStatusError(t *testing.T) {
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"no"}`))
	}))

	_, err := c.Delete("/api2/comments/delete/9")
	if err == nil {
		t.Fatalf("expected error for 403 response")
	}
	if !IsStatus(err, http.StatusForbidden) {
		t.Fatalf("expected StatusError with 403, got %v", err)
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Fatalf("IsStatus must match the exact code")
	}
}
