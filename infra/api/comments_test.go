package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"parishterm/domain"
	"parishterm/thread"
)

func TestList_NormalizesNumericIDs(t *testing.T) {
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api2/comments/12" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": 1, "post": 12, "parent": null, "author_id": 7, "author_name": "Ana", "content": "<p>Oi</p>", "likes_count": 2, "created": "2025-03-09T10:00:00"},
			{"id": 2, "post": 12, "parent": 1, "author": 9, "author_name": "Bia", "content": "Resposta", "likes": 1}
		]`))
	}))
	svc := NewCommentService(c)

	comments, err := svc.List(context.Background(), "12")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}

	first := comments[0]
	if first.ID != "1" || first.PostID != "12" || first.ParentID != "" || first.AuthorID != "7" {
		t.Fatalf("ids not normalized: %#v", first)
	}
	if !thread.IsAuthor(first, "7") {
		t.Fatalf("comment by author 7 should read as own for viewer 7")
	}
	if first.Content != "Oi\n" && first.Content != "Oi" {
		t.Fatalf("HTML not stripped: %q", first.Content)
	}
	if first.CreatedAt.IsZero() {
		t.Fatalf("created timestamp should parse")
	}

	second := comments[1]
	if second.ParentID != "1" {
		t.Fatalf("parent id not normalized: %q", second.ParentID)
	}
	if second.AuthorID != "9" || thread.IsAuthor(second, "7") {
		t.Fatalf("fallback author field not honored: %#v", second)
	}
	if second.LikesCount != 1 {
		t.Fatalf("fallback likes field not honored: %d", second.LikesCount)
	}
	if !second.CreatedAt.IsZero() {
		t.Fatalf("absent created must stay zero (renders as just now)")
	}
}

func TestCreate_RejectsEmptyContentWithoutRequest(t *testing.T) {
	requests := 0
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{}`))
	}))
	svc := NewCommentService(c)

	_, err := svc.Create(context.Background(), "12", "", "   \n\t ")
	if !errors.Is(err, domain.ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("empty content must never reach the network, saw %d requests", requests)
	}
}

func TestCreate_SendsContentAndParentOnly(t *testing.T) {
	var body map[string]any
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.Write([]byte(`{"id": 31, "post": 12, "parent": 4, "author_id": 7, "author_name": "Ana", "content": "oi"}`))
	}))
	svc := NewCommentService(c)

	created, err := svc.Create(context.Background(), "12", "4", "  oi  ")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if body["content"] != "oi" || body["parent"] != "4" {
		t.Fatalf("unexpected request body: %#v", body)
	}
	// The author is the session's business, never the client's claim.
	if _, ok := body["author"]; ok {
		t.Fatalf("request must not claim an author id: %#v", body)
	}
	if created.ID != "31" || created.ParentID != "4" || created.AuthorID != "7" {
		t.Fatalf("unexpected created comment: %#v", created)
	}
}

func TestUpdate_ForbiddenMapsToErrUnauthorized(t *testing.T) {
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"not yours"}`))
	}))
	svc := NewCommentService(c)

	_, err := svc.Update(context.Background(), "5", "novo texto")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("403 must map to ErrUnauthorized, got %v", err)
	}
}

func TestDelete_NotFoundMapsToErrNotFound(t *testing.T) {
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	svc := NewCommentService(c)

	if err := svc.Delete(context.Background(), "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("404 must map to ErrNotFound, got %v", err)
	}
}

func TestToggleLike_ReturnsServerState(t *testing.T) {
	var path string
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"like_count": 5, "liked": true}`))
	}))
	svc := NewCommentService(c)

	state, err := svc.ToggleLike(context.Background(), "8")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if path != "/blog/comment/like/8/" {
		t.Fatalf("unexpected like path: %q", path)
	}
	if state.Count != 5 || !state.Liked {
		t.Fatalf("unexpected like state: %#v", state)
	}
}
