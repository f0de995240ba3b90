package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/server/models"
)

func TestListBooks(t *testing.T) {
	b := &fakeBooks{listOut: []*models.Book{
		{ID: 1, Title: "The Dispossessed", Year: 1974},
	}}
	s := newTestServer(nil, nil, b)

	w := doRequest(t, s, http.MethodGet, "/books", "", bearer(t, 7))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []bookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(res) != 1 || res[0].Title != "The Dispossessed" {
		t.Errorf("unexpected response: %+v", res)
	}
}

func TestCreateBook(t *testing.T) {
	s := newTestServer(nil, nil, &fakeBooks{})

	w := doRequest(t, s, http.MethodPost, "/books",
		`{"author_id":2,"title":"Solaris","year":1961,"cover":"http://img/solaris.jpg"}`, bearer(t, 7))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var res bookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if res.UserID != 7 || res.AuthorID != 2 {
		t.Errorf("unexpected response: %+v", res)
	}
}

func TestCreateBook_UnknownAuthor(t *testing.T) {
	s := newTestServer(nil, nil, &fakeBooks{createErr: common.ErrorNotFound})

	w := doRequest(t, s, http.MethodPost, "/books",
		`{"author_id":404,"title":"Solaris","year":1961}`, bearer(t, 7))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	want := `{"message":"Not Found"}`
	if got := strings.TrimSpace(w.Body.String()); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestCreateBook_MissingTitle(t *testing.T) {
	s := newTestServer(nil, nil, &fakeBooks{})

	w := doRequest(t, s, http.MethodPost, "/books",
		`{"author_id":2,"year":1961}`, bearer(t, 7))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetBook(t *testing.T) {
	b := &fakeBooks{getOut: &models.Book{ID: 5, Title: "Solaris"}}
	s := newTestServer(nil, nil, b)

	w := doRequest(t, s, http.MethodGet, "/books/5", "", bearer(t, 7))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res bookResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if res.ID != 5 {
		t.Errorf("id = %d, want 5", res.ID)
	}
}

func TestUpdateBook_NotFound(t *testing.T) {
	s := newTestServer(nil, nil, &fakeBooks{updateErr: common.ErrorNotFound})

	w := doRequest(t, s, http.MethodPut, "/books/404",
		`{"author_id":2,"title":"Solaris","year":1961}`, bearer(t, 7))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteBook_NotFound(t *testing.T) {
	s := newTestServer(nil, nil, &fakeBooks{deleteErr: common.ErrorNotFound})

	w := doRequest(t, s, http.MethodDelete, "/books/404", "", bearer(t, 7))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
