package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testPage = `<html><head>
<title> Example Domain </title>
<meta name="description" content="An example page">
<meta property="og:description" content="og text">
</head><body><p>hello</p></body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPage)
	})
	mux.HandleFunc("/og", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><meta property="og:description" content="og only"></head><body></body></html>`)
	})
	mux.HandleFunc("/text", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "plain text")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestVisit(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path    string
		title   string
		summary string
	}{
		{"/page", "Example Domain", "Example Domain"},
		{"/og", "", "og only"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			pg, err := visit(context.Background(), srv.Client(), srv.URL+tt.path)
			if err != nil {
				t.Fatalf("visit() error = %v", err)
			}
			if pg.Title != tt.title {
				t.Errorf("Title = %q, want %q", pg.Title, tt.title)
			}
			if got := pg.summary(); got != tt.summary {
				t.Errorf("summary() = %q, want %q", got, tt.summary)
			}
		})
	}
}

func TestPage_SummaryPrefersMetaDescription(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]string
		want string
	}{
		{"all", map[string]string{"description": "meta", "twitter:description": "twitter", "og:description": "og"}, "meta"},
		{"twitter over og", map[string]string{"twitter:description": "twitter", "og:description": "og"}, "twitter"},
		{"blank meta skipped", map[string]string{"description": "", "og:description": "og"}, "og"},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := &page{Meta: tt.meta}
			if got := pg.summary(); got != tt.want {
				t.Errorf("summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisit_ReadsMeta(t *testing.T) {
	srv := newTestServer(t)

	pg, err := visit(context.Background(), srv.Client(), srv.URL+"/page")
	if err != nil {
		t.Fatalf("visit() error = %v", err)
	}
	if got := pg.Meta["description"]; got != "An example page" {
		t.Errorf("Meta[description] = %q, want %q", got, "An example page")
	}
	if got := pg.Meta["og:description"]; got != "og text" {
		t.Errorf("Meta[og:description] = %q, want %q", got, "og text")
	}
}

func TestVisit_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/missing", http.StatusNotFound},
		{"/text", 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := visit(context.Background(), srv.Client(), srv.URL+tt.path)
			var ferr *FetchError
			if !errors.As(err, &ferr) {
				t.Fatalf("visit() error = %v, want a FetchError", err)
			}
			if ferr.URL != srv.URL+tt.path {
				t.Errorf("FetchError.URL = %q, want %q", ferr.URL, srv.URL+tt.path)
			}
			if ferr.Status != tt.status {
				t.Errorf("FetchError.Status = %d, want %d", ferr.Status, tt.status)
			}
		})
	}
}
