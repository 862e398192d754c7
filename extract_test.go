package main

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

const bookmarksHTML = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3>Dev</H3>
    <DL><p>
        <DT><A HREF="https://go.dev/" ADD_DATE="1700000000" TAGS="go,lang">The Go Programming Language</A>
        <DT><A HREF="https://pkg.go.dev/">Go Packages &amp; Modules</A>
        <DT><A HREF="javascript:void(0)">bookmarklet</A>
    </DL><p>
</DL><p>
`

func TestPagesFromReader_HTML(t *testing.T) {
	pages, err := pagesFromReader(strings.NewReader(bookmarksHTML))
	if err != nil {
		t.Fatalf("pagesFromReader() error = %v", err)
	}

	want := []*page{
		{URL: "https://go.dev/", Title: "The Go Programming Language", Tags: []string{"go", "lang"}, AddedAt: time.Unix(1700000000, 0)},
		{URL: "https://pkg.go.dev/", Title: "Go Packages & Modules"},
	}
	if len(pages) != len(want) {
		t.Fatalf("pagesFromReader() returned %d pages, want %d", len(pages), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(pages[i], want[i]) {
			t.Errorf("page %d = %+v, want %+v", i, pages[i], want[i])
		}
	}
}

func TestPagesFromReader_Text(t *testing.T) {
	content := "http://a.com\n\n  http://b.com  \nhttp://c.com"
	pages, err := pagesFromReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("pagesFromReader() error = %v", err)
	}

	var urls []string
	for _, pg := range pages {
		urls = append(urls, pg.URL)
	}
	want := []string{"http://a.com", "http://b.com", "http://c.com"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestPage_Entry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	added := time.Date(2020, 2, 3, 4, 5, 6, 0, time.Local)

	tests := []struct {
		name string
		pg   page
		want Entry
	}{
		{"title", page{Title: "T", Description: "D", AddedAt: added}, Entry{Date: "2020-02-03T04:05:06.000000", Description: "T"}},
		{"description", page{Description: "D"}, Entry{Date: "2024-01-01T00:00:00.000000", Description: "D"}},
		{"tags", page{Tags: []string{"x"}}, Entry{Date: "2024-01-01T00:00:00.000000", Tags: []string{"x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pg.entry(now); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("entry() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
