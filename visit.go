package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const visitTimeout = 30 * time.Second

// FetchError is returned when add -fetch cannot read a page.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// visit fetches URL and fills the title and the meta descriptions of the
// page.
func visit(ctx context.Context, client *http.Client, URL string) (*page, error) {
	ctx, cancel := context.WithTimeout(ctx, visitTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, &FetchError{URL: URL, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: URL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, &FetchError{URL: URL, Err: err}
	}
	if mimeType := http.DetectContentType(body); !strings.HasPrefix(mimeType, "text/html") {
		return nil, &FetchError{URL: URL, Err: errors.New("not html: " + mimeType)}
	}

	pg := &page{URL: URL}
	if err := readHead(pg, body); err != nil {
		return nil, &FetchError{URL: URL, Err: err}
	}
	return pg, nil
}

// readHead stores the title and every <meta> content of the html head,
// keyed by its name or property attribute. The first occurrence wins.
func readHead(pg *page, body []byte) error {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return err
	}

	head := doc.Find("head")
	pg.Title = strings.TrimSpace(head.Find("title").First().Text())
	head.Find("meta[content]").Each(func(_ int, s *goquery.Selection) {
		key := s.AttrOr("name", s.AttrOr("property", ""))
		if key == "" {
			return
		}
		if pg.Meta == nil {
			pg.Meta = make(map[string]string)
		}
		if _, seen := pg.Meta[key]; !seen {
			pg.Meta[key] = strings.TrimSpace(s.AttrOr("content", ""))
		}
	})
	return nil
}
