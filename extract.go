package main

import (
	"bufio"
	"bytes"
	"errors"
	"html"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const sqliteMagic = "SQLite format 3\x00"

// pagesFromReader reads the urls of a text file, one per line, or the
// anchors of an html file such as a browser bookmarks export.
func pagesFromReader(content io.Reader) ([]*page, error) {
	buf := bufio.NewReader(content)

	line, err := buf.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if bytes.HasPrefix(bytes.TrimSpace(line), []byte("http")) {
		return pagesFromTextFile(buf)
	}
	return pagesFromHTMLFile(buf)
}

// isSQLite reports whether r starts with the sqlite3 file header.
func isSQLite(r *bufio.Reader) bool {
	hdr, err := r.Peek(len(sqliteMagic))
	return err == nil && string(hdr) == sqliteMagic
}

func pagesFromTextFile(content io.Reader) ([]*page, error) {
	pages := make([]*page, 0, 32)

	scanner := bufio.NewScanner(content)
	for scanner.Scan() {
		if u := strings.TrimSpace(scanner.Text()); u != "" {
			pages = append(pages, &page{URL: u})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// pagesFromHTMLFile honours the ADD_DATE and TAGS attributes of the
// Netscape bookmark format.
func pagesFromHTMLFile(content io.Reader) ([]*page, error) {
	pages := make([]*page, 0, 32)

	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return nil, err
	}

	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		u := strings.TrimSpace(href)
		if !strings.HasPrefix(u, "http") {
			return
		}

		pg := &page{
			URL:   u,
			Title: strings.TrimSpace(html.UnescapeString(sel.Text())),
			Tags:  parseTags(sel.AttrOr("tags", "")),
		}
		if secs, err := strconv.ParseInt(sel.AttrOr("add_date", ""), 10, 64); err == nil {
			pg.AddedAt = time.Unix(secs, 0)
		}
		pages = append(pages, pg)
	})

	return pages, nil
}
