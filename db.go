package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// baks stores added_at with the default go-sqlite3 time layout.
const baksTimeFmt = "2006-01-02 15:04:05.999999999Z07:00"

const selectPagesSQL = `SELECT url, title, description, added_at FROM pages WHERE url <> '' ORDER BY added_at`

// pagesFromDatabase reads the pages table of a baks database, opened
// read-only.
func pagesFromDatabase(fname string) ([]*page, error) {
	db, err := sql.Open("sqlite3", "file:"+fname+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open baks database %s: %w", fname, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("close baks database", "path", fname, "err", err)
		}
	}()

	rows, err := db.Query(selectPagesSQL)
	if err != nil {
		return nil, fmt.Errorf("query baks database %s: %w", fname, err)
	}
	defer rows.Close()

	var pages []*page
	for rows.Next() {
		var url string
		var title, description, addedAt sql.NullString
		if err := rows.Scan(&url, &title, &description, &addedAt); err != nil {
			return nil, err
		}

		pg := &page{URL: url, Title: title.String, Description: description.String}
		if addedAt.Valid {
			if pg.AddedAt, err = time.Parse(baksTimeFmt, addedAt.String); err != nil {
				return nil, fmt.Errorf("page %s: added_at: %w", url, err)
			}
		}
		pages = append(pages, pg)
	}
	return pages, rows.Err()
}
