package main

import "time"

const maxPageSize = 10 * 1048576

// descriptionMeta lists the <meta> keys holding a page description, best
// first.
var descriptionMeta = []string{"description", "twitter:description", "og:description"}

// page is a bookmark found outside the library: a fetched url, an anchor
// of a bookmarks export or a row of a baks database.
type page struct {
	URL         string
	Title       string
	Description string
	Meta        map[string]string
	Tags        []string
	AddedAt     time.Time
}

// summary is the text used as the entry description: the title, else the
// description, else the best description meta of the page.
func (pg *page) summary() string {
	if pg.Title != "" {
		return pg.Title
	}
	if pg.Description != "" {
		return pg.Description
	}
	for _, key := range descriptionMeta {
		if s := pg.Meta[key]; s != "" {
			return s
		}
	}
	return ""
}

// entry converts pg, falling back to now when the add time is unknown.
func (pg *page) entry(now time.Time) Entry {
	at := pg.AddedAt
	if at.IsZero() {
		at = now
	}
	return Entry{
		Date:        at.Format(dateFmt),
		Description: pg.summary(),
		Tags:        pg.Tags,
	}
}
