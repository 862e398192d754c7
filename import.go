package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
)

// pagesFromFile reads the bookmarks of fname, which may be a text file of
// urls, an html bookmarks export or a baks database.
func pagesFromFile(fname string) ([]*page, error) {
	r, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	buf := bufio.NewReader(r)
	if isSQLite(buf) {
		return pagesFromDatabase(fname)
	}
	return pagesFromReader(buf)
}

// importFiles adds the bookmarks of every file to the library. Existing
// urls are kept unless force is set. extraTags are added to every entry.
func (a *app) importFiles(fnames []string, extraTags string, force bool) error {
	lib, err := loadLibrary(a.store)
	if err != nil {
		return err
	}

	tags := parseTags(extraTags)
	imported, skipped := 0, 0
	for _, fname := range fnames {
		pages, err := pagesFromFile(fname)
		if err != nil {
			return fmt.Errorf("import %q: %w", fname, err)
		}
		slog.Debug("read bookmarks", "file", fname, "count", len(pages))

		for _, pg := range pages {
			e := pg.entry(a.now())
			e.Tags = mergeTags(e.Tags, tags)
			if err := lib.Add(pg.URL, e, force); err != nil {
				slog.Debug("skip", "url", pg.URL, "err", err)
				skipped++
				continue
			}
			imported++
		}
	}

	if imported > 0 {
		if err := saveLibrary(a.store, lib); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(a.stdout, "Imported %d, skipped %d.\n", imported, skipped)
	return err
}
