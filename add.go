package main

import (
	"context"
	"errors"
	"log/slog"
)

const (
	msgExists  = "Url already exists in the library. Please, use -force to update it with the new values."
	msgMissing = "Url not in the library."
)

// addURL stores url in the library. A duplicate url without force is a
// soft refusal: it is reported and the library is not written.
func (a *app) addURL(ctx context.Context, url, description, tags string, force, fetch bool) error {
	if url == "" {
		return errEmptyURL
	}

	lib, err := loadLibrary(a.store)
	if err != nil {
		return err
	}

	if lib.Has(url) && !force {
		a.refuse(msgExists)
		return nil
	}

	if fetch && description == "" {
		if pg, err := visit(ctx, a.client, url); err == nil {
			description = pg.summary()
		} else {
			slog.Warn("can't fetch page", "url", url, "err", err)
		}
	}

	if err := lib.Add(url, newEntry(a.now(), description, tags), force); err != nil {
		return err
	}
	return saveLibrary(a.store, lib)
}

// removeURL deletes url from the library. A missing url is a soft refusal.
func (a *app) removeURL(url string) error {
	lib, err := loadLibrary(a.store)
	if err != nil {
		return err
	}

	if err := lib.Remove(url); err != nil {
		if errors.Is(err, errLibraryMissing) {
			a.refuse(msgMissing)
			return nil
		}
		return err
	}
	return saveLibrary(a.store, lib)
}
