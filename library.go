package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	errLibraryExists  = errors.New("url already exists in the library")
	errLibraryMissing = errors.New("url not in the library")
	errEmptyURL       = errors.New("empty url")
)

// A Library maps urls to entries.
type Library map[string]Entry

// Has reports whether url is in the library.
func (lib Library) Has(url string) bool {
	_, ok := lib[url]
	return ok
}

// Add stores e under url. An existing url is replaced only if force is set,
// otherwise Add returns errLibraryExists and the library is unchanged.
func (lib Library) Add(url string, e Entry, force bool) error {
	if url == "" {
		return errEmptyURL
	}
	if lib.Has(url) && !force {
		return fmt.Errorf("add %s: %w", url, errLibraryExists)
	}
	lib[url] = e
	return nil
}

// Remove deletes url. It returns errLibraryMissing if url is not present.
func (lib Library) Remove(url string) error {
	if !lib.Has(url) {
		return fmt.Errorf("rm %s: %w", url, errLibraryMissing)
	}
	delete(lib, url)
	return nil
}

// Project returns a copy of lib where every entry keeps only the
// attributes named in fields. Names are compared case-insensitively.
func (lib Library) Project(fields []string) Library {
	want := make(map[string]bool, len(fields))
	for _, f := range fields {
		want[strings.ToLower(strings.TrimSpace(f))] = true
	}

	p := make(Library, len(lib))
	for url, e := range lib {
		p[url] = e.project(want)
	}
	return p
}

// URLs returns the urls of lib in sorted order.
func (lib Library) URLs() []string {
	urls := make([]string, 0, len(lib))
	for url := range lib {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// parseFields splits the -fields argument.
func parseFields(s string) []string {
	return strings.Split(s, ",")
}
