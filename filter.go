package main

import (
	"fmt"
	"regexp"
)

// compileFilter turns the ls filter into a pattern. Unless useRegex is set
// the filter is a literal substring.
func compileFilter(filter string, useRegex bool) (*regexp.Regexp, error) {
	if !useRegex {
		filter = regexp.QuoteMeta(filter)
	}
	re, err := regexp.Compile(filter)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", filter, err)
	}
	return re, nil
}

// Filter returns the entries of lib where re matches the url or any
// attribute value. For list attributes any element may match.
func (lib Library) Filter(re *regexp.Regexp) Library {
	matched := make(Library)
	for url, e := range lib {
		if entryMatches(re, url, e) {
			matched[url] = e
		}
	}
	return matched
}

func entryMatches(re *regexp.Regexp, url string, e Entry) bool {
	if re.MatchString(url) {
		return true
	}
	for _, a := range e.attrs() {
		if a.IsList {
			for _, v := range a.List {
				if re.MatchString(v) {
					return true
				}
			}
		} else if re.MatchString(a.Value) {
			return true
		}
	}
	return false
}
