package main

import (
	"sort"
	"strings"
)

type tagCount struct {
	tag   string
	count int
}

// parseTags splits a comma separated list. Blank tags are dropped and a
// blank list gives no tags at all.
func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// countTags returns the tags of lib, most used first, ties by name.
func countTags(lib Library) []tagCount {
	counts := make(map[string]int)
	for _, e := range lib {
		seen := make(map[string]bool, len(e.Tags))
		for _, t := range e.Tags {
			if !seen[t] {
				seen[t] = true
				counts[t]++
			}
		}
	}

	tcs := make([]tagCount, 0, len(counts))
	for t, c := range counts {
		tcs = append(tcs, tagCount{t, c})
	}
	sort.Slice(tcs, func(i, j int) bool {
		if tcs[i].count != tcs[j].count {
			return tcs[i].count > tcs[j].count
		}
		return tcs[i].tag < tcs[j].tag
	})
	return tcs
}

// mergeTags appends the tags of extra missing from tags.
func mergeTags(tags, extra []string) []string {
	for _, x := range extra {
		found := false
		for _, t := range tags {
			if t == x {
				found = true
				break
			}
		}
		if !found {
			tags = append(tags, x)
		}
	}
	return tags
}
