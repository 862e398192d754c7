package main

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// dateFmt matches the timestamps written by earlier versions of bman.
const dateFmt = "2006-01-02T15:04:05.000000"

// Attribute names as they appear in library.json and in -fields.
const (
	fieldURL         = "url"
	fieldDate        = "date"
	fieldDescription = "description"
	fieldTags        = "tags"
)

// An Entry is one bookmark. The url is not stored here, it is the key
// of the entry in the Library.
//
// Date and Description are absent when empty, unless the document had the
// key with an empty string. Tags is absent when nil. Attributes bman does
// not know, or known ones holding another kind of value, are kept verbatim
// in Extra so a load followed by a save loses nothing.
type Entry struct {
	Date        string
	Description string
	Tags        []string
	Extra       map[string]json.RawMessage

	blankDate        bool
	blankDescription bool
}

func (e Entry) hasDate() bool        { return e.Date != "" || e.blankDate }
func (e Entry) hasDescription() bool { return e.Description != "" || e.blankDescription }

func (e Entry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(e.Extra)+3)
	for k, v := range e.Extra {
		m[k] = v
	}
	if e.hasDate() {
		m[fieldDate] = e.Date
	}
	if e.hasDescription() {
		m[fieldDescription] = e.Description
	}
	if e.Tags != nil {
		m[fieldTags] = e.Tags
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*e = Entry{}
	for k, v := range raw {
		switch {
		case isNull(v):
			// kept as is below
		case k == fieldDate:
			if json.Unmarshal(v, &e.Date) == nil {
				e.blankDate = e.Date == ""
				continue
			}
		case k == fieldDescription:
			if json.Unmarshal(v, &e.Description) == nil {
				e.blankDescription = e.Description == ""
				continue
			}
		case k == fieldTags:
			var tags []string
			if json.Unmarshal(v, &tags) == nil {
				e.Tags = tags
				continue
			}
		}
		if e.Extra == nil {
			e.Extra = make(map[string]json.RawMessage)
		}
		e.Extra[k] = v
	}
	return nil
}

// attr is a present attribute of an entry: either a single string or a
// list of strings.
type attr struct {
	Name   string
	Value  string
	List   []string
	IsList bool
}

// Text is the value as shown to the user.
func (a attr) Text() string {
	if a.IsList {
		return "[" + strings.Join(a.List, ", ") + "]"
	}
	return a.Value
}

// extraAttr reads a raw value. Strings are unquoted, arrays become lists
// and anything else is shown as JSON.
func extraAttr(name string, raw json.RawMessage) attr {
	var s string
	if !isNull(raw) && json.Unmarshal(raw, &s) == nil {
		return attr{Name: name, Value: s}
	}

	var items []json.RawMessage
	if !isNull(raw) && json.Unmarshal(raw, &items) == nil {
		list := make([]string, len(items))
		for i, item := range items {
			list[i] = extraAttr(name, item).Value
		}
		return attr{Name: name, List: list, IsList: true}
	}

	var compact bytes.Buffer
	if json.Compact(&compact, raw) != nil {
		return attr{Name: name, Value: string(raw)}
	}
	return attr{Name: name, Value: compact.String()}
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func newEntry(now time.Time, description, tags string) Entry {
	return Entry{
		Date:        now.Format(dateFmt),
		Description: description,
		Tags:        parseTags(tags),
	}
}

// attrs returns the present attributes: date, description and tags first,
// then the others by name.
func (e Entry) attrs() []attr {
	var as []attr
	if e.hasDate() {
		as = append(as, attr{Name: fieldDate, Value: e.Date})
	}
	if e.hasDescription() {
		as = append(as, attr{Name: fieldDescription, Value: e.Description})
	}
	if e.Tags != nil {
		as = append(as, attr{Name: fieldTags, List: e.Tags, IsList: true})
	}

	names := make([]string, 0, len(e.Extra))
	for k := range e.Extra {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		as = append(as, extraAttr(k, e.Extra[k]))
	}
	return as
}

// project keeps only the attributes named in want, names in lower case.
func (e Entry) project(want map[string]bool) Entry {
	var p Entry
	if want[fieldDate] {
		p.Date, p.blankDate = e.Date, e.blankDate
	}
	if want[fieldDescription] {
		p.Description, p.blankDescription = e.Description, e.blankDescription
	}
	if want[fieldTags] && e.Tags != nil {
		p.Tags = append([]string{}, e.Tags...)
	}
	for k, v := range e.Extra {
		if want[strings.ToLower(k)] {
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[k] = v
		}
	}
	return p
}
