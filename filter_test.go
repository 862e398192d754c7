package main

import (
	"reflect"
	"testing"
)

func TestLibrary_Filter(t *testing.T) {
	tests := []struct {
		name     string
		lib      Library
		filter   string
		useRegex bool
		want     []string
	}{
		{"list element", sampleLibrary(), "cli", false, []string{"http://a.com"}},
		{"url", sampleLibrary(), "com", false, []string{"http://a.com", "http://b.com"}},
		{"description", sampleLibrary(), "ew", false, []string{"http://b.com"}},
		{"case sensitive", sampleLibrary(), "NEWS", false, []string{}},
		{"literal dot", sampleLibrary(), "a.com", false, []string{"http://a.com"}},
		{"literal metacharacters", sampleLibrary(), "py.*", false, []string{}},
		{"regex", sampleLibrary(), "^py.*n$", true, []string{"http://a.com"}},
		{"regex alternation", sampleLibrary(), "cli|news", true, []string{"http://a.com", "http://b.com"}},
		{
			name:   "date",
			lib:    Library{"http://d.org": {Date: "2023-12-01T00:00:00.000000"}, "http://e.org": {Date: "2024-01-01T00:00:00.000000"}},
			filter: "2023-",
			want:   []string{"http://d.org"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := compileFilter(tt.filter, tt.useRegex)
			if err != nil {
				t.Fatalf("compileFilter(%q) error = %v", tt.filter, err)
			}
			got := tt.lib.Filter(re).URLs()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestLibrary_FilterProjected(t *testing.T) {
	lib := sampleLibrary().Project([]string{"description"})

	re, err := compileFilter("cli", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := lib.Filter(re); len(got) != 0 {
		t.Errorf("Filter() on projected library = %v, want none", got)
	}
}

func TestCompileFilter_Invalid(t *testing.T) {
	if _, err := compileFilter("(", true); err == nil {
		t.Error("compileFilter(\"(\", true) should fail")
	}
	if _, err := compileFilter("(", false); err != nil {
		t.Errorf("compileFilter(\"(\", false) error = %v", err)
	}
}
