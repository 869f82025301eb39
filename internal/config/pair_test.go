package config

import (
	"slices"
	"testing"
)

func TestSplitPair(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		key   string
		value string
		ok    bool
	}{
		{name: "equals", in: "a=1", key: "a", value: "1", ok: true},
		{name: "colon", in: "a:1", key: "a", value: "1", ok: true},
		{name: "equals before colon", in: "a=1:x", key: "a", value: "1:x", ok: true},
		{name: "equals wins even when later", in: "a:1=x", key: "a:1", value: "x", ok: true},
		{name: "first occurrence", in: "a=b=c", key: "a", value: "b=c", ok: true},
		{name: "empty value", in: "a=", key: "a", value: "", ok: true},
		{name: "no separator", in: "plain", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := SplitPair(tt.in)
			if ok != tt.ok || key != tt.key || value != tt.value {
				t.Fatalf("SplitPair(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.in, key, value, ok, tt.key, tt.value, tt.ok)
			}
		})
	}
}

func TestParseLines(t *testing.T) {
	data := []byte("string = cfoo  \r\n# comment\n\ninteger:\t42\nurl=http://host:80\n  spaced  =  value\n")

	got := parseLines(data)

	want := []pair{
		{key: "string", value: "cfoo  "},
		{key: "integer", value: "42"},
		{key: "url", value: "http://host:80"},
		{key: "  spaced", value: "value"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseArgs(t *testing.T) {
	args := []string{"--integer=a99", "bool:atrue", "--floating:1.5", "----x=y", "-v", "--verbose", "string= spaced"}

	got := parseArgs(args)

	want := []pair{
		{key: "integer", value: "a99"},
		{key: "bool", value: "atrue"},
		{key: "floating", value: "1.5"},
		{key: "--x", value: "y"},
		{key: "string", value: " spaced"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseEnviron(t *testing.T) {
	got := parseEnviron([]string{"HOME=/root", "EMPTY=", "WEIRD=a=b", "BROKEN"})

	want := []pair{
		{key: "HOME", value: "/root"},
		{key: "EMPTY", value: ""},
		{key: "WEIRD", value: "a=b"},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPartition(t *testing.T) {
	defaults := map[string]string{"a": "1", "b": "2"}
	pairs := []pair{
		{key: "a", value: "first"},
		{key: "x", value: "unknown"},
		{key: "a", value: "second"},
	}

	known, unknown := partition(pairs, defaults)

	if len(known) != 1 || known["a"] != "second" {
		t.Fatalf("expected last duplicate to win, got %v", known)
	}
	if want := []pair{{key: "x", value: "unknown"}}; !slices.Equal(unknown, want) {
		t.Fatalf("expected %v, got %v", want, unknown)
	}
}
