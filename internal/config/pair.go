package config

import (
	"strings"
	"unicode"
)

// separators are tried in order; the first one present in the text wins.
var separators = []string{"=", ":"}

const argPrefix = "--"

// pair is a raw key/value entry read from a single source.
type pair struct {
	key   string
	value string
}

// SplitPair splits s on the first occurrence of the highest-priority
// separator it contains.
func SplitPair(s string) (key, value string, ok bool) {
	for _, sep := range separators {
		if key, value, ok = strings.Cut(s, sep); ok {
			return key, value, true
		}
	}
	return "", "", false
}

// parseLines extracts pairs from config file contents. Lines without a
// separator are skipped.
func parseLines(data []byte) []pair {
	lines := strings.Split(string(data), "\n")
	pairs := make([]pair, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		key, value, ok := SplitPair(line)
		if !ok {
			continue
		}
		pairs = append(pairs, pair{
			key:   strings.TrimRightFunc(key, unicode.IsSpace),
			value: strings.TrimLeftFunc(value, unicode.IsSpace),
		})
	}
	return pairs
}

// parseArgs extracts pairs from command-line arguments, program name excluded.
func parseArgs(args []string) []pair {
	pairs := make([]pair, 0, len(args))
	for _, arg := range args {
		key, value, ok := SplitPair(strings.TrimPrefix(arg, argPrefix))
		if !ok {
			continue
		}
		pairs = append(pairs, pair{key: key, value: value})
	}
	return pairs
}

// parseEnviron extracts pairs from NAME=value environment entries.
func parseEnviron(environ []string) []pair {
	pairs := make([]pair, 0, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		pairs = append(pairs, pair{key: key, value: value})
	}
	return pairs
}

// partition splits pairs into a lookup map of recognized keys and the list of
// unrecognized entries. Later duplicates overwrite earlier ones.
func partition(pairs []pair, defaults map[string]string) (map[string]string, []pair) {
	known := make(map[string]string)
	var unknown []pair
	for _, p := range pairs {
		if _, ok := defaults[p.key]; !ok {
			unknown = append(unknown, p)
			continue
		}
		known[p.key] = p.value
	}
	return known, unknown
}
