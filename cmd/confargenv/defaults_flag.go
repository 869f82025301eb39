package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/confargenv/internal/config"
)

// defaultsValue collects repeated KEY=VALUE (or KEY:VALUE) flags using the
// same separator precedence as the resolver.
type defaultsValue map[string]string

var _ kingpin.Value = (*defaultsValue)(nil)

func (d *defaultsValue) Set(raw string) error {
	key, value, ok := config.SplitPair(raw)
	if !ok {
		return fmt.Errorf("expected KEY=VALUE or KEY:VALUE, got %q", raw)
	}
	if *d == nil {
		*d = make(defaultsValue)
	}
	(*d)[key] = value
	return nil
}

func (d *defaultsValue) String() string {
	entries := make([]string, 0, len(*d))
	for _, key := range slices.Sorted(maps.Keys(*d)) {
		entries = append(entries, key+"="+(*d)[key])
	}
	return strings.Join(entries, ",")
}

// IsCumulative lets kingpin accept the flag more than once.
func (d *defaultsValue) IsCumulative() bool {
	return true
}
