// Package confargenv merges application settings from defaults, a key=value
// config file, environment variables and command-line arguments.
//
// Sources are resolved in the following priority order:
//   - Command-line arguments (highest): --key=value, key=value, --key:value, key:value
//   - Environment variables whose name exactly matches a key
//   - Config file lines: key=value or key:value
//   - Defaults (lowest)
//
// Only keys present in the defaults are recognized; the result always holds
// exactly those keys. Values are returned as text.
package confargenv

import (
	"go.uber.org/zap"

	"github.com/eugenenazirov/confargenv/internal/config"
)

// Resolver merges the four configuration sources. See NewResolver.
type Resolver = config.Resolver

// Option configures a Resolver.
type Option = config.Option

// NewResolver creates a Resolver that reads the process environment and
// arguments unless overridden by opts. A nil logger discards diagnostics.
func NewResolver(logger *zap.Logger, opts ...Option) *Resolver {
	return config.NewResolver(logger, opts...)
}

// WithEnviron reads environment entries ("NAME=value") from environ instead of os.Environ.
func WithEnviron(environ func() []string) Option {
	return config.WithEnviron(environ)
}

// WithArgs reads arguments from args instead of os.Args[1:].
func WithArgs(args func() []string) Option {
	return config.WithArgs(args)
}

// WithArgList uses a fixed argument list, program name excluded.
func WithArgList(args []string) Option {
	return config.WithArgList(args)
}

// Resolve merges defaults with the config file at configPath (empty for
// none), the process environment and the process arguments.
func Resolve(defaults map[string]string, configPath string, logger *zap.Logger) map[string]string {
	return config.NewResolver(logger).Resolve(defaults, configPath)
}
