package config

import (
	"maps"
	"os"
	"slices"

	"go.uber.org/zap"
)

// Option configures the behaviour of NewResolver.
type Option func(*Resolver)

// WithEnviron overrides the environment snapshot source (os.Environ by default).
func WithEnviron(environ func() []string) Option {
	return func(r *Resolver) {
		r.environ = environ
	}
}

// WithArgs overrides the argument source. The returned slice must not include
// the program name.
func WithArgs(args func() []string) Option {
	return func(r *Resolver) {
		r.args = args
	}
}

// WithArgList uses a fixed argument list instead of os.Args.
func WithArgList(args []string) Option {
	fixed := slices.Clone(args)
	return WithArgs(func() []string { return fixed })
}

// WithReadFile overrides how the config file is read (primarily for tests).
func WithReadFile(readFile func(string) ([]byte, error)) Option {
	return func(r *Resolver) {
		r.readFile = readFile
	}
}

// Resolver merges defaults, a config file, the environment and command-line
// arguments. It holds no state between calls and is safe for concurrent use.
type Resolver struct {
	logger   *zap.Logger
	environ  func() []string
	args     func() []string
	readFile func(string) ([]byte, error)
}

// NewResolver creates a Resolver reading the real process state unless
// overridden by opts. A nil logger discards diagnostics.
func NewResolver(logger *zap.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		logger:   logger,
		environ:  os.Environ,
		args:     processArgs,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns a mapping holding exactly the keys of defaults, each set
// from the highest-priority source that provides it:
// arguments > environment > config file > default.
// An empty configPath means there is no config file. Resolve never fails;
// problems are reported through the logger.
func (r *Resolver) Resolve(defaults map[string]string, configPath string) map[string]string {
	result := make(map[string]string, len(defaults))
	if len(defaults) == 0 {
		return result
	}

	file := r.fileSource(defaults, configPath)
	env, _ := partition(parseEnviron(r.environ()), defaults)
	args, unknownArgs := partition(parseArgs(r.args()), defaults)
	for _, p := range unknownArgs {
		r.logger.Warn("unhandled command-line argument",
			zap.String("key", p.key),
			zap.String("value", p.value),
		)
	}

	for _, key := range slices.Sorted(maps.Keys(defaults)) {
		if value, ok := args[key]; ok {
			result[key] = value
		} else if value, ok := env[key]; ok {
			result[key] = value
		} else if value, ok := file[key]; ok {
			result[key] = value
		} else {
			r.logger.Info("default value left unchanged", zap.String("key", key))
			result[key] = defaults[key]
		}
	}

	return result
}

func (r *Resolver) fileSource(defaults map[string]string, path string) map[string]string {
	if path == "" {
		return nil
	}

	data, err := r.readFile(path)
	if err != nil {
		r.logger.Error("unable to read config file", zap.String("path", path), zap.Error(err))
		return nil
	}

	known, unknown := partition(parseLines(data), defaults)
	for _, p := range unknown {
		r.logger.Warn("unhandled config line",
			zap.String("path", path),
			zap.String("key", p.key),
			zap.String("value", p.value),
		)
	}
	return known
}

func processArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
