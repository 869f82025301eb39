package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/confargenv/internal/config"
	"github.com/eugenenazirov/confargenv/internal/logging"
)

const (
	outputYAML = "yaml"
	outputEnv  = "env"
)

// options holds the parsed command line.
type options struct {
	configFile   string
	defaults     map[string]string
	defaultsFile string
	logLevel     string
	logFormat    string
	output       string
	overrides    []string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "")

	if err := run(opts, os.Stdout); err != nil {
		kingpin.Fatalf("%v", err)
	}
}

func parseFlags(args []string) (*options, error) {
	kingpinApp := kingpin.New("confargenv", "Resolve settings from defaults, a config file, environment variables and arguments")
	opts := &options{defaults: make(map[string]string)}

	kingpinApp.Flag("config", "Path to key=value configuration file").StringVar(&opts.configFile)
	kingpinApp.Flag("default", "Recognized setting and its default value, KEY=VALUE or KEY:VALUE (repeatable)").Short('d').SetValue((*defaultsValue)(&opts.defaults))
	kingpinApp.Flag("defaults-file", "Path to flat YAML file of recognized settings and defaults").StringVar(&opts.defaultsFile)
	kingpinApp.Flag("log-level", "Diagnostic log level (debug, info, warn, error)").Default("info").StringVar(&opts.logLevel)
	kingpinApp.Flag("log-format", "Diagnostic log encoding").Default("json").EnumVar(&opts.logFormat, "json", "console")
	kingpinApp.Flag("output", "Output format for resolved settings").Default(outputYAML).EnumVar(&opts.output, outputYAML, outputEnv)
	kingpinApp.Arg("overrides", "Override arguments such as --key=value; place them after --").StringsVar(&opts.overrides)

	if _, err := kingpinApp.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func run(opts *options, stdout io.Writer) error {
	defaults, err := collectDefaults(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: opts.logLevel, Encoding: opts.logFormat})
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	resolver := config.NewResolver(logger, config.WithArgList(opts.overrides))
	settings := resolver.Resolve(defaults, opts.configFile)

	return render(stdout, settings, opts.output)
}

// collectDefaults merges the defaults file with --default flags; flags win.
func collectDefaults(opts *options) (map[string]string, error) {
	defaults := make(map[string]string)
	if opts.defaultsFile != "" {
		fromFile, err := config.LoadDefaults(opts.defaultsFile)
		if err != nil {
			return nil, fmt.Errorf("load defaults: %w", err)
		}
		maps.Copy(defaults, fromFile)
	}
	maps.Copy(defaults, opts.defaults)
	return defaults, nil
}

func render(w io.Writer, settings map[string]string, format string) error {
	switch format {
	case outputEnv:
		for _, key := range slices.Sorted(maps.Keys(settings)) {
			if _, err := fmt.Fprintf(w, "%s=%s\n", key, settings[key]); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		return nil
	case outputYAML, "":
		out, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
