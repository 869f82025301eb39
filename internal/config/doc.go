// Package config resolves flat string settings from four sources with
// precedence: command-line arguments > environment variables > config file >
// defaults. The keys of the defaults mapping are the only recognized settings;
// everything else is reported and ignored. Values are never parsed.
package config
