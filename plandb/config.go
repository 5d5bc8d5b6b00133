package plandb

import "preplan.flightworks.org/internal/appconf"

// Config controls how the preplan database client opens its store.
type Config struct {
	DBPath  string
	env     appconf.Environment
	verbose bool
}

// NewConfig creates a Config for the given sqlite path. Use ":memory:" for
// ephemeral stores in tests.
func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	return Config{
		DBPath:  dbPath,
		env:     env,
		verbose: verbose,
	}
}
