package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"preplan.flightworks.org/internal/appconf"
	"preplan.flightworks.org/internal/masterdata"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// A .env file is optional; flags and real environment variables win.
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", os.Getenv("PREPLAN_CONFIG"), "Path to a JSON config file (overrides the other flags)")
		port       = flag.Int("port", 4000, "API server port")
		envName    = flag.String("env", envOr("PREPLAN_ENV", "development"), "Environment (development|test|production)")
		apiKeys    = flag.String("api-keys", os.Getenv("PREPLAN_API_KEYS"), "Comma-separated list of valid API keys")
		rateLimit  = flag.Int("rate-limit", 100, "Maximum requests per second per API key")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		dataPath   = flag.String("data-path", envOr("PREPLAN_DATA_PATH", ":memory:"), "Path to the sqlite database")
		masterPath = flag.String("masterdata-path", os.Getenv("PREPLAN_MASTERDATA_PATH"), "Master data JSON document, local path or http(s) URL")
	)
	flag.Parse()

	var (
		cfg   appconf.Config
		mdCfg masterdata.Config
	)

	if *configPath != "" {
		jsonConfig, err := appconf.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config file: %v\n", err)
			os.Exit(1)
		}
		cfg = jsonConfig.ToAppConfig()
		mdData := jsonConfig.ToMasterDataConfigData()
		mdCfg = masterdata.Config{
			DataPath:        mdData.DataPath,
			MasterDataPath:  mdData.MasterDataPath,
			AuthHeaderKey:   mdData.AuthHeaderKey,
			AuthHeaderValue: mdData.AuthHeaderValue,
			Env:             mdData.Env,
			Verbose:         mdData.Verbose,
		}
	} else {
		env := appconf.EnvFlagToEnvironment(*envName)
		cfg = appconf.Config{
			Port:      *port,
			Env:       env,
			ApiKeys:   ParseAPIKeys(*apiKeys),
			RateLimit: *rateLimit,
			Verbose:   *verbose,
		}
		mdCfg = masterdata.Config{
			DataPath:       *dataPath,
			MasterDataPath: *masterPath,
			Env:            env,
			Verbose:        *verbose,
		}
	}

	if mdCfg.MasterDataPath == "" {
		fmt.Fprintln(os.Stderr, "error: masterdata-path is required")
		os.Exit(1)
	}

	coreApp, err := BuildApplication(cfg, mdCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building application: %v\n", err)
		os.Exit(1)
	}

	if err := Run(coreApp, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
