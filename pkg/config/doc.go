// Package config loads application configuration from environment variables
// into tagged structs, with optional .env file support.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 and caches
// each successfully parsed configuration type so it is only parsed once for
// the lifetime of the process.
//
// Define a struct with env tags:
//
//	type SupabaseConfig struct {
//	    URL    string `env:"SUPABASE_URL,required"`
//	    APIKey string `env:"SUPABASE_ANON_KEY,required"`
//	}
//
// Then load it:
//
//	var cfg SupabaseConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Load attempts to read the default .env file on first use; a missing file is
// not an error. LoadEnv loads one or more explicit .env files before parsing.
// ResetCache clears the cache, which is useful in tests that mutate the
// process environment.
package config
