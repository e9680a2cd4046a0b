// Package logger builds configured slog.Logger instances.
//
// Output format, level, destination and static attributes are set through
// options; WithDevelopment and WithProduction bundle sensible defaults for
// each environment.
//
//	log := logger.New(logger.WithProduction("abstractchainai"))
//	log.Info("project submitted", slog.String("project", name))
package logger
