// Package logger builds slog loggers the way the rest of clinickit
// expects them: JSON by default, level and format from the environment,
// and a context-aware handler that stamps every record with
// request-scoped attributes such as the current clinic id.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithContextExtractors(tenant.LoggerExtractor()),
//	)
package logger
