// Package logger builds configured slog.Logger instances with consistent
// defaults across environments.
//
// The factory supports JSON and text handlers, static attributes, and
// context extractors that inject request-scoped values (such as request IDs)
// into every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "dropkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
package logger
