// Package logger builds configured log/slog loggers for botguard based
// applications.
//
// The factory supports text and JSON output, static attributes attached to
// every record, and development/production presets. Attr helpers provide
// consistent keys for the values this library logs most (errors, client
// networks, store keys).
//
// # Usage
//
//	log := logger.New(
//		logger.WithProduction("search-frontend"),
//	)
//	logger.SetAsDefault(log)
//
//	log.Warn("missing ping", logger.Network("203.0.113.0/24"))
package logger
