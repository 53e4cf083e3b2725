// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks a text or JSON handler, attaches static attributes and, when
// ContextExtractor callbacks are registered, wraps the handler so that
// values stored in the context passed to InfoContext and friends are added
// to every record.
//
//	log := logger.New(
//	    logger.WithDevelopment("schema-loader"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "constraint registered",
//	    logger.Constraint("minimum"),
//	    logger.Field("age"),
//	)
//
// Error and Errors return an empty slog.Attr for nil errors, so they can be
// passed unconditionally.
package logger
