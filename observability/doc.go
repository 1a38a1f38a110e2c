// Package observability provides OpenTelemetry tracing and health-check
// primitives.
//
// Tracing:
//
//	tp, err := observability.Init(ctx, cfg.Tracing, log)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanLogin)
//	defer span.End()
//
// Health checks:
//
//	health := observability.NewServiceHealth("authkit", "1.0.0")
//	health.AddComponent(checker.CheckHealth(ctx))
package observability
