// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs the global chain in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
//
// Page and API routes additionally run Session, which resolves the signed
// browser session cookie. Health probes and static assets skip it.
package middleware
