// Package tracing wires OpenTelemetry for the service.
//
// Spans are opened by the ingestion layer around sheet imports and single record
// submissions. Exporting is off by default; set TRACING_ENABLED=true and pick the
// stdout exporter for local debugging or otlp with TRACING_ENDPOINT for a collector.
package tracing
