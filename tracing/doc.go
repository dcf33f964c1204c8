// Package tracing records command activations as OpenTelemetry spans. Each
// admitted command opens a span that is closed when the command finishes or
// is interrupted. Applications that do not need tracing simply do not
// subscribe a Recorder.
package tracing
