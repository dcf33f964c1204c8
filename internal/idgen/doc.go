// Package idgen wraps the UUID generator used for command identities so that
// it can be stubbed in tests. Callers treat identifiers as opaque strings.
package idgen
