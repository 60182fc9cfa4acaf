// Package telemetry computes the key/value properties attached to a CLI
// invocation: platform facts, a CI marker, a salted hash of the machine
// identifier, and a per-invocation session id.
//
// Collection only — this package never transmits anything. The cli
// package logs the properties at debug level, and collection is skipped
// entirely when the user has opted out (see the config package).
//
// The machine identifier is never recorded raw: it is hashed with a
// fixed salt so that invocations from the same machine correlate
// without the identifier itself leaving the host.
package telemetry
