// Package service contains the application use cases. Its centre is the
// name-meaning requester: it builds the prompt for a name and language, makes
// the single call to the configured generation.Generator, cleans the
// completion, and substitutes a locally generated fallback meaning whenever
// the call fails, so callers always reach a result.
//
// The service also drives domain.Session through its phases for submit and
// reset, and hands share payloads to an optional Sharer.
package service
