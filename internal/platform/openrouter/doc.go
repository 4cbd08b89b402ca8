// Package openrouter implements generation.Generator over OpenRouter's
// OpenAI-compatible chat completions endpoint.
//
// One request is sent per call: a single user message carrying the prompt and
// the configured model. HTTP 402 is reported as generation.ErrQuotaExceeded so
// callers can treat an unpaid account as a distinct, expected condition.
package openrouter
