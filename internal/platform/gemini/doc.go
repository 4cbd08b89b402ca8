// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API through the google.golang.org/genai SDK.
//
// This package is an infrastructure adapter: it translates a plain prompt into a
// GenerateContent call and the SDK's response and error types back into the
// sentinel errors of the generation package, so the rest of the application
// never sees genai types.
package gemini
