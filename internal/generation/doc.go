// Package generation defines the boundary between the application and external
// LLM text-generation providers. A Generator takes a prompt and returns the
// completion text or a failure; the OpenRouter and Gemini adapters in
// internal/platform implement it, so the provider can be swapped without
// touching the name-meaning flow or the UI.
package generation
