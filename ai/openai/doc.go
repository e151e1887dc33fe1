// Package openai provides AI service implementations backed by
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM, and similar).
//
// The package implements the ai.Embedder and ai.Explainer interfaces using
// langchaingo clients. Both services are configured through a shared
// ai.Config and are safe for concurrent use.
package openai
