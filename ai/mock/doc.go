// Package mock provides a test double implementation of the ai.Embedder
// interface.
//
// The mock allows tests to run without an external embedding service and
// provides controlled, deterministic behavior: the same text always maps to
// the same unit vector, so index builds and searches are reproducible.
//
// # Usage in Tests
//
//	// Basic usage with default deterministic behavior
//	embedder := mock.NewMockEmbedder()
//	vec, err := embedder.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return nil, errors.New("service down")
//	}
//
//	// Check call counts
//	count := embedder.CallCount()
package mock
