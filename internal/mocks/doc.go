// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// so that handler, service and CLI tests share one set of test doubles instead of
// defining inline mocks in individual test files.
//
// Usage:
//
//	import "github.com/phrazzld/namemagic/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gen := &mocks.MockGenerator{
//	        GenerateTextFn: func(ctx context.Context, prompt string) (string, error) {
//	            return "**Aria** means star", nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
