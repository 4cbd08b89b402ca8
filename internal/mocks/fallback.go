package mocks

import "github.com/phrazzld/namemagic/internal/service"

// IsFallbackMeaning reports whether meaning is one of the fallback combinations
// produced by service.FallbackGenerator.
func IsFallbackMeaning(meaning string) bool {
	for _, trait := range service.FallbackTraits {
		for _, power := range service.FallbackPowers {
			if meaning == trait+" and "+power {
				return true
			}
		}
	}
	return false
}
