package platform

import "fmt"

// Suggest picks the triplet a build would most likely want.
//
// Priority:
// 1. The configured target platform
// 2. The configured host platform
// 3. The detected host platform
//
// The result is advisory: it is never used as a resolved triplet.
func Suggest(target, host string, static *bool) (Triplet, error) {
	for _, s := range []string{target, host} {
		if s == "" {
			continue
		}
		p, err := ParsePlatform(s)
		if err != nil {
			return Triplet{}, fmt.Errorf("suggesting triplet: %w", err)
		}
		return p.Triplet(static), nil
	}

	return Detect().Triplet(static), nil
}
