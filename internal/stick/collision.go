package stick

// FindLandingPlatform returns the platform whose open interval (X, X+Width)
// contains tipX. Platforms never overlap, but if they did the first match in
// sequence order wins.
func FindLandingPlatform(platforms []Platform, tipX float64) (Platform, bool) {
	for _, p := range platforms {
		if p.Contains(tipX) {
			return p, true
		}
	}
	return Platform{}, false
}
