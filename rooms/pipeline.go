package rooms

// Identify runs the full Flatten → Cast → Seed → Grow → Skeletonise →
// Polygonise pipeline over polylines and returns the detected rooms.
//
// Identify never returns a non-nil error: malformed or degenerate
// geometry (too few walls, no closed stripe pairs, a polygoniser that
// finds no closed faces) simply yields an empty, non-nil Room slice.
// Each call builds its own PRNG from cfg.RandomSeed, so concurrent calls
// with the same cfg and polylines are independent and produce
// byte-identical results; there is no shared mutable pipeline state.
func Identify(polylines []Polyline, cfg Config) ([]Room, error) {
	segs := flatten(polylines)
	if len(segs) == 0 {
		return []Room{}, nil
	}

	hits := cast(segs, cfg)
	pairs := seedPairs(segs, hits, cfg)
	if len(pairs) == 0 {
		return []Room{}, nil
	}

	pairs = growPairs(segs, pairs, cfg)
	links := buildSkeleton(segs, pairs, cfg)
	if len(links) == 0 {
		return []Room{}, nil
	}

	rooms := polygonise(links, cfg)
	if rooms == nil {
		rooms = []Room{}
	}
	return rooms, nil
}
