package rooms

// flatten walks every polyline's vertex chain and emits one Segment per
// edge, in polyline order and then edge order within each polyline, so
// the resulting Index values are a stable, reproducible enumeration of
// every wall piece in the input. Closed polylines additionally emit the
// closing edge from the last vertex back to the first.
//
// Each polyline contributes consecutive-point segments with orientation
// (degrees, mod 180), midpoint, and length precomputed once.
// Flatten exposes the Flattener stage directly, for callers (debug
// rendering, inspection tooling) that want the wall segments Identify
// derives from polylines without running the rest of the pipeline.
func Flatten(polylines []Polyline) []Segment {
	return flatten(polylines)
}

func flatten(polylines []Polyline) []Segment {
	var segs []Segment
	idx := 0
	for _, pl := range polylines {
		n := len(pl.Points)
		if n < 2 {
			continue
		}
		edges := n - 1
		if pl.Closed && n > 2 {
			edges = n
		}
		for i := 0; i < edges; i++ {
			p := pl.Points[i]
			q := pl.Points[(i+1)%n]
			if p == q {
				continue
			}
			segs = append(segs, Segment{
				Index:       idx,
				P:           p,
				Q:           q,
				Orientation: orientationDeg(p, q),
				Mid:         midpoint(p, q),
				Length:      dist(p, q),
			})
			idx++
		}
	}
	return segs
}
