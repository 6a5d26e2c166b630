package trackview

// defaultTangent is reported for degenerate paths (empty, single point, or
// zero total length) where no segment direction exists.
var defaultTangent = Vec2{X: 1, Y: 0}

// PointAlongPath walks a piecewise-linear path at normalized arc-length
// progress in [0, 1] and returns the interpolated position together with the
// direction vector of the segment it lands on. The tangent is the raw segment
// delta, not normalized; callers needing a unit vector normalize themselves.
//
// Progress outside [0, 1] is clamped. A progress landing exactly on a
// waypoint resolves to the segment ending there, so progress 1 returns the
// last point exactly.
func PointAlongPath(path []Vec2, progress float64) (pos, tangent Vec2) {
	if len(path) == 0 {
		return Vec2{}, defaultTangent
	}
	if len(path) == 1 {
		return path[0], defaultTangent
	}

	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += path[i+1].Sub(path[i]).Len()
	}
	if total == 0 {
		return path[0], defaultTangent
	}

	target := clamp(progress, 0, 1) * total
	if target >= total {
		last := len(path) - 1
		return path[last], path[last].Sub(path[last-1])
	}
	cum := 0.0
	for i := 0; i < len(path)-1; i++ {
		seg := path[i+1].Sub(path[i])
		segLen := seg.Len()
		// Inclusive comparison: a target exactly at a segment boundary
		// resolves to the segment ending there.
		if cum+segLen >= target {
			t := 0.0
			if segLen > 0 {
				t = (target - cum) / segLen
			}
			// A target on the boundary returns the vertex bit-exactly
			// rather than interpolating to it, which would land a few ulps
			// off for non-dyadic coordinates.
			if t >= 1 {
				return path[i+1], seg
			}
			return path[i].Add(seg.Mul(t)), seg
		}
		cum += segLen
	}

	// Accumulated float error pushed target past the final cumulative length.
	last := len(path) - 1
	return path[last], path[last].Sub(path[last-1])
}

// ProjectOntoPolyline returns the closest point on the polyline to p. The
// result always lies on some segment of the path; ties between equidistant
// segments resolve to the first one encountered.
//
// An empty path projects to the zero vector; a single-point path projects to
// that point.
func ProjectOntoPolyline(p Vec2, path []Vec2) Vec2 {
	if len(path) == 0 {
		return Vec2{}
	}

	best := path[0]
	bestDist := p.DistTo(best)

	for i := 0; i < len(path)-1; i++ {
		a := path[i]
		seg := path[i+1].Sub(a)
		segLenSq := seg.Dot(seg)

		t := 0.0
		if segLenSq > 0 {
			t = clamp(p.Sub(a).Dot(seg)/segLenSq, 0, 1)
		}
		candidate := a.Add(seg.Mul(t))
		if d := p.DistTo(candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// PathLength returns the total arc length of a piecewise-linear path.
func PathLength(path []Vec2) float64 {
	total := 0.0
	for i := 0; i < len(path)-1; i++ {
		total += path[i+1].Sub(path[i]).Len()
	}
	return total
}
