package shadows

import "math"

// Default probe parameters
const (
	DefaultAngleOffset = 0.005
	DefaultUniformRays = 18
	DefaultFarLength   = 100000.0
)

// UniformFan casts n rays evenly spaced in angle around source, each
// ending length units away. It gives coarse coverage only and cannot
// reproduce sharp shadow edges.
func UniformFan(source Point, n int, length float64) []Ray {
	return AppendUniformFan(nil, source, n, length)
}

// AppendUniformFan appends the uniform fan to dst
func AppendUniformFan(dst []Ray, source Point, n int, length float64) []Ray {
	if n <= 0 {
		return dst
	}
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		end := source.Add(FromAngle(step * float64(i)).Scale(length))
		dst = append(dst, NewRay(source, end))
	}
	return dst
}

// EndpointFan casts six rays per obstacle: at each endpoint, and eps
// radians to either side of it. The side rays graze past corners so the
// silhouette edges of each shadow are sampled exactly.
func EndpointFan(source Point, segs []Segment, eps float64) []Ray {
	return AppendEndpointFan(make([]Ray, 0, 6*len(segs)), source, segs, eps)
}

// AppendEndpointFan appends the endpoint fan to dst. Degenerate segments
// contribute no rays.
func AppendEndpointFan(dst []Ray, source Point, segs []Segment, eps float64) []Ray {
	for _, seg := range segs {
		if seg.Degenerate() {
			continue
		}
		dst = appendCornerRays(dst, source, seg.A, eps)
		dst = appendCornerRays(dst, source, seg.B, eps)
	}
	return dst
}

func appendCornerRays(dst []Ray, source, corner Point, eps float64) []Ray {
	angle := AngleBetween(source, corner)
	return append(dst,
		NewRay(source, corner),
		NewRay(source, source.Add(FromAngle(angle+eps))),
		NewRay(source, source.Add(FromAngle(angle-eps))),
	)
}
