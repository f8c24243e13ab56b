package sequence

import (
	"math"
	"strings"

	"github.com/turtacn/MolViz-Engine/pkg/errors"
	"github.com/turtacn/MolViz-Engine/pkg/types/common"
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// Backbone layout constants.  The path is a wavy spiral chosen for visual
// legibility, not a physically folded structure: control point i sits at
// angle (i/len)·4π on a radius that oscillates between 2.5 and 3.5.
const (
	backboneBaseRadius   = 3.0
	backboneRadiusWave   = 0.5
	backboneHeightStep   = 0.3
	markerSphereRadius   = 0.35

	// DefaultCurveSamples is the number of curve samples emitted per
	// control-point segment.
	DefaultCurveSamples = 8
)

// BackboneConfig carries the layout tunables for the protein backbone
// builder.  Zero-valued fields fall back to the package defaults.
type BackboneConfig struct {
	// SamplesPerSegment controls the curve sampling density.
	SamplesPerSegment int
}

// BuildBackbone interpolates a smooth curve through one control point per
// residue of seq and places one colored marker sphere per residue along it.
// Unknown residue codes get the neutral default color and are never
// rejected; the only error condition is an empty sequence.
func BuildBackbone(seq string, cfg BackboneConfig) (*geometry.BackboneModel, error) {
	seq = strings.ToUpper(strings.TrimSpace(seq))
	if seq == "" {
		return nil, errors.New(errors.CodeSequenceEmpty, "sequence cannot be empty")
	}

	samples := cfg.SamplesPerSegment
	if samples <= 0 {
		samples = DefaultCurveSamples
	}

	n := len(seq)
	control := controlPoints(n)
	curve := sampleCurve(control, samples)

	model := &geometry.BackboneModel{
		BaseEntity: common.NewBaseEntity(),
		Sequence:   seq,
		Curve:      curve,
		Markers:    make([]geometry.ResidueMarker, 0, n),
	}

	for i := 0; i < n; i++ {
		arc := 0.0
		if n > 1 {
			arc = float64(i) / float64(n-1)
		}
		model.Markers = append(model.Markers, geometry.ResidueMarker{
			Index:       i,
			Code:        string(seq[i]),
			ArcPosition: arc,
			Position:    curveAt(curve, arc),
			Color:       aminoColor(seq[i]),
		})
	}

	return model, nil
}

// ControlPoint returns the i-th backbone control point for a sequence of
// length n.  It is exported so that callers (and tests) can re-derive the
// path from the formula alone.
func ControlPoint(i, n int) geometry.Vec3 {
	angle := float64(i) / float64(n) * 4 * math.Pi
	radius := backboneBaseRadius + backboneRadiusWave*math.Sin(2*angle)
	return geometry.Vec3{
		X: radius * math.Cos(angle),
		Y: float64(i)*backboneHeightStep - float64(n)*0.15,
		Z: radius * math.Sin(angle),
	}
}

func controlPoints(n int) []geometry.Vec3 {
	pts := make([]geometry.Vec3, n)
	for i := range pts {
		pts[i] = ControlPoint(i, n)
	}
	return pts
}

// sampleCurve runs a uniform Catmull-Rom spline through the control points
// (endpoints duplicated) and returns the sampled points with T normalized
// over [0,1].  The spline passes through every control point, which keeps
// the markers visually anchored to the curve.
func sampleCurve(control []geometry.Vec3, samplesPerSegment int) []geometry.CurvePoint {
	if len(control) == 1 {
		return []geometry.CurvePoint{{T: 0, Position: control[0]}}
	}

	segments := len(control) - 1
	total := segments*samplesPerSegment + 1
	out := make([]geometry.CurvePoint, 0, total)

	at := func(i int) geometry.Vec3 {
		if i < 0 {
			return control[0]
		}
		if i >= len(control) {
			return control[len(control)-1]
		}
		return control[i]
	}

	for seg := 0; seg < segments; seg++ {
		p0, p1, p2, p3 := at(seg-1), at(seg), at(seg+1), at(seg+2)
		for s := 0; s < samplesPerSegment; s++ {
			t := float64(s) / float64(samplesPerSegment)
			idx := seg*samplesPerSegment + s
			out = append(out, geometry.CurvePoint{
				T:        float64(idx) / float64(total-1),
				Position: catmullRom(p0, p1, p2, p3, t),
			})
		}
	}
	out = append(out, geometry.CurvePoint{T: 1, Position: control[len(control)-1]})
	return out
}

// catmullRom evaluates the uniform Catmull-Rom basis at t in [0,1] between
// p1 and p2.
func catmullRom(p0, p1, p2, p3 geometry.Vec3, t float64) geometry.Vec3 {
	t2 := t * t
	t3 := t2 * t
	blend := func(a, b, c, d float64) float64 {
		return 0.5 * ((2 * b) +
			(-a+c)*t +
			(2*a-5*b+4*c-d)*t2 +
			(-a+3*b-3*c+d)*t3)
	}
	return geometry.Vec3{
		X: blend(p0.X, p1.X, p2.X, p3.X),
		Y: blend(p0.Y, p1.Y, p2.Y, p3.Y),
		Z: blend(p0.Z, p1.Z, p2.Z, p3.Z),
	}
}

// curveAt returns the sampled curve position closest to the normalized
// parameter t.
func curveAt(curve []geometry.CurvePoint, t float64) geometry.Vec3 {
	if len(curve) == 0 {
		return geometry.Vec3{}
	}
	idx := int(math.Round(t * float64(len(curve)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(curve) {
		idx = len(curve) - 1
	}
	return curve[idx].Position
}
