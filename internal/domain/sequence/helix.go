package sequence

import (
	"math"
	"strings"

	"github.com/turtacn/MolViz-Engine/pkg/errors"
	"github.com/turtacn/MolViz-Engine/pkg/types/common"
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// Helix layout constants.  ResiduesPerTurn is a design constant chosen for
// readable visualization, not derived from real B-form DNA pitch.
const (
	DefaultHelixRadius     = 2.0
	DefaultHelixStep       = 0.5
	DefaultResiduesPerTurn = 10.0

	baseSphereRadius    = 0.4
	backboneCylRadius   = 0.15
)

var (
	backboneColor     = geometry.RGB{R: 0.55, G: 0.55, B: 0.6}
	hydrogenBondColor = geometry.RGB{R: 0.85, G: 0.85, B: 0.9}
)

// HelixConfig carries the layout tunables for the double-helix builder.
// Zero-valued fields fall back to the package defaults.
type HelixConfig struct {
	Radius          float64
	Step            float64
	ResiduesPerTurn float64
}

func (c HelixConfig) withDefaults() HelixConfig {
	if c.Radius == 0 {
		c.Radius = DefaultHelixRadius
	}
	if c.Step == 0 {
		c.Step = DefaultHelixStep
	}
	if c.ResiduesPerTurn == 0 {
		c.ResiduesPerTurn = DefaultResiduesPerTurn
	}
	return c
}

// BuildHelix places the residues of seq on a double helix around the Y axis,
// centered at the origin.  Residue i sits at angle (i/len)·turns·2π and
// height (i/len)·H − H/2, where H = len·step and turns = len/residuesPerTurn.
// Recognized bases are paired with their canonical complement at angle+π and
// joined by a hydrogen-bond line; unrecognized residues are skipped silently.
// Two backbone cylinders at ± radius provide the visual scaffold.
//
// kind must be KindDNA or KindRNA; seq must be non-empty.  These are the only
// error conditions — residue-level problems degrade per placement instead.
func BuildHelix(seq string, kind Kind, cfg HelixConfig) (*geometry.HelixModel, error) {
	if kind != KindDNA && kind != KindRNA {
		return nil, errors.New(errors.CodeSequenceKindInvalid, "helix builder accepts dna or rna").
			WithDetail("kind=" + string(kind))
	}
	seq = strings.ToUpper(strings.TrimSpace(seq))
	if seq == "" {
		return nil, errors.New(errors.CodeSequenceEmpty, "sequence cannot be empty")
	}

	cfg = cfg.withDefaults()
	length := float64(len(seq))
	height := length * cfg.Step
	turns := length / cfg.ResiduesPerTurn

	model := &geometry.HelixModel{
		BaseEntity: common.NewBaseEntity(),
		Kind:       string(kind),
		Sequence:   seq,
		Radius:     cfg.Radius,
		Height:     height,
		Turns:      turns,
	}

	for i := 0; i < len(seq); i++ {
		code := seq[i]
		comp, ok := complementOf(kind, code)
		if !ok {
			// Unrecognized residue: no placement, no error.
			continue
		}

		frac := float64(i) / length
		angle := frac * turns * 2 * math.Pi
		h := frac*height - height/2

		primary := geometry.Sphere{
			Center: helixPoint(cfg.Radius, angle, h),
			Radius: baseSphereRadius,
			Color:  baseColor(code),
		}
		complement := geometry.Sphere{
			Center: helixPoint(cfg.Radius, angle+math.Pi, h),
			Radius: baseSphereRadius,
			Color:  baseColor(comp),
		}
		bond := geometry.Line{
			Start: primary.Center,
			End:   complement.Center,
			Color: hydrogenBondColor,
		}

		model.Placements = append(model.Placements, geometry.BasePairPlacement{
			Index:          i,
			Code:           string(code),
			ComplementCode: string(comp),
			Angle:          angle,
			Height:         h,
			Primary:        primary,
			Complement:     &complement,
			HydrogenBond:   &bond,
		})
	}

	model.Backbone = [2]geometry.Cylinder{
		{
			Start:  geometry.Vec3{X: cfg.Radius, Y: -height / 2},
			End:    geometry.Vec3{X: cfg.Radius, Y: height / 2},
			Radius: backboneCylRadius,
			Color:  backboneColor,
		},
		{
			Start:  geometry.Vec3{X: -cfg.Radius, Y: -height / 2},
			End:    geometry.Vec3{X: -cfg.Radius, Y: height / 2},
			Radius: backboneCylRadius,
			Color:  backboneColor,
		},
	}

	return model, nil
}

// helixPoint maps cylindrical coordinates (radius, angle, height) onto the
// scene, with the helix axis on Y.
func helixPoint(radius, angle, height float64) geometry.Vec3 {
	return geometry.Vec3{
		X: radius * math.Cos(angle),
		Y: height,
		Z: radius * math.Sin(angle),
	}
}
