package meshgrid

import (
	"github.com/hornmesh/hornmesh/expr"
	"github.com/hornmesh/hornmesh/geom"
	"github.com/hornmesh/hornmesh/morph"
	"github.com/hornmesh/hornmesh/profile"
	"github.com/hornmesh/hornmesh/schema"
)

// Grid is the raw (axial, radial) point grid, one row per axial
// sample (extension/slot prefix rows followed by the main-curve
// rows), one column per azimuth (spec.md section 3.3, "Raw profile
// grid").
type Grid struct {
	Phis   []float64
	Points [][]geom.Vec2 // Points[phiIndex][rowIndex]
}

// Grid3D is the corresponding 3D projection (spec.md section 3.3,
// "Point grids").
type Grid3D struct {
	Phis   []float64
	Points [][]geom.Vec3
}

// BuildRaw samples fam across phis, prepending the straight throat
// extension and constant slot rows ahead of the main curve (spec.md
// section 4.2 OSSE paragraph; R-OSSE shares the same extension/slot
// treatment per section 3.1's shared "Throat geometry" group), and
// applying the optional rotation about (0, r0) to every row.
//
// rotFn is rec.Rot compiled; pass expr.Constant(0) when rotation is
// unused.
func BuildRaw(fam profile.Family, rec *schema.Record, phis []float64, rotFn expr.Fn) (*Grid, error) {
	if rec.NLength < 1 || len(phis) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Phis: phis, Points: make([][]geom.Vec2, len(phis))}

	for i, phi := range phis {
		r0Main, err := fam.R0Main(phi)
		if err != nil {
			return nil, err
		}
		domainEnd, err := fam.DomainEnd(phi)
		if err != nil {
			return nil, err
		}
		rotDeg, err := rotFn(phi)
		if err != nil {
			return nil, err
		}

		var row []geom.Vec2
		if rec.ThroatExtLength > 0 {
			row = append(row, geom.Vec2{X: 0, Y: rec.R0})
		}
		if rec.SlotLength > 0 {
			row = append(row, geom.Vec2{X: rec.ThroatExtLength, Y: r0Main})
		}

		absOffset := rec.ThroatExtLength + rec.SlotLength
		nMain := rec.NLength + 1
		for j := 0; j < nMain; j++ {
			t := 0.0
			if nMain > 1 {
				t = domainEnd * float64(j) / float64(nMain-1)
			}
			p, err := fam.Sample(t, phi)
			if err != nil {
				return nil, err
			}
			row = append(row, geom.Vec2{X: p.X + absOffset, Y: p.Y})
		}

		for j := range row {
			row[j] = profile.ApplyRotation(row[j], rotDeg, rec.R0)
		}
		g.Points[i] = row
	}
	return g, nil
}

// Project applies the morph blend (spec.md section 4.4) and projects
// each (axial, radial) sample into 3D (spec.md section 4.5, pass 2):
// (y*cos(phi), y*sin(phi), x).
//
// When cfg.Target is schema.MorphNone, the per-slice half-size
// computation is skipped entirely (it would never be read).
func Project(raw *Grid, rec *schema.Record, cfg morph.Config) *Grid3D {
	out := &Grid3D{Phis: raw.Phis, Points: make([][]geom.Vec3, len(raw.Phis))}
	for i := range out.Points {
		out.Points[i] = make([]geom.Vec3, len(raw.Points[i]))
	}
	if len(raw.Points) == 0 {
		return out
	}
	nRows := len(raw.Points[0])

	for row := 0; row < nRows; row++ {
		var halfW, halfH float64
		if cfg.Target != schema.MorphNone {
			ys := make([]float64, len(raw.Phis))
			for i := range raw.Phis {
				ys[i] = raw.Points[i][row].Y
			}
			computedW, computedH := morph.SliceHalfSizes(raw.Phis, ys)
			halfW, halfH = morph.ResolveHalfSizes(rec.MorphWidth, rec.MorphHeight, computedW, computedH)
		}

		tNorm := 0.0
		if nRows > 1 {
			tNorm = float64(row) / float64(nRows-1)
		}

		for i, phi := range raw.Phis {
			p := raw.Points[i][row]
			y := morph.Apply(cfg, tNorm, phi, p.Y, halfW, halfH)
			out.Points[i][row] = geom.FromPolar(p.X, y, phi)
		}
	}
	return out
}
