// Package scene loads scene files, which list curves by their control
// points, and evaluates them.
//
// Scenes can be written in YAML or TOML. A YAML scene looks like this:
//
//	curves:
//	  - name: arch
//	    kind: bezier
//	    steps: 32
//	    frames: transport
//	    points:
//	      - [0, 0, 0]
//	      - [1, 0, 0]
//	      - [1, 1, 0]
//	      - [0, 1, 0]
//	  - kind: circle
//	    radius: 2
package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
	"honnef.co/go/spacecurve"
)

// DefaultSteps is the number of steps per segment used for curves that
// don't specify one.
const DefaultSteps = 16

var (
	ErrUnknownFormat = errors.New("unknown scene format")
	ErrUnknownKind   = errors.New("unknown curve kind")
	ErrUnknownFrames = errors.New("unknown frame mode")
	ErrNotFinite     = errors.New("coordinate is not finite")
)

// Kind is the type of curve described by a [CurveSpec].
type Kind string

const (
	// KindBezier is a piecewise cubic Bézier curve with 3n+1 control points.
	KindBezier Kind = "bezier"
	// KindBspline is a uniform cubic B-spline with at least 4 control points.
	KindBspline Kind = "bspline"
	// KindCircle is a circle around the origin in the xy plane. It has no
	// control points.
	KindCircle Kind = "circle"
)

// Frames selects how the frames of a curve are computed.
type Frames string

const (
	// FramesCurvature keeps the frames computed by the evaluator.
	FramesCurvature Frames = "curvature"
	// FramesOrthonormal orthonormalizes the evaluator's frames.
	FramesOrthonormal Frames = "orthonormal"
	// FramesTransport recomputes the frames by parallel transport, starting
	// from CurveSpec.Seed.
	FramesTransport Frames = "transport"
)

// Scene is the contents of a scene file.
type Scene struct {
	Curves []CurveSpec `yaml:"curves" toml:"curves"`
}

// CurveSpec describes one curve of a scene.
type CurveSpec struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	Kind Kind   `yaml:"kind" toml:"kind"`
	// Steps is the number of steps per segment. Zero means DefaultSteps.
	Steps int `yaml:"steps,omitempty" toml:"steps,omitempty"`
	// Radius is the radius of circles. Zero means 1.
	Radius float64      `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Points [][3]float64 `yaml:"points,omitempty" toml:"points,omitempty"`
	// Frames defaults to FramesCurvature.
	Frames Frames `yaml:"frames,omitempty" toml:"frames,omitempty"`
	// Seed is the initial binormal for FramesTransport.
	Seed [3]float64 `yaml:"seed,omitempty" toml:"seed,omitempty"`
}

// Result is an evaluated curve.
type Result struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	// Arclen is the length of the exact curve, to within
	// spacecurve.DefaultAccuracy per segment, as opposed to the length of
	// the sample polyline.
	Arclen float64 `json:"arclen"`
	// Bounds is the tight bounding box of the exact curve. It contains all
	// samples.
	Bounds spacecurve.Box   `json:"bounds"`
	Curve  spacecurve.Curve `json:"samples"`
}

// Format is the encoding of a scene file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "YAML"
	case FormatTOML:
		return "TOML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath returns the format of a file, based on its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Load reads the scene file at path. The format is chosen by
// [FormatFromPath].
func Load(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode decodes a scene. Unknown fields are errors.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	return &s, nil
}

// Evaluate evaluates all curves of the scene, in order. The first curve that
// fails to evaluate stops evaluation, and its error is returned, annotated
// with the name of the curve. Errors from the evaluators match
// [spacecurve.ErrInvalidInput].
//
// A nil logger discards all logging.
func (s *Scene) Evaluate(logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	out := make([]Result, 0, len(s.Curves))
	for i, spec := range s.Curves {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("curve %d", i)
		}
		r, err := spec.evaluate(logger.With("curve", name))
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", name, err)
		}
		r.Name = name
		out = append(out, r)
	}
	return out, nil
}

func (spec CurveSpec) evaluate(logger *slog.Logger) (Result, error) {
	res := Result{Kind: spec.Kind}
	steps := spec.Steps
	if steps == 0 {
		logger.Debug("using default step count", "steps", DefaultSteps)
		steps = DefaultSteps
	}
	points, err := spec.points()
	if err != nil {
		return Result{}, err
	}

	var c spacecurve.Curve
	switch spec.Kind {
	case KindBezier:
		if c, err = spacecurve.EvalBezier(points, steps); err != nil {
			return Result{}, err
		}
		res.Arclen, res.Bounds = measure(points)
	case KindBspline:
		if c, err = spacecurve.EvalBspline(points, steps); err != nil {
			return Result{}, err
		}
		bez, err := spacecurve.BsplineToBezier(points)
		if err != nil {
			return Result{}, err
		}
		res.Arclen, res.Bounds = measure(bez)
	case KindCircle:
		circle := spacecurve.Circle{Radius: spec.Radius}
		if circle.Radius == 0 {
			circle.Radius = 1
		}
		if circle.IsNaN() || circle.IsInf() {
			return Result{}, fmt.Errorf("radius: %w", ErrNotFinite)
		}
		if steps < 1 {
			return Result{}, &spacecurve.InvalidInputError{
				Op:     "EvalCircle",
				Steps:  steps,
				Reason: "step count must be at least 1",
			}
		}
		c = spacecurve.EvalCircle(circle.Radius, steps)
		res.Arclen = circle.Arclen(spacecurve.DefaultAccuracy)
		res.Bounds = circle.BoundingBox()
	default:
		return Result{}, fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
	}

	switch spec.Frames {
	case "", FramesCurvature:
	case FramesOrthonormal:
		c = spacecurve.Orthonormalize(c)
	case FramesTransport:
		c = spacecurve.ParallelTransport(c, spacecurve.Vec(spec.Seed[0], spec.Seed[1], spec.Seed[2]))
	default:
		return Result{}, fmt.Errorf("%w %q", ErrUnknownFrames, spec.Frames)
	}

	logger.Debug("evaluated curve",
		"kind", spec.Kind,
		"control_points", len(spec.Points),
		"samples", len(c),
		"frames", spec.Frames,
		"arclen", res.Arclen)
	res.Curve = c
	return res, nil
}

func (spec CurveSpec) points() ([]spacecurve.Point, error) {
	out := make([]spacecurve.Point, len(spec.Points))
	for i, p := range spec.Points {
		out[i] = spacecurve.Pt(p[0], p[1], p[2])
		if out[i].IsNaN() || out[i].IsInf() {
			return nil, fmt.Errorf("control point %d: %w", i, ErrNotFinite)
		}
	}
	return out, nil
}

// measure returns the arc length and the bounding box of the piecewise
// cubic Bézier curve with the given control points.
func measure(points []spacecurve.Point) (float64, spacecurve.Box) {
	var l float64
	b := spacecurve.EmptyBox()
	for _, seg := range spacecurve.BezierSegments(points) {
		l += seg.Arclen(spacecurve.DefaultAccuracy)
		b = b.Union(seg.BoundingBox())
	}
	return l, b
}

// Bounds returns the box enclosing all results.
func Bounds(results []Result) spacecurve.Box {
	b := spacecurve.EmptyBox()
	for _, r := range results {
		b = b.Union(r.Bounds)
	}
	return b
}
