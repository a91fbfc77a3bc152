package engine

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/lokyhark/ray-tracer-challenge/pkg/canvas"
	"github.com/lokyhark/ray-tracer-challenge/pkg/color"
	"github.com/lokyhark/ray-tracer-challenge/pkg/geometry"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms render-script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: rotation-x -> rotation_x
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: rotation-x -> rotation_x.
		// Only when the hyphen sits between identifier characters (not a
		// minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing kernel values through the environment
// ---------------------------------------------------------------------------

// sexpPoint wraps a geometry.Point.
type sexpPoint struct {
	p geometry.Point
}

func (s *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(point %g %g %g)", s.p.X, s.p.Y, s.p.Z)
}
func (s *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpVector wraps a geometry.Vector.
type sexpVector struct {
	v geometry.Vector
}

func (s *sexpVector) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vector %g %g %g)", s.v.X, s.v.Y, s.v.Z)
}
func (s *sexpVector) Type() *zygo.RegisteredType { return nil }

// sexpColor wraps a color.Color.
type sexpColor struct {
	c color.Color
}

func (s *sexpColor) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(color %g %g %g)", s.c.R, s.c.G, s.c.B)
}
func (s *sexpColor) Type() *zygo.RegisteredType { return nil }

// sexpMatrix wraps a geometry.Matrix.
type sexpMatrix struct {
	m geometry.Matrix
}

func (s *sexpMatrix) SexpString(ps *zygo.PrintState) string {
	return "(matrix 4x4)"
}
func (s *sexpMatrix) Type() *zygo.RegisteredType { return nil }

// sexpCanvas wraps a canvas.Canvas so pixel writes can target it.
type sexpCanvas struct {
	c *canvas.Canvas
}

func (s *sexpCanvas) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(canvas %dx%d)", s.c.Width(), s.c.Height())
}
func (s *sexpCanvas) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string. Returns the
// keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toPixelCoord extracts an integer pixel coordinate. Floats are rounded
// to the nearest integer, since scripts routinely compute coordinates
// from transformed points.
func toPixelCoord(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		return int(math.Round(v.Val)), nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toSize extracts a non-negative canvas dimension.
func toSize(s zygo.Sexp) (int, error) {
	n, err := toPixelCoord(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("expected non-negative size, got %d", n)
	}
	return n, nil
}

func toPoint(s zygo.Sexp) (geometry.Point, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.p, nil
	}
	return geometry.Point{}, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
}

func toVector(s zygo.Sexp) (geometry.Vector, error) {
	if v, ok := s.(*sexpVector); ok {
		return v.v, nil
	}
	return geometry.Vector{}, fmt.Errorf("expected vector, got %T (%s)", s, s.SexpString(nil))
}

func toColor(s zygo.Sexp) (color.Color, error) {
	if c, ok := s.(*sexpColor); ok {
		return c.c, nil
	}
	return color.Color{}, fmt.Errorf("expected color, got %T (%s)", s, s.SexpString(nil))
}

func toMatrix(s zygo.Sexp) (geometry.Matrix, error) {
	if m, ok := s.(*sexpMatrix); ok {
		return m.m, nil
	}
	return geometry.Matrix{}, fmt.Errorf("expected matrix, got %T (%s)", s, s.SexpString(nil))
}

func toCanvas(s zygo.Sexp) (*canvas.Canvas, error) {
	if c, ok := s.(*sexpCanvas); ok {
		return c.c, nil
	}
	return nil, fmt.Errorf("expected canvas, got %T (%s)", s, s.SexpString(nil))
}

// floats extracts exactly want numeric arguments.
func floats(name string, args []zygo.Sexp, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", name, want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// evalState carries the mutable result of a single evaluation. The
// canvas field tracks the most recently created canvas; Evaluate
// returns it when the script finishes.
type evalState struct {
	canvas *canvas.Canvas
}

// registerBuiltins installs the render-script builtins into a zygomys
// environment. The builtins construct kernel values (points, vectors,
// colors, matrices), combine and transform them, and paint canvases.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens and kebab-case names are converted.
func registerBuiltins(env *zygo.Zlisp, state *evalState) {

	// -----------------------------------------------------------------------
	// Constructors: (point 1 2 3), (vector 1 2 3), (color 1 0 0)
	// -----------------------------------------------------------------------
	env.AddFunction("point", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats("point", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpPoint{p: geometry.NewPoint(f[0], f[1], f[2])}, nil
	})

	env.AddFunction("vector", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats("vector", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVector{v: geometry.NewVector(f[0], f[1], f[2])}, nil
	})

	env.AddFunction("color", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats("color", args, 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpColor{c: color.New(f[0], f[1], f[2])}, nil
	})

	// -----------------------------------------------------------------------
	// Component accessors: (px p) (py p) (pz p) on points,
	// (vx v) (vy v) (vz v) on vectors
	// -----------------------------------------------------------------------
	pointAccessor := func(get func(geometry.Point) float64) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument", name)
			}
			p, err := toPoint(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &zygo.SexpFloat{Val: get(p)}, nil
		}
	}
	env.AddFunction("px", pointAccessor(func(p geometry.Point) float64 { return p.X }))
	env.AddFunction("py", pointAccessor(func(p geometry.Point) float64 { return p.Y }))
	env.AddFunction("pz", pointAccessor(func(p geometry.Point) float64 { return p.Z }))

	vectorAccessor := func(get func(geometry.Vector) float64) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument", name)
			}
			v, err := toVector(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &zygo.SexpFloat{Val: get(v)}, nil
		}
	}
	env.AddFunction("vx", vectorAccessor(func(v geometry.Vector) float64 { return v.X }))
	env.AddFunction("vy", vectorAccessor(func(v geometry.Vector) float64 { return v.Y }))
	env.AddFunction("vz", vectorAccessor(func(v geometry.Vector) float64 { return v.Z }))

	// -----------------------------------------------------------------------
	// Vector arithmetic
	// -----------------------------------------------------------------------
	binaryVector := func(op func(a, b geometry.Vector) geometry.Vector) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 arguments", name)
			}
			a, err := toVector(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			b, err := toVector(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &sexpVector{v: op(a, b)}, nil
		}
	}
	env.AddFunction("vadd", binaryVector(geometry.Vector.Add))
	env.AddFunction("vsub", binaryVector(geometry.Vector.Sub))
	env.AddFunction("vcross", binaryVector(geometry.Vector.Cross))

	env.AddFunction("vneg", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("vneg requires exactly 1 argument")
		}
		v, err := toVector(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vneg: %w", err)
		}
		return &sexpVector{v: v.Neg()}, nil
	})

	scaleVector := func(op func(v geometry.Vector, k float64) geometry.Vector) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 arguments", name)
			}
			v, err := toVector(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			k, err := toFloat64(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &sexpVector{v: op(v, k)}, nil
		}
	}
	env.AddFunction("vscale", scaleVector(geometry.Vector.Scale))
	env.AddFunction("vdiv", scaleVector(geometry.Vector.Div))

	env.AddFunction("vnorm", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("vnorm requires exactly 1 argument")
		}
		v, err := toVector(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vnorm: %w", err)
		}
		return &sexpVector{v: v.Normalized()}, nil
	})

	env.AddFunction("vdot", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vdot requires exactly 2 arguments")
		}
		a, err := toVector(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vdot: %w", err)
		}
		b, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vdot: %w", err)
		}
		return &zygo.SexpFloat{Val: a.Dot(b)}, nil
	})

	env.AddFunction("vlen", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("vlen requires exactly 1 argument")
		}
		v, err := toVector(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vlen: %w", err)
		}
		return &zygo.SexpFloat{Val: v.Length()}, nil
	})

	// -----------------------------------------------------------------------
	// Point arithmetic: (padd p v) -> point,
	// (psub p q) -> vector, (psub p v) -> point
	// -----------------------------------------------------------------------
	env.AddFunction("padd", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("padd requires exactly 2 arguments")
		}
		p, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("padd: %w", err)
		}
		v, err := toVector(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("padd: %w", err)
		}
		return &sexpPoint{p: p.Add(v)}, nil
	})

	env.AddFunction("psub", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("psub requires exactly 2 arguments")
		}
		p, err := toPoint(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("psub: %w", err)
		}
		switch rhs := args[1].(type) {
		case *sexpPoint:
			return &sexpVector{v: p.Sub(rhs.p)}, nil
		case *sexpVector:
			return &sexpPoint{p: p.SubVector(rhs.v)}, nil
		}
		return zygo.SexpNull, fmt.Errorf("psub: expected point or vector, got %T", args[1])
	})

	// -----------------------------------------------------------------------
	// Color arithmetic
	// -----------------------------------------------------------------------
	binaryColor := func(op func(a, b color.Color) color.Color) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 2 arguments", name)
			}
			a, err := toColor(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			b, err := toColor(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &sexpColor{c: op(a, b)}, nil
		}
	}
	env.AddFunction("cadd", binaryColor(color.Color.Add))
	env.AddFunction("csub", binaryColor(color.Color.Sub))
	env.AddFunction("cmul", binaryColor(color.Color.Mul))

	env.AddFunction("cscale", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("cscale requires exactly 2 arguments")
		}
		c, err := toColor(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cscale: %w", err)
		}
		k, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cscale: %w", err)
		}
		return &sexpColor{c: c.Scale(k)}, nil
	})

	// -----------------------------------------------------------------------
	// Matrix construction:
	// (matrix e0 ... e15), (identity), (translation 5 -3 2),
	// (scaling 2 3 4), (rotation-x r), (shearing xy xz yx yz zx zy)
	// -----------------------------------------------------------------------
	env.AddFunction("matrix", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats("matrix", args, 16)
		if err != nil {
			return zygo.SexpNull, err
		}
		var elements [16]float64
		copy(elements[:], f)
		return &sexpMatrix{m: geometry.NewMatrix(elements)}, nil
	})

	env.AddFunction("identity", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 0 {
			return zygo.SexpNull, fmt.Errorf("identity takes no arguments")
		}
		return &sexpMatrix{m: geometry.Identity()}, nil
	})

	xyzMatrix := func(ctor func(x, y, z float64) geometry.Matrix) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			f, err := floats(name, args, 3)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpMatrix{m: ctor(f[0], f[1], f[2])}, nil
		}
	}
	env.AddFunction("translation", xyzMatrix(geometry.Translation))
	env.AddFunction("scaling", xyzMatrix(geometry.Scaling))

	rotation := func(ctor func(r float64) geometry.Matrix) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			f, err := floats(name, args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			return &sexpMatrix{m: ctor(f[0])}, nil
		}
	}
	env.AddFunction("rotation_x", rotation(geometry.RotationX))
	env.AddFunction("rotation_y", rotation(geometry.RotationY))
	env.AddFunction("rotation_z", rotation(geometry.RotationZ))

	env.AddFunction("shearing", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		f, err := floats("shearing", args, 6)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpMatrix{m: geometry.Shearing(f[0], f[1], f[2], f[3], f[4], f[5])}, nil
	})

	// -----------------------------------------------------------------------
	// Matrix operations
	// -----------------------------------------------------------------------
	env.AddFunction("mmul", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("mmul requires exactly 2 arguments")
		}
		a, err := toMatrix(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mmul: %w", err)
		}
		b, err := toMatrix(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mmul: %w", err)
		}
		return &sexpMatrix{m: a.Mul(b)}, nil
	})

	unaryMatrix := func(op func(geometry.Matrix) geometry.Matrix) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument", name)
			}
			m, err := toMatrix(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &sexpMatrix{m: op(m)}, nil
		}
	}
	env.AddFunction("transpose", unaryMatrix(geometry.Matrix.Transpose))
	env.AddFunction("inverse", unaryMatrix(geometry.Matrix.Inverse))

	env.AddFunction("determinant", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("determinant requires exactly 1 argument")
		}
		m, err := toMatrix(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("determinant: %w", err)
		}
		return &zygo.SexpFloat{Val: m.Determinant()}, nil
	})

	env.AddFunction("invertible", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("invertible requires exactly 1 argument")
		}
		m, err := toMatrix(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("invertible: %w", err)
		}
		return &zygo.SexpBool{Val: m.IsInvertible()}, nil
	})

	// (transform m x) applies a matrix to a point or vector, dispatching
	// on the argument type: points get the full affine map, vectors only
	// the linear block.
	env.AddFunction("transform", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("transform requires exactly 2 arguments")
		}
		m, err := toMatrix(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("transform: %w", err)
		}
		switch target := args[1].(type) {
		case *sexpPoint:
			return &sexpPoint{p: m.MulPoint(target.p)}, nil
		case *sexpVector:
			return &sexpVector{v: m.MulVector(target.v)}, nil
		}
		return zygo.SexpNull, fmt.Errorf("transform: expected point or vector, got %T", args[1])
	})

	// -----------------------------------------------------------------------
	// Canvas: (canvas 900 500), (canvas 900 500 :fill (color 1 1 1))
	// -----------------------------------------------------------------------
	env.AddFunction("canvas", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 2 {
			return zygo.SexpNull, fmt.Errorf("canvas requires width and height, got %d arguments", len(pa.positional))
		}
		w, err := toSize(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("canvas: width: %w", err)
		}
		h, err := toSize(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("canvas: height: %w", err)
		}

		fill := color.Black()
		if v, ok := pa.kw["fill"]; ok {
			fill, err = toColor(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("canvas: fill: %w", err)
			}
		}

		cv := canvas.WithColor(w, h, fill)
		state.canvas = cv
		return &sexpCanvas{c: cv}, nil
	})

	// (pixel cv x y (color 1 0 0)) paints a single pixel. Out-of-range
	// coordinates are silently dropped, matching the canvas write
	// semantics.
	env.AddFunction("pixel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("pixel requires canvas, x, y and color")
		}
		cv, err := toCanvas(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pixel: %w", err)
		}
		x, err := toPixelCoord(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pixel: x: %w", err)
		}
		y, err := toPixelCoord(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pixel: y: %w", err)
		}
		c, err := toColor(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pixel: %w", err)
		}
		cv.Set(x, y, c)
		return zygo.SexpNull, nil
	})

	// (width cv) and (height cv) expose the canvas dimensions.
	canvasDim := func(get func(*canvas.Canvas) int) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument", name)
			}
			cv, err := toCanvas(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
			}
			return &zygo.SexpInt{Val: int64(get(cv))}, nil
		}
	}
	env.AddFunction("width", canvasDim((*canvas.Canvas).Width))
	env.AddFunction("height", canvasDim((*canvas.Canvas).Height))
}
