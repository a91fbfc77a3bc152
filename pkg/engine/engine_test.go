package engine

import (
	"testing"

	"github.com/lokyhark/ray-tracer-challenge/pkg/color"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	cv, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv != nil {
		t.Error("expected nil canvas for empty script")
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine()

	cv, evalErrs, err := eng.Evaluate("   \n\t  \n  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv != nil {
		t.Error("expected nil canvas for whitespace script")
	}
}

func TestEvaluateExpressionWithoutCanvas(t *testing.T) {
	eng := NewEngine()

	// Valid Lisp that computes values but never creates a canvas.
	cv, evalErrs, err := eng.Evaluate("(vdot (vector 1 2 3) (vector 2 3 4))")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv != nil {
		t.Error("expected nil canvas when script paints nothing")
	}
}

func TestEvaluateCanvas(t *testing.T) {
	eng := NewEngine()

	cv, evalErrs, err := eng.Evaluate("(canvas 3 2)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv == nil {
		t.Fatal("expected canvas")
	}
	if cv.Width() != 3 || cv.Height() != 2 {
		t.Errorf("canvas is %dx%d, want 3x2", cv.Width(), cv.Height())
	}
	for i, p := range cv.Pixels() {
		if !p.Eq(color.Black()) {
			t.Fatalf("pixel %d = %+v, want black", i, p)
		}
	}
}

func TestEvaluateCanvasFill(t *testing.T) {
	eng := NewEngine()

	cv, evalErrs, err := eng.Evaluate("(canvas 2 2 :fill (color 1 1 1))")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv == nil {
		t.Fatal("expected canvas")
	}
	for i, p := range cv.Pixels() {
		if !p.Eq(color.White()) {
			t.Fatalf("pixel %d = %+v, want white", i, p)
		}
	}
}

func TestEvaluatePixelWrite(t *testing.T) {
	eng := NewEngine()

	cv, evalErrs, err := eng.Evaluate("(pixel (canvas 3 3) 1 1 (color 1 0 0))")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv == nil {
		t.Fatal("expected canvas")
	}
	got, ok := cv.Get(1, 1)
	if !ok || !got.Eq(color.Red()) {
		t.Errorf("pixel (1, 1) = %+v, want red", got)
	}
}

func TestEvaluateTransformedPixel(t *testing.T) {
	eng := NewEngine()

	source := `
(def c (canvas 9 9))
(def p (transform (translation 4 4 0) (point 1 1 0)))
(pixel c (px p) (py p) (color 0 1 0))
`
	cv, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv == nil {
		t.Fatal("expected canvas")
	}
	got, ok := cv.Get(5, 5)
	if !ok || !got.Eq(color.Green()) {
		t.Errorf("pixel (5, 5) = %+v, want green", got)
	}
}

func TestEvaluateLastCanvasWins(t *testing.T) {
	eng := NewEngine()

	cv, evalErrs, err := eng.Evaluate("(canvas 2 2)\n(canvas 7 5)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if cv == nil {
		t.Fatal("expected canvas")
	}
	if cv.Width() != 7 || cv.Height() != 5 {
		t.Errorf("canvas is %dx%d, want 7x5", cv.Width(), cv.Height())
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	eng := NewEngine()

	// Unmatched paren is a parse error.
	cv, evalErrs, err := eng.Evaluate("(canvas 3 3")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if cv != nil {
		t.Fatal("expected nil canvas on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for syntax error")
	}
	if evalErrs[0].Message == "" {
		t.Error("eval error message should not be empty")
	}
}

func TestEvaluateUndefinedSymbol(t *testing.T) {
	eng := NewEngine()

	cv, evalErrs, err := eng.Evaluate("(pixel (canvas 2 2) 0 0 missing)")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if cv != nil {
		t.Fatal("expected nil canvas on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for undefined symbol")
	}
}

func TestEvalErrorString(t *testing.T) {
	e := EvalError{Line: 3, Message: "boom"}
	if e.Error() != "line 3: boom" {
		t.Errorf("Error() = %q", e.Error())
	}
	e = EvalError{Message: "boom"}
	if e.Error() != "boom" {
		t.Errorf("Error() = %q", e.Error())
	}
}
