// Command view evaluates a render script and displays the resulting
// canvas in a desktop window.
//
// Usage:
//
//	view script.lisp
package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lokyhark/ray-tracer-challenge/pkg/canvas"
	"github.com/lokyhark/ray-tracer-challenge/pkg/engine"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: view script.lisp")
		os.Exit(2)
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("read script: %v", err)
	}

	eng := engine.NewEngine()
	cv, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		os.Exit(1)
	}
	if cv == nil {
		log.Fatal("script did not create a canvas")
	}

	v := &viewer{canvas: cv}
	ebiten.SetWindowTitle(os.Args[1])
	ebiten.SetWindowSize(cv.Width()*2, cv.Height()*2)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

// viewer displays a finished canvas. The pixel upload happens once on
// the first draw; the render itself is already done.
type viewer struct {
	canvas *canvas.Canvas
	img    *ebiten.Image
}

func (v *viewer) Update() error {
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.img == nil {
		w, h := v.canvas.Width(), v.canvas.Height()
		rgba := image.NewRGBA(image.Rect(0, 0, w, h))
		for i, p := range v.canvas.Pixels() {
			r, g, b := p.Bytes()
			rgba.Pix[i*4+0] = r
			rgba.Pix[i*4+1] = g
			rgba.Pix[i*4+2] = b
			rgba.Pix[i*4+3] = 0xFF
		}
		v.img = ebiten.NewImage(w, h)
		v.img.WritePixels(rgba.Pix)
	}
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.canvas.Width(), v.canvas.Height()
}
