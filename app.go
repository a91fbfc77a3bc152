package main

import (
	"context"
	"log"

	"github.com/lokyhark/ray-tracer-challenge/pkg/engine"
)

// App is the Wails backend. It exposes methods to the frontend via
// bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// RenderResult is the full result returned to the frontend: the encoded
// image plus any errors. PPM is empty when the script painted nothing
// or failed.
type RenderResult struct {
	PPM    string          `json:"ppm"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates a new App with a script engine.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
	}
}

// startup is called by Wails on app startup. The context is saved so we
// can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes render-script source and returns the PPM-encoded
// canvas plus errors. This is the primary binding called by the
// frontend editor.
func (a *App) Evaluate(source string) RenderResult {
	result := RenderResult{
		Errors: []EvalErrorData{},
	}

	cv, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: err.Error(),
		})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// A script that paints nothing is valid; the frontend shows an
	// empty viewport.
	if cv == nil {
		return result
	}

	result.PPM = cv.PPM()
	result.Width = cv.Width()
	result.Height = cv.Height()
	return result
}
