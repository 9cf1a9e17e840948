// Package tour drives the camera along a scripted orbit. A tour is a tengo
// script that reads the elapsed time `t` (seconds) and assigns top-level
// `azimuth` and `elevation` globals in degrees, e.g.
//
//	azimuth := 20 * t
//	elevation := 30 + 15 * math.sin(t / 2)
package tour

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

type Tour struct {
	name     string
	compiled *tengo.Compiled
}

// Load reads and compiles a tour script from disk.
func Load(filename string) (*Tour, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("tour: load %s: %w", filename, err)
	}
	return New(filename, src)
}

// New compiles a tour script from source.
func New(name string, src []byte) (*Tour, error) {
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tour: compile %s: %w", name, err)
	}

	// Evaluate once so the script's globals exist before they are checked.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("tour: run %s: %w", name, err)
	}
	if !compiled.IsDefined("azimuth") || !compiled.IsDefined("elevation") {
		return nil, fmt.Errorf("tour: %s must define azimuth and elevation", name)
	}
	return &Tour{name: name, compiled: compiled}, nil
}

// At evaluates the script at elapsed time t and returns the camera angles.
func (tr *Tour) At(t float64) (azimuth, elevation float64, err error) {
	if tr == nil || tr.compiled == nil {
		return 0, 0, fmt.Errorf("tour: not loaded")
	}
	if err := tr.compiled.Set("t", t); err != nil {
		return 0, 0, fmt.Errorf("tour: %s: %w", tr.name, err)
	}
	if err := tr.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("tour: %s: %w", tr.name, err)
	}
	return tr.compiled.Get("azimuth").Float(), tr.compiled.Get("elevation").Float(), nil
}
