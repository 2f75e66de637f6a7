// Package shaders holds the GLSL programs used by the demos.
package shaders

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// Program names.
const (
	Color = "color" // model/view/projection with a per-vertex color
	Lit   = "lit"   // point light, optional texture and vertex colors
	Light = "light" // flat light source marker
)

//go:embed *.vert *.frag
var files embed.FS

// Sources returns the vertex and fragment source of a program. When dir is
// set, <dir>/<name>.vert and <dir>/<name>.frag are read instead of the
// embedded copies.
func Sources(dir, name string) (vertex, fragment string, err error) {
	read := files.ReadFile
	if dir != "" {
		read = func(file string) ([]byte, error) {
			return os.ReadFile(filepath.Join(dir, file))
		}
	}

	vs, err := read(name + ".vert")
	if err != nil {
		return "", "", fmt.Errorf("vertex shader %q: %w", name, err)
	}
	fs, err := read(name + ".frag")
	if err != nil {
		return "", "", fmt.Errorf("fragment shader %q: %w", name, err)
	}
	return string(vs), string(fs), nil
}
