package texture

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
)

// Loader resolves asset file names against a directory and uploads them
type Loader struct {
	Dir      string
	Registry *Registry

	// Warnings receives one line per failed texture in addition to the log, nil disables
	Warnings io.Writer
}

// NewLoader creates a loader uploading into reg
func NewLoader(dir string, reg *Registry) *Loader {
	return &Loader{Dir: dir, Registry: reg}
}

// Load decodes and uploads one texture file
// Failures are reported and yield NoTexture, never an error: callers fall back to untextured drawing
func (l *Loader) Load(name string) Handle {
	if name == "" {
		return NoTexture
	}
	path := filepath.Join(l.Dir, name)

	img, err := Decode(path)
	if err != nil {
		l.warn("Failed to load texture: %s: %v", path, err)
		return NoTexture
	}

	h, err := l.Registry.Upload(img)
	if err != nil {
		l.warn("Failed to upload texture: %s: %v", path, err)
		return NoTexture
	}

	log.Printf("Loaded texture %s (%dx%d, %d channels) as %d", path, img.Width, img.Height, img.Channels, h)
	return h
}

func (l *Loader) warn(format string, args ...any) {
	log.Printf(format, args...)
	if l.Warnings != nil {
		fmt.Fprintf(l.Warnings, format+"\n", args...)
	}
}
