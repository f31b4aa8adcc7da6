// Package effects defines the I/O a scaffolding run performs, as plain data.
// The core builds effects; the app layer's executor interprets them.
package effects

// File operations.
const (
	OpMkdir = "mkdir"
	OpWrite = "write"
)

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a diagnostic log line.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// FileEffect represents a file system operation.
type FileEffect struct {
	Operation string // OpMkdir or OpWrite
	Path      string
	Content   []byte // For write operations
}

func (e FileEffect) EffectType() string { return "file" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }

// WriteFile returns the effects that create the parent directory of path and
// write content to it as one buffer.
func WriteFile(dir, path string, content []byte) CompositeEffect {
	return CompositeEffect{Effects: []Effect{
		FileEffect{Operation: OpMkdir, Path: dir},
		FileEffect{Operation: OpWrite, Path: path, Content: content},
	}}
}
