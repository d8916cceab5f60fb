package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// StateWriter is the interface for writing board states to output.
type StateWriter interface {
	// WriteState writes one state. source names where its moves came from
	// and may be empty.
	WriteState(s *engine.BoardState, source string) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewStateWriter returns the writer for the configured output format.
func NewStateWriter(w io.Writer, cfg *config.Config) StateWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes states as plain text.
type TextWriter struct {
	w      io.Writer
	cfg    *config.Config
	states int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteState writes a state immediately, separated from the previous one
// by a blank line.
func (tw *TextWriter) WriteState(s *engine.BoardState, source string) error {
	if tw.states > 0 {
		fmt.Fprintln(tw.w)
	}
	if source != "" {
		fmt.Fprintf(tw.w, "[%s]\n", source)
	}
	OutputState(s, tw.cfg, tw.w)
	tw.states++
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes states in JSON format.
// It buffers states and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	states []*JSONState
	single bool // If true, write each state immediately instead of batching
}

// NewJSONWriter creates a new JSON writer that batches states.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		states: make([]*JSONState, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each state immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteState converts the state now, so later changes to s are not seen.
func (jw *JSONWriter) WriteState(s *engine.BoardState, source string) error {
	if jw.single {
		return OutputStateJSON(s, source, jw.w)
	}
	jw.states = append(jw.states, StateToJSON(s, source))
	return nil
}

// Flush writes all buffered states as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.states) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{States: jw.states})

	jw.states = jw.states[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
