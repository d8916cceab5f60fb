package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length of the move list.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithBoard enables or disables the board diagram.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithPlacement enables or disables the FEN placement line.
func (b *ConfigBuilder) WithPlacement(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowPlacement = enabled
	return b
}

// WithMoves enables or disables the move list.
func (b *ConfigBuilder) WithMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = enabled
	return b
}

// WithColour enables or disables ANSI colour in the board diagram.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithStrictUndo makes undo on an empty log an error.
func (b *ConfigBuilder) WithStrictUndo(enabled bool) *ConfigBuilder {
	b.cfg.StrictUndo = enabled
	return b
}

// WithEachSource writes a separate state for every input source.
func (b *ConfigBuilder) WithEachSource(enabled bool) *ConfigBuilder {
	b.cfg.EachSource = enabled
	return b
}

// WithHash enables or disables the position hash line.
func (b *ConfigBuilder) WithHash(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHash = enabled
	return b
}

// WithSuppressDuplicates skips states ending in an already written position.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.SuppressDuplicates = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
