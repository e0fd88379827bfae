package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the notation games are printed in.
	Format OutputFormat

	// ShowBoard prints a diagram after every move in interactive mode.
	ShowBoard bool

	// Glyphs selects Unicode or ASCII pieces for diagrams.
	Glyphs GlyphStyle

	// Coordinates adds file letters and rank numbers around diagrams.
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      SAN,
		Glyphs:      Unicode,
		Coordinates: true,
	}
}
