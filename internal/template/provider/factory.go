package provider

// NewProvider returns a LocalProvider when templateDir is set and the
// EmbeddedProvider otherwise.
func NewProvider(templateDir string) Provider {
	if templateDir != "" {
		return NewLocalProvider(templateDir)
	}
	return NewEmbeddedProvider()
}
