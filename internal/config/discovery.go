package config

// DiscoveryConfig configures symbol discovery sources.
type DiscoveryConfig struct {
	// ImportPath is the design-system package to introspect
	// (e.g. "@shopify/polaris").
	ImportPath string `yaml:"import_path"`

	// ComponentPrefix is prepended to tag names in some frameworks
	// (e.g. "Polaris" for PolarisButton).
	ComponentPrefix string `yaml:"component_prefix"`

	// Components and LayoutComponents are explicit manual declarations.
	// They override everything automatic discovery finds.
	Components       []string `yaml:"components"`
	LayoutComponents []string `yaml:"layout_components"`

	// ComponentDirs are local directories to scan for component files.
	// When empty, conventional locations are probed instead.
	ComponentDirs []string `yaml:"component_dirs"`

	// ManifestPath points at a custom-elements.json manifest, if any.
	ManifestPath string `yaml:"manifest_path"`

	// FilePatterns are glob-like patterns matched against file basenames
	// during local scanning.
	FilePatterns []string `yaml:"file_patterns"`

	// MaxDepth bounds directory recursion during local scanning.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultDiscoveryConfig returns discovery defaults.
func DefaultDiscoveryConfig() DiscoveryConfig {
	return DiscoveryConfig{
		FilePatterns: []string{"*.tsx", "*.jsx", "*.vue", "*.svelte"},
		MaxDepth:     6,
	}
}
