package cli

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultDescriptorName is picked up from the working directory when no
// --config flag is passed.
const DefaultDescriptorName = "ore-deploy.toml"

// descriptor is the optional project descriptor. Command line flags override
// any value set here.
type descriptor struct {
	PluginID               string            `toml:"plugin-id"`
	Version                string            `toml:"version"`
	BaseURL                string            `toml:"base-url"`
	ReleaseChannel         string            `toml:"release-channel"`
	SnapshotChannel        string            `toml:"snapshot-channel"`
	APIKey                 string            `toml:"api-key"`
	APIKeyLookup           string            `toml:"api-key-lookup"`
	FileName               string            `toml:"file-name"`
	Classifier             string            `toml:"classifier"`
	FallbackToMainArtifact *bool             `toml:"fallback-to-main-artifact"`
	OutputDir              string            `toml:"output-dir"`
	FinalName              string            `toml:"final-name"`
	Properties             map[string]string `toml:"properties"`
}

func loadDescriptor(path string) (*descriptor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read project descriptor")
	}
	parsed := &descriptor{}
	if err := toml.Unmarshal(content, parsed); err != nil {
		return nil, errors.Wrapf(err, "failed to parse project descriptor '%s'", path)
	}
	return parsed, nil
}
