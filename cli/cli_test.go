package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cubeengine/ore-deploy-go/deploy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clitool "github.com/urfave/cli/v2"
)

func runResolveConfig(t *testing.T, args ...string) (config deploy.Config, outputDir, finalName string, err error) {
	app := &clitool.App{
		Commands: []*clitool.Command{
			{
				Name:  "deploy",
				Flags: deployFlags(),
				Action: func(context *clitool.Context) error {
					config, outputDir, finalName, err = resolveConfig(context)
					return nil
				},
			},
		},
	}
	require.NoError(t, app.Run(append([]string{"ore-deploy", "deploy"}, args...)))
	return
}

func writeDescriptor(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "ore-deploy.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolveConfigFromFlags(t *testing.T) {
	config, outputDir, finalName, err := runResolveConfig(t,
		"--plugin-id", "myplugin",
		"--plugin-version", "1.0.0",
		"--api-key", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "myplugin", config.PluginID)
	assert.Equal(t, "1.0.0", config.Version)
	assert.Equal(t, "secret", config.APIKey)
	assert.True(t, config.FallbackToMainArtifact)
	assert.False(t, config.DryRun)
	assert.Equal(t, defaultOutputDir, outputDir)
	assert.Equal(t, "myplugin-1.0.0", finalName)
}

func TestResolveConfigFromDescriptor(t *testing.T) {
	path := writeDescriptor(t, `
plugin-id = "myplugin"
version = "2.0.0-SNAPSHOT"
snapshot-channel = "beta"
fallback-to-main-artifact = false
output-dir = "build/libs"

[properties]
"ore.deploy.apikey.myplugin" = "property-key"
`)

	config, outputDir, finalName, err := runResolveConfig(t, "--config", path)
	assert.NoError(t, err)
	assert.Equal(t, "myplugin", config.PluginID)
	assert.Equal(t, "2.0.0-SNAPSHOT", config.Version)
	assert.Equal(t, "beta", config.SnapshotChannel)
	assert.False(t, config.FallbackToMainArtifact)
	assert.Equal(t, "property-key", config.Properties["ore.deploy.apikey.myplugin"])
	assert.Equal(t, "build/libs", outputDir)
	assert.Equal(t, "myplugin-2.0.0-SNAPSHOT", finalName)
}

func TestResolveConfigFlagsOverrideDescriptor(t *testing.T) {
	path := writeDescriptor(t, `
plugin-id = "myplugin"
version = "1.0.0"
release-channel = "stable"
`)

	config, _, _, err := runResolveConfig(t, "--config", path,
		"--plugin-version", "1.0.1",
		"--release-channel", "lts",
		"--fallback-to-main-artifact=false")
	assert.NoError(t, err)
	assert.Equal(t, "1.0.1", config.Version)
	assert.Equal(t, "lts", config.ReleaseChannel)
	assert.False(t, config.FallbackToMainArtifact)
}

func TestResolveConfigFinalNameFromFileName(t *testing.T) {
	_, _, finalName, err := runResolveConfig(t,
		"--plugin-id", "myplugin",
		"--plugin-version", "1.0.0",
		"--file-name", "myplugin-shaded.jar")
	assert.NoError(t, err)
	assert.Equal(t, "myplugin-shaded", finalName)
}

func TestResolveConfigMissingRequiredValues(t *testing.T) {
	_, _, _, err := runResolveConfig(t, "--plugin-version", "1.0.0")
	assert.Error(t, err)

	_, _, _, err = runResolveConfig(t, "--plugin-id", "myplugin")
	assert.Error(t, err)
}

func TestLoadDescriptorInvalidToml(t *testing.T) {
	path := writeDescriptor(t, "plugin-id = [broken")
	_, err := loadDescriptor(path)
	assert.Error(t, err)
}
