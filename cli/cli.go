package cli

import (
	"fmt"
	"strings"

	"github.com/cubeengine/ore-deploy-go/deploy"
	"github.com/cubeengine/ore-deploy-go/utils"
	"github.com/pkg/errors"
	clitool "github.com/urfave/cli/v2"
)

const (
	configFlag          = "config"
	pluginIDFlag        = "plugin-id"
	pluginVersionFlag   = "plugin-version"
	baseURLFlag         = "base-url"
	releaseChannelFlag  = "release-channel"
	snapshotChannelFlag = "snapshot-channel"
	apiKeyFlag          = "api-key"
	apiKeyLookupFlag    = "api-key-lookup"
	fileNameFlag        = "file-name"
	classifierFlag      = "classifier"
	fallbackFlag        = "fallback-to-main-artifact"
	outputDirFlag       = "output-dir"
	finalNameFlag       = "final-name"
	dryRunFlag          = "dry-run"
)

const defaultOutputDir = "target"

func GetCommands(logger utils.Log) []*clitool.Command {
	return []*clitool.Command{
		{
			Name:      "deploy",
			Usage:     "Upload a built and signed plugin version",
			UsageText: "ore-deploy deploy --plugin-id myplugin --plugin-version 1.0.0",
			Flags:     deployFlags(),
			Action: func(context *clitool.Context) error {
				config, outputDir, finalName, err := resolveConfig(context)
				if err != nil {
					return err
				}
				artifacts, mainArtifact, err := deploy.ScanArtifacts(outputDir, finalName, config.Version)
				if err != nil {
					return err
				}
				deployer := deploy.NewDeployer(config)
				deployer.SetLogger(logger)
				return deployer.Deploy(artifacts, mainArtifact)
			},
		},
	}
}

func deployFlags() []clitool.Flag {
	return []clitool.Flag{
		&clitool.StringFlag{
			Name:  configFlag,
			Usage: fmt.Sprintf("[Optional] Path to the project descriptor. Defaults to '%s' when the file exists.", DefaultDescriptorName),
		},
		&clitool.StringFlag{
			Name:  pluginIDFlag,
			Usage: "The plugin id the version is uploaded for.",
		},
		&clitool.StringFlag{
			Name:  pluginVersionFlag,
			Usage: "The plugin version being uploaded.",
		},
		&clitool.StringFlag{
			Name:  baseURLFlag,
			Usage: fmt.Sprintf("[Default: %s] Base URL of the remote repository.", deploy.DefaultBaseURL),
		},
		&clitool.StringFlag{
			Name:  releaseChannelFlag,
			Usage: fmt.Sprintf("[Default: %s] Channel used for release builds.", deploy.DefaultReleaseChannel),
		},
		&clitool.StringFlag{
			Name:  snapshotChannelFlag,
			Usage: fmt.Sprintf("[Default: %s] Channel used for snapshot builds.", deploy.DefaultSnapshotChannel),
		},
		&clitool.StringFlag{
			Name:  apiKeyFlag,
			Usage: "[Optional] Upload API key. When unset, the project properties and the lookup table are consulted.",
		},
		&clitool.StringFlag{
			Name:  apiKeyLookupFlag,
			Usage: "[Optional] Path to a properties file mapping plugin ids to API keys.",
		},
		&clitool.StringFlag{
			Name:  fileNameFlag,
			Usage: "[Optional] File name the uploaded artifact is stored under. Defaults to the artifact's own name.",
		},
		&clitool.StringFlag{
			Name:  classifierFlag,
			Usage: "[Optional] Classifier of the jar to upload. Unset selects the classifier-less jar.",
		},
		&clitool.BoolFlag{
			Name:  fallbackFlag,
			Value: true,
			Usage: "[Default: true] Fall back to the project's main artifact when no jar matches the classifier.",
		},
		&clitool.StringFlag{
			Name:  outputDirFlag,
			Usage: fmt.Sprintf("[Default: %s] Build output directory scanned for artifacts.", defaultOutputDir),
		},
		&clitool.StringFlag{
			Name:  finalNameFlag,
			Usage: "[Optional] Base file name of the build outputs. Defaults to '<plugin-id>-<plugin-version>'.",
		},
		&clitool.BoolFlag{
			Name:  dryRunFlag,
			Usage: "[Default: false] Resolve and log everything but skip the upload.",
		},
	}
}

// resolveConfig merges the descriptor with the command line, flags winning.
func resolveConfig(context *clitool.Context) (config deploy.Config, outputDir, finalName string, err error) {
	projectDescriptor, err := resolveDescriptor(context)
	if err != nil {
		return
	}

	config = deploy.Config{
		BaseURL:                stringValue(context, baseURLFlag, projectDescriptor.BaseURL),
		PluginID:               stringValue(context, pluginIDFlag, projectDescriptor.PluginID),
		Version:                stringValue(context, pluginVersionFlag, projectDescriptor.Version),
		ReleaseChannel:         stringValue(context, releaseChannelFlag, projectDescriptor.ReleaseChannel),
		SnapshotChannel:        stringValue(context, snapshotChannelFlag, projectDescriptor.SnapshotChannel),
		APIKey:                 stringValue(context, apiKeyFlag, projectDescriptor.APIKey),
		APIKeyLookup:           stringValue(context, apiKeyLookupFlag, projectDescriptor.APIKeyLookup),
		FileName:               stringValue(context, fileNameFlag, projectDescriptor.FileName),
		Classifier:             stringValue(context, classifierFlag, projectDescriptor.Classifier),
		FallbackToMainArtifact: fallbackValue(context, projectDescriptor),
		DryRun:                 context.Bool(dryRunFlag),
		Properties:             projectDescriptor.Properties,
	}
	if config.PluginID == "" {
		err = errors.New("a plugin id is required, pass --" + pluginIDFlag + " or set it in the descriptor")
		return
	}
	if config.Version == "" {
		err = errors.New("a plugin version is required, pass --" + pluginVersionFlag + " or set it in the descriptor")
		return
	}

	outputDir = stringValue(context, outputDirFlag, projectDescriptor.OutputDir)
	if outputDir == "" {
		outputDir = defaultOutputDir
	}
	finalName = stringValue(context, finalNameFlag, projectDescriptor.FinalName)
	if finalName == "" {
		if config.FileName != "" {
			finalName = strings.TrimSuffix(config.FileName, ".jar")
		} else {
			finalName = config.PluginID + "-" + config.Version
		}
	}
	return
}

func resolveDescriptor(context *clitool.Context) (*descriptor, error) {
	path := context.String(configFlag)
	if path == "" {
		exists, err := utils.IsFileExists(DefaultDescriptorName)
		if err != nil {
			return nil, err
		}
		if !exists {
			return &descriptor{}, nil
		}
		path = DefaultDescriptorName
	}
	return loadDescriptor(path)
}

func stringValue(context *clitool.Context, flagName, descriptorValue string) string {
	if value := context.String(flagName); value != "" {
		return value
	}
	return descriptorValue
}

func fallbackValue(context *clitool.Context, projectDescriptor *descriptor) bool {
	if context.IsSet(fallbackFlag) {
		return context.Bool(fallbackFlag)
	}
	if projectDescriptor.FallbackToMainArtifact != nil {
		return *projectDescriptor.FallbackToMainArtifact
	}
	return true
}
