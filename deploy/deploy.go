package deploy

import (
	"path/filepath"

	"github.com/cubeengine/ore-deploy-go/entities"
	"github.com/cubeengine/ore-deploy-go/utils"
)

const (
	DefaultBaseURL         = "https://ore.spongepowered.org"
	DefaultReleaseChannel  = "release"
	DefaultSnapshotChannel = "snapshot"
)

// Config carries the already-resolved deployment inputs. It is deliberately
// a plain struct so the core stays decoupled from any particular build
// tool's parameter mechanism.
type Config struct {
	BaseURL                string
	PluginID               string
	Version                string
	ReleaseChannel         string
	SnapshotChannel        string
	APIKey                 string
	APIKeyLookup           string
	FileName               string
	Classifier             string
	FallbackToMainArtifact bool
	DryRun                 bool
	Properties             map[string]string
}

// Deployer resolves the artifact pair, channel and API key for one plugin
// version and hands them to the upload client.
type Deployer struct {
	config Config
	client *UploadClient
	logger utils.Log
}

func NewDeployer(config Config) *Deployer {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.ReleaseChannel == "" {
		config.ReleaseChannel = DefaultReleaseChannel
	}
	if config.SnapshotChannel == "" {
		config.SnapshotChannel = DefaultSnapshotChannel
	}
	return &Deployer{config: config, client: NewUploadClient(config.BaseURL), logger: &utils.NullLog{}}
}

func (d *Deployer) SetLogger(logger utils.Log) {
	d.logger = logger
	d.client.SetLogger(logger)
}

// Deploy runs one upload invocation: locate the jar and its signature,
// validate both files, select the channel, resolve the API key and POST.
// Every failure is terminal, nothing is retried and nothing is rolled back.
func (d *Deployer) Deploy(artifacts []entities.Artifact, mainArtifact *entities.Artifact) error {
	primary, signature, err := ResolveArtifacts(artifacts, mainArtifact, d.config.Classifier, d.config.FallbackToMainArtifact)
	if err != nil {
		return err
	}
	if err = utils.CheckFileReadable(primary.File); err != nil {
		return err
	}
	if err = utils.CheckFileReadable(signature.File); err != nil {
		return err
	}

	channel := SelectChannel(primary.IsSnapshot, d.config.ReleaseChannel, d.config.SnapshotChannel)

	apiKey, err := ResolveApiKey(d.config.APIKey, d.config.PluginID, d.config.Properties, d.config.APIKeyLookup)
	if err != nil {
		return err
	}
	if apiKey == "" {
		return &utils.MissingApiKeyError{PluginID: d.config.PluginID}
	}

	fileName := d.config.FileName
	if fileName == "" {
		fileName = filepath.Base(primary.File)
	}
	request := &entities.UploadRequest{
		PluginID:          d.config.PluginID,
		Version:           d.config.Version,
		APIKey:            apiKey,
		Channel:           channel,
		ArtifactFile:      primary.File,
		ArtifactFileName:  fileName,
		SignatureFile:     signature.File,
		SignatureFileName: fileName + ".sig",
		IsSnapshot:        primary.IsSnapshot,
	}

	d.logChecksums(primary.File)
	d.logger.Info("Uploading plugin to", d.client.VersionsURL(request.PluginID, request.Version), "in channel", channel)
	if d.config.DryRun {
		d.logger.Info("Dry run, skipping upload of", fileName)
		return nil
	}
	return d.client.Upload(request)
}

func (d *Deployer) logChecksums(path string) {
	checksums, err := utils.GetFileChecksums(path, utils.MD5, utils.SHA1, utils.SHA256)
	if err != nil {
		d.logger.Debug("Failed calculating artifact checksums:", err)
		return
	}
	d.logger.Debug("Artifact checksums:",
		"md5="+checksums[utils.MD5],
		"sha1="+checksums[utils.SHA1],
		"sha256="+checksums[utils.SHA256])
}
