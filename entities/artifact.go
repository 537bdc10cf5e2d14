package entities

import (
	"fmt"
	"strings"
)

// Artifact is a single build output, identified by its classifier and its
// file-type suffix. An empty classifier marks the project's primary output.
type Artifact struct {
	Classifier string `json:"classifier,omitempty"`
	Type       string `json:"type,omitempty"`
	File       string `json:"file,omitempty"`
	IsSnapshot bool   `json:"isSnapshot,omitempty"`
}

func (artifact *Artifact) String() string {
	if artifact.Classifier == "" {
		return fmt.Sprintf("%s (%s)", artifact.File, artifact.Type)
	}
	return fmt.Sprintf("%s (%s:%s)", artifact.File, artifact.Classifier, artifact.Type)
}

// UploadRequest carries everything needed for a single version upload.
// It is constructed fresh per invocation and never persisted.
type UploadRequest struct {
	PluginID          string `json:"pluginId,omitempty"`
	Version           string `json:"version,omitempty"`
	APIKey            string `json:"-"`
	Channel           string `json:"channel,omitempty"`
	ArtifactFile      string `json:"artifactFile,omitempty"`
	ArtifactFileName  string `json:"artifactFileName,omitempty"`
	SignatureFile     string `json:"signatureFile,omitempty"`
	SignatureFileName string `json:"signatureFileName,omitempty"`
	IsSnapshot        bool   `json:"isSnapshot,omitempty"`
}

// IsSnapshotVersion reports whether a version string follows the Maven
// development-version convention.
func IsSnapshotVersion(version string) bool {
	return strings.HasSuffix(strings.ToUpper(version), "-SNAPSHOT")
}
