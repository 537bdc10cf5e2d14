package deploy

import (
	"github.com/cubeengine/ore-deploy-go/entities"
	"github.com/cubeengine/ore-deploy-go/utils"
	"golang.org/x/exp/slices"
)

const (
	// JarType is the file-type suffix of the primary plugin artifact.
	JarType = "jar"
	// SignatureType is the file-type suffix of the detached signature.
	SignatureType = "jar.asc"
)

// FindArtifact returns the first artifact in the sequence whose classifier
// and type match the requested values, or nil when there is no match.
// An empty classifier only matches artifacts without a classifier.
func FindArtifact(artifacts []entities.Artifact, classifier, artifactType string) *entities.Artifact {
	index := slices.IndexFunc(artifacts, func(artifact entities.Artifact) bool {
		return artifact.Classifier == classifier && artifact.Type == artifactType
	})
	if index == -1 {
		return nil
	}
	return &artifacts[index]
}

// ResolveArtifacts selects the plugin jar to upload and its detached
// signature. When no jar carries the requested classifier and
// fallbackToMain is set, the project's main artifact is used instead and
// the signature is looked up by the main artifact's own classifier.
func ResolveArtifacts(artifacts []entities.Artifact, mainArtifact *entities.Artifact, classifier string, fallbackToMain bool) (*entities.Artifact, *entities.Artifact, error) {
	primary := FindArtifact(artifacts, classifier, JarType)
	if primary == nil {
		if !fallbackToMain || mainArtifact == nil {
			return nil, nil, &utils.MissingArtifactError{Classifier: classifier}
		}
		primary = mainArtifact
	}
	signature := FindArtifact(artifacts, primary.Classifier, SignatureType)
	if signature == nil {
		return nil, nil, &utils.MissingSignatureError{Artifact: primary.String()}
	}
	return primary, signature, nil
}
