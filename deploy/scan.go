package deploy

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cubeengine/ore-deploy-go/entities"
	"github.com/pkg/errors"
)

// ScanArtifacts reduces a build output directory to the ordered artifact
// sequence the deployer consumes. Files named
// "<finalName>[-classifier].jar[.asc]" become artifact records; the
// classifier-less jar, when present, is returned as the project's main
// artifact. Directory entries are visited in lexical order.
func ScanArtifacts(outputDir, finalName, version string) ([]entities.Artifact, *entities.Artifact, error) {
	dirEntries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to scan build output directory")
	}

	isSnapshot := entities.IsSnapshotVersion(version)
	var artifacts []entities.Artifact
	mainIndex := -1
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		classifier, artifactType, ok := splitArtifactName(dirEntry.Name(), finalName)
		if !ok {
			continue
		}
		artifacts = append(artifacts, entities.Artifact{
			Classifier: classifier,
			Type:       artifactType,
			File:       filepath.Join(outputDir, dirEntry.Name()),
			IsSnapshot: isSnapshot,
		})
		if classifier == "" && artifactType == JarType {
			mainIndex = len(artifacts) - 1
		}
	}

	if mainIndex == -1 {
		return artifacts, nil, nil
	}
	return artifacts, &artifacts[mainIndex], nil
}

func splitArtifactName(fileName, finalName string) (classifier, artifactType string, ok bool) {
	if !strings.HasPrefix(fileName, finalName) {
		return "", "", false
	}
	rest := strings.TrimPrefix(fileName, finalName)
	switch {
	case rest == ".jar":
		return "", JarType, true
	case rest == ".jar.asc":
		return "", SignatureType, true
	case strings.HasPrefix(rest, "-") && strings.HasSuffix(rest, ".jar.asc"):
		return strings.TrimSuffix(strings.TrimPrefix(rest, "-"), ".jar.asc"), SignatureType, true
	case strings.HasPrefix(rest, "-") && strings.HasSuffix(rest, ".jar"):
		return strings.TrimSuffix(strings.TrimPrefix(rest, "-"), ".jar"), JarType, true
	}
	return "", "", false
}
