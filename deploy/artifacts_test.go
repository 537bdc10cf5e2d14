package deploy

import (
	"testing"

	"github.com/cubeengine/ore-deploy-go/entities"
	"github.com/cubeengine/ore-deploy-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attachedArtifacts = []entities.Artifact{
	{Classifier: "", Type: "jar", File: "target/myplugin-1.0.0.jar"},
	{Classifier: "", Type: "jar.asc", File: "target/myplugin-1.0.0.jar.asc"},
	{Classifier: "sources", Type: "jar", File: "target/myplugin-1.0.0-sources.jar"},
	{Classifier: "sources", Type: "jar.asc", File: "target/myplugin-1.0.0-sources.jar.asc"},
}

func TestFindArtifact(t *testing.T) {
	testCases := []struct {
		name         string
		classifier   string
		artifactType string
		expectedFile string
	}{
		{name: "main jar", classifier: "", artifactType: "jar", expectedFile: "target/myplugin-1.0.0.jar"},
		{name: "main signature", classifier: "", artifactType: "jar.asc", expectedFile: "target/myplugin-1.0.0.jar.asc"},
		{name: "classified jar", classifier: "sources", artifactType: "jar", expectedFile: "target/myplugin-1.0.0-sources.jar"},
		{name: "unknown classifier", classifier: "javadoc", artifactType: "jar", expectedFile: ""},
		{name: "unknown type", classifier: "", artifactType: "zip", expectedFile: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			found := FindArtifact(attachedArtifacts, testCase.classifier, testCase.artifactType)
			if testCase.expectedFile == "" {
				assert.Nil(t, found)
				return
			}
			require.NotNil(t, found)
			assert.Equal(t, testCase.expectedFile, found.File)
			assert.Equal(t, testCase.artifactType, found.Type)
		})
	}
}

func TestFindArtifactReturnsFirstMatch(t *testing.T) {
	duplicates := []entities.Artifact{
		{Type: "jar", File: "first.jar"},
		{Type: "jar", File: "second.jar"},
	}
	found := FindArtifact(duplicates, "", "jar")
	require.NotNil(t, found)
	assert.Equal(t, "first.jar", found.File)
}

func TestResolveArtifacts(t *testing.T) {
	mainArtifact := &attachedArtifacts[0]

	primary, signature, err := ResolveArtifacts(attachedArtifacts, mainArtifact, "sources", false)
	assert.NoError(t, err)
	require.NotNil(t, primary)
	require.NotNil(t, signature)
	assert.Equal(t, "target/myplugin-1.0.0-sources.jar", primary.File)
	assert.Equal(t, "target/myplugin-1.0.0-sources.jar.asc", signature.File)
}

func TestResolveArtifactsFallsBackToMainArtifact(t *testing.T) {
	mainArtifact := &attachedArtifacts[0]

	primary, signature, err := ResolveArtifacts(attachedArtifacts, mainArtifact, "javadoc", true)
	assert.NoError(t, err)
	require.NotNil(t, primary)
	require.NotNil(t, signature)
	assert.Equal(t, "target/myplugin-1.0.0.jar", primary.File)
	assert.Equal(t, "target/myplugin-1.0.0.jar.asc", signature.File)
}

func TestResolveArtifactsMissingArtifact(t *testing.T) {
	_, _, err := ResolveArtifacts(attachedArtifacts, &attachedArtifacts[0], "javadoc", false)
	missing := &utils.MissingArtifactError{}
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "javadoc", missing.Classifier)
}

func TestResolveArtifactsMissingSignature(t *testing.T) {
	unsigned := []entities.Artifact{
		{Classifier: "sources", Type: "jar", File: "target/myplugin-1.0.0-sources.jar"},
	}
	_, _, err := ResolveArtifacts(unsigned, nil, "sources", false)
	missing := &utils.MissingSignatureError{}
	assert.ErrorAs(t, err, &missing)
}
