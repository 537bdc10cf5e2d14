package deploy

import (
	"strings"

	"github.com/cubeengine/ore-deploy-go/utils"
	"gopkg.in/ini.v1"
)

// ApiKeyPropertyPrefix is the project property namespace holding per-plugin
// API keys.
const ApiKeyPropertyPrefix = "ore.deploy.apikey."

// ResolveApiKey resolves the upload key for a plugin, consulting in order:
// the explicitly configured value, the project property
// "ore.deploy.apikey.<pluginID>", and the entry for pluginID in the lookup
// table at lookupPath. The first source yielding a non-blank value wins and
// later sources are not consulted. Blank values count as unset.
//
// A missing lookup file is treated as an empty source. A lookup file that
// exists but cannot be read or parsed yields a ConfigLoadError.
// An empty result means no source yielded a key.
func ResolveApiKey(explicit, pluginID string, properties map[string]string, lookupPath string) (string, error) {
	if apiKey := strings.TrimSpace(explicit); apiKey != "" {
		return apiKey, nil
	}
	if apiKey := strings.TrimSpace(properties[ApiKeyPropertyPrefix+pluginID]); apiKey != "" {
		return apiKey, nil
	}
	if lookupPath == "" {
		return "", nil
	}
	exists, err := utils.IsFileExists(lookupPath)
	if err != nil {
		return "", &utils.ConfigLoadError{Path: lookupPath, Cause: err}
	}
	if !exists {
		return "", nil
	}
	// The table is a flat properties file, one "pluginId=apiKey" per line.
	// It is re-read on every resolution and never cached.
	lookup, err := ini.Load(lookupPath)
	if err != nil {
		return "", &utils.ConfigLoadError{Path: lookupPath, Cause: err}
	}
	return strings.TrimSpace(lookup.Section("").Key(pluginID).String()), nil
}
