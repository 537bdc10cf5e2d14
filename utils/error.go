package utils

import (
	"fmt"
)

// MissingArtifactError is returned when no build output matches the requested
// classifier and fallback to the main artifact is disabled.
type MissingArtifactError struct {
	Classifier string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("artifact with classifier '%s' was not found", e.Classifier)
}

// MissingSignatureError is returned when a primary artifact was resolved but
// no detached signature matches its classifier.
type MissingSignatureError struct {
	Artifact string
}

func (e *MissingSignatureError) Error() string {
	return "no signature has been attached for the selected artifact: " + e.Artifact
}

// UnreadableFileError is returned when a resolved file is missing, not a
// regular file, or not readable.
type UnreadableFileError struct {
	Path  string
	Cause error
}

func (e *UnreadableFileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unable to read the file '%s': %s", e.Path, e.Cause)
	}
	return fmt.Sprintf("unable to read the file '%s'", e.Path)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Cause
}

// MissingApiKeyError is returned when no configured source yielded an API key.
type MissingApiKeyError struct {
	PluginID string
}

func (e *MissingApiKeyError) Error() string {
	return fmt.Sprintf("no API key found for the plugin id '%s'", e.PluginID)
}

// ConfigLoadError is returned when the API key lookup table exists but could
// not be read or parsed.
type ConfigLoadError struct {
	Path  string
	Cause error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load API key lookup table '%s': %s", e.Path, e.Cause)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Cause
}

// UploadRejectedError is returned when the remote endpoint answered with a
// status other than 201 Created. Body carries the drained response text.
type UploadRejectedError struct {
	Status     string
	StatusCode int
	Body       string
	Message    string
}

func (e *UploadRejectedError) Error() string {
	message := "plugin upload failed because the remote endpoint returned an unsuccessful response: " + e.Status
	if e.Message != "" {
		message += " (" + e.Message + ")"
	}
	if e.Body != "" {
		message += "\n" + e.Body
	}
	return message
}

// TransportError is returned on network or I/O failure while performing the
// upload request.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return "upload failed due to IO error: " + e.Cause.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
