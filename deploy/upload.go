package deploy

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/cubeengine/ore-deploy-go/entities"
	"github.com/cubeengine/ore-deploy-go/utils"
)

const versionsEndpointFormat = "%s/api/projects/%s/versions/%s"

// UploadClient submits one plugin version to the remote repository as a
// single multipart POST. It holds no mutable state between calls and is safe
// to use from independent invocations concurrently.
type UploadClient struct {
	baseURL string
	client  *http.Client
	logger  utils.Log
}

func NewUploadClient(baseURL string) *UploadClient {
	return &UploadClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{},
		logger:  &utils.NullLog{},
	}
}

func (uc *UploadClient) SetLogger(logger utils.Log) {
	uc.logger = logger
}

// VersionsURL builds the upload endpoint for a plugin version. The path
// template is fixed, only the host is configurable.
func (uc *UploadClient) VersionsURL(pluginID, version string) string {
	return fmt.Sprintf(versionsEndpointFormat, uc.baseURL, url.PathEscape(pluginID), url.PathEscape(version))
}

// Upload performs the single best-effort upload attempt. A nil error means
// the endpoint answered 201 Created. Any other status yields an
// UploadRejectedError with the drained response body; network and I/O
// failures yield a TransportError. There is no retry.
func (uc *UploadClient) Upload(request *entities.UploadRequest) (err error) {
	body, contentType, err := buildMultipartBody(request)
	if err != nil {
		return &utils.TransportError{Cause: err}
	}
	target := uc.VersionsURL(request.PluginID, request.Version)
	uc.logger.Debug("POST", target)
	response, err := uc.client.Post(target, contentType, body)
	if err != nil {
		return &utils.TransportError{Cause: err}
	}
	defer func() {
		err = errors.Join(err, response.Body.Close())
	}()
	// Drain the body on every path to release the connection and to keep the
	// server's diagnostic text.
	responseBody, readErr := io.ReadAll(response.Body)
	if readErr != nil {
		return &utils.TransportError{Cause: readErr}
	}
	if response.StatusCode != http.StatusCreated {
		return &utils.UploadRejectedError{
			Status:     response.Status,
			StatusCode: response.StatusCode,
			Body:       string(responseBody),
			Message:    extractErrorMessage(responseBody),
		}
	}
	return nil
}

// The parts and their order are part of the endpoint contract.
func buildMultipartBody(request *entities.UploadRequest) (body *bytes.Buffer, contentType string, err error) {
	body = &bytes.Buffer{}
	form := multipart.NewWriter(body)
	buildFlag := strconv.FormatBool(!request.IsSnapshot)
	if err = form.WriteField("apiKey", request.APIKey); err != nil {
		return
	}
	if err = form.WriteField("channel", request.Channel); err != nil {
		return
	}
	if err = writeFilePart(form, "pluginFile", request.ArtifactFileName, request.ArtifactFile); err != nil {
		return
	}
	if err = writeFilePart(form, "pluginSig", request.SignatureFileName, request.SignatureFile); err != nil {
		return
	}
	if err = form.WriteField("forumPost", buildFlag); err != nil {
		return
	}
	if err = form.WriteField("recommended", buildFlag); err != nil {
		return
	}
	err = form.Close()
	contentType = form.FormDataContentType()
	return
}

func writeFilePart(form *multipart.Writer, fieldName, fileName, filePath string) (err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	part, err := form.CreateFormFile(fieldName, fileName)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}

// extractErrorMessage pulls a human-readable message out of a JSON error
// body. The raw body is kept either way, this is diagnostics only.
func extractErrorMessage(body []byte) string {
	for _, key := range []string{"error", "message", "user_error"} {
		if value, err := jsonparser.GetString(body, key); err == nil && value != "" {
			return value
		}
	}
	return ""
}
