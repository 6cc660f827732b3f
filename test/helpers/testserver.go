package helpers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"skinfeed_backend/internal/app"
	"skinfeed_backend/internal/config"
	"skinfeed_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer spins up the full HTTP stack against a fresh in-memory
// database. Config must already be loaded (see TestMain in the
// integration package).
func NewTestServer(t *testing.T) *TestServer {
	cfg := config.GetConfig()
	db := NewTestDB(t)

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server: server,
		DB:     db,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest performs a JSON request against the test server and
// returns the response together with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err, "failed to build request")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "failed to send request")

	resBodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err, "failed to read response body")
	defer res.Body.Close()

	return res, string(resBodyBytes)
}

// SendMultipart performs a multipart/form-data request. fileField may
// be empty to send only form fields.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, fileField, fileName string, fileData []byte) (*http.Response, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	require.NoError(t, err, "failed to build request")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "failed to send request")

	resBodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err, "failed to read response body")
	defer res.Body.Close()

	return res, string(resBodyBytes)
}

// CreateAndLoginUser creates a user directly in the database and logs
// in through the API, returning the issued token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string) (string, *models.User) {
	user := CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: password,
		FirstName:    "Test",
		LastName:     "User",
		SkinType:     "normal",
	})

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token, "token must not be empty")

	return loginResponse.Token, user
}

// MakeTestPNG renders a small solid-color PNG for upload tests.
func MakeTestPNG(t *testing.T, width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 80, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
