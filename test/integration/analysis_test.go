package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skinfeed_backend/internal/config"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSkinAnalysis(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("scores"),
		PasswordHash: "password123",
		FirstName:    "Scores",
		LastName:     "User",
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/save-skin-analysis", "", map[string]interface{}{
		"userID":       user.ID,
		"acneScore":    0.42,
		"bagsScore":    0.13,
		"rednessScore": 0.71,
		"healthScore":  0.88,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var score models.SkinAnalysisScore
	require.NoError(t, ts.DB.Where("user_id = ?", user.ID).First(&score).Error)
	assert.InDelta(t, 0.42, score.AcneScore, 1e-9)
	assert.InDelta(t, 0.88, score.HealthScore, 1e-9)
	assert.False(t, score.AnalysisDate.IsZero())
}

func TestSaveSkinAnalysis_UnknownUser(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/save-skin-analysis", "", map[string]interface{}{
		"userID":      "no-such-user",
		"acneScore":   0.1,
		"healthScore": 0.9,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestLatestSkinAnalysis(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("latest"),
		PasswordHash: "password123",
		FirstName:    "Latest",
		LastName:     "User",
	})

	// Nothing stored yet.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/skin-analysis/latest/"+user.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)

	// Rows are history; "latest" goes by analysis date, not insertion
	// order.
	old := &models.SkinAnalysisScore{
		UserID:       user.ID,
		AcneScore:    0.9,
		HealthScore:  0.2,
		AnalysisDate: time.Now().Add(-48 * time.Hour),
	}
	require.NoError(t, ts.DB.Create(old).Error)
	newest := &models.SkinAnalysisScore{
		UserID:       user.ID,
		AcneScore:    0.3,
		HealthScore:  0.8,
		AnalysisDate: time.Now().Add(-time.Hour),
	}
	require.NoError(t, ts.DB.Create(newest).Error)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/skin-analysis/latest/"+user.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var resp struct {
		UserID      string  `json:"userID"`
		AcneScore   float64 `json:"acneScore"`
		HealthScore float64 `json:"healthScore"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	assert.Equal(t, user.ID, resp.UserID)
	assert.InDelta(t, 0.3, resp.AcneScore, 1e-9)
	assert.InDelta(t, 0.8, resp.HealthScore, 1e-9)
}

func TestAnalyzeImage_Relay(t *testing.T) {
	// Not parallel: mutates the global analysis endpoint config.

	var gotFilename string
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		io.Copy(io.Discard, file)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"acne":0.12,"bags":0.34,"redness":0.56,"health":0.78}`))
	}))
	defer stub.Close()

	cfg := config.GetConfig()
	oldURL := cfg.Analysis.URL
	cfg.Analysis.URL = stub.URL
	defer func() { cfg.Analysis.URL = oldURL }()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendMultipart(t, http.MethodPost, "/api/analyze-image", "", nil, "file", "selfie.png", helpers.MakeTestPNG(t, 10, 10))
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// The remote JSON is relayed verbatim.
	assert.JSONEq(t, `{"acne":0.12,"bags":0.34,"redness":0.56,"health":0.78}`, bodyStr)
	assert.Equal(t, "selfie.png", gotFilename)
}

func TestAnalyzeImage_UpstreamFailure(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer stub.Close()

	cfg := config.GetConfig()
	oldURL := cfg.Analysis.URL
	cfg.Analysis.URL = stub.URL
	defer func() { cfg.Analysis.URL = oldURL }()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendMultipart(t, http.MethodPost, "/api/analyze-image", "", nil, "file", "selfie.png", helpers.MakeTestPNG(t, 10, 10))
	assert.Equal(t, http.StatusBadGateway, res.StatusCode, bodyStr)
}

func TestAnalyzeImage_NonImagePayload(t *testing.T) {
	var upstreamCalled bool
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer stub.Close()

	cfg := config.GetConfig()
	oldURL := cfg.Analysis.URL
	cfg.Analysis.URL = stub.URL
	defer func() { cfg.Analysis.URL = oldURL }()

	ts := helpers.NewTestServer(t)

	// A non-image upload is rejected locally, without an upstream call.
	res, bodyStr := ts.SendMultipart(t, http.MethodPost, "/api/analyze-image", "", nil, "file", "notes.txt", []byte("just some text"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
	assert.False(t, upstreamCalled)
}

func TestAnalyzeImage_MissingFile(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendMultipart(t, http.MethodPost, "/api/analyze-image", "", map[string]string{"note": "nothing"}, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}
