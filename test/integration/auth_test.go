package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"skinfeed_backend/internal/auth"
	"skinfeed_backend/internal/models"
	"skinfeed_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("signup")

	signupBody := map[string]interface{}{
		"email":     email,
		"password":  "super_password123",
		"firstName": "Aruzhan",
		"lastName":  "Serikova",
		"gender":    "female",
		"age":       24,
		"skinType":  "oily",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/signup", "", signupBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// The stored hash must not be the plaintext password.
	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)
	assert.NotEqual(t, "super_password123", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("super_password123", user.PasswordHash))
	assert.Equal(t, "oily", user.SkinType)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var loginResp struct {
		Token    string `json:"token"`
		UserID   string `json:"userID"`
		Email    string `json:"email"`
		UserName string `json:"userName"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResp))
	assert.Equal(t, user.ID, loginResp.UserID)
	assert.Equal(t, email, loginResp.Email)
	assert.Equal(t, "Aruzhan Serikova", loginResp.UserName)

	// Token claims must identify the same user.
	claims, err := auth.ParseToken(loginResp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, email, claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("wrongpass")
	helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "correct_password",
		FirstName:    "Dana",
		LastName:     "Bekova",
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    email,
		"password": "not_the_password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Incorrect password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "whatever123",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "User not found")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	email := helpers.UniqueEmail("duplicate")
	helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		PasswordHash: "password123",
		FirstName:    "First",
		LastName:     "User",
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/signup", "", map[string]interface{}{
		"email":     email,
		"password":  "password456",
		"firstName": "Second",
		"lastName":  "User",
		"skinType":  "dry",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestSignup_Validation(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "short password",
			body: map[string]interface{}{
				"email": helpers.UniqueEmail("shortpw"), "password": "short",
				"firstName": "A", "lastName": "B", "skinType": "dry",
			},
		},
		{
			name: "bad email",
			body: map[string]interface{}{
				"email": "not-an-email", "password": "password123",
				"firstName": "A", "lastName": "B", "skinType": "dry",
			},
		},
		{
			name: "unknown skin type",
			body: map[string]interface{}{
				"email": helpers.UniqueEmail("badskin"), "password": "password123",
				"firstName": "A", "lastName": "B", "skinType": "metallic",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/signup", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Server is running", bodyStr)
}
