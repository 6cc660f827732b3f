package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"skinfeed_backend/internal/models"
	"skinfeed_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postResponse struct {
	PostID           string   `json:"postId"`
	UserID           string   `json:"userId"`
	Content          string   `json:"content"`
	LikeCount        int64    `json:"likeCount"`
	Liked            bool     `json:"liked"`
	ImageIDs         []string `json:"imageIds"`
	UserName         string   `json:"userName"`
	ProfilePictureID *string  `json:"profilePictureId"`
}

func TestCreatePost_WithImage(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("poster"),
		PasswordHash: "password123",
		FirstName:    "Aida",
		LastName:     "Nurlanova",
	})

	fields := map[string]string{
		"userId":  user.ID,
		"content": "My morning routine",
	}
	res, bodyStr := ts.SendMultipart(t, http.MethodPost, "/api/add-posts", "", fields, "file", "photo.png", helpers.MakeTestPNG(t, 8, 8))
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		PostID string `json:"postId"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.PostID)

	// The post and one image row must exist, written in the same tx.
	var post models.Post
	require.NoError(t, ts.DB.First(&post, "id = ?", created.PostID).Error)
	assert.Equal(t, "My morning routine", post.Content)

	var imageCount int64
	ts.DB.Model(&models.PostImage{}).Where("post_id = ?", created.PostID).Count(&imageCount)
	assert.EqualValues(t, 1, imageCount)
}

func TestCreatePost_TextOnly(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("textposter"),
		PasswordHash: "password123",
		FirstName:    "Madi",
		LastName:     "Askarov",
	})

	fields := map[string]string{
		"userId":  user.ID,
		"content": "No photo today",
	}
	res, bodyStr := ts.SendMultipart(t, http.MethodPost, "/api/add-posts", "", fields, "", "", nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
}

func TestCreatePost_UnknownUser(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)

	fields := map[string]string{
		"userId":  "00000000-0000-0000-0000-000000000000",
		"content": "ghost post",
	}
	res, bodyStr := ts.SendMultipart(t, http.MethodPost, "/api/add-posts", "", fields, "", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestFeed_PaginationAndAnnotations(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	author := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("author"),
		PasswordHash: "password123",
		FirstName:    "Alia",
		LastName:     "Kairat",
	})
	viewer := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("viewer"),
		PasswordHash: "password123",
		FirstName:    "Viewer",
		LastName:     "One",
	})

	// Explicit timestamps keep the newest-first ordering unambiguous.
	base := time.Now().Add(-time.Hour)
	posts := make([]*models.Post, 5)
	for i := 0; i < 5; i++ {
		post := &models.Post{
			UserID:  author.ID,
			Content: fmt.Sprintf("post number %d", i),
		}
		post.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, ts.DB.Create(post).Error)
		posts[i] = post
	}

	// Viewer likes the newest post.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/posts/"+posts[4].ID+"/like", "", map[string]interface{}{
		"userId": viewer.ID,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	seen := map[string]bool{}
	var firstPage []postResponse

	// Pages of two: no overlap, no gap, newest first.
	for offset := 0; offset < 5; offset += 2 {
		url := fmt.Sprintf("/api/posts?offset=%d&limit=2&userId=%s", offset, viewer.ID)
		res, bodyStr := ts.SendRequest(t, http.MethodGet, url, "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

		var page []postResponse
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &page))
		if offset == 0 {
			firstPage = page
		}
		for _, p := range page {
			assert.False(t, seen[p.PostID], "post %s appeared on two pages", p.PostID)
			seen[p.PostID] = true
		}
	}
	assert.Len(t, seen, 5)

	// Newest post first, annotated for this viewer.
	require.NotEmpty(t, firstPage)
	newest := firstPage[0]
	assert.Equal(t, posts[4].ID, newest.PostID)
	assert.Equal(t, "Alia Kairat", newest.UserName)
	assert.EqualValues(t, 1, newest.LikeCount)
	assert.True(t, newest.Liked)
	assert.NotNil(t, newest.ImageIDs, "imageIds must be an array, not null")

	// A different viewer sees the same count but liked=false.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/posts?offset=0&limit=2&userId="+author.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	var authorPage []postResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &authorPage))
	require.NotEmpty(t, authorPage)
	assert.EqualValues(t, 1, authorPage[0].LikeCount)
	assert.False(t, authorPage[0].Liked)
}

func TestFeed_DefaultPageSize(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	author := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("prolific"),
		PasswordHash: "password123",
		FirstName:    "Prolific",
		LastName:     "Author",
	})

	for i := 0; i < 35; i++ {
		helpers.CreateTestPost(t, ts.DB, author.ID, fmt.Sprintf("entry %d", i))
	}

	// No limit in the query: the feed serves 30 rows.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/posts", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var page []postResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &page))
	assert.Len(t, page, 30)
}

func TestToggleLike_Roundtrip(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("liker"),
		PasswordHash: "password123",
		FirstName:    "Liker",
		LastName:     "User",
	})
	post := helpers.CreateTestPost(t, ts.DB, user.ID, "like me")

	likeURL := "/api/posts/" + post.ID + "/like"
	body := map[string]interface{}{"userId": user.ID}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, likeURL, "", body)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"liked":true`)

	var count int64
	ts.DB.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", post.ID, user.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	// Second toggle removes the like.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, likeURL, "", body)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"liked":false`)

	ts.DB.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", post.ID, user.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestToggleLike_UnknownPost(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("ghostliker"),
		PasswordHash: "password123",
		FirstName:    "Ghost",
		LastName:     "Liker",
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/posts/no-such-post/like", "", map[string]interface{}{
		"userId": user.ID,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}

func TestComments_CreateAndList(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	author := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("commentauthor"),
		PasswordHash: "password123",
		FirstName:    "Saule",
		LastName:     "Amanova",
	})
	post := helpers.CreateTestPost(t, ts.DB, author.ID, "open thread")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/posts/"+post.ID+"/comment", "", map[string]interface{}{
		"userId":  author.ID,
		"content": "first!",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/posts/"+post.ID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var comments []struct {
		CommentID string `json:"commentId"`
		Content   string `json:"content"`
		UserName  string `json:"userName"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "first!", comments[0].Content)
	assert.Equal(t, "Saule Amanova", comments[0].UserName)
}

func TestComment_WhitespaceOnlyRejected(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("wscommenter"),
		PasswordHash: "password123",
		FirstName:    "Ws",
		LastName:     "Commenter",
	})
	post := helpers.CreateTestPost(t, ts.DB, user.ID, "quiet post")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/posts/"+post.ID+"/comment", "", map[string]interface{}{
		"userId":  user.ID,
		"content": "   \t  ",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	var count int64
	ts.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestComment_UnknownPost(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        helpers.UniqueEmail("lostcommenter"),
		PasswordHash: "password123",
		FirstName:    "Lost",
		LastName:     "Commenter",
	})

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/posts/missing/comment", "", map[string]interface{}{
		"userId":  user.ID,
		"content": "hello?",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, bodyStr)
}
