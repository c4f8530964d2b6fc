package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-veritas/internal/config"
	"github.com/sbilibin2017/gw-veritas/internal/handlers"
	"github.com/sbilibin2017/gw-veritas/internal/models"
	"github.com/sbilibin2017/gw-veritas/internal/repositories"
	"github.com/sbilibin2017/gw-veritas/internal/services"
	"github.com/sbilibin2017/gw-veritas/internal/testutil"
	"github.com/sbilibin2017/gw-veritas/internal/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), &config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func testConfig() *config.Config {
	return &config.Config{
		AppHost:           "127.0.0.1",
		AppPort:           "8080",
		JWTSecretKey:      "0123456789abcdef0123456789abcdef",
		JWTExp:            30 * time.Minute,
		LockTimeout:       5 * time.Second,
		AssetCacheTTL:     time.Minute,
		MaxPendingPerUser: 3,
		DefaultPageSize:   50,
		MaxPageSize:       100,
		UploadBaseURL:     "https://files.example.com",
		UploadExpiry:      time.Hour,
	}
}

// call sends a JSON request and decodes the JSON response into out when out is not nil.
func call(t *testing.T, srv *httptest.Server, method, path, token string, body, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func login(t *testing.T, srv *httptest.Server, identifier, password string) string {
	t.Helper()
	var resp handlers.LoginResponse
	code := call(t, srv, http.MethodPost, "/api/login", "", handlers.LoginRequest{Identifier: identifier, Password: password}, &resp)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func TestRouter_EndToEnd(t *testing.T) {
	db := testutil.StartPostgres(t)
	rdb := testutil.StartRedis(t)
	cfg := testConfig()

	srv := httptest.NewServer(newRouter(cfg, db, rdb, nil))
	defer srv.Close()

	// Admins are only created out of band.
	auth := services.NewAuthService(
		repositories.NewUserReadRepository(db, tx.FromContext),
		repositories.NewUserWriteRepository(db, tx.FromContext),
		nil,
	)
	_, err := auth.CreateAdmin(context.Background(), "root", "Admin1234", "root@example.com")
	require.NoError(t, err)

	// Register and log in a contributor
	var user handlers.UserResponse
	code := call(t, srv, http.MethodPost, "/api/register", "",
		handlers.RegisterRequest{Username: "Alice", Password: "Secret123", Email: "alice@example.com"}, &user)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)

	code = call(t, srv, http.MethodPost, "/api/register", "",
		handlers.RegisterRequest{Username: "ALICE", Password: "Secret123", Email: "other@example.com"}, nil)
	assert.Equal(t, http.StatusConflict, code)

	userToken := login(t, srv, "alice@example.com", "Secret123")
	adminToken := login(t, srv, "root", "Admin1234")

	// Anonymous callers cannot submit
	code = call(t, srv, http.MethodPost, "/api/submissions", "", handlers.SubmissionRequest{}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Submit up to the pending limit
	var ids []int64
	for i := 0; i < cfg.MaxPendingPerUser; i++ {
		var c models.Contribution
		code = call(t, srv, http.MethodPost, "/api/submissions", userToken, handlers.SubmissionRequest{
			Title: fmt.Sprintf("Idea %d", i), Description: "description", Type: "idea",
		}, &c)
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, models.StatusPending, c.Status)
		ids = append(ids, c.ID)
	}
	code = call(t, srv, http.MethodPost, "/api/submissions", userToken, handlers.SubmissionRequest{
		Title: "One too many", Description: "description", Type: "idea",
	}, nil)
	assert.Equal(t, http.StatusConflict, code)

	// Contributors cannot reach admin routes
	code = call(t, srv, http.MethodGet, "/api/admin/pending", userToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// Queue is oldest first
	var queue models.ContributionPage
	code = call(t, srv, http.MethodGet, "/api/admin/pending?limit=2", adminToken, nil, &queue)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, queue.Data, 2)
	assert.Equal(t, ids[0], queue.Data[0].ID)
	assert.Equal(t, 3, queue.Pagination.Total)
	require.NotNil(t, queue.Data[0].User)
	assert.Equal(t, "alice", queue.Data[0].User.Username)

	// Warm the catalog cache while it is empty
	var assets models.ContributionPage
	code = call(t, srv, http.MethodGet, "/api/assets", "", nil, &assets)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, assets.Data)

	// Approve, then try again
	var verified handlers.VerifyResponse
	code = call(t, srv, http.MethodPost, fmt.Sprintf("/api/admin/verify/%d", ids[0]), adminToken,
		handlers.VerifyRequest{Decision: "APPROVE"}, &verified)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.OutcomeApplied, verified.Outcome)
	assert.Equal(t, models.StatusVerified, verified.Contribution.Status)

	var again handlers.VerifyResponse
	code = call(t, srv, http.MethodPost, fmt.Sprintf("/api/admin/verify/%d", ids[0]), adminToken,
		handlers.VerifyRequest{Decision: "REJECT"}, &again)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.OutcomeAlreadyDecided, again.Outcome)
	assert.Equal(t, models.StatusVerified, again.Contribution.Status)

	// Approval frees a pending slot and shows up in the catalog
	code = call(t, srv, http.MethodPost, "/api/submissions", userToken, handlers.SubmissionRequest{
		Title: "Fits now", Description: "description", Type: "work",
	}, nil)
	assert.Equal(t, http.StatusCreated, code)

	code = call(t, srv, http.MethodGet, "/api/assets", "", nil, &assets)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, assets.Data, 1)
	assert.Equal(t, ids[0], assets.Data[0].ID)

	// Both attempts are on the audit trail
	var logs []models.VerificationLog
	code = call(t, srv, http.MethodGet, fmt.Sprintf("/api/admin/contributions/%d/logs", ids[0]), adminToken, nil, &logs)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, logs, 2)
	assert.False(t, logs[0].IsDuplicate)
	assert.True(t, logs[1].IsDuplicate)

	// Owners see their own contributions only
	var mine models.ContributionPage
	code = call(t, srv, http.MethodGet, "/api/submissions/mine", userToken, nil, &mine)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4, mine.Pagination.Total)

	code = call(t, srv, http.MethodGet, fmt.Sprintf("/api/submissions/%d", ids[1]), adminToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, code)

	var presigned models.PresignedUpload
	code = call(t, srv, http.MethodPost, "/api/assets/presign", userToken,
		handlers.PresignRequest{Filename: "logo.png", ContentType: "image/png"}, &presigned)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, presigned.FileURL, "https://files.example.com/files/")

	// API docs are served
	resp, err := srv.Client().Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
