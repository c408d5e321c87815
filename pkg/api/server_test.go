package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/pkg/auth"
	"github.com/inventor-project/symon/pkg/config"
	"github.com/inventor-project/symon/pkg/logging"
	"github.com/inventor-project/symon/pkg/models"
	"github.com/inventor-project/symon/pkg/services"
	testdb "github.com/inventor-project/symon/test/database"
)

// testClientIP is what httptest.NewRequest reports as the remote address.
const testClientIP = "192.0.2.1"

func newTestServer(t *testing.T) (*Server, *ent.Client) {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client

	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "config.ini"))
	require.NoError(t, err)
	require.NoError(t, config.EnsureDefaults(cfg, dir))
	require.NoError(t, cfg.Set("authorization", "allow_dev_bypass_bool", "True"))

	accounting, err := logging.NewAccounting(filepath.Join(dir, "accounting.log"))
	require.NoError(t, err)

	server := NewServer(cfg, accounting, dbClient.DB(), Services{
		Tests:         services.NewTestService(client),
		Requests:      services.NewRequestService(client),
		Events:        services.NewEventService(client),
		Runs:          services.NewRunService(client),
		Results:       services.NewResultService(client),
		OldParams:     services.NewOldParamService(client),
		MultiResults:  services.NewMultiResultService(client),
		Orchestrators: services.NewOrchestratorService(client),
		Nonces:        services.NewNonceService(client),
	})
	return server, client
}

func sessionToken(t *testing.T, s *Server, ip string) string {
	t.Helper()
	token, err := auth.CreateToken("orch-1", ip, 3600,
		s.cfg.String("authentication", "token_key"))
	require.NoError(t, err)
	return token
}

func freshNonce(t *testing.T) string {
	t.Helper()
	buf := make([]byte, 16)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return hex.EncodeToString(buf)
}

// doRequest performs one API call with a valid session token and the dev
// authorization bypass.
func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, s, testClientIP))
	req.Header.Set("Authorization-Hmac", devBypassValue)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createTestViaAPI(t *testing.T, s *Server) models.TestResponse {
	t.Helper()
	body := `{"name": "dummy", "description": "fixture", "state": "enabled",
		"test_params": "{}", "timeout": 30, "key_ro": "ro-key", "key_rw": "rw-key"}`
	rec := doRequest(t, s, http.MethodPost, "/test", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[models.TestResponse](t, rec)
}

func TestGetTimeIsPublic(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/time", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.TimeResponse](t, rec)
	assert.InDelta(t, float64(time.Now().Unix()), body.Time, 5)
}

func TestPostTokenIssuesBoundSession(t *testing.T) {
	s, _ := newTestServer(t)

	password := s.cfg.String("authentication", "password")
	form := url.Values{}
	form.Set("username", "orch-1")
	form.Set("password", auth.CalculateHash("orch-1"+password))

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[models.TokenResponse](t, rec)

	data, err := auth.ParseToken(body.AccessToken, s.cfg.String("authentication", "token_key"))
	require.NoError(t, err)
	assert.Equal(t, "orch-1", data.OrchestratorName)
	assert.Equal(t, testClientIP, data.OrchestratorIP)

	// Logging in registers the orchestrator.
	rec = doRequest(t, s, http.MethodGet, "/system/orchestrators", "")
	require.Equal(t, http.StatusOK, rec.Code)
	orchestrators := decodeBody[models.OrchestratorsResponse](t, rec)
	require.Len(t, orchestrators.Orchestrators, 1)
	assert.Equal(t, "orch-1", orchestrators.Orchestrators[0].Name)
}

func TestPostTokenRejectsWrongProof(t *testing.T) {
	s, _ := newTestServer(t)

	form := url.Values{}
	form.Set("username", "orch-1")
	form.Set("password", "not-a-proof")

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, http.StatusUnauthorized, body.Error.ErrorCode)
}

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/test/all", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "Missing bearer token.", body.Error.Description)
}

func TestSessionAuthRejectsForeignAddress(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/test/all", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, s, "198.51.100.7"))
	req.Header.Set("Authorization-Hmac", devBypassValue)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "The token was assigned to a different IP.", body.Error.Description)
}

func TestRequestAuthorizationWithRootDigest(t *testing.T) {
	s, _ := newTestServer(t)
	require.NoError(t, s.cfg.Set("authorization", "allow_dev_bypass_bool", "False"))

	rootKey := s.cfg.String("authorization", "root_password")
	timeHeader := fmt.Sprintf("%f", float64(time.Now().UnixNano())/float64(time.Second))
	nonce := freshNonce(t)
	digest := auth.ComputeHMAC(http.MethodGet, "/test/all", "", "", timeHeader, nonce, rootKey)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test/all", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken(t, s, testClientIP))
		req.Header.Set("Authorization-Hmac", digest)
		req.Header.Set("Authorization-Time", timeHeader)
		req.Header.Set("Authorization-Nonce", nonce)
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, req)
		return rec
	}

	rec := send()
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The exact same request is a replay.
	rec = send()
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "The nonce has already been used.", body.Error.Description)
}

func TestRequestAuthorizationRejectsWrongKey(t *testing.T) {
	s, _ := newTestServer(t)
	require.NoError(t, s.cfg.Set("authorization", "allow_dev_bypass_bool", "False"))

	timeHeader := fmt.Sprintf("%f", float64(time.Now().UnixNano())/float64(time.Second))
	nonce := freshNonce(t)
	digest := auth.ComputeHMAC(http.MethodGet, "/test/all", "", "", timeHeader, nonce, "not-the-root-key")

	req := httptest.NewRequest(http.MethodGet, "/test/all", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, s, testClientIP))
	req.Header.Set("Authorization-Hmac", digest)
	req.Header.Set("Authorization-Time", timeHeader)
	req.Header.Set("Authorization-Nonce", nonce)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "Wrong authorization token.", body.Error.Description)
}

func TestDevBypassIsOffByDefault(t *testing.T) {
	s, _ := newTestServer(t)
	require.NoError(t, s.cfg.Set("authorization", "allow_dev_bypass_bool", "False"))

	rec := doRequest(t, s, http.MethodGet, "/test/all", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateAndFetchTest(t *testing.T) {
	s, _ := newTestServer(t)

	created := createTestViaAPI(t, s)
	assert.Equal(t, 1, created.Version)

	rec := doRequest(t, s, http.MethodGet, fmt.Sprintf("/test/%d", created.IDTest), "")
	require.Equal(t, http.StatusOK, rec.Code)
	fetched := decodeBody[models.TestResponse](t, rec)
	assert.Equal(t, created.IDTest, fetched.IDTest)
	assert.Equal(t, "dummy", fetched.Name)
}

func TestGetMissingTest(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/test/424242", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "Test doesn't exist", body.Error.Description)

	rec = doRequest(t, s, http.MethodGet, "/test/not-a-number", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostTestRequestReturnsRequestID(t *testing.T) {
	s, client := newTestServer(t)

	created := createTestViaAPI(t, s)
	rec := doRequest(t, s, http.MethodPost, fmt.Sprintf("/test/%d/request", created.IDTest), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var requestID int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &requestID))
	_, err := client.Request.Get(context.Background(), requestID)
	assert.NoError(t, err)
}

func TestPatchTestBumpsVersion(t *testing.T) {
	s, _ := newTestServer(t)

	created := createTestViaAPI(t, s)
	body := `{"description": "fixture", "state": "enabled",
		"test_params": "{\"sleep\": 2}", "timeout": 30}`
	rec := doRequest(t, s, http.MethodPatch, fmt.Sprintf("/test/%d", created.IDTest), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[models.TestResponse](t, rec)
	assert.Equal(t, 2, updated.Version)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/test/%d/old_params/1", created.IDTest), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMultiResultFlow(t *testing.T) {
	s, client := newTestServer(t)
	ctx := context.Background()

	first := createTestViaAPI(t, s)
	second := createTestViaAPI(t, s)

	rec := doRequest(t, s, http.MethodPost, "/multi-results/init", `{"key": "view-key"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decodeBody[models.MultiResultIDResponse](t, rec)

	addTest := func(idTest int, hash string) *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"id_test": %d, "hash": "%s"}`, idTest, hash)
		return doRequest(t, s, http.MethodPost,
			fmt.Sprintf("/multi-results/%d", view.IDMultiResult), body)
	}
	hashFor := func(idTest int) string {
		return auth.CalculateHash(fmt.Sprintf("%s%d%d", "view-key", view.IDMultiResult, idTest))
	}

	rec = addTest(first.IDTest, hashFor(first.IDTest))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = addTest(second.IDTest, hashFor(second.IDTest))
	require.Equal(t, http.StatusOK, rec.Code)
	ids := decodeBody[models.MultiResultTestIDsResponse](t, rec)
	assert.Equal(t, fmt.Sprintf("%d,%d", first.IDTest, second.IDTest), ids.TestIDs)

	rec = addTest(first.IDTest, "wrong-hash")
	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "Wrong multi tests hash value.", body.Error.Description)

	result := client.Result.Create().
		SetIDTest(first.IDTest).
		SetVersion(1).
		SetPlanned(time.Now().Add(-time.Minute)).
		SetFinished(time.Now()).
		SetStatus("success").
		SetData(`{"value": 1}`).
		SaveX(ctx)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/multi-results/%d", view.IDMultiResult), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	download := decodeBody[models.MultiResultResponse](t, rec)
	assert.Equal(t, result.ID, download.LastCheckedID)
	require.Contains(t, download.Results, first.IDTest)
	require.Len(t, download.Results[first.IDTest].Results, 1)
	assert.Empty(t, download.Results[second.IDTest].Results)

	// Nothing new since the pinned id.
	rec = doRequest(t, s, http.MethodGet,
		fmt.Sprintf("/multi-results/%d?since_id=%d", view.IDMultiResult, download.LastCheckedID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	again := decodeBody[models.MultiResultResponse](t, rec)
	assert.Empty(t, again.Results[first.IDTest].Results)
}

func TestSystemStatusReportsHealthyDatabase(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/system/status", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[models.StatusResponse](t, rec)
	assert.Equal(t, "healthy", body.Status)
	require.NotNil(t, body.Database)
	assert.Equal(t, "healthy", body.Database.Status)
	assert.GreaterOrEqual(t, body.Database.OpenConnections, 1)
}

func TestSystemStatusRequiresSession(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/system/status", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSystemConfigShowsOnlyPublicSection(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/system/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.ConfigResponse](t, rec)
	require.Contains(t, body.Options, "public")
	assert.NotContains(t, body.Options, "authentication")
	assert.NotEmpty(t, body.Options["public"]["version"])
}

func TestPatchSystemConfig(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"options": {"tests": {"process_deadline_terminating_int": "120"}}}`
	rec := doRequest(t, s, http.MethodPatch, "/system/config", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	changes := decodeBody[models.ConfigChangesResponse](t, rec)
	assert.Equal(t, "updated", changes.Options["tests"]["process_deadline_terminating_int"])
	assert.Equal(t, 120, s.cfg.Int("tests", "process_deadline_terminating_int"))
}

func TestGetTestResultsStampsDownloadTime(t *testing.T) {
	s, client := newTestServer(t)

	created := createTestViaAPI(t, s)
	rec := doRequest(t, s, http.MethodGet, fmt.Sprintf("/test/%d/results", created.IDTest), "")
	require.Equal(t, http.StatusOK, rec.Code)

	stamped := client.Test.GetX(context.Background(), created.IDTest)
	assert.NotNil(t, stamped.LastDownloadedTime)
}
