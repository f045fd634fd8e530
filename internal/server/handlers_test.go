package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/inference"
	"github.com/jonathan/resume-analyzer/internal/model"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ---------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------

type fakeStore struct {
	analyses map[uuid.UUID]*db.Analysis
	feedback map[uuid.UUID][]db.Feedback
	saveErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		analyses: make(map[uuid.UUID]*db.Analysis),
		feedback: make(map[uuid.UUID][]db.Feedback),
	}
}

func (f *fakeStore) SaveAnalysis(_ context.Context, a *db.Analysis) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	id := uuid.New()
	stored := *a
	stored.ID = id
	f.analyses[id] = &stored
	return id, nil
}

func (f *fakeStore) GetAnalysis(_ context.Context, id uuid.UUID) (*db.Analysis, error) {
	return f.analyses[id], nil
}

func (f *fakeStore) ListAnalyses(_ context.Context, filters db.AnalysisFilters) ([]db.AnalysisSummary, error) {
	var out []db.AnalysisSummary
	for _, a := range f.analyses {
		if filters.JobCategory != "" && a.JobCategory != filters.JobCategory {
			continue
		}
		out = append(out, db.AnalysisSummary{
			ID:              a.ID,
			JobCategory:     a.JobCategory,
			Confidence:      a.Confidence,
			ExperienceLevel: a.ExperienceLevel,
			ResumePreview:   a.ResumePreview,
			Source:          a.Source,
			CreatedAt:       a.CreatedAt,
		})
	}
	return out, nil
}

func (f *fakeStore) DeleteAnalysis(_ context.Context, id uuid.UUID) error {
	if _, ok := f.analyses[id]; !ok {
		return fmt.Errorf("analysis not found: %s", id)
	}
	delete(f.analyses, id)
	return nil
}

func (f *fakeStore) SaveFeedback(_ context.Context, analysisID uuid.UUID, rating int, comment string) (uuid.UUID, error) {
	id := uuid.New()
	f.feedback[analysisID] = append(f.feedback[analysisID], db.Feedback{
		ID: id, AnalysisID: analysisID, Rating: rating, Comment: comment,
	})
	return id, nil
}

func (f *fakeStore) ListFeedback(_ context.Context, analysisID uuid.UUID) ([]db.Feedback, error) {
	return f.feedback[analysisID], nil
}

type fakeUsers struct {
	users map[uuid.UUID]*db.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUsers) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	id := uuid.New()
	f.users[id] = &db.User{ID: id, Name: name, Email: email, Phone: phone}
	return id, nil
}

func (f *fakeUsers) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

// ---------------------------------------------------------------------
// Test server setup
// ---------------------------------------------------------------------

func testEngine(t *testing.T) *inference.Engine {
	t.Helper()
	artifacts := &model.Artifacts{
		Vectorizer: &model.Vectorizer{
			Vocabulary: map[string]int{"python": 0, "sales": 1},
			Idf:        []float64{1.0, 1.0},
		},
		Classifier: &model.Classifier{
			Coefficients: [][]float64{{2.0, -1.0}, {-1.0, 2.0}},
			Intercepts:   []float64{0.0, 0.0},
		},
		LabelEncoder: &model.LabelEncoder{Classes: []string{"Engineering", "Sales"}},
	}
	engine, err := inference.NewEngine(artifacts)
	require.NoError(t, err)
	return engine
}

func newTestServer(t *testing.T, store AnalysisStore, users DBClient) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}

	return newServer(store, users, testEngine(t), jwtService, passwordConfig)
}

func doRequest(s *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

const testResume = "Senior Python developer with 10+ years of experience building Python services."

// ---------------------------------------------------------------------
// Prediction handlers
// ---------------------------------------------------------------------

func TestHandlePredict_Success(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: testResume})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Engineering", resp.JobCategory)
	assert.Greater(t, resp.Confidence, 0.0)
	assert.LessOrEqual(t, resp.Confidence, 1.0)
	assert.Contains(t, resp.Skills, "Python")
	assert.Equal(t, types.ExperienceSenior, resp.ExperienceLevel)
	assert.NotEmpty(t, resp.Summary)
	assert.NotEmpty(t, resp.ID)

	// Stored best-effort with a hash and preview, never the full text
	require.Len(t, store.analyses, 1)
	for _, a := range store.analyses {
		assert.Equal(t, "prediction", a.Source)
		assert.Len(t, a.ResumeHash, 64)
		assert.NotEmpty(t, a.ResumePreview)
	}
}

func TestHandlePredict_StorageFailureDoesNotFailRequest(t *testing.T) {
	store := newFakeStore()
	store.saveErr = fmt.Errorf("connection refused")
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: testResume})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.ID)
	assert.Equal(t, "Engineering", resp.JobCategory)
}

func TestHandlePredict_InvalidBody(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	req := httptest.NewRequest("POST", "/predict", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePredict_MissingResumeText(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "POST", "/predict", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePredict_WhitespaceOnly(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: "   \n\t  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty")
}

func TestHandlePredict_ScriptOnlyInput(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{
		ResumeText: `<div><script>alert("xss")</script></div>`,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_Success(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/analyze", types.AnalyzeRequest{
		ResumeText: "Python Developer\nEDUCATION\nBS in CS. Skills: Python and SQL. Built services for 4 years.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Engineering", resp.JobCategory)
	assert.Greater(t, resp.WordCount, 0)
	assert.Greater(t, resp.CharacterCount, 0)
	assert.Contains(t, resp.Sections, "Education")
	assert.NotEmpty(t, resp.Keywords)
	assert.NotEmpty(t, resp.ID)

	require.Len(t, store.analyses, 1)
	for _, a := range store.analyses {
		assert.Equal(t, "analysis", a.Source)
		assert.Greater(t, a.WordCount, 0)
	}
}

func TestHandleCategories(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "GET", "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []string `json:"categories"`
		Count      int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Engineering", "Sales"}, resp.Categories)
	assert.Equal(t, 2, resp.Count)
}

// ---------------------------------------------------------------------
// Stored results handlers
// ---------------------------------------------------------------------

func storedAnalysisResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		PredictionResult: types.PredictionResult{
			JobCategory:     "Engineering",
			Confidence:      0.91,
			Skills:          []string{"Python"},
			ExperienceLevel: types.ExperienceSenior,
			Summary:         "summary",
			Timestamp:       "2026-08-24T00:00:00Z",
		},
		WordCount: 42,
	}
}

func TestHandleStoreResult(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/results", types.StoreResultRequest{
		ResumeText: testResume,
		Result:     storedAnalysisResult(),
		DeviceType: "desktop",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])

	id := uuid.MustParse(resp["id"])
	stored := store.analyses[id]
	require.NotNil(t, stored)
	assert.Equal(t, "desktop", stored.Device)
	assert.Equal(t, "analysis", stored.Source)
	assert.Equal(t, 42, stored.WordCount)
}

func TestHandleStoreResult_MissingResult(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "POST", "/results", types.StoreResultRequest{ResumeText: testResume})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHistory(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	// Seed two stored analyses through the API
	doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: testResume})
	doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: "sales manager with sales background"})

	rec := doRequest(s, "GET", "/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Analyses []db.AnalysisSummary `json:"analyses"`
		Count    int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Analyses, 2)
}

func TestHandleHistory_InvalidLimit(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "GET", "/history?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, "GET", "/history?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, "GET", "/history?limit=101", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, "GET", "/history?offset=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAnalysis(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: testResume})
	var created PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(s, "GET", "/analyses/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis db.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "Engineering", analysis.JobCategory)
}

func TestHandleGetAnalysis_NotFound(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "GET", "/analyses/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetAnalysis_InvalidID(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "GET", "/analyses/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteAnalysis(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: testResume})
	var created PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(s, "DELETE", "/analyses/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.analyses)

	rec = doRequest(s, "DELETE", "/analyses/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleFeedback(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: testResume})
	var created PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(s, "POST", "/analyses/"+created.ID+"/feedback", types.FeedbackRequest{
		Rating:  5,
		Comment: "spot on",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(s, "GET", "/analyses/"+created.ID+"/feedback", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Feedback []db.Feedback `json:"feedback"`
		Count    int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 5, resp.Feedback[0].Rating)
}

func TestHandleFeedback_InvalidRating(t *testing.T) {
	store := newFakeStore()
	s := newTestServer(t, store, newFakeUsers())

	rec := doRequest(s, "POST", "/predict", types.AnalyzeRequest{ResumeText: testResume})
	var created PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(s, "POST", "/analyses/"+created.ID+"/feedback", types.FeedbackRequest{Rating: 6})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleFeedback_UnknownAnalysis(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "POST", "/analyses/"+uuid.NewString()+"/feedback", types.FeedbackRequest{Rating: 3})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------
// Operational handlers
// ---------------------------------------------------------------------

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleVersion(t *testing.T) {
	s := newTestServer(t, newFakeStore(), newFakeUsers())

	rec := doRequest(s, "GET", "/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Version    string   `json:"version"`
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, Version, resp.Version)
	assert.Len(t, resp.Categories, 2)
}
