package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goprofile/internal/api"
	"github.com/jonesrussell/goprofile/internal/database"
	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/logger"
	"github.com/jonesrussell/goprofile/internal/scraper"
)

type mockService struct {
	result *domain.Result
	err    error
}

func (m *mockService) Run(_ context.Context, _ string) (*domain.Result, error) {
	return m.result, m.err
}

type mockStore struct {
	saved   []*domain.Result
	saveErr error
	stored  map[string]*database.StoredProfile
}

func (m *mockStore) Save(_ context.Context, result *domain.Result) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, result)
	return nil
}

func (m *mockStore) Get(_ context.Context, id string) (*database.StoredProfile, error) {
	if p, ok := m.stored[id]; ok {
		return p, nil
	}
	return nil, database.ErrProfileNotFound
}

func (m *mockStore) List(_ context.Context, _, _ int) ([]*database.StoredProfile, error) {
	var out []*database.StoredProfile
	for _, p := range m.stored {
		out = append(out, p)
	}
	return out, nil
}

func sampleResult() *domain.Result {
	return &domain.Result{
		Metadata: domain.RunMetadata{RunID: "run-1", PagesCrawled: 2, Errors: []string{}},
		Identity: domain.Identity{CompanyName: "Acme", Website: "https://acme.test"},
	}
}

func newRouter(service api.ProfileService, store api.ProfileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := api.NewProfileHandler(service, store, logger.NewNoop(), time.Minute)

	router := gin.New()
	router.POST("/api/v1/profiles", handler.CreateProfile)
	router.GET("/api/v1/profiles", handler.ListProfiles)
	router.GET("/api/v1/profiles/:id", handler.GetProfile)

	return router
}

func postProfile(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profiles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateProfile_Success(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	router := newRouter(&mockService{result: sampleResult()}, store)

	rec := postProfile(router, `{"url":"https://acme.test"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got domain.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Acme", got.Identity.CompanyName)

	require.Len(t, store.saved, 1, "successful runs are persisted")
}

func TestCreateProfile_MissingURL(t *testing.T) {
	t.Parallel()

	router := newRouter(&mockService{result: sampleResult()}, nil)

	rec := postProfile(router, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProfile_InvalidSeed(t *testing.T) {
	t.Parallel()

	service := &mockService{err: fmt.Errorf("%w: %q", scraper.ErrInvalidSeedURL, "nope")}
	router := newRouter(service, nil)

	rec := postProfile(router, `{"url":"nope"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProfile_RunFailure(t *testing.T) {
	t.Parallel()

	router := newRouter(&mockService{err: errors.New("site unreachable")}, nil)

	rec := postProfile(router, `{"url":"https://down.test"}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCreateProfile_SaveFailureStillReturnsResult(t *testing.T) {
	t.Parallel()

	store := &mockStore{saveErr: errors.New("db down")}
	router := newRouter(&mockService{result: sampleResult()}, store)

	rec := postProfile(router, `{"url":"https://acme.test"}`)
	require.Equal(t, http.StatusCreated, rec.Code, "persistence failure must not hide the result")
}

func TestGetProfile_NotFound(t *testing.T) {
	t.Parallel()

	router := newRouter(&mockService{}, &mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/missing", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfile_Found(t *testing.T) {
	t.Parallel()

	store := &mockStore{stored: map[string]*database.StoredProfile{
		"run-1": {ID: "run-1", CompanyName: "Acme"},
	}}
	router := newRouter(&mockService{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/run-1", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got database.StoredProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Acme", got.CompanyName)
}

func TestListProfiles_WithoutStore(t *testing.T) {
	t.Parallel()

	router := newRouter(&mockService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListProfiles_EmptyStore(t *testing.T) {
	t.Parallel()

	router := newRouter(&mockService{}, &mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", http.NoBody)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Profiles []*database.StoredProfile `json:"profiles"`
		Count    int                       `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Zero(t, got.Count)
	require.NotNil(t, got.Profiles)
}
