package position_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aixxiteru/peta-jabatan/internal/position"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePositionService struct {
	GetAllFn     func(ctx context.Context) (position.Dataset, error)
	ListFn       func(ctx context.Context, req position.ListPositionsRequest) (position.ListPositionsResponse, error)
	InvalidateFn func(ctx context.Context) error
}

func (f *fakePositionService) GetAll(ctx context.Context) (position.Dataset, error) {
	return f.GetAllFn(ctx)
}
func (f *fakePositionService) List(ctx context.Context, req position.ListPositionsRequest) (position.ListPositionsResponse, error) {
	return f.ListFn(ctx, req)
}
func (f *fakePositionService) Invalidate(ctx context.Context) error {
	return f.InvalidateFn(ctx)
}

func setupRouter(h *position.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	position.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func TestPositionHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakePositionService{
			ListFn: func(ctx context.Context, req position.ListPositionsRequest) (position.ListPositionsResponse, error) {
				assert.Equal(t, "analis", req.Q)
				assert.Equal(t, "KURANG", req.Status)
				assert.Equal(t, "03/2024", req.Period)
				return position.ListPositionsResponse{
					Positions: []position.JobPosition{{ID: 2, Jabatan: "ANALIS KEBIJAKAN", Status: position.StatusKurang}},
					Meta:      position.ListPositionsMeta{Total: 5, Shown: 1, SelectedPeriod: "03/2024", DataSource: position.SourceSynced},
				}, nil
			},
		}
		r := setupRouter(position.NewHandler(svc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/positions?q=analis&status=KURANG&period=03/2024", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got []position.JobPosition
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got, 1)

		var meta position.ListPositionsMeta
		assert.NoError(t, json.Unmarshal(env.Meta, &meta))
		assert.Equal(t, "03/2024", meta.SelectedPeriod)
		assert.Equal(t, position.SourceSynced, meta.DataSource)
	})

	t.Run("invalid status", func(t *testing.T) {
		r := setupRouter(position.NewHandler(&fakePositionService{}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/positions?status=HILANG", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakePositionService{
			ListFn: func(ctx context.Context, req position.ListPositionsRequest) (position.ListPositionsResponse, error) {
				return position.ListPositionsResponse{}, errors.New("store down")
			},
		}
		r := setupRouter(position.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/positions", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}
