package sheetsync_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aixxiteru/peta-jabatan/internal/sheetsync"
	sheetsyncerrors "github.com/aixxiteru/peta-jabatan/internal/sheetsync/errors"
	sheetsyncMock "github.com/aixxiteru/peta-jabatan/internal/sheetsync/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool             `json:"ok"`
	Data  sheetsync.Result `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(h *sheetsync.Handler, mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sheetsync.RegisterRoutes(r.Group("/api/v1"), h, mws...)
	return r
}

func TestSheetSyncHandler_Sync(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := sheetsyncMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Sync(gomock.Any(), sheetsync.TriggerManual).Return(sheetsync.Result{
			SyncID:     "s-1",
			Trigger:    sheetsync.TriggerManual,
			JobUpdated: true,
			SyncedAt:   "18/10/2026, 14.05.33",
		}, nil)
		r := setupRouter(sheetsync.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, "s-1", env.Data.SyncID)
		assert.True(t, env.Data.JobUpdated)
	})

	t.Run("url not configured", func(t *testing.T) {
		svc := sheetsyncMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Sync(gomock.Any(), sheetsync.TriggerManual).Return(sheetsync.Result{}, sheetsyncerrors.ErrSheetURLNotConfigured)
		r := setupRouter(sheetsync.NewHandler(svc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.Equal(t, "URL Google Sheet belum dikonfigurasi di halaman Database.", env.Error.Message)
	})

	t.Run("middleware can stop the request", func(t *testing.T) {
		svc := sheetsyncMock.NewMockService(gomock.NewController(t))
		block := func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }
		r := setupRouter(sheetsync.NewHandler(svc), block)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}
