package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nathmakers/storesrv/internal/config"
	"github.com/nathmakers/storesrv/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminPassword = "test-secret"

// fakeUploader stands in for the image-hosting collaborator.
type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return f.url, nil
}

func newTestServer(t *testing.T, up *fakeUploader) *StoreServer {
	t.Helper()
	if up == nil {
		up = &fakeUploader{url: "https://img.example/uploaded.jpg"}
	}

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := db.New(gdb)
	require.NoError(t, store.EnsureSchema(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{
		Server:         config.ServerConfig{Port: 0, RequestTimeout: 5},
		AdminPassword:  testAdminPassword,
		AllowedOrigins: []string{"http://localhost:8081"},
	}
	s := CreateNewServer(cfg, store, up)
	s.MountHandlers()
	return s
}

func executeTestRequest(s *StoreServer, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "body: %s", rr.Body.String())
}

func checkJSONHeader(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

var errUploadRejected = errors.New("invalid api key")
