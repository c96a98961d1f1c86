package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/qualipharm/qualipharm/internal/config"
)

func testUploader(t *testing.T, endpoint string) *Uploader {
	t.Helper()
	cfg := config.Defaults()
	cfg.Storage.Endpoint = endpoint
	cfg.Storage.Bucket = "quality-docs"
	cfg.Storage.Tenant = "pcv"
	cfg.Storage.Directory = "documents"
	cfg.Storage.APIKey = "test-key"

	u := NewUploader(cfg, zap.NewNop())
	u.now = func() time.Time { return time.UnixMilli(1741950000000) }
	return u
}

func TestKeyConvention(t *testing.T) {
	u := testUploader(t, "http://storage.local")
	key := u.Key("document-rapport-2025-03-14-abc.pdf")
	assert.Equal(t, "pcv/documents/1741950000000_document-rapport-2025-03-14-abc.pdf", key)
}

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	u := testUploader(t, srv.URL)
	blob := []byte("%PDF-1.4 fake")

	publicURL, err := u.Upload(context.Background(), "doc.pdf", blob)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPath, "/object/quality-docs/pcv/documents/"))
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, blob, gotBody)
	assert.Contains(t, publicURL, "/object/public/quality-docs/pcv/documents/")
	assert.True(t, strings.HasSuffix(publicURL, "_doc.pdf"))
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer srv.Close()

	u := testUploader(t, srv.URL)
	_, err := u.Upload(context.Background(), "doc.pdf", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
