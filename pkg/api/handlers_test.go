package api

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/njord/pkg/buffer"
	"github.com/ssargent/njord/pkg/chunkkey"
	"github.com/ssargent/njord/pkg/codec"
	"github.com/ssargent/njord/pkg/dtype"
	"github.com/ssargent/njord/pkg/pipeline"
	"github.com/ssargent/njord/pkg/store"
)

const testAPIKey = "test-key"

// Prometheus collectors register process-wide; one instance serves every
// test.
var testMetrics = NewMetrics()

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	spec, err := buffer.NewArraySpec([]int{2, 3}, dtype.Int32, nil)
	require.NoError(t, err)
	bytesCodec, err := codec.NewBytesCodecWithEndian(dtype.LittleEndian)
	require.NoError(t, err)
	keys, err := chunkkey.NewDefaultEncoding(chunkkey.SlashSeparator)
	require.NoError(t, err)

	p, err := pipeline.New(pipeline.Config{
		Codec: bytesCodec,
		Keys:  keys,
		Store: store.NewMemoryStore(),
		Spec:  spec,
	})
	require.NoError(t, err)

	return Router(p, ServerConfig{Bind: "127.0.0.1", Port: 0, APIKey: testAPIKey}, testMetrics)
}

func chunkBytes(values []int32) []byte {
	data := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(v))
	}
	return data
}

func doRequest(t *testing.T, router http.Handler, method, path string, body []byte, withKey bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if withKey {
		req.Header.Set("X-API-Key", testAPIKey)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAPI_RequiresAPIKey(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", nil, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_Health(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestAPI_ChunkRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	data := chunkBytes([]int32{1, 2, 3, 4, 5, 6})

	rec := doRequest(t, router, http.MethodPut, "/api/v1/chunks/0,1", data, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/api/v1/chunks/0,1", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, data, rec.Body.Bytes())
}

func TestAPI_PutRejectsWrongLength(t *testing.T) {
	router := newTestRouter(t)

	// The spec needs 24 bytes; send 20.
	rec := doRequest(t, router, http.MethodPut, "/api/v1/chunks/0,0", make([]byte, 20), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_GetMissingChunk(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/chunks/9,9", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_BadCoordinates(t *testing.T) {
	router := newTestRouter(t)

	for _, coords := range []string{"a,b", "1,-2", "1,2.5"} {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/chunks/"+coords, nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, coords)
	}
}

func TestAPI_DeleteChunk(t *testing.T) {
	router := newTestRouter(t)
	data := chunkBytes([]int32{1, 2, 3, 4, 5, 6})

	rec := doRequest(t, router, http.MethodPut, "/api/v1/chunks/2,2", data, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/chunks/2,2", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/chunks/2,2", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_ListChunks(t *testing.T) {
	router := newTestRouter(t)
	data := chunkBytes([]int32{1, 2, 3, 4, 5, 6})

	require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPut, "/api/v1/chunks/0,0", data, true).Code)
	require.Equal(t, http.StatusOK, doRequest(t, router, http.MethodPut, "/api/v1/chunks/1,2", data, true).Code)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/chunks", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Chunks [][]int `json:"chunks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data.Chunks, 2)
}

func TestAPI_Stats(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/stats", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    StatsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Data.Chunks)
}

func TestAPI_MetricsEndpointUnprotected(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
}
