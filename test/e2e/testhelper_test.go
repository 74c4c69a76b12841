package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/handler"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/imageproc"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/artifact"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/ingest"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/session"
)

const apiBasePath = "/api/v1"

type TestApp struct {
	Server      *httptest.Server
	Artifacts   *artifact.Manager
	DownloadDir string
	BaseURL     string
	httpClient  *http.Client
}

func setupTestApp(t *testing.T, opts session.Options) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	store := storage.NewMemoryStore(config.StorageConfig{ArtifactURLPrefix: apiBasePath + "/artifacts"})
	artifacts := artifact.NewManager(store, metrics, logger)

	downloadDir := filepath.Join(t.TempDir(), "downloads")
	disk, err := storage.NewDiskDownloader(downloadDir, logger)
	require.NoError(t, err)

	resampler, err := imageproc.NewResampler(imageproc.BackendImaging, imageproc.FilterLanczos)
	require.NoError(t, err)
	compressor := imageproc.NewCompressor(config.CompressConfig{MaxSizeMB: 1, MaxEdge: 1920, MaxIterations: 10}, resampler)
	resizer := imageproc.NewResizer(config.ResizeConfig{JPEGQuality: 92, MaxEdge: 10000}, resampler)

	ingestSvc := ingest.NewService(imageproc.NewDecoder(50_000_000), 25<<20, logger)
	if opts.MaxEdge == 0 {
		opts.MaxEdge = 10000
	}
	sessionSvc := session.NewService(ingestSvc, compressor, resizer, artifacts, metrics, logger, opts)

	router := server.NewRouter(server.RouterConfig{
		SessionHandler:  handler.NewSessionHandler(sessionSvc, disk, 25<<20),
		ArtifactHandler: handler.NewArtifactHandler(artifacts),
		Gatherer:        registry,
		Logger:          logger,
		Environment:     "test",
	})

	ts := httptest.NewServer(router.Engine())
	t.Cleanup(ts.Close)

	return &TestApp{
		Server:      ts,
		Artifacts:   artifacts,
		DownloadDir: downloadDir,
		BaseURL:     ts.URL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (app *TestApp) request(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil)
}

func (app *TestApp) post(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPost, path, body)
}

func (app *TestApp) put(path string, body any) (*http.Response, error) {
	return app.request(http.MethodPut, path, body)
}

func (app *TestApp) delete(path string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil)
}

func (app *TestApp) upload(t *testing.T, fileName, contentType string, data []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+"/session/source", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func (app *TestApp) fetch(t *testing.T, url string) []byte {
	t.Helper()

	resp, err := app.httpClient.Get(app.BaseURL + url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

type imageResponse struct {
	HandleID  string `json:"handle_id"`
	URL       string `json:"url"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"size_label"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type sessionResponse struct {
	Tool     string `json:"tool"`
	Original *struct {
		imageResponse
		Name string `json:"name"`
	} `json:"original"`
	Derived *struct {
		imageResponse
		Operation string `json:"operation"`
		Quality   int    `json:"quality"`
		FileName  string `json:"file_name"`
	} `json:"derived"`
	Quality int `json:"quality"`
	Resize  struct {
		State  string `json:"state"`
		Locked bool   `json:"locked"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	} `json:"resize"`
	CompressionRatio float64 `json:"compression_ratio"`
	Pending          bool    `json:"pending"`
	Error            string  `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func noiseJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	seed := uint32(2463534242)
	for y := range height {
		for x := range width {
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(seed), G: uint8(seed >> 8), B: uint8(seed >> 16), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}))
	return buf.Bytes()
}

func gradientPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int, string) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height, format
}

