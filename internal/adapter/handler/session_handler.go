package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-toolbox/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-toolbox/internal/domain"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-toolbox/internal/pkg/httputil"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/session"
)

// multipartOverhead is allowed on top of the file limit for boundaries and
// part headers.
const multipartOverhead = 1 << 20

type SessionHandler struct {
	sessionSvc     SessionService
	disk           DiskSaver
	maxUploadBytes int64
}

// NewSessionHandler wires the session endpoints. disk may be nil, in which
// case saving to the download directory is reported as unavailable.
func NewSessionHandler(sessionSvc SessionService, disk DiskSaver, maxUploadBytes int64) *SessionHandler {
	return &SessionHandler{
		sessionSvc:     sessionSvc,
		disk:           disk,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *SessionHandler) Tools(c *gin.Context) {
	httputil.OK(c, response.ToolsFromEntities(entity.Tools))
}

func (h *SessionHandler) Get(c *gin.Context) {
	httputil.OK(c, response.SessionFromSnapshot(h.sessionSvc.Snapshot()))
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req request.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	tool, err := entity.ParseTool(req.Tool)
	if err != nil {
		httputil.HandleError(c, apperror.FromDomain(err, ""))
		return
	}

	httputil.OK(c, response.SessionFromSnapshot(h.sessionSvc.Start(c.Request.Context(), tool)))
}

func (h *SessionHandler) End(c *gin.Context) {
	httputil.OK(c, response.SessionFromSnapshot(h.sessionSvc.End(c.Request.Context())))
}

func (h *SessionHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.HandleError(c, apperror.FromDomain(domain.ErrFileTooLarge, ""))
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file could not be read")
		return
	}

	snap, err := h.sessionSvc.Upload(c.Request.Context(), entity.UploadFile{
		Name:        header.Filename,
		ContentType: detectContentType(header.Header.Get("Content-Type"), data),
		Size:        int64(len(data)),
		Data:        data,
	})
	if err != nil {
		httputil.HandleError(c, apperror.FromDomain(err, ""))
		return
	}

	httputil.OK(c, response.SessionFromSnapshot(snap))
}

func (h *SessionHandler) SetQuality(c *gin.Context) {
	var req request.QualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	snap, err := h.sessionSvc.SetQuality(c.Request.Context(), *req.Quality)
	h.respondEdit(c, snap, err, entity.OpCompress)
}

func (h *SessionHandler) SetDimensions(c *gin.Context) {
	var req request.DimensionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	snap, err := h.sessionSvc.SetDimensions(c.Request.Context(), req.Width, req.Height)
	h.respondEdit(c, snap, err, entity.OpResize)
}

func (h *SessionHandler) SetAspectLock(c *gin.Context) {
	var req request.AspectLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	snap, err := h.sessionSvc.SetAspectLock(c.Request.Context(), *req.Locked)
	h.respondEdit(c, snap, err, entity.OpResize)
}

func (h *SessionHandler) Apply(c *gin.Context) {
	derived, err := h.sessionSvc.Apply(c.Request.Context())
	if err != nil {
		httputil.HandleError(c, apperror.FromDomain(err, string(h.sessionSvc.Snapshot().Tool.Operation())))
		return
	}

	httputil.OK(c, response.DerivedFromEntity(derived))
}

// Download streams the live derived artifact as an attachment.
func (h *SessionHandler) Download(c *gin.Context) {
	if _, err := h.sessionSvc.Download(c.Request.Context(), attachment{c: c}); err != nil {
		httputil.HandleError(c, apperror.FromDomain(err, ""))
	}
}

// Save writes the live derived artifact into the configured download
// directory.
func (h *SessionHandler) Save(c *gin.Context) {
	if h.disk == nil {
		httputil.ErrorWithCode(c, http.StatusNotImplemented, "DOWNLOADS_DISABLED", "no download directory is configured")
		return
	}

	name, err := h.sessionSvc.Download(c.Request.Context(), h.disk)
	if err != nil {
		httputil.HandleError(c, apperror.FromDomain(err, ""))
		return
	}

	httputil.Created(c, response.DownloadSavedResponse{FileName: name, Directory: h.disk.Dir()})
}

// respondEdit answers a parameter edit. An edit whose auto-applied run was
// overtaken by a newer request still succeeded, so the current session is
// returned.
func (h *SessionHandler) respondEdit(c *gin.Context, snap session.Snapshot, err error, op entity.Operation) {
	switch {
	case errors.Is(err, domain.ErrSuperseded):
		httputil.OK(c, response.SessionFromSnapshot(h.sessionSvc.Snapshot()))
	case err != nil:
		httputil.HandleError(c, apperror.FromDomain(err, string(op)))
	default:
		httputil.OK(c, response.SessionFromSnapshot(snap))
	}
}

// detectContentType trusts a declared image type and sniffs the bytes when
// the client sent nothing useful.
func detectContentType(declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(data).String()
}

// attachment hands the artifact to the HTTP client as a file download.
type attachment struct {
	c *gin.Context
}

func (a attachment) Save(_ context.Context, name string, mimeType entity.MimeType, data []byte) error {
	a.c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	a.c.Header("Cache-Control", "no-store")
	a.c.Data(http.StatusOK, string(mimeType), data)
	return nil
}
