package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/image-toolbox/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-toolbox/internal/pkg/httputil"
)

type ArtifactHandler struct {
	artifactSvc ArtifactService
}

func NewArtifactHandler(artifactSvc ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{artifactSvc: artifactSvc}
}

// Get serves a live handle inline, for previews.
func (h *ArtifactHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid artifact id")
		return
	}

	obj, err := h.artifactSvc.Open(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, apperror.FromDomain(err, ""))
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, string(obj.MimeType), obj.Data)
}
