package response

import (
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/pkg/bytesize"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/session"
)

type ImageResponse struct {
	HandleID  string `json:"handle_id"`
	URL       string `json:"url"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"size_label"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type SourceResponse struct {
	ImageResponse
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DerivedResponse struct {
	ImageResponse
	Operation string `json:"operation"`
	Quality   int    `json:"quality"`
	FileName  string `json:"file_name"`
}

type ResizeResponse struct {
	State       string  `json:"state"`
	Locked      bool    `json:"locked"`
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
	AspectRatio float64 `json:"aspect_ratio,omitempty"`
}

type SessionResponse struct {
	Tool             string           `json:"tool"`
	Original         *SourceResponse  `json:"original"`
	Derived          *DerivedResponse `json:"derived"`
	Quality          int              `json:"quality"`
	Resize           ResizeResponse   `json:"resize"`
	CompressionRatio float64          `json:"compression_ratio"`
	Pending          bool             `json:"pending"`
	Error            string           `json:"error,omitempty"`
}

type ToolResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DownloadSavedResponse struct {
	FileName  string `json:"file_name"`
	Directory string `json:"directory"`
}

func SessionFromSnapshot(s session.Snapshot) SessionResponse {
	resp := SessionResponse{
		Tool:             string(s.Tool),
		Quality:          s.Quality,
		CompressionRatio: s.CompressionRatio(),
		Pending:          s.Pending,
		Error:            s.Error,
		Resize: ResizeResponse{
			State:       s.Resize.State().String(),
			Locked:      s.Resize.Locked(),
			Width:       s.Resize.Width(),
			Height:      s.Resize.Height(),
			AspectRatio: s.Resize.AspectRatio(),
		},
	}

	if src := s.Source; src != nil {
		resp.Original = &SourceResponse{
			ImageResponse: image(src.Handle, src.MimeType, src.ByteSize, src.Width, src.Height),
			ID:            src.ID.String(),
			Name:          src.Name,
		}
	}

	if d := s.Derived; d != nil {
		resp.Derived = DerivedFromEntity(d)
	}

	return resp
}

func DerivedFromEntity(d *entity.DerivedArtifact) *DerivedResponse {
	return &DerivedResponse{
		ImageResponse: image(d.Handle, d.MimeType, d.ByteSize, d.Width, d.Height),
		Operation:     string(d.Operation),
		Quality:       d.Quality,
		FileName:      d.FileName(),
	}
}

func ToolsFromEntities(tools []entity.ToolInfo) []ToolResponse {
	resp := make([]ToolResponse, len(tools))
	for i, t := range tools {
		resp[i] = ToolResponse{ID: string(t.ID), Title: t.Title, Description: t.Description}
	}
	return resp
}

func image(h entity.Handle, mimeType entity.MimeType, size int64, width, height int) ImageResponse {
	return ImageResponse{
		HandleID:  h.ID.String(),
		URL:       h.URL,
		MimeType:  string(mimeType),
		Size:      size,
		SizeLabel: bytesize.Format(size),
		Width:     width,
		Height:    height,
	}
}
