package domain

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode error")
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrEncode            = errors.New("encode error")
	ErrInvalidQuality    = errors.New("invalid quality")
	ErrFileTooLarge      = errors.New("file too large")
	ErrNoSource          = errors.New("no source image")
	ErrNoArtifact        = errors.New("no derived artifact")
	ErrHandleNotFound    = errors.New("handle not found")
	ErrSuperseded        = errors.New("superseded by a newer request")
	ErrUnknownTool       = errors.New("unknown tool")
)

const (
	MsgUnsupportedFormat = "Only JPEG and PNG images are supported"
	MsgDecode            = "The image could not be read, please choose another file"
	MsgInvalidDimensions = "Width and height must be positive whole numbers"
	MsgInvalidQuality    = "Quality must be between 10 and 100"
	MsgFileTooLarge      = "The image is too large"
	MsgNoSource          = "Please choose an image first"
	MsgNoArtifact        = "There is no processed image yet"
	MsgCompressFailed    = "Failed to compress the image, please try again"
	MsgResizeFailed      = "Failed to resize the image, please try again"
	MsgUnknownTool       = "Unknown tool"
	MsgGeneric           = "Something went wrong, please try again"
)

// Message converts a pipeline error into the single user-facing message shown
// for it. op names the engine that was running, if any.
func Message(err error, op string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return MsgUnsupportedFormat
	case errors.Is(err, ErrDecode):
		return MsgDecode
	case errors.Is(err, ErrInvalidDimensions):
		return MsgInvalidDimensions
	case errors.Is(err, ErrInvalidQuality):
		return MsgInvalidQuality
	case errors.Is(err, ErrFileTooLarge):
		return MsgFileTooLarge
	case errors.Is(err, ErrNoSource):
		return MsgNoSource
	case errors.Is(err, ErrNoArtifact):
		return MsgNoArtifact
	case errors.Is(err, ErrUnknownTool):
		return MsgUnknownTool
	case op == "resize":
		return MsgResizeFailed
	case op == "compress":
		return MsgCompressFailed
	default:
		return MsgGeneric
	}
}
