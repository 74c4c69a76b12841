package request

type StartSessionRequest struct {
	Tool string `json:"tool" binding:"required,oneof=compress resize"`
}

type QualityRequest struct {
	Quality *int `json:"quality" binding:"required"`
}

// DimensionsRequest carries one or both resize fields. When both are set the
// width is applied first, so the height is the last edit.
type DimensionsRequest struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

type AspectLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}
