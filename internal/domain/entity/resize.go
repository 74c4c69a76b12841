package entity

import (
	"math"

	"github.com/marcos-nsantos/image-toolbox/internal/domain"
)

type LockState int

const (
	LockIdle LockState = iota
	LockUnlocked
	LockLocked
)

func (s LockState) String() string {
	switch s {
	case LockUnlocked:
		return "unlocked"
	case LockLocked:
		return "locked"
	default:
		return "idle"
	}
}

// ResizeParams keeps the width/height fields of the resize tool consistent.
// In LockLocked the last edited field is authoritative and the other one is
// recomputed from the aspect ratio captured when the source was seeded.
type ResizeParams struct {
	state       LockState
	lockOnSeed  bool
	maxEdge     int
	width       int
	height      int
	aspectRatio float64
}

// NewResizeParams returns idle params. A positive maxEdge caps every edited
// side, including one recomputed by the lock.
func NewResizeParams(locked bool, maxEdge int) ResizeParams {
	return ResizeParams{state: LockIdle, lockOnSeed: locked, maxEdge: maxEdge}
}

func (p ResizeParams) State() LockState     { return p.state }
func (p ResizeParams) Locked() bool         { return p.lockOnSeed }
func (p ResizeParams) Width() int           { return p.width }
func (p ResizeParams) Height() int          { return p.height }
func (p ResizeParams) AspectRatio() float64 { return p.aspectRatio }
func (p ResizeParams) MaxEdge() int          { return p.maxEdge }

func (p *ResizeParams) Seed(width, height int) {
	p.width = width
	p.height = height
	p.aspectRatio = 0
	if height > 0 {
		p.aspectRatio = float64(width) / float64(height)
	}
	if p.lockOnSeed {
		p.state = LockLocked
	} else {
		p.state = LockUnlocked
	}
}

func (p *ResizeParams) Reset() {
	p.state = LockIdle
	p.width = 0
	p.height = 0
	p.aspectRatio = 0
}

// SetLocked toggles the aspect lock. Entering LockLocked immediately
// recomputes the height from the current width; when that height is out of
// range the toggle is rejected and nothing changes.
func (p *ResizeParams) SetLocked(locked bool) error {
	switch {
	case p.state == LockIdle:
	case !locked:
		p.state = LockUnlocked
	case p.state == LockUnlocked:
		h := p.heightFor(p.width)
		if !p.fits(h) {
			return domain.ErrInvalidDimensions
		}
		p.height = h
		p.state = LockLocked
	}
	p.lockOnSeed = locked
	return nil
}

func (p *ResizeParams) SetWidth(width int) error {
	if p.state == LockIdle {
		return domain.ErrNoSource
	}
	if !p.fits(width) {
		return domain.ErrInvalidDimensions
	}
	if p.state != LockLocked {
		p.width = width
		return nil
	}
	height := p.heightFor(width)
	if !p.fits(height) {
		return domain.ErrInvalidDimensions
	}
	p.width, p.height = width, height
	return nil
}

func (p *ResizeParams) SetHeight(height int) error {
	if p.state == LockIdle {
		return domain.ErrNoSource
	}
	if !p.fits(height) {
		return domain.ErrInvalidDimensions
	}
	if p.state != LockLocked {
		p.height = height
		return nil
	}
	width := p.widthFor(height)
	if !p.fits(width) {
		return domain.ErrInvalidDimensions
	}
	p.width, p.height = width, height
	return nil
}

func (p ResizeParams) fits(side int) bool {
	return side > 0 && (p.maxEdge <= 0 || side <= p.maxEdge)
}

func (p ResizeParams) heightFor(width int) int {
	if p.aspectRatio <= 0 {
		return 0
	}
	return int(math.Round(float64(width) / p.aspectRatio))
}

func (p ResizeParams) widthFor(height int) int {
	return int(math.Round(float64(height) * p.aspectRatio))
}
