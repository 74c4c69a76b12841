package imageproc

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

const (
	BackendImaging = "imaging"
	BackendXDraw   = "xdraw"
	BackendNfnt    = "nfnt"

	FilterLanczos    = "lanczos"
	FilterCatmullRom = "catmullrom"
	FilterLinear     = "linear"
	FilterNearest    = "nearest"
)

// Resampler draws img onto a surface of exactly width x height pixels.
type Resampler interface {
	Resample(img image.Image, width, height int) image.Image
	Name() string
}

func NewResampler(backend, filter string) (Resampler, error) {
	if filter == "" {
		filter = FilterLanczos
	}
	switch backend {
	case BackendImaging, "":
		return newImagingResampler(filter)
	case BackendXDraw:
		return newXDrawResampler(filter)
	case BackendNfnt:
		return newNfntResampler(filter)
	default:
		return nil, fmt.Errorf("unknown resize backend %q", backend)
	}
}

type imagingResampler struct {
	name   string
	filter imaging.ResampleFilter
}

func newImagingResampler(filter string) (*imagingResampler, error) {
	var f imaging.ResampleFilter
	switch filter {
	case FilterLanczos:
		f = imaging.Lanczos
	case FilterCatmullRom:
		f = imaging.CatmullRom
	case FilterLinear:
		f = imaging.Linear
	case FilterNearest:
		f = imaging.NearestNeighbor
	default:
		return nil, fmt.Errorf("unknown resize filter %q", filter)
	}
	return &imagingResampler{name: BackendImaging + "/" + filter, filter: f}, nil
}

func (r *imagingResampler) Resample(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, r.filter)
}

func (r *imagingResampler) Name() string { return r.name }

// x/image/draw has no Lanczos kernel; CatmullRom is the closest it offers.
type xdrawResampler struct {
	name   string
	interp draw.Interpolator
}

func newXDrawResampler(filter string) (*xdrawResampler, error) {
	var interp draw.Interpolator
	switch filter {
	case FilterLanczos, FilterCatmullRom:
		interp = draw.CatmullRom
	case FilterLinear:
		interp = draw.BiLinear
	case FilterNearest:
		interp = draw.NearestNeighbor
	default:
		return nil, fmt.Errorf("unknown resize filter %q", filter)
	}
	return &xdrawResampler{name: BackendXDraw + "/" + filter, interp: interp}, nil
}

func (r *xdrawResampler) Resample(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	r.interp.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func (r *xdrawResampler) Name() string { return r.name }

type nfntResampler struct {
	name   string
	interp resize.InterpolationFunction
}

func newNfntResampler(filter string) (*nfntResampler, error) {
	var interp resize.InterpolationFunction
	switch filter {
	case FilterLanczos:
		interp = resize.Lanczos3
	case FilterCatmullRom:
		interp = resize.Bicubic
	case FilterLinear:
		interp = resize.Bilinear
	case FilterNearest:
		interp = resize.NearestNeighbor
	default:
		return nil, fmt.Errorf("unknown resize filter %q", filter)
	}
	return &nfntResampler{name: BackendNfnt + "/" + filter, interp: interp}, nil
}

func (r *nfntResampler) Resample(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, r.interp)
}

func (r *nfntResampler) Name() string { return r.name }
