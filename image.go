package mdeck

import (
	"image"

	"github.com/HopIT-Hub/mdeck-go/internal/imaging"
	"github.com/HopIT-Hub/mdeck-go/internal/model"
)

// ImageFormat describes the pixel size and transform pipeline a given
// image surface (key, LCD, boot logo) expects.
type ImageFormat = model.ImageFormat

// Rotation and mirroring applied before encoding.
type (
	ImageRotation  = model.ImageRotation
	ImageMirroring = model.ImageMirroring
	ImageMode      = model.ImageMode
)

const (
	Rot0   = model.Rot0
	Rot90  = model.Rot90
	Rot180 = model.Rot180
	Rot270 = model.Rot270

	MirrorNone = model.MirrorNone
	MirrorX    = model.MirrorX
	MirrorY    = model.MirrorY
	MirrorBoth = model.MirrorBoth

	ModeNone = model.ModeNone
	ModeJPEG = model.ModeJPEG
)

// ConvertImage rotates, resizes, mirrors, and JPEG-encodes img for
// kind's key-image surface.
func ConvertImage(kind Kind, img image.Image) ([]byte, error) {
	return imaging.Convert(kind.KeyImageFormat(), img)
}

// ConvertImageWithFormat applies the same pipeline using an explicit
// format, for the LCD and boot-logo surfaces.
func ConvertImageWithFormat(format ImageFormat, img image.Image) ([]byte, error) {
	return imaging.Convert(format, img)
}

// ImageRect is a JPEG-encoded image at its native size, with no resize
// step — used for WriteLCD region writes.
type ImageRect struct {
	Width, Height int
	Data          []byte
}

// NewImageRect encodes img at its own dimensions, without resizing.
func NewImageRect(img image.Image) (ImageRect, error) {
	rect, err := imaging.ToRect(img)
	if err != nil {
		return ImageRect{}, err
	}
	return ImageRect{Width: rect.Width, Height: rect.Height, Data: rect.Data}, nil
}
