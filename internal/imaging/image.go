// Package imaging converts decoded images into the rotated, resized,
// mirrored, JPEG-encoded byte layout the device expects, and splits
// that payload into report-sized pages for transfer.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/nfnt/resize"

	"github.com/HopIT-Hub/mdeck-go/internal/model"
)

// Convert rotates, resizes, mirrors, and encodes img according to format.
func Convert(format model.ImageFormat, img image.Image) ([]byte, error) {
	img = rotate(img, format.Rotation)
	img = resize.Resize(uint(format.Width), uint(format.Height), img, resize.Triangle)
	img = mirror(img, format.Mirror)

	switch format.Mode {
	case model.ModeNone:
		return nil, nil
	case model.ModeJPEG:
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, nil
	}
}

// Rect is the result of encoding an image at its native size, with no
// resize step — used for LCD region writes.
type Rect struct {
	Width, Height int
	Data          []byte
}

// ToRect JPEG-encodes img at its own dimensions, without resizing.
func ToRect(img image.Image) (Rect, error) {
	bounds := img.Bounds()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return Rect{}, err
	}
	return Rect{Width: bounds.Dx(), Height: bounds.Dy(), Data: buf.Bytes()}, nil
}

func rotate(img image.Image, rot model.ImageRotation) image.Image {
	switch rot {
	case model.Rot90:
		return rotate90(img)
	case model.Rot180:
		return rotate90(rotate90(img))
	case model.Rot270:
		return rotate90(rotate90(rotate90(img)))
	default:
		return img
	}
}

// rotate90 rotates img 90 degrees clockwise.
func rotate90(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(h-1-y, x, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

func mirror(img image.Image, m model.ImageMirroring) image.Image {
	if m == model.MirrorNone {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	flipX := m == model.MirrorX || m == model.MirrorBoth
	flipY := m == model.MirrorY || m == model.MirrorBoth
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x, y
			if flipX {
				sx = w - 1 - x
			}
			if flipY {
				sy = h - 1 - y
			}
			out.Set(x, y, img.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return out
}

// Paginate splits data into pages for a transfer of the given report
// length and header reserve. Each page is a single leading zero byte
// (the HID report-ID byte) followed by up to reportLength-headerLength
// payload bytes, zero-padded at the end to fill reportLength — the
// headerLength budget is reserved trailing space on each page, not a
// leading header block; only the report-ID byte actually precedes the
// payload on the wire.
func Paginate(data []byte, reportLength, headerLength int) [][]byte {
	payloadLength := reportLength - headerLength
	var pages [][]byte

	for offset := 0; offset < len(data); offset += payloadLength {
		end := offset + payloadLength
		if end > len(data) {
			end = len(data)
		}

		page := make([]byte, reportLength)
		copy(page[1:], data[offset:end])
		pages = append(pages, page)
	}

	return pages
}
