package imaging

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"testing"

	"github.com/HopIT-Hub/mdeck-go/internal/model"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestConvertProducesValidJPEGAtTargetSize(t *testing.T) {
	format := model.Akp153.KeyImageFormat()
	src := solidImage(200, 150, color.RGBA{R: 255, A: 255})

	data, err := Convert(format, src)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Convert returned no data")
	}

	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode converted image: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != format.Width || b.Dy() != format.Height {
		t.Errorf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), format.Width, format.Height)
	}
}

func TestPaginateSingleLeadingZeroByte(t *testing.T) {
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i + 1)
	}

	pages := Paginate(data, 8, 1)
	// payloadLength = 7, so 10 bytes needs 2 pages.
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	for _, page := range pages {
		if len(page) != 8 {
			t.Errorf("page length = %d, want 8", len(page))
		}
		if page[0] != 0x00 {
			t.Errorf("page[0] = %#x, want 0x00", page[0])
		}
	}
	if pages[0][1] != 1 || pages[1][1] != 8 {
		t.Errorf("page payload start mismatch: %v / %v", pages[0][1:], pages[1][1:])
	}
}

func TestPaginateTrailingPagePadded(t *testing.T) {
	data := []byte{0xAA, 0xBB}
	pages := Paginate(data, 8, 1)
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	want := []byte{0x00, 0xAA, 0xBB, 0x00, 0x00, 0x00, 0x00, 0x00}
	for i := range want {
		if pages[0][i] != want[i] {
			t.Errorf("pages[0] = % x, want % x", pages[0], want)
			break
		}
	}
}

func TestToRectPreservesNativeSize(t *testing.T) {
	src := solidImage(64, 32, color.RGBA{G: 255, A: 255})
	rect, err := ToRect(src)
	if err != nil {
		t.Fatalf("ToRect: %v", err)
	}
	if rect.Width != 64 || rect.Height != 32 {
		t.Errorf("rect size = %dx%d, want 64x32", rect.Width, rect.Height)
	}
}
