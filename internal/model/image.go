package model

// ImageRotation is a right-angle rotation applied before resizing.
type ImageRotation int

const (
	Rot0 ImageRotation = iota
	Rot90
	Rot180
	Rot270
)

// ImageMirroring is a flip applied after resizing.
type ImageMirroring int

const (
	MirrorNone ImageMirroring = iota
	MirrorX
	MirrorY
	MirrorBoth
)

// ImageMode selects the encoded wire format of a converted image.
type ImageMode int

const (
	ModeNone ImageMode = iota
	ModeJPEG
)

// ImageFormat describes the pixel size and transform pipeline a given
// image surface (key, LCD, boot logo) expects.
type ImageFormat struct {
	Mode     ImageMode
	Width    int
	Height   int
	Rotation ImageRotation
	Mirror   ImageMirroring
}

// KeyImageFormat returns the format expected for a single button's image.
func (k Kind) KeyImageFormat() ImageFormat {
	switch k {
	case Akp153, Akp153E, Akp153R:
		return ImageFormat{Mode: ModeJPEG, Width: 85, Height: 85, Rotation: Rot90, Mirror: MirrorBoth}
	case Akp815, Akp05:
		return ImageFormat{Mode: ModeJPEG, Width: 100, Height: 100, Rotation: Rot180, Mirror: MirrorNone}
	case Akp03, Akp03E, Akp03R:
		return ImageFormat{Mode: ModeJPEG, Width: 60, Height: 60, Rotation: Rot0, Mirror: MirrorNone}
	case Akp03RRev2:
		return ImageFormat{Mode: ModeJPEG, Width: 64, Height: 64, Rotation: Rot90, Mirror: MirrorNone}
	default:
		return ImageFormat{}
	}
}

// LogoImageFormat returns the format expected for the boot logo image.
func (k Kind) LogoImageFormat() ImageFormat {
	switch k {
	case Akp03, Akp03E, Akp03R, Akp03RRev2:
		return ImageFormat{Mode: ModeJPEG, Width: 240, Height: 320, Rotation: Rot90, Mirror: MirrorNone}
	case Akp153, Akp153E, Akp153R:
		return ImageFormat{Mode: ModeJPEG, Width: 854, Height: 480, Rotation: Rot0, Mirror: MirrorNone}
	default:
		return ImageFormat{Mode: ModeJPEG, Width: 800, Height: 480, Rotation: Rot0, Mirror: MirrorNone}
	}
}

// LCDImageFormat returns the format used when filling the LCD strip, if k has one.
func (k Kind) LCDImageFormat() (ImageFormat, bool) {
	if k != Akp05 {
		return ImageFormat{}, false
	}
	return ImageFormat{Mode: ModeJPEG, Width: 800, Height: 100, Rotation: Rot180, Mirror: MirrorNone}, true
}

// logicalToDevice18 is the Akp153-family fixed key-grid permutation: a
// caller's row-major logical index maps to this device/cache index.
var logicalToDevice18 = [18]uint8{0, 3, 6, 9, 12, 15, 1, 4, 7, 10, 13, 16, 2, 5, 8, 11, 14, 17}

var logicalToDevice15 = [15]uint8{0, 3, 6, 9, 12, 1, 4, 7, 10, 13, 2, 5, 8, 11, 14}

var logicalToDevice05 = [10]uint8{10, 11, 12, 13, 14, 5, 6, 7, 8, 9}

// LogicalToDevice maps a caller-facing (row-major) key index to the
// index used when addressing the device's per-key image cache. This is
// the mapping exercised by SetButtonImage/SetButtonImageData.
func (k Kind) LogicalToDevice(key uint8) (uint8, bool) {
	if key >= k.DisplayKeyCount() {
		return 0, false
	}

	switch k {
	case Akp153, Akp153E, Akp153R:
		if key < k.KeyCount() {
			return logicalToDevice18[key], true
		}
	case Akp815:
		if key < k.KeyCount() {
			return logicalToDevice15[key], true
		}
	case Akp05:
		if key < k.KeyCount() {
			return logicalToDevice05[key], true
		}
	}
	return key, true
}

// nativeToLogical18 inverts logicalToNative18 below, for the Akp153 family.
var nativeToLogical18 = [18]uint8{4, 10, 16, 3, 9, 15, 2, 8, 14, 1, 7, 13, 0, 6, 12, 5, 11, 17}

// logicalToNative18 is the Akp153-family permutation paired with
// nativeToLogical18: the v1 input-report path translates the device's
// reported button index with the inverse table, and the key-image
// announce packet translates its index with this one.
var logicalToNative18 = [18]uint8{12, 9, 6, 3, 0, 15, 13, 10, 7, 4, 1, 16, 14, 11, 8, 5, 2, 17}

// NativeToLogical translates the v1 wire's reported button index into the
// caller-facing logical index space. Only meaningful for v1-API kinds.
//
// Akp815 uses its own 15-entry involution (key_count()-1-i) rather than
// the 18-entry Akp153-family table: reusing that table unconditionally
// for every v1 model, as a naive port would, breaks the round-trip
// identity for any model whose key count differs from 18.
func (k Kind) NativeToLogical(i uint8) (uint8, bool) {
	if !k.IsV1API() || i >= k.KeyCount() {
		return 0, false
	}

	switch k {
	case Akp153, Akp153E, Akp153R:
		return nativeToLogical18[i], true
	case Akp815:
		return k.KeyCount() - 1 - i, true
	default:
		return 0, false
	}
}

// LogicalToNative is the inverse of NativeToLogical, for the same v1-API
// restriction. It is used when building the key-image announce packet.
func (k Kind) LogicalToNative(key uint8) (uint8, bool) {
	if !k.IsV1API() || key >= k.KeyCount() {
		return 0, false
	}

	switch k {
	case Akp153, Akp153E, Akp153R:
		return logicalToNative18[key], true
	case Akp815:
		return k.KeyCount() - 1 - key, true
	default:
		return 0, false
	}
}
