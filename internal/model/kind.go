// Package model holds the per-device static data: which USB IDs map
// to which hardware, and how that hardware's key grid, encoders, and
// image surfaces are shaped.
package model

// Kind identifies a specific Ajazz/Mirabox hardware model.
type Kind int

const (
	Akp153 Kind = iota
	Akp153E
	Akp153R
	Akp815
	Akp03
	Akp03E
	Akp03R
	Akp03RRev2
	Akp05
)

func (k Kind) String() string {
	switch k {
	case Akp153:
		return "Ajazz AKP153"
	case Akp153E:
		return "Ajazz AKP153E"
	case Akp153R:
		return "Ajazz AKP153R"
	case Akp815:
		return "Ajazz AKP815"
	case Akp03:
		return "Ajazz AKP03"
	case Akp03E:
		return "Ajazz AKP03E"
	case Akp03R:
		return "Ajazz AKP03R"
	case Akp03RRev2:
		return "Ajazz AKP03R rev 2"
	case Akp05:
		return "Ajazz AKP05"
	default:
		return "unknown"
	}
}

// Mirabox vendor IDs. AKP153/AKP815 ship under the older v1 vendor ID;
// every other model ships under the v2 one.
const (
	VendorMiraboxV1 uint16 = 0x5548
	VendorMiraboxV2 uint16 = 0x0300
)

// Product IDs, keyed by Kind.
const (
	pidAkp153      uint16 = 0x6674
	pidAkp815      uint16 = 0x6672
	pidAkp153E     uint16 = 0x1010
	pidAkp153R     uint16 = 0x1020
	pidAkp03       uint16 = 0x1001
	pidAkp03E      uint16 = 0x3002
	pidAkp03R      uint16 = 0x1003
	pidAkp03RRev2  uint16 = 0x3003
	pidAkp05       uint16 = 0x3004
)

// IsMiraboxVendor reports whether vendor is one of the two Mirabox IDs
// this driver recognizes.
func IsMiraboxVendor(vendor uint16) bool {
	return vendor == VendorMiraboxV1 || vendor == VendorMiraboxV2
}

// FromVIDPID resolves a (vendor, product) pair to a Kind, if recognized.
func FromVIDPID(vid, pid uint16) (Kind, bool) {
	switch vid {
	case VendorMiraboxV1:
		switch pid {
		case pidAkp153:
			return Akp153, true
		case pidAkp815:
			return Akp815, true
		}
	case VendorMiraboxV2:
		switch pid {
		case pidAkp153E:
			return Akp153E, true
		case pidAkp153R:
			return Akp153R, true
		case pidAkp03:
			return Akp03, true
		case pidAkp03E:
			return Akp03E, true
		case pidAkp03R:
			return Akp03R, true
		case pidAkp03RRev2:
			return Akp03RRev2, true
		case pidAkp05:
			return Akp05, true
		}
	}
	return 0, false
}

// VendorID returns the USB vendor ID for k.
func (k Kind) VendorID() uint16 {
	switch k {
	case Akp153, Akp815:
		return VendorMiraboxV1
	default:
		return VendorMiraboxV2
	}
}

// ProductID returns the USB product ID for k.
func (k Kind) ProductID() uint16 {
	switch k {
	case Akp153:
		return pidAkp153
	case Akp153E:
		return pidAkp153E
	case Akp153R:
		return pidAkp153R
	case Akp815:
		return pidAkp815
	case Akp03:
		return pidAkp03
	case Akp03E:
		return pidAkp03E
	case Akp03R:
		return pidAkp03R
	case Akp03RRev2:
		return pidAkp03RRev2
	case Akp05:
		return pidAkp05
	default:
		return 0
	}
}

// KeyCount returns the total number of buttons (display + non-display) on k.
func (k Kind) KeyCount() uint8 {
	switch k {
	case Akp153, Akp153E, Akp153R:
		return 18
	case Akp815:
		return 15
	case Akp03, Akp03E, Akp03R, Akp03RRev2:
		return 9
	case Akp05:
		return 10
	default:
		return 0
	}
}

// DisplayKeyCount returns the number of buttons that carry an LCD image,
// as opposed to plain non-display buttons.
func (k Kind) DisplayKeyCount() uint8 {
	switch k {
	case Akp03, Akp03E, Akp03R, Akp03RRev2:
		return 6
	case Akp05:
		return 10
	default:
		return k.KeyCount()
	}
}

// RowCount returns the number of button rows on k.
func (k Kind) RowCount() uint8 {
	switch k {
	case Akp153, Akp153E, Akp153R:
		return 3
	case Akp815:
		return 5
	case Akp03, Akp03E, Akp03R, Akp03RRev2:
		return 2
	case Akp05:
		return 2
	default:
		return 0
	}
}

// ColumnCount returns the number of button columns on k.
func (k Kind) ColumnCount() uint8 {
	switch k {
	case Akp153, Akp153E, Akp153R:
		return 6
	case Akp815:
		return 3
	case Akp03, Akp03E, Akp03R, Akp03RRev2:
		return 3
	case Akp05:
		return 5
	default:
		return 0
	}
}

// EncoderCount returns the number of rotary encoders on k.
func (k Kind) EncoderCount() uint8 {
	switch k {
	case Akp03, Akp03E, Akp03R, Akp03RRev2:
		return 3
	case Akp05:
		return 4
	default:
		return 0
	}
}

// TouchpointCount returns the number of LCD-strip touch points on k.
func (k Kind) TouchpointCount() uint8 {
	if k == Akp05 {
		return 6
	}
	return 0
}

// LCDStripSize returns the pixel dimensions of the LCD strip/screen, if k has one.
func (k Kind) LCDStripSize() (w, h int, ok bool) {
	switch k {
	case Akp153, Akp153E, Akp153R:
		return 854, 480, true
	case Akp815:
		return 800, 480, true
	case Akp05:
		return 800, 100, true
	default:
		return 0, 0, false
	}
}

// BootLogoSize returns the pixel dimensions expected for the boot logo, if k supports one.
func (k Kind) BootLogoSize() (w, h int, ok bool) {
	switch k {
	case Akp03, Akp03E, Akp03R, Akp03RRev2:
		return 320, 240, true
	default:
		return k.LCDStripSize()
	}
}

// IsV1API reports whether k uses the 512-byte-frame wire generation.
func (k Kind) IsV1API() bool {
	switch k {
	case Akp153, Akp153E, Akp153R, Akp815:
		return true
	default:
		return false
	}
}

// IsV2API reports whether k uses the 1024-byte-frame wire generation.
//
// This covers the whole AKP03 family, not just Akp03 itself: a narrower
// predicate leaves Akp03E/Akp03R/Akp03RRev2 matching neither API family,
// which would make them unable to parse any input report at all.
func (k Kind) IsV2API() bool {
	switch k {
	case Akp03, Akp03E, Akp03R, Akp03RRev2, Akp05:
		return true
	default:
		return false
	}
}

// PacketLength returns the HID report payload length (excluding the
// leading report-ID byte) used for this model's request frames.
func (k Kind) PacketLength() int {
	if k.IsV2API() {
		return 1024
	}
	return 512
}
