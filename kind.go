// Package mdeck drives Ajazz/Mirabox AKP-series USB-HID macro
// controllers: key-grid stream-deck-style devices with per-key
// displays, an optional LCD strip, and optional rotary encoders.
//
// A Session owns one connected device. EventReader turns its raw
// input reports into discrete button/encoder Down/Up/Twist events.
// AsyncSession and AsyncEventReader wrap the same core for callers
// that want a context.Context-aware, non-blocking-dispatch API.
package mdeck

import "github.com/HopIT-Hub/mdeck-go/internal/model"

// Kind identifies a specific Ajazz/Mirabox hardware model.
type Kind = model.Kind

// Recognized hardware models.
const (
	Akp153     = model.Akp153
	Akp153E    = model.Akp153E
	Akp153R    = model.Akp153R
	Akp815     = model.Akp815
	Akp03      = model.Akp03
	Akp03E     = model.Akp03E
	Akp03R     = model.Akp03R
	Akp03RRev2 = model.Akp03RRev2
	Akp05      = model.Akp05
)

// FromVIDPID resolves a (vendor, product) pair to a Kind, if recognized.
func FromVIDPID(vid, pid uint16) (Kind, bool) {
	return model.FromVIDPID(vid, pid)
}
