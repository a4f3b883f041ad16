// Package mdeckerr holds the error taxonomy shared across the driver's
// internal packages, so it can be imported without creating a cycle
// back to the root package that re-exports it.
package mdeckerr

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the protocol and session layers.
var (
	ErrBadData              = errors.New("device sent unexpected data")
	ErrUnsupportedOperation = errors.New("the device doesn't support doing that")
	ErrNoAck                = errors.New("device didn't respond with ack")
)

// InvalidKeyIndex reports that a caller-supplied key index is out of range.
type InvalidKeyIndex struct {
	Key uint8
}

func (e *InvalidKeyIndex) Error() string {
	return fmt.Sprintf("key index is invalid: %d", e.Key)
}

// UnrecognizedPID reports a USB product ID with no known Kind mapping.
type UnrecognizedPID struct {
	PID uint16
}

func (e *UnrecognizedPID) Error() string {
	return fmt.Sprintf("unrecognized product id: 0x%04x", e.PID)
}

// InvalidImageSize reports an image whose dimensions don't match what
// the target surface expects.
type InvalidImageSize struct {
	Width, Height, ExpectedWidth, ExpectedHeight int
}

func (e *InvalidImageSize) Error() string {
	return fmt.Sprintf("invalid image size: %dx%d, expected %dx%d",
		e.Width, e.Height, e.ExpectedWidth, e.ExpectedHeight)
}
