package mdeck

import "github.com/HopIT-Hub/mdeck-go/internal/mdeckerr"

// Sentinel errors a caller can compare against with errors.Is.
var (
	ErrBadData              = mdeckerr.ErrBadData
	ErrUnsupportedOperation = mdeckerr.ErrUnsupportedOperation
	ErrNoAck                = mdeckerr.ErrNoAck
)

// InvalidKeyIndex is returned when a caller-supplied key index is out
// of range for the connected Kind. Use errors.As to recover the index.
type InvalidKeyIndex = mdeckerr.InvalidKeyIndex

// UnrecognizedPID describes a USB product ID this driver doesn't
// recognize. No function in this package returns it: ListDevices skips
// such devices, and Connect takes a Kind rather than a product ID.
type UnrecognizedPID = mdeckerr.UnrecognizedPID

// InvalidImageSize describes an image that doesn't match the target
// surface's expected dimensions. No function in this package returns
// it: ConvertImage resizes to the target size instead.
type InvalidImageSize = mdeckerr.InvalidImageSize
