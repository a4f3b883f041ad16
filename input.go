package mdeck

import "github.com/HopIT-Hub/mdeck-go/internal/protocol"

// Input is the decoded payload of one input report.
type Input = protocol.Input

// InputKind tags the variant carried by an Input value.
type InputKind = protocol.InputKind

const (
	InputNoData             = protocol.InputNoData
	InputButtonStateChange  = protocol.InputButtonStateChange
	InputEncoderStateChange = protocol.InputEncoderStateChange
	InputEncoderTwist       = protocol.InputEncoderTwist
)

// ParseInput decodes a raw input report for the given model. Session
// callers don't normally need this directly — ReadInput already
// parses — but it's exposed for callers replaying captured reports.
func ParseInput(kind Kind, data []byte) (Input, error) {
	return protocol.ParseInput(kind, data)
}
