package protocol

import (
	"fmt"

	"github.com/HopIT-Hub/mdeck-go/internal/mdeckerr"
	"github.com/HopIT-Hub/mdeck-go/internal/model"
)

// InputKind tags the variant carried by an Input value.
type InputKind int

const (
	InputNoData InputKind = iota
	InputButtonStateChange
	InputEncoderStateChange
	InputEncoderTwist
)

// Input is the decoded payload of one input report.
type Input struct {
	Kind     InputKind
	Buttons  []bool // InputButtonStateChange / InputEncoderStateChange
	Twist    []int8 // InputEncoderTwist
}

// IsEmpty reports whether the report carried no data.
func (in Input) IsEmpty() bool {
	return in.Kind == InputNoData
}

// ParseInput decodes a raw input report for the given model.
func ParseInput(kind model.Kind, data []byte) (Input, error) {
	if len(data) <= OffsetActionCode {
		return Input{}, fmt.Errorf("parse input: short report (%d bytes): %w", len(data), mdeckerr.ErrBadData)
	}
	if data[OffsetDataLength] == 0 {
		return Input{Kind: InputNoData}, nil
	}

	actionCode := data[OffsetActionCode]

	switch {
	case kind.IsV1API():
		return parseV1(kind, actionCode)
	case kind.IsV2API():
		return parseV2(kind, actionCode)
	default:
		return Input{}, mdeckerr.ErrUnsupportedOperation
	}
}

func parseV1(kind model.Kind, actionCode byte) (Input, error) {
	states := make([]bool, kind.KeyCount())
	if actionCode != actionNop {
		rawIndex := actionCode - 1
		index, ok := kind.NativeToLogical(rawIndex)
		if !ok {
			return Input{}, mdeckerr.ErrBadData
		}
		states[index] = true
	}
	return Input{Kind: InputButtonStateChange, Buttons: states}, nil
}

func parseV2(kind model.Kind, actionCode byte) (Input, error) {
	switch {
	case isV2ButtonPress(actionCode):
		return parseV2ButtonPress(kind, actionCode)
	case isV2EncoderTwist(actionCode):
		return parseV2EncoderTwist(kind, actionCode)
	case isV2EncoderPress(actionCode):
		return parseV2EncoderPress(kind, actionCode)
	default:
		return Input{}, mdeckerr.ErrBadData
	}
}

func isV2ButtonPress(code byte) bool {
	switch {
	case code >= 1 && code <= 6:
		return true
	case code == actionButton7, code == actionButton8, code == actionButton9:
		return true
	default:
		return false
	}
}

func parseV2ButtonPress(kind model.Kind, code byte) (Input, error) {
	states := make([]bool, kind.KeyCount())

	var pressed int
	switch {
	case code >= 1 && code <= 6:
		pressed = int(code)
	case code == actionButton7:
		pressed = 7
	case code == actionButton8:
		pressed = 8
	case code == actionButton9:
		pressed = 9
	default:
		return Input{}, mdeckerr.ErrBadData
	}

	if pressed-1 >= len(states) {
		return Input{}, mdeckerr.ErrBadData
	}
	states[pressed-1] = true
	return Input{Kind: InputButtonStateChange, Buttons: states}, nil
}

func isV2EncoderTwist(code byte) bool {
	switch code {
	case actionEncoder0CCW, actionEncoder0CW, actionEncoder1CCW, actionEncoder1CW, actionEncoder2CCW, actionEncoder2CW:
		return true
	default:
		return false
	}
}

func parseV2EncoderTwist(kind model.Kind, code byte) (Input, error) {
	twist := make([]int8, kind.EncoderCount())

	var encoder int
	var value int8
	switch code {
	case actionEncoder0CCW:
		encoder, value = 0, -1
	case actionEncoder0CW:
		encoder, value = 0, 1
	case actionEncoder1CCW:
		encoder, value = 1, -1
	case actionEncoder1CW:
		encoder, value = 1, 1
	case actionEncoder2CCW:
		encoder, value = 2, -1
	case actionEncoder2CW:
		encoder, value = 2, 1
	default:
		return Input{}, mdeckerr.ErrBadData
	}
	if encoder >= len(twist) {
		return Input{}, mdeckerr.ErrBadData
	}
	twist[encoder] = value
	return Input{Kind: InputEncoderTwist, Twist: twist}, nil
}

func isV2EncoderPress(code byte) bool {
	switch code {
	case actionEncoder0Press, actionEncoder1Press, actionEncoder2Press:
		return true
	default:
		return false
	}
}

func parseV2EncoderPress(kind model.Kind, code byte) (Input, error) {
	states := make([]bool, kind.EncoderCount())

	var encoder int
	switch code {
	case actionEncoder0Press:
		encoder = 0
	case actionEncoder1Press:
		encoder = 1
	case actionEncoder2Press:
		encoder = 2
	default:
		return Input{}, mdeckerr.ErrBadData
	}
	if encoder >= len(states) {
		return Input{}, mdeckerr.ErrBadData
	}
	states[encoder] = true
	return Input{Kind: InputEncoderStateChange, Buttons: states}, nil
}
