package protocol

import (
	"errors"
	"testing"

	"github.com/HopIT-Hub/mdeck-go/internal/mdeckerr"
	"github.com/HopIT-Hub/mdeck-go/internal/model"
)

func report(actionCode byte) []byte {
	data := make([]byte, InputPacketLength)
	data[OffsetDataLength] = 1
	data[OffsetActionCode] = actionCode
	return data
}

func TestParseInputNoData(t *testing.T) {
	data := make([]byte, InputPacketLength)
	in, err := ParseInput(model.Akp153, data)
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if !in.IsEmpty() {
		t.Error("ParseInput(zeroed report).IsEmpty() = false, want true")
	}
}

func TestParseInputShortReport(t *testing.T) {
	_, err := ParseInput(model.Akp153, []byte{0x01})
	if !errors.Is(err, mdeckerr.ErrBadData) {
		t.Errorf("ParseInput(short report) err = %v, want ErrBadData", err)
	}
}

func TestParseInputV1ButtonPress(t *testing.T) {
	data := report(1) // raw index 0
	in, err := ParseInput(model.Akp153, data)
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if in.Kind != InputButtonStateChange {
		t.Fatalf("Kind = %v, want InputButtonStateChange", in.Kind)
	}

	want, _ := model.Akp153.NativeToLogical(0)
	count := 0
	for i, pressed := range in.Buttons {
		if pressed {
			count++
			if uint8(i) != want {
				t.Errorf("pressed index = %d, want %d", i, want)
			}
		}
	}
	if count != 1 {
		t.Errorf("%d buttons pressed, want 1", count)
	}
}

func TestParseInputV2ButtonPress(t *testing.T) {
	data := report(3)
	in, err := ParseInput(model.Akp03, data)
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if in.Kind != InputButtonStateChange {
		t.Fatalf("Kind = %v, want InputButtonStateChange", in.Kind)
	}
	if !in.Buttons[2] {
		t.Errorf("Buttons = %v, want index 2 pressed", in.Buttons)
	}
}

func TestParseInputV2EncoderTwist(t *testing.T) {
	data := report(actionEncoder0CW)
	in, err := ParseInput(model.Akp03, data)
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if in.Kind != InputEncoderTwist {
		t.Fatalf("Kind = %v, want InputEncoderTwist", in.Kind)
	}
	if in.Twist[0] != 1 {
		t.Errorf("Twist = %v, want [1, 0, 0]", in.Twist)
	}
}

func TestParseInputV2EncoderPress(t *testing.T) {
	data := report(actionEncoder1Press)
	in, err := ParseInput(model.Akp03, data)
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if in.Kind != InputEncoderStateChange {
		t.Fatalf("Kind = %v, want InputEncoderStateChange", in.Kind)
	}
	if !in.Buttons[1] {
		t.Errorf("Buttons = %v, want index 1 pressed", in.Buttons)
	}
}

func TestParseInputV2AuxButtonPress(t *testing.T) {
	// Akp03 has 9 keys but only 6 are the display grid; 0x25/0x30/0x31
	// report presses of the three non-display aux keys, 6/7/8.
	for code, want := range map[byte]int{actionButton7: 6, actionButton8: 7, actionButton9: 8} {
		data := report(code)
		in, err := ParseInput(model.Akp03, data)
		if err != nil {
			t.Fatalf("ParseInput(%#x): %v", code, err)
		}
		if in.Kind != InputButtonStateChange {
			t.Fatalf("ParseInput(%#x).Kind = %v, want InputButtonStateChange", code, in.Kind)
		}
		if len(in.Buttons) != int(model.Akp03.KeyCount()) {
			t.Fatalf("ParseInput(%#x).Buttons has %d entries, want %d", code, len(in.Buttons), model.Akp03.KeyCount())
		}
		if !in.Buttons[want] {
			t.Errorf("ParseInput(%#x).Buttons = %v, want index %d pressed", code, in.Buttons, want)
		}
	}
}

func TestParseInputUnrecognizedActionCode(t *testing.T) {
	data := report(0xAB)
	_, err := ParseInput(model.Akp03, data)
	if !errors.Is(err, mdeckerr.ErrBadData) {
		t.Errorf("ParseInput(unrecognized code) err = %v, want ErrBadData", err)
	}
}
