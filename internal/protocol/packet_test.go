package protocol

import (
	"bytes"
	"testing"

	"github.com/HopIT-Hub/mdeck-go/internal/model"
)

func padded(kind model.Kind, prefix []byte) []byte {
	out := make([]byte, kind.PacketLength()+1)
	copy(out, prefix)
	return out
}

func TestBrightnessPacket(t *testing.T) {
	got := BrightnessPacket(model.Akp153, 50)
	want := padded(model.Akp153, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x4c, 0x49, 0x47, 0x00, 0x00, 50})
	if !bytes.Equal(got, want) {
		t.Errorf("BrightnessPacket = % x, want % x", got, want)
	}
}

func TestKeepAlivePacket(t *testing.T) {
	got := KeepAlivePacket(model.Akp153)
	want := padded(model.Akp153, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x43, 0x4F, 0x4E, 0x4E, 0x45, 0x43, 0x54})
	if !bytes.Equal(got, want) {
		t.Errorf("KeepAlivePacket = % x, want % x", got, want)
	}
}

func TestInitializePacket(t *testing.T) {
	got := InitializePacket(model.Akp153)
	want := padded(model.Akp153, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x44, 0x49, 0x53})
	if !bytes.Equal(got, want) {
		t.Errorf("InitializePacket = % x, want % x", got, want)
	}
}

func TestSleepPacket(t *testing.T) {
	got := SleepPacket(model.Akp153)
	want := padded(model.Akp153, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x48, 0x41, 0x4E})
	if !bytes.Equal(got, want) {
		t.Errorf("SleepPacket = % x, want % x", got, want)
	}
}

func TestShutdownPacket(t *testing.T) {
	got := ShutdownPacket(model.Akp153)
	want := padded(model.Akp153, []byte{
		0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x43, 0x4c, 0x45, 0x00, 0x00, 0x44, 0x43,
	})
	if !bytes.Equal(got, want) {
		t.Errorf("ShutdownPacket = % x, want % x", got, want)
	}
}

func TestClearButtonImagePacket(t *testing.T) {
	cases := []struct {
		key  uint8
		want []byte
	}{
		{0, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x43, 0x4c, 0x45, 0x00, 0x00, 0x00, 0x05}},
		{1, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x43, 0x4c, 0x45, 0x00, 0x00, 0x00, 0x0B}},
		{0xff, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x43, 0x4c, 0x45, 0x00, 0x00, 0x00, 0xff}},
	}

	for _, c := range cases {
		got := ClearButtonImagePacket(model.Akp153, c.key)
		want := padded(model.Akp153, c.want)
		if !bytes.Equal(got, want) {
			t.Errorf("ClearButtonImagePacket(Akp153, %#x) = % x, want % x", c.key, got, want)
		}
	}
}

func TestFlushPacket(t *testing.T) {
	got := FlushPacket(model.Akp153)
	want := padded(model.Akp153, []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x53, 0x54, 0x50})
	if !bytes.Equal(got, want) {
		t.Errorf("FlushPacket = % x, want % x", got, want)
	}
}

func TestImageAnnouncePacket(t *testing.T) {
	got := ImageAnnouncePacket(model.Akp03RRev2, 0, []byte{0x00, 0x01})
	want := padded(model.Akp03RRev2, []byte{
		0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x42, 0x41, 0x54, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
	})
	if !bytes.Equal(got, want) {
		t.Errorf("ImageAnnouncePacket = % x, want % x", got, want)
	}
}

func TestLogoImagePacket(t *testing.T) {
	got := LogoImagePacket(model.Akp153, []byte{0x00, 0x01})
	want := padded(model.Akp153, []byte{
		0x00, 0x43, 0x52, 0x54, 0x00, 0x00, 0x4c, 0x4f, 0x47, 0x00, 0x12, 0xc3, 0xc0, 0x01,
	})
	if !bytes.Equal(got, want) {
		t.Errorf("LogoImagePacket = % x, want % x", got, want)
	}
}

func TestIsAckOK(t *testing.T) {
	ack := make([]byte, 512)
	copy(ack, ResponseAckOK)

	if !IsAckOK(ack) {
		t.Error("IsAckOK(valid ack) = false, want true")
	}
	if IsAckOK(make([]byte, 512)) {
		t.Error("IsAckOK(zeroed buffer) = true, want false")
	}
	if IsAckOK(nil) {
		t.Error("IsAckOK(nil) = true, want false")
	}
}

func TestPacketLengthMatchesFrameLength(t *testing.T) {
	for _, kind := range []model.Kind{model.Akp153, model.Akp815, model.Akp03, model.Akp05} {
		got := len(KeepAlivePacket(kind))
		want := kind.PacketLength() + 1
		if got != want {
			t.Errorf("%s: packet length = %d, want %d", kind, got, want)
		}
	}
}
