package mdeck

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/HopIT-Hub/mdeck-go/internal/imaging"
	"github.com/HopIT-Hub/mdeck-go/internal/protocol"
	"github.com/HopIT-Hub/mdeck-go/mdeckhid"
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

func connectedSession(t *testing.T, kind Kind) (*Session, *mdeckhid.FakeDevice) {
	t.Helper()

	dev := mdeckhid.NewFakeDevice()
	enumerator := &mdeckhid.FakeEnumerator{
		Devices: map[string]mdeckhid.Device{"SERIAL1": dev},
	}

	session, err := Connect(enumerator, kind, "SERIAL1")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	return session, dev
}

func TestConnectWithRetriesSucceedsAfterFailures(t *testing.T) {
	dev := mdeckhid.NewFakeDevice()
	enumerator := &mdeckhid.FakeEnumerator{
		FailN:   2,
		Devices: map[string]mdeckhid.Device{"SERIAL1": dev},
	}

	session, err := ConnectWithRetries(enumerator, Akp153, "SERIAL1", 5)
	if err != nil {
		t.Fatalf("ConnectWithRetries: %v", err)
	}
	if session.Kind() != Akp153 {
		t.Errorf("Kind() = %s, want Akp153", session.Kind())
	}
}

func TestConnectWithRetriesGivesUp(t *testing.T) {
	enumerator := &mdeckhid.FakeEnumerator{
		FailN:   5,
		Devices: map[string]mdeckhid.Device{},
	}
	if _, err := ConnectWithRetries(enumerator, Akp153, "SERIAL1", 2); err == nil {
		t.Error("ConnectWithRetries succeeded, want error")
	}
}

func TestSleepWritesInitializeThenSleep(t *testing.T) {
	session, dev := connectedSession(t, Akp153)

	if err := session.Sleep(); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if len(dev.Writes) != 2 {
		t.Fatalf("got %d writes, want 2 (initialize + sleep)", len(dev.Writes))
	}

	if err := session.Sleep(); err != nil {
		t.Fatalf("Sleep (second call): %v", err)
	}
	if len(dev.Writes) != 3 {
		t.Fatalf("got %d writes after second Sleep, want 3 (initialize is a one-shot)", len(dev.Writes))
	}
}

func TestFlushWithNothingQueuedIsNoop(t *testing.T) {
	session, dev := connectedSession(t, Akp153)

	if err := session.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	// Only the implicit initialize write, no flush command.
	if len(dev.Writes) != 1 {
		t.Errorf("got %d writes, want 1 (initialize only)", len(dev.Writes))
	}
}

func TestSetButtonImageDataThenFlushWritesAnnounceAndFlush(t *testing.T) {
	session, dev := connectedSession(t, Akp153)

	if err := session.SetButtonImageData(0, []byte{0xDE, 0xAD}); err != nil {
		t.Fatalf("SetButtonImageData: %v", err)
	}
	if len(dev.Writes) != 1 {
		t.Fatalf("got %d writes before Flush, want 1 (initialize only, queue is pending)", len(dev.Writes))
	}

	if err := session.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	// initialize, announce, one image page, flush.
	if len(dev.Writes) != 4 {
		t.Fatalf("got %d writes after Flush, want 4", len(dev.Writes))
	}
}

func TestSetButtonImageThenFlushWritesAnnounceAndFlush(t *testing.T) {
	session, dev := connectedSession(t, Akp153)

	img := solidImage(200, 150, color.RGBA{R: 255, A: 255})
	converted, err := ConvertImage(Akp153, img)
	if err != nil {
		t.Fatalf("ConvertImage: %v", err)
	}
	wantPages := len(imaging.Paginate(converted, 513, 1))

	if err := session.SetButtonImage(0, img); err != nil {
		t.Fatalf("SetButtonImage: %v", err)
	}
	if len(dev.Writes) != 1 {
		t.Fatalf("got %d writes before Flush, want 1 (initialize only, queue is pending)", len(dev.Writes))
	}

	if err := session.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	// initialize, announce, wantPages image pages, flush.
	wantWrites := 3 + wantPages
	if len(dev.Writes) != wantWrites {
		t.Fatalf("got %d writes after Flush, want %d", len(dev.Writes), wantWrites)
	}
}

func TestClearAllButtonImagesFlushesOnV2Only(t *testing.T) {
	v1, v1dev := connectedSession(t, Akp153)
	if err := v1.ClearAllButtonImages(); err != nil {
		t.Fatalf("ClearAllButtonImages (v1): %v", err)
	}
	// initialize + clear, no flush.
	if len(v1dev.Writes) != 2 {
		t.Errorf("v1: got %d writes, want 2 (no flush)", len(v1dev.Writes))
	}

	v2, v2dev := connectedSession(t, Akp03)
	if err := v2.ClearAllButtonImages(); err != nil {
		t.Fatalf("ClearAllButtonImages (v2): %v", err)
	}
	// initialize + clear + flush.
	if len(v2dev.Writes) != 3 {
		t.Errorf("v2: got %d writes, want 3 (clear + flush)", len(v2dev.Writes))
	}
}

func TestReadInputDecodesQueuedReport(t *testing.T) {
	session, dev := connectedSession(t, Akp153)

	data := make([]byte, protocol.InputPacketLength)
	data[protocol.OffsetDataLength] = 1
	data[protocol.OffsetActionCode] = 1 // raw index 0
	dev.QueueRead(data)

	in, err := session.ReadInput(time.Second)
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if in.Kind != protocol.InputButtonStateChange {
		t.Errorf("Kind = %v, want InputButtonStateChange", in.Kind)
	}
}

func TestCloseClosesDevice(t *testing.T) {
	session, dev := connectedSession(t, Akp153)
	if err := session.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !dev.Closed() {
		t.Error("underlying device was not closed")
	}
}
