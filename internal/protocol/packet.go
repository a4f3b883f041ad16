package protocol

import "github.com/HopIT-Hub/mdeck-go/internal/model"

func formatRequest(cmd []byte) []byte {
	buf := make([]byte, 0, len(requestHeader)+len(cmd))
	buf = append(buf, requestHeader...)
	buf = append(buf, cmd...)
	return buf
}

// padPacket extends buf with zero bytes up to the model's frame length,
// which is the HID report length plus the leading report-ID byte.
func padPacket(kind model.Kind, buf []byte) []byte {
	length := kind.PacketLength() + 1
	if len(buf) >= length {
		return buf
	}
	out := make([]byte, length)
	copy(out, buf)
	return out
}

// BrightnessPacket builds the "set brightness" request, percent in 0-100.
func BrightnessPacket(kind model.Kind, percent uint8) []byte {
	buf := formatRequest(cmdBrightness)
	buf = append(buf, percent)
	return padPacket(kind, buf)
}

// KeepAlivePacket builds the periodic keep-alive request.
func KeepAlivePacket(kind model.Kind) []byte {
	return padPacket(kind, formatRequest(cmdKeepAlive))
}

// InitializePacket builds the one-shot initialize request.
func InitializePacket(kind model.Kind) []byte {
	return padPacket(kind, formatRequest(cmdInitialize))
}

// SleepPacket builds the sleep request.
func SleepPacket(kind model.Kind) []byte {
	return padPacket(kind, formatRequest(cmdSleep))
}

// ShutdownPacket builds the shutdown request.
func ShutdownPacket(kind model.Kind) []byte {
	return padPacket(kind, formatRequest(cmdShutdown))
}

// ClearButtonImagePacket builds a "clear one button's image" request.
// key must already be in device/native numbering (the caller translates
// a logical key through Kind.LogicalToDevice first), or be CmdClearAll.
//
// The wire index byte is Kind.NativeToLogical(key)+1 for v1-API models,
// falling back to key itself when the translation isn't defined (v2
// models, or key == CmdClearAll) — this mirrors the reference
// implementation's own behavior exactly, including applying the native-
// to-logical table to an index that is already in device/cache space.
func ClearButtonImagePacket(kind model.Kind, key uint8) []byte {
	if translated, ok := kind.NativeToLogical(key); ok {
		key = translated
	}
	if key != CmdClearAll {
		key++
	}

	buf := formatRequest(cmdClearButtonImage)
	buf = append(buf, key)
	return padPacket(kind, buf)
}

// FlushPacket builds the "commit pending button images" request.
func FlushPacket(kind model.Kind) []byte {
	return padPacket(kind, formatRequest(cmdFlush))
}

// ImageAnnouncePacket builds the "about to send image data for index"
// request that precedes a key image transfer. Boot-logo transfers use
// LogoImagePacket instead.
func ImageAnnouncePacket(kind model.Kind, index uint8, imageData []byte) []byte {
	buf := formatRequest(cmdImageAnnounce)
	buf = append(buf, byte(len(imageData)>>8), byte(len(imageData)), index)
	return padPacket(kind, buf)
}

// KeyImageAnnouncePacket builds the image-announce request for a single
// button. key must already be in device/native numbering.
func KeyImageAnnouncePacket(kind model.Kind, key uint8, imageData []byte) []byte {
	index := key
	if translated, ok := kind.LogicalToNative(key); ok {
		index = translated
	}
	return ImageAnnouncePacket(kind, index+1, imageData)
}

// LogoImagePacket builds the boot-logo announce request. v1 and v2
// devices use different fixed command tags.
func LogoImagePacket(kind model.Kind, imageData []byte) []byte {
	var buf []byte
	if kind.IsV2API() {
		buf = formatRequest(cmdLogoImageV2)
		buf = append(buf, byte(len(imageData)>>8), byte(len(imageData)))
	} else {
		buf = formatRequest(cmdLogoImageV1)
	}
	return padPacket(kind, buf)
}

// IsAckOK reports whether data is a recognized ACK frame.
func IsAckOK(data []byte) bool {
	if len(data) < len(ResponseAckOK) {
		return false
	}
	for i, b := range ResponseAckOK {
		if data[i] != b {
			return false
		}
	}
	return true
}

// FeatureReportVersionRequest builds the feature-report buffer used to
// read the firmware version string, including the leading report-ID byte.
func FeatureReportVersionRequest() []byte {
	buf := make([]byte, 21)
	buf[0] = FeatureReportIDVersion
	return buf
}
