// Package protocol implements the Ajazz/Mirabox wire framing: request
// packet construction, ACK recognition, and input-report decoding.
package protocol

// Feature report ID used to read the firmware version string.
const FeatureReportIDVersion = 0x01

// Offsets within an input report.
const (
	OffsetDataLength = 0
	OffsetActionCode = 9
)

// InputPacketLength is the length of an input report, in bytes.
const InputPacketLength = 512

// Action codes for the v2 (AKP03/AKP05) input path.
const (
	actionNop        = 0x00
	actionButton7    = 0x25
	actionButton8    = 0x30
	actionButton9    = 0x31
	actionEncoder0CCW = 0x90
	actionEncoder0CW  = 0x91
	actionEncoder1CCW = 0x50
	actionEncoder1CW  = 0x51
	actionEncoder2CCW = 0x60
	actionEncoder2CW  = 0x61
	actionEncoder0Press = 0x33
	actionEncoder1Press = 0x35
	actionEncoder2Press = 0x34
)

// CmdClearAll is the sentinel key byte meaning "clear every button image".
const CmdClearAll = 0xFF

var requestHeader = []byte{0x00, 0x43, 0x52, 0x54, 0x00, 0x00}

var (
	cmdInitialize       = []byte{0x44, 0x49, 0x53}
	cmdBrightness       = []byte{0x4c, 0x49, 0x47, 0x00, 0x00}
	cmdKeepAlive        = []byte{0x43, 0x4F, 0x4E, 0x4E, 0x45, 0x43, 0x54}
	cmdShutdown         = []byte{0x43, 0x4c, 0x45, 0x00, 0x00, 0x44, 0x43}
	cmdSleep            = []byte{0x48, 0x41, 0x4E}
	cmdClearButtonImage = []byte{0x43, 0x4c, 0x45, 0x00, 0x00, 0x00}
	cmdFlush            = []byte{0x53, 0x54, 0x50}
	cmdImageAnnounce    = []byte{0x42, 0x41, 0x54, 0x00, 0x00}
	cmdLogoImageV1      = []byte{0x4c, 0x4f, 0x47, 0x00, 0x12, 0xc3, 0xc0, 0x01}
	cmdLogoImageV2      = []byte{0x4c, 0x4f, 0x47, 0x00, 0x00}
)

// ResponseAckOK is the prefix a 512-byte read must have to be recognized
// as a completed-write acknowledgement.
var ResponseAckOK = []byte{0x41, 0x43, 0x4b, 0x00, 0x00, 0x4f, 0x4b}
