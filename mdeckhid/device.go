// Package mdeckhid is the USB-HID transport the session is coded
// against: a thin wrapper over github.com/karalabe/hid, plus a fake
// in-memory implementation for tests that don't touch real hardware.
package mdeckhid

import "time"

// Device is the transport surface a Session needs from an open HID
// handle. It mirrors github.com/karalabe/hid's Device, with the
// feature-report and timeout methods the protocol actually uses.
type Device interface {
	Write(b []byte) (int, error)
	Read(b []byte) (int, error)
	ReadTimeout(b []byte, timeout time.Duration) (int, error)
	GetFeatureReport(b []byte) (int, error)
	Manufacturer() (string, error)
	Product() (string, error)
	SerialNumber() (string, error)
	Close() error
}

// Info describes one enumerated HID device, before it's opened.
type Info struct {
	VendorID  uint16
	ProductID uint16
	Serial    string
}

// Enumerator lists HID devices currently attached to the system and
// opens a specific one by (vendor, product, serial).
type Enumerator interface {
	Enumerate() ([]Info, error)
	OpenSerial(vendorID, productID uint16, serial string) (Device, error)
}
