package mdeckhid

import (
	"fmt"
	"time"

	"github.com/karalabe/hid"
)

// karalabeEnumerator backs Enumerator with github.com/karalabe/hid.
type karalabeEnumerator struct{}

// NewEnumerator returns the real USB-HID enumerator.
func NewEnumerator() Enumerator {
	return karalabeEnumerator{}
}

func (karalabeEnumerator) Enumerate() ([]Info, error) {
	raw := hid.Enumerate(0, 0)
	infos := make([]Info, 0, len(raw))
	for _, d := range raw {
		infos = append(infos, Info{VendorID: d.VendorID, ProductID: d.ProductID, Serial: d.Serial})
	}
	return infos, nil
}

func (karalabeEnumerator) OpenSerial(vendorID, productID uint16, serial string) (Device, error) {
	for _, d := range hid.Enumerate(vendorID, productID) {
		if d.Serial != serial {
			continue
		}
		dev, err := d.Open()
		if err != nil {
			return nil, fmt.Errorf("open hid device %04x:%04x serial %q: %w", vendorID, productID, serial, err)
		}
		return &karalabeDevice{dev: dev, manufacturer: d.Manufacturer, product: d.Product, serial: d.Serial}, nil
	}
	return nil, fmt.Errorf("no hid device %04x:%04x with serial %q", vendorID, productID, serial)
}

// karalabeDevice adapts hid.Device to Device, mainly translating the
// timeout argument and exposing string identity accessors the upstream
// interface lacks by reading the enumeration record at open time.
type karalabeDevice struct {
	dev                         hid.Device
	manufacturer, product, serial string
}

func (d *karalabeDevice) Write(b []byte) (int, error) { return d.dev.Write(b) }
func (d *karalabeDevice) Read(b []byte) (int, error)  { return d.dev.Read(b) }

func (d *karalabeDevice) ReadTimeout(b []byte, timeout time.Duration) (int, error) {
	return d.dev.ReadTimeout(b, int(timeout.Milliseconds()))
}

func (d *karalabeDevice) GetFeatureReport(b []byte) (int, error) {
	return d.dev.GetFeatureReport(b)
}

func (d *karalabeDevice) Manufacturer() (string, error) { return d.manufacturer, nil }
func (d *karalabeDevice) Product() (string, error)      { return d.product, nil }
func (d *karalabeDevice) SerialNumber() (string, error) { return d.serial, nil }

func (d *karalabeDevice) Close() error { return d.dev.Close() }
