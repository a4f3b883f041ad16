package mdeck

import (
	"github.com/HopIT-Hub/mdeck-go/internal/model"
	"github.com/HopIT-Hub/mdeck-go/mdeckhid"
)

// DeviceInfo identifies one connectable device before it's opened.
type DeviceInfo struct {
	Kind   Kind
	Serial string
}

// ListDevices returns every attached, recognized, serial-bearing
// device reachable through enumerator, deduplicated by (Kind, Serial).
func ListDevices(enumerator mdeckhid.Enumerator) ([]DeviceInfo, error) {
	raw, err := enumerator.Enumerate()
	if err != nil {
		return nil, err
	}

	seen := make(map[DeviceInfo]bool, len(raw))
	var out []DeviceInfo
	for _, d := range raw {
		if !model.IsMiraboxVendor(d.VendorID) || d.Serial == "" {
			continue
		}
		kind, ok := FromVIDPID(d.VendorID, d.ProductID)
		if !ok {
			continue
		}

		info := DeviceInfo{Kind: kind, Serial: d.Serial}
		if seen[info] {
			continue
		}
		seen[info] = true
		out = append(out, info)
	}
	return out, nil
}
