// Package ft232h adapts an FTDI FT232H MPSSE bridge into the serial
// transport consumed by pkg/ads129x, with GPIO helpers for the chip's
// DRDY and PWDN lines.
package ft232h

import (
	"fmt"
	"strconv"

	"github.com/yunginnanet/ft232h"
)

// DeviceInfo is a read-only snapshot of the FTDI device identity.
type DeviceInfo struct {
	Index       int
	Serial      string
	Description string
	ProductID   string
	VendorID    string
	IsOpen      bool
	IsHighSpeed bool
}

func (d DeviceInfo) String() string {
	return fmt.Sprintf(
		"DeviceInfo{Index:%d, Serial:%s, Description:%s, ProductID:%s, VendorID:%s, IsOpen:%t, IsHighSpeed:%t}",
		d.Index, d.Serial, d.Description, d.ProductID, d.VendorID, d.IsOpen, d.IsHighSpeed,
	)
}

// FT232H is an open FTDI bridge wired to an ADS129x. The SPI lanes
// carry the protocol; CS, DRDY and PWDN run over MPSSE GPIO.
type FT232H struct {
	*ft232h.FT232H
	csPin   ft232h.CPin
	drdyPin ft232h.CPin
	pwdnPin ft232h.CPin
}

func (ft *FT232H) vidPid() (vid string, pid string) {
	return fmt.Sprintf("%04x", ft.VID()), fmt.Sprintf("%04x", ft.PID())
}

// Info returns a snapshot of the device information. Read-only.
func (ft *FT232H) Info() DeviceInfo {
	vid, pid := ft.vidPid()
	return DeviceInfo{
		Index:       ft.Index(),
		Serial:      ft.Serial(),
		Description: ft.Desc(),
		ProductID:   pid,
		VendorID:    vid,
		IsOpen:      ft.IsOpen(),
		IsHighSpeed: ft.IsHiSpeed(),
	}
}

func (ft *FT232H) String() string {
	info := ft.Info()
	return fmt.Sprintf("FT232H[%s:%s]: %s", info.VendorID, info.ProductID, info.Description)
}

// Descriptor selects which FTDI device to open.
type Descriptor struct {
	Index  int
	Serial string
	mask   *ft232h.Mask
}

var ErrBadDescriptor = fmt.Errorf("invalid FT232H descriptor provided")

func emptyMask(mask *ft232h.Mask) bool {
	return mask == nil || (mask.Serial == "" && mask.PID == "" && mask.VID == "" && mask.Desc == "" && mask.Index == "")
}

func (ftd Descriptor) Validate() error {
	if ftd.Index < 0 && ftd.Serial == "" && emptyMask(ftd.mask) {
		return ErrBadDescriptor
	}
	return nil
}

func (ftd Descriptor) Mask() *ft232h.Mask {
	if ftd.mask == nil {
		ftd.mask = new(ft232h.Mask)
	}
	if ftd.Serial != "" {
		ftd.mask.Serial = ftd.Serial
	}
	if ftd.Index >= 0 {
		ftd.mask.Index = strconv.Itoa(ftd.Index)
	}
	return ftd.mask
}

func (ftd Descriptor) String() string {
	return fmt.Sprintf("Descriptor{Index:%d, Serial:%s, mask:%v}", ftd.Index, ftd.Serial, ftd.mask)
}

func ByIndex(index int) Descriptor {
	return Descriptor{Index: index}
}

func BySerial(serial string) Descriptor {
	return Descriptor{Serial: serial, Index: -1}
}

func ByMask(mask *ft232h.Mask) Descriptor {
	return Descriptor{mask: mask, Index: -1}
}

// Connect opens an FTDI device. With no descriptor the first device
// found is used.
func Connect(choice ...Descriptor) (ft *FT232H, err error) {
	ft = &FT232H{}

	switch len(choice) {
	case 0:
		ft.FT232H, err = ft232h.New()
	case 1:
		if err = choice[0].Validate(); err != nil {
			return nil, ErrBadDescriptor
		}
		ft.FT232H, err = ft232h.OpenMask(choice[0].Mask())
	default:
		return nil, fmt.Errorf("invalid number of arguments")
	}

	return ft, err
}
