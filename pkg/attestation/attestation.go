// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package attestation

import (
	"os"

	tdxclient "github.com/google/go-tdx-guest/client"
)

type PlatformType int

const (
	TDX PlatformType = iota
	NoCC
)

// TsmReportPath is the configfs-tsm report directory. Its presence means the
// kernel can produce quotes without the legacy device.
var TsmReportPath = "/sys/kernel/config/tsm/report"

type ccCheck struct {
	checkFunc func() bool
	platform  PlatformType
}

func (p PlatformType) String() string {
	switch p {
	case TDX:
		return "TDX"
	default:
		return "NoCC"
	}
}

// CCPlatform returns the type of the confidential computing platform.
func CCPlatform() PlatformType {
	checks := []ccCheck{
		{TDXGuestDeviceExists, TDX},
		{TsmReportExists, TDX},
	}

	for _, c := range checks {
		if c.checkFunc() {
			return c.platform
		}
	}
	return NoCC
}

func TDXGuestDeviceExists() bool {
	d, err := tdxclient.OpenDevice()
	if err != nil {
		return false
	}
	d.Close()

	return true
}

func TsmReportExists() bool {
	info, err := os.Stat(TsmReportPath)
	if err != nil {
		return false
	}

	return info.IsDir()
}
