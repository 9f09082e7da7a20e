// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package designer

import (
	"fmt"

	libvirtxml "libvirt.org/go/libvirtxml"
)

// bootPlan is the firmware and boot selector's output. Exactly one of the
// three outcomes is active: pflash UEFI firmware, an explicit network boot
// marker, or neither (the hypervisor boots the first disk).
type bootPlan struct {
	loader      *libvirtxml.DomainLoader
	nvram       *libvirtxml.DomainNVRam
	bootDevices []libvirtxml.DomainBootDevice

	// nicBootOrder is set for the one combination where UEFI firmware and
	// network boot intent coexist. UEFI has no boot-device marker, so the
	// intent is expressed as per-interface boot order instead.
	nicBootOrder bool
}

func resolveBoot(cfg *Config) bootPlan {
	var plan bootPlan

	switch {
	case cfg.UEFILoader != "":
		plan.loader = &libvirtxml.DomainLoader{
			Path:     cfg.UEFILoader,
			Readonly: "yes",
			Type:     "pflash",
		}
		if cfg.UEFINVRAM != "" {
			// One variable store per VM, copied from the shared template.
			plan.nvram = &libvirtxml.DomainNVRam{
				Template: cfg.UEFINVRAM,
				NVRam:    fmt.Sprintf("%s-%s", cfg.UEFINVRAM, cfg.Name),
			}
		}
		plan.nicBootOrder = cfg.BootDev == BootDevNetwork

	case cfg.BootDev == BootDevNetwork:
		plan.bootDevices = []libvirtxml.DomainBootDevice{{Dev: "network"}}
	}

	return plan
}
