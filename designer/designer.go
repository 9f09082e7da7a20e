// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

// Package designer derives libvirt domain descriptors for ephemeral test
// VMs from a small typed configuration. The build is a pure function: one
// validated configuration in, one descriptor out, no shared state, so
// independent builds may run concurrently without coordination.
package designer

import (
	libvirtxml "libvirt.org/go/libvirtxml"
)

// The memory balloon always sits at the same address so consumers can rely
// on a stable device layout across rebuilds.
const balloonSlot = 0x05

// Build assembles the domain descriptor for cfg. It fails fast: any
// configuration defect is reported before assembly starts and no partial
// descriptor is ever returned. The result is handed to the hypervisor
// management API as-is; rendering it is libvirtxml's job.
func Build(cfg *Config) (*libvirtxml.Domain, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	plat := resolvePlatform(cfg)
	plan := resolveBoot(cfg)

	disks, err := buildDisks(cfg, plat.addr)
	if err != nil {
		return nil, err
	}

	domain := &libvirtxml.Domain{
		Type: string(cfg.Engine),
		Name: cfg.Name,
		Memory: &libvirtxml.DomainMemory{
			Value: cfg.MemoryKiB,
			Unit:  "KiB",
		},
		VCPU: &libvirtxml.DomainVCPU{
			Value: cfg.VCPUs,
		},
		OS: &libvirtxml.DomainOS{
			Type: &libvirtxml.DomainOSType{
				Type:    typeHardwareVirtualMachine,
				Arch:    string(cfg.Arch),
				Machine: plat.machine,
			},
			Loader:      plan.loader,
			NVRam:       plan.nvram,
			BootDevices: plan.bootDevices,
			// Boot must be deterministic and non-interactive.
			BootMenu: &libvirtxml.DomainBootMenu{Enable: "no"},
		},
		CPU: plat.cpu,
		Features: &libvirtxml.DomainFeatureList{
			ACPI: &libvirtxml.DomainFeature{},
			APIC: &libvirtxml.DomainFeatureAPIC{},
			PAE:  &libvirtxml.DomainFeature{},
		},
		Clock: &libvirtxml.DomainClock{Offset: "utc"},
		// These VMs simulate bare-metal nodes: powering off or rebooting
		// tears the instance down so the next deploy starts clean, while a
		// crash restarts it.
		OnPoweroff: "destroy",
		OnReboot:   "destroy",
		OnCrash:    "restart",
		Devices: &libvirtxml.DomainDeviceList{
			Emulator:    cfg.Emulator,
			Disks:       disks,
			Controllers: plat.controllers,
			Interfaces:  buildInterfaces(cfg, plat.addr, plan),
			MemBalloon: &libvirtxml.DomainMemBalloon{
				Model:   "virtio",
				Address: pciAddress(0, balloonSlot),
			},
		},
	}

	if plat.legacyPeripherals {
		domain.OS.BIOS = &libvirtxml.DomainBIOS{UseSerial: "yes"}
		domain.Devices.Inputs = []libvirtxml.DomainInput{
			{Type: "mouse", Bus: "ps2"},
		}
	}

	if cfg.Console != nil {
		domain.Devices.Consoles = []libvirtxml.DomainConsole{*cfg.Console}
	}

	return domain, nil
}
