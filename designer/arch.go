// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package designer

import (
	libvirtxml "libvirt.org/go/libvirtxml"
)

const (
	machineTypePC   = "pc"
	machineTypeVirt = "virt"

	// aarch64 pins disks to one PCIe slot and encodes the letter into the
	// bus number; everything else keeps bus 0 and encodes the letter into
	// the slot.
	aarch64DiskSlot = 0x04
	nicSlot         = 0x01
)

// addressScheme is the per-architecture bus/slot numbering selected once by
// resolvePlatform and reused by the disk and interface assigners.
type addressScheme interface {
	diskAddress(letter uint) *libvirtxml.DomainAddress
	nicAddress(index uint) *libvirtxml.DomainAddress
}

// platform is the architecture resolver's output: machine type, CPU section,
// fixed controller set, legacy-peripheral presence and the address scheme.
type platform struct {
	machine           string
	cpu               *libvirtxml.DomainCPU
	controllers       []libvirtxml.DomainController
	legacyPeripherals bool
	addr              addressScheme
}

func pciAddress(bus, slot uint) *libvirtxml.DomainAddress {
	domain := uint(0)
	function := uint(0)
	return &libvirtxml.DomainAddress{
		PCI: &libvirtxml.DomainAddressPCI{
			Domain:   &domain,
			Bus:      &bus,
			Slot:     &slot,
			Function: &function,
		},
	}
}

// slotScheme puts every disk on bus 0 with the letter as slot number.
type slotScheme struct{}

func (slotScheme) diskAddress(letter uint) *libvirtxml.DomainAddress {
	return pciAddress(0, letter)
}

func (slotScheme) nicAddress(index uint) *libvirtxml.DomainAddress {
	return pciAddress(index, nicSlot)
}

// busScheme gives every disk its own bus, as required by the pcie-root-port
// topology where each bus exposes a single slot.
type busScheme struct{}

func (busScheme) diskAddress(letter uint) *libvirtxml.DomainAddress {
	return pciAddress(letter, aarch64DiskSlot)
}

func (busScheme) nicAddress(index uint) *libvirtxml.DomainAddress {
	return pciAddress(index, nicSlot)
}

// resolvePlatform maps a validated configuration to its per-architecture and
// per-engine decisions. All other build steps are architecture-agnostic.
func resolvePlatform(cfg *Config) *platform {
	p := &platform{}

	if cfg.Arch == ArchAArch64 {
		rootIndex := uint(0)
		portIndex := uint(1)
		p.machine = machineTypeVirt
		p.addr = busScheme{}
		// The virt machine has no legacy PCI bus. A pcie-root plus
		// pcie-root-port pair stands in for it.
		p.controllers = []libvirtxml.DomainController{
			{Type: "pci", Index: &rootIndex, Model: "pcie-root"},
			{Type: "pci", Index: &portIndex, Model: "pcie-root-port"},
		}
	} else {
		ideIndex := uint(0)
		p.machine = machineTypePC
		p.addr = slotScheme{}
		p.legacyPeripherals = true
		// The IDE controller is unused by the virtio disks but some
		// consumers expect it on pc machines.
		p.controllers = []libvirtxml.DomainController{
			{Type: "ide", Index: &ideIndex},
		}
	}

	if cfg.Engine == EngineKVM {
		// Expose the host CPU features directly. Plain emulation keeps the
		// engine's default CPU model instead.
		p.cpu = &libvirtxml.DomainCPU{Mode: "host-passthrough"}
	}

	return p
}
