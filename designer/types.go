// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package designer

import (
	libvirtxml "libvirt.org/go/libvirtxml"
)

// Engine selects the virtualization engine the descriptor targets.
type Engine string

const (
	// EngineKVM uses hardware-assisted virtualization.
	EngineKVM Engine = "kvm"
	// EngineQEMU uses plain emulation without hardware assistance.
	EngineQEMU Engine = "qemu"
)

// Arch is the guest CPU architecture.
type Arch string

const (
	ArchX8664   Arch = "x86_64"
	ArchAArch64 Arch = "aarch64"
)

// BootDev is the requested boot source.
type BootDev string

const (
	BootDevDisk    BootDev = "disk"
	BootDevNetwork BootDev = "network"
)

// hvm indicates that the OS is one designed to run on bare metal, so requires full virtualization.
const typeHardwareVirtualMachine = "hvm"

// DiskImage is one backing image file with its disk letter, 'a' through
// 'f'. The letter doubles as the device suffix (vda, vdb, ...) and as the
// number encoded into the disk's PCI address.
type DiskImage struct {
	File   string `toml:"file"`
	Letter string `toml:"letter"`
}

// Config is the full input of one descriptor build. It is read-only during
// the build; callers may reuse it across calls.
type Config struct {
	Name       string  `toml:"name"`
	Engine     Engine  `toml:"engine"`
	Arch       Arch    `toml:"arch"`
	MemoryKiB  uint    `toml:"memory_kib"`
	VCPUs      uint    `toml:"vcpus"`
	BootDev    BootDev `toml:"bootdev"`
	UEFILoader string  `toml:"uefi_loader"`
	// UEFINVRAM is the NVRAM template path. Only meaningful together with
	// UEFILoader; the per-VM variable store is derived from it by suffixing
	// the VM name.
	UEFINVRAM  string      `toml:"uefi_nvram"`
	Images     []DiskImage `toml:"images"`
	DiskFormat string      `toml:"disk_format"`
	Emulator   string      `toml:"emulator"`
	// Interfaces is the number of NICs to create. Zero is valid.
	Interfaces int `toml:"interfaces"`
	// MAC applies to the first interface only.
	MAC       string `toml:"mac"`
	NICDriver string `toml:"nic_driver"`

	// Console is an optional pre-built console device, passed through to the
	// descriptor unchanged.
	Console *libvirtxml.DomainConsole `toml:"-"`
}

const (
	DefaultEngine     = EngineKVM
	DefaultArch       = ArchX8664
	DefaultBootDev    = BootDevDisk
	DefaultMemoryKiB  = 2097152
	DefaultVCPUs      = 1
	DefaultDiskFormat = "qcow2"
	DefaultEmulator   = "/usr/bin/qemu-system-x86_64"
	DefaultNICDriver  = "virtio"
	DefaultInterfaces = 1
)
