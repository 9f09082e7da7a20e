// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package designer

import (
	libvirtxml "libvirt.org/go/libvirtxml"
)

// buildDisks maps each image, in input order, to a virtio disk whose device
// name and bus address are derived from its letter.
func buildDisks(cfg *Config, addr addressScheme) ([]libvirtxml.DomainDisk, error) {
	disks := make([]libvirtxml.DomainDisk, 0, len(cfg.Images))

	for _, image := range cfg.Images {
		letter, err := diskLetterValue(image.Letter)
		if err != nil {
			return nil, err
		}

		disks = append(disks, libvirtxml.DomainDisk{
			Device: "disk",
			Driver: &libvirtxml.DomainDiskDriver{
				Name: "qemu",
				Type: cfg.DiskFormat,
				// Writes are acknowledged before they hit stable storage.
				// These VMs are ephemeral; throughput wins over durability.
				Cache: "unsafe",
			},
			Source: &libvirtxml.DomainDiskSource{
				File: &libvirtxml.DomainDiskSourceFile{
					File: image.File,
				},
			},
			Target: &libvirtxml.DomainDiskTarget{
				Dev: "vd" + image.Letter,
				Bus: "virtio",
			},
			Address: addr.diskAddress(letter),
		})
	}

	return disks, nil
}
