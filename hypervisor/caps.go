// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package hypervisor

import (
	libvirtxml "libvirt.org/go/libvirtxml"
)

// guestArchSupported reports whether the host capabilities list a fully
// virtualized guest for the given architecture.
func guestArchSupported(caps *libvirtxml.Caps, arch string) bool {
	for _, guest := range caps.Guests {
		if guest.Arch.Name == arch && guest.OSType == "hvm" {
			return true
		}
	}
	return false
}
