// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package designer

import (
	"fmt"

	libvirtxml "libvirt.org/go/libvirtxml"
)

// tapDeviceName returns the host-side tap identifier for the VM's n-th
// interface. Tap creation itself is the caller's concern.
func tapDeviceName(vmName string, n int) string {
	return fmt.Sprintf("%si%d", vmName, n)
}

// buildInterfaces allocates one NIC per requested interface. Each NIC gets
// its own bus (the pcie-root-port topology exposes a single slot per bus),
// the configured MAC goes to the first NIC only, and boot order is attached
// when the boot plan asked for it.
func buildInterfaces(cfg *Config, addr addressScheme, plan bootPlan) []libvirtxml.DomainInterface {
	if cfg.Interfaces == 0 {
		return nil
	}

	ifaces := make([]libvirtxml.DomainInterface, 0, cfg.Interfaces)

	for n := 1; n <= cfg.Interfaces; n++ {
		iface := libvirtxml.DomainInterface{
			Managed: "no",
			Source: &libvirtxml.DomainInterfaceSource{
				Ethernet: &libvirtxml.DomainInterfaceSourceEthernet{},
			},
			Target: &libvirtxml.DomainInterfaceTarget{
				Dev: tapDeviceName(cfg.Name, n),
			},
			Model: &libvirtxml.DomainInterfaceModel{
				Type: cfg.NICDriver,
			},
			Address: addr.nicAddress(uint(n)),
		}

		if n == 1 && cfg.MAC != "" {
			iface.MAC = &libvirtxml.DomainInterfaceMAC{Address: cfg.MAC}
		}

		if plan.nicBootOrder {
			iface.Boot = &libvirtxml.DomainDeviceBoot{Order: uint(n)}
		}

		ifaces = append(ifaces, iface)
	}

	return ifaces
}
