//go:build cgo

// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	libvirtxml "libvirt.org/go/libvirtxml"

	"github.com/virt-kit/domain-designer/hypervisor"
)

func defineDomain(uri string, domain *libvirtxml.Domain) error {
	client, err := hypervisor.NewClient(hypervisor.Config{URI: uri})
	if err != nil {
		return err
	}
	defer client.Close()

	if host := client.HostArch(); host != domain.OS.Type.Arch {
		logger.Printf("guest architecture %s differs from host architecture %s", domain.OS.Type.Arch, host)
	}

	return hypervisor.Define(context.Background(), client, domain)
}
