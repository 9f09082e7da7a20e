//go:build !cgo

// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"

	libvirtxml "libvirt.org/go/libvirtxml"
)

func defineDomain(uri string, domain *libvirtxml.Domain) error {
	return errors.New("-define requires a cgo build with libvirt support")
}
