// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package hypervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	libvirtxml "libvirt.org/go/libvirtxml"
)

func TestGuestArchSupported(t *testing.T) {
	caps := &libvirtxml.Caps{
		Guests: []libvirtxml.CapsGuest{
			{OSType: "hvm", Arch: libvirtxml.CapsGuestArch{Name: "x86_64"}},
			// Listed for paravirtualization only, so not usable here.
			{OSType: "xen", Arch: libvirtxml.CapsGuestArch{Name: "aarch64"}},
		},
	}

	assert.True(t, guestArchSupported(caps, "x86_64"))
	assert.False(t, guestArchSupported(caps, "aarch64"))
	assert.False(t, guestArchSupported(caps, "riscv64"))
	assert.False(t, guestArchSupported(&libvirtxml.Caps{}, "x86_64"))
}
