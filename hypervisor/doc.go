// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

// Package hypervisor hands finished domain descriptors to the libvirt
// management API. It deliberately stops at defining the domain; lifecycle
// operations are out of scope. The implementation needs cgo and the libvirt
// client library; without cgo the package compiles to an empty shell.
package hypervisor
