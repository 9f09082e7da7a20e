//go:build cgo

// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package hypervisor

import (
	"context"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
	libvirtxml "libvirt.org/go/libvirtxml"
)

const (
	// The amount of retries to see the defined domain listed by the host
	lookupRetries = 10
	// The sleep time between lookup retries
	lookupSleep = time.Second
)

// Define registers the descriptor with the hypervisor and waits until the
// host lists the new domain. The domain is not started.
func Define(ctx context.Context, client *Client, domain *libvirtxml.Domain) (err error) {

	if arch := domain.OS.Type.Arch; !client.SupportsGuestArch(arch) {
		return fmt.Errorf("host does not support fully virtualized %q guests", arch)
	}

	exists, err := checkDomainExistsByName(domain.Name, client)
	if err != nil {
		return fmt.Errorf("error in checking domain: %w", err)
	}
	if exists {
		return fmt.Errorf("domain %q already exists", domain.Name)
	}

	domXML, err := domain.Marshal()
	if err != nil {
		return fmt.Errorf("failed to render domain xml: %w", err)
	}

	logger.Printf("Defining domain '%s'", domain.Name)
	dom, err := client.connection.DomainDefineXML(domXML)
	if err != nil {
		return fmt.Errorf("failed to define domain: %w", err)
	}
	defer freeDomain(dom, &err)

	if err := retry.Do(
		func() error {
			found, err := checkDomainExistsByName(domain.Name, client)
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("internal error on domain lookup: %w", err))
			}
			if found {
				return nil
			}
			return fmt.Errorf("domain is not listed yet")
		},
		retry.Attempts(lookupRetries),
		retry.Delay(lookupSleep),
		retry.Context(ctx),
	); err != nil {
		return fmt.Errorf("domain %q not visible after %d retries: %w", domain.Name, lookupRetries, err)
	}

	logger.Printf("Domain '%s' defined successfully", domain.Name)
	return nil
}
