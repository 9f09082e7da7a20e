//go:build cgo

// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package hypervisor

import (
	"encoding/xml"
	"fmt"
	"log"

	libvirt "libvirt.org/go/libvirt"
	libvirtxml "libvirt.org/go/libvirtxml"
)

var logger = log.New(log.Writer(), "[hypervisor] ", log.LstdFlags|log.Lmsgprefix)

type Config struct {
	URI string
}

type Client struct {
	connection *libvirt.Connect

	// information about the target node
	nodeInfo *libvirt.NodeInfo

	// host capabilities
	caps *libvirtxml.Caps
}

func NewClient(cfg Config) (*Client, error) {

	conn, err := libvirt.NewConnect(cfg.URI)
	if err != nil {
		return nil, err
	}

	node, err := conn.GetNodeInfo()
	if err != nil {
		return nil, fmt.Errorf("error retrieving node info: %w", err)
	}

	caps, err := getHostCapabilities(conn)
	if err != nil {
		return nil, err
	}

	logger.Println("Created libvirt connection")

	return &Client{
		connection: conn,
		nodeInfo:   node,
		caps:       caps,
	}, nil
}

func (c *Client) Close() error {
	_, err := c.connection.Close()
	return err
}

// HostArch reports the architecture of the connected node, usable as a
// default for the descriptor's arch field.
func (c *Client) HostArch() string {
	return c.nodeInfo.Model
}

// SupportsGuestArch reports whether the connected host can run fully
// virtualized guests of the given architecture.
func (c *Client) SupportsGuestArch(arch string) bool {
	return guestArchSupported(c.caps, arch)
}

// getHostCapabilities returns the host capabilities as a struct
func getHostCapabilities(conn *libvirt.Connect) (*libvirtxml.Caps, error) {
	capsXML, err := conn.GetCapabilities()
	if err != nil {
		return nil, fmt.Errorf("unable to get capabilities, cause: %w", err)
	}

	caps := &libvirtxml.Caps{}
	err = xml.Unmarshal([]byte(capsXML), caps)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal capabilities, cause: %w", err)
	}

	return caps, nil
}

func checkDomainExistsByName(name string, client *Client) (exist bool, err error) {

	logger.Printf("Checking if domain (%s) exists", name)
	domain, err := client.connection.LookupDomainByName(name)
	if err != nil {
		if err.(libvirt.Error).Code == libvirt.ERR_NO_DOMAIN {
			return false, nil
		}
		return false, err
	}
	defer freeDomain(domain, &err)

	return true, nil

}

// freeDomain releases the domain pointer. If the operation fail and the error
// context is nil then it gets updated, otherwise it preserve the pointer to
// keep any previous error reported.
func freeDomain(domain *libvirt.Domain, errCtx *error) {
	newErr := domain.Free()
	if newErr != nil && *errCtx == nil {
		*errCtx = newErr
	}
}
