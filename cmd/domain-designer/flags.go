// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"strings"

	"github.com/virt-kit/domain-designer/designer"
)

// imageListFlag represents a flag of ordered letter=file disk image pairs
type imageListFlag []designer.DiskImage

// String returns the string representation of the imageListFlag
func (i *imageListFlag) String() string {
	var pairs []string
	for _, image := range *i {
		pairs = append(pairs, image.Letter+"="+image.File)
	}
	return strings.Join(pairs, ",")
}

// Set parses the input string and appends the images in the given order
func (i *imageListFlag) Set(value string) error {
	pairs := strings.Split(value, ",")
	for _, pair := range pairs {
		letterFile := strings.SplitN(pair, "=", 2)
		if len(letterFile) != 2 {
			return errors.New("invalid letter=file pair: " + pair)
		}
		*i = append(*i, designer.DiskImage{
			Letter: strings.TrimSpace(letterFile[0]),
			File:   strings.TrimSpace(letterFile[1]),
		})
	}

	return nil
}
