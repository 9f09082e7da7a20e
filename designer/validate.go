// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package designer

import (
	"fmt"
	"net"

	"github.com/virt-kit/domain-designer/util"
)

// diskLetterValue maps a disk letter to the number encoded into the disk's
// PCI address ('a' -> 0x0a). Only 'a' through 'f' have an encoding; lower
// values are reserved for the fixed devices (balloon, NICs).
func diskLetterValue(letter string) (uint, error) {
	if len(letter) != 1 {
		return 0, fmt.Errorf("disk letter %q must be a single character", letter)
	}
	if letter[0] < 'a' || 'f' < letter[0] {
		return 0, fmt.Errorf("disk letter %q must be between 'a' and 'f'", letter)
	}
	return uint(letter[0]-'a') + 0x0a, nil
}

// validate rejects a configuration the builder cannot turn into a
// consistent descriptor. It runs before any assembly step, so a failed
// build never produces a partial descriptor.
func (cfg *Config) validate() error {
	if cfg.Name == "" {
		return fmt.Errorf("vm name must not be empty")
	}

	if !util.Contains([]Engine{EngineKVM, EngineQEMU}, cfg.Engine) {
		return fmt.Errorf("unknown engine %q", cfg.Engine)
	}

	if !util.Contains([]Arch{ArchX8664, ArchAArch64}, cfg.Arch) {
		return fmt.Errorf("unknown architecture %q", cfg.Arch)
	}

	if !util.Contains([]BootDev{BootDevDisk, BootDevNetwork}, cfg.BootDev) {
		return fmt.Errorf("unknown boot device %q", cfg.BootDev)
	}

	if cfg.MemoryKiB == 0 {
		return fmt.Errorf("memory must be a positive number of KiB")
	}
	if cfg.VCPUs == 0 {
		return fmt.Errorf("vcpu count must be positive")
	}

	if cfg.UEFINVRAM != "" && cfg.UEFILoader == "" {
		return fmt.Errorf("nvram template %q given without a uefi loader", cfg.UEFINVRAM)
	}

	seen := make(map[string]bool, len(cfg.Images))
	for _, image := range cfg.Images {
		if _, err := diskLetterValue(image.Letter); err != nil {
			return err
		}
		if seen[image.Letter] {
			return fmt.Errorf("duplicate disk letter %q", image.Letter)
		}
		seen[image.Letter] = true
	}

	if cfg.Interfaces < 0 {
		return fmt.Errorf("interface count must not be negative, got %d", cfg.Interfaces)
	}

	if cfg.MAC != "" {
		if _, err := net.ParseMAC(cfg.MAC); err != nil {
			return fmt.Errorf("invalid mac address %q: %w", cfg.MAC, err)
		}
	}

	return nil
}
