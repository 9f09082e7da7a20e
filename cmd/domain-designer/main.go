// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/virt-kit/domain-designer/cmd"
	"github.com/virt-kit/domain-designer/designer"
	"github.com/virt-kit/domain-designer/util"
)

const programName = "domain-designer"

var logger = log.New(log.Writer(), "[domain-designer] ", log.LstdFlags|log.Lmsgprefix)

const defaultURI = "qemu:///system"

func main() {

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			cmd.ShowVersion(programName)
			cmd.Exit(0)
		}
	}

	var (
		configFile string
		engine     string
		arch       string
		bootdev    string
		images     imageListFlag
		define     bool
		uri        string
	)

	cfg := designer.Config{
		Engine:     designer.DefaultEngine,
		Arch:       designer.DefaultArch,
		BootDev:    designer.DefaultBootDev,
		MemoryKiB:  designer.DefaultMemoryKiB,
		VCPUs:      designer.DefaultVCPUs,
		DiskFormat: designer.DefaultDiskFormat,
		Emulator:   designer.DefaultEmulator,
		NICDriver:  designer.DefaultNICDriver,
		Interfaces: designer.DefaultInterfaces,
	}

	flags := cmd.Parse(programName, os.Args, func(fs *flag.FlagSet) {
		fs.StringVar(&configFile, "config", "", "TOML file with the full VM definition")
		fs.StringVar(&cfg.Name, "name", "", "VM name (generated when omitted)")
		fs.StringVar(&engine, "engine", string(cfg.Engine), "virtualization engine: kvm or qemu")
		fs.StringVar(&arch, "arch", string(cfg.Arch), "guest architecture: x86_64 or aarch64")
		fs.UintVar(&cfg.MemoryKiB, "memory", cfg.MemoryKiB, "memory in KiB")
		fs.UintVar(&cfg.VCPUs, "vcpus", cfg.VCPUs, "number of virtual CPUs")
		fs.StringVar(&bootdev, "bootdev", string(cfg.BootDev), "boot device: disk or network")
		fs.StringVar(&cfg.UEFILoader, "uefi-loader", "", "pflash firmware image for UEFI boot")
		fs.StringVar(&cfg.UEFINVRAM, "uefi-nvram", "", "NVRAM template path, requires -uefi-loader")
		fs.Var(&images, "image", "disk image as letter=file, repeatable and ordered")
		fs.StringVar(&cfg.DiskFormat, "disk-format", cfg.DiskFormat, "disk image format")
		fs.StringVar(&cfg.Emulator, "emulator", cfg.Emulator, "path to the emulator binary")
		fs.IntVar(&cfg.Interfaces, "interfaces", cfg.Interfaces, "number of network interfaces")
		fs.StringVar(&cfg.MAC, "mac", "", "MAC address for the first interface")
		fs.StringVar(&cfg.NICDriver, "nic-driver", cfg.NICDriver, "virtual NIC model")
		fs.BoolVar(&define, "define", false, "define the domain on the hypervisor instead of printing it")
		fs.StringVar(&uri, "uri", "", "libvirt URI used with -define")
	})

	util.DefaultToEnv(&configFile, "DOMAIN_DESIGNER_CONFIG", "")
	util.DefaultToEnv(&uri, "LIBVIRT_URI", defaultURI)

	// Remember what the command line produced before the config file, if
	// any, overwrites it.
	flagCfg := cfg

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			logger.Printf("unable to read config file: %v", err)
			cmd.Exit(1)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			logger.Printf("unable to parse config file %q: %v", configFile, err)
			cmd.Exit(1)
		}
	}

	// Explicit command line values win over the config file.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			cfg.Name = flagCfg.Name
		case "engine":
			cfg.Engine = designer.Engine(engine)
		case "arch":
			cfg.Arch = designer.Arch(arch)
		case "bootdev":
			cfg.BootDev = designer.BootDev(bootdev)
		case "memory":
			cfg.MemoryKiB = flagCfg.MemoryKiB
		case "vcpus":
			cfg.VCPUs = flagCfg.VCPUs
		case "uefi-loader":
			cfg.UEFILoader = flagCfg.UEFILoader
		case "uefi-nvram":
			cfg.UEFINVRAM = flagCfg.UEFINVRAM
		case "image":
			cfg.Images = images
		case "disk-format":
			cfg.DiskFormat = flagCfg.DiskFormat
		case "emulator":
			cfg.Emulator = flagCfg.Emulator
		case "interfaces":
			cfg.Interfaces = flagCfg.Interfaces
		case "mac":
			cfg.MAC = flagCfg.MAC
		case "nic-driver":
			cfg.NICDriver = flagCfg.NICDriver
		}
	})

	if cfg.Name == "" {
		cfg.Name = util.GenerateDomainName("vm")
		logger.Printf("generated VM name %q", cfg.Name)
	}

	domain, err := designer.Build(&cfg)
	if err != nil {
		logger.Printf("invalid configuration: %v", err)
		cmd.Exit(1)
	}

	if define {
		if err := defineDomain(uri, domain); err != nil {
			logger.Printf("failed to define domain: %v", err)
			cmd.Exit(1)
		}
		logger.Printf("domain %q defined on %s", cfg.Name, uri)
		return
	}

	domXML, err := domain.Marshal()
	if err != nil {
		logger.Printf("failed to render domain: %v", err)
		cmd.Exit(1)
	}

	fmt.Println(domXML)
}
