// (C) Copyright Domain Designer Contributors
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// DefaultToEnv fills field from the named environment variable, falling back
// to the given default, unless a value is already set.
func DefaultToEnv(field *string, env, fallback string) {

	if *field != "" {
		return
	}

	val := os.Getenv(env)
	if val == "" {
		val = fallback
	}

	*field = val
}

// Contains reports whether slice holds the given element.
func Contains[T comparable](slice []T, e T) bool {
	for _, item := range slice {
		if item == e {
			return true
		}
	}
	return false
}

// sanitize reduces input to the character set libvirt accepts in domain and
// tap device names.
func sanitize(input string) string {

	var output string

	for _, c := range strings.ToLower(input) {
		if (c < 'a' || 'z' < c) && (c < '0' || '9' < c) && c != '-' {
			c = '-'
		}
		output += string(c)
	}

	return output
}

// GenerateDomainName derives a unique VM name from a base label. The random
// suffix keeps repeated invocations with the same label from colliding on
// the hypervisor.
func GenerateDomainName(base string) string {
	return sanitize(base) + "-" + uuid.NewString()[:8]
}
