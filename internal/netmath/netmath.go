// Package netmath converts between the textual and integral forms of
// IPv4 addresses, subnet masks and prefix lengths.
package netmath

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const allOnes = uint32(0xFFFFFFFF)

var (
	ErrInvalidAddress      = errors.New("invalid IPv4 address")
	ErrInvalidPrefix       = errors.New("prefix length out of range")
	ErrNonContiguousMask   = errors.New("mask bits are not contiguous")
	ErrInvalidMaskOrPrefix = errors.New("neither a prefix length nor a dotted mask")
)

// ParseAddr parses a dotted-decimal IPv4 address into its 32-bit value.
// Exactly four octets are required, each in [0,255].
func ParseAddr(s string) (uint32, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	var addr uint32
	for _, part := range parts {
		octet, err := strconv.Atoi(part)
		if err != nil || octet < 0 || octet > 255 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		addr = addr<<8 | uint32(octet)
	}
	return addr, nil
}

// FormatAddr renders a 32-bit value as a dotted-decimal IPv4 address.
func FormatAddr(addr uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", addr>>24, addr>>16&0xFF, addr>>8&0xFF, addr&0xFF)
}

// PrefixToMask builds the mask whose top prefix bits are ones.
// Prefix 0 yields mask 0.
func PrefixToMask(prefix int) (uint32, error) {
	if prefix < 0 || prefix > 32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}
	if prefix == 0 {
		return 0, nil
	}
	return allOnes << (32 - prefix), nil
}

// MaskToPrefix parses a dotted mask and returns its prefix length. The
// one-bits must form a contiguous run from the most significant bit.
func MaskToPrefix(dotted string) (int, error) {
	mask, err := ParseAddr(dotted)
	if err != nil {
		return 0, err
	}

	ones := bits.LeadingZeros32(^mask)
	want, _ := PrefixToMask(ones)
	if mask != want {
		return 0, fmt.Errorf("%w: %q", ErrNonContiguousMask, dotted)
	}
	return ones, nil
}

// ResolvePrefix accepts a bare or slash-prefixed prefix length, or a
// dotted mask, and returns the prefix length either way.
func ResolvePrefix(arg string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(arg), "/")

	if prefix, err := strconv.Atoi(trimmed); err == nil {
		if prefix < 0 || prefix > 32 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidMaskOrPrefix, arg)
		}
		return prefix, nil
	}

	if strings.Contains(trimmed, ".") {
		return MaskToPrefix(trimmed)
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMaskOrPrefix, arg)
}
