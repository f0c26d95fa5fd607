package netmath

import (
	"errors"
	"testing"
)

func TestParseAddrRoundTrip(t *testing.T) {
	addresses := []string{"0.0.0.0", "10.0.0.1", "172.16.254.3", "192.168.1.0", "255.255.255.255"}

	for _, s := range addresses {
		addr, err := ParseAddr(s)
		if err != nil {
			t.Fatalf("ParseAddr(%q): %v", s, err)
		}
		if got := FormatAddr(addr); got != s {
			t.Fatalf("FormatAddr(ParseAddr(%q)) = %q", s, got)
		}
	}
}

func TestParseAddrRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"", "10.0.0", "10.0.0.0.1", "256.0.0.1", "10.0.0.-1", "a.b.c.d", "10..0.1"} {
		if _, err := ParseAddr(s); !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("ParseAddr(%q) err = %v, want ErrInvalidAddress", s, err)
		}
	}
}

func TestPrefixMaskRoundTrip(t *testing.T) {
	for prefix := 0; prefix <= 32; prefix++ {
		mask, err := PrefixToMask(prefix)
		if err != nil {
			t.Fatalf("PrefixToMask(%d): %v", prefix, err)
		}
		got, err := MaskToPrefix(FormatAddr(mask))
		if err != nil {
			t.Fatalf("MaskToPrefix for /%d: %v", prefix, err)
		}
		if got != prefix {
			t.Fatalf("round trip for /%d returned %d", prefix, got)
		}
	}
}

func TestPrefixToMaskValues(t *testing.T) {
	cases := []struct {
		prefix int
		mask   uint32
	}{
		{0, 0x00000000},
		{8, 0xFF000000},
		{24, 0xFFFFFF00},
		{26, 0xFFFFFFC0},
		{32, 0xFFFFFFFF},
	}

	for _, tc := range cases {
		mask, err := PrefixToMask(tc.prefix)
		if err != nil {
			t.Fatalf("PrefixToMask(%d): %v", tc.prefix, err)
		}
		if mask != tc.mask {
			t.Fatalf("PrefixToMask(%d) = %#x, want %#x", tc.prefix, mask, tc.mask)
		}
	}

	if _, err := PrefixToMask(33); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("PrefixToMask(33) err = %v, want ErrInvalidPrefix", err)
	}
	if _, err := PrefixToMask(-1); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("PrefixToMask(-1) err = %v, want ErrInvalidPrefix", err)
	}
}

func TestMaskToPrefixRejectsNonContiguousMask(t *testing.T) {
	for _, s := range []string{"255.255.0.1", "255.0.255.0", "0.255.255.255", "128.64.0.0"} {
		if _, err := MaskToPrefix(s); !errors.Is(err, ErrNonContiguousMask) {
			t.Fatalf("MaskToPrefix(%q) err = %v, want ErrNonContiguousMask", s, err)
		}
	}
}

func TestResolvePrefix(t *testing.T) {
	t.Run("accepts prefix literals", func(t *testing.T) {
		cases := map[string]int{"24": 24, "/16": 16, "0": 0, "/32": 32, " /25 ": 25}
		for arg, want := range cases {
			got, err := ResolvePrefix(arg)
			if err != nil {
				t.Fatalf("ResolvePrefix(%q): %v", arg, err)
			}
			if got != want {
				t.Fatalf("ResolvePrefix(%q) = %d, want %d", arg, got, want)
			}
		}
	})

	t.Run("accepts dotted masks", func(t *testing.T) {
		got, err := ResolvePrefix("255.255.255.192")
		if err != nil {
			t.Fatalf("ResolvePrefix dotted: %v", err)
		}
		if got != 26 {
			t.Fatalf("ResolvePrefix(255.255.255.192) = %d, want 26", got)
		}
	})

	t.Run("surfaces contiguity failures", func(t *testing.T) {
		if _, err := ResolvePrefix("255.255.0.1"); !errors.Is(err, ErrNonContiguousMask) {
			t.Fatalf("err = %v, want ErrNonContiguousMask", err)
		}
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, arg := range []string{"33", "/40", "-1", "mask", ""} {
			if _, err := ResolvePrefix(arg); !errors.Is(err, ErrInvalidMaskOrPrefix) {
				t.Fatalf("ResolvePrefix(%q) err = %v, want ErrInvalidMaskOrPrefix", arg, err)
			}
		}
	})
}
