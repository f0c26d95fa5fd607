package netinfo

import (
	"net"
	"testing"
)

func TestDottedMask(t *testing.T) {
	cases := []struct {
		prefix int
		want   string
	}{
		{0, "0.0.0.0"},
		{8, "255.0.0.0"},
		{24, "255.255.255.0"},
		{26, "255.255.255.192"},
		{32, "255.255.255.255"},
	}

	for _, tc := range cases {
		if got := dottedMask(net.CIDRMask(tc.prefix, 32)); got != tc.want {
			t.Fatalf("dottedMask(/%d) = %q, want %q", tc.prefix, got, tc.want)
		}
	}

	// IPv6 masks have no dotted form.
	if got := dottedMask(net.CIDRMask(64, 128)); got != "" {
		t.Fatalf("dottedMask for IPv6 mask = %q, want empty", got)
	}
}

func TestLocalInterfaces(t *testing.T) {
	interfaces, err := LocalInterfaces()
	if err != nil {
		t.Fatalf("LocalInterfaces: %v", err)
	}
	if len(interfaces) == 0 {
		t.Skip("no network interfaces available")
	}

	for _, iface := range interfaces {
		if iface.Name == "" {
			t.Fatal("interface with empty name")
		}
		if iface.Addr == "" {
			continue
		}
		if net.ParseIP(iface.Addr) == nil {
			t.Fatalf("interface %s has unparseable address %q", iface.Name, iface.Addr)
		}
		if net.ParseIP(iface.Mask) == nil {
			t.Fatalf("interface %s has unparseable mask %q", iface.Name, iface.Mask)
		}
	}
}
