// Package netinfo wraps the local-network collaborators around the
// planner: interface inspection and a reachability probe.
package netinfo

import (
	"fmt"
	"net"
)

// Interface is one local network interface with its first IPv4 binding.
type Interface struct {
	Name string
	Addr string
	Mask string
	MAC  string
	IsUp bool
}

// LocalInterfaces lists the machine's interfaces with their IPv4
// address, dotted mask and MAC. Interfaces without an IPv4 binding are
// reported with empty address fields.
func LocalInterfaces() ([]Interface, error) {
	netIfaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}

	interfaces := make([]Interface, 0, len(netIfaces))
	for _, iface := range netIfaces {
		info := Interface{
			Name: iface.Name,
			MAC:  iface.HardwareAddr.String(),
			IsUp: iface.Flags&net.FlagUp != 0,
		}

		addrs, err := iface.Addrs()
		if err == nil {
			for _, addr := range addrs {
				ipNet, ok := addr.(*net.IPNet)
				if !ok {
					continue
				}
				ip4 := ipNet.IP.To4()
				if ip4 == nil {
					continue
				}
				info.Addr = ip4.String()
				info.Mask = dottedMask(ipNet.Mask)
				break
			}
		}

		interfaces = append(interfaces, info)
	}
	return interfaces, nil
}

func dottedMask(mask net.IPMask) string {
	if len(mask) != 4 {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d.%d", mask[0], mask[1], mask[2], mask[3])
}
