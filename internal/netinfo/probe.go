package netinfo

import (
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

// icmpProtocol is the protocol number for ICMPv4.
const icmpProtocol = 1

// Probe sends one ICMP echo request to host and waits for the reply.
// It needs a raw socket, so it typically requires elevated privileges.
func Probe(host string, timeout time.Duration) (time.Duration, error) {
	dst, err := net.ResolveIPAddr("ip4", host)
	if err != nil {
		return 0, fmt.Errorf("resolve %s: %w", host, err)
	}

	conn, err := icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if err != nil {
		return 0, fmt.Errorf("open ICMP socket (try running with elevated privileges): %w", err)
	}
	defer conn.Close()

	id := os.Getpid() & 0xffff
	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   id,
			Seq:  1,
			Data: []byte("subplan connectivity probe"),
		},
	}

	msgBytes, err := msg.Marshal(nil)
	if err != nil {
		return 0, fmt.Errorf("marshal echo request: %w", err)
	}

	start := time.Now()
	if _, err := conn.WriteTo(msgBytes, dst); err != nil {
		return 0, fmt.Errorf("send echo request to %s: %w", dst, err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return 0, err
	}

	reply := make([]byte, 1500)
	for {
		n, _, err := conn.ReadFrom(reply)
		if err != nil {
			return 0, fmt.Errorf("no reply from %s within %s: %w", dst, timeout, err)
		}

		parsed, err := icmp.ParseMessage(icmpProtocol, reply[:n])
		if err != nil {
			continue
		}
		echo, ok := parsed.Body.(*icmp.Echo)
		if parsed.Type != ipv4.ICMPTypeEchoReply || !ok || echo.ID != id {
			// Reply for someone else's probe; keep waiting.
			continue
		}

		return time.Since(start), nil
	}
}
