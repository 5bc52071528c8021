package wifi

import "fmt"

// SecurityKind identifies the network security scheme carried in the payload.
type SecurityKind int

const (
	// SecurityWPA covers WPA, WPA2 and WPA3 networks. Scanners treat these
	// identically, so they share a single payload token.
	SecurityWPA SecurityKind = iota
	// SecurityWEP is legacy WEP security.
	SecurityWEP
	// SecurityOpen is an unsecured network (no password).
	SecurityOpen
)

// Token returns the payload token for the security kind ("WPA", "WEP" or
// "nopass").
func (k SecurityKind) Token() string {
	switch k {
	case SecurityWEP:
		return "WEP"
	case SecurityOpen:
		return "nopass"
	default:
		return "WPA"
	}
}

// String returns a human-readable name for the security kind.
func (k SecurityKind) String() string {
	switch k {
	case SecurityWPA:
		return "WPA/WPA2/WPA3"
	case SecurityWEP:
		return "WEP"
	case SecurityOpen:
		return "Open"
	default:
		return fmt.Sprintf("SecurityKind(%d)", int(k))
	}
}

// NetworkConfig holds the credentials a payload is built from. It is built
// once per invocation from merged flag or wizard input, consumed immediately
// and then discarded; nothing in this package persists it.
type NetworkConfig struct {
	// SSID is the network name. Required, non-empty after trimming.
	SSID string

	// Password is the network passphrase. Required unless Security is
	// SecurityOpen.
	Password string

	// Security selects the payload security token.
	Security SecurityKind

	// Hidden marks a non-broadcast SSID. The flag is accepted for
	// completeness but intentionally never serialized into the payload:
	// the optional H: field triggers join failures on a documented class
	// of scanner implementations, and omitting it is universally safe.
	Hidden bool
}
