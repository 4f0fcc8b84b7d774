package capability

import "fmt"

// Kind enumerates the host capabilities a plugin may request. Dispatch is
// by tagged variant, not by name lookup, so an unknown capability is a
// compile-time concern rather than a runtime string miss.
type Kind int

const (
	KindStorage Kind = iota
	KindNetwork
	KindLogger
	KindSystemInfo
	KindFileSystem
	KindDatabase
	KindCrypto
	KindUI
)

// Risk classes group capabilities by how much damage a misbehaving plugin
// can do with them. Each class carries its own rate-limit window.
const (
	ClassRead     = "read"
	ClassWrite    = "write"
	ClassCritical = "critical"
)

func (k Kind) String() string {
	switch k {
	case KindStorage:
		return "storage"
	case KindNetwork:
		return "network"
	case KindLogger:
		return "logger"
	case KindSystemInfo:
		return "system_info"
	case KindFileSystem:
		return "file_system"
	case KindDatabase:
		return "database"
	case KindCrypto:
		return "crypto"
	case KindUI:
		return "ui"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// RiskClass returns the rate-limit class for the capability.
func (k Kind) RiskClass() string {
	switch k {
	case KindLogger, KindSystemInfo:
		return ClassRead
	case KindStorage, KindFileSystem, KindDatabase, KindUI:
		return ClassWrite
	case KindNetwork, KindCrypto:
		return ClassCritical
	default:
		return ClassCritical
	}
}

// ParseKind maps a capability name to its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "storage":
		return KindStorage, true
	case "network":
		return KindNetwork, true
	case "logger":
		return KindLogger, true
	case "system_info":
		return KindSystemInfo, true
	case "file_system":
		return KindFileSystem, true
	case "database":
		return KindDatabase, true
	case "crypto":
		return KindCrypto, true
	case "ui":
		return KindUI, true
	default:
		return 0, false
	}
}
