package port

import (
	"net"
	"strconv"
)

// Scanner checks whether a listen port is currently bindable on the
// host. The struct is stateless; it exists as a receiver so options
// (bind address, timeout) can be added without breaking the API and so
// it can be injected as a dependency in tests.
type Scanner struct{}

// NewScanner creates a new Scanner instance.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Available reports whether the given port value can be bound on all
// interfaces right now.
//
// The port is the verbatim string from the launch target. A value that
// is not a valid port number reports false — it cannot be bound, and
// saying so is exactly the diagnostic the operator needs before the
// server fails the same way.
func (s *Scanner) Available(port string) bool {
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return false
	}

	// net.Listen on ":port" probes the same wildcard address space the
	// server will bind. If the listen succeeds the port is free; the
	// probe listener is closed immediately.
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return false
	}
	defer func() { _ = listener.Close() }()
	return true
}
