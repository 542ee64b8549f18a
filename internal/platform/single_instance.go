package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"os"
)

// ErrAlreadyRunning indicates another timer already holds the lock.
var ErrAlreadyRunning = errors.New("another timer is already running")

// InstanceGuard keeps a loopback port bound for as long as the timer runs.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance binds a port derived from the app and user names, so
// each user can run exactly one timer at a time.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(appName+"/"+currentUser()))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w (lock %s)", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the lock. Safe to call more than once.
func (guard *InstanceGuard) Release() {
	if guard == nil || guard.listener == nil {
		return
	}
	_ = guard.listener.Close()
	guard.listener = nil
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func currentUser() string {
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return fmt.Sprintf("uid-%d", os.Getuid())
}

func portFromName(name string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(name))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
