package discovery

import (
	"fmt"
	"net"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"
)

const (
	// ServiceType is the mDNS service type tinyhttpd registers as
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// Registration describes what to advertise
type Registration struct {
	// Instance is the human-readable service instance name
	Instance string
	// Host is the address the server is bound to (may be empty for all interfaces)
	Host string
	// Port is the bound TCP port
	Port int
	// Version is published in the TXT record
	Version string
}

// TXTRecords returns the TXT record entries for a registration
func (r Registration) TXTRecords() []string {
	records := []string{"path=/", "cgi=/cgi-bin/"}
	if r.Version != "" {
		records = append(records, "version="+r.Version)
	}
	return records
}

// Validate checks that the registration can be published
func (r Registration) Validate() error {
	if r.Instance == "" {
		return fmt.Errorf("mDNS instance name must not be empty")
	}
	if r.Port <= 0 || r.Port > 65535 {
		return fmt.Errorf("invalid port %d for mDNS advertisement", r.Port)
	}
	return nil
}

// IsLoopback reports whether the registration's host is a loopback address
func (r Registration) IsLoopback() bool {
	if r.Host == "localhost" {
		return true
	}
	ip := net.ParseIP(r.Host)
	return ip != nil && ip.IsLoopback()
}

// Advertiser holds a live mDNS registration
type Advertiser struct {
	server *zeroconf.Server
	logger *zap.Logger
}

// Advertise publishes reg on all multicast-capable interfaces.
// Call Shutdown on the returned Advertiser to withdraw it.
func Advertise(reg Registration, logger *zap.Logger) (*Advertiser, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	if reg.IsLoopback() {
		logger.Warn("advertising a loopback-bound server; it will not be reachable from other hosts",
			zap.String("host", reg.Host),
		)
	}

	server, err := zeroconf.Register(reg.Instance, ServiceType, ServiceDomain, reg.Port, reg.TXTRecords(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logger.Info("mDNS service registered",
		zap.String("instance", reg.Instance),
		zap.String("service", ServiceType),
		zap.Int("port", reg.Port),
		zap.Strings("txt", reg.TXTRecords()),
	)

	return &Advertiser{server: server, logger: logger}, nil
}

// Shutdown withdraws the registration
func (a *Advertiser) Shutdown() {
	if a == nil || a.server == nil {
		return
	}
	a.server.Shutdown()
	a.logger.Info("mDNS service withdrawn")
}
