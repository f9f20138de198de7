package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote note store address in format [host]:[port]
//	-g gateway listen address in format [host]:[port]
//	-d local database path (SQLite file)
//	-c/-config json file path with configs
//	-cache-version side-cache generation name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-probe-interval connectivity probe interval (e.g., "15s")
func ParseFlags() *StructuredConfig {
	var remoteAddress, gatewayAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var cacheVersion string
	var requestTimeout time.Duration
	var probeInterval time.Duration

	flag.Var(&remoteAddress, "a", "Remote note store address host:port")
	flag.Var(&gatewayAddress, "g", "Gateway listen address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cacheVersion, "cache-version", "", "Side-cache generation name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			CacheVersion: cacheVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Gateway: Gateway{
			Address: gatewayAddress.String(),
		},
		Workers:      Workers{ProbeInterval: probeInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
