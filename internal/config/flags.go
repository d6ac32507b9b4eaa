package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindAPIFlags registers the flags shared by the CLI and the gateway on fs.
// Parsed values are written into cfg.
//
//	--token         API token
//	--env           production or development
//	--base-url      base URL override
//	--timeout       per-request timeout (e.g. "30s")
//	-c/--config     JSON config file path
//	--log-level     zerolog level name
func BindAPIFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVar(&cfg.API.Token, "token", "", "API token")
	fs.StringVar(&cfg.API.Environment, "env", "", "API environment: production or development")
	fs.StringVar(&cfg.API.BaseURL, "base-url", "", "API base URL override")
	fs.DurationVar(&cfg.API.RequestTimeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
}

// BindServerFlags registers the gateway listener flags.
//
//	-a/--address          listen address in format [host]:[port]
//	--shutdown-timeout    graceful shutdown limit
func BindServerFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.VarP(&addressValue{dst: &cfg.Server.HTTPAddress}, "address", "a", "Net address host:port")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
}

// BindBatchFlags registers the batch runner flags.
//
//	-o/--out          output directory
//	--concurrency     number of jobs run at once
func BindBatchFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVarP(&cfg.Batch.OutputDir, "out", "o", "", "Output directory for job results")
	fs.IntVar(&cfg.Batch.Concurrency, "concurrency", 0, "Number of jobs run concurrently")
}

// ParseServerFlags parses the gateway command line.
func ParseServerFlags(name string, args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	BindAPIFlags(fs, cfg)
	BindServerFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// addressValue validates a host:port flag through NetAddress and stores its
// canonical form.
type addressValue struct {
	dst *string
}

func (v *addressValue) String() string {
	if v.dst == nil {
		return ""
	}
	return *v.dst
}

func (v *addressValue) Set(s string) error {
	var addr NetAddress
	if err := addr.Set(s); err != nil {
		return err
	}
	*v.dst = addr.String()
	return nil
}

func (v *addressValue) Type() string { return "address" }

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// Host may be empty (all interfaces), "localhost" or an IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string { return "address" }
