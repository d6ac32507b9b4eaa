// Package config provides configuration loading, merging, and validation
// for the CLI and the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Fields no source sets receive package defaults. The entry points are
// [GetClientConfig] for the CLI and [GetServerConfig] for the gateway.
package config
