// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable replaces build metadata that was not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags into the
// CLI and the gateway. It is printed by "idiotic version" and served by
// GET /api/version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// WithDefaults returns a copy where every empty field is [NotAvailable].
func (a AppBuildInfo) WithDefaults() AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return NotAvailable
		}
		return s
	}
	return NewAppBuildInfo(orNA(a.buildVersion), orNA(a.buildDate), orNA(a.buildCommit))
}
