// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ResultKind tells which response envelope an endpoint produces.
type ResultKind int

const (
	// BinaryImage endpoints answer with {"data": [byte, ...]}.
	BinaryImage ResultKind = iota

	// Text endpoints answer with {"text": "..."}.
	Text
)

func (k ResultKind) String() string {
	if k == Text {
		return "text"
	}
	return "image"
}

// Category groups endpoints the way the development API nests their paths.
type Category string

const (
	CategoryGenerator Category = "generators"
	CategoryOverlay   Category = "overlays"
	CategoryEffect    Category = "effects"
	CategoryGreeting  Category = "greetings"
	CategoryText      Category = "text"
)

// ParamKind defines how a parameter value is checked and rendered into the
// query string.
type ParamKind int

const (
	// KindURL is a link to an image. It is sent as-is and never validated.
	KindURL ParamKind = iota

	// KindText is free text sent as-is.
	KindText

	// KindBoolean is rendered as "true" / "false".
	KindBoolean

	// KindLegacyBoolean is rendered as "True" / "False". Only the legacy
	// welcome and goodbye endpoints expect this spelling.
	KindLegacyBoolean

	// KindBounded is an integer in [0, 255].
	KindBounded

	// KindEnum is a string from a fixed set, matched case-insensitively and
	// sent lowercased.
	KindEnum
)

func (k ParamKind) String() string {
	switch k {
	case KindURL:
		return "url"
	case KindText:
		return "text"
	case KindBoolean, KindLegacyBoolean:
		return "boolean"
	case KindBounded:
		return "integer[0-255]"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Param describes one request parameter of an [Endpoint].
type Param struct {
	// Name is the wire name of the parameter.
	Name string `json:"name"`

	Kind ParamKind `json:"-"`

	// Aliases are alternative keys callers may use instead of Name.
	Aliases []string `json:"aliases,omitempty"`

	// Allowed is the value set of a KindEnum parameter.
	Allowed []string `json:"allowed,omitempty"`

	// Default makes the parameter optional. A nil Default means required.
	Default *string `json:"default,omitempty"`

	// Escape percent-encodes the value before it is placed in the query.
	// Only set for parameters the remote API is known to need it for.
	Escape bool `json:"-"`

	// EscapeStandardOnly restricts Escape to calls whose ProductionValues
	// parameters all hold production values.
	EscapeStandardOnly bool `json:"-"`

	// StandardOnly parameters are accepted for every variant but only sent
	// when the ProductionValues parameters all hold production values.
	StandardOnly bool `json:"-"`

	// InPath substitutes the value into a {Name} placeholder of the path
	// instead of sending it as a query parameter.
	InPath bool `json:"in_path,omitempty"`

	// Unsent parameters are accepted and type-checked but never transmitted.
	Unsent bool `json:"-"`

	// ProductionValues, when set, lists the only values usable in
	// production. Any other value is development-only.
	ProductionValues []string `json:"production_values,omitempty"`
}

// Required reports whether callers must supply the parameter.
func (p Param) Required() bool {
	return p.Default == nil
}

// Matches reports whether key names this parameter, either by wire name or
// by one of its aliases.
func (p Param) Matches(key string) bool {
	if strings.EqualFold(p.Name, key) {
		return true
	}
	for _, a := range p.Aliases {
		if strings.EqualFold(a, key) {
			return true
		}
	}
	return false
}

// Endpoint is the static descriptor of one remote operation.
type Endpoint struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Category Category `json:"category"`

	// ProductionPath and DevelopmentPath may contain {param} placeholders
	// filled from InPath parameters.
	ProductionPath  string `json:"production_path,omitempty"`
	DevelopmentPath string `json:"development_path"`

	// Params are kept in the order the remote API historically received them.
	Params []Param `json:"params"`

	// Production is false for development-only endpoints.
	Production bool `json:"production"`

	Result ResultKind `json:"-"`
}

// Path returns the path template for env.
func (e Endpoint) Path(env Environment) string {
	if env == Production {
		return e.ProductionPath
	}
	return e.DevelopmentPath
}

// AvailableIn reports whether the endpoint may be called in env.
func (e Endpoint) AvailableIn(env Environment) bool {
	return env == Development || e.Production
}

// Param looks up a parameter by wire name or alias.
func (e Endpoint) Param(key string) (Param, bool) {
	for _, p := range e.Params {
		if p.Matches(key) {
			return p, true
		}
	}
	return Param{}, false
}
