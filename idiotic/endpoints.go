// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"strings"

	"github.com/MKhiriev/go-idiotic-api/models"
)

const (
	defaultGreetingVersion = "gearz"
	textPathPrefix         = "/text/"
)

// endpoints is the remote API surface. Paths and parameter names and their
// order are a fixed external contract.
var endpoints = []models.Endpoint{
	// generators available in both environments
	generator("blame", text("name")),
	generator("triggered", avatar()),
	generator("wanted", avatar()),
	generator("pls", text("name")),
	generator("snapchat", text("text")),
	generator("achievement", avatar(), text("text")),
	generator("thesearch", avatar(), text("text")),
	generator("beautiful", avatar()),
	generator("facepalm", avatar()),
	generator("respect", avatar()),
	generator("stepped", avatar()),
	generator("tattoo", avatar()),
	generator("vault", avatar()),
	generator("batslap", link("slapper"), link("slapped")),
	generator("superpunch", link("puncher"), link("punched")),
	generator("slap", link("slapper"), link("slapped")),
	generator("crush", link("crusher"), link("crush")),

	// development-only generators
	devGenerator("missing", avatar(), text("text")),
	devGenerator("challenger", avatar()),
	devGenerator("karen", avatar()),
	devGenerator("steam", avatar(), text("text")),
	devGenerator("bobross", avatar()),
	devGenerator("heavyfear", avatar()),
	devGenerator("painting", avatar()),
	aliased(devGenerator("waifuinsult", avatar()), "waifu_insult"),
	devGenerator("wreckit", avatar()),
	devGenerator("confused", avatar(), link("photo")),
	devGenerator("garbage", avatar()),
	aliased(devGenerator("superspank", link("spanker"), link("spanked")), "super_spank"),
	aliased(devGenerator("tinder", avatar(), link("match")), "tinder_match", "tindermatch"),
	aliased(devGenerator("colour", withAliases(text("colour"), "color")), "color"),
	devGenerator("kirby", avatar(), text("text")),
	renamed(devGenerator("vr", avatar(), unsent(text("text"))), "virtual", "vr"),
	devGenerator("changemymind", avatar(), text("text")),
	devGenerator("sniper", avatar()),
	devGenerator("osu", text("user"), optional(enum("theme", "dark", "light", "darker"), "dark")),
	devGenerator("coffee", text("text1"), text("text2")),
	devGenerator("religion", avatar()),
	devGenerator("suggestion", avatar(), withAliases(text("suggestion"), "text")),
	devGenerator("time", avatar()),
	devGenerator("ignore", avatar()),
	devGenerator("hide", avatar()),
	devGenerator("hates", avatar()),
	devGenerator("girls", avatar()),
	renamed(devGenerator("02picture", avatar()), "zerotwo", "02picture"),

	// greetings
	greeting("welcome",
		standardOnly(escaped(text("guild"))), legacyBool("bot"),
		escapedStandardOnly(text("usertag")), avatar()),
	greeting("goodbye",
		legacyBool("bot"), escaped(text("usertag")), avatar()),
	{
		Name:            "greeting",
		Aliases:         []string{"unified"},
		Category:        models.CategoryGreeting,
		ProductionPath:  "/greetings/unified",
		DevelopmentPath: "/greetings/unified",
		Params: []models.Param{
			text("version"),
			text("type"),
			boolean("bot"),
			avatar(),
			text("username"),
			text("discriminator"),
			text("guildName"),
			text("memberCount"),
			optional(text("message"), ""),
		},
		Production: true,
		Result:     models.BinaryImage,
	},

	// overlays
	overlay("approved"),
	overlay("rainbow"),
	overlay("rejected"),

	// effects
	effect("brightness", avatar(), bounded("brightness")),
	effect("darkness", avatar(), bounded("darkness")),
	effect("greyscale", avatar()),
	effect("invert", avatar()),
	aliased(effect("invertGreyscale", avatar()), "invert_greyscale"),
	effect("sepia", avatar()),
	effect("silhouette", avatar()),
	aliased(effect("invertThreshold", avatar(), bounded("threshold")), "invert_threshold"),
	effect("threshold", avatar(), bounded("threshold")),

	// text styling
	textStyle("owoify"),
	textStyle("mock"),
	aliased(textStyle("tinytext", enum("style", "tiny", "superscript", "subscript")), "tiny"),
	textStyle("cursive", enum("style", "bold", "normal")),
	aliased(textStyle("vaporwave"), "vapor"),
}

// index maps lowercased names and aliases to positions in endpoints.
var index = buildIndex(endpoints)

func buildIndex(eps []models.Endpoint) map[string]int {
	idx := make(map[string]int, len(eps)*2)
	for i, ep := range eps {
		idx[strings.ToLower(ep.Name)] = i
		for _, a := range ep.Aliases {
			idx[strings.ToLower(a)] = i
		}
	}
	return idx
}

// Lookup returns the descriptor for name or one of its aliases,
// case-insensitively.
func Lookup(name string) (models.Endpoint, bool) {
	i, ok := index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.Endpoint{}, false
	}
	return endpoints[i], true
}

// Endpoints returns a copy of the full endpoint table.
func Endpoints() []models.Endpoint {
	out := make([]models.Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}

func generator(name string, params ...models.Param) models.Endpoint {
	return models.Endpoint{
		Name:            name,
		Category:        models.CategoryGenerator,
		ProductionPath:  "/" + name,
		DevelopmentPath: "/generators/" + name,
		Params:          params,
		Production:      true,
		Result:          models.BinaryImage,
	}
}

func devGenerator(remote string, params ...models.Param) models.Endpoint {
	return models.Endpoint{
		Name:            remote,
		Category:        models.CategoryGenerator,
		DevelopmentPath: "/generators/" + remote,
		Params:          params,
		Result:          models.BinaryImage,
	}
}

func greeting(kind string, params ...models.Param) models.Endpoint {
	version := models.Param{
		Name:             "version",
		Kind:             models.KindText,
		InPath:           true,
		ProductionValues: []string{defaultGreetingVersion},
	}
	version = optional(version, defaultGreetingVersion)

	return models.Endpoint{
		Name:            kind,
		Category:        models.CategoryGreeting,
		ProductionPath:  "/{version}_" + kind,
		DevelopmentPath: "/greetings/{version}_" + kind,
		Params:          append([]models.Param{version}, params...),
		Production:      true,
		Result:          models.BinaryImage,
	}
}

func overlay(name string) models.Endpoint {
	return models.Endpoint{
		Name:            name,
		Category:        models.CategoryOverlay,
		DevelopmentPath: "/overlays/" + name,
		Params:          []models.Param{avatar()},
		Result:          models.BinaryImage,
	}
}

func effect(name string, params ...models.Param) models.Endpoint {
	return models.Endpoint{
		Name:            name,
		Category:        models.CategoryEffect,
		DevelopmentPath: "/effects/" + name,
		Params:          params,
		Result:          models.BinaryImage,
	}
}

func textStyle(name string, extra ...models.Param) models.Endpoint {
	return models.Endpoint{
		Name:            name,
		Category:        models.CategoryText,
		DevelopmentPath: textPathPrefix + name,
		Params:          append([]models.Param{text("text")}, extra...),
		Result:          models.Text,
	}
}

func aliased(ep models.Endpoint, aliases ...string) models.Endpoint {
	ep.Aliases = append(ep.Aliases, aliases...)
	return ep
}

func renamed(ep models.Endpoint, name string, aliases ...string) models.Endpoint {
	ep.Name = name
	return aliased(ep, aliases...)
}

func avatar() models.Param { return link("avatar") }

func link(name string) models.Param {
	return models.Param{Name: name, Kind: models.KindURL}
}

func text(name string) models.Param {
	return models.Param{Name: name, Kind: models.KindText}
}

func boolean(name string) models.Param {
	return models.Param{Name: name, Kind: models.KindBoolean}
}

func legacyBool(name string) models.Param {
	return models.Param{Name: name, Kind: models.KindLegacyBoolean}
}

func bounded(name string) models.Param {
	return models.Param{Name: name, Kind: models.KindBounded}
}

func enum(name string, allowed ...string) models.Param {
	return models.Param{Name: name, Kind: models.KindEnum, Allowed: allowed}
}

func optional(p models.Param, def string) models.Param {
	p.Default = &def
	return p
}

func escaped(p models.Param) models.Param {
	p.Escape = true
	return p
}

func escapedStandardOnly(p models.Param) models.Param {
	p = escaped(p)
	p.EscapeStandardOnly = true
	return p
}

func standardOnly(p models.Param) models.Param {
	p.StandardOnly = true
	return p
}

func unsent(p models.Param) models.Param {
	p.Unsent = true
	return p
}

func withAliases(p models.Param, aliases ...string) models.Param {
	p.Aliases = append(p.Aliases, aliases...)
	return p
}
