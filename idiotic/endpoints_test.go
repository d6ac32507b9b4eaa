package idiotic

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/stretchr/testify/assert"
)

func TestEndpoints_TableIsConsistent(t *testing.T) {
	seen := map[string]string{}

	for _, ep := range Endpoints() {
		for _, key := range append([]string{ep.Name}, ep.Aliases...) {
			k := strings.ToLower(key)
			if owner, dup := seen[k]; dup && owner != ep.Name {
				t.Errorf("name %q used by both %s and %s", key, owner, ep.Name)
			}
			seen[k] = ep.Name
		}

		assert.NotEmpty(t, ep.DevelopmentPath, ep.Name)
		if ep.Production {
			assert.NotEmpty(t, ep.ProductionPath, ep.Name)
		} else {
			assert.Empty(t, ep.ProductionPath, ep.Name)
		}

		for _, p := range ep.Params {
			if p.Kind == models.KindEnum {
				assert.NotEmpty(t, p.Allowed, "%s.%s", ep.Name, p.Name)
			}
			if p.InPath {
				assert.Contains(t, ep.DevelopmentPath, "{"+p.Name+"}")
			}
		}
	}
}

func TestEndpoints_ProductionSurface(t *testing.T) {
	want := []string{
		"blame", "triggered", "wanted", "pls", "snapchat", "achievement", "thesearch",
		"beautiful", "facepalm", "respect", "stepped", "tattoo", "vault", "batslap",
		"superpunch", "slap", "crush", "welcome", "goodbye", "greeting",
	}

	var got []string
	for _, ep := range Endpoints() {
		if ep.Production {
			got = append(got, ep.Name)
		}
	}
	assert.ElementsMatch(t, want, got)
}

func TestEndpoints_ReturnsCopy(t *testing.T) {
	eps := Endpoints()
	eps[0].Name = "mutated"

	ep, ok := Lookup("blame")
	assert.True(t, ok)
	assert.Equal(t, "blame", ep.Name)
}

func TestLookup_Aliases(t *testing.T) {
	tests := map[string]string{
		"color":            "colour",
		"vr":               "virtual",
		"VIRTUAL":          "virtual",
		"tiny":             "tinytext",
		"vapor":            "vaporwave",
		"waifu_insult":     "waifuinsult",
		"tinder_match":     "tinder",
		"super_spank":      "superspank",
		"invert_greyscale": "invertGreyscale",
		"02picture":        "zerotwo",
		" blame ":          "blame",
	}
	for alias, name := range tests {
		ep, ok := Lookup(alias)
		if assert.True(t, ok, alias) {
			assert.Equal(t, name, ep.Name, alias)
		}
	}
}
