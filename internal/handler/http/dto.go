package http

import (
	"github.com/MKhiriev/go-idiotic-api/models"
)

type paramView struct {
	Name     string   `json:"name"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Aliases  []string `json:"aliases,omitempty"`
	Allowed  []string `json:"allowed,omitempty"`
	Default  *string  `json:"default,omitempty"`
}

type endpointView struct {
	Name      string      `json:"name"`
	Aliases   []string    `json:"aliases,omitempty"`
	Category  string      `json:"category"`
	Result    string      `json:"result"`
	Path      string      `json:"path,omitempty"`
	Available bool        `json:"available"`
	Params    []paramView `json:"params"`
}

type endpointsResponse struct {
	Environment string         `json:"environment"`
	Endpoints   []endpointView `json:"endpoints"`
}

func newEndpointView(ep models.Endpoint, env models.Environment) endpointView {
	params := make([]paramView, 0, len(ep.Params))
	for _, p := range ep.Params {
		params = append(params, paramView{
			Name:     p.Name,
			Kind:     p.Kind.String(),
			Required: p.Required(),
			Aliases:  p.Aliases,
			Allowed:  p.Allowed,
			Default:  p.Default,
		})
	}

	return endpointView{
		Name:      ep.Name,
		Aliases:   ep.Aliases,
		Category:  string(ep.Category),
		Result:    ep.Result.String(),
		Path:      ep.Path(env),
		Available: ep.AvailableIn(env),
		Params:    params,
	}
}
