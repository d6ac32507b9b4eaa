package idiotic

import "github.com/MKhiriev/go-idiotic-api/models"

const (
	productionBaseURL  = "https://api.anidiots.guide"
	developmentBaseURL = "https://dev.anidiots.guide"
)

// profile is everything that differs between the two API deployments. It is
// resolved once in New.
type profile struct {
	env     models.Environment
	baseURL string

	// authHeader is "token" in production and "Authorization" in
	// development. The remote API expects exactly this.
	authHeader string
}

func resolveProfile(env models.Environment) profile {
	if env == models.Development {
		return profile{env: env, baseURL: developmentBaseURL, authHeader: "Authorization"}
	}
	return profile{env: models.Production, baseURL: productionBaseURL, authHeader: "token"}
}
