package idiotic

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-idiotic-api/models"
)

// ParseParams converts string inputs (query strings, CLI key=value pairs,
// YAML job files) into typed [Params] for ep. Bounded parameters are parsed
// as integers and booleans with strconv.ParseBool; everything else stays a
// string. Keys ep does not know are kept as strings so that [Client.Call]
// reports them. Only the first value of a repeated key is used.
func ParseParams(ep models.Endpoint, values url.Values) (Params, error) {
	params := make(Params, len(values))
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		raw := vs[0]

		p, ok := ep.Param(key)
		if !ok {
			params[key] = raw
			continue
		}

		switch p.Kind {
		case models.KindBounded:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, &TypeMismatchError{Endpoint: ep.Name, Param: p.Name, Expected: "an integer", Got: raw}
			}
			params[key] = n
		case models.KindBoolean, models.KindLegacyBoolean:
			b, err := strconv.ParseBool(strings.TrimSpace(raw))
			if err != nil {
				return nil, &TypeMismatchError{Endpoint: ep.Name, Param: p.Name, Expected: "a boolean", Got: raw}
			}
			params[key] = b
		default:
			params[key] = raw
		}
	}
	return params, nil
}

// ParsePairs turns "key=value" arguments into url.Values. Arguments without
// '=' are reported back as invalid.
func ParsePairs(args []string) (url.Values, []string) {
	values := make(url.Values, len(args))
	var invalid []string
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			invalid = append(invalid, arg)
			continue
		}
		values.Add(k, v)
	}
	return values, invalid
}
