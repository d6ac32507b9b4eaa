// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-idiotic-api/models"
)

// ErrWrongResultKind is returned by [Client.Image] for text endpoints and by
// [Client.Text] for image endpoints.
var ErrWrongResultKind = errors.New("endpoint produces a different result kind")

// ErrDuplicateParameter is wrapped when a parameter is given under both its
// name and an alias.
var ErrDuplicateParameter = errors.New("parameter given more than once")

// Params carries endpoint arguments keyed by wire name or alias. Values must
// be string for url/text/enum parameters, bool for booleans and a Go integer
// for bounded parameters.
type Params map[string]any

// Call implements [Generator]. It runs the full dispatch for the endpoint
// registered under name:
//
//  1. development-only endpoints fail with *EndpointUnavailableError in
//     production, before any network call;
//  2. parameters are resolved (aliases, defaults, missing and unknown keys);
//  3. bounded, enum and then text/boolean parameters are validated;
//  4. the environment's path is filled in and the request is delegated to
//     the binary or text primitive.
func (c *Client) Call(ctx context.Context, name string, params Params) (models.Result, error) {
	if c.closed.Load() {
		return models.Result{}, ErrClientClosed
	}

	ep, err := c.Lookup(name)
	if err != nil {
		return models.Result{}, err
	}

	env := c.profile.env
	if !ep.AvailableIn(env) {
		return models.Result{}, &EndpointUnavailableError{Endpoint: ep.Name}
	}

	values, err := resolveParams(ep, params)
	if err != nil {
		return models.Result{}, err
	}

	variantErr := checkProductionValues(ep, values)
	if env == models.Production && variantErr != nil {
		return models.Result{}, variantErr
	}

	path := renderPath(ep.Path(env), ep, values)

	if ep.Result == models.Text {
		text, err := c.fetchText(ctx, ep.Name, strings.TrimPrefix(path, textPathPrefix), values["text"], values["style"])
		if err != nil {
			return models.Result{}, err
		}
		return models.Result{Kind: models.Text, Text: text}, nil
	}

	data, err := c.fetchBinary(ctx, ep.Name, path, buildQuery(ep, values, variantErr == nil))
	if err != nil {
		return models.Result{}, err
	}
	return models.Result{Kind: models.BinaryImage, Data: data}, nil
}

// Image calls an image endpoint and returns the raw image bytes.
func (c *Client) Image(ctx context.Context, name string, params Params) ([]byte, error) {
	ep, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	if ep.Result != models.BinaryImage {
		return nil, fmt.Errorf("%w: %s returns text", ErrWrongResultKind, ep.Name)
	}

	res, err := c.Call(ctx, name, params)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Text calls a text styling endpoint and returns the generated string.
func (c *Client) Text(ctx context.Context, name string, params Params) (string, error) {
	ep, err := c.Lookup(name)
	if err != nil {
		return "", err
	}
	if ep.Result != models.Text {
		return "", fmt.Errorf("%w: %s returns an image", ErrWrongResultKind, ep.Name)
	}

	res, err := c.Call(ctx, name, params)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// resolveParams validates params against ep and renders every parameter to
// its wire form, keyed by wire name.
func resolveParams(ep models.Endpoint, params Params) (map[string]string, error) {
	given := make(map[string]any, len(params))

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p, ok := ep.Param(k)
		if !ok {
			return nil, &InvalidParameterError{Endpoint: ep.Name, Param: k, Err: ErrUnknownParameter}
		}
		if _, dup := given[p.Name]; dup {
			return nil, &InvalidParameterError{Endpoint: ep.Name, Param: p.Name, Err: ErrDuplicateParameter}
		}
		given[p.Name] = params[k]
	}

	for _, p := range ep.Params {
		if _, ok := given[p.Name]; !ok && p.Required() {
			return nil, &InvalidParameterError{Endpoint: ep.Name, Param: p.Name, Err: ErrMissingParameter}
		}
	}

	out := make(map[string]string, len(ep.Params))

	// bounded integers first, then enums, then everything else
	for _, pass := range [][]models.ParamKind{
		{models.KindBounded},
		{models.KindEnum},
		{models.KindURL, models.KindText, models.KindBoolean, models.KindLegacyBoolean},
	} {
		for _, p := range ep.Params {
			if !slices.Contains(pass, p.Kind) {
				continue
			}
			v, ok := given[p.Name]
			if !ok {
				out[p.Name] = *p.Default
				continue
			}
			rendered, err := renderParam(p, v)
			if err != nil {
				return nil, withEndpoint(err, ep.Name)
			}
			out[p.Name] = rendered
		}
	}

	return out, nil
}

func renderParam(p models.Param, v any) (string, error) {
	switch p.Kind {
	case models.KindBounded:
		n, ok := asInt(v)
		if !ok {
			return "", &TypeMismatchError{Param: p.Name, Expected: "an integer", Got: v}
		}
		if err := ValidateBounded(p.Name, n); err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil

	case models.KindEnum:
		s, ok := v.(string)
		if !ok {
			return "", &TypeMismatchError{Param: p.Name, Expected: "a string", Got: v}
		}
		return NormalizeEnum(p.Name, s, p.Allowed)

	case models.KindBoolean, models.KindLegacyBoolean:
		b, ok := v.(bool)
		if !ok {
			return "", &TypeMismatchError{Param: p.Name, Expected: "a boolean", Got: v}
		}
		s := strconv.FormatBool(b)
		if p.Kind == models.KindLegacyBoolean {
			s = strings.ToUpper(s[:1]) + s[1:]
		}
		return s, nil

	default:
		s, ok := v.(string)
		if !ok {
			return "", &TypeMismatchError{Param: p.Name, Expected: "a string", Got: v}
		}
		return s, nil
	}
}

func withEndpoint(err error, endpoint string) error {
	var ipe *InvalidParameterError
	if errors.As(err, &ipe) {
		ipe.Endpoint = endpoint
		return ipe
	}
	var tme *TypeMismatchError
	if errors.As(err, &tme) {
		tme.Endpoint = endpoint
		return tme
	}
	return err
}

func checkProductionValues(ep models.Endpoint, values map[string]string) error {
	for _, p := range ep.Params {
		if len(p.ProductionValues) == 0 {
			continue
		}
		if v := values[p.Name]; !slices.Contains(p.ProductionValues, v) {
			return &EndpointUnavailableError{Endpoint: ep.Name, Variant: p.Name + "=" + v}
		}
	}
	return nil
}

func renderPath(tmpl string, ep models.Endpoint, values map[string]string) string {
	for _, p := range ep.Params {
		if p.InPath {
			tmpl = strings.ReplaceAll(tmpl, "{"+p.Name+"}", values[p.Name])
		}
	}
	return tmpl
}

// buildQuery joins the query parameters of ep in table order. Values are
// already rendered and only Escape parameters get encoded here. standard
// reports whether every ProductionValues parameter holds a production value;
// the legacy greetings send a reduced, unescaped query otherwise.
func buildQuery(ep models.Endpoint, values map[string]string, standard bool) string {
	parts := make([]string, 0, len(ep.Params))
	for _, p := range ep.Params {
		if p.InPath || p.Unsent || (p.StandardOnly && !standard) {
			continue
		}
		v := values[p.Name]
		if p.Escape && (standard || !p.EscapeStandardOnly) {
			v = quote(v)
		}
		parts = append(parts, p.Name+"="+v)
	}
	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}
