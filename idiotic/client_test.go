// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package idiotic

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyToken(t *testing.T) {
	for _, token := range []string{"", "   ", "\t\n"} {
		c, err := New(token)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrEmptyToken)
	}
}

func TestNew_ProfileByEnvironment(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantEnv    models.Environment
		wantURL    string
		wantHeader string
	}{
		{
			name:       "default is production",
			wantEnv:    models.Production,
			wantURL:    "https://api.anidiots.guide",
			wantHeader: "token",
		},
		{
			name:       "development",
			opts:       []Option{WithEnvironment(models.Development)},
			wantEnv:    models.Development,
			wantURL:    "https://dev.anidiots.guide",
			wantHeader: "Authorization",
		},
		{
			name:       "base url override keeps auth header of environment",
			opts:       []Option{WithEnvironment(models.Development), WithBaseURL("http://localhost:9999/ ")},
			wantEnv:    models.Development,
			wantURL:    "http://localhost:9999",
			wantHeader: "Authorization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New("tok", tt.opts...)
			require.NoError(t, err)
			defer c.Close()

			assert.Equal(t, tt.wantEnv, c.Environment())
			assert.Equal(t, tt.wantURL, c.BaseURL())
			assert.Equal(t, tt.wantHeader, c.profile.authHeader)
		})
	}
}

func TestClient_StringHidesToken(t *testing.T) {
	c, err := New("very-secret", WithEnvironment(models.Development))
	require.NoError(t, err)

	s := c.String()
	assert.Contains(t, s, "development")
	assert.Contains(t, s, "https://dev.anidiots.guide")
	assert.NotContains(t, s, "very-secret")
}

func TestClient_Close(t *testing.T) {
	f := newFakeAPI(t, 200, pngBody)
	c := newTestClient(t, f, models.Production)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "Close must be idempotent")

	_, err := c.Call(context.Background(), "blame", Params{"name": "bob"})
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.Zero(t, f.calls.Load())
}

func TestClient_SharedSessionIsNotOwned(t *testing.T) {
	shared := resty.New()
	c, err := New("tok", WithHTTPClient(shared), WithTimeout(time.Second))
	require.NoError(t, err)

	assert.False(t, c.session.Owned())
	assert.Same(t, shared, c.session.Client)
	// WithTimeout only applies to owned sessions
	assert.Zero(t, shared.GetClient().Timeout)
	require.NoError(t, c.Close())
}

func TestClient_OwnedSessionTimeout(t *testing.T) {
	c, err := New("tok", WithTimeout(2*time.Second))
	require.NoError(t, err)
	defer c.Close()

	assert.True(t, c.session.Owned())
	assert.Equal(t, 2*time.Second, c.session.GetClient().Timeout)
}

func TestClient_EndpointsByEnvironment(t *testing.T) {
	prod, err := New("tok")
	require.NoError(t, err)
	dev, err := New("tok", WithEnvironment(models.Development))
	require.NoError(t, err)

	for _, ep := range prod.Endpoints() {
		assert.True(t, ep.Production, "%s listed in production", ep.Name)
	}
	assert.Len(t, dev.Endpoints(), len(Endpoints()))
	assert.Less(t, len(prod.Endpoints()), len(dev.Endpoints()))
}

func TestClient_Lookup(t *testing.T) {
	c, err := New("tok")
	require.NoError(t, err)

	ep, err := c.Lookup("COLOR")
	require.NoError(t, err)
	assert.Equal(t, "colour", ep.Name)

	_, err = c.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownEndpoint)
}

func TestClient_Observer(t *testing.T) {
	f := newFakeAPI(t, 200, pngBody)

	var (
		gotEndpoint string
		gotStatus   int
	)
	c := newTestClient(t, f, models.Production, WithObserver(func(endpoint string, status int, _ time.Duration, err error) {
		gotEndpoint = endpoint
		gotStatus = status
		assert.NoError(t, err)
	}))

	_, err := c.Image(context.Background(), "blame", Params{"name": "bob"})
	require.NoError(t, err)
	assert.Equal(t, "blame", gotEndpoint)
	assert.Equal(t, 200, gotStatus)
}
