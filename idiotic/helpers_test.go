package idiotic

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an httptest server standing in for the remote API. It counts
// requests and keeps the last one for inspection.
type fakeAPI struct {
	*httptest.Server

	calls atomic.Int32

	mu   sync.Mutex
	last *http.Request
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.mu.Lock()
		f.last = r.Clone(r.Context())
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) lastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// newTestClient builds a Client pointed at the fake API.
func newTestClient(t *testing.T, f *fakeAPI, env models.Environment, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithEnvironment(env), WithBaseURL(f.URL)}, opts...)
	c, err := New("secret-token", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

const pngBody = `{"data":[137,80,78,71]}`
