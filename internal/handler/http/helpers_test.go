package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/internal/logger"
	"github.com/MKhiriev/go-idiotic-api/internal/metrics"
	"github.com/MKhiriev/go-idiotic-api/internal/mock"
	"github.com/MKhiriev/go-idiotic-api/internal/service"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// newTestHandler builds a Handler over a mocked generator. Lookup answers from
// the real endpoint table; Endpoints and Call must be set up by the test.
func newTestHandler(t *testing.T, env models.Environment) (*Handler, *mock.MockGenerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gen := mock.NewMockGenerator(ctrl)
	gen.EXPECT().Lookup(gomock.Any()).DoAndReturn(func(name string) (models.Endpoint, error) {
		ep, ok := idiotic.Lookup(name)
		if !ok {
			return models.Endpoint{}, idiotic.ErrUnknownEndpoint
		}
		return ep, nil
	}).AnyTimes()
	gen.EXPECT().Environment().Return(env).AnyTimes()

	svcs := &service.Services{
		GeneratorService: service.NewGeneratorService(gen, logger.Nop()),
		AppInfoService:   &mockAppInfoService{version: "test-version"},
	}

	return NewHandler(svcs, metrics.NewCollector(prometheus.NewRegistry()), logger.Nop()), gen
}

func serve(h *Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	return serve(h, http.MethodGet, target)
}
