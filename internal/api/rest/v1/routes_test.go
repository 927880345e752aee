//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAnalysisService := new(MockPolicyAnalysisService)
	mockMetadataService := new(MockPolicyMetadataService)
	mockSimulationService := new(MockClaimSimulationService)
	mockReportService := new(MockReportService)
	mockChartRenderer := new(MockChartRenderer)

	r := gin.Default()

	// Setup mocks to return nil
	mockAuthService.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", nil)
	mockAuthService.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	sessions := testSessionManager(t)
	SetupRoutes(r, sessions, mockAuthService, 300, mockAnalysisService, mockMetadataService, mockSimulationService, mockReportService, mockChartRenderer, 16<<20)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/cgs/auth/login"},
		{"POST", "/api/v1/cgs/auth/verify"},
		{"POST", "/api/v1/cgs/auth/logout"},
		{"POST", "/api/v1/cgs/policies"},
		{"GET", "/api/v1/cgs/policies"},
		{"GET", "/api/v1/cgs/stats"},
		{"GET", "/api/v1/cgs/policy-types"},
		{"POST", "/api/v1/cgs/simulations"},
		{"POST", "/api/v1/cgs/comparisons"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

// TestSetupRoutes_PolicyRoutesRequireSession verifies the session middleware
// guards the policy routes
func TestSetupRoutes_PolicyRoutesRequireSession(t *testing.T) {
	r := gin.New()

	SetupRoutes(r, testSessionManager(t), new(MockAuthService), 300, new(MockPolicyAnalysisService),
		new(MockPolicyMetadataService), new(MockClaimSimulationService), new(MockReportService),
		new(MockChartRenderer), 16<<20)

	req, _ := http.NewRequest("GET", "/api/v1/cgs/policies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
