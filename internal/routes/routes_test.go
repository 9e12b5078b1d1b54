package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"navigation-api/pkg/logger"
	"navigation-api/pkg/metrics"
	"navigation-api/pkg/validation"
)

// RouterTestSuite проверяет маршрутизацию без базы: запросы в тестах
// отклоняются до обращения к хранилищу.
type RouterTestSuite struct {
	suite.Suite
	Echo *echo.Echo
}

func (s *RouterTestSuite) SetupSuite() {
	e := echo.New()
	e.Validator = validation.New()
	InitRouter(e, nil, logger.NewNopLoggers(), metrics.NewManager())
	s.Echo = e
}

func (s *RouterTestSuite) do(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestRegisteredPaths() {
	var paths []string
	for _, r := range s.Echo.Routes() {
		if r.Method == http.MethodGet {
			paths = append(paths, r.Path)
		}
	}
	sort.Strings(paths)

	for _, want := range []string{
		"/docs",
		"/docs/openapi.yaml",
		"/health",
		"/metrics",
		"/routes",
		"/routes/best",
		"/users",
		"/users/:id",
	} {
		s.Contains(paths, want)
	}
}

func (s *RouterTestSuite) TestInvalidUserIDIsRejectedBeforeStore() {
	for _, target := range []string{"/users/abc", "/users/0", "/routes/best", "/routes/best?userId=x"} {
		rec := s.do(target)
		s.Equal(http.StatusBadRequest, rec.Code, target)
		s.Equal("Invalid user ID", rec.Body.String(), target)
	}
}

func (s *RouterTestSuite) TestUnknownPath() {
	rec := s.do("/nope")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterTestSuite) TestMetricsAndDocs() {
	s.Equal(http.StatusOK, s.do("/metrics").Code)
	s.Equal(http.StatusOK, s.do("/docs").Code)

	rec := s.do("/docs/openapi.yaml")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/routes/best")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealth(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"db ok", nil, http.StatusOK, "ok"},
		{"db down", errors.New("connection refused"), http.StatusServiceUnavailable, "database unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			runHealthRouter(e, fakePinger{err: tc.err}, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}
