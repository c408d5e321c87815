package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/pkg/models"
	"github.com/inventor-project/symon/pkg/services"
)

// paramInt parses one integer path parameter.
func paramInt(c *echo.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return value, true
}

// findTest loads the test addressed by the :id_test path parameter. A
// missing test is reported before authorization, matching the key matrix:
// per-test keys cannot exist without the test.
func (s *Server) findTest(c *echo.Context) (*ent.Test, error) {
	id, ok := paramInt(c, "id_test")
	if !ok {
		return nil, apiError(c, http.StatusBadRequest, "id_test must be an integer.")
	}
	t, err := s.testService.GetTest(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, apiError(c, http.StatusNotFound, "Test doesn't exist")
		}
		return nil, mapServiceError(c, err)
	}
	return t, nil
}

// getAllTestsHandler handles GET /test/all. Root only.
func (s *Server) getAllTestsHandler(c *echo.Context) error {
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, ""); !ok {
		return err
	}
	tests, err := s.testService.GetAllTests(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	response := models.TestsResponse{Tests: make([]models.TestResponse, 0, len(tests))}
	for _, t := range tests {
		response.Tests = append(response.Tests, models.NewTestResponse(t))
	}
	return c.JSON(http.StatusOK, response)
}

// getTestHandler handles GET /test/:id_test.
func (s *Server) getTestHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRo); !ok {
		return err
	}
	return c.JSON(http.StatusOK, models.NewTestResponse(t))
}

// getTestFullHandler handles GET /test/:id_test/full. It bundles the test
// with every related row across the store.
func (s *Server) getTestFullHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRo); !ok {
		return err
	}
	ctx := c.Request().Context()

	requests, err := s.requestService.GetRequestsByTest(ctx, t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	events, err := s.eventService.GetEventsByTest(ctx, t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	runs, err := s.runService.GetRunsByTest(ctx, t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	results, err := s.resultService.GetResultsByTest(ctx, t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	oldParams, err := s.oldParamService.GetOldParamsByTest(ctx, t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}

	response := models.TestFullInfoResponse{
		Test:      models.NewTestResponse(t),
		Requests:  make([]models.RequestResponse, 0, len(requests)),
		Events:    make([]models.EventResponse, 0, len(events)),
		Runs:      make([]models.RunResponse, 0, len(runs)),
		Results:   make([]models.ResultResponse, 0, len(results)),
		OldParams: make([]models.OldParamsResponse, 0, len(oldParams)),
	}
	for _, r := range requests {
		response.Requests = append(response.Requests, models.NewRequestResponse(r))
	}
	for _, e := range events {
		response.Events = append(response.Events, models.NewEventResponse(e))
	}
	for _, r := range runs {
		response.Runs = append(response.Runs, models.NewRunResponse(r))
	}
	for _, r := range results {
		response.Results = append(response.Results, models.NewResultResponse(r))
	}
	for _, p := range oldParams {
		response.OldParams = append(response.OldParams, models.NewOldParamsResponse(p))
	}
	return c.JSON(http.StatusOK, response)
}

// getTestResultsHandler handles GET /test/:id_test/results. Fetching
// results stamps the test's last download time so retention keeps active
// tests alive.
func (s *Server) getTestResultsHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRo); !ok {
		return err
	}
	sinceID := 0
	if v := c.QueryParam("since_id"); v != "" {
		if sinceID, err = strconv.Atoi(v); err != nil {
			return apiError(c, http.StatusBadRequest, "since_id must be an integer.")
		}
	}
	ctx := c.Request().Context()
	if err := s.testService.UpdateLastDownloadedTime(ctx, t.ID, time.Now()); err != nil {
		return mapServiceError(c, err)
	}
	results, err := s.resultService.GetResultsSinceID(ctx, t.ID, sinceID)
	if err != nil {
		return mapServiceError(c, err)
	}
	response := models.ResultsResponse{Results: make([]models.ResultResponse, 0, len(results))}
	for _, r := range results {
		response.Results = append(response.Results, models.NewResultResponse(r))
	}
	return c.JSON(http.StatusOK, response)
}

// getTestEventsHandler handles GET /test/:id_test/events.
func (s *Server) getTestEventsHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRo); !ok {
		return err
	}
	events, err := s.eventService.GetEventsByTest(c.Request().Context(), t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	response := models.EventsResponse{Events: make([]models.EventResponse, 0, len(events))}
	for _, e := range events {
		response.Events = append(response.Events, models.NewEventResponse(e))
	}
	return c.JSON(http.StatusOK, response)
}

// postTestRequestHandler handles POST /test/:id_test/request. It asks the
// calendar to run the test as soon as possible. Write key required.
func (s *Server) postTestRequestHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRw); !ok {
		return err
	}
	created, err := s.requestService.CreateRequest(c.Request().Context(), t.ID, request.ReasonNew, 0)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, created.ID)
}

// getOldParamsHandler handles GET /test/:id_test/old_params.
func (s *Server) getOldParamsHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRo); !ok {
		return err
	}
	oldParams, err := s.oldParamService.GetOldParamsByTest(c.Request().Context(), t.ID)
	if err != nil {
		return mapServiceError(c, err)
	}
	response := models.OldParamsListResponse{OldParams: make([]models.OldParamsResponse, 0, len(oldParams))}
	for _, p := range oldParams {
		response.OldParams = append(response.OldParams, models.NewOldParamsResponse(p))
	}
	return c.JSON(http.StatusOK, response)
}

// getOldParamsByVersionHandler handles GET /test/:id_test/old_params/:version.
func (s *Server) getOldParamsByVersionHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRo); !ok {
		return err
	}
	version, ok := paramInt(c, "version")
	if !ok {
		return apiError(c, http.StatusBadRequest, "version must be an integer.")
	}
	oldParams, err := s.oldParamService.GetOldParamsByVersion(c.Request().Context(), t.ID, version)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "Specified old_params for the test doesn't exist.")
		}
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewOldParamsResponse(oldParams))
}

// postTestHandler handles POST /test. Creation is guarded by a dedicated
// password so the right to add tests can be granted without the root key.
func (s *Server) postTestHandler(c *echo.Context) error {
	newTestsKey := s.cfg.String("authorization", "new_tests_password")
	if ok, err := s.authorizeRequest(c, newTestsKey, ""); !ok {
		return err
	}
	var body models.CreateTestRequest
	if err := c.Bind(&body); err != nil {
		return apiError(c, http.StatusBadRequest, "Could not parse the request body.")
	}
	created, err := s.testService.CreateTest(c.Request().Context(), body)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewTestResponse(created))
}

// patchTestHandler handles PATCH /test/:id_test. Write key required.
func (s *Server) patchTestHandler(c *echo.Context) error {
	t, err := s.findTest(c)
	if t == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRw); !ok {
		return err
	}
	var body models.UpdateTestRequest
	if err := c.Bind(&body); err != nil {
		return apiError(c, http.StatusBadRequest, "Could not parse the request body.")
	}
	updated, err := s.testService.UpdateTest(c.Request().Context(), t.ID, body)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, models.NewTestResponse(updated))
}
