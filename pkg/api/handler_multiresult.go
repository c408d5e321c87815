package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/pkg/auth"
	"github.com/inventor-project/symon/pkg/models"
	"github.com/inventor-project/symon/pkg/services"
)

// findMultiResult loads the view addressed by the :id_multi_result path
// parameter.
func (s *Server) findMultiResult(c *echo.Context) (*ent.MultiResult, error) {
	id, ok := paramInt(c, "id_multi_result")
	if !ok {
		return nil, apiError(c, http.StatusBadRequest, "id_multi_result must be an integer.")
	}
	mr, err := s.multiResultService.GetMultiResult(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, apiError(c, http.StatusNotFound, "Multi results record doesn't exist")
		}
		return nil, mapServiceError(c, err)
	}
	return mr, nil
}

// joinTestIDs renders a view's attached tests in their wire form.
func joinTestIDs(ids []int) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}

// postMultiResultsInitHandler handles POST /multi-results/init. The caller
// registers a fresh batched-download view under its own name, replacing any
// previous one. The session token is the only guard; no resource key exists
// yet.
func (s *Server) postMultiResultsInitHandler(c *echo.Context) error {
	if ok, err := s.authorizeRequest(c, "", ""); !ok {
		return err
	}
	var body models.CreateMultiResultRequest
	if err := c.Bind(&body); err != nil {
		return apiError(c, http.StatusBadRequest, "Could not parse the request body.")
	}
	mr, err := s.multiResultService.ReplaceForOrchestrator(c.Request().Context(), orchestratorName(c), body.Key)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, models.MultiResultIDResponse{IDMultiResult: mr.ID})
}

// postMultiResultsHandler handles POST /multi-results/:id_multi_result. A
// test joins the view only when the caller can read the test and proves
// possession of the view key through the hash.
func (s *Server) postMultiResultsHandler(c *echo.Context) error {
	var body models.AddTestToMultiResultRequest
	if err := c.Bind(&body); err != nil {
		return apiError(c, http.StatusBadRequest, "Could not parse the request body.")
	}
	t, err := s.testService.GetTest(c.Request().Context(), body.IDTest)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return apiError(c, http.StatusNotFound, "Test doesn't exist")
		}
		return mapServiceError(c, err)
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, t.KeyRo); !ok {
		return err
	}
	mr, err := s.findMultiResult(c)
	if mr == nil {
		return err
	}
	expected := auth.CalculateHash(fmt.Sprintf("%s%d%d", mr.Key, mr.ID, body.IDTest))
	if body.Hash != expected {
		return apiError(c, http.StatusForbidden, "Wrong multi tests hash value.")
	}
	testIDs, err := s.multiResultService.AddTest(c.Request().Context(), mr.ID, body.IDTest)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, models.MultiResultTestIDsResponse{TestIDs: joinTestIDs(testIDs)})
}

// getMultiResultsHandler handles GET /multi-results/:id_multi_result. All
// attached tests are read in one sweep. The newest result id is pinned up
// front and returned as last_checked_id, so results that land mid-sweep are
// never skipped by the next incremental call.
func (s *Server) getMultiResultsHandler(c *echo.Context) error {
	mr, err := s.findMultiResult(c)
	if mr == nil {
		return err
	}
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, mr.Key); !ok {
		return err
	}
	sinceID := 0
	if v := c.QueryParam("since_id"); v != "" {
		if sinceID, err = strconv.Atoi(v); err != nil {
			return apiError(c, http.StatusBadRequest, "since_id must be an integer.")
		}
	}
	ctx := c.Request().Context()
	now := time.Now()

	if err := s.multiResultService.UpdateLastUsedTime(ctx, mr.ID, now); err != nil {
		return mapServiceError(c, err)
	}
	lastID, err := s.resultService.GetLastUsedID(ctx)
	if err != nil {
		return mapServiceError(c, err)
	}

	response := models.MultiResultResponse{
		Results:       make(map[int]models.ResultsResponse, len(mr.TestIds)),
		LastCheckedID: lastID,
	}
	for _, idTest := range mr.TestIds {
		if err := s.testService.UpdateLastDownloadedTime(ctx, idTest, now); err != nil &&
			!errors.Is(err, services.ErrNotFound) {
			return mapServiceError(c, err)
		}
		results, err := s.resultService.GetResultsInIDRange(ctx, idTest, sinceID, lastID)
		if err != nil {
			return mapServiceError(c, err)
		}
		bundle := models.ResultsResponse{Results: make([]models.ResultResponse, 0, len(results))}
		for _, r := range results {
			bundle.Results = append(bundle.Results, models.NewResultResponse(r))
		}
		response.Results[idTest] = bundle
	}
	return c.JSON(http.StatusOK, response)
}
