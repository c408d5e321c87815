package models

import (
	"github.com/inventor-project/symon/ent"
)

// CreateTestRequest contains fields for creating a test
type CreateTestRequest struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	State                string   `json:"state"`
	TestParams           string   `json:"test_params"`
	Timeout              int      `json:"timeout"`
	SchedulingInterval   *int     `json:"scheduling_interval"`
	SchedulingFrom       *float64 `json:"scheduling_from"`
	SchedulingUntil      *float64 `json:"scheduling_until"`
	RecoveryInterval     *int     `json:"recovery_interval"`
	RecoveryAttemptLimit *int     `json:"recovery_attempt_limit"`
	KeyRO                string   `json:"key_ro"`
	KeyRW                string   `json:"key_rw"`
}

// UpdateTestRequest contains the mutable fields of a test
type UpdateTestRequest struct {
	Description          string   `json:"description"`
	State                string   `json:"state"`
	TestParams           string   `json:"test_params"`
	Timeout              int      `json:"timeout"`
	SchedulingInterval   *int     `json:"scheduling_interval"`
	SchedulingFrom       *float64 `json:"scheduling_from"`
	SchedulingUntil      *float64 `json:"scheduling_until"`
	RecoveryInterval     *int     `json:"recovery_interval"`
	RecoveryAttemptLimit *int     `json:"recovery_attempt_limit"`
}

// TestResponse is the wire form of a test
type TestResponse struct {
	IDTest               int      `json:"id_test"`
	Name                 string   `json:"name"`
	Version              int      `json:"version"`
	Description          string   `json:"description"`
	State                string   `json:"state"`
	TestParams           string   `json:"test_params"`
	Timeout              int      `json:"timeout"`
	SchedulingInterval   *int     `json:"scheduling_interval"`
	SchedulingFrom       *float64 `json:"scheduling_from"`
	SchedulingUntil      *float64 `json:"scheduling_until"`
	RecoveryInterval     *int     `json:"recovery_interval"`
	RecoveryAttemptLimit *int     `json:"recovery_attempt_limit"`
	KeyRO                string   `json:"key_ro"`
	KeyRW                string   `json:"key_rw"`
	Created              float64  `json:"created"`
	LastStartedTime      *float64 `json:"last_started_time"`
	LastResultTime       *float64 `json:"last_result_time"`
	LastResultStatus     string   `json:"last_result_status,omitempty"`
	LastDownloadedTime   *float64 `json:"last_downloaded_time"`
}

// NewTestResponse converts an Ent test to its wire form
func NewTestResponse(t *ent.Test) TestResponse {
	return TestResponse{
		IDTest:               t.ID,
		Name:                 t.Name,
		Version:              t.Version,
		Description:          t.Description,
		State:                string(t.State),
		TestParams:           t.TestParams,
		Timeout:              t.Timeout,
		SchedulingInterval:   t.SchedulingInterval,
		SchedulingFrom:       UnixSecondsPtr(t.SchedulingFrom),
		SchedulingUntil:      UnixSecondsPtr(t.SchedulingUntil),
		RecoveryInterval:     t.RecoveryInterval,
		RecoveryAttemptLimit: t.RecoveryAttemptLimit,
		KeyRO:                t.KeyRo,
		KeyRW:                t.KeyRw,
		Created:              UnixSeconds(t.Created),
		LastStartedTime:      UnixSecondsPtr(t.LastStartedTime),
		LastResultTime:       UnixSecondsPtr(t.LastResultTime),
		LastResultStatus:     string(t.LastResultStatus),
		LastDownloadedTime:   UnixSecondsPtr(t.LastDownloadedTime),
	}
}

// TestsResponse contains the list of all tests
type TestsResponse struct {
	Tests []TestResponse `json:"tests"`
}

// TestFullInfoResponse bundles a test with all its related records
type TestFullInfoResponse struct {
	Test      TestResponse        `json:"test"`
	Requests  []RequestResponse   `json:"requests"`
	Events    []EventResponse     `json:"events"`
	Runs      []RunResponse       `json:"runs"`
	OldParams []OldParamsResponse `json:"old_params"`
	Results   []ResultResponse    `json:"results"`
}
