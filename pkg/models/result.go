package models

import (
	"github.com/inventor-project/symon/ent"
)

// ResultResponse is the wire form of a finished run
type ResultResponse struct {
	IDResult        int      `json:"id_result"`
	IDTest          int      `json:"id_test"`
	Version         int      `json:"version"`
	Planned         float64  `json:"planned"`
	Started         *float64 `json:"started"`
	Finished        float64  `json:"finished"`
	Status          string   `json:"status"`
	RecoveryAttempt int      `json:"recovery_attempt"`
	Data            string   `json:"data,omitempty"`
}

// NewResultResponse converts an Ent result to its wire form
func NewResultResponse(r *ent.Result) ResultResponse {
	return ResultResponse{
		IDResult:        r.ID,
		IDTest:          r.IDTest,
		Version:         r.Version,
		Planned:         UnixSeconds(r.Planned),
		Started:         UnixSecondsPtr(r.Started),
		Finished:        UnixSeconds(r.Finished),
		Status:          string(r.Status),
		RecoveryAttempt: r.RecoveryAttempt,
		Data:            r.Data,
	}
}

// ResultsResponse contains the results of one test
type ResultsResponse struct {
	Results []ResultResponse `json:"results"`
}

// OldParamsResponse is the wire form of a historical params snapshot
type OldParamsResponse struct {
	IDOldParams int     `json:"id_old_params"`
	IDTest      int     `json:"id_test"`
	Version     int     `json:"version"`
	TestParams  string  `json:"test_params"`
	Changed     float64 `json:"changed"`
}

// NewOldParamsResponse converts an Ent old-params record to its wire form
func NewOldParamsResponse(p *ent.OldParam) OldParamsResponse {
	return OldParamsResponse{
		IDOldParams: p.ID,
		IDTest:      p.IDTest,
		Version:     p.Version,
		TestParams:  p.TestParams,
		Changed:     UnixSeconds(p.Changed),
	}
}

// OldParamsListResponse contains params snapshots of one test
type OldParamsListResponse struct {
	OldParams []OldParamsResponse `json:"old_params"`
}
