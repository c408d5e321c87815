package models

import (
	"github.com/inventor-project/symon/ent"
)

// RequestResponse is the wire form of a calendar request
type RequestResponse struct {
	IDRequest       int     `json:"id_request"`
	IDTest          int     `json:"id_test"`
	Reason          string  `json:"reason"`
	RecoveryAttempt int     `json:"recovery_attempt"`
	AddedTime       float64 `json:"added_time"`
}

// NewRequestResponse converts an Ent request to its wire form
func NewRequestResponse(r *ent.Request) RequestResponse {
	return RequestResponse{
		IDRequest:       r.ID,
		IDTest:          r.IDTest,
		Reason:          string(r.Reason),
		RecoveryAttempt: r.RecoveryAttempt,
		AddedTime:       UnixSeconds(r.AddedTime),
	}
}

// EventResponse is the wire form of a planned event
type EventResponse struct {
	IDEvent         int     `json:"id_event"`
	IDTest          int     `json:"id_test"`
	RunAt           float64 `json:"run_at"`
	Source          string  `json:"source"`
	RecoveryAttempt int     `json:"recovery_attempt"`
}

// NewEventResponse converts an Ent event to its wire form
func NewEventResponse(e *ent.Event) EventResponse {
	return EventResponse{
		IDEvent:         e.ID,
		IDTest:          e.IDTest,
		RunAt:           UnixSeconds(e.RunAt),
		Source:          string(e.Source),
		RecoveryAttempt: e.RecoveryAttempt,
	}
}

// EventsResponse contains the planned events of one test
type EventsResponse struct {
	Events []EventResponse `json:"events"`
}

// RunResponse is the wire form of a run
type RunResponse struct {
	IDRun           int      `json:"id_run"`
	IDTest          int      `json:"id_test"`
	Version         int      `json:"version"`
	State           string   `json:"state"`
	PID             *int     `json:"pid"`
	Planned         float64  `json:"planned"`
	Started         *float64 `json:"started"`
	Deadline        *float64 `json:"deadline"`
	RecoveryAttempt int      `json:"recovery_attempt"`
}

// NewRunResponse converts an Ent run to its wire form
func NewRunResponse(r *ent.Run) RunResponse {
	return RunResponse{
		IDRun:           r.ID,
		IDTest:          r.IDTest,
		Version:         r.Version,
		State:           string(r.State),
		PID:             r.Pid,
		Planned:         UnixSeconds(r.Planned),
		Started:         UnixSecondsPtr(r.Started),
		Deadline:        UnixSecondsPtr(r.Deadline),
		RecoveryAttempt: r.RecoveryAttempt,
	}
}
