package models

import (
	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/pkg/database"
)

// TimeResponse returns the agent's clock
type TimeResponse struct {
	Time float64 `json:"time"`
}

// TokenResponse returns a freshly minted session token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// OrchestratorResponse is the wire form of a known orchestrator
type OrchestratorResponse struct {
	IDOrchestrator int     `json:"id_orchestrator"`
	Name           string  `json:"name"`
	LastSeen       float64 `json:"last_seen"`
}

// NewOrchestratorResponse converts an Ent orchestrator to its wire form
func NewOrchestratorResponse(o *ent.Orchestrator) OrchestratorResponse {
	return OrchestratorResponse{
		IDOrchestrator: o.ID,
		Name:           o.Name,
		LastSeen:       UnixSeconds(o.LastSeen),
	}
}

// OrchestratorsResponse lists every orchestrator that ever connected
type OrchestratorsResponse struct {
	Orchestrators []OrchestratorResponse `json:"orchestrators"`
}

// StatusResponse reports whether the agent can reach its database
type StatusResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database"`
}

// ConfigResponse carries config options grouped by section
type ConfigResponse struct {
	Options map[string]map[string]string `json:"options"`
}

// ConfigChangesRequest carries the options to write, grouped by section
type ConfigChangesRequest struct {
	Options map[string]map[string]string `json:"options"`
}

// ConfigChangesResponse reports per option whether it was added or updated
type ConfigChangesResponse struct {
	Options map[string]map[string]string `json:"options"`
}

// LogsResponse is one page of log or accounting data
type LogsResponse struct {
	Data           string  `json:"data"`
	CompressionAlg string  `json:"compression_alg,omitempty"`
	LastDatetime   *string `json:"last_datetime"`
	MoreData       bool    `json:"more_data"`
}

// LogsStatsResponse counts recent log lines by severity
type LogsStatsResponse struct {
	Debug    int `json:"debug"`
	Info     int `json:"info"`
	Warning  int `json:"warning"`
	Error    int `json:"error"`
	Critical int `json:"critical"`
	Unknown  int `json:"unknown"`
}
