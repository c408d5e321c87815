package models

// CreateMultiResultRequest contains fields for registering a multi-result view
type CreateMultiResultRequest struct {
	Key string `json:"key"`
}

// MultiResultIDResponse returns the id of a new multi-result view
type MultiResultIDResponse struct {
	IDMultiResult int `json:"id_multi_result"`
}

// AddTestToMultiResultRequest attaches one test to a multi-result view.
// Hash proves possession of the view key: SHA256(key || id_multi_result || id_test).
type AddTestToMultiResultRequest struct {
	IDTest int    `json:"id_test"`
	Hash   string `json:"hash"`
}

// MultiResultTestIDsResponse lists the tests attached to a view,
// comma-separated.
type MultiResultTestIDsResponse struct {
	TestIDs string `json:"test_ids"`
}

// MultiResultResponse carries fresh results per attached test
type MultiResultResponse struct {
	Results       map[int]ResultsResponse `json:"results"`
	LastCheckedID int                     `json:"last_checked_id"`
}
