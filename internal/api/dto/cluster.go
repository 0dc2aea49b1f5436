package dto

// Stops are optional: when omitted the stored stop set is clustered.
type ClusterRequest struct {
	Stops    []LocationPayload `json:"stops"`
	Clusters int               `json:"clusters"`
}

type ClusterResponse struct {
	SeedStopID string   `json:"seed_stop_id"`
	StopIDs    []string `json:"stop_ids"`
}

type ListClustersResponse struct {
	Clusters []ClusterResponse `json:"clusters"`
}
