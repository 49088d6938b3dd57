package select_resource

// SelectResourceRequest HTTP request model
type SelectResourceRequest struct {
	ResourceID string `json:"resourceId"`
}
