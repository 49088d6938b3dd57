package get_resources

import "github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"

// ResourcesResponse HTTP response model
type ResourcesResponse struct {
	Resources []handlers.ResourceResponse `json:"resources"`
	Types     []string                    `json:"types"`
}
