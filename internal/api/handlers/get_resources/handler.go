package get_resources

import (
	"net/http"

	"github.com/m04kA/SMC-SpaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SpaceBooking/internal/catalog"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources
// Query params: search (optional), type (optional, "Todos" = все)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := catalog.Filter{
		Search:       query.Get("search"),
		ResourceType: query.Get("type"),
	}

	resources := h.catalog.Filter(filter)

	h.logger.Info("GET /resources - Resources listed: search=%q, type=%q, count=%d",
		filter.Search, filter.ResourceType, len(resources))
	handlers.RespondJSON(w, http.StatusOK, &ResourcesResponse{
		Resources: handlers.FromResources(resources),
		Types:     h.catalog.ResourceTypes(),
	})
}
