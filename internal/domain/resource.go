package domain

// Resource bookable space from the catalog. Never mutated after start.
type Resource struct {
	ID           string
	Name         string
	Category     string
	SportType    string
	ResourceType string
}

// Snapshot copies the display fields kept in a reservation
func (r Resource) Snapshot() ResourceSnapshot {
	return ResourceSnapshot{
		ID:       r.ID,
		Name:     r.Name,
		Category: r.Category,
	}
}

// ResourceSnapshot resource fields denormalized into a reservation
type ResourceSnapshot struct {
	ID       string
	Name     string
	Category string
}
