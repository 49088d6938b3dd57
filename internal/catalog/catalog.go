package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
)

// Catalog неизменяемый список ресурсов, доступных для бронирования
type Catalog struct {
	resources []domain.Resource
	byID      map[string]int
}

// Filter параметры отображения списка ресурсов
type Filter struct {
	Search       string // Подстрока названия без учета регистра
	ResourceType string // "" или "Todos" = все типы
}

// New создает каталог из готового списка ресурсов
func New(resources []domain.Resource) (*Catalog, error) {
	c := &Catalog{
		resources: make([]domain.Resource, 0, len(resources)),
		byID:      make(map[string]int, len(resources)),
	}

	for _, r := range resources {
		if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("%w: id=%q name=%q", ErrInvalidResource, r.ID, r.Name)
		}
		if _, ok := c.byID[r.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateResource, r.ID)
		}
		c.byID[r.ID] = len(c.resources)
		c.resources = append(c.resources, r)
	}

	return c, nil
}

// All возвращает копию всех ресурсов в исходном порядке
func (c *Catalog) All() []domain.Resource {
	out := make([]domain.Resource, len(c.resources))
	copy(out, c.resources)
	return out
}

// Get ищет ресурс по ID
func (c *Catalog) Get(id string) (domain.Resource, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Resource{}, false
	}
	return c.resources[idx], true
}

// Filter возвращает подмножество ресурсов, каталог не меняется
func (c *Catalog) Filter(f Filter) []domain.Resource {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	allTypes := f.ResourceType == "" || f.ResourceType == domain.AllResourceTypesFilter

	out := make([]domain.Resource, 0, len(c.resources))
	for _, r := range c.resources {
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		if !allTypes && r.ResourceType != f.ResourceType {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ResourceTypes возвращает различные типы ресурсов в порядке появления
func (c *Catalog) ResourceTypes() []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, r := range c.resources {
		if r.ResourceType == "" {
			continue
		}
		if _, ok := seen[r.ResourceType]; ok {
			continue
		}
		seen[r.ResourceType] = struct{}{}
		types = append(types, r.ResourceType)
	}
	return types
}

func (c *Catalog) Len() int {
	return len(c.resources)
}
