package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
)

func fixture() []domain.Resource {
	return []domain.Resource{
		{ID: "1", Name: "Quadra", Category: "Quadra Coberta", SportType: "Coletivo", ResourceType: "Quadra"},
		{ID: "2", Name: "Academia", Category: "Treino", SportType: "Individual", ResourceType: "Treino"},
		{ID: "3", Name: "Piscina", Category: "Área Aquática", SportType: "Individual", ResourceType: "Piscina"},
	}
}

func names(resources []domain.Resource) []string {
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = r.Name
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		c, err := New(fixture())
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())

		r, ok := c.Get("3")
		require.True(t, ok)
		assert.Equal(t, "Piscina", r.Name)

		_, ok = c.Get("42")
		assert.False(t, ok)
	})

	t.Run("duplicate id", func(t *testing.T) {
		resources := append(fixture(), domain.Resource{ID: "1", Name: "Outra"})
		_, err := New(resources)
		assert.ErrorIs(t, err, ErrDuplicateResource)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := New([]domain.Resource{{ID: "9"}})
		assert.ErrorIs(t, err, ErrInvalidResource)
	})
}

func TestCatalog_Filter(t *testing.T) {
	c, err := New(fixture())
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "empty filter", filter: Filter{}, want: []string{"Quadra", "Academia", "Piscina"}},
		{name: "case insensitive search", filter: Filter{Search: "pisc"}, want: []string{"Piscina"}},
		{name: "upper case search", filter: Filter{Search: "QUA"}, want: []string{"Quadra"}},
		{name: "substring in the middle", filter: Filter{Search: "dem"}, want: []string{"Academia"}},
		{name: "no match", filter: Filter{Search: "tenis"}, want: []string{}},
		{name: "all types keyword", filter: Filter{ResourceType: "Todos"}, want: []string{"Quadra", "Academia", "Piscina"}},
		{name: "by type", filter: Filter{ResourceType: "Treino"}, want: []string{"Academia"}},
		{name: "search and type", filter: Filter{Search: "a", ResourceType: "Piscina"}, want: []string{"Piscina"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(c.Filter(tt.filter)))
		})
	}

	assert.Equal(t, 3, c.Len(), "filtering must not change the catalog")
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c, err := New(fixture())
	require.NoError(t, err)

	all := c.All()
	all[0].Name = "Changed"

	r, _ := c.Get("1")
	assert.Equal(t, "Quadra", r.Name)
}

func TestCatalog_ResourceTypes(t *testing.T) {
	c, err := New(append(fixture(), domain.Resource{ID: "4", Name: "Quadra 2", ResourceType: "Quadra"}))
	require.NoError(t, err)

	assert.Equal(t, []string{"Quadra", "Treino", "Piscina"}, c.ResourceTypes())
}
