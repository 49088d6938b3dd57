package get_week_grid

// PlaceholderResponse ответ для еще не реализованного вида
type PlaceholderResponse struct {
	View    string `json:"view"`
	Message string `json:"message"`
}
