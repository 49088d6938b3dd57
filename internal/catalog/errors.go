package catalog

import "errors"

var (
	// ErrInvalidResource возвращается, когда у ресурса нет ID или названия
	ErrInvalidResource = errors.New("catalog: invalid resource")

	// ErrDuplicateResource возвращается, когда ID ресурса повторяется
	ErrDuplicateResource = errors.New("catalog: duplicate resource id")
)
