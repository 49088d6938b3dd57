package get_resources

import (
	"github.com/m04kA/SMC-SpaceBooking/internal/catalog"
	"github.com/m04kA/SMC-SpaceBooking/internal/domain"
)

type Catalog interface {
	Filter(f catalog.Filter) []domain.Resource
	ResourceTypes() []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
