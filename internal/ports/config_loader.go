package ports

import "github.com/anujrohit1/pubfilter/internal/domain"

// ConfigLoader reads ambient settings from a file.
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
