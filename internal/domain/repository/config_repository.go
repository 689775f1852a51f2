package repository

import (
	"github.com/diillson/aws-cost-report/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	Load(filePath string) (*types.Config, error)
}
