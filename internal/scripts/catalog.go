package scripts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/telecue/internal/model"
)

// CatalogFile is the YAML layout for additional built-in scripts.
type CatalogFile struct {
	Scripts []model.Script `yaml:"scripts"`
}

// LoadCatalog reads extra built-in scripts from a YAML file. An empty path
// yields no scripts.
func LoadCatalog(path string) ([]model.Script, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	for i, sc := range file.Scripts {
		if sc.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i+1)
		}
		if sc.Content == "" {
			return nil, fmt.Errorf("catalog entry %q has no content", sc.ID)
		}
	}
	return file.Scripts, nil
}
