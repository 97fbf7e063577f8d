package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCategories is the starter category set for new installs.
var DefaultCategories = []string{
	"Cofee-Break",
	"Descartáveis",
	"Higiene",
	"Instrumental",
	"Medicação",
	"Limpeza",
	"Escritório",
}

// Categories returns the category list, read from the configured YAML file
// when one is set, otherwise the starter set.
func (c *Config) Categories() ([]string, error) {
	if c.CategoriesFile == "" {
		return DefaultCategories, nil
	}

	data, err := os.ReadFile(c.CategoriesFile)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var parsed struct {
		Categories []string `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing categories file: %w", err)
	}
	if len(parsed.Categories) == 0 {
		return DefaultCategories, nil
	}
	return parsed.Categories, nil
}
