package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedData []byte

func seedCatalog() ([]Recipe, error) {
	var recipes []Recipe
	if err := json.Unmarshal(seedData, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return recipes, nil
}
