package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/PlanterCut/internal/model"
)

// DefaultStockPath returns the default file path for the stock catalog.
// This is located at ~/.plantercut/stock.json.
func DefaultStockPath() string {
	return filepath.Join(DefaultConfigDir(), "stock.json")
}

// SaveStockCatalog writes the stock catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveStockCatalog(path string, cat model.StockCatalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadStockCatalog reads the stock catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadStockCatalog(path string) (model.StockCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultStockCatalog()
			if saveErr := SaveStockCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.StockCatalog{}, err
	}
	var cat model.StockCatalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.StockCatalog{}, err
	}
	if cat.Stocks == nil {
		cat.Stocks = []model.StockPreset{}
	}
	return cat, nil
}

// ImportStockCatalog reads a catalog file and merges it into existing.
// Imported presets replace existing ones of the same name; new names are
// appended in file order.
func ImportStockCatalog(path string, existing model.StockCatalog) (model.StockCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, fmt.Errorf("failed to read stock catalog: %w", err)
	}
	var imported model.StockCatalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, fmt.Errorf("failed to parse stock catalog: %w", err)
	}

	merged := model.StockCatalog{Stocks: append([]model.StockPreset{}, existing.Stocks...)}
	for _, s := range imported.Stocks {
		if s.Name == "" {
			continue
		}
		if found := merged.FindByName(s.Name); found != nil {
			*found = s
			continue
		}
		merged.Stocks = append(merged.Stocks, s)
	}
	return merged, nil
}
