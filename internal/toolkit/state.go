package toolkit

import (
	"encoding/json"
	"os"

	"NovaQuant/internal/model"
)

// Load reads the planning snapshot from a JSON file. A missing file yields
// the defaults; a corrupt one falls back to the defaults rather than failing,
// since the snapshot is client-owned and recoverable.
func Load(path string) (model.GrowthToolkitData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}

	// Decode over the defaults so absent fields keep their default values and
	// only present fields are re-clamped.
	out := Default()
	if err := json.Unmarshal(data, &out); err != nil {
		return Default(), nil
	}
	return Normalize(out), nil
}

// Save normalizes and writes the snapshot to a JSON file.
func Save(path string, data model.GrowthToolkitData) error {
	buf, err := json.MarshalIndent(Normalize(data), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
