// Package catalog ships the default plant catalog used to seed an empty database.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"garden_backend/internal/feature/garden/domain/entity"
)

//go:embed plants.json
var defaultPlants []byte

// record is one plant as stored in a catalog file.
type record struct {
	NameCommon      string  `json:"name_common"`
	Variety         *string `json:"variety"`
	NameBotanical   *string `json:"name_botanical"`
	FamilyGroup     *string `json:"family_group"`
	Harvest         *string `json:"harvest"`
	Hints           *string `json:"hints"`
	WatchFor        *string `json:"watch_for"`
	ProvenVarieties *string `json:"proven_varieties"`
}

func (r record) toEntity() entity.Plant {
	p := entity.Plant{
		NameCommon:      r.NameCommon,
		NameBotanical:   r.NameBotanical,
		FamilyGroup:     r.FamilyGroup,
		Harvest:         r.Harvest,
		Hints:           r.Hints,
		WatchFor:        r.WatchFor,
		ProvenVarieties: r.ProvenVarieties,
	}
	if r.Variety != nil {
		p.Variety = *r.Variety
	}
	return p
}

// DefaultPlants returns the embedded catalog.
func DefaultPlants() ([]entity.Plant, error) {
	return decode(defaultPlants)
}

// LoadPlants reads a JSON array of plants from r.
func LoadPlants(r io.Reader) ([]entity.Plant, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return decode(data)
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) ([]entity.Plant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadPlants(f)
}

func decode(data []byte) ([]entity.Plant, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	plants := make([]entity.Plant, 0, len(records))
	for _, r := range records {
		plants = append(plants, r.toEntity())
	}
	return plants, nil
}
