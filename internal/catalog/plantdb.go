package catalog

import (
	"strings"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

var plantDatabase = []models.PlantDatabaseEntry{
	{ID: "monstera", Name: "Monstera", ScientificName: "Monstera deliciosa", Icon: "🌿", WateringDays: 7, SunHours: 4, TempMin: 15, TempMax: 30, Humidity: models.HumidityHigh},
	{ID: "pothos", Name: "Pothos", ScientificName: "Epipremnum aureum", Icon: "🍃", WateringDays: 7, SunHours: 3, TempMin: 13, TempMax: 30, Humidity: models.HumidityMedium},
	{ID: "snake_plant", Name: "Snake Plant", ScientificName: "Dracaena trifasciata", Icon: "🌱", WateringDays: 14, SunHours: 3, TempMin: 10, TempMax: 32, Humidity: models.HumidityLow},
	{ID: "aloe", Name: "Aloe Vera", ScientificName: "Aloe barbadensis", Icon: "🌵", WateringDays: 14, SunHours: 6, TempMin: 10, TempMax: 35, Humidity: models.HumidityLow},
	{ID: "peace_lily", Name: "Peace Lily", ScientificName: "Spathiphyllum wallisii", Icon: "🌸", WateringDays: 4, SunHours: 2, TempMin: 16, TempMax: 29, Humidity: models.HumidityHigh},
	{ID: "spider_plant", Name: "Spider Plant", ScientificName: "Chlorophytum comosum", Icon: "🌿", WateringDays: 5, SunHours: 3, TempMin: 10, TempMax: 27, Humidity: models.HumidityMedium},
	{ID: "fiddle_leaf", Name: "Fiddle Leaf Fig", ScientificName: "Ficus lyrata", Icon: "🌳", WateringDays: 7, SunHours: 5, TempMin: 15, TempMax: 29, Humidity: models.HumidityMedium},
	{ID: "rubber_plant", Name: "Rubber Plant", ScientificName: "Ficus elastica", Icon: "🌳", WateringDays: 7, SunHours: 4, TempMin: 13, TempMax: 29, Humidity: models.HumidityMedium},
	{ID: "boston_fern", Name: "Boston Fern", ScientificName: "Nephrolepis exaltata", Icon: "🌿", WateringDays: 3, SunHours: 2, TempMin: 13, TempMax: 26, Humidity: models.HumidityHigh},
	{ID: "basil", Name: "Basil", ScientificName: "Ocimum basilicum", Icon: "🌱", WateringDays: 2, SunHours: 6, TempMin: 12, TempMax: 32, Humidity: models.HumidityMedium},
	{ID: "rosemary", Name: "Rosemary", ScientificName: "Salvia rosmarinus", Icon: "🌱", WateringDays: 7, SunHours: 7, TempMin: 5, TempMax: 32, Humidity: models.HumidityLow},
	{ID: "mint", Name: "Mint", ScientificName: "Mentha spicata", Icon: "🌱", WateringDays: 2, SunHours: 4, TempMin: 8, TempMax: 29, Humidity: models.HumidityMedium},
	{ID: "lavender", Name: "Lavender", ScientificName: "Lavandula angustifolia", Icon: "💜", WateringDays: 10, SunHours: 8, TempMin: 5, TempMax: 32, Humidity: models.HumidityLow},
	{ID: "orchid_phal", Name: "Orchid", ScientificName: "Phalaenopsis amabilis", Icon: "🌺", WateringDays: 7, SunHours: 3, TempMin: 16, TempMax: 28, Humidity: models.HumidityHigh},
	{ID: "cactus_barrel", Name: "Barrel Cactus", ScientificName: "Echinocactus grusonii", Icon: "🌵", WateringDays: 21, SunHours: 8, TempMin: 8, TempMax: 38, Humidity: models.HumidityLow},
	{ID: "jade", Name: "Jade Plant", ScientificName: "Crassula ovata", Icon: "🌵", WateringDays: 14, SunHours: 5, TempMin: 10, TempMax: 30, Humidity: models.HumidityLow},
	{ID: "calathea", Name: "Calathea", ScientificName: "Calathea orbifolia", Icon: "🌿", WateringDays: 4, SunHours: 2, TempMin: 16, TempMax: 27, Humidity: models.HumidityHigh},
	{ID: "zz_plant", Name: "ZZ Plant", ScientificName: "Zamioculcas zamiifolia", Icon: "🌱", WateringDays: 14, SunHours: 3, TempMin: 13, TempMax: 30, Humidity: models.HumidityLow},
	{ID: "geranium", Name: "Geranium", ScientificName: "Pelargonium hortorum", Icon: "🌸", WateringDays: 5, SunHours: 6, TempMin: 10, TempMax: 30, Humidity: models.HumidityMedium},
	{ID: "bamboo_palm", Name: "Bamboo Palm", ScientificName: "Chamaedorea seifrizii", Icon: "🌴", WateringDays: 5, SunHours: 3, TempMin: 15, TempMax: 29, Humidity: models.HumidityHigh},
}

// PlantDatabase returns the full static species table in catalog order.
func PlantDatabase() []models.PlantDatabaseEntry {
	return plantDatabase
}

// DatabaseEntryByID returns the species entry with the given id, or nil.
func DatabaseEntryByID(id string) *models.PlantDatabaseEntry {
	for i := range plantDatabase {
		if plantDatabase[i].ID == id {
			return &plantDatabase[i]
		}
	}
	return nil
}

// MatchDatabaseEntry finds the species entry for a plant. Match order, first
// hit wins in catalog order:
//  1. exact id match on the plant's explicit DatabaseID
//  2. case-insensitive containment between the plant's name and an entry's
//     common or scientific name, in either direction
//  3. the plant's TypeID equal to an entry id
//
// Short names ("fern", "mint") can match several entries; ambiguity resolves
// by catalog position.
func MatchDatabaseEntry(plant models.Plant) *models.PlantDatabaseEntry {
	if plant.DatabaseID != "" {
		if e := DatabaseEntryByID(plant.DatabaseID); e != nil {
			return e
		}
	}

	name := strings.ToLower(strings.TrimSpace(plant.Name))
	if name != "" {
		for i := range plantDatabase {
			common := strings.ToLower(plantDatabase[i].Name)
			scientific := strings.ToLower(plantDatabase[i].ScientificName)
			if strings.Contains(common, name) || strings.Contains(name, common) ||
				strings.Contains(scientific, name) || strings.Contains(name, scientific) {
				return &plantDatabase[i]
			}
		}
	}

	if plant.TypeID != "" {
		if e := DatabaseEntryByID(plant.TypeID); e != nil {
			return e
		}
	}
	return nil
}
