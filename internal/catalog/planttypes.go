// Package catalog holds the static plant-type and plant-database tables.
// Both are immutable for the process lifetime; lookups never mutate.
package catalog

import (
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

var plantTypes = []models.PlantType{
	{ID: "succulent", Name: "Succulent", Icon: "🌵", DefaultWateringDays: 14, DefaultSunHours: 6, Tip: "Succulents store water in their leaves; when in doubt, skip the watering."},
	{ID: "cactus", Name: "Cactus", Icon: "🌵", DefaultWateringDays: 21, DefaultSunHours: 8, Tip: "Cacti want full sun and bone-dry soil between waterings."},
	{ID: "fern", Name: "Fern", Icon: "🌿", DefaultWateringDays: 3, DefaultSunHours: 2, Tip: "Ferns like moist soil and indirect light; mist them in dry rooms."},
	{ID: "flowering", Name: "Flowering plant", Icon: "🌸", DefaultWateringDays: 4, DefaultSunHours: 5, Tip: "Deadhead spent blooms to keep flowering plants producing."},
	{ID: "herb", Name: "Herb", Icon: "🌱", DefaultWateringDays: 3, DefaultSunHours: 6, Tip: "Harvest herbs often; regular trimming keeps them bushy."},
	{ID: "tropical", Name: "Tropical", Icon: "🌴", DefaultWateringDays: 5, DefaultSunHours: 4, Tip: "Tropicals hate cold drafts; keep them away from open winter windows."},
	{ID: "vine", Name: "Vine", Icon: "🍃", DefaultWateringDays: 6, DefaultSunHours: 4, Tip: "Give vines something to climb and rotate the pot for even growth."},
	{ID: "tree", Name: "Indoor tree", Icon: "🌳", DefaultWateringDays: 7, DefaultSunHours: 5, Tip: "Indoor trees dislike being moved; pick a bright spot and leave them."},
	{ID: "bonsai", Name: "Bonsai", Icon: "🎋", DefaultWateringDays: 2, DefaultSunHours: 5, Tip: "Bonsai pots dry out fast; check the soil surface daily."},
	{ID: "orchid", Name: "Orchid", Icon: "🌺", DefaultWateringDays: 7, DefaultSunHours: 3, Tip: "Water orchids by soaking, then let the bark dry out fully."},
}

// PlantTypes returns the full static type table in catalog order.
func PlantTypes() []models.PlantType {
	return plantTypes
}

// PlantTypeByID returns the type with the given id, or nil.
func PlantTypeByID(id string) *models.PlantType {
	for i := range plantTypes {
		if plantTypes[i].ID == id {
			return &plantTypes[i]
		}
	}
	return nil
}
