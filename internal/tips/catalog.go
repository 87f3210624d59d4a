package tips

import (
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/season"
)

// Predicate helpers shared across catalog entries.

func always(Context) bool { return true }

func inSeason(s season.Season) func(Context) bool {
	return func(c Context) bool { return c.Season == s }
}

func hasPlants(c Context) bool { return len(c.Plants) > 0 }

func currentTempAbove(deg float64) func(Context) bool {
	return func(c Context) bool {
		return c.HasWeather() && c.Weather.Current.Temp > deg
	}
}

func currentTempBelow(deg float64) func(Context) bool {
	return func(c Context) bool {
		return c.HasWeather() && c.Weather.Current.Temp < deg
	}
}

func forecastMinBelow(deg float64) func(Context) bool {
	return func(c Context) bool {
		if !c.HasWeather() {
			return false
		}
		today := c.Weather.Today()
		return today != nil && today.TempMin < deg
	}
}

func uvAtLeast(idx float64) func(Context) bool {
	return func(c Context) bool {
		uv, ok := c.UVIndex()
		return ok && uv >= idx
	}
}

func humidityBelow(pct int) func(Context) bool {
	return func(c Context) bool {
		return c.HasWeather() && c.Weather.Current.Humidity < pct
	}
}

func humidityAbove(pct int) func(Context) bool {
	return func(c Context) bool {
		return c.HasWeather() && c.Weather.Current.Humidity > pct
	}
}

func windAbove(speed float64) func(Context) bool {
	return func(c Context) bool {
		return c.HasWeather() && c.Weather.Current.WindSpeed > speed
	}
}

func rainToday(c Context) bool {
	if !c.HasWeather() {
		return false
	}
	today := c.Weather.Today()
	return today != nil && today.Precipitation > 1
}

func anyPlantOfType(typeID string) func(Context) bool {
	return func(c Context) bool {
		return c.AnyPlant(func(p models.Plant) bool { return p.TypeID == typeID })
	}
}

func anyPlantNeedsWater(c Context) bool {
	// Relies on the caller building Plants fresh; rules see the same "today"
	// the scorer does via date fields already on the plant.
	return c.AnyPlant(func(p models.Plant) bool { return p.LastWatered == nil })
}

// Catalog returns the full ordered rule set. Order matters: it is the
// deterministic substrate under the cumulative-weight draw and the stable-sort
// tie-break for top-N selection.
func Catalog() []Rule {
	return catalog
}

var catalog = []Rule{
	// Seasonal
	{ID: "spring_growth", Category: CategorySeasonal, Icon: "🌱", Title: "Spring growth", Message: "Spring is the growing season. Most plants want more water and light now than they did in winter.", Priority: 6, Applies: inSeason(season.Spring)},
	{ID: "spring_repot", Category: CategorySeasonal, Icon: "🪴", Title: "Time to repot", Message: "Early spring is the best moment to repot root-bound plants, right before the growth spurt.", Priority: 5, Applies: inSeason(season.Spring)},
	{ID: "summer_watering", Category: CategorySeasonal, Icon: "💧", Title: "Summer thirst", Message: "Heat speeds up evaporation. Check soil moisture more often than your usual schedule suggests.", Priority: 7, Applies: inSeason(season.Summer)},
	{ID: "summer_midday_sun", Category: CategorySeasonal, Icon: "☀️", Title: "Avoid midday sun", Message: "In summer, move sensitive plants out of direct midday sun. Morning light is gentler.", Priority: 6, Applies: inSeason(season.Summer)},
	{ID: "fall_slowdown", Category: CategorySeasonal, Icon: "🍂", Title: "Growth slows down", Message: "Plants slow down in fall. Ease off watering and hold the fertilizer until spring.", Priority: 6, Applies: inSeason(season.Fall)},
	{ID: "fall_light", Category: CategorySeasonal, Icon: "🪟", Title: "Chase the light", Message: "Days are getting shorter. Move plants closer to windows to compensate for the fading light.", Priority: 5, Applies: inSeason(season.Fall)},
	{ID: "winter_rest", Category: CategorySeasonal, Icon: "❄️", Title: "Winter rest", Message: "Most plants are dormant in winter. Water sparingly; soggy cold soil rots roots fast.", Priority: 7, Applies: inSeason(season.Winter)},
	{ID: "winter_drafts", Category: CategorySeasonal, Icon: "🌬️", Title: "Mind the drafts", Message: "Keep plants away from cold windowsills and heater blasts; both stress them in winter.", Priority: 6, Applies: inSeason(season.Winter)},

	// Weather
	{ID: "heat_wave", Category: CategoryWeather, Icon: "🥵", Title: "It's hot out there", Message: "Above 32° even hardy plants suffer. Water early in the morning and provide afternoon shade.", Priority: 9, Applies: currentTempAbove(32)},
	{ID: "frost_warning", Category: CategoryWeather, Icon: "🧊", Title: "Frost risk tonight", Message: "Temperatures near freezing can kill tender plants overnight. Bring outdoor pots inside.", Priority: 10, Applies: forecastMinBelow(2)},
	{ID: "cold_snap", Category: CategoryWeather, Icon: "🥶", Title: "Cold snap", Message: "It's cold for your plants right now. Hold off on watering until it warms up a little.", Priority: 8, Applies: currentTempBelow(5)},
	{ID: "high_uv", Category: CategoryWeather, Icon: "🕶️", Title: "Strong UV today", Message: "UV is high today. Shade-loving plants can scorch in under an hour of direct sun.", Priority: 8, Applies: uvAtLeast(8)},
	{ID: "dry_air", Category: CategoryWeather, Icon: "🏜️", Title: "Dry air", Message: "Humidity is low. Tropical plants appreciate misting or a pebble tray right now.", Priority: 6, Applies: humidityBelow(30)},
	{ID: "humid_air", Category: CategoryWeather, Icon: "💦", Title: "Very humid", Message: "High humidity slows soil drying. Skip a watering rather than risk fungus gnats.", Priority: 5, Applies: humidityAbove(85)},
	{ID: "windy_day", Category: CategoryWeather, Icon: "💨", Title: "Windy day", Message: "Strong wind dries and batters plants on balconies. Move light pots against a wall.", Priority: 6, Applies: windAbove(30)},
	{ID: "rain_skip_watering", Category: CategoryWeather, Icon: "🌧️", Title: "Let the rain do it", Message: "Rain is forecast today. Outdoor plants probably don't need your watering can.", Priority: 7, Applies: rainToday},

	// Care
	{ID: "check_soil_first", Category: CategoryCare, Icon: "👆", Title: "Finger test", Message: "Before watering, push a finger two knuckles into the soil. Still moist? Wait a day.", Priority: 5, Applies: hasPlants},
	{ID: "water_new_plants", Category: CategoryCare, Icon: "🚿", Title: "New arrivals", Message: "One of your plants hasn't been watered yet. A first drink helps it settle in.", Priority: 8, Applies: anyPlantNeedsWater},
	{ID: "rotate_pots", Category: CategoryCare, Icon: "🔄", Title: "Rotate your pots", Message: "Give each pot a quarter turn weekly so plants grow straight instead of leaning into the light.", Priority: 4, Applies: hasPlants},
	{ID: "dust_leaves", Category: CategoryCare, Icon: "🧽", Title: "Dust the leaves", Message: "Dusty leaves photosynthesize poorly. Wipe broad leaves with a damp cloth now and then.", Priority: 3, Applies: hasPlants},
	{ID: "drainage_check", Category: CategoryCare, Icon: "🕳️", Title: "Check drainage", Message: "Water pooling in the saucer for hours means root rot ahead. Empty saucers after watering.", Priority: 5, Applies: hasPlants},
	{ID: "prune_dead_growth", Category: CategoryCare, Icon: "✂️", Title: "Prune dead growth", Message: "Snip yellow or dead leaves at the base. The plant redirects energy to healthy growth.", Priority: 4, Applies: hasPlants},
	{ID: "water_temperature", Category: CategoryCare, Icon: "🌡️", Title: "Room-temperature water", Message: "Cold tap water shocks roots. Let the watering can sit a while before using it.", Priority: 3, Applies: hasPlants},
	{ID: "group_humidity", Category: CategoryCare, Icon: "👥", Title: "Group your plants", Message: "Plants clustered together create a little humid microclimate and dry out slower.", Priority: 3, Applies: func(c Context) bool { return len(c.Plants) >= 3 },
	},

	// General (plant-count independent)
	{ID: "observe_weekly", Category: CategoryGeneral, Icon: "🔍", Title: "A minute of looking", Message: "The best care tool is observation. A weekly minute per plant catches most problems early.", Priority: 4, Applies: always},
	{ID: "less_is_more", Category: CategoryGeneral, Icon: "⚖️", Title: "Less is more", Message: "More houseplants die from overwatering than underwatering. When unsure, wait.", Priority: 5, Applies: always},
	{ID: "morning_routine", Category: CategoryGeneral, Icon: "☕", Title: "Morning routine", Message: "Morning is the best time for plant care: you catch overnight changes and water before the heat.", Priority: 3, Applies: always},
	{ID: "learn_your_light", Category: CategoryGeneral, Icon: "🧭", Title: "Know your windows", Message: "North, east, south or west: each window is a different habitat. Match plants to the exposure they get.", Priority: 4, Applies: always},

	// Plant-type
	{ID: "succulent_soak_dry", Category: CategoryPlantType, Icon: "🌵", Title: "Soak and dry", Message: "Succulents want the soak-and-dry method: drench, then let the soil go completely dry.", Priority: 5, Applies: anyPlantOfType("succulent")},
	{ID: "cactus_winter_drought", Category: CategoryPlantType, Icon: "🌵", Title: "Cactus winter drought", Message: "Cacti can go a month or more without water in winter. They prefer it that way.", Priority: 5, Applies: func(c Context) bool { return anyPlantOfType("cactus")(c) && c.Season == season.Winter }},
	{ID: "fern_moisture", Category: CategoryPlantType, Icon: "🌿", Title: "Keep ferns damp", Message: "Ferns never want to dry out fully. Aim for evenly moist soil, like a wrung-out sponge.", Priority: 5, Applies: anyPlantOfType("fern")},
	{ID: "orchid_ice_myth", Category: CategoryPlantType, Icon: "🌺", Title: "Skip the ice cubes", Message: "Despite the trend, orchids dislike ice. Soak the bark in tepid water, then drain fully.", Priority: 4, Applies: anyPlantOfType("orchid")},
	{ID: "herb_harvest", Category: CategoryPlantType, Icon: "🌱", Title: "Harvest your herbs", Message: "Pinch herbs regularly, even when you don't need them. Unpinched herbs go leggy and bitter.", Priority: 5, Applies: anyPlantOfType("herb")},
	{ID: "bonsai_daily_check", Category: CategoryPlantType, Icon: "🎋", Title: "Bonsai dry out fast", Message: "Shallow bonsai pots can dry in a single hot day. Check the surface soil daily.", Priority: 6, Applies: anyPlantOfType("bonsai")},
	{ID: "tropical_humidity", Category: CategoryPlantType, Icon: "🌴", Title: "Tropicals love steam", Message: "Tropical plants thrive in bathrooms and kitchens where humidity runs higher.", Priority: 4, Applies: anyPlantOfType("tropical")},

	// Pest
	{ID: "pest_inspect_undersides", Category: CategoryPest, Icon: "🐛", Title: "Check leaf undersides", Message: "Spider mites and aphids hide under leaves. Flip a few leaves during your weekly check.", Priority: 4, Applies: hasPlants},
	{ID: "pest_sticky_leaves", Category: CategoryPest, Icon: "🍯", Title: "Sticky leaves?", Message: "Sticky residue on leaves or nearby surfaces usually means sap-sucking insects. Act early.", Priority: 4, Applies: hasPlants},
	{ID: "pest_quarantine", Category: CategoryPest, Icon: "🚧", Title: "Quarantine newcomers", Message: "Keep new plants separate for two weeks. Most infestations arrive on new purchases.", Priority: 5, Applies: hasPlants},
	{ID: "pest_gnats_dry", Category: CategoryPest, Icon: "🦟", Title: "Fungus gnats hate dry soil", Message: "Letting the top few centimeters of soil dry out breaks the fungus gnat breeding cycle.", Priority: 4, Applies: humidityAbove(70)},

	// Fertilizer
	{ID: "fertilize_growing_season", Category: CategoryFertilizer, Icon: "🧪", Title: "Feed while growing", Message: "Fertilize during spring and summer growth, every two to four weeks at half strength.", Priority: 5, Applies: func(c Context) bool {
		return hasPlants(c) && (c.Season == season.Spring || c.Season == season.Summer)
	}},
	{ID: "no_winter_feeding", Category: CategoryFertilizer, Icon: "🚫", Title: "No winter feeding", Message: "Dormant plants can't use fertilizer; it just burns roots. Pause feeding until spring.", Priority: 5, Applies: func(c Context) bool {
		return hasPlants(c) && c.Season == season.Winter
	}},
	{ID: "dilute_fertilizer", Category: CategoryFertilizer, Icon: "💧", Title: "Dilute, dilute", Message: "When in doubt, halve the fertilizer dose on the label. Underfeeding is easy to fix; burn isn't.", Priority: 3, Applies: hasPlants},
}
