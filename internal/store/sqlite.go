// Package store persists plants and the app's JSON key-value state in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the JSON blob stored under key, or nil when the key has never
// been written. Implements the tips.Storage collaborator.
func (s *Store) Get(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores a JSON blob under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// InsertPlant stores a new plant, assigning an id when the caller left it
// empty. Returns the plant with its id populated.
func (s *Store) InsertPlant(p models.Plant) (models.Plant, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`
		INSERT INTO plants (id, name, icon, type_id, watering_interval_days, sun_hours_required,
			sun_days, outdoor_days, last_watered, sun_done, outdoor_done, created_at,
			min_tolerable_temp, max_tolerable_temp, humidity_preference, database_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Icon, p.TypeID, p.WateringIntervalDays, p.SunHoursRequired,
		encodeWeekdays(p.SunDays), encodeWeekdays(p.OutdoorDays),
		encodeDate(p.LastWatered), encodeDate(p.SunDone), encodeDate(p.OutdoorDone), encodeDate(p.CreatedAt),
		p.MinTolerableTemp, p.MaxTolerableTemp, nullString(string(p.HumidityPreference)), nullString(p.DatabaseID))
	if err != nil {
		return models.Plant{}, fmt.Errorf("insert plant %s: %w", p.Name, err)
	}
	return p, nil
}

// UpdatePlant rewrites every mutable field of an existing plant.
func (s *Store) UpdatePlant(p models.Plant) error {
	res, err := s.db.Exec(`
		UPDATE plants SET name = ?, icon = ?, type_id = ?, watering_interval_days = ?,
			sun_hours_required = ?, sun_days = ?, outdoor_days = ?, last_watered = ?,
			sun_done = ?, outdoor_done = ?, created_at = ?, min_tolerable_temp = ?,
			max_tolerable_temp = ?, humidity_preference = ?, database_id = ?
		WHERE id = ?
	`, p.Name, p.Icon, p.TypeID, p.WateringIntervalDays, p.SunHoursRequired,
		encodeWeekdays(p.SunDays), encodeWeekdays(p.OutdoorDays),
		encodeDate(p.LastWatered), encodeDate(p.SunDone), encodeDate(p.OutdoorDone), encodeDate(p.CreatedAt),
		p.MinTolerableTemp, p.MaxTolerableTemp, nullString(string(p.HumidityPreference)), nullString(p.DatabaseID),
		p.ID)
	if err != nil {
		return fmt.Errorf("update plant %s: %w", p.ID, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("update plant %s: not found", p.ID)
	}
	return nil
}

func (s *Store) DeletePlant(id string) error {
	_, err := s.db.Exec(`DELETE FROM plants WHERE id = ?`, id)
	return err
}

const plantColumns = `id, name, icon, type_id, watering_interval_days, sun_hours_required,
	sun_days, outdoor_days, last_watered, sun_done, outdoor_done, created_at,
	min_tolerable_temp, max_tolerable_temp, humidity_preference, database_id`

// ListPlants returns every plant, ordered by name.
func (s *Store) ListPlants() ([]models.Plant, error) {
	rows, err := s.db.Query(`SELECT ` + plantColumns + ` FROM plants ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plants []models.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	return plants, rows.Err()
}

// GetPlant returns the plant with the given id, or nil.
func (s *Store) GetPlant(id string) (*models.Plant, error) {
	row := s.db.QueryRow(`SELECT `+plantColumns+` FROM plants WHERE id = ?`, id)
	p, err := scanPlant(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkWatered records a watering on the given date.
func (s *Store) MarkWatered(id string, date models.CalendarDate) error {
	_, err := s.db.Exec(`UPDATE plants SET last_watered = ? WHERE id = ?`, date.String(), id)
	return err
}

// MarkSunDone records completion of the sun task on the given date.
func (s *Store) MarkSunDone(id string, date models.CalendarDate) error {
	_, err := s.db.Exec(`UPDATE plants SET sun_done = ? WHERE id = ?`, date.String(), id)
	return err
}

// MarkOutdoorDone records completion of the outdoor task on the given date.
func (s *Store) MarkOutdoorDone(id string, date models.CalendarDate) error {
	_, err := s.db.Exec(`UPDATE plants SET outdoor_done = ? WHERE id = ?`, date.String(), id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlant(row rowScanner) (models.Plant, error) {
	var p models.Plant
	var sunDays, outdoorDays, lastWatered, sunDone, outdoorDone, createdAt, humidity, databaseID sql.NullString
	var minTemp, maxTemp sql.NullFloat64

	err := row.Scan(&p.ID, &p.Name, &p.Icon, &p.TypeID, &p.WateringIntervalDays, &p.SunHoursRequired,
		&sunDays, &outdoorDays, &lastWatered, &sunDone, &outdoorDone, &createdAt,
		&minTemp, &maxTemp, &humidity, &databaseID)
	if err != nil {
		return models.Plant{}, err
	}

	p.SunDays = decodeWeekdays(sunDays.String)
	p.OutdoorDays = decodeWeekdays(outdoorDays.String)
	if p.LastWatered, err = decodeDate(lastWatered); err != nil {
		return models.Plant{}, err
	}
	if p.SunDone, err = decodeDate(sunDone); err != nil {
		return models.Plant{}, err
	}
	if p.OutdoorDone, err = decodeDate(outdoorDone); err != nil {
		return models.Plant{}, err
	}
	if p.CreatedAt, err = decodeDate(createdAt); err != nil {
		return models.Plant{}, err
	}
	if minTemp.Valid {
		p.MinTolerableTemp = &minTemp.Float64
	}
	if maxTemp.Valid {
		p.MaxTolerableTemp = &maxTemp.Float64
	}
	p.HumidityPreference = models.HumidityLevel(humidity.String)
	p.DatabaseID = databaseID.String
	return p, nil
}

func encodeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(s string) []time.Weekday {
	if s == "" {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}

func encodeDate(d *models.CalendarDate) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func decodeDate(s sql.NullString) (*models.CalendarDate, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
