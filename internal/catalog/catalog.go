package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/validation"
)

//go:embed data/*.yaml schemas/*.json
var embedded embed.FS

// Catalog holds the static species, equipment and event tables.
// It is read-only once loaded and safe for concurrent use.
type Catalog struct {
	fish      map[string]domain.FishSpecies
	fishIDs   []string
	plants    map[string]domain.PlantSpecies
	plantIDs  []string
	equipment map[string]domain.Equipment
	equipList []domain.Equipment
	events    []domain.EventDefinition
	eventByID map[string]int
}

type fishFile struct {
	Species []domain.FishSpecies `yaml:"species"`
}

type plantFile struct {
	Species []domain.PlantSpecies `yaml:"species"`
}

type equipmentFile struct {
	Equipment []domain.Equipment `yaml:"equipment"`
}

type eventFile struct {
	Events []domain.EventDefinition `yaml:"events"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, loading it on first use
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadFS(embedded)
	})
	return defaultCatalog, defaultErr
}

// MustDefault is Default for process start-up, panicking on a broken build
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadFS reads and validates the four catalog documents from fsys.
// fsys must contain data/ and schemas/ laid out like the embedded files.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	v := validation.NewSchemaValidator()

	var (
		fish   fishFile
		plants plantFile
		equip  equipmentFile
		events eventFile
	)

	if err := loadDocument(fsys, v, fileFishSpecies, &fish); err != nil {
		return nil, err
	}
	if err := loadDocument(fsys, v, filePlantSpecies, &plants); err != nil {
		return nil, err
	}
	if err := loadDocument(fsys, v, fileEquipment, &equip); err != nil {
		return nil, err
	}
	if err := loadDocument(fsys, v, fileEvents, &events); err != nil {
		return nil, err
	}

	return New(fish.Species, plants.Species, equip.Equipment, events.Events)
}

// New builds a catalog from in-memory tables. Event order is preserved
// because it decides which event wins a daily roll.
func New(fish []domain.FishSpecies, plants []domain.PlantSpecies, equipment []domain.Equipment, events []domain.EventDefinition) (*Catalog, error) {
	c := &Catalog{
		fish:      make(map[string]domain.FishSpecies, len(fish)),
		plants:    make(map[string]domain.PlantSpecies, len(plants)),
		equipment: make(map[string]domain.Equipment, len(equipment)),
		eventByID: make(map[string]int, len(events)),
	}

	for _, s := range fish {
		if _, dup := c.fish[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, s.ID)
		}
		c.fish[s.ID] = s
		c.fishIDs = append(c.fishIDs, s.ID)
	}
	for _, s := range plants {
		if _, dup := c.plants[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, s.ID)
		}
		c.plants[s.ID] = s
		c.plantIDs = append(c.plantIDs, s.ID)
	}
	for _, e := range equipment {
		if _, dup := c.equipment[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.ID)
		}
		c.equipment[e.ID] = e
		c.equipList = append(c.equipList, e)
	}
	for i, e := range events {
		if _, dup := c.eventByID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.ID)
		}
		c.eventByID[e.ID] = i
		c.events = append(c.events, e)
	}

	sort.Strings(c.fishIDs)
	sort.Strings(c.plantIDs)
	return c, nil
}

func loadDocument(fsys fs.FS, v validation.SchemaValidator, name string, target interface{}) error {
	schemaPath := schemaDir + "/" + name + schemaSuffix
	dataPath := dataDir + "/" + name + dataSuffix

	schema, err := fs.ReadFile(fsys, schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}
	if err := v.AddSchema(schemaPath, schema); err != nil {
		return err
	}

	data, err := fs.ReadFile(fsys, dataPath)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", dataPath, err)
	}
	if err := v.ValidateYAML(data, schemaPath); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, dataPath, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", dataPath, err)
	}
	return nil
}

// FishSpecies looks up a fish species by id
func (c *Catalog) FishSpecies(id string) (domain.FishSpecies, bool) {
	s, ok := c.fish[id]
	return s, ok
}

// PlantSpecies looks up a plant species by id
func (c *Catalog) PlantSpecies(id string) (domain.PlantSpecies, bool) {
	s, ok := c.plants[id]
	return s, ok
}

// Equipment looks up an equipment item by id
func (c *Catalog) Equipment(id string) (domain.Equipment, bool) {
	e, ok := c.equipment[id]
	return e, ok
}

// Event looks up an event definition by id
func (c *Catalog) Event(id string) (domain.EventDefinition, bool) {
	i, ok := c.eventByID[id]
	if !ok {
		return domain.EventDefinition{}, false
	}
	return c.events[i], true
}

// Events returns event definitions in roll order
func (c *Catalog) Events() []domain.EventDefinition {
	out := make([]domain.EventDefinition, len(c.events))
	copy(out, c.events)
	return out
}

// EquipmentList returns equipment in catalog order
func (c *Catalog) EquipmentList() []domain.Equipment {
	out := make([]domain.Equipment, len(c.equipList))
	copy(out, c.equipList)
	return out
}

// FishIDs returns the sorted fish species ids
func (c *Catalog) FishIDs() []string {
	return append([]string(nil), c.fishIDs...)
}

// PlantIDs returns the sorted plant species ids
func (c *Catalog) PlantIDs() []string {
	return append([]string(nil), c.plantIDs...)
}

// EquipmentIDs returns equipment ids in catalog order
func (c *Catalog) EquipmentIDs() []string {
	ids := make([]string, len(c.equipList))
	for i, e := range c.equipList {
		ids[i] = e.ID
	}
	return ids
}

// EventIDs returns event ids in roll order
func (c *Catalog) EventIDs() []string {
	ids := make([]string, len(c.events))
	for i, e := range c.events {
		ids[i] = e.ID
	}
	return ids
}

// WithEvents returns a copy of the catalog with a different event table.
// An empty table disables random events.
func (c *Catalog) WithEvents(events []domain.EventDefinition) (*Catalog, error) {
	fish := make([]domain.FishSpecies, 0, len(c.fishIDs))
	for _, id := range c.fishIDs {
		fish = append(fish, c.fish[id])
	}
	plants := make([]domain.PlantSpecies, 0, len(c.plantIDs))
	for _, id := range c.plantIDs {
		plants = append(plants, c.plants[id])
	}
	return New(fish, plants, c.EquipmentList(), events)
}
