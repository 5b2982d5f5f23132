package data

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/skirmish/internal/game/stats"
	"github.com/udisondev/skirmish/internal/model"
)

var (
	ErrUnknownUnit = errors.New("unknown unit")
	ErrUnknownItem = errors.New("unknown item")
)

//go:embed catalog.yaml
var defaultCatalog []byte

// UnitDef is a unit template.
type UnitDef struct {
	model.UnitInfo `yaml:",inline"`

	Bonus model.BonusKind `yaml:"bonus"`
	Stats stats.Stats     `yaml:"stats"`
	Items []string        `yaml:"items,omitempty"`
}

type catalogFile struct {
	Items []model.Item `yaml:"items"`
	Units []UnitDef    `yaml:"units"`
}

// Catalog holds resolved unit and item templates. Read-only after load.
type Catalog struct {
	units map[string]*UnitDef
	items map[string]*model.Item
}

// LoadCatalog reads a catalog from path. An empty path loads the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	raw := defaultCatalog
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		units: make(map[string]*UnitDef, len(f.Units)),
		items: make(map[string]*model.Item, len(f.Items)),
	}

	for i := range f.Items {
		it := &f.Items[i]
		if it.Name == "" {
			return nil, fmt.Errorf("item #%d: missing name", i)
		}
		if _, dup := c.items[it.Name]; dup {
			return nil, fmt.Errorf("item %q: duplicate name", it.Name)
		}
		c.items[it.Name] = it
	}

	for i := range f.Units {
		def := &f.Units[i]
		if def.Name == "" {
			return nil, fmt.Errorf("unit #%d: missing name", i)
		}
		if _, dup := c.units[def.Name]; dup {
			return nil, fmt.Errorf("unit %q: duplicate name", def.Name)
		}
		if len(def.Items) > model.MaxItemSlots {
			return nil, fmt.Errorf("unit %q: %d items, at most %d slots", def.Name, len(def.Items), model.MaxItemSlots)
		}
		for _, name := range def.Items {
			if _, ok := c.items[name]; !ok {
				return nil, fmt.Errorf("unit %q: item %q: %w", def.Name, name, ErrUnknownItem)
			}
		}
		if def.Stats.HP == 0 {
			def.Stats.HP = def.Stats.MaxHP
		}
		if def.Stats.Moves == 0 {
			def.Stats.Moves = def.Stats.MaxMoves
		}
		c.units[def.Name] = def
	}

	slog.Info("loaded unit catalog", "units", len(c.units), "items", len(c.items))
	return c, nil
}

// Unit returns the template named name, or nil.
func (c *Catalog) Unit(name string) *UnitDef {
	return c.units[name]
}

// Item returns the item named name, or nil.
func (c *Catalog) Item(name string) *model.Item {
	return c.items[name]
}

// UnitNames returns all unit template names, sorted.
func (c *Catalog) UnitNames() []string {
	names := make([]string, 0, len(c.units))
	for n := range c.units {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// NewUnit instantiates template name for army with its starting items equipped.
func (c *Catalog) NewUnit(name string, army int) (*model.Unit, error) {
	def := c.units[name]
	if def == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownUnit)
	}

	info := def.UnitInfo
	if info.Magic != nil {
		m := *info.Magic
		info.Magic = &m
	}
	u := model.NewUnit(info, def.Stats, army, def.Bonus)

	for slot, itemName := range def.Items {
		it := c.items[itemName]
		if !u.Equip(it, slot) {
			return nil, fmt.Errorf("unit %q cannot equip %q", name, itemName)
		}
	}
	return u, nil
}
