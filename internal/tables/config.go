package tables

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/betnumbers/betnumber"
)

// TableConfig declares categories on top of the built-in tables:
//
//	category "red" {
//	  game = "roulette"
//	  tag  = 3
//	  row "red" {
//	    positions = [1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36]
//	  }
//	}
type TableConfig struct {
	Categories []CategoryConfig `hcl:"category,block"`
}

// CategoryConfig is one category block.
type CategoryConfig struct {
	Name   string      `hcl:"name,label"`
	Game   string      `hcl:"game"`
	Tag    int         `hcl:"tag"`
	Layout string      `hcl:"layout,optional"`
	Rows   []RowConfig `hcl:"row,block"`
}

// RowConfig is one row block. Mask categories set positions, total
// categories set total.
type RowConfig struct {
	Label     string `hcl:"label,label"`
	Positions []int  `hcl:"positions,optional"`
	Total     *int   `hcl:"total,optional"`
}

// LoadTableConfig reads an HCL table file. A missing file yields an empty
// config.
func LoadTableConfig(filename string) (*TableConfig, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return &TableConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}
	return ParseTableConfig(src, filename)
}

// ParseTableConfig decodes HCL source. filename is only used in diagnostics.
func ParseTableConfig(src []byte, filename string) (*TableConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config TableConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &config, nil
}

// Validate checks the parts of the config that do not depend on a game.
// Ranges are checked when the rows are encoded.
func (c *TableConfig) Validate() error {
	seen := make(map[string]bool)
	for _, cat := range c.Categories {
		key := cat.Game + "/" + cat.Name
		if seen[key] {
			return fmt.Errorf("category %s declared twice", key)
		}
		seen[key] = true

		if _, err := betnumber.NewTag(cat.Tag); err != nil {
			return fmt.Errorf("category %s: %w", key, err)
		}
		layout, err := ParseLayout(cat.Layout)
		if err != nil {
			return fmt.Errorf("category %s: %w", key, err)
		}
		if len(cat.Rows) == 0 {
			return fmt.Errorf("category %s: at least one row is required", key)
		}
		for _, row := range cat.Rows {
			switch layout {
			case LayoutMask:
				if row.Total != nil {
					return fmt.Errorf("category %s row %s: total is only valid for total layout", key, row.Label)
				}
				if len(row.Positions) == 0 {
					return fmt.Errorf("category %s row %s: %w", key, row.Label, betnumber.ErrEmptyPositionSet)
				}
			case LayoutTotal:
				if row.Total == nil {
					return fmt.Errorf("category %s row %s: total is required", key, row.Label)
				}
				if len(row.Positions) > 0 {
					return fmt.Errorf("category %s row %s: positions are only valid for mask layout", key, row.Label)
				}
			}
		}
	}
	return nil
}

// Apply validates the config and adds its categories to games. Each new
// category is encoded once so range errors surface here rather than at
// output time.
func (c *TableConfig) Apply(games []*Game) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, cat := range c.Categories {
		g, err := Find(games, cat.Game)
		if err != nil {
			return fmt.Errorf("category %s: %w", cat.Name, err)
		}
		layout, _ := ParseLayout(cat.Layout)

		category := Category{Name: cat.Name, Tag: cat.Tag, Layout: layout}
		for _, row := range cat.Rows {
			r := Row{Label: row.Label, Positions: row.Positions}
			if row.Total != nil {
				r.Total = *row.Total
			}
			category.Rows = append(category.Rows, r)
		}

		if err := g.AddCategory(category); err != nil {
			return err
		}
		if _, err := g.EncodeCategory(category.Name); err != nil {
			return err
		}
	}
	return nil
}
