package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/nodify"
)

// Theme is the TOML palette applied to a rendered scene.
//
//	background = "#2d2d2d"
//	node = "#373737"
//	label = "#ffffff"
//	slot = "#ffffff"
//	link = "#ffffff"
//	label_size = 13
type Theme struct {
	Background string  `toml:"background" validate:"omitempty,hexcolor"`
	Node       string  `toml:"node" validate:"omitempty,hexcolor"`
	Label      string  `toml:"label" validate:"omitempty,hexcolor"`
	Slot       string  `toml:"slot" validate:"omitempty,hexcolor"`
	Link       string  `toml:"link" validate:"omitempty,hexcolor"`
	LabelSize  float64 `toml:"label_size" validate:"omitempty,gt=0,lte=96"`
}

// palette is a Theme resolved to colors.
type palette struct {
	background nodify.RGBA
	node       nodify.RGBA
	label      nodify.RGBA
	slot       nodify.RGBA
	link       nodify.RGBA
	labelSize  float64
}

func defaultPalette() palette {
	return palette{
		background: nodify.DefaultBackground,
		node:       nodify.DefaultNodeColor,
		label:      nodify.DefaultLabelColor,
		slot:       nodify.DefaultSlotColor,
		link:       nodify.DefaultLinkColor,
		labelSize:  13,
	}
}

// LoadTheme reads and validates a theme file.
func LoadTheme(path string) (*Theme, error) {
	var t Theme
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("theme %s: unknown key %q", path, undec[0].String())
	}
	if err := validate.Struct(&t); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, formatValidationError(err))
	}
	return &t, nil
}

// palette resolves the theme over the defaults. A nil theme yields the
// defaults.
func (t *Theme) palette() palette {
	p := defaultPalette()
	if t == nil {
		return p
	}
	set := func(dst *nodify.RGBA, hex string) {
		if c, ok := nodify.Hex(hex); ok && hex != "" {
			*dst = c
		}
	}
	set(&p.background, t.Background)
	set(&p.node, t.Node)
	set(&p.label, t.Label)
	set(&p.slot, t.Slot)
	set(&p.link, t.Link)
	if t.LabelSize > 0 {
		p.labelSize = t.LabelSize
	}
	return p
}
