package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/nodify"
)

var validate = validator.New()

// Script is a YAML description of a scene and the pointer events to replay
// against it.
//
//	viewport: {width: 800, height: 400}
//	center: [230, 45]
//	nodes:
//	  - {id: a, label: Source, x: 0, y: 0, w: 160, h: 90}
//	  - {id: b, label: Sink, x: 300, y: 0, w: 160, h: 90}
//	connections:
//	  - {from: a.right, to: b.left}
//	events:
//	  - {kind: press, x: 400, y: 200, buttons: [primary], space: view}
type Script struct {
	Viewport    Viewport     `yaml:"viewport"`
	Center      []float64    `yaml:"center" validate:"omitempty,len=2"`
	Zoom        float64      `yaml:"zoom" validate:"omitempty,gt=0"`
	Solver      string       `yaml:"solver" validate:"omitempty,oneof=cubic straight"`
	Nodes       []NodeSpec   `yaml:"nodes" validate:"dive"`
	Connections []LinkSpec   `yaml:"connections" validate:"dive"`
	Events      []EventSpec  `yaml:"events" validate:"dive"`
	Expect      *Expectation `yaml:"expect"`
}

// Viewport is the output size in pixels.
type Viewport struct {
	Width  int `yaml:"width" validate:"omitempty,min=1,max=16384"`
	Height int `yaml:"height" validate:"omitempty,min=1,max=16384"`
}

// NodeSpec adds one node.
type NodeSpec struct {
	ID    string  `yaml:"id" validate:"required,max=64"`
	Label string  `yaml:"label" validate:"max=256"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w" validate:"gte=0"`
	H     float64 `yaml:"h" validate:"gte=0"`
	Color string  `yaml:"color" validate:"omitempty,hexcolor"`
}

// LinkSpec connects two slots named "<node id>.<side>".
type LinkSpec struct {
	From string `yaml:"from" validate:"required,contains=."`
	To   string `yaml:"to" validate:"required,contains=."`
}

// EventSpec is one pointer event. Positions are in view pixels unless
// space is "scene".
type EventSpec struct {
	Kind      string   `yaml:"kind" validate:"required,oneof=press move release leave"`
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Buttons   []string `yaml:"buttons" validate:"dive,oneof=primary middle secondary"`
	Modifiers []string `yaml:"mods" validate:"dive,oneof=alt shift ctrl"`
	Space     string   `yaml:"space" validate:"omitempty,oneof=view scene"`
}

// Expectation is checked after replay; the run fails on a mismatch.
type Expectation struct {
	Nodes       *int `yaml:"nodes" validate:"omitempty,gte=0"`
	Connections *int `yaml:"connections" validate:"omitempty,gte=0"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and validates a YAML script. Unknown keys are errors.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if s.Viewport.Width == 0 {
		s.Viewport.Width = 800
	}
	if s.Viewport.Height == 0 {
		s.Viewport.Height = 600
	}
	if err := validate.Struct(&s); err != nil {
		return nil, formatValidationError(err)
	}
	if err := s.checkRefs(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) checkRefs() error {
	ids := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("nodes: duplicate id %q", n.ID)
		}
		ids[n.ID] = true
	}
	for i, l := range s.Connections {
		for _, ref := range []string{l.From, l.To} {
			id, _, err := splitSlotRef(ref)
			if err != nil {
				return fmt.Errorf("connections[%d]: %w", i, err)
			}
			if !ids[id] {
				return fmt.Errorf("connections[%d]: unknown node %q", i, id)
			}
		}
	}
	return nil
}

func splitSlotRef(ref string) (string, nodify.Side, error) {
	i := strings.LastIndexByte(ref, '.')
	if i <= 0 {
		return "", 0, fmt.Errorf("slot reference %q: want <node>.<side>", ref)
	}
	side, err := nodify.ParseSide(ref[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("slot reference %q: %w", ref, err)
	}
	return ref[:i], side, nil
}

// Event converts the spec to a pointer event.
func (e EventSpec) Event() nodify.PointerEvent {
	var b nodify.Buttons
	for _, name := range e.Buttons {
		switch name {
		case "primary":
			b |= nodify.ButtonPrimary
		case "middle":
			b |= nodify.ButtonMiddle
		case "secondary":
			b |= nodify.ButtonSecondary
		}
	}
	var m nodify.Modifiers
	for _, name := range e.Modifiers {
		switch name {
		case "alt":
			m |= nodify.ModAlt
		case "shift":
			m |= nodify.ModShift
		case "ctrl":
			m |= nodify.ModCtrl
		}
	}
	pos := nodify.Pt(e.X, e.Y)
	switch e.Kind {
	case "press":
		return nodify.Press(pos, b, m)
	case "move":
		return nodify.Move(pos, b, m)
	case "release":
		return nodify.Release(pos, m)
	}
	return nodify.Leave()
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, e := range verrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
		case "min", "gte", "gt":
			return fmt.Errorf("%s: must be at least %s", field, e.Param())
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}
	return err
}
