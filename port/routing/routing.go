// Package routing holds the pad-to-signal routing the capability table is
// generated from, and derives the table from it.
package routing

import (
	_ "embed"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"portcfg-go/errcode"
	"portcfg-go/port"
)

//go:embed s32k1xx.yaml
var rawSpec []byte

// Spec is the routing document.
type Spec struct {
	Device string      `yaml:"device"`
	Modes  []ModeRoute `yaml:"modes"`
}

// ModeRoute lists the pads one mode can select.
type ModeRoute struct {
	Mode string      `yaml:"mode"`
	Pads []PadSignal `yaml:"pads"`
}

// PadSignal names the signal a pad carries in the enclosing mode.
type PadSignal struct {
	Pad    string `yaml:"pad"`
	Signal string `yaml:"signal"`
}

type route struct {
	mode port.Mode
	pin  port.Pin
}

// Routing is a validated Spec.
type Routing struct {
	Device  string
	table   port.Table
	signals map[route]string
}

// Parse decodes a routing document.
func Parse(data []byte) (Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, errcode.Wrap(errcode.InvalidParams, "routing", err)
	}
	return s, nil
}

// Compile validates s and packs it into a capability table. Each (mode, pad)
// may appear once.
func Compile(s Spec) (*Routing, error) {
	r := &Routing{Device: s.Device, signals: make(map[route]string)}
	for _, mr := range s.Modes {
		m, err := port.ParseMode(mr.Mode)
		if err != nil {
			return nil, err
		}
		for i, ps := range mr.Pads {
			p, err := port.ParsePin(ps.Pad)
			if err != nil {
				return nil, err
			}
			if ps.Signal == "" {
				return nil, errcode.New(errcode.InvalidParams, "routing",
					m.String()+" pad #"+strconv.Itoa(i)+" has no signal")
			}
			k := route{m, p}
			if _, dup := r.signals[k]; dup {
				return nil, errcode.New(errcode.DuplicatePin, "routing", p.String()+" twice in "+m.String())
			}
			r.signals[k] = ps.Signal
			g, b := p.Group()
			r.table[m][g] |= 1 << b
		}
	}
	return r, nil
}

// Derive packs s into a capability table.
func Derive(s Spec) (port.Table, error) {
	r, err := Compile(s)
	if err != nil {
		return port.Table{}, err
	}
	return r.table, nil
}

var loadDefault = sync.OnceValues(func() (*Routing, error) {
	s, err := Parse(rawSpec)
	if err != nil {
		return nil, err
	}
	return Compile(s)
})

// Default returns the embedded S32K1xx routing.
func Default() (*Routing, error) { return loadDefault() }

// Table returns the derived capability table.
func (r *Routing) Table() port.Table { return r.table }

// Signal returns the signal pad p carries in mode m.
func (r *Routing) Signal(m port.Mode, p port.Pin) (string, bool) {
	s, ok := r.signals[route{m, p}]
	return s, ok
}
