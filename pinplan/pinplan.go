// Package pinplan checks a board's pin-mux plan against the capability table
// before any of it reaches a driver configuration.
package pinplan

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"portcfg-go/errcode"
	"portcfg-go/port"
	"portcfg-go/port/routing"
)

// Plan is the on-disk document.
type Plan struct {
	Board string       `yaml:"board"`
	Pins  []Assignment `yaml:"pins"`
}

// Assignment requests one pad in one mode. Signal is optional; when set it
// must match the routed signal name.
type Assignment struct {
	Pin    string `yaml:"pin"`
	Mode   string `yaml:"mode"`
	Signal string `yaml:"signal,omitempty"`
}

// Resolved is an assignment that passed every check.
type Resolved struct {
	Pin    port.Pin
	Mode   port.Mode
	Signal string
}

// Parse decodes a plan.
func Parse(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, errcode.Wrap(errcode.InvalidParams, "pinplan", err)
	}
	return p, nil
}

// Load reads and decodes the plan at path.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	return Parse(data)
}

// Validate checks every assignment and reports all problems, not just the
// first. r supplies signal names; with a nil r signals are not checked.
func (p Plan) Validate(r *routing.Routing) ([]Resolved, []error) {
	var (
		out   []Resolved
		probs []error
		seen  = make(map[port.Pin]int)
	)
	for i, a := range p.Pins {
		op := "pins[" + strconv.Itoa(i) + "]"

		pin, err := port.ParsePin(a.Pin)
		if err != nil {
			probs = append(probs, errcode.New(errcode.UnknownPin, op, strconv.Quote(a.Pin)))
			continue
		}
		mode, err := port.ParseMode(a.Mode)
		if err != nil {
			probs = append(probs, errcode.New(errcode.InvalidMode, op, strconv.Quote(a.Mode)))
			continue
		}
		if first, dup := seen[pin]; dup {
			probs = append(probs, errcode.New(errcode.DuplicatePin, op,
				pin.String()+" already assigned at pins["+strconv.Itoa(first)+"]"))
			continue
		}
		seen[pin] = i

		if err := port.Check(mode, pin); err != nil {
			probs = append(probs, errcode.New(errcode.Of(err), op, pin.String()+" in "+mode.String()))
			continue
		}

		res := Resolved{Pin: pin, Mode: mode}
		if r != nil {
			sig, _ := r.Signal(mode, pin)
			if a.Signal != "" && a.Signal != sig {
				probs = append(probs, errcode.New(errcode.SignalMismatch, op,
					pin.String()+" in "+mode.String()+" is "+sig+", not "+a.Signal))
				continue
			}
			res.Signal = sig
		}
		out = append(out, res)
	}
	return out, probs
}
