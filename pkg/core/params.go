package core

import "strconv"

// Parameter describes a single value exposed by a simulation for display.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current state a sim exposes to status panels.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that publish a snapshot.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam builds an integer-valued parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// Int64Param builds a 64-bit integer parameter.
func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatInt(v, 10)}
}

// FloatParam builds a floating-point parameter with two decimals.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}

// TextParam builds a free-form parameter.
func TextParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Value: v}
}

// BoolParam builds a yes/no parameter.
func BoolParam(key, label string, v bool) Parameter {
	s := "no"
	if v {
		s = "yes"
	}
	return Parameter{Key: key, Label: label, Value: s}
}

// Lookup returns the value stored under key in any group.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}
