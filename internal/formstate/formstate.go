// Package formstate implements a pure state machine for form input tracking:
// per-field values and validity plus an aggregate validity flag. Clients feed
// it actions and render from the returned state; the reducer itself has no
// side effects and never mutates its input.
package formstate

// Field holds one input's current value and whether it passes validation.
type Field struct {
	Value   string
	IsValid bool
}

// State maps field identifiers to their fields. A nil map entry marks an
// optional field that is currently absent (e.g. the name field in login
// mode); absent fields are skipped when computing aggregate validity.
type State struct {
	Inputs  map[string]*Field
	IsValid bool
}

// New creates a State from initial inputs and an initial aggregate validity.
func New(inputs map[string]*Field, isValid bool) State {
	return State{Inputs: cloneInputs(inputs), IsValid: isValid}
}

// Action is a state transition applied by Reduce.
type Action interface {
	apply(State) State
}

// InputChange updates one field's value and validity, then recomputes the
// aggregate validity as the AND over all present fields.
type InputChange struct {
	ID      string
	Value   string
	IsValid bool
}

func (a InputChange) apply(s State) State {
	next := State{Inputs: cloneInputs(s.Inputs), IsValid: true}
	if next.Inputs == nil {
		next.Inputs = make(map[string]*Field)
	}
	next.Inputs[a.ID] = &Field{Value: a.Value, IsValid: a.IsValid}

	for _, f := range next.Inputs {
		if f == nil {
			continue
		}
		next.IsValid = next.IsValid && f.IsValid
	}
	return next
}

// SetData replaces the whole input map and aggregate validity, used when a
// form switches modes and optional fields appear or disappear.
type SetData struct {
	Inputs  map[string]*Field
	IsValid bool
}

func (a SetData) apply(State) State {
	return State{Inputs: cloneInputs(a.Inputs), IsValid: a.IsValid}
}

// Reduce applies an action to a state and returns the next state. The input
// state is left untouched, so callers may keep references to old states.
func Reduce(s State, action Action) State {
	if action == nil {
		return s
	}
	return action.apply(s)
}

func cloneInputs(inputs map[string]*Field) map[string]*Field {
	if inputs == nil {
		return nil
	}
	clone := make(map[string]*Field, len(inputs))
	for id, f := range inputs {
		if f == nil {
			clone[id] = nil
			continue
		}
		copied := *f
		clone[id] = &copied
	}
	return clone
}
