package formstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func loginInputs() map[string]*Field {
	return map[string]*Field{
		"email":    {Value: "", IsValid: false},
		"password": {Value: "", IsValid: false},
	}
}

func TestInputChangeUpdatesFieldAndAggregate(t *testing.T) {
	s := New(loginInputs(), false)

	s = Reduce(s, InputChange{ID: "email", Value: "a@a.com", IsValid: true})
	assert.False(t, s.IsValid, "password is still invalid")
	assert.Equal(t, "a@a.com", s.Inputs["email"].Value)

	s = Reduce(s, InputChange{ID: "password", Value: "secret1", IsValid: true})
	assert.True(t, s.IsValid, "all fields valid")
}

func TestInputChangeInvalidatingOneFieldInvalidatesForm(t *testing.T) {
	s := New(map[string]*Field{
		"email":    {Value: "a@a.com", IsValid: true},
		"password": {Value: "secret1", IsValid: true},
	}, true)

	s = Reduce(s, InputChange{ID: "email", Value: "broken", IsValid: false})
	assert.False(t, s.IsValid)
}

func TestAbsentFieldsAreSkipped(t *testing.T) {
	// Signup-mode inputs with name switched off for login mode.
	s := New(map[string]*Field{
		"email":    {Value: "a@a.com", IsValid: true},
		"password": {Value: "secret1", IsValid: true},
		"name":     nil,
	}, true)

	s = Reduce(s, InputChange{ID: "password", Value: "secret12", IsValid: true})
	assert.True(t, s.IsValid, "nil entries must not poison the aggregate AND")
}

func TestSetDataReplacesState(t *testing.T) {
	s := New(loginInputs(), false)

	signupInputs := map[string]*Field{
		"email":    {Value: "a@a.com", IsValid: true},
		"password": {Value: "secret1", IsValid: true},
		"name":     {Value: "", IsValid: false},
	}
	s = Reduce(s, SetData{Inputs: signupInputs, IsValid: false})

	assert.Len(t, s.Inputs, 3)
	assert.False(t, s.IsValid)
}

func TestReduceDoesNotMutateInputState(t *testing.T) {
	original := New(loginInputs(), false)

	_ = Reduce(original, InputChange{ID: "email", Value: "a@a.com", IsValid: true})

	assert.Equal(t, "", original.Inputs["email"].Value)
	assert.False(t, original.Inputs["email"].IsValid)
}

func TestDeterministicFromActionSequence(t *testing.T) {
	run := func() State {
		s := New(loginInputs(), false)
		s = Reduce(s, InputChange{ID: "email", Value: "a@a.com", IsValid: true})
		s = Reduce(s, InputChange{ID: "password", Value: "secret1", IsValid: true})
		s = Reduce(s, SetData{Inputs: map[string]*Field{"email": {Value: "a@a.com", IsValid: true}}, IsValid: true})
		return s
	}

	assert.Equal(t, run(), run())
}

func TestNilAction(t *testing.T) {
	s := New(loginInputs(), false)
	assert.Equal(t, s, Reduce(s, nil))
}
