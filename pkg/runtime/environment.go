package runtime

import (
	"sort"

	"kaynat/interpreter-go/pkg/diag"
)

// Environment is one lexical scope: its own bindings, the subset of those
// that are constant, and a pointer to the enclosing scope.
type Environment struct {
	values    map[string]Value
	constants map[string]struct{}
	parent    *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		constants: make(map[string]struct{}),
		parent:    parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// CreateChild returns a new scope whose parent is e.
func (e *Environment) CreateChild() *Environment {
	return NewEnvironment(e)
}

// Define binds name in this scope. A name may be defined once per scope;
// inner scopes may shadow it.
func (e *Environment) Define(name string, value Value, constant bool) error {
	if _, ok := e.values[name]; ok {
		return diag.Runtimef("Variable '%s' already defined in this scope", name)
	}
	if value == nil {
		value = NullValue{}
	}
	e.values[name] = value
	if constant {
		e.constants[name] = struct{}{}
	}
	return nil
}

// Get resolves name through the scope chain.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, diag.Undefined(name)
}

// Set updates the nearest scope that binds name.
func (e *Environment) Set(name string, value Value) error {
	owner := e.owner(name)
	if owner == nil {
		return diag.Undefined(name)
	}
	if _, ok := owner.constants[name]; ok {
		return diag.Runtimef("Cannot modify constant '%s'", name)
	}
	if value == nil {
		value = NullValue{}
	}
	owner.values[name] = value
	return nil
}

// Exists reports whether name resolves anywhere in the chain.
func (e *Environment) Exists(name string) bool {
	return e.owner(name) != nil
}

// Owns reports whether name is bound in this scope itself.
func (e *Environment) Owns(name string) bool {
	_, ok := e.values[name]
	return ok
}

// IsConstant reports whether the binding name resolves to is constant.
func (e *Environment) IsConstant(name string) bool {
	owner := e.owner(name)
	if owner == nil {
		return false
	}
	_, ok := owner.constants[name]
	return ok
}

// Remove deletes name from this scope only.
func (e *Environment) Remove(name string) bool {
	if _, ok := e.values[name]; !ok {
		return false
	}
	delete(e.values, name)
	delete(e.constants, name)
	return true
}

func (e *Environment) owner(name string) *Environment {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			return env
		}
	}
	return nil
}

// Snapshot returns a copy of this scope's bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Keys returns this scope's names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
