package store

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// UpdateBuilder accumulates a sparse set of field changes and translates them
// into a DynamoDB update expression. A field set to its empty value is still a
// change; only fields never passed to Set are left untouched in storage.
type UpdateBuilder struct {
	names  []string
	values map[string]any
}

// NewUpdate returns an empty UpdateBuilder.
func NewUpdate() *UpdateBuilder {
	return &UpdateBuilder{values: make(map[string]any)}
}

// Set records a field change. Setting the same field twice keeps the last
// value. Returns the builder for chaining.
func (b *UpdateBuilder) Set(name string, value any) *UpdateBuilder {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = value
	return b
}

// Len reports how many distinct fields have been set.
func (b *UpdateBuilder) Len() int {
	return len(b.names)
}

// Value returns the pending value for a field and whether it was set.
func (b *UpdateBuilder) Value(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Fields returns the field names in the order they were first set.
func (b *UpdateBuilder) Fields() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// expr translates the accumulated changes into an expression.UpdateBuilder.
// Fails with ErrNoFieldsToUpdate when nothing was set.
func (b *UpdateBuilder) expr() (expression.UpdateBuilder, error) {
	if len(b.names) == 0 {
		return expression.UpdateBuilder{}, ErrNoFieldsToUpdate
	}
	var upd expression.UpdateBuilder
	for _, name := range b.names {
		upd = upd.Set(expression.Name(name), expression.Value(b.values[name]))
	}
	return upd, nil
}
