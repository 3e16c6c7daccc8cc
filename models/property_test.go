package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_ScalarFallsBackToString(t *testing.T) {
	assert.Equal(t, "42", Property(42, "anything"))
	assert.Equal(t, "golang", Property("golang", "display_name"))
	assert.Equal(t, "1.5", Property(1.5, "x"))
}

func TestProperty_KnownAttribute(t *testing.T) {
	thing, err := Materialize(nil, map[string]any{
		"kind": "t5",
		"data": map[string]any{"name": "t5_2rc7j", "display_name": "golang"},
	})
	require.NoError(t, err)

	assert.Equal(t, "golang", Property(thing, "display_name"))
	assert.Equal(t, "t5", Property(thing, "kind"))
}

func TestProperty_UnknownAttributeUsesThingString(t *testing.T) {
	thing, err := Materialize(nil, map[string]any{
		"kind": "t5",
		"data": map[string]any{"name": "t5_2rc7j", "display_name": "golang"},
	})
	require.NoError(t, err)

	assert.Equal(t, "golang", Property(thing, "missing"))

	comment, err := Materialize(nil, map[string]any{"kind": "t1", "data": map[string]any{"id": "abc"}})
	require.NoError(t, err)
	assert.Equal(t, "t1_abc", Property(comment, "missing"))
}

func TestProperty_DerivedCollections(t *testing.T) {
	c := comment(t, "A", comment(t, "A1"))

	replies, ok := Property(c, "replies").([]Thing)
	require.True(t, ok)
	assert.Len(t, replies, 1)

	s := submission(t, c)
	comments, ok := Property(s, "comments").([]Thing)
	require.True(t, ok)
	assert.Len(t, comments, 1)
}

func TestProperty_NilObjects(t *testing.T) {
	assert.Equal(t, "", Property(nil, "body"))

	var c *Comment
	assert.NotPanics(t, func() { Property(c, "body") })
	assert.Equal(t, "", Property(c, "body"))
	assert.Equal(t, "", Property(c, "replies"))

	var s *Submission
	assert.Equal(t, "", Property(s, "comments"))

	var thing Thing = (*Listing)(nil)
	assert.Equal(t, "", Property(thing, "children"))
}

func TestProperty_NilReceiversReportMissing(t *testing.T) {
	for _, p := range []Propertied{(*Base)(nil), (*Comment)(nil), (*Submission)(nil), (*Listing)(nil), (*PrivateMessage)(nil)} {
		v, ok := p.Property("kind")
		assert.False(t, ok)
		assert.Nil(t, v)
	}

	// A variant with no base still answers without panicking.
	v, ok := (&Comment{}).Property("body")
	assert.False(t, ok)
	assert.Nil(t, v)
}
