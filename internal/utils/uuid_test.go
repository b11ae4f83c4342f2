package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceIDGenerator_GeneratesV7(t *testing.T) {
	g := NewTraceIDGenerator()

	id, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestTraceIDGenerator_Unique(t *testing.T) {
	g := NewTraceIDGenerator()

	assert.NotEqual(t, g.Generate(), g.Generate())
}
