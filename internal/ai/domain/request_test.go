package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestUserContent(t *testing.T) {
	r := NewRequest("  write to Ann  ")
	assert.Equal(t, "write to Ann", r.UserContent())

	r.Context = []string{"Ann is our CTO.", "Sign as Bob."}
	assert.Equal(t, "Context from the knowledge base:\nAnn is our CTO.\nSign as Bob.\n\nwrite to Ann", r.UserContent())
}
