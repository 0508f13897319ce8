package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreetingService_Greet(t *testing.T) {
	g := NewGreetingService()

	assert.Equal(t, "Hello there, Ada!", g.Greet("Ada"))
	assert.Equal(t, "Hello there, friend!", g.Greet(""))
	assert.Equal(t, "Hello there, 世界!", g.Greet("世界"))
}
