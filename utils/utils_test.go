package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomNameGeneratorUnique(t *testing.T) {
	rng := NewRandomNameGenerator(1)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		name := rng.RandomName()
		assert.False(t, seen[name], name)
		seen[name] = true
	}
}

func TestRandomNameGeneratorSeeded(t *testing.T) {
	var a, b []string
	rng := NewRandomNameGenerator(5)
	for i := 0; i < 10; i++ {
		a = append(a, rng.RandomName())
	}
	rng = NewRandomNameGenerator(5)
	for i := 0; i < 10; i++ {
		b = append(b, rng.RandomName())
	}
	assert.Equal(t, a, b)
}

func TestSDumpSortsKeys(t *testing.T) {
	out := SDump(map[string]int{"b": 2, "a": 1})
	a, b := strings.Index(out, `"a"`), strings.Index(out, `"b"`)
	assert.NotEqual(t, -1, a)
	assert.Less(t, a, b)
}
