package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"2500", 2500},
		{" 99.5 ", 99.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"1,500", 0},
		{"-20", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"1e400", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, coercePrice(tt.raw))
		})
	}
}

func TestSnowflakeIDs(t *testing.T) {
	ids, err := NewSnowflakeIDs(1)
	assert.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := ids.NextID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}

	_, err = NewSnowflakeIDs(2048)
	assert.Error(t, err)
}
