package mines

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	tests := []GameParams{
		{Rows: 9, Cols: 9, MineCount: 10, Lives: 1},
		{Rows: 16, Cols: 30, MineCount: 99, Lives: 3, FloodFill: true},
		{Rows: 1, Cols: 2, MineCount: 1, Lives: 1},
	}
	for _, p := range tests {
		t.Run(p.Seed(), func(t *testing.T) {
			parsed, err := ParseSeed(p.Seed())
			require.NoError(t, err)
			assert.Equal(t, p, *parsed)
		})
	}
}

func TestParseSeedMalformed(t *testing.T) {
	for _, seed := range []string{"", "9:9:10", "a:b:c:d:e", "9x9x10x1x0", "9:9:10:1:7", "9:9:10:1:-1"} {
		_, err := ParseSeed(seed)
		assert.Error(t, err, seed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		valid  bool
	}{
		{"ok", GameParams{Rows: 9, Cols: 9, MineCount: 10, Lives: 1}, true},
		{"no mines", GameParams{Rows: 1, Cols: 1, MineCount: 0, Lives: 1}, true},
		{"max mines", GameParams{Rows: 3, Cols: 3, MineCount: 8, Lives: 1}, true},
		{"zero rows", GameParams{Rows: 0, Cols: 9, MineCount: 0, Lives: 1}, false},
		{"negative cols", GameParams{Rows: 9, Cols: -1, MineCount: 0, Lives: 1}, false},
		{"no lives", GameParams{Rows: 9, Cols: 9, MineCount: 10, Lives: 0}, false},
		{"negative mines", GameParams{Rows: 9, Cols: 9, MineCount: -1, Lives: 1}, false},
		{"too many mines", GameParams{Rows: 3, Cols: 3, MineCount: 9, Lives: 1}, false},
		{"tile count overflows", GameParams{Rows: 1<<62 + 1, Cols: 4, MineCount: 0, Lives: 1}, false},
		{"huge square", GameParams{Rows: math.MaxInt, Cols: math.MaxInt, MineCount: 0, Lives: 1}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
				return
			}
			var ipe *InvalidParamsError
			require.True(t, errors.As(err, &ipe))
			assert.Equal(t, test.params, ipe.Params)
		})
	}
}
