package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalDPS(t *testing.T) {
	t.Run("AR cycle", func(t *testing.T) {
		// 60 shots at 12/s is 5s of fire, then 1.5s reloading.
		got, err := NormalDPS(1, 60, 1.5, AR)
		require.NoError(t, err)
		assert.InDelta(t, 60.0/6.5, got, 1e-9)
	})

	t.Run("MG wind-up", func(t *testing.T) {
		// 43 rounds and 2s are spent spinning up each magazine.
		got, err := NormalDPS(1, 300, 2.5, MG)
		require.NoError(t, err)
		assert.InDelta(t, 257.0/(257.0/59+2+2.5), got, 1e-9)
	})

	t.Run("non-positive reload gives the peak rate", func(t *testing.T) {
		got, err := NormalDPS(2, 60, 0, AR)
		require.NoError(t, err)
		assert.InDelta(t, 24.0, got, 1e-9)

		got, err = NormalDPS(2, 60, -1, AR)
		require.NoError(t, err)
		assert.InDelta(t, 24.0, got, 1e-9)
	})

	t.Run("damage scales linearly", func(t *testing.T) {
		one, err := NormalDPS(1, 120, 1, SMG)
		require.NoError(t, err)
		ten, err := NormalDPS(10, 120, 1, SMG)
		require.NoError(t, err)
		assert.InDelta(t, one*10, ten, 1e-9)
	})

	t.Run("unknown weapon", func(t *testing.T) {
		_, err := NormalDPS(1, 60, 1.5, Weapon("crossbow"))
		assert.ErrorContains(t, err, "unknown weapon class")
	})
}

func TestPeakNormalDPS(t *testing.T) {
	got, err := PeakNormalDPS(3, SG)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got, 1e-9)

	_, err = PeakNormalDPS(3, Weapon("bow"))
	assert.Error(t, err)
}

func TestStatsNormalDPS(t *testing.T) {
	s := Stats{Attack: 100000, Ammo: 60, Reload: 1.5, Weapon: AR, NormalDamage: 12.07}

	got, err := s.NormalDPS()
	require.NoError(t, err)
	want, err := NormalDPS(12.07, 60, 1.5, AR)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCubeValue(t *testing.T) {
	tests := []struct {
		name  string
		cube  string
		level int
		want  float64
	}{
		{name: "reload max", cube: "reload", level: 3, want: 29.69},
		{name: "reload unleveled", cube: "reload", level: 0, want: 0},
		{name: "onslaught mid", cube: "onslaught", level: 2, want: 3.81},
		{name: "bastion", cube: "bastion", level: 1, want: 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CubeValue(tt.cube, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown cube", func(t *testing.T) {
		_, err := CubeValue("vigor", 2)
		assert.ErrorContains(t, err, "unknown cube")
	})

	t.Run("level out of range", func(t *testing.T) {
		_, err := CubeValue("reload", 4)
		assert.ErrorContains(t, err, "out of range")
		_, err = CubeValue("reload", -1)
		assert.Error(t, err)
	})
}

func TestCounters(t *testing.T) {
	tests := []struct {
		source, target string
		want           bool
	}{
		{"water", "fire", true},
		{"fire", "wind", true},
		{"wind", "iron", true},
		{"iron", "electric", true},
		{"electric", "water", true},
		{"fire", "water", false},
		{"water", "water", false},
	}
	for _, tt := range tests {
		got, err := Counters(tt.source, tt.target)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.source, tt.target)
	}

	t.Run("unknown elements", func(t *testing.T) {
		_, err := Counters("light", "fire")
		assert.Error(t, err)
		_, err = Counters("fire", "dark")
		assert.Error(t, err)
	})

	t.Run("cycle covers every element once", func(t *testing.T) {
		seen := make(map[string]int)
		for _, beats := range elementCounters {
			seen[beats]++
		}
		for element := range elementCounters {
			assert.Equal(t, 1, seen[element], "%s is countered exactly once", element)
		}
	})
}
