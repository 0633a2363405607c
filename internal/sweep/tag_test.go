package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
)

func TestTagWindow(t *testing.T) {
	tests := []struct {
		name      string
		tag       Tag
		wantStart float64
		wantEnd   float64
	}{
		{name: "explicit end wins", tag: Tag{Start: 2, Duration: 50, End: 4}, wantStart: 2, wantEnd: 4},
		{name: "duration from start", tag: Tag{Start: 2, Duration: 5}, wantStart: 2, wantEnd: 7},
		{name: "no end no duration is instantaneous", tag: Tag{Start: 3}, wantStart: 3, wantEnd: 3},
		{name: "infinite duration", tag: Tag{Start: 1, Duration: math.Inf(1)}, wantStart: 1, wantEnd: math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.tag.Window()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTagInstant(t *testing.T) {
	assert.True(t, Tag{Start: 3}.Instant())
	assert.False(t, Tag{Start: 3, Duration: 1}.Instant())
	assert.False(t, Tag{Start: 3, End: 4}.Instant())
}

func TestTagValidate(t *testing.T) {
	assert.NoError(t, Tag{Start: 0, Duration: 10}.Validate())
	assert.NoError(t, Tag{Start: 5}.Validate())
	assert.Error(t, Tag{Start: 5, End: 2}.Validate())
}

func TestTimePoints(t *testing.T) {
	t.Run("interior bounds only", func(t *testing.T) {
		bs := []buffs.Buff{
			{Start: 0, End: 10},   // both bounds coincide with the window
			{Start: 2, End: 8},    // both interior
			{Start: -5, End: 5},   // start outside
			{Start: 5, End: 20},   // end outside
			{Start: math.Inf(-1), End: math.Inf(1)},
		}
		got := timePoints(bs, 0, 10)
		assert.Equal(t, []float64{0, 2, 5, 8, 10}, got)
	})

	t.Run("deduplicates shared boundaries", func(t *testing.T) {
		bs := []buffs.Buff{
			{Start: 3, End: 7},
			{Start: 3, End: 7},
			{Start: 7, End: 9},
		}
		got := timePoints(bs, 0, 10)
		assert.Equal(t, []float64{0, 3, 7, 9, 10}, got)
	})

	t.Run("infinite window keeps only buff bounds", func(t *testing.T) {
		bs := []buffs.Buff{{Start: 1, End: 4}}
		got := timePoints(bs, math.Inf(-1), math.Inf(1))
		assert.Equal(t, []float64{1, 4}, got)
	})

	t.Run("no buffs", func(t *testing.T) {
		got := timePoints(nil, 0, 60)
		assert.Equal(t, []float64{0, 60}, got)
	})
}
