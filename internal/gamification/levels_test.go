package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelTableStartsAtZero(t *testing.T) {
	require.Equal(t, 0, LevelTable[0].XPThreshold)
	for i := 1; i < len(LevelTable); i++ {
		assert.Greater(t, LevelTable[i].XPThreshold, LevelTable[i-1].XPThreshold)
		assert.Equal(t, LevelTable[i-1].Level+1, LevelTable[i].Level)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{105, 2},
		{299, 2},
		{300, 3},
		{9999, 9},
		{10000, 10},
		{250000, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelFor(tt.xp), "xp=%d", tt.xp)
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := LevelFor(0)
	for xp := 1; xp <= 12000; xp += 7 {
		cur := LevelFor(xp)
		require.GreaterOrEqual(t, cur, prev, "xp=%d", xp)
		prev = cur
	}
}

func TestProgressWithinLevel(t *testing.T) {
	// 105 XP：等级 2（100），下一级 300，进度 round(100*5/200) = 3
	p := ProgressWithinLevel(105)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, "Learner", p.Title)
	assert.Equal(t, 100, p.CurrentThreshold)
	assert.Equal(t, 300, p.NextThreshold)
	assert.Equal(t, 3, p.PercentToNext)
}

func TestProgressWithinLevelMaxLevel(t *testing.T) {
	// 最高级没有下一级阈值，固定返回 100 而不是除零
	for _, xp := range []int{10000, 10001, 999999} {
		p := ProgressWithinLevel(xp)
		assert.Equal(t, 10, p.Level)
		assert.Equal(t, "Grandmaster", p.Title)
		assert.Equal(t, 100, p.PercentToNext)
	}
}
