package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-counter/internal/apperrors"
)

func TestRankFromChar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		char rune
		want Rank
	}{
		{'1', RankA},
		{'a', RankA},
		{'A', RankA},
		{'2', Rank2},
		{'9', Rank9},
		{'0', Rank10},
		{'j', RankJ},
		{'Q', RankQ},
		{'k', RankK},
		{'b', RankBlackJoker},
		{'R', RankRedJoker},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.char), func(t *testing.T) {
			t.Parallel()
			got, err := RankFromChar(tt.char)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, char := range []rune{'X', 'T', ' ', '-', '大'} {
		_, err := RankFromChar(char)
		assert.ErrorIs(t, err, apperrors.ErrInvalidHand, "char %q", char)
	}
}

func TestRank_Properties(t *testing.T) {
	t.Parallel()

	for r := MinRank; r <= MaxRank; r++ {
		assert.True(t, r.Valid())
		if r == RankBlackJoker || r == RankRedJoker {
			assert.True(t, r.IsJoker())
			assert.Equal(t, 1, r.MaxCount())
		} else {
			assert.False(t, r.IsJoker())
			assert.Equal(t, 4, r.MaxCount())
		}
	}
	assert.False(t, Rank(0).Valid())
	assert.False(t, Rank(16).Valid())
	assert.Equal(t, "Rank(16)", Rank(16).String())
	assert.Equal(t, "0", Rank10.String())
}

func TestNewRank(t *testing.T) {
	t.Parallel()

	r, err := NewRank(13)
	require.NoError(t, err)
	assert.Equal(t, RankK, r)

	for _, n := range []int{0, 16, -3} {
		_, err := NewRank(n)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRank)
	}
}

func TestDisplayOrder(t *testing.T) {
	t.Parallel()

	require.Len(t, DisplayOrder, 15)
	seen := make(map[Rank]bool)
	for _, r := range DisplayOrder {
		assert.False(t, seen[r], "duplicate %s", r)
		seen[r] = true
	}
	assert.Equal(t, RankRedJoker, DisplayOrder[0])
	assert.Equal(t, Rank3, DisplayOrder[14])
}
