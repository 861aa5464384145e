package card

import (
	"fmt"
	"unicode"

	"github.com/palemoky/landlord-counter/internal/apperrors"
)

// Rank 定义牌的身份，1-13 为 A 到 K，14/15 为小王/大王
type Rank int

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankBlackJoker
	RankRedJoker
)

const (
	// MinRank 和 MaxRank 是合法身份的范围
	MinRank = RankA
	MaxRank = RankRedJoker

	// DeckSize 一副完整牌的张数
	DeckSize = 54
)

// DisplayOrder 记牌器表格的列顺序
var DisplayOrder = []Rank{
	RankRedJoker, RankBlackJoker, Rank2, RankA, RankK, RankQ, RankJ, Rank10,
	Rank9, Rank8, Rank7, Rank6, Rank5, Rank4, Rank3,
}

// rankNames 牌面字符映射表，10 写作 0
var rankNames = map[Rank]string{
	RankA:          "A",
	Rank2:          "2",
	Rank3:          "3",
	Rank4:          "4",
	Rank5:          "5",
	Rank6:          "6",
	Rank7:          "7",
	Rank8:          "8",
	Rank9:          "9",
	Rank10:         "0",
	RankJ:          "J",
	RankQ:          "Q",
	RankK:          "K",
	RankBlackJoker: "B",
	RankRedJoker:   "R",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Valid 是否为 1-15 之间的合法身份
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// IsJoker 是否为大小王
func (r Rank) IsJoker() bool {
	return r == RankBlackJoker || r == RankRedJoker
}

// MaxCount 一副牌中该身份的最大张数
func (r Rank) MaxCount() int {
	if r.IsJoker() {
		return 1
	}
	return 4
}

// NewRank 将外部传入的整数转换为 Rank
func NewRank(n int) (Rank, error) {
	r := Rank(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", apperrors.ErrInvalidRank, n)
	}
	return r, nil
}

// mustValid 越界身份属于调用方的编程错误
func mustValid(r Rank) {
	if !r.Valid() {
		panic(fmt.Sprintf("card: rank %d out of range [%d,%d]", int(r), MinRank, MaxRank))
	}
}

// charToRank 用于快速查找字符对应的 Rank
var charToRank = map[rune]Rank{
	'1': RankA,
	'2': Rank2,
	'3': Rank3,
	'4': Rank4,
	'5': Rank5,
	'6': Rank6,
	'7': Rank7,
	'8': Rank8,
	'9': Rank9,
	'0': Rank10,
	'A': RankA,
	'J': RankJ,
	'Q': RankQ,
	'K': RankK,
	'B': RankBlackJoker,
	'R': RankRedJoker,
}

// RankFromChar 解析单个字符，不区分大小写
func RankFromChar(char rune) (Rank, error) {
	if rank, ok := charToRank[unicode.ToUpper(char)]; ok {
		return rank, nil
	}
	return 0, fmt.Errorf("%w: 无法识别的点数 %q", apperrors.ErrInvalidHand, char)
}
