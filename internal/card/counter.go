package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/landlord-counter/internal/apperrors"
)

// Counter 用一个 uint64 压缩表示的 54 张牌多重集合。
//
// 点数 r (1-13) 占用 bit 4*(r-1) 起的 4 位，按"温度计"编码张数：
// 0000, 0001, 0011, 0111, 1111 分别表示 0 到 4 张。
// 小王、大王各占点数区之上的一位 (bit 52, bit 53)。
// 零值即空牌堆。
type Counter struct {
	bits uint64
}

const (
	slotWidth  = 4
	slotMask   = 0b1111
	jokerShift = slotWidth * 13

	fullBits = 1<<DeckSize - 1
)

// entry 某个身份及其张数
type entry struct {
	rank  Rank
	count int
}

// NewCounter 创建空记牌器
func NewCounter() Counter {
	return Counter{}
}

// NewFullCounter 创建一副完整的 54 张牌
func NewFullCounter() Counter {
	return Counter{bits: fullBits}
}

func slotShift(r Rank) uint {
	return uint(slotWidth * (r - 1))
}

func jokerFlag(r Rank) uint64 {
	return 1 << (jokerShift + uint(r-RankBlackJoker))
}

func (c Counter) slot(r Rank) uint64 {
	return (c.bits >> slotShift(r)) & slotMask
}

// Insert 加入一张牌，已达上限时返回 false 且不修改状态
func (c *Counter) Insert(r Rank) bool {
	mustValid(r)
	if r.IsJoker() {
		flag := jokerFlag(r)
		if c.bits&flag != 0 {
			return false
		}
		c.bits |= flag
		return true
	}

	slot := c.slot(r)
	if slot == slotMask {
		return false
	}
	c.bits |= (slot<<1 | 1) << slotShift(r)
	return true
}

// Remove 取出一张牌，没有时返回 false 且不修改状态
func (c *Counter) Remove(r Rank) bool {
	mustValid(r)
	if r.IsJoker() {
		flag := jokerFlag(r)
		if c.bits&flag == 0 {
			return false
		}
		c.bits &^= flag
		return true
	}

	slot := c.slot(r)
	if slot == 0 {
		return false
	}
	shift := slotShift(r)
	c.bits = c.bits&^(slotMask<<shift) | (slot>>1)<<shift
	return true
}

// Count 返回该身份的剩余张数
func (c Counter) Count(r Rank) int {
	mustValid(r)
	if r.IsJoker() {
		if c.bits&jokerFlag(r) == 0 {
			return 0
		}
		return 1
	}

	switch c.slot(r) {
	case 0b0000:
		return 0
	case 0b0001:
		return 1
	case 0b0011:
		return 2
	case 0b0111:
		return 3
	default:
		return 4
	}
}

// entries 按身份升序列出所有非零张数
func (c Counter) entries() []entry {
	var out []entry
	for r := MinRank; r <= MaxRank; r++ {
		if n := c.Count(r); n != 0 {
			out = append(out, entry{rank: r, count: n})
		}
	}
	return out
}

// RemoveHand 从牌堆中整体移除一手牌。
// 任意一张不足时整手失败，牌堆保持调用前的状态。
func (c *Counter) RemoveHand(hand Counter) bool {
	next := *c
	for _, e := range hand.entries() {
		for i := 0; i < e.count; i++ {
			if !next.Remove(e.rank) {
				return false
			}
		}
	}
	*c = next
	return true
}

// AddHand 是 RemoveHand 的逆操作，同样全部成功或全部不变
func (c *Counter) AddHand(hand Counter) bool {
	next := *c
	for _, e := range hand.entries() {
		for i := 0; i < e.count; i++ {
			if !next.Insert(e.rank) {
				return false
			}
		}
	}
	*c = next
	return true
}

// Total 牌的总张数
func (c Counter) Total() int {
	total := 0
	for _, e := range c.entries() {
		total += e.count
	}
	return total
}

func (c Counter) IsEmpty() bool {
	return c.bits == 0
}

func (c Counter) Equal(other Counter) bool {
	return c.bits == other.bits
}

// Parse 解析手牌字符串，例如 "KKKAAA00JJ"。
// 出现无法识别的字符或超过一副牌的张数都视为无效手牌。
func Parse(s string) (Counter, error) {
	var hand Counter
	for _, char := range s {
		rank, err := RankFromChar(char)
		if err != nil {
			return Counter{}, err
		}
		if !hand.Insert(rank) {
			return Counter{}, fmt.Errorf("%w: %s 超过 %d 张", apperrors.ErrInvalidHand, rank, rank.MaxCount())
		}
	}
	return hand, nil
}

// Render 生成两行记牌器表格：表头与对应张数
func (c Counter) Render() string {
	header := make([]string, 0, len(DisplayOrder))
	counts := make([]string, 0, len(DisplayOrder))
	for _, rank := range DisplayOrder {
		header = append(header, rank.String())
		counts = append(counts, strconv.Itoa(c.Count(rank)))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(header, " "))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(counts, " "))
	sb.WriteString("\n")
	return sb.String()
}

func (c Counter) String() string {
	return c.Render()
}
