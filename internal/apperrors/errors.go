package apperrors

// 错误码
const (
	ErrCodeInvalidHand    = 1001
	ErrCodeHandNotInDeck  = 1002
	ErrCodeInvalidRank    = 1003
	ErrCodeNothingToUndo  = 1004
	ErrCodeNotStarted     = 1005
	ErrCodeAlreadyStarted = 1006
)

// GameError 记牌器错误（核心与界面共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidHand    = &GameError{Code: ErrCodeInvalidHand, Message: "无效的手牌"}
	ErrHandNotInDeck  = &GameError{Code: ErrCodeHandNotInDeck, Message: "剩余牌中没有这手牌"}
	ErrInvalidRank    = &GameError{Code: ErrCodeInvalidRank, Message: "无效的点数"}
	ErrNothingToUndo  = &GameError{Code: ErrCodeNothingToUndo, Message: "没有可撤销的出牌"}
	ErrNotStarted     = &GameError{Code: ErrCodeNotStarted, Message: "请先输入你的手牌"}
	ErrAlreadyStarted = &GameError{Code: ErrCodeAlreadyStarted, Message: "手牌已录入"}
)
