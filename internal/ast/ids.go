package ast

type (
	// главные сущности
	ExprID uint32
	StmtID uint32
	PropID uint32
	// подсущности
	PayloadID uint32
)

const (
	NoExprID    ExprID    = 0
	NoStmtID    StmtID    = 0
	NoPropID    PropID    = 0
	NoPayloadID PayloadID = 0
)

func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id PropID) IsValid() bool    { return id != NoPropID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
