package state

import "strings"

// NextTurnCommand is the reserved order that commits the turn and resolves
// every staged decision.
const NextTurnCommand = "Sonraki Tur"

type CommandType string

const (
	CmdNextTurn CommandType = "next_turn"
	CmdOrder    CommandType = "order"
	CmdNone     CommandType = "" // blank input
)

// ParseCommand classifies player input. Orders are returned verbatim; only
// the reserved literal (ignoring surrounding whitespace) commits the turn.
func ParseCommand(input string) (CommandType, string) {
	trimmed := strings.TrimSpace(input)
	switch {
	case trimmed == "":
		return CmdNone, ""
	case trimmed == NextTurnCommand:
		return CmdNextTurn, NextTurnCommand
	default:
		return CmdOrder, input
	}
}
