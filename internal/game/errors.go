package game

import "errors"

var (
	ErrBusy            = errors.New("a turn is already being processed")
	ErrNoGame          = errors.New("no game in progress")
	ErrEmptyCountry    = errors.New("country is required")
	ErrEmptyCommand    = errors.New("command is required")
	ErrUnknownDecision = errors.New("unknown decision")
	ErrInvalidOption   = errors.New("invalid decision option")
	ErrUnknownTech     = errors.New("unknown technology")
)

// Player-facing status lines.
const (
	MsgInitFailed           = "Dostum, motoru çalıştıramadık."
	MsgTurnFailed           = "Emir işlenirken bir sorun çıktı."
	MsgInsufficientResearch = "Yetersiz Ar-Ge Puanı!"
)

// UserError pairs a short message meant for the player with the
// underlying cause.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + " (" + e.Err.Error() + ")"
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// UserMessage returns the player-facing message carried by err, if any.
func UserMessage(err error) (string, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message, true
	}
	return "", false
}
