package input

// Action represents a high-level answer to a yes/no prompt.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm
	ActionDecline
)

// Intent is the high-level description of what the player typed.
type Intent struct {
	Action Action
}

// Confirmed reports whether the intent continues the current flow.
// Anything that is not an explicit confirmation counts as no.
func (i Intent) Confirmed() bool {
	return i.Action == ActionConfirm
}

// bindings maps lower-cased tokens to actions.
var bindings = map[string]Action{
	"y":   ActionConfirm,
	"yes": ActionConfirm,
	"n":   ActionDecline,
	"no":  ActionDecline,
}

// MapToIntent applies the bindings to a lower-cased token.
func MapToIntent(code string) Intent {
	if act, ok := bindings[code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}
