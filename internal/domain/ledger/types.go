package ledger

type Type string

const (
	TypeOpening        Type = "OPENING"
	TypeSale           Type = "SALE"
	TypeRefund         Type = "REFUND"
	TypeTip            Type = "TIP"
	TypeWithdrawal     Type = "WITHDRAWAL"
	TypeAdjustmentUp   Type = "ADJUSTMENT_UP"
	TypeAdjustmentDown Type = "ADJUSTMENT_DOWN"
	TypeClose          Type = "CLOSE"
	TypePause          Type = "PAUSE"
	TypeUnpause        Type = "UNPAUSE"
)

// AllTypes lists every transaction type in a stable order.
var AllTypes = []Type{
	TypeOpening, TypeSale, TypeRefund, TypeTip, TypeWithdrawal,
	TypeAdjustmentUp, TypeAdjustmentDown, TypeClose, TypePause, TypeUnpause,
}

func (t Type) IsValid() bool {
	return t.Effect() != effectUnknown
}

// IsMonetary reports whether the type carries an amount that moves the balance.
func (t Type) IsMonetary() bool {
	e := t.Effect()
	return e == EffectCredit || e == EffectDebit
}

func (t Type) String() string { return string(t) }

// Effect describes how a transaction type acts on its drawer.
type Effect int

const (
	effectUnknown Effect = iota
	EffectCredit
	EffectDebit
	EffectOpen
	EffectClose
	EffectPause
	EffectUnpause
)

func (t Type) Effect() Effect {
	switch t {
	case TypeSale, TypeTip, TypeAdjustmentUp:
		return EffectCredit
	case TypeRefund, TypeWithdrawal, TypeAdjustmentDown:
		return EffectDebit
	case TypeOpening:
		return EffectOpen
	case TypeClose:
		return EffectClose
	case TypePause:
		return EffectPause
	case TypeUnpause:
		return EffectUnpause
	default:
		return effectUnknown
	}
}
