package janggi

type Side int8

const (
	Red  Side = 0
	Blue Side = 1
)

func (s Side) Opponent() Side {
	if s == Red {
		return Blue
	}
	return Red
}

func (s Side) String() string {
	if s == Red {
		return "red"
	}
	return "blue"
}

type Rank int8

const (
	General Rank = iota
	Guard
	Horse
	Elephant
	Chariot
	Cannon
	Soldier
)

var rankNames = [...]string{
	General:  "general",
	Guard:    "guard",
	Horse:    "horse",
	Elephant: "elephant",
	Chariot:  "chariot",
	Cannon:   "cannon",
	Soldier:  "soldier",
}

func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return "unknown"
	}
	return rankNames[r]
}

// Piece carries no position; the Board knows where it stands.
type Piece struct {
	Owner Side
	Rank  Rank
}

func (p Piece) String() string {
	return p.Owner.String() + " " + p.Rank.String()
}

type Outcome int8

const (
	Unfinished Outcome = iota
	RedWon
	BlueWon
)

func (o Outcome) String() string {
	switch o {
	case RedWon:
		return "red_won"
	case BlueWon:
		return "blue_won"
	default:
		return "ongoing"
	}
}

func winFor(s Side) Outcome {
	if s == Red {
		return RedWon
	}
	return BlueWon
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// IsPass reports a turn pass: source and destination are the same square.
func (m Move) IsPass() bool { return m.From == m.To }
