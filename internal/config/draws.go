package config

// DrawConfig selects which automatic draw rules end a game.
type DrawConfig struct {
	// InsufficientMaterial ends the game when neither side can mate.
	InsufficientMaterial bool `json:"insufficient_material"`

	// SeventyFiveMoveRule ends the game after 75 moves by each side without
	// a pawn move or capture.
	SeventyFiveMoveRule bool `json:"seventy_five_move_rule"`

	// FivefoldRepetition ends the game when a position occurs five times.
	FivefoldRepetition bool `json:"fivefold_repetition"`
}

// NewDrawConfig creates a DrawConfig with every automatic rule enabled.
func NewDrawConfig() *DrawConfig {
	return &DrawConfig{
		InsufficientMaterial: true,
		SeventyFiveMoveRule:  true,
		FivefoldRepetition:   true,
	}
}
