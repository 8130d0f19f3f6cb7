package model

// Points is a score delta or running total. Totals may go negative.
type Points int

// FinishRoundResult is the verdict of the end-of-game check
type FinishRoundResult string

const (
	Normal       FinishRoundResult = "NORMAL"        // Play continues
	GameFinished FinishRoundResult = "GAME_FINISHED" // Terminal condition reached
)
