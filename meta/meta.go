// meta/meta.go
package meta

// LEARNING_RATE is the default TD step size of the value learner.
const LEARNING_RATE = 0.1

// EXPLORATION_RATE is the default probability of an exploratory move.
const EXPLORATION_RATE = 0.01

// Terminal values of the value learner.
const (
	WIN_VALUE  = 1.0
	DRAW_VALUE = 0.5
	LOSS_VALUE = 0.0
)

// INIT_VALUE is the starting estimate of moves that do not end the game.
const INIT_VALUE = 0.6

// BATTLES defines the number of battles in an evaluation run.
const BATTLES = 50

// GAMES_PER_BATTLE defines the number of games in a battle.
const GAMES_PER_BATTLE = 100

// PROGRESS_INTERVAL defines how many games pass between progress reports.
const PROGRESS_INTERVAL = 1000
