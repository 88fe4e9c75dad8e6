// meta/meta.go
package meta

// WINDOW_SIZE defines how many opponent moves make up one feature window.
const WINDOW_SIZE = 10

// GAME_ROUNDS defines the rounds played per game in an experiment.
const GAME_ROUNDS = 100

// NUM_GAMES defines the games played per matchup in an experiment.
const NUM_GAMES = 10

// GO_ROUTINES defines how many games an experiment runs at once.
const GO_ROUTINES = 4

// L2_STRENGTH is the inverse regularization strength of the classifier.
const L2_STRENGTH = 1.0

// MAX_ITERATIONS caps the optimizer's major iterations per fit.
const MAX_ITERATIONS = 200
