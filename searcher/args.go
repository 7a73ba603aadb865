package searcher

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// DivDelta keeps win rates and exploration terms finite for unvisited nodes
const DivDelta = 1e-9

// Rollout outcomes from the perspective of the player who moved into a node
const (
	Win  = 1
	Draw = 0
	Loss = -Win
)
