package model

// Bot strategy names accepted by autoplay
const (
	BotStrategyRandom = "random" // uniform over the legal directions
	BotStrategyGreedy = "greedy" // largest merge, then most empty cells
)

var botStrategyLabels = map[string]string{
	BotStrategyRandom: "Random",
	BotStrategyGreedy: "Greedy",
}

// BotStrategyDisplayName returns the label shown in summaries.
// Unknown names are returned unchanged.
func BotStrategyDisplayName(strategy string) string {
	if label, ok := botStrategyLabels[strategy]; ok {
		return label
	}
	return strategy
}

// ValidBotStrategies returns the strategy names in the order they are offered
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyGreedy}
}
