package recommend

// Presets are the fixed one-click prompts offered by the UI.
var Presets = []string{
	"Where is somewhere really cold?",
	"Where is somewhere tropical and remote?",
	"Where can I see something no one else has heard of?",
	"Where should I go for unbelievable food?",
	"Surprise me!",
}
