package ai

// RecommendPlaceTool is the single capability advertised to the model.
// The model calls it with a place name and a one-line caption instead of
// (or in addition to) returning free text.
const RecommendPlaceTool = "recommendPlace"

// Argument names of the recommendPlace tool.
const (
	ArgLocation = "location"
	ArgCaption  = "caption"
)

// FunctionCall is a capability invocation carried by a stream chunk.
// Args values are decoded JSON, so string arguments arrive as Go strings.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// Chunk is one partial response from a streaming generation.
// A chunk may carry text, capability invocations, both, or neither.
type Chunk struct {
	Text  string
	Calls []FunctionCall
}
