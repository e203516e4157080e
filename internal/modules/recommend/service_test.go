// README: Dispatcher tests for the stream-to-sink reducer logic.
package recommend

import (
	"context"
	"errors"
	"io"
	"testing"

	"wander/internal/ai"
)

// scriptedStream replays a fixed sequence of chunks, optionally failing
// instead of finishing cleanly.
type scriptedStream struct {
	chunks []*ai.Chunk
	err    error
	pos    int
}

func (s *scriptedStream) Next() (*ai.Chunk, error) {
	if s.pos >= len(s.chunks) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, nil
}

// stubProvider hands out a scripted stream, or fails to open one.
type stubProvider struct {
	stream  ai.Stream
	openErr error
}

func (p *stubProvider) RecommendStream(_ context.Context, _ string) (ai.Stream, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	return p.stream, nil
}

// recordingSink captures every sink call in order.
type recordingSink struct {
	places []Place
	texts  []string
}

func (r *recordingSink) ShowPlace(location, caption string) {
	r.places = append(r.places, Place{Location: location, Caption: caption})
}

func (r *recordingSink) ShowText(body string) {
	r.texts = append(r.texts, body)
}

func placeCall(location, caption any) ai.FunctionCall {
	return ai.FunctionCall{
		Name: ai.RecommendPlaceTool,
		Args: map[string]any{ai.ArgLocation: location, ai.ArgCaption: caption},
	}
}

func dispatch(t *testing.T, stream ai.Stream) (*Result, *recordingSink, error) {
	t.Helper()
	svc := NewService(&stubProvider{stream: stream})
	sink := &recordingSink{}
	res, err := svc.Dispatch(context.Background(), "Where is somewhere really cold?", sink)
	return res, sink, err
}

// TestDispatchPlaceInvocation verifies the cold-place scenario: one valid
// invocation renders the place immediately and becomes the terminal result.
func TestDispatchPlaceInvocation(t *testing.T) {
	stream := &scriptedStream{chunks: []*ai.Chunk{
		{Calls: []ai.FunctionCall{placeCall("Oymyakon, Russia", "The coldest inhabited place on Earth.")}},
	}}
	res, sink, err := dispatch(t, stream)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res == nil || res.Place == nil {
		t.Fatalf("expected a Place result, got %+v", res)
	}
	if res.Place.Location != "Oymyakon, Russia" {
		t.Errorf("location = %q", res.Place.Location)
	}
	if len(sink.places) != 1 || len(sink.texts) != 0 {
		t.Errorf("sink calls: places=%d texts=%d, want 1/0", len(sink.places), len(sink.texts))
	}
}

// TestDispatchTextNeverOverwritesPlace verifies that accumulated text arriving
// around a valid invocation does not produce a text fallback.
func TestDispatchTextNeverOverwritesPlace(t *testing.T) {
	stream := &scriptedStream{chunks: []*ai.Chunk{
		{Text: "Let me think about "},
		{Calls: []ai.FunctionCall{placeCall("Svalbard, Norway", "Polar bears outnumber people here.")}},
		{Text: "that for you."},
	}}
	res, sink, err := dispatch(t, stream)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res == nil || res.Place == nil {
		t.Fatalf("expected a Place result, got %+v", res)
	}
	if len(sink.texts) != 0 {
		t.Errorf("text fallback fired despite a valid invocation: %q", sink.texts)
	}
}

// TestDispatchLastInvocationWins verifies fire-as-you-go semantics: every
// valid invocation fires at the sink, and the last one is the terminal state.
func TestDispatchLastInvocationWins(t *testing.T) {
	stream := &scriptedStream{chunks: []*ai.Chunk{
		{Calls: []ai.FunctionCall{placeCall("Yakutsk, Russia", "Cold city.")}},
		{Calls: []ai.FunctionCall{placeCall("Oymyakon, Russia", "Even colder village.")}},
	}}
	res, sink, err := dispatch(t, stream)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(sink.places) != 2 {
		t.Fatalf("expected 2 sink renders, got %d", len(sink.places))
	}
	if sink.places[1].Location != "Oymyakon, Russia" {
		t.Errorf("second render = %q", sink.places[1].Location)
	}
	if res.Place == nil || res.Place.Location != "Oymyakon, Russia" {
		t.Errorf("terminal result should be the later invocation, got %+v", res)
	}
}

// TestDispatchMalformedInvocationsIgnored verifies that invocations with
// missing or non-string arguments are skipped without error and without
// triggering the text fallback on their own.
func TestDispatchMalformedInvocationsIgnored(t *testing.T) {
	cases := []struct {
		name string
		call ai.FunctionCall
	}{
		{"non-string location", placeCall(42, "caption")},
		{"non-string caption", placeCall("Lisbon, Portugal", true)},
		{"missing caption", ai.FunctionCall{Name: ai.RecommendPlaceTool, Args: map[string]any{ai.ArgLocation: "Lisbon, Portugal"}}},
		{"unknown capability", ai.FunctionCall{Name: "bookFlight", Args: map[string]any{ai.ArgLocation: "Lisbon, Portugal", ai.ArgCaption: "x"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stream := &scriptedStream{chunks: []*ai.Chunk{{Calls: []ai.FunctionCall{tc.call}}}}
			res, sink, err := dispatch(t, stream)
			if err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
			if res != nil {
				t.Errorf("expected no result, got %+v", res)
			}
			if len(sink.places)+len(sink.texts) != 0 {
				t.Errorf("sink should not have been called")
			}
		})
	}
}

// TestDispatchTextFallback verifies that a text-only stream shows the exact
// untrimmed concatenation once, in arrival order.
func TestDispatchTextFallback(t *testing.T) {
	stream := &scriptedStream{chunks: []*ai.Chunk{
		{Text: "I can only "},
		{Text: "recommend places,\n"},
		{Text: "not restaurants. "},
	}}
	res, sink, err := dispatch(t, stream)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	want := "I can only recommend places,\nnot restaurants. "
	if res == nil || res.Text != want {
		t.Fatalf("result text = %+v, want %q", res, want)
	}
	if len(sink.texts) != 1 || sink.texts[0] != want {
		t.Errorf("sink texts = %q, want exactly one %q", sink.texts, want)
	}
	if len(sink.places) != 0 {
		t.Errorf("unexpected place renders: %+v", sink.places)
	}
}

// TestDispatchBlankTextProducesNothing verifies that whitespace-only output
// leaves the UI in its prior hidden state.
func TestDispatchBlankTextProducesNothing(t *testing.T) {
	stream := &scriptedStream{chunks: []*ai.Chunk{
		{Text: "  "},
		{Text: "\n\t"},
	}}
	res, sink, err := dispatch(t, stream)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
	if len(sink.places)+len(sink.texts) != 0 {
		t.Errorf("sink should not have been called")
	}
}

// TestDispatchMidStreamError verifies that a transport failure aborts the
// dispatch with no text fallback.
func TestDispatchMidStreamError(t *testing.T) {
	stream := &scriptedStream{
		chunks: []*ai.Chunk{{Text: "Thinking..."}},
		err:    errors.New("connection reset"),
	}
	res, sink, err := dispatch(t, stream)
	if err == nil {
		t.Fatal("expected an error")
	}
	if res != nil {
		t.Errorf("expected no result on error, got %+v", res)
	}
	if len(sink.texts) != 0 {
		t.Errorf("text fallback must not fire on a failed stream: %q", sink.texts)
	}
}

// TestDispatchOpenError verifies that a rejected request surfaces as an error.
func TestDispatchOpenError(t *testing.T) {
	svc := NewService(&stubProvider{openErr: errors.New("quota exceeded")})
	sink := &recordingSink{}
	res, err := svc.Dispatch(context.Background(), "Surprise me!", sink)
	if err == nil {
		t.Fatal("expected an error")
	}
	if res != nil {
		t.Errorf("expected no result, got %+v", res)
	}
}
