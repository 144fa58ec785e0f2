package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"strings"
	"time"

	"github.com/Divyanshgupta04/lern-deployment/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. The name identifies the
// configured backend ("gemini", "openai", ...) in recorded events.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, name: name, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.append(ctx, data)

	return resp, err
}

// Stream records a single event once the chunk sequence finishes, carrying
// the accumulated text length and any terminal error.
func (l *LoggingProvider) Stream(ctx context.Context, req Request) iter.Seq2[string, error] {
	start := time.Now()
	purpose := PurposeFrom(ctx)
	inner := l.inner.Stream(ctx, req)

	return func(yield func(string, error) bool) {
		var streamErr error
		var chars int

		defer func() {
			data := store.LLMRequestEventData{
				Provider:     l.name,
				Model:        l.inner.ModelID(),
				Purpose:      purpose,
				LatencyMs:    time.Since(start).Milliseconds(),
				Success:      streamErr == nil,
				RequestBody:  serializeRequest(req),
				ResponseBody: fmt.Sprintf("(streamed %d chars)", chars),
			}
			if streamErr != nil {
				data.ErrorMessage = streamErr.Error()
			}
			l.append(ctx, data)
		}()

		for chunk, err := range inner {
			if err != nil {
				streamErr = err
				yield("", err)
				return
			}
			chars += len(chunk)
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// append logs the event but never fails the request if logging fails.
func (l *LoggingProvider) append(ctx context.Context, data store.LLMRequestEventData) {
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
