/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package googleexecutor

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/executor/retry"
	"github.com/santosh898/git-ranker/agents/metrics"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/result"
	"github.com/santosh898/git-ranker/agents/toolcall/googletool"
	"google.golang.org/genai"
)

// DefaultModel is used when WithModel is not given.
const DefaultModel = "gemini-2.5-flash"

// Interface runs a Gemini agent conversation.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute binds request into the prompt and runs the tool loop until a
	// tool sets the response or the model answers with JSON text.
	Execute(ctx context.Context, request Request, tools map[string]googletool.Metadata[Response]) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             *genai.Client
	prompt             *promptbuilder.Prompt
	model              string
	temperature        float32
	maxOutputTokens    int32
	systemInstructions *promptbuilder.Prompt
	thinkingBudget     *int32
	submitTool         *googletool.Metadata[Response]
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.RetryConfig
}

// New creates an executor for prompt.
func New[Request promptbuilder.Bindable, Response any](
	client *genai.Client,
	prompt *promptbuilder.Prompt,
	options ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt is required")
	}

	e := &executor[Request, Response]{
		client:          client,
		prompt:          prompt,
		model:           DefaultModel,
		temperature:     0.1,
		maxOutputTokens: 8192,
		genaiMetrics:    metrics.NewGenAI(metrics.MeterName),
		retryConfig:     retry.DefaultRetryConfig(),
	}
	for _, opt := range options {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return e, nil
}

// Execute implements Interface.
func (e *executor[Request, Response]) Execute(
	ctx context.Context,
	request Request,
	tools map[string]googletool.Metadata[Response],
) (resp Response, err error) {
	bound, err := request.Bind(e.prompt)
	if err != nil {
		return resp, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return resp, fmt.Errorf("failed to build prompt: %w", err)
	}

	execCtx := agenttrace.GetExecutionContext(ctx)
	execCtx.Model = e.model
	ctx = agenttrace.WithExecutionContext(ctx, execCtx)
	log := clog.FromContext(ctx).With("model", e.model)

	trace := agenttrace.StartTrace[Response](ctx, prompt)
	defer func() { trace.Complete(resp, err) }()

	tools = e.withSubmitTool(tools)
	config, err := e.newConfig(tools)
	if err != nil {
		return resp, err
	}

	log.With("prompt_length", len(prompt)).With("tools", len(tools)).Info("Creating Google AI chat session")
	chat, err := e.client.Chats.Create(ctx, e.model, config, nil)
	if err != nil {
		return resp, fmt.Errorf("failed to create chat with model %q: %w", e.model, err)
	}

	var final Response
	parts := []*genai.Part{{Text: prompt}}
	for turn := 1; ; turn++ {
		execCtx.TurnNumber = turn
		ctx := agenttrace.WithExecutionContext(ctx, execCtx)

		response, err := retry.RetryWithBackoff(ctx, e.retryConfig, "send_message", isRetryableVertexError, func() (*genai.GenerateContentResponse, error) {
			return chat.Send(ctx, parts...)
		})
		if err != nil {
			return resp, fmt.Errorf("failed to send message: %w", err)
		}
		if usage := response.UsageMetadata; usage != nil {
			e.genaiMetrics.RecordTokens(ctx, e.model, int64(usage.PromptTokenCount), int64(usage.CandidatesTokenCount))
			trace.RecordTokenUsage(e.model, int64(usage.PromptTokenCount), int64(usage.CandidatesTokenCount))
		}

		if len(response.Candidates) == 0 {
			return resp, errors.New("no content generated - no candidates")
		}
		candidate := response.Candidates[0]

		if candidate.FinishReason == genai.FinishReasonMalformedFunctionCall {
			log.With("finish_message", candidate.FinishMessage).Warn("Model attempted a malformed function call, asking it to retry")
			parts = []*genai.Part{{Text: fmt.Sprintf("The function call was malformed. Please try again using the available functions: %v", slices.Sorted(maps.Keys(tools)))}}
			continue
		}
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			return resp, errors.New("no content generated - candidate has no parts")
		}

		var (
			calls []*genai.FunctionCall
			text  string
		)
		for _, part := range candidate.Content.Parts {
			switch {
			case part.Thought:
				trace.Reasoning = append(trace.Reasoning, agenttrace.ReasoningContent{Thinking: part.Text})
			case part.FunctionCall != nil:
				calls = append(calls, part.FunctionCall)
			case part.Text != "":
				text = part.Text
			}
		}

		if len(calls) == 0 {
			if text == "" {
				return resp, errors.New("unexpected response format from model")
			}
			out, err := result.Extract[Response](text)
			if err != nil {
				log.With("response", text).With("error", err).Error("Failed to parse AI response")
				return resp, fmt.Errorf("failed to parse AI response: %w", err)
			}
			log.With("turns", turn).Info("Completed Google AI agent execution")
			return out, nil
		}

		parts = make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			e.genaiMetrics.RecordToolCall(ctx, e.model, call.Name)
			parts = append(parts, &genai.Part{FunctionResponse: e.runTool(ctx, tools, call, trace, &final)})

			if !reflect.ValueOf(final).IsZero() {
				log.With("tool", call.Name).With("turns", turn).Info("Tool set final result, ending conversation")
				return final, nil
			}
		}
	}
}

// withSubmitTool adds the submit tool unless tools already has one by that name.
func (e *executor[Request, Response]) withSubmitTool(tools map[string]googletool.Metadata[Response]) map[string]googletool.Metadata[Response] {
	if e.submitTool == nil {
		return tools
	}
	name := e.submitTool.Definition.Name
	if _, exists := tools[name]; exists {
		return tools
	}
	merged := maps.Clone(tools)
	if merged == nil {
		merged = make(map[string]googletool.Metadata[Response], 1)
	}
	merged[name] = *e.submitTool
	return merged
}

func (e *executor[Request, Response]) newConfig(tools map[string]googletool.Metadata[Response]) (*genai.GenerateContentConfig, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(e.temperature),
		MaxOutputTokens: e.maxOutputTokens,
	}

	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return nil, fmt.Errorf("building system prompt: %w", err)
		}
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}

	if len(tools) > 0 {
		decls := make([]*genai.FunctionDeclaration, 0, len(tools))
		for _, name := range slices.Sorted(maps.Keys(tools)) {
			decls = append(decls, tools[name].Definition)
		}
		config.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	if e.thinkingBudget != nil {
		config.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingBudget:  e.thinkingBudget,
		}
	}
	return config, nil
}

func (e *executor[Request, Response]) runTool(
	ctx context.Context,
	tools map[string]googletool.Metadata[Response],
	call *genai.FunctionCall,
	trace *agenttrace.Trace[Response],
	final *Response,
) *genai.FunctionResponse {
	log := clog.FromContext(ctx).With("tool", call.Name).With("id", call.ID)
	log.Info("Executing tool call")

	meta, ok := tools[call.Name]
	if !ok {
		log.Error("Unknown function call requested by model")
		trace.BadToolCall(call.ID, call.Name, call.Args, fmt.Errorf("unknown function: %q", call.Name))
		return googletool.Error(call, "Unknown function: %s", call.Name)
	}
	return meta.Handler(ctx, call, trace, final)
}
