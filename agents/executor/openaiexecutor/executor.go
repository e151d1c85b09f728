/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/executor/retry"
	"github.com/santosh898/git-ranker/agents/metrics"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/result"
	"github.com/santosh898/git-ranker/agents/toolcall/openaitool"
)

const (
	// DefaultModel is used when WithModel is not given.
	DefaultModel = "grok-beta"

	// DefaultBaseURL is the xAI OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.x.ai/v1"
)

// Interface runs a chat completions agent conversation.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute binds request into the prompt and runs the tool loop until a
	// tool sets the response or the model answers with JSON text.
	Execute(ctx context.Context, request Request, tools map[string]openaitool.Metadata[Response]) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client             openai.Client
	model              string
	prompt             *promptbuilder.Prompt
	systemInstructions *promptbuilder.Prompt
	maxTokens          int64
	temperature        float64
	maxTurns           int
	submitTool         *openaitool.Metadata[Response]
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.RetryConfig
}

// New creates an executor for prompt.
func New[Request promptbuilder.Bindable, Response any](
	client openai.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		model:        DefaultModel,
		prompt:       prompt,
		maxTokens:    8192,
		temperature:  0.1,
		maxTurns:     50,
		genaiMetrics: metrics.NewGenAI(metrics.MeterName),
		retryConfig:  retry.DefaultRetryConfig(),
	}
	for _, opt := range opts {
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
	tools map[string]openaitool.Metadata[Response],
) (response Response, err error) {
	bound, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}
	prompt, err := bound.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	execCtx := agenttrace.GetExecutionContext(ctx)
	execCtx.Model = e.model
	ctx = agenttrace.WithExecutionContext(ctx, execCtx)
	log := clog.FromContext(ctx).With("model", e.model)

	trace := agenttrace.StartTrace[Response](ctx, prompt)
	defer func() { trace.Complete(response, err) }()

	tools = e.withSubmitTool(tools)
	params, err := e.newParams(prompt, tools)
	if err != nil {
		return response, err
	}
	log.With("prompt_length", len(prompt)).With("tools", len(tools)).Info("Starting chat completions agent execution")

	var final Response
	for turn := 1; turn <= e.maxTurns; turn++ {
		execCtx.TurnNumber = turn
		ctx := agenttrace.WithExecutionContext(ctx, execCtx)

		completion, err := retry.RetryWithBackoff(ctx, e.retryConfig, "chat_completion", isRetryableOpenAIError, func() (*openai.ChatCompletion, error) {
			return e.client.Chat.Completions.New(ctx, params)
		})
		if err != nil {
			return response, fmt.Errorf("failed to create chat completion: %w", err)
		}
		if u := completion.Usage; u.PromptTokens > 0 || u.CompletionTokens > 0 {
			e.genaiMetrics.RecordTokens(ctx, e.model, u.PromptTokens, u.CompletionTokens)
			trace.RecordTokenUsage(e.model, u.PromptTokens, u.CompletionTokens)
		}
		if len(completion.Choices) == 0 {
			return response, errors.New("no choices in chat completion")
		}
		message := completion.Choices[0].Message

		if len(message.ToolCalls) == 0 {
			if message.Content == "" {
				return response, errors.New("no content in model response")
			}
			out, err := result.Extract[Response](message.Content)
			if err != nil {
				log.With("response", message.Content).With("error", err).Error("Failed to parse model response")
				return response, fmt.Errorf("failed to parse response: %w", err)
			}
			log.With("turns", turn).Info("Completed chat completions agent execution")
			return out, nil
		}

		params.Messages = append(params.Messages, message.ToParam())
		for _, call := range message.ToolCalls {
			e.genaiMetrics.RecordToolCall(ctx, e.model, call.Function.Name)
			msg, err := e.runTool(ctx, tools, call, trace, &final)
			if err != nil {
				return response, err
			}
			if !reflect.ValueOf(final).IsZero() {
				log.With("tool", call.Function.Name).With("turns", turn).Info("Tool set final result, ending conversation")
				return final, nil
			}
			params.Messages = append(params.Messages, msg)
		}
	}
	return response, fmt.Errorf("no result after %d turns", e.maxTurns)
}

// withSubmitTool adds the submit tool unless tools already has one by that name.
func (e *executor[Request, Response]) withSubmitTool(tools map[string]openaitool.Metadata[Response]) map[string]openaitool.Metadata[Response] {
	if e.submitTool == nil {
		return tools
	}
	name := e.submitTool.Definition.Function.Name
	if _, exists := tools[name]; exists {
		return tools
	}
	merged := maps.Clone(tools)
	if merged == nil {
		merged = make(map[string]openaitool.Metadata[Response], 1)
	}
	merged[name] = *e.submitTool
	return merged
}

func (e *executor[Request, Response]) newParams(prompt string, tools map[string]openaitool.Metadata[Response]) (openai.ChatCompletionNewParams, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return openai.ChatCompletionNewParams{}, fmt.Errorf("building system prompt: %w", err)
		}
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(e.model),
		Messages:    messages,
		Temperature: openai.Float(e.temperature),
		MaxTokens:   openai.Int(e.maxTokens),
	}
	for _, name := range slices.Sorted(maps.Keys(tools)) {
		params.Tools = append(params.Tools, tools[name].Definition)
	}
	return params, nil
}

// runTool executes one tool call and encodes its result as a tool message.
func (e *executor[Request, Response]) runTool(
	ctx context.Context,
	tools map[string]openaitool.Metadata[Response],
	call openai.ChatCompletionMessageToolCall,
	trace *agenttrace.Trace[Response],
	final *Response,
) (openai.ChatCompletionMessageParamUnion, error) {
	log := clog.FromContext(ctx).With("tool", call.Function.Name).With("id", call.ID)
	log.Info("Executing tool call")

	var out map[string]any
	if meta, ok := tools[call.Function.Name]; ok {
		out = meta.Handler(ctx, call, trace, final)
	} else {
		log.Error("Unknown tool requested")
		err := fmt.Errorf("unknown tool: %q", call.Function.Name)
		trace.BadToolCall(call.ID, call.Function.Name, map[string]any{"arguments": call.Function.Arguments}, err)
		out = map[string]any{"error": err.Error()}
	}

	body, err := json.Marshal(out)
	if err != nil {
		return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return openai.ToolMessage(string(body), call.ID), nil
}
