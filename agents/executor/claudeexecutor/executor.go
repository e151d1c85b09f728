/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"reflect"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
	"github.com/santosh898/git-ranker/agents/agenttrace"
	"github.com/santosh898/git-ranker/agents/executor/retry"
	"github.com/santosh898/git-ranker/agents/metrics"
	"github.com/santosh898/git-ranker/agents/promptbuilder"
	"github.com/santosh898/git-ranker/agents/result"
	"github.com/santosh898/git-ranker/agents/toolcall/claudetool"
)

// DefaultModel is used when WithModel is not given.
const DefaultModel = "claude-sonnet-4@20250514"

// Interface runs a Claude agent conversation.
type Interface[Request promptbuilder.Bindable, Response any] interface {
	// Execute binds request into the prompt and runs the tool loop until a
	// tool sets the response or the model answers with JSON text.
	Execute(ctx context.Context, request Request, tools map[string]claudetool.Metadata[Response]) (Response, error)
}

type executor[Request promptbuilder.Bindable, Response any] struct {
	client               anthropic.Client
	modelName            string
	systemInstructions   *promptbuilder.Prompt
	prompt               *promptbuilder.Prompt
	maxTokens            int64
	temperature          float64
	thinkingBudgetTokens *int64
	submitTool           *claudetool.Metadata[Response]
	genaiMetrics         *metrics.GenAI
	retryConfig          retry.RetryConfig
}

// New creates an executor for prompt.
func New[Request promptbuilder.Bindable, Response any](
	client anthropic.Client,
	prompt *promptbuilder.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if prompt == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		modelName:    DefaultModel,
		prompt:       prompt,
		maxTokens:    8192,
		temperature:  0.1,
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
	tools map[string]claudetool.Metadata[Response],
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
	execCtx.Model = e.modelName
	ctx = agenttrace.WithExecutionContext(ctx, execCtx)
	log := clog.FromContext(ctx).With("model", e.modelName)

	trace := agenttrace.StartTrace[Response](ctx, prompt)
	defer func() { trace.Complete(response, err) }()

	tools = e.withSubmitTool(tools)
	params, err := e.newParams(prompt, tools)
	if err != nil {
		return response, err
	}
	log.With("prompt_length", len(prompt)).With("tools", len(tools)).Info("Starting Claude agent execution")

	var final Response
	for turn := 1; ; turn++ {
		execCtx.TurnNumber = turn
		ctx := agenttrace.WithExecutionContext(ctx, execCtx)

		message, err := retry.RetryWithBackoff(ctx, e.retryConfig, "stream_message", isRetryableClaudeError, func() (anthropic.Message, error) {
			return e.stream(ctx, params)
		})
		if err != nil {
			return response, fmt.Errorf("failed to stream Claude response: %w", err)
		}
		if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
			e.genaiMetrics.RecordTokens(ctx, e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
			trace.RecordTokenUsage(e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
		}

		var (
			toolUses []anthropic.ToolUseBlock
			text     string
		)
		for _, block := range message.Content {
			switch block.Type {
			case "text":
				text = block.Text
			case "tool_use":
				toolUses = append(toolUses, anthropic.ToolUseBlock{ID: block.ID, Name: block.Name, Input: block.Input})
			case "thinking", "redacted_thinking":
				trace.Reasoning = append(trace.Reasoning, agenttrace.ReasoningContent{Thinking: block.Thinking})
			}
		}

		if len(toolUses) == 0 {
			if text == "" {
				return response, errors.New("no content in Claude's response")
			}
			resp, err := result.Extract[Response](text)
			if err != nil {
				log.With("response", text).With("error", err).Error("Failed to parse Claude response")
				return response, fmt.Errorf("failed to parse response: %w", err)
			}
			log.With("turns", turn).Info("Completed Claude agent execution")
			return resp, nil
		}

		params.Messages = append(params.Messages, message.ToParam())
		results := make([]anthropic.ContentBlockParamUnion, 0, len(toolUses))
		for _, toolUse := range toolUses {
			e.genaiMetrics.RecordToolCall(ctx, e.modelName, toolUse.Name)
			block, err := e.runTool(ctx, tools, toolUse, trace, &final)
			if err != nil {
				return response, err
			}
			results = append(results, block)

			if !reflect.ValueOf(final).IsZero() {
				log.With("tool", toolUse.Name).With("turns", turn).Info("Tool set final result, ending conversation")
				return final, nil
			}
		}
		params.Messages = append(params.Messages, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleUser,
			Content: results,
		})
	}
}

// withSubmitTool adds the submit tool unless tools already has one by that name.
func (e *executor[Request, Response]) withSubmitTool(tools map[string]claudetool.Metadata[Response]) map[string]claudetool.Metadata[Response] {
	if e.submitTool == nil {
		return tools
	}
	name := e.submitTool.Definition.Name
	if _, exists := tools[name]; exists {
		return tools
	}
	merged := maps.Clone(tools)
	if merged == nil {
		merged = make(map[string]claudetool.Metadata[Response], 1)
	}
	merged[name] = *e.submitTool
	return merged
}

func (e *executor[Request, Response]) newParams(prompt string, tools map[string]claudetool.Metadata[Response]) (anthropic.MessageNewParams, error) {
	defs := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, meta := range tools {
		def := meta.Definition
		defs = append(defs, anthropic.ToolUnionParam{OfTool: &def})
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.modelName),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(prompt)},
		}},
		Tools:       defs,
		Temperature: anthropic.Float(e.temperature),
	}

	if e.systemInstructions != nil {
		system, err := e.systemInstructions.Build()
		if err != nil {
			return params, fmt.Errorf("building system prompt: %w", err)
		}
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	// Extended thinking requires a temperature of 1.
	if e.thinkingBudgetTokens != nil {
		params.Temperature = anthropic.Float(1.0)
		params.Thinking = anthropic.ThinkingConfigParamUnion{
			OfEnabled: &anthropic.ThinkingConfigEnabledParam{BudgetTokens: *e.thinkingBudgetTokens},
		}
	}
	return params, nil
}

func (e *executor[Request, Response]) stream(ctx context.Context, params anthropic.MessageNewParams) (anthropic.Message, error) {
	stream := e.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	var msg anthropic.Message
	for stream.Next() {
		if err := msg.Accumulate(stream.Current()); err != nil {
			return msg, fmt.Errorf("failed to accumulate event: %w", err)
		}
	}
	return msg, stream.Err()
}

// runTool executes one tool use and encodes its result block.
func (e *executor[Request, Response]) runTool(
	ctx context.Context,
	tools map[string]claudetool.Metadata[Response],
	toolUse anthropic.ToolUseBlock,
	trace *agenttrace.Trace[Response],
	final *Response,
) (anthropic.ContentBlockParamUnion, error) {
	log := clog.FromContext(ctx).With("tool", toolUse.Name).With("id", toolUse.ID)
	log.Info("Executing tool call")

	var out map[string]any
	if meta, ok := tools[toolUse.Name]; ok {
		out = meta.Handler(ctx, toolUse, trace, final)
	} else {
		log.Error("Unknown tool requested")
		err := fmt.Errorf("unknown tool: %q", toolUse.Name)
		trace.BadToolCall(toolUse.ID, toolUse.Name, map[string]any{"input": string(toolUse.Input)}, err)
		out = claudetool.Error("%v", err)
	}

	body, err := json.Marshal(out)
	if err != nil {
		return anthropic.ContentBlockParamUnion{}, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	return anthropic.ContentBlockParamUnion{
		OfToolResult: &anthropic.ToolResultBlockParam{
			ToolUseID: toolUse.ID,
			Content: []anthropic.ToolResultBlockParamContentUnion{{
				OfText: &anthropic.TextBlockParam{Text: string(body)},
			}},
		},
	}, nil
}
