/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/santosh898/git-ranker/agents/metaagent"
	"github.com/santosh898/git-ranker/ghrepo"
)

type config struct {
	GitHubPAT         string `env:"GITHUB_PAT"`
	GitHubAPIURL      string `env:"GITHUB_API_URL,default=https://api.github.com/"`
	GitHubConcurrency int    `env:"GITHUB_CONCURRENCY,default=1"`

	Model              string `env:"MODEL,default=grok-beta"`
	XAIAPIKey          string `env:"XAI_API_KEY"`
	XAIBaseURL         string `env:"XAI_BASE_URL,default=https://api.x.ai/v1"`
	AnthropicAPIKey    string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey       string `env:"GEMINI_API_KEY"`
	GoogleCloudProject string `env:"GOOGLE_CLOUD_PROJECT"`
	GoogleCloudRegion  string `env:"GOOGLE_CLOUD_REGION,default=us-east5"`

	LogLevel        slog.Level `env:"LOG_LEVEL,default=info"`
	MetricsTextfile string     `env:"METRICS_TEXTFILE"`
}

func (c *config) github(ctx context.Context) (*ghrepo.Client, error) {
	return ghrepo.NewClient(ctx, ghrepo.Config{
		Token:       c.GitHubPAT,
		BaseURL:     c.GitHubAPIURL,
		Concurrency: c.GitHubConcurrency,
	})
}

func (c *config) backend() metaagent.Backend {
	return metaagent.Backend{
		ProjectID:       c.GoogleCloudProject,
		Region:          c.GoogleCloudRegion,
		AnthropicAPIKey: c.AnthropicAPIKey,
		GeminiAPIKey:    c.GeminiAPIKey,
		XAIAPIKey:       c.XAIAPIKey,
		XAIBaseURL:      c.XAIBaseURL,
	}
}

// writeMetrics dumps every metric registered with the default registry in
// the node exporter textfile format.
func writeMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
