/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package params_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/santosh898/git-ranker/agents/toolcall/params"
)

var args = map[string]any{
	"url":      "https://github.com/octo/demo",
	"padded":   "  go.mod \n",
	"blank":    "   ",
	"count":    float64(42),
	"fraction": float64(1.5),
	"flag":     true,
	"null":     nil,
	"payload":  map[string]any{"summary": "ok"},
}

func TestExtract(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v, err := params.Extract[string](args, "url")
		if err != nil {
			t.Fatal(err)
		}
		if v != "https://github.com/octo/demo" {
			t.Errorf("got = %q, wanted = %q", v, "https://github.com/octo/demo")
		}
	})

	t.Run("int from float64", func(t *testing.T) {
		v, err := params.Extract[int](args, "count")
		if err != nil {
			t.Fatal(err)
		}
		if v != 42 {
			t.Errorf("got = %d, wanted = 42", v)
		}
	})

	t.Run("int64 from float64", func(t *testing.T) {
		v, err := params.Extract[int64](args, "count")
		if err != nil {
			t.Fatal(err)
		}
		if v != 42 {
			t.Errorf("got = %d, wanted = 42", v)
		}
	})

	t.Run("fractional int rejected", func(t *testing.T) {
		if _, err := params.Extract[int](args, "fraction"); err == nil {
			t.Error("got = nil error, wanted error")
		}
	})

	t.Run("object", func(t *testing.T) {
		v, err := params.Extract[map[string]any](args, "payload")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(map[string]any{"summary": "ok"}, v); diff != "" {
			t.Errorf("(-want, +got):\n%s", diff)
		}
	})

	for _, name := range []string{"missing", "null"} {
		t.Run(name, func(t *testing.T) {
			_, err := params.Extract[string](args, name)
			if err == nil || err.Error() != name+" parameter is required" {
				t.Errorf("error: got = %v, wanted %q", err, name+" parameter is required")
			}
		})
	}

	t.Run("wrong type", func(t *testing.T) {
		if _, err := params.Extract[string](args, "flag"); err == nil {
			t.Error("got = nil error, wanted error")
		}
	})
}

func TestExtractOptional(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "url", want: "https://github.com/octo/demo"},
		{name: "missing", want: "default"},
		{name: "null", want: "default"},
		{name: "flag", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := params.ExtractOptional(args, tt.name, "default")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got = %v, wanted error = %v", err, tt.wantErr)
			}
			if got != tt.want && !tt.wantErr {
				t.Errorf("got = %q, wanted = %q", got, tt.want)
			}
		})
	}
}

func TestExtractString(t *testing.T) {
	if got, err := params.ExtractString(args, "padded"); err != nil || got != "go.mod" {
		t.Errorf("padded: got = %q, %v, wanted = %q, nil", got, err, "go.mod")
	}
	if _, err := params.ExtractString(args, "blank"); err == nil {
		t.Error("blank: got = nil error, wanted error")
	}
	if _, err := params.ExtractString(args, "missing"); err == nil {
		t.Error("missing: got = nil error, wanted error")
	}
}

func TestErrorWithContext(t *testing.T) {
	fields := map[string]any{"file_path": "go.mod"}
	got := params.ErrorWithContext(errors.New("boom"), fields)

	want := map[string]any{"error": "boom", "file_path": "go.mod"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got):\n%s", diff)
	}
	if _, ok := fields["error"]; ok {
		t.Error("ErrorWithContext modified its fields argument")
	}

	if diff := cmp.Diff(map[string]any{"error": "boom"}, params.ErrorWithContext(errors.New("boom"), nil)); diff != "" {
		t.Errorf("nil fields (-want, +got):\n%s", diff)
	}
}

func TestError(t *testing.T) {
	if diff := cmp.Diff(map[string]any{"error": "bad x: 1"}, params.Error("bad %s: %d", "x", 1)); diff != "" {
		t.Errorf("(-want, +got):\n%s", diff)
	}
}
