// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package selfcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/wdamron/valueset/constant"
)

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Iterations = 200
	res, err := Run(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK() {
		for _, f := range res.Failures {
			t.Log(f)
		}
		t.Fatalf("%d property violations", len(res.Failures))
	}
	if res.Checked != 200*len(constant.Kinds) {
		t.Fatalf("checked %d samples", res.Checked)
	}
}

func TestRunSeeds(t *testing.T) {
	for _, seed := range []int64{2, 3, 1 << 40} {
		cfg := Config{Seed: seed, Iterations: 100, ExpectedSize: 1, Kinds: []string{"nint", "nuint"}}
		res, err := Run(cfg, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !res.OK() {
			t.Fatalf("seed %d: %s", seed, res.Failures[0])
		}
	}
}

func TestRunInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Iterations: 0},
		{Iterations: 1, ExpectedSize: -1},
		{Iterations: 1, Kinds: []string{"short"}},
	} {
		if _, err := Run(cfg, nil); err == nil {
			t.Fatalf("expected error for %+v", cfg)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "check.yaml")
	data := []byte("seed: 9\nkinds: [nint, long]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Seed: 9, Iterations: 1000, ExpectedSize: 4, Kinds: []string{"nint", "long"}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config")
	}
	if err := os.WriteFile(path, []byte("seed: [1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
