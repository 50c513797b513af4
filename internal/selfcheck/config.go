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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wdamron/valueset/constant"
)

// Config controls a self-check run.
type Config struct {
	// Seed of the random source; the same seed reproduces the same samples.
	Seed int64 `yaml:"seed"`
	// Number of samples checked per kind.
	Iterations int `yaml:"iterations"`
	// Expected number of intervals in each random value-set.
	ExpectedSize int `yaml:"expected_size"`
	// Kind names (e.g. `nint`) to check. All supported kinds are checked if empty.
	Kinds []string `yaml:"kinds"`
}

func DefaultConfig() Config {
	return Config{Seed: 1, Iterations: 1000, ExpectedSize: 4}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return errors.New("iterations must be positive")
	}
	if c.ExpectedSize < 0 {
		return errors.New("expected size must not be negative")
	}
	_, err := c.kinds()
	return err
}

func (c Config) kinds() ([]constant.Kind, error) {
	if len(c.Kinds) == 0 {
		return constant.Kinds[:], nil
	}
	kinds := make([]constant.Kind, 0, len(c.Kinds))
	for _, name := range c.Kinds {
		k, err := constant.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
