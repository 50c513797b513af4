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

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/valueset"
	"github.com/wdamron/valueset/constant"
	"github.com/wdamron/valueset/exhaustive"
	"github.com/wdamron/valueset/relation"
)

// switchFile is the YAML description of a switch statement.
type switchFile struct {
	Kind string `yaml:"kind"`
	// Optional constant subject; when set, the arm taken is reported as well.
	Subject string `yaml:"subject"`
	Arms    []struct {
		Name  string `yaml:"name"`
		Tests []struct {
			Op    string `yaml:"op"`
			Value string `yaml:"value"`
		} `yaml:"tests"`
	} `yaml:"arms"`
}

type switchStmt struct {
	factory valueset.Factory
	subject constant.Value
	arms    []exhaustive.Arm
}

func parseSwitch(data []byte, kindOverride string) (switchStmt, error) {
	var sf switchFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return switchStmt{}, fmt.Errorf("parse switch: %w", err)
	}
	if kindOverride != "" {
		sf.Kind = kindOverride
	}
	kind, err := constant.ParseKind(sf.Kind)
	if err != nil {
		return switchStmt{}, err
	}
	f, ok := valueset.ForKind(kind)
	if !ok {
		return switchStmt{}, fmt.Errorf("no value-set factory for kind %s", kind)
	}
	stmt := switchStmt{factory: f, subject: constant.Bad()}
	if sf.Subject != "" {
		if stmt.subject, err = parseLiteral(kind, sf.Subject); err != nil {
			return switchStmt{}, fmt.Errorf("subject: %w", err)
		}
	}
	for i, a := range sf.Arms {
		arm := exhaustive.Arm{Name: a.Name}
		if arm.Name == "" {
			arm.Name = "#" + strconv.Itoa(i)
		}
		for _, t := range a.Tests {
			r, err := relation.Parse(t.Op)
			if err != nil {
				return switchStmt{}, fmt.Errorf("arm %s: %w", arm.Name, err)
			}
			v, err := parseLiteral(kind, t.Value)
			if err != nil {
				return switchStmt{}, fmt.Errorf("arm %s: %w", arm.Name, err)
			}
			arm.Tests = append(arm.Tests, exhaustive.Test{Relation: r, Value: v})
		}
		stmt.arms = append(stmt.arms, arm)
	}
	return stmt, nil
}

// parseLiteral reads a decimal, hex (0x) or octal (0o) literal of a kind. `bad` denotes the invalid constant.
// A literal too wide for a 32-bit kind is kept as a 64-bit constant, so relations against it are resolved
// exactly rather than against its truncation.
func parseLiteral(k constant.Kind, s string) (constant.Value, error) {
	s = strings.TrimSpace(s)
	if s == "bad" {
		return constant.Bad(), nil
	}
	if k.Signed() {
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return constant.Bad(), fmt.Errorf("invalid %s literal %q: %w", k, s, err)
		}
		if k == constant.Int32 && (v < math.MinInt32 || v > math.MaxInt32) {
			return constant.MakeInt64(v), nil
		}
		return constant.MakeSigned(k, v), nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return constant.Bad(), fmt.Errorf("invalid %s literal %q: %w", k, s, err)
	}
	if k == constant.UInt32 && v > math.MaxUint32 {
		return constant.MakeUInt64(v), nil
	}
	return constant.MakeUnsigned(k, v), nil
}

func writeReport(w io.Writer, stmt switchStmt, rep exhaustive.Report) {
	for _, arm := range rep.Arms {
		state := "reachable"
		if !arm.Reachable {
			state = "unreachable"
		}
		fmt.Fprintf(w, "%s: %s %s\n", arm.Name, state, arm.Handled)
	}
	if rep.Exhaustive {
		fmt.Fprintln(w, "exhaustive")
	} else {
		fmt.Fprintf(w, "not exhaustive: missing %s (remaining %s)\n", rep.Missing, rep.Remaining)
	}
	if !stmt.subject.IsBad() {
		if i := exhaustive.Select(stmt.factory, stmt.subject, stmt.arms); i >= 0 {
			fmt.Fprintf(w, "subject %s takes %s\n", stmt.subject, stmt.arms[i].Name)
		} else {
			fmt.Fprintf(w, "subject %s takes no arm\n", stmt.subject)
		}
	}
}

func newSwitchCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "switch [file.yaml]",
		Short: "Report reachable arms and exhaustiveness of a switch described in YAML",
		Long: `Reads a switch description and walks its arms in order, reporting which arms
are reachable and whether the switch handles every value of the subject's kind.

Example:
  kind: nint
  arms:
    - name: negative
      tests: [{op: "<", value: 0}]
    - name: small
      tests: [{op: ">=", value: 0}, {op: "<", value: 10}]
    - name: default`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read switch: %w", err)
			}
			stmt, err := parseSwitch(data, kind)
			if err != nil {
				return err
			}
			rep := exhaustive.Analyze(stmt.factory, stmt.arms)
			logger.Debug("analyzed switch",
				zap.String("file", args[0]),
				zap.Stringer("kind", stmt.factory.Kind()),
				zap.Int("arms", len(stmt.arms)),
				zap.Bool("exhaustive", rep.Exhaustive),
				zap.Strings("unreachable", rep.Unreachable()))
			writeReport(cmd.OutOrStdout(), stmt, rep)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "kind of the subject, overriding the file")
	return cmd
}
