// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strconv"

	"github.com/remyoudompheng/bigfft"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// MaxTerms is the number of factorials below the float64 overflow
// threshold: 170! is finite, 171! is not.
const MaxTerms = 171

// OutputFile is the name of the emitted file inside OutputDir.
const OutputFile = "z_tables.go"

// ErrTerms is returned when the requested table length is out of range.
var ErrTerms = errors.New("terms out of range")

// Generator emits the table file.
type Generator struct {
	OutputDir string
	Package   string
	Terms     int
	Verbose   bool

	// Out receives progress output; nil means os.Stdout.
	Out io.Writer
}

// table is one generated array.
type table struct {
	kind   string // human readable, lower case
	name   string // Go identifier
	doc    string
	values []float64
}

// Run computes the tables and writes them to OutputDir/OutputFile,
// returning the written path.
func (g *Generator) Run() (string, error) {
	if g.Terms < 1 || g.Terms > MaxTerms {
		return "", fmt.Errorf("terms %d: %w (want 1..%d)", g.Terms, ErrTerms, MaxTerms)
	}
	if g.Package == "" {
		return "", fmt.Errorf("empty package name")
	}

	tables := []table{{
		kind:   "factorial",
		name:   "factorials",
		doc:    fmt.Sprintf("factorials holds n! for 0 <= n <= %d, each rounded once from the exact integer.", g.Terms-1),
		values: Factorials(g.Terms),
	}}

	src, err := g.Source(tables)
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.OutputDir, OutputFile)
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return "", fmt.Errorf("write tables: %w", err)
	}

	if g.Verbose {
		out := g.Out
		if out == nil {
			out = os.Stdout
		}
		title := cases.Title(language.English)
		for _, t := range tables {
			fmt.Fprintf(out, "%s table %s: %d entries\n", title.String(t.kind), t.name, len(t.values))
		}
	}
	return path, nil
}

// Source renders the unformatted Go source for tables.
func (g *Generator) Source(tables []table) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by constgen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "\npackage %s\n\n", g.Package)
	for _, t := range tables {
		if len(t.values) == 0 {
			return nil, fmt.Errorf("table %s: no values", t.name)
		}
		fmt.Fprintf(&buf, "// %s\n", t.doc)
		fmt.Fprintf(&buf, "var %s = [%d]float64{\n", t.name, len(t.values))
		literals := lo.Map(t.values, func(v float64, _ int) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})
		for _, lit := range literals {
			fmt.Fprintf(&buf, "\t%s,\n", lit)
		}
		fmt.Fprintf(&buf, "}\n\n")
	}
	return buf.Bytes(), nil
}

// Factorials returns 0!, 1!, ..., (n-1)! rounded to nearest float64.
func Factorials(n int) []float64 {
	out := make([]float64, n)
	acc := big.NewInt(1)
	for i := range n {
		if i > 1 {
			acc = bigfft.Mul(acc, big.NewInt(int64(i)))
		}
		f, _ := new(big.Float).SetInt(acc).Float64()
		out[i] = f
	}
	return out
}
