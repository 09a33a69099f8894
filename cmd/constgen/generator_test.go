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
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorials(t *testing.T) {
	f := Factorials(MaxTerms)
	require.Len(t, f, MaxTerms)
	assert.Equal(t, 1.0, f[0])
	assert.Equal(t, 1.0, f[1])
	assert.Equal(t, 120.0, f[5])
	assert.Equal(t, 3628800.0, f[10])
	assert.False(t, math.IsInf(f[170], 0), "170! must be finite")
	for i := 2; i <= 22; i++ {
		// Below 23! every factorial is exactly representable.
		assert.Equal(t, f[i-1]*float64(i), f[i], "%d!", i)
	}
	assert.InEpsilon(t, 7.257415615307999e306, f[170], 1e-15)
}

func TestGeneratorRejectsTerms(t *testing.T) {
	for _, n := range []int{0, -1, MaxTerms + 1} {
		g := &Generator{OutputDir: t.TempDir(), Package: "constmath", Terms: n}
		_, err := g.Run()
		require.ErrorIs(t, err, ErrTerms, "terms=%d", n)
	}
}

func TestGeneratorWritesFile(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{OutputDir: dir, Package: "constmath", Terms: 8}
	path, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, OutputFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	src := string(data)
	assert.True(t, strings.HasPrefix(src, "// Code generated by constgen. DO NOT EDIT."))
	assert.Contains(t, src, "package constmath")
	assert.Contains(t, src, "var factorials = [8]float64{")
	assert.Contains(t, src, "\t5040,\n")
}

func TestGeneratedTableIsCurrent(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "constmath", OutputFile))
	require.NoError(t, err)

	dir := t.TempDir()
	g := &Generator{OutputDir: dir, Package: "constmath", Terms: MaxTerms}
	path, err := g.Run()
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "constmath/%s is stale; run go generate ./constmath", OutputFile)
}
