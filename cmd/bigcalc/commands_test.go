package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/govalues/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := RootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEvalCmd(t *testing.T) {
	t.Run("args", func(t *testing.T) {
		out, _, err := execute(t, "", "eval", "123456789123456789", "987654321987654321", "*")
		require.NoError(t, err)
		assert.Equal(t, "121932631356500531347203169112635269\n", out)
	})

	t.Run("stdin", func(t *testing.T) {
		out, _, err := execute(t, "100\n3\n%\n", "eval")
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)
	})

	t.Run("error", func(t *testing.T) {
		out, errOut, err := execute(t, "", "eval", "1", "0", "/")
		assert.True(t, errors.Is(err, bigint.ErrDivisionByZero), "got %v", err)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "evaluation failed")
	})

	t.Run("verbose", func(t *testing.T) {
		_, errOut, err := execute(t, "", "eval", "--verbose", "--log-format", "json", "2", "3", "+")
		require.NoError(t, err)
		line := strings.SplitN(strings.TrimSpace(errOut), "\n", 2)[0]
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "debug", entry["level"])
		assert.Equal(t, "+", entry["op"])
	})

	t.Run("log format", func(t *testing.T) {
		_, _, err := execute(t, "", "eval", "--log-format", "xml", "1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log format")
	})
}

func TestCheckCmd(t *testing.T) {
	t.Run("normalize", func(t *testing.T) {
		out, _, err := execute(t, "+0001 -0\n  00\t-000123456789\n", "check")
		require.NoError(t, err)
		assert.Equal(t, "1\n0\n0\n-123456789\n", out)
	})

	t.Run("sum", func(t *testing.T) {
		out, _, err := execute(t, "999999 1\n-5\n", "check", "--sum")
		require.NoError(t, err)
		assert.Equal(t, "999995\n", out)
	})

	t.Run("empty", func(t *testing.T) {
		out, _, err := execute(t, "", "check", "--sum")
		require.NoError(t, err)
		assert.Equal(t, "0\n", out)
	})

	t.Run("error", func(t *testing.T) {
		out, errOut, err := execute(t, "1 2 x3\n", "check")
		assert.True(t, errors.Is(err, bigint.ErrInvalidSyntax), "got %v", err)
		assert.Contains(t, err.Error(), "token 3")
		assert.Equal(t, "1\n2\n", out)
		assert.Contains(t, errOut, "invalid integer")
	})

	t.Run("overflow", func(t *testing.T) {
		maxInt := strings.Repeat("9", bigint.MaxDigits)
		_, _, err := execute(t, maxInt+" 1", "check", "--sum")
		assert.True(t, errors.Is(err, bigint.ErrOverflow), "got %v", err)
	})
}
