package rpn

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/govalues/bigint"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Eval(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			input, want string
		}{
			{"42", "42"},
			{"123456789 1 +", "123456790"},
			{"1000000 1 -", "999999"},
			{"999999999999 2 *", "1999999999998"},
			{"100 3 /", "33"},
			{"100 3 %", "1"},
			{"-5 3 +", "-2"},
			{"7 2 /", "3"},
			{"-7 2 /", "-3"},
			{"-7 2 %", "-1"},
			{"2 3 + 4 *", "20"},
			{"5 neg", "-5"},
			{"-5 abs", "5"},
			{"999999 inc", "1000000"},
			{"0 dec", "-1"},
			{"  1\t2\n+  ", "3"},
		}
		ev := New()
		for _, tt := range tests {
			got, err := ev.Eval(tt.input)
			require.NoError(t, err, "Eval(%q)", tt.input)
			assert.Equal(t, tt.want, got.String(), "Eval(%q)", tt.input)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			input string
			want  error
		}{
			{"", ErrNoTokens},
			{"   ", ErrNoTokens},
			{"+", ErrNotEnoughOperands},
			{"1 +", ErrNotEnoughOperands},
			{"neg", ErrNotEnoughOperands},
			{"1 0 /", bigint.ErrDivisionByZero},
			{"1 0 %", bigint.ErrDivisionByZero},
			{"1.5", bigint.ErrInvalidSyntax},
			{"1 x +", bigint.ErrInvalidSyntax},
			{strings.Repeat("9", bigint.MaxDigits) + " 1 +", bigint.ErrOverflow},
			{strings.Repeat("9", bigint.MaxDigits) + " inc", bigint.ErrOverflow},
		}
		ev := New()
		for _, tt := range tests {
			_, err := ev.Eval(tt.input)
			assert.True(t, errors.Is(err, tt.want), "Eval(%.30q) = %v, want %v", tt.input, err, tt.want)
		}
	})

	t.Run("extra", func(t *testing.T) {
		_, err := New().Eval("1 2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contains 2 item(s), expected exactly one item")

		maxInt := strings.Repeat("9", bigint.MaxDigits)
		_, err = New().Eval(strings.Repeat(maxInt+" ", 20))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contains 20 item(s)")
		assert.Less(t, len(err.Error()), 200)
	})
}

func TestEvaluator_EvalReader(t *testing.T) {
	long := "1" + strings.Repeat("0", 10) + "\n" + strings.Repeat("0", 100000) + "7\n+\n"
	got, err := New().EvalReader(strings.NewReader(long))
	require.NoError(t, err)
	assert.Equal(t, "10000000007", got.String())

	_, err = New().EvalReader(strings.NewReader("\n\n"))
	assert.True(t, errors.Is(err, ErrNoTokens), "got %v", err)
}

func TestEvaluator_logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	got, err := New(WithLogger(logger)).Eval("2 3 + neg")
	require.NoError(t, err)
	assert.Equal(t, "-5", got.String())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, "+", entries[0].Data["op"])
	assert.Equal(t, 1, entries[0].Data["digits"])
	assert.Equal(t, "neg", entries[1].Data["op"])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))
	assert.Equal(t, strings.Repeat("1", 24)+"...", truncate(strings.Repeat("1", 30)))
}
