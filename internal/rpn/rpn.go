// Package rpn evaluates integer expressions written in postfix
// (reverse Polish) notation, such as "2 3 + 4 *".
package rpn

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/govalues/bigint"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoTokens is returned for an empty expression.
	ErrNoTokens = errors.New("no tokens")
	// ErrNotEnoughOperands is returned when an operator finds too few
	// values on the stack.
	ErrNotEnoughOperands = errors.New("not enough operands")
)

// maxTokenSize bounds a single token read by [Evaluator.EvalReader].
// It leaves room for leading zeros beyond [bigint.MaxDigits].
const maxTokenSize = 1 << 20

// Evaluator evaluates postfix expressions.
// Binary operators: + - * / %.
// Unary operators: neg, abs, inc, dec.
// Every other token is parsed with [bigint.Parse].
type Evaluator struct {
	log logrus.FieldLogger
}

// Option configures an [Evaluator].
type Option func(*Evaluator)

// WithLogger makes the evaluator log every reduction at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(ev *Evaluator) {
		ev.log = l
	}
}

// New returns an evaluator. By default it logs nothing.
func New(opts ...Option) *Evaluator {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	ev := &Evaluator{log: silent}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Eval evaluates a whitespace-separated expression.
func (ev *Evaluator) Eval(input string) (bigint.Int, error) {
	return ev.EvalTokens(strings.Fields(input))
}

// EvalReader evaluates an expression read from r.
// Tokens may be separated by any white space, including newlines.
func (ev *Evaluator) EvalReader(r io.Reader) (bigint.Int, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return bigint.Int{}, errors.Wrap(err, "reading tokens")
	}
	return ev.EvalTokens(tokens)
}

// EvalTokens evaluates an already tokenized expression.
func (ev *Evaluator) EvalTokens(tokens []string) (bigint.Int, error) {
	if len(tokens) == 0 {
		return bigint.Int{}, ErrNoTokens
	}
	stack := make([]bigint.Int, 0, len(tokens))
	var err error
	for _, token := range tokens {
		switch token {
		case "+", "-", "*", "/", "%":
			stack, err = ev.processBinary(stack, token)
		case "neg", "abs", "inc", "dec":
			stack, err = ev.processUnary(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return bigint.Int{}, errors.Wrapf(err, "processing token %q", truncate(token))
		}
	}
	if len(stack) != 1 {
		return bigint.Int{}, errors.Newf("post-processed stack contains %v item(s), expected exactly one item", len(stack))
	}
	return stack[0], nil
}

func (ev *Evaluator) processBinary(stack []bigint.Int, token string) ([]bigint.Int, error) {
	if len(stack) < 2 {
		return nil, ErrNotEnoughOperands
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bigint.Int
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "%":
		result, err = left.Rem(right)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%v %s %v\"", left, token, right)
	}
	ev.log.WithFields(logrus.Fields{
		"op":     token,
		"digits": result.Prec(),
	}).Debug("reduced")
	return append(stack, result), nil
}

func (ev *Evaluator) processUnary(stack []bigint.Int, token string) ([]bigint.Int, error) {
	if len(stack) < 1 {
		return nil, ErrNotEnoughOperands
	}
	result := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	var err error
	switch token {
	case "neg":
		result = result.Neg()
	case "abs":
		result = result.Abs()
	case "inc":
		err = result.Inc()
	case "dec":
		err = result.Dec()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "evaluating \"%s %v\"", token, result)
	}
	ev.log.WithFields(logrus.Fields{
		"op":     token,
		"digits": result.Prec(),
	}).Debug("reduced")
	return append(stack, result), nil
}

func processOperand(stack []bigint.Int, token string) ([]bigint.Int, error) {
	d, err := bigint.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

func truncate(s string) string {
	const n = 24
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
