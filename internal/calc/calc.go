// Package calc evaluates expressions over fixed-point decimals written in
// postfix (reverse Polish) notation, such as "1.23 4.56 + 10 *".
//
// Binary operators take two operands from the stack:
//
//	d e +     sum, and likewise - * / for the other arithmetic operators
//	d e pow   d raised to the power of e
//	d b log   logarithm of d to the base b
//
// Unary operators take one operand:
//
//	neg abs inv sqrt ln exp
package calc

import (
	"strings"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/govalues/fpdecimal"
)

// Error is the class of all errors returned by the evaluator.
// Errors of the fpdecimal package are wrapped, so both classes can be checked:
//
//	calc.Error.Has(err) && fpdecimal.ErrUndefined.Has(err)
var Error = errs.Class("calc")

// Evaluator evaluates postfix expressions.
// It holds no state between evaluations and is safe for concurrent use.
type Evaluator struct {
	log *zap.Logger
}

// NewEvaluator returns an evaluator that logs every applied operator at
// debug level. A nil logger disables logging.
func NewEvaluator(log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{log: log}
}

// Evaluate parses the whitespace-separated tokens of input and returns the
// value of the expression.
// Conditions on which fpdecimal panics, such as division by zero or
// overflow, are returned as errors.
func (e *Evaluator) Evaluate(input string) (fpdecimal.Decimal, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return fpdecimal.Decimal{}, Error.New("parsing tokens: %w", err)
	}
	return e.EvaluateTokens(tokens)
}

// EvaluateTokens is like [Evaluator.Evaluate] but takes tokens that are
// already split.
func (e *Evaluator) EvaluateTokens(tokens []string) (d fpdecimal.Decimal, err error) {
	defer func() {
		if r := recover(); r != nil {
			d, err = fpdecimal.Decimal{}, Error.New("%v", r)
		}
	}()
	if len(tokens) == 0 {
		return fpdecimal.Decimal{}, Error.New("no tokens")
	}
	stack, err := e.processTokens(tokens)
	if err != nil {
		return fpdecimal.Decimal{}, Error.New("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return fpdecimal.Decimal{}, Error.New("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, errs.New("no tokens")
	}
	return tokens, nil
}

func (e *Evaluator) processTokens(tokens []string) ([]fpdecimal.Decimal, error) {
	stack := make([]fpdecimal.Decimal, 0, len(tokens))
	var err error
	for _, token := range tokens {
		switch token {
		case "+", "-", "*", "/", "pow", "log":
			stack, err = e.processBinary(stack, token)
		case "neg", "abs", "inv", "sqrt", "ln", "exp":
			stack, err = e.processUnary(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, errs.New("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func (e *Evaluator) processBinary(stack []fpdecimal.Decimal, token string) ([]fpdecimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, errs.New("not enough operands")
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result fpdecimal.Decimal
	var err error
	switch token {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result = left.Quo(right)
	case "pow":
		result, err = left.Pow(right)
	case "log":
		result, err = left.Log(right)
	}
	if err != nil {
		return nil, errs.New("evaluating \"%s %s %s\": %w", left, right, token, err)
	}
	e.log.Debug("applied operator",
		zap.String("operator", token),
		zap.Object("left", left),
		zap.Object("right", right),
		zap.Object("result", result),
	)
	return append(stack, result), nil
}

func (e *Evaluator) processUnary(stack []fpdecimal.Decimal, token string) ([]fpdecimal.Decimal, error) {
	if len(stack) < 1 {
		return nil, errs.New("not enough operands")
	}
	arg := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	var result fpdecimal.Decimal
	var err error
	switch token {
	case "neg":
		result = arg.Neg()
	case "abs":
		result = arg.Abs()
	case "inv":
		result = arg.Inv()
	case "sqrt":
		result, err = arg.Sqrt()
	case "ln":
		result, err = arg.Ln()
	case "exp":
		result = arg.Exp()
	}
	if err != nil {
		return nil, errs.New("evaluating \"%s %s\": %w", arg, token, err)
	}
	e.log.Debug("applied operator",
		zap.String("operator", token),
		zap.Object("arg", arg),
		zap.Object("result", result),
	)
	return append(stack, result), nil
}

func processOperand(stack []fpdecimal.Decimal, token string) ([]fpdecimal.Decimal, error) {
	d, err := fpdecimal.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
