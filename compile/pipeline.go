// Package compile wires the alphabet, syntax, nfa, and dfa packages into
// a single entry point: Compile takes a raw pattern and alphabet
// specification and returns a minimized, complete DFA.
package compile

import (
	"github.com/coregx/regdfa/alphabet"
	"github.com/coregx/regdfa/dfa"
	"github.com/coregx/regdfa/limits"
	"github.com/coregx/regdfa/nfa"
	"github.com/coregx/regdfa/syntax"
)

// Logger receives verbose progress messages between pipeline stages. The
// CLI drivers pass a logger backed by gologger's Verbose level; library
// callers may omit it entirely.
type Logger interface {
	Verbosef(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Verbosef(string, ...interface{}) {}

// options holds the configuration assembled by a chain of Option values.
type options struct {
	limits limits.Limits
	logger Logger
}

// Option configures a Compile call.
type Option func(*options)

// WithLimits overrides the default resource limits (alphabet size, NFA
// and DFA state counts).
func WithLimits(lim limits.Limits) Option {
	return func(o *options) { o.limits = lim }
}

// WithLogger attaches a Logger that receives one Verbosef call after each
// pipeline stage completes.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

// Error wraps a failure from one of the pipeline's stages with the name
// of the stage that raised it, mirroring the teacher's CompileError
// wrapping of NFA errors with pattern context.
type Error struct {
	Stage string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Stage + ": " + e.Cause.Error()
}

// Unwrap returns the underlying stage error, so callers can still
// errors.As into alphabet.Error, syntax.Error, nfa.Error, or dfa.Error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Compile runs the full pipeline: alphabet validation, pattern
// preprocessing, concatenation insertion, parenthesis validation,
// shunting-yard, Thompson construction, subset construction, completion,
// and Hopcroft minimization.
func Compile(pattern, alphabetSpec string, opts ...Option) (*dfa.DFA, error) {
	o := options{limits: limits.Default(), logger: noopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.limits.Validate(); err != nil {
		return nil, &Error{Stage: "limits", Cause: err}
	}

	alpha, err := alphabet.Parse(alphabetSpec, o.limits)
	if err != nil {
		return nil, &Error{Stage: "alphabet", Cause: err}
	}
	o.logger.Verbosef("alphabet: %d symbols", alpha.Len())

	raw, err := alphabet.Preprocess(pattern, alpha)
	if err != nil {
		return nil, &Error{Stage: "alphabet", Cause: err}
	}
	o.logger.Verbosef("preprocessed pattern: %d bytes", len(raw))

	tokens := syntax.InsertConcat(syntax.Tokenize(raw))
	if err := syntax.CheckBalanced(tokens); err != nil {
		return nil, &Error{Stage: "syntax", Cause: err}
	}
	postfix, err := syntax.ToPostfix(tokens)
	if err != nil {
		return nil, &Error{Stage: "syntax", Cause: err}
	}
	o.logger.Verbosef("postfix length: %d tokens", len(postfix))

	machine, err := nfa.Build(postfix, alpha, o.limits)
	if err != nil {
		return nil, &Error{Stage: "nfa", Cause: err}
	}
	o.logger.Verbosef("thompson NFA: %d states", machine.NumStates())

	pre, err := dfa.Build(machine, alpha, o.limits)
	if err != nil {
		return nil, &Error{Stage: "dfa", Cause: err}
	}
	o.logger.Verbosef("subset construction: %d states", pre.NumStates)

	complete := dfa.Complete(pre)
	o.logger.Verbosef("completion: %d states", complete.NumStates)

	minimal, err := dfa.Minimize(complete)
	if err != nil {
		return nil, &Error{Stage: "dfa", Cause: err}
	}
	o.logger.Verbosef("minimization: %d states", minimal.NumStates)

	return minimal, nil
}
