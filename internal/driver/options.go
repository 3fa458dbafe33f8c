package driver

import (
	"eslex/internal/config"
	"eslex/internal/lexer"
	"eslex/internal/observ"
	"eslex/internal/token"
)

// Options configures Tokenize and TokenizeDir.
type Options struct {
	// Context selects between the token tracker and fixed flags.
	Context config.ContextMode
	// Operator and ASI are the fixed flags, or the tracker's initial state.
	Operator bool
	ASI      bool
	// Reserved overrides the reserved-word table; nil means the default.
	Reserved token.ReservedTable
	// MaxDiagnostics bounds each file's bag; lexing stops once it is full. 0 means unlimited.
	MaxDiagnostics int
	// Timer collects load and lex phases. May be nil.
	Timer *observ.Timer

	// Jobs limits TokenizeDir workers; <= 0 means GOMAXPROCS.
	Jobs int
	// Progress receives per-file events from TokenizeDir. May be nil.
	Progress ProgressSink
}

// OptionsFromConfig maps eslex.toml settings onto driver options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	reserved, err := cfg.ReservedTable()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Context:        cfg.Lexer.Context,
		Operator:       cfg.Lexer.OperatorPosition,
		ASI:            cfg.Lexer.ASI,
		Reserved:       reserved,
		MaxDiagnostics: cfg.Output.MaxDiagnostics,
	}, nil
}

// observer is the part of a context the driver feeds tokens to.
type observer interface {
	lexer.Context
	Observe(tok token.Token)
}

// fixedContext ignores observed tokens.
type fixedContext struct{ lexer.State }

func (fixedContext) Observe(token.Token) {}

func (o *Options) newContext() observer {
	if o.Context == config.ContextFixed {
		cx := &fixedContext{}
		cx.SetOperator(o.Operator)
		cx.SetASI(o.ASI)
		return cx
	}
	return NewTracker(o.Operator, o.ASI)
}
