package db

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/nickyhof/takeql/core"
	"github.com/nickyhof/takeql/ql"
)

// Engine parses and executes programs. It keeps no state between calls and
// is safe for concurrent use.
type Engine struct {
	logger *slog.Logger
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(engine *Engine) {
		if logger != nil {
			engine.logger = logger
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

func (engine *Engine) Parse(text string) (core.Program, error) {
	program, err := ql.Parse(text)
	if err != nil {
		var parseErr *ql.ParseError
		if errors.As(err, &parseErr) {
			engine.logger.Warn("parse failed",
				"line", parseErr.Line,
				"column", parseErr.Column,
				"reason", parseErr.Reason.String())
		}
		return core.Program{}, err
	}

	engine.logger.Debug("program parsed", "commands", program.Len())
	return program, nil
}

func (engine *Engine) Execute(program core.Program) QueryResult {
	startTime := time.Now()

	result := execute(program, func(index int, command core.Command, bound core.Bound) {
		engine.logger.Debug("command applied",
			"index", index,
			"command", command.Type().String(),
			"bound", bound.String())
	})
	result.ExecutionTimeSec = time.Since(startTime).Seconds()

	engine.logger.Debug("program executed", "bound", result.Bound.String())
	return result
}

// Run parses text and executes the program. Execution is skipped when
// parsing fails.
func (engine *Engine) Run(text string) (ParseResult, QueryResult, error) {
	program, err := engine.Parse(text)
	if err != nil {
		return ParseResult{}, QueryResult{}, err
	}
	return ParseResult{Program: program}, engine.Execute(program), nil
}
