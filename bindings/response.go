package main

import (
	"encoding/json"
	"errors"

	"github.com/nickyhof/takeql"
	"github.com/nickyhof/takeql/core"
	"github.com/nickyhof/takeql/db"
	"github.com/nickyhof/takeql/ql"
)

// Response is the JSON document returned to foreign callers.
type Response struct {
	Success bool            `json:"success"`
	Error   *ErrorResponse  `json:"error,omitempty"`
	Program json.RawMessage `json:"program,omitempty"`
	Result  *QueryResponse  `json:"result,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type QueryResponse struct {
	Bound           core.Bound `json:"bound"`
	Commands        int        `json:"commands"`
	ExecutionTimeMs float64    `json:"execution_time_ms"`
}

var engine = takeql.Open(nil).Engine()

// runJSON parses and executes program. A null bound in the result means the
// default source was never narrowed.
func runJSON(program string) []byte {
	jsonData, _ := json.Marshal(respond(program))
	return jsonData
}

func respond(program string) Response {
	parsed, result, err := engine.Run(program)
	if err != nil {
		return makeErrorResponse(err)
	}

	programData, err := json.Marshal(parsed)
	if err != nil {
		return makeErrorResponse(err)
	}

	return Response{
		Success: true,
		Program: programData,
		Result:  toQueryResponse(result),
	}
}

func toQueryResponse(result db.QueryResult) *QueryResponse {
	return &QueryResponse{
		Bound:           result.Bound,
		Commands:        result.CommandsApplied,
		ExecutionTimeMs: result.ExecutionTimeSec * 1000,
	}
}

func makeErrorResponse(err error) Response {
	resp := Response{
		Success: false,
		Error:   &ErrorResponse{Message: err.Error()},
	}
	var parseErr *ql.ParseError
	if errors.As(err, &parseErr) {
		resp.Error.Line = parseErr.Line
		resp.Error.Column = parseErr.Column
		resp.Error.Reason = parseErr.Reason.String()
	}
	return resp
}
