package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Result is the envelope every mutating endpoint and every error answers
// with. Code is "<http status>-<detail>", e.g. "201-1".
type Result struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func NewResult(code, message string, data any) Result {
	return Result{Code: code, Message: message, Data: data}
}

// Fail builds the "<status>-1" envelope used for errors.
func Fail(status int, message string, data any) Result {
	return Result{Code: fmt.Sprintf("%d-1", status), Message: message, Data: data}
}

// StatusCode is the HTTP status encoded in the leading part of Code.
func (r Result) StatusCode() int {
	head, _, _ := strings.Cut(r.Code, "-")
	status, err := strconv.Atoi(head)
	if err != nil || status < 100 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// Respond writes res with the status taken from its code.
func Respond(w http.ResponseWriter, res Result) {
	JSON(w, res.StatusCode(), res)
}
