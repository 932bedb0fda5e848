package report

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/ltungv/lox/glox/internal/token"
	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(ioutil.Discard)

	assert.False(r.HadError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	err2 := NewParseError(token.New(token.MINUS, "-", nil, 1), "Expect expression.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(errors.New("Test error"))

	r.Reset()
	assert.False(r.HadError())
}

func TestListReporter(t *testing.T) {
	assert := assert.New(t)
	err1 := NewSyntaxError(2, "Invalid assignment target.")
	err2 := NewScanError(3, "Unexpected character.")

	r := NewListReporter()
	assert.False(r.HadError())
	r.Report(err1)
	r.Report(err2)

	assert.True(r.HadError())
	assert.Equal([]error{err1, err2}, r.Errors())

	r.Reset()
	assert.False(r.HadError())
	assert.Empty(r.Errors())
}

func TestTeeReporter(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	list := NewListReporter()
	r := Tee{NewSimpleReporter(&out), list}
	r.Report(errors.New("Test error"))

	assert.True(r.HadError())
	assert.Equal("Test error\n", out.String())
	assert.Len(list.Errors(), 1)

	r.Reset()
	assert.False(r.HadError())
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		err     Diagnostic
		msg     string
		line    int
		message string
	}{
		{
			NewParseError(token.New(token.IDENTIFIER, "foo", nil, 3), "Expect ';' after value."),
			"[line 3] Error at 'foo': Expect ';' after value.",
			3,
			"Expect ';' after value.",
		},
		{
			NewParseError(token.New(token.EOF, "", nil, 7), "Expect expression."),
			"[line 7] Error at end: Expect expression.",
			7,
			"Expect expression.",
		},
		{
			NewSyntaxError(1, "Invalid assignment target."),
			"[line 1] Error: Invalid assignment target.",
			1,
			"Invalid assignment target.",
		},
		{
			NewScanError(4, "Unterminated string."),
			"[line 4] Error: Unterminated string.",
			4,
			"Unterminated string.",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.msg, tc.err.Error())
		assert.Equal(tc.line, tc.err.Line())
		assert.Equal(tc.message, tc.err.Message())
	}
}
