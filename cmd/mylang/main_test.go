package main

import (
	"fmt"
	"testing"

	"github.com/mylang/mylang/lang"
)

func TestSourcePositionUnwrapsLexerError(t *testing.T) {
	err := fmt.Errorf("compile failed: %w", &lang.LexerError{Msg: "bad", Pos: lang.Position{Line: 3, Column: 5}})
	pos, ok := sourcePosition(err)
	if !ok || pos.Line != 3 || pos.Column != 5 {
		t.Fatalf("got %v, %v, want {3 5}, true", pos, ok)
	}
}

func TestSourcePositionUnwrapsRuntimeError(t *testing.T) {
	rerr := &lang.RuntimeError{Kind: lang.NameError, Msg: "bad", Pos: lang.Position{Line: 1, Column: 1}}
	err := fmt.Errorf("execution failed: %w", rerr)
	pos, ok := sourcePosition(err)
	if !ok || pos != (lang.Position{Line: 1, Column: 1}) {
		t.Fatalf("got %v, %v, want {1 1}, true", pos, ok)
	}
}

func TestSourcePositionReportsFalseForPlainErrors(t *testing.T) {
	if _, ok := sourcePosition(fmt.Errorf("script path required")); ok {
		t.Fatalf("expected no Position for an error with no source location")
	}
}
