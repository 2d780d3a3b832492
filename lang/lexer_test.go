package lang

import "testing"

func kinds(toks []Token) []TokenKind {
	ks := make([]TokenKind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, got []TokenKind, want ...TokenKind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexSimpleAssignment(t *testing.T) {
	toks, err := Lex("x = 1\n")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	assertKinds(t, kinds(toks), TokenId, TokenChar, TokenNumber, TokenNewline, TokenEOF)
}

func TestLexIndentAndDedent(t *testing.T) {
	src := "if True:\n  x = 1\ny = 2\n"
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	assertKinds(t, kinds(toks),
		TokenIf, TokenTrue, TokenChar, TokenNewline,
		TokenIndent, TokenId, TokenChar, TokenNumber, TokenNewline,
		TokenDedent, TokenId, TokenChar, TokenNumber, TokenNewline,
		TokenEOF,
	)
}

func TestLexBlankAndCommentLinesDoNotAffectIndentation(t *testing.T) {
	src := "if True:\n  x = 1\n\n  # a comment\n  y = 2\nz = 3\n"
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	got := kinds(toks)
	dedents := 0
	for _, k := range got {
		if k == TokenDedent {
			dedents++
		}
	}
	if dedents != 1 {
		t.Fatalf("expected exactly one Dedent, got %d in %v", dedents, got)
	}
}

func TestLexOverIndentationIsAnError(t *testing.T) {
	src := "if True:\n      x = 1\n"
	if _, err := Lex(src); err == nil {
		t.Fatalf("expected a LexerError for an over-indented line")
	}
}

func TestLexUnbalancedIndentationIsAnError(t *testing.T) {
	src := "if True:\n  if True:\n    x = 1\n   y = 2\n"
	if _, err := Lex(src); err == nil {
		t.Fatalf("expected a LexerError for a dedent that is not a multiple of two spaces")
	}
}

func TestLexTabIndentationIsAnError(t *testing.T) {
	src := "if True:\n\tx = 1\n"
	if _, err := Lex(src); err == nil {
		t.Fatalf("expected a LexerError for a tab used as indentation")
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := Lex(`"a\nb"` + "\n")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if toks[0].Kind != TokenString || toks[0].Str != "a\nb" {
		t.Fatalf("got %v, want String(%q)", toks[0], "a\nb")
	}
}

func TestLexUnterminatedStringIsAnError(t *testing.T) {
	if _, err := Lex(`"unterminated`); err == nil {
		t.Fatalf("expected a LexerError for an unterminated string literal")
	}
}

func TestLexIntegerOverflowIsAnError(t *testing.T) {
	if _, err := Lex("99999999999999999999999\n"); err == nil {
		t.Fatalf("expected a LexerError for an out-of-range integer literal")
	}
}

func TestLexTwoCharacterOperators(t *testing.T) {
	toks, err := Lex("a == b != c <= d >= e\n")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	assertKinds(t, kinds(toks),
		TokenId, TokenEq, TokenId, TokenNotEq, TokenId, TokenLessOrEq, TokenId, TokenGreaterOrEq, TokenId,
		TokenNewline, TokenEOF,
	)
}

func TestLexCommentAtEOFLexesCleanlyToEOF(t *testing.T) {
	toks, err := Lex("x = 1\n# trailing comment with no newline")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if last := toks[len(toks)-1]; last.Kind != TokenEOF {
		t.Fatalf("expected the stream to end in EOF, got %s", last.Kind)
	}
}

func TestLexEveryIndentIsMatchedByADedentBeforeEOF(t *testing.T) {
	src := "if True:\n  if True:\n    x = 1\n"
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	indents, dedents := 0, 0
	for _, k := range kinds(toks) {
		switch k {
		case TokenIndent:
			indents++
		case TokenDedent:
			dedents++
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced Indent/Dedent: %d indents, %d dedents", indents, dedents)
	}
}

func FuzzLexer(f *testing.F) {
	f.Add("x = 1\n")
	f.Add("if True:\n  print(1)\n")
	f.Add("")
	f.Add("\t\t#\n")
	f.Fuzz(func(t *testing.T, src string) {
		toks, err := Lex(src)
		if err != nil {
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].Kind != TokenEOF {
			t.Fatalf("Lex(%q) did not terminate in EOF: %v", src, toks)
		}
	})
}
