package lexer

import (
	"kismet/internal/token"
	"testing"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, tokens []token.Token, expected []token.Kind) {
	t.Helper()
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), kinds(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Kind != exp {
			t.Errorf("token[%d]: expected %s, got %s (%q)", i, exp, tokens[i].Kind, tokens[i].Lexeme)
		}
	}
}

func TestTokenizeArithmetic(t *testing.T) {
	source := `2 + 3 * 4 ^ 5 - 6 / 7 % 8`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{
		token.INT, token.ADD, token.INT, token.MUL, token.INT, token.POW, token.INT,
		token.SUB, token.INT, token.DIV, token.INT, token.MOD, token.INT,
		token.EOF,
	})
}

func TestTokenizeKeywords(t *testing.T) {
	source := `true false null and or not if match for while loop`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{
		token.KW_TRUE, token.KW_FALSE, token.KW_NULL,
		token.AND, token.OR, token.NOT,
		token.KW_IF, token.KW_MATCH, token.KW_FOR, token.KW_WHILE, token.KW_LOOP,
		token.EOF,
	})
}

func TestTokenizeComparisonAndAssign(t *testing.T) {
	source := `== != < <= > >= :=`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{
		token.EQ, token.NE, token.LT, token.LE, token.GT, token.GE, token.ASSIGNE,
		token.EOF,
	})
}

func TestTokenizeRangeAndSpread(t *testing.T) {
	source := `.. ..= ... . =>`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{
		token.RANGE, token.RANGEI, token.SPREAD, token.DOT, token.ARROW,
		token.EOF,
	})
}

func TestTokenizeDelimiters(t *testing.T) {
	source := `( ) { } [ ] , :`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.COLON,
		token.EOF,
	})
}

func TestTokenizeDieOperator(t *testing.T) {
	source := `3d6 d20`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{
		token.INT, token.DIE, token.INT,
		token.DIE, token.INT,
		token.EOF,
	})
}

func TestTokenizeDieRequiresDigit(t *testing.T) {
	// "d" not followed by a digit lexes as a plain identifier, not DIE.
	source := `dx`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{token.IDENT, token.EOF})
}

func TestTokenizeDelimFolding(t *testing.T) {
	// Consecutive newlines/semicolons fold into a single DELIM.
	source := "a\n\n;\n b"
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	assertKinds(t, tokens, []token.Kind{
		token.IDENT, token.DELIM, token.IDENT, token.EOF,
	})
}

func TestTokenizeString(t *testing.T) {
	source := `"hello" "line1\nline2"`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	if tokens[0].Kind != token.STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Kind, tokens[0].Lexeme)
	}

	if tokens[1].Kind != token.STRING || tokens[1].Lexeme != "line1\nline2" {
		t.Errorf("expected STRING with newline, got %s %q", tokens[1].Kind, tokens[1].Lexeme)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	source := `"oops`
	l := New(source, "test.km")
	_, diags := l.Tokenize()

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
}

func TestTokenizeNumbers(t *testing.T) {
	source := `123 3.14 0 42`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) > 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	if tokens[0].Kind != token.INT || tokens[0].Lexeme != "123" {
		t.Errorf("token[0]: expected INT '123', got %s %q", tokens[0].Kind, tokens[0].Lexeme)
	}
	if tokens[1].Kind != token.FLOAT || tokens[1].Lexeme != "3.14" {
		t.Errorf("token[1]: expected FLOAT '3.14', got %s %q", tokens[1].Kind, tokens[1].Lexeme)
	}
}

func TestTokenizeComment(t *testing.T) {
	source := "x # this is a comment\ny"
	l := New(source, "test.km")
	tokens, _ := l.Tokenize()

	assertKinds(t, tokens, []token.Kind{
		token.IDENT, token.DELIM, token.IDENT, token.EOF,
	})
}

func TestTokenizePositions(t *testing.T) {
	source := "foo bar"
	l := New(source, "test.km")
	tokens, _ := l.Tokenize()

	if tokens[0].Span.Start.Line != 1 || tokens[0].Span.Start.Column != 1 {
		t.Errorf("'foo' position: expected 1:1, got %d:%d", tokens[0].Span.Start.Line, tokens[0].Span.Start.Column)
	}
	if tokens[1].Span.Start.Line != 1 || tokens[1].Span.Start.Column != 5 {
		t.Errorf("'bar' position: expected 1:5, got %d:%d", tokens[1].Span.Start.Line, tokens[1].Span.Start.Column)
	}
}

func TestTokenizeIllegalEquals(t *testing.T) {
	source := `=`
	l := New(source, "test.km")
	tokens, diags := l.Tokenize()

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic for bare '=', got %d", len(diags))
	}
	assertKinds(t, tokens, []token.Kind{token.ILLEGAL, token.EOF})
}
