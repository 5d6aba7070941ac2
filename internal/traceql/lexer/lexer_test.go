package lexer

import (
	"fmt"
	"testing"
	"text/scanner"

	"github.com/stretchr/testify/require"
)

type TestCase struct {
	input   string
	want    []Token
	wantErr bool
}

var tests = []TestCase{
	{
		`{ span.http.status_code >= 500 && status = error }`,
		[]Token{
			{Type: OpenBrace, Text: "{"},
			{Type: Ident, Text: "span.http.status_code"},
			{Type: Gte, Text: ">="},
			{Type: Integer, Text: "500"},
			{Type: And, Text: "&&"},
			{Type: Status, Text: "status"},
			{Type: Eq, Text: "="},
			{Type: StatusError, Text: "error"},
			{Type: CloseBrace, Text: "}"},
		},
		false,
	},
	{
		`1.5h -2 -.5 10`,
		[]Token{
			{Type: Duration, Text: "1.5h"},
			{Type: Integer, Text: "-2"},
			{Type: Number, Text: "-.5"},
			{Type: Integer, Text: "10"},
		},
		false,
	},
	{
		`.foo parent parent.foo parent.resource.foo resource.github.com/ogen-go/ogen.attr`,
		[]Token{
			{Type: Ident, Text: ".foo"},
			{Type: Parent, Text: "parent"},
			{Type: Ident, Text: "parent.foo"},
			{Type: Ident, Text: "parent.resource.foo"},
			{Type: Ident, Text: "resource.github.com/ogen-go/ogen.attr"},
		},
		false,
	},
	{
		`{ name =~ "a.*" || name !~ ` + "`b`" + ` }`,
		[]Token{
			{Type: OpenBrace, Text: "{"},
			{Type: Name, Text: "name"},
			{Type: Re, Text: "=~"},
			{Type: String, Text: "a.*"},
			{Type: Or, Text: "||"},
			{Type: Name, Text: "name"},
			{Type: NotRe, Text: "!~"},
			{Type: String, Text: "b"},
			{Type: CloseBrace, Text: "}"},
		},
		false,
	},
	{
		`{ .a } >> { .b } ~ { .c } | select(.a, duration) | by(.b) | coalesce()`,
		[]Token{
			{Type: OpenBrace, Text: "{"},
			{Type: Ident, Text: ".a"},
			{Type: CloseBrace, Text: "}"},
			{Type: Desc, Text: ">>"},
			{Type: OpenBrace, Text: "{"},
			{Type: Ident, Text: ".b"},
			{Type: CloseBrace, Text: "}"},
			{Type: Tilde, Text: "~"},
			{Type: OpenBrace, Text: "{"},
			{Type: Ident, Text: ".c"},
			{Type: CloseBrace, Text: "}"},
			{Type: Pipe, Text: "|"},
			{Type: Select, Text: "select"},
			{Type: OpenParen, Text: "("},
			{Type: Ident, Text: ".a"},
			{Type: Comma, Text: ","},
			{Type: SpanDuration, Text: "duration"},
			{Type: CloseParen, Text: ")"},
			{Type: Pipe, Text: "|"},
			{Type: By, Text: "by"},
			{Type: OpenParen, Text: "("},
			{Type: Ident, Text: ".b"},
			{Type: CloseParen, Text: ")"},
			{Type: Pipe, Text: "|"},
			{Type: Coalesce, Text: "coalesce"},
			{Type: OpenParen, Text: "("},
			{Type: CloseParen, Text: ")"},
		},
		false,
	},
	{
		`kind = server && !(childCount > 2) && rootServiceName != nil`,
		[]Token{
			{Type: Kind, Text: "kind"},
			{Type: Eq, Text: "="},
			{Type: KindServer, Text: "server"},
			{Type: And, Text: "&&"},
			{Type: Not, Text: "!"},
			{Type: OpenParen, Text: "("},
			{Type: ChildCount, Text: "childCount"},
			{Type: Gt, Text: ">"},
			{Type: Integer, Text: "2"},
			{Type: CloseParen, Text: ")"},
			{Type: And, Text: "&&"},
			{Type: RootServiceName, Text: "rootServiceName"},
			{Type: NotEq, Text: "!="},
			{Type: Nil, Text: "nil"},
		},
		false,
	},
	{
		`count() > 2 && avg(duration) < 1s`,
		[]Token{
			{Type: Count, Text: "count"},
			{Type: OpenParen, Text: "("},
			{Type: CloseParen, Text: ")"},
			{Type: Gt, Text: ">"},
			{Type: Integer, Text: "2"},
			{Type: And, Text: "&&"},
			{Type: Avg, Text: "avg"},
			{Type: OpenParen, Text: "("},
			{Type: SpanDuration, Text: "duration"},
			{Type: CloseParen, Text: ")"},
			{Type: Lt, Text: "<"},
			{Type: Duration, Text: "1s"},
		},
		false,
	},
	{
		`
# foo
# bar
10`,
		[]Token{
			{Type: Integer, Text: "10"},
		},
		false,
	},
	{`10yy`, nil, true},
	{`"foo`, nil, true},
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{
			`{ .a ? }`,
			`at test.ql:1:6: unexpected character "?"`,
		},
		{
			`{ .a = 1 } $`,
			`at test.ql:1:12: unexpected character "$"`,
		},
	}
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			_, err := Tokenize(tt.input, TokenizeOptions{
				Filename: "test.ql",
			})
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestTokenize(t *testing.T) {
	for i, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			got, err := Tokenize(tt.input, TokenizeOptions{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			for i := range got {
				// Zero position before checking.
				got[i].Pos = scanner.Position{}
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func FuzzTokenize(f *testing.F) {
	for _, tt := range tests {
		f.Add(tt.input)
	}
	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil || t.Failed() {
				t.Logf("Input:\n%s", input)
			}
		}()
		_, _ = Tokenize(input, TokenizeOptions{})
	})
}
