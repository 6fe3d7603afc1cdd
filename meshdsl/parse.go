// SPDX-License-Identifier: MIT
// Package: hedgegraph/meshdsl
//
// parse.go - lexer and parser entry points.

package meshdsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var meshLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),;]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var meshParser = participle.MustBuild[File](
	participle.Lexer(meshLexer),
	participle.Elide("Comment"),
)

// Parse reads a mesh description. filename is used in positions only.
// Syntax errors wrap ErrSyntax and carry the participle position text.
func Parse(filename string, src []byte) (*File, error) {
	f, err := meshParser.ParseBytes(filename, src)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}

	return f, nil
}

// ParseString is Parse over a string source.
func ParseString(filename, src string) (*File, error) {
	return Parse(filename, []byte(src))
}
