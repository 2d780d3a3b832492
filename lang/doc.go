// Package lang implements the core of MyLang: a small, dynamically typed,
// indentation-structured scripting language evaluated by a tree-walking
// executor. It covers:
//
//   - a hand-rolled lexer producing a finite token stream, tracking
//     indentation as explicit Indent/Dedent tokens
//   - a closed runtime value model: None, Int, Bool, String, classes, and
//     instances with single inheritance
//   - an AST of statement and expression nodes covering assignment, field
//     access, control flow, arithmetic/comparison, and method dispatch
//   - a tree-walking executor with dunder-method overrides
//     (__init__, __str__, __add__, __eq__, __lt__) and a sentinel-based
//     Return mechanism
//
// Lexing and evaluation are the only things this package guarantees;
// parsing from source text into an AST lives in package parser.
package lang
