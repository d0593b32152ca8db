// Package rule evaluates boolean rule expressions such as
//
//	public or internal
//	!(type.public and static)
//
// over named atoms resolved by a caller-supplied Resolver.
//
// Grammar (AND and OR share one precedence level, left associative):
//
//	expression := subexpr ( (AND | OR) subexpr )*
//	subexpr    := '(' expression ')' | NOT subexpr | NAME
//
// `&` and `and` (any case) are AND, `|` and `or` (any case) are OR, `!` is
// NOT. Names are runs of letters, digits, underscores and dots.
//
// Evaluation happens while parsing; no tree is built. Both operands of every
// AND and OR are always evaluated, so the resolver is called exactly once per
// name in the expression, including names in branches whose value cannot
// change the result. Callers rely on this to validate every atom.
package rule
