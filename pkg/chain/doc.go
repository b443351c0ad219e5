// Package chain assembles capability wrappers around a terminal node.
//
// A Middleware takes the next link of a chain and returns a new link that
// implements the same capability. Chain nests middlewares so the first one
// is the outermost link and the terminal is always innermost:
//
//	n := chain.Chain[notifier.Notifier](adapter,
//	    notifier.Timing(log),
//	    notifier.Retry(3),
//	    notifier.Logging(log),
//	)
//	// Timing(Retry(Logging(adapter)))
//
// Registry maps wrapper names to middleware factories so the nesting order
// can come from configuration (see Config) instead of code. Neither Chain
// nor Registry inspects the links they compose; only the capability type T
// is visible to them.
package chain
