package chain

// Middleware wraps the next link of a chain.
type Middleware[T any] func(next T) T

// Chain wraps terminal with mws. mws[0] becomes the outermost link.
// Nil middlewares are skipped.
func Chain[T any](terminal T, mws ...Middleware[T]) T {
	link := terminal
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		link = mws[i](link)
	}
	return link
}

// Compose merges mws into one middleware preserving their order.
func Compose[T any](mws ...Middleware[T]) Middleware[T] {
	return func(next T) T {
		return Chain(next, mws...)
	}
}
