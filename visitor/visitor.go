package visitor

// Visitor walks a sequence, passing each key and element to the callback
// until it returns false or an error; the error is returned as is.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
