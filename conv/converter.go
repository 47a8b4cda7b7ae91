package conv

// Converter converts a single value of type In to type Out
type Converter[In, Out any] interface {
	Convert(value In) Out
}

// Func adapts an ordinary function to a Converter
type Func[In, Out any] func(value In) Out

// Convert calls f(value)
func (f Func[In, Out]) Convert(value In) Out {
	return f(value)
}

// Contramap returns a converter accepting Narrow input by lifting it to the Broad
// input accepted by c
func Contramap[Narrow, Broad, Out any](c Converter[Broad, Out], lift func(Narrow) Broad) Converter[Narrow, Out] {
	return Func[Narrow, Out](func(value Narrow) Out {
		return c.Convert(lift(value))
	})
}

// Covary returns a converter producing Broad output by widening each output of c
func Covary[In, Out, Broad any](c Converter[In, Out], widen func(Out) Broad) Converter[In, Broad] {
	return Func[In, Broad](func(value In) Broad {
		return widen(c.Convert(value))
	})
}

// Widen returns a converter producing the output of c as any
func Widen[In, Out any](c Converter[In, Out]) Converter[In, any] {
	return Covary(c, func(out Out) any { return out })
}
