package collection

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
// fold.Reduce lifts it into a fold.
type ReduceFunc[T1, T2 any] func(T2, T1) T2
