package svlottery

// Status is the outcome of one extraction attempt.
type Status int

const (
	// the wanted data was present and fully parsed
	StatusFound Status = iota
	// the heading or marker the extractor anchors on is absent,
	// usually meaning the site changed shape or the game moved
	StatusNotFound
	// the section was located but a required field would not parse
	StatusMalformed
)

// Result is a tagged extraction outcome. Value is only meaningful
// when Status == StatusFound; Reason is only set for Malformed.
type Result[T any] struct {
	Status Status
	Value  T
	Reason string
}

func Found[T any](value T) Result[T] {
	return Result[T]{Status: StatusFound, Value: value}
}

func NotFound[T any]() Result[T] {
	return Result[T]{Status: StatusNotFound}
}

func Malformed[T any](reason string) Result[T] {
	return Result[T]{Status: StatusMalformed, Reason: reason}
}

func (r Result[T]) Ok() bool {
	return r.Status == StatusFound
}
