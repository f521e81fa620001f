package entities

// ConfidenceLevel buckets an extraction confidence score
type ConfidenceLevel string

const (
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceNotFound ConfidenceLevel = "not_found"
)

// Annotated pairs a value supplied by the document extraction layer with its confidence.
// The engine never consumes it; callers unwrap Value into a ChemicalAgent.
type Annotated[T any] struct {
	Value      T               `json:"value"`
	Confidence int             `json:"confidence"` // 0-100
	Level      ConfidenceLevel `json:"level"`
	Source     string          `json:"source,omitempty"`
}

// NewAnnotated builds an annotation, deriving the level from the confidence score
func NewAnnotated[T any](value T, confidence int, source string) Annotated[T] {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	return Annotated[T]{
		Value:      value,
		Confidence: confidence,
		Level:      levelFor(confidence),
		Source:     source,
	}
}

// NotFound marks a field the extraction layer could not locate
func NotFound[T any]() Annotated[T] {
	var zero T
	return Annotated[T]{Value: zero, Level: ConfidenceNotFound}
}

// OrDefault returns the value unless nothing was found
func (a Annotated[T]) OrDefault(fallback T) T {
	if a.Level == ConfidenceNotFound {
		return fallback
	}
	return a.Value
}

func levelFor(confidence int) ConfidenceLevel {
	switch {
	case confidence >= 95:
		return ConfidenceHigh
	case confidence >= 70:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
