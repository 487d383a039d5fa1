package lectio

// AnnotatedVerse pairs one verse of source text with the annotation stored
// for it, if any. Annotation is nil for an unannotated verse.
type AnnotatedVerse struct {
	*Verse
	Annotation *Annotation `json:"annotation,omitempty"`
}

// Chapter is an assembled chapter view: immutable source text in verse
// order with stored annotations merged on by key.
type Chapter struct {
	Translation string           `json:"translation"`
	Book        string           `json:"book"`
	Chapter     int              `json:"chapter"`
	Verses      []AnnotatedVerse `json:"verses"`
}
