package queue

// SourceKind tells where a table came from
type SourceKind string

const (
	SourceFile   SourceKind = "file"
	SourceSample SourceKind = "sample"
)

// Source describes the origin of a loaded table
type Source struct {
	Kind   SourceKind
	Path   string // set for SourceFile
	Reason string // why the sample was used, set for SourceSample
}

// IsSample reports whether the table is the built-in sample
func (s Source) IsSample() bool {
	return s.Kind == SourceSample
}
