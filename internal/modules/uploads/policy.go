package uploads

// Policy checks upload content types and sizes against configuration.
type Policy struct {
	AllowedTypes []string
	MaxFileSize  int64
}

// AllowsContentType is an exact membership test, no wildcard or prefix
// matching.
func (p Policy) AllowsContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	for _, t := range p.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// WithinSizeLimit reports whether size fits the limit (inclusive).
func (p Policy) WithinSizeLimit(size int64) bool {
	return size <= p.MaxFileSize
}
