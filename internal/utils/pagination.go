// Package utils holds small helpers shared by the HTTP handlers and services.
// Nothing here knows about platforms or reviews.
package utils

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads raw page and page_size query values. Missing or malformed
// values fall back to page 1 and defSize; the result is clamped so Number is
// at least 1 and Size lies in [1, maxSize]. maxSize <= 0 means no cap.
func ParsePage(number, size string, defSize, maxSize int) Page {
	n, err := ParseIntParam(number, 1)
	if err != nil {
		n = 1
	}
	s, err := ParseIntParam(size, defSize)
	if err != nil {
		s = defSize
	}
	return Page{Number: n, Size: s}.Clamp(maxSize)
}

// Clamp bounds Number to >= 1 and Size to [1, maxSize].
func (p Page) Clamp(maxSize int) Page {
	p.Number = max(p.Number, 1)
	p.Size = max(p.Size, 1)
	if maxSize > 0 {
		p.Size = min(p.Size, maxSize)
	}
	return p
}

// Offset is the number of rows preceding the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Pages is ceil(total/Size), 0 for an empty result.
func (p Page) Pages(total int64) int {
	if total <= 0 || p.Size <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}

// HasNext reports whether a page follows p.
func (p Page) HasNext(total int64) bool {
	return p.Number < p.Pages(total)
}
