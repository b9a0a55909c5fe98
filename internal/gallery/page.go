// Package gallery is the client side of the photo gallery: fixed-size pages
// over an ordered listing, a keyboard-driven viewer, a fetch-once loader and
// an HTTP client for the listing API.
package gallery

// Page sizes used by the site's gallery views.
const (
	CompactPageSize = 16
	DefaultPageSize = 24
)

// Page is one fixed-size window of an ordered listing. Number is 1-based.
type Page[T any] struct {
	Number int
	Size   int
	Total  int
	Items  []T
}

// TotalPages returns the number of pages needed for n items.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns page p of items. Out-of-range pages clamp to the first or
// last page. The returned slice has its capacity clipped so appending to it
// never writes into items.
func Paginate[T any](items []T, p, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := TotalPages(len(items), size)
	if p > total {
		p = total
	}
	if p < 1 {
		p = 1
	}

	lo := (p - 1) * size
	hi := min(lo+size, len(items))
	if lo > hi {
		lo = hi
	}
	return Page[T]{Number: p, Size: size, Total: total, Items: items[lo:hi:hi]}
}
