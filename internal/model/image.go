package model

import (
	"strings"
	"time"
)

// ImageObject is one entry of a gallery listing.
// Key is the only durable identifier; URL is minted per request and is nil
// when signing failed for this object.
type ImageObject struct {
	Key          string
	ETag         string
	URL          *string
	Size         int64
	LastModified time.Time
}

// DisplayID returns the ETag without quotes, or the key when the store supplied none.
func (o ImageObject) DisplayID() string {
	if id := strings.ReplaceAll(o.ETag, `"`, ""); id != "" {
		return id
	}
	return o.Key
}
