package model

import "time"

// Our Voice post status values.
const (
	StatusActive   = "Y"
	StatusInactive = "N"
)

// VoicePost is a community "Our Voice" entry.
// Thumbnail keys stay internal; the feed exposes presigned URLs instead.
type VoicePost struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	Slug             string    `json:"slug"`
	Content          string    `json:"content,omitempty"`
	ContentMD        string    `json:"contentMD"`
	Hashtag          string    `json:"hashtag"`
	VideoURL         string    `json:"mUrl"`
	ThumbnailKey     string    `json:"-"`
	ThumbnailOrigKey string    `json:"-"`
	ThumbnailURL     *string   `json:"thumbnail"`
	ThumbnailOrigURL *string   `json:"thumbnailOriginal"`
	Status           string    `json:"actstatus"`
	Hit              int64     `json:"hit"`
	CreatedAt        time.Time `json:"createdAt"`
}

// VoicePostPatch carries the fields of a partial update. Nil means unchanged.
// Slug is derived from Subject by the caller.
type VoicePostPatch struct {
	Subject   *string
	Slug      *string
	ContentMD *string
	Hashtag   *string
	VideoURL  *string
	Status    *string
}

// Empty reports whether the patch changes nothing.
func (p VoicePostPatch) Empty() bool {
	return p.Subject == nil && p.ContentMD == nil && p.Hashtag == nil && p.VideoURL == nil && p.Status == nil
}
