package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageObject_DisplayID(t *testing.T) {
	assert.Equal(t, "abc123", ImageObject{Key: "a/1.jpg", ETag: `"abc123"`}.DisplayID())
	assert.Equal(t, "a/1.jpg", ImageObject{Key: "a/1.jpg"}.DisplayID())
	assert.Equal(t, "a/1.jpg", ImageObject{Key: "a/1.jpg", ETag: `""`}.DisplayID())
}

func TestVoicePostPatch_Empty(t *testing.T) {
	assert.True(t, VoicePostPatch{}.Empty())
	s := "N"
	assert.False(t, VoicePostPatch{Status: &s}.Empty())
}
