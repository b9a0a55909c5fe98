package service

import "errors"

// Gallery
var (
	ErrPrefixRequired = errors.New("missing bucketName or prefix parameter")
	ErrKeysRequired   = errors.New("missing or invalid keys array")
	ErrTooManyKeys    = errors.New("too many keys requested")
)

// Content
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrEmptySubject      = errors.New("subject cannot be empty")
	ErrEmptyContent      = errors.New("content cannot be empty")
	ErrInvalidStatus     = errors.New("status must be Y or N")
	ErrTitleContentEmpty = errors.New("title and content are required")
	ErrDuplicateEmail    = errors.New("this email is already subscribed")
)

// Uploads
var (
	ErrFileRequired    = errors.New("no file provided")
	ErrUnsupportedType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
)
