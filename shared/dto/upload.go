package dto

import "io"

// FileUpload carries one multipart file from a handler to a service.
type FileUpload struct {
	File        io.Reader
	Filename    string
	ContentType string
}
