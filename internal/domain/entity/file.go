package entity

// FileUpload is an in-memory file received from a client.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Size returns the number of bytes of the upload.
func (f *FileUpload) Size() int64 {
	if f == nil {
		return 0
	}

	return int64(len(f.Content))
}

// IsEmpty reports whether there is nothing to upload.
func (f *FileUpload) IsEmpty() bool {
	return f == nil || len(f.Content) == 0
}
