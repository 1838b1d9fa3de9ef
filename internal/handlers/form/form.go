package form

import (
	"mime/multipart"
	"net/http"

	"robles/shared/constant"
	gDto "robles/shared/dto"
)

// SingleFile reads the "image" part of a multipart request. The returned
// upload borrows the request's temporary file, so it must be consumed before
// the handler returns.
func SingleFile(r *http.Request) (gDto.FileUpload, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return gDto.FileUpload{}, err
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		return gDto.FileUpload{}, err
	}

	return fromHeader(file, fileHeader), nil
}

// Files reads every "images" part of a multipart request. A request without
// any file parts yields an empty slice, not an error.
func Files(r *http.Request) ([]gDto.FileUpload, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, err
	}

	headers := r.MultipartForm.File[constant.FormFiles]
	files := make([]gDto.FileUpload, 0, len(headers))

	for _, fileHeader := range headers {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}

		files = append(files, fromHeader(file, fileHeader))
	}

	return files, nil
}

func fromHeader(file multipart.File, fileHeader *multipart.FileHeader) gDto.FileUpload {
	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)
	if contentType == "" {
		contentType = constant.ContentTypeOctetStream
	}

	return gDto.FileUpload{
		File:        file,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}
}
