package services

import (
	"bytes"
	"fmt"
	"mime"

	"socketBoard/internal/enums"
	"socketBoard/internal/interfaces"
	"socketBoard/internal/models"
	"socketBoard/internal/utils"
)

type FileManagerService struct {
	fileManager interfaces.FileManager
}

func NewFileManagerService(fileManager interfaces.FileManager) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
	}
}

// ExportDrawing decodes the stored data-URI and uploads the raster to object
// storage, returning a public URL for sharing.
func (fs *FileManagerService) ExportDrawing(image *models.Image) (string, error) {
	contentType, data, err := utils.DecodeDataURI(image.ImageData)
	if err != nil {
		return "", err
	}

	ext := ".png"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	fileName := fmt.Sprintf("drawing-%d%s", image.ID, ext)

	return fs.fileManager.UploadFile(
		fileName,
		bytes.NewReader(data),
		int64(len(data)),
		contentType,
		enums.FILE_BUCKET_DRAWINGS,
	)
}
