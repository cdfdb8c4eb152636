package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qualifygym/internal/common"
)

// ImageStorage keeps uploaded picture bytes in GridFS. Metadata rows live in
// MySQL and point here through the hex file id.
type ImageStorage struct {
	gridFS *gridfs.Bucket
}

func NewImageStorage(mongoClient *MongoClient) *ImageStorage {
	return &ImageStorage{
		gridFS: mongoClient.GridFS,
	}
}

type StoredFile struct {
	ID         string    `json:"id"` // GridFS ObjectID
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	UploadedBy uint64    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func (s *ImageStorage) Upload(ctx context.Context, filename, mimeType string, uploaderID uint64, content io.Reader) (*StoredFile, error) {
	uploadedAt := time.Now()
	metadata := bson.M{
		"mime_type":   mimeType,
		"uploaded_by": strconv.FormatUint(uploaderID, 10),
		"uploaded_at": uploadedAt,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := s.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	return &StoredFile{
		ID:         stream.FileID.(primitive.ObjectID).Hex(),
		Filename:   filename,
		MimeType:   mimeType,
		Size:       size,
		UploadedBy: uploaderID,
		UploadedAt: uploadedAt,
	}, nil
}

// Open returns a stream over the stored bytes. The caller closes it.
func (s *ImageStorage) Open(ctx context.Context, fileID string) (io.ReadCloser, *StoredFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, common.NewValidationError("invalid file id")
	}

	stream, err := s.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, common.NewNotFoundError("image file", fileID)
		}
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}
	uploadedBy, _ := strconv.ParseUint(getStringFromMap(metadata, "uploaded_by"), 10, 64)

	return stream, &StoredFile{
		ID:         fileID,
		Filename:   fileInfo.Name,
		MimeType:   getStringFromMap(metadata, "mime_type"),
		Size:       fileInfo.Length,
		UploadedBy: uploadedBy,
		UploadedAt: fileInfo.UploadDate,
	}, nil
}

func (s *ImageStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return common.NewValidationError("invalid file id")
	}
	if err := s.gridFS.DeleteContext(ctx, objectID); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return common.NewNotFoundError("image file", fileID)
		}
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
