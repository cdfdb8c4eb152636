package image

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"qualifygym/internal/common"
	"qualifygym/internal/config"
	"qualifygym/internal/dbmongo"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
)

// BlobStore holds the picture bytes. *dbmongo.ImageStorage is the
// production implementation.
type BlobStore interface {
	Upload(ctx context.Context, filename, mimeType string, uploaderID uint64, content io.Reader) (*dbmongo.StoredFile, error)
	Open(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.StoredFile, error)
	Delete(ctx context.Context, fileID string) error
}

// Upload is one file taken from a multipart request.
type Upload struct {
	Filename string
	MimeType string
	Size     int64
	Content  io.Reader
}

type ImageService struct {
	repo         ImageRepository
	store        BlobStore
	users        existence.Checker
	publications existence.Checker
	maxBytes     int64
}

func NewImageService(repo ImageRepository, store BlobStore, checkers *existence.Checkers, cfg *config.Config) *ImageService {
	maxBytes := cfg.Images.MaxBytes
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &ImageService{
		repo:         repo,
		store:        store,
		users:        checkers.Users,
		publications: checkers.Publications,
		maxBytes:     maxBytes,
	}
}

// MaxBytes is the largest accepted upload.
func (s *ImageService) MaxBytes() int64 {
	return s.maxBytes
}

func (s *ImageService) validate(up Upload) (common.ImageMimeType, error) {
	if up.Content == nil || up.Size == 0 {
		return "", common.NewValidationError("file is empty")
	}
	if up.Size > s.maxBytes {
		return "", common.NewValidationError(fmt.Sprintf("file exceeds the maximum size of %d MB", s.maxBytes>>20))
	}
	mimeType := common.DetectImageMimeType(up.MimeType, up.Filename)
	if !mimeType.IsValid() {
		return "", common.NewValidationError(fmt.Sprintf("unsupported image type %q: allowed types are jpeg, jpg, png, gif and webp", mimeType))
	}
	return mimeType, nil
}

// persist writes the bytes and the metadata row, removing the bytes again if
// the row cannot be written.
func (s *ImageService) persist(ctx context.Context, image *dbmysql.Image, up Upload) error {
	limited := io.LimitReader(up.Content, s.maxBytes+1)
	stored, err := s.store.Upload(ctx, image.Filename, image.MimeType, image.UserID, limited)
	if err != nil {
		return common.NewInternalError(err)
	}
	if stored.Size > s.maxBytes || stored.Size == 0 {
		s.discard(ctx, stored.ID)
		if stored.Size == 0 {
			return common.NewValidationError("file is empty")
		}
		return common.NewValidationError(fmt.Sprintf("file exceeds the maximum size of %d MB", s.maxBytes>>20))
	}

	image.StorageID = stored.ID
	image.Size = stored.Size
	if err := s.repo.Create(ctx, image); err != nil {
		s.discard(ctx, stored.ID)
		return common.NewInternalError(err)
	}

	common.ImageBytesStoredTotal.WithLabelValues(image.Kind).Add(float64(stored.Size))
	return nil
}

func (s *ImageService) discard(ctx context.Context, storageID string) {
	if err := s.store.Delete(ctx, storageID); err != nil && !common.IsNotFound(err) {
		slog.WarnContext(ctx, "failed to delete image bytes", "storage_id", storageID, "error", err)
	}
}

func filename(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	return name
}

// UploadProfile stores a new profile photo for the user and removes the
// previous one.
func (s *ImageService) UploadProfile(ctx context.Context, userID uint64, up Upload) (*dbmysql.Image, error) {
	if userID == 0 {
		return nil, common.NewValidationError("user_id must be a positive integer")
	}
	mimeType, err := s.validate(up)
	if err != nil {
		return nil, err
	}
	if !s.users.Exists(ctx, userID) {
		return nil, common.NewReferentialIntegrityError(fmt.Sprintf("user with ID %d does not exist", userID))
	}

	previous, err := s.repo.ProfileByUserID(ctx, userID)
	if err != nil && !common.IsNotFound(err) {
		return nil, common.NewInternalError(err)
	}

	image := &dbmysql.Image{
		UserID:   userID,
		Kind:     dbmysql.ImageKindProfile,
		Filename: filename(up.Filename, fmt.Sprintf("profile_%d", userID)),
		MimeType: mimeType.String(),
	}
	if err := s.persist(ctx, image, up); err != nil {
		return nil, err
	}

	if previous != nil {
		if err := s.repo.Delete(ctx, previous.ID); err != nil && !common.IsNotFound(err) {
			slog.WarnContext(ctx, "failed to delete replaced profile photo", "image_id", previous.ID, "error", err)
		}
		s.discard(ctx, previous.StorageID)
	}
	return image, nil
}

func (s *ImageService) UploadPublication(ctx context.Context, publicationID, userID uint64, up Upload) (*dbmysql.Image, error) {
	if publicationID == 0 {
		return nil, common.NewValidationError("publication_id must be a positive integer")
	}
	if userID == 0 {
		return nil, common.NewValidationError("user_id must be a positive integer")
	}
	mimeType, err := s.validate(up)
	if err != nil {
		return nil, err
	}
	if !s.users.Exists(ctx, userID) {
		return nil, common.NewReferentialIntegrityError(fmt.Sprintf("user with ID %d does not exist", userID))
	}
	if !s.publications.Exists(ctx, publicationID) {
		return nil, common.NewReferentialIntegrityError(fmt.Sprintf("publication with ID %d does not exist", publicationID))
	}

	image := &dbmysql.Image{
		UserID:        userID,
		PublicationID: &publicationID,
		Kind:          dbmysql.ImageKindPublication,
		Filename:      filename(up.Filename, fmt.Sprintf("publication_%d", publicationID)),
		MimeType:      mimeType.String(),
	}
	if err := s.persist(ctx, image, up); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ImageService) Get(ctx context.Context, id uint64) (*dbmysql.Image, error) {
	return s.repo.ByID(ctx, id)
}

func (s *ImageService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.Image, error) {
	return s.repo.ProfileByUserID(ctx, userID)
}

// OpenContent returns the metadata row and a stream over its bytes. The
// caller closes the stream.
func (s *ImageService) OpenContent(ctx context.Context, id uint64) (*dbmysql.Image, io.ReadCloser, error) {
	image, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	reader, _, err := s.store.Open(ctx, image.StorageID)
	if err != nil {
		if common.IsNotFound(err) {
			return nil, nil, err
		}
		return nil, nil, common.NewInternalError(err)
	}
	return image, reader, nil
}

func (s *ImageService) ListByPublication(ctx context.Context, publicationID uint64) ([]*dbmysql.Image, error) {
	return s.repo.ByPublicationID(ctx, publicationID)
}

func (s *ImageService) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.repo.CountByUserID(ctx, userID)
}

func (s *ImageService) CountByPublication(ctx context.Context, publicationID uint64) (int64, error) {
	return s.repo.CountByPublicationID(ctx, publicationID)
}

func (s *ImageService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *ImageService) Delete(ctx context.Context, id uint64) error {
	image, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}
	return s.remove(ctx, image)
}

func (s *ImageService) DeleteProfile(ctx context.Context, userID uint64) error {
	image, err := s.repo.ProfileByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.remove(ctx, image)
}

// DeleteByPublication removes every image of the publication and reports
// how many were removed.
func (s *ImageService) DeleteByPublication(ctx context.Context, publicationID uint64) (int, error) {
	images, err := s.repo.ByPublicationID(ctx, publicationID)
	if err != nil {
		return 0, common.NewInternalError(err)
	}
	for i, image := range images {
		if err := s.remove(ctx, image); err != nil {
			return i, err
		}
	}
	return len(images), nil
}

func (s *ImageService) remove(ctx context.Context, image *dbmysql.Image) error {
	if err := s.repo.Delete(ctx, image.ID); err != nil {
		return err
	}
	s.discard(ctx, image.StorageID)
	return nil
}
