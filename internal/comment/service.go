package comment

import (
	"context"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
	"qualifygym/internal/moderation"
)

type CommentService struct {
	repo       CommentRepository
	moderation *moderation.Service[*dbmysql.Comment]
}

// NewCommentService checks owners against users and parents against
// publications. Hide notices go to notifier.
func NewCommentService(repo CommentRepository, checkers *existence.Checkers, notifier moderation.Notifier) *CommentService {
	return &CommentService{
		repo: repo,
		moderation: moderation.NewService[*dbmysql.Comment](
			"comment", "publication", repo, checkers.Users, checkers.Publications, notifier,
		),
	}
}

func (s *CommentService) Create(ctx context.Context, content string, userID, publicationID uint64) (*dbmysql.Comment, error) {
	return s.moderation.Create(ctx, &dbmysql.Comment{
		Content:       common.CleanText(content),
		UserID:        userID,
		PublicationID: publicationID,
	})
}

func (s *CommentService) Update(ctx context.Context, id uint64, content string) (*dbmysql.Comment, error) {
	return s.moderation.Update(ctx, id, common.CleanText(content))
}

func (s *CommentService) Hide(ctx context.Context, id uint64, reason string) (*dbmysql.Comment, error) {
	return s.moderation.Hide(ctx, id, common.CleanText(reason))
}

func (s *CommentService) Show(ctx context.Context, id uint64) (*dbmysql.Comment, error) {
	return s.moderation.Show(ctx, id)
}

func (s *CommentService) Delete(ctx context.Context, id uint64) error {
	return s.moderation.Delete(ctx, id)
}

func (s *CommentService) Get(ctx context.Context, id uint64) (*dbmysql.Comment, error) {
	return s.repo.ByID(ctx, id)
}

func (s *CommentService) List(ctx context.Context) ([]*dbmysql.Comment, error) {
	return s.repo.All(ctx)
}

func (s *CommentService) ListByPublication(ctx context.Context, publicationID uint64, includeHidden bool) ([]*dbmysql.Comment, error) {
	return s.repo.ByPublicationID(ctx, publicationID, includeHidden)
}

func (s *CommentService) ListByUser(ctx context.Context, userID uint64) ([]*dbmysql.Comment, error) {
	return s.repo.ByUserID(ctx, userID)
}

func (s *CommentService) CountByPublication(ctx context.Context, publicationID uint64) (int64, error) {
	return s.repo.CountByPublicationID(ctx, publicationID)
}

func (s *CommentService) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.repo.CountByUserID(ctx, userID)
}

func (s *CommentService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
