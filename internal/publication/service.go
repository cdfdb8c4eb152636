package publication

import (
	"context"
	"strings"
	"unicode/utf8"

	"qualifygym/internal/common"
	"qualifygym/internal/dbmysql"
	"qualifygym/internal/existence"
	"qualifygym/internal/moderation"
)

const (
	maxTitleLength    = 200
	maxImageURLLength = 500
)

type CreatePublicationInput struct {
	Title       string
	Description string
	UserID      uint64
	TopicID     uint64
	ImageURL    string
}

type PublicationService struct {
	repo       PublicationRepository
	moderation *moderation.Service[*dbmysql.Publication]
}

// NewPublicationService checks owners against users and parents against
// topics. Hide notices go to notifier.
func NewPublicationService(repo PublicationRepository, checkers *existence.Checkers, notifier moderation.Notifier) *PublicationService {
	return &PublicationService{
		repo: repo,
		moderation: moderation.NewService[*dbmysql.Publication](
			"publication", "topic", repo, checkers.Users, checkers.Topics, notifier,
		),
	}
}

func cleanTitle(title string) (string, error) {
	title = common.CleanText(title)
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", common.NewValidationError("title must be at most 200 characters")
	}
	return title, nil
}

// cleanImageURL returns nil for a blank url.
func cleanImageURL(url string) (*string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(url) > maxImageURLLength {
		return nil, common.NewValidationError("image_url must be at most 500 characters")
	}
	return &url, nil
}

func (s *PublicationService) Create(ctx context.Context, in CreatePublicationInput) (*dbmysql.Publication, error) {
	title, err := cleanTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, common.NewValidationError("title is required")
	}
	imageURL, err := cleanImageURL(in.ImageURL)
	if err != nil {
		return nil, err
	}

	return s.moderation.Create(ctx, &dbmysql.Publication{
		Title:       title,
		Description: common.CleanText(in.Description),
		ImageURL:    imageURL,
		UserID:      in.UserID,
		TopicID:     in.TopicID,
	})
}

// Update changes title and description. Blank values leave the stored
// ones in place.
func (s *PublicationService) Update(ctx context.Context, id uint64, title, description string) (*dbmysql.Publication, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return nil, err
	}

	return s.moderation.Update(ctx, id, common.CleanText(description), func(p *dbmysql.Publication) error {
		if title != "" {
			p.Title = title
		}
		return nil
	})
}

// UpdateImage sets the image url. A blank url clears it.
func (s *PublicationService) UpdateImage(ctx context.Context, id uint64, imageURL string) (*dbmysql.Publication, error) {
	url, err := cleanImageURL(imageURL)
	if err != nil {
		return nil, err
	}

	return s.moderation.Update(ctx, id, "", func(p *dbmysql.Publication) error {
		p.ImageURL = url
		return nil
	})
}

func (s *PublicationService) Hide(ctx context.Context, id uint64, reason string) (*dbmysql.Publication, error) {
	return s.moderation.Hide(ctx, id, common.CleanText(reason))
}

func (s *PublicationService) Show(ctx context.Context, id uint64) (*dbmysql.Publication, error) {
	return s.moderation.Show(ctx, id)
}

func (s *PublicationService) Delete(ctx context.Context, id uint64) error {
	return s.moderation.Delete(ctx, id)
}

func (s *PublicationService) Get(ctx context.Context, id uint64) (*dbmysql.Publication, error) {
	return s.repo.ByID(ctx, id)
}

func (s *PublicationService) List(ctx context.Context, includeHidden bool) ([]*dbmysql.Publication, error) {
	return s.repo.All(ctx, includeHidden)
}

func (s *PublicationService) ListByTopic(ctx context.Context, topicID uint64, includeHidden bool) ([]*dbmysql.Publication, error) {
	return s.repo.ByTopicID(ctx, topicID, includeHidden)
}

func (s *PublicationService) ListByUser(ctx context.Context, userID uint64, includeHidden bool) ([]*dbmysql.Publication, error) {
	return s.repo.ByUserID(ctx, userID, includeHidden)
}

// Search returns visible publications whose title or description contain
// query. A blank query lists every visible publication.
func (s *PublicationService) Search(ctx context.Context, query string) ([]*dbmysql.Publication, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.All(ctx, false)
	}
	return s.repo.Search(ctx, query)
}

func (s *PublicationService) CountByTopic(ctx context.Context, topicID uint64) (int64, error) {
	return s.repo.CountByTopicID(ctx, topicID)
}

func (s *PublicationService) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.repo.CountByUserID(ctx, userID)
}

func (s *PublicationService) Exists(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Exists(ctx, id)
}
