package postgres

import (
	"context"

	"guildhall/internal/domain/entity"
	"guildhall/internal/domain/repository"
	"guildhall/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// FindPublished retrieves published posts, newest first.
func (repo *blogRepository) FindPublished(ctx context.Context) ([]*entity.Blog, error) {
	var blogModels []*model.BlogModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.BlogStatusPublished).
		Order("published_at DESC").
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find published blog posts")
	}

	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

// FindBySlug retrieves a single published post by its slug.
func (repo *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	var blogM model.BlogModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, entity.BlogStatusPublished).
		First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post by slug")
	}

	return toBlogDomain(&blogM), nil
}

// --- Mapper Functions ---

func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:           data.ID,
		Title:        data.Title,
		Slug:         data.Slug,
		Content:      data.Content,
		Excerpt:      data.Excerpt,
		BlogImageURL: data.BlogImageURL,
		AuthorID:     data.AuthorID,
		Status:       data.Status,
		PublishedAt:  data.PublishedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
