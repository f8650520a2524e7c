package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/GunarsK-portfolio/blog-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategorySelection describes the categories to associate with a post.
type CategorySelection struct {
	// IDs are existing category ids. Unknown ids are ignored.
	IDs []int64
	// NewName is looked up by exact name and created when absent.
	NewName string
	// Replace makes the selection the post's full category set. When false
	// the selected categories are added to the current set.
	Replace bool
}

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id int64) (*models.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, post *models.Post, categories CategorySelection) error
	Update(ctx context.Context, post *models.Post, categories *CategorySelection) error
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository instance.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

type postCategory struct {
	PostID     int64 `gorm:"primaryKey"`
	CategoryID int64 `gorm:"primaryKey"`
}

func (postCategory) TableName() string {
	return models.PostCategoryTable
}

func (r *postRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Categories", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") })
}

func (r *postRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.withRelations(ctx).
		Where("published = ?", true).
		Order("created_at DESC").Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.withRelations(ctx).First(&post, id).Error; err != nil {
		return nil, fmt.Errorf("failed to find post by id %d: %w", id, err)
	}
	return &post, nil
}

func (r *postRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check post %d: %w", id, err)
	}
	return count > 0, nil
}

// Create inserts the post and its category links in one transaction,
// creating the named category on the way when it does not exist yet.
func (r *postRepository) Create(ctx context.Context, post *models.Post, categories CategorySelection) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cats, err := resolveCategories(tx, categories)
		if err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		if err := linkCategories(tx, post.ID, cats); err != nil {
			return err
		}
		post.Categories = cats
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update writes the scalar fields of post. A nil selection leaves the
// category links untouched.
func (r *postRepository) Update(ctx context.Context, post *models.Post, categories *CategorySelection) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
			"title":      post.Title,
			"body":       post.Body,
			"published":  post.Published,
			"updated_at": post.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if categories == nil {
			return nil
		}

		cats, err := resolveCategories(tx, *categories)
		if err != nil {
			return err
		}
		if categories.Replace {
			if err := tx.Where("post_id = ?", post.ID).Delete(&postCategory{}).Error; err != nil {
				return err
			}
		}
		return linkCategories(tx, post.ID, cats)
	})
	if err != nil {
		return fmt.Errorf("failed to update post id %d: %w", post.ID, err)
	}
	return nil
}

// Delete hard-deletes the post with its comments and category links.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&postCategory{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete post id %d: %w", id, err)
	}
	return nil
}

// resolveCategories loads the selected categories and finds or creates the
// named one. Two writers racing on the same new name are settled by the
// unique index: the loser gets gorm.ErrDuplicatedKey.
func resolveCategories(tx *gorm.DB, sel CategorySelection) ([]models.Category, error) {
	cats := []models.Category{}
	if len(sel.IDs) > 0 {
		if err := tx.Where("id IN ?", sel.IDs).Order("name ASC").Find(&cats).Error; err != nil {
			return nil, err
		}
	}
	if sel.NewName == "" {
		return cats, nil
	}

	var named models.Category
	err := tx.Where("name = ?", sel.NewName).Take(&named).Error
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		named = models.Category{Name: sel.NewName}
		if err := tx.Create(&named).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	for _, c := range cats {
		if c.ID == named.ID {
			return cats, nil
		}
	}
	return append(cats, named), nil
}

func linkCategories(tx *gorm.DB, postID int64, cats []models.Category) error {
	if len(cats) == 0 {
		return nil
	}
	links := make([]postCategory, 0, len(cats))
	for _, c := range cats {
		links = append(links, postCategory{PostID: postID, CategoryID: c.ID})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
