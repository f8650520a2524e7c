package models

import "time"

// Post is a blog entry written by a user.
type Post struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	Title      string     `json:"title" gorm:"size:140;not null"`
	Body       string     `json:"body" gorm:"type:text;not null"`
	Published  bool       `json:"published" gorm:"not null;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time  `json:"updated_at"`
	AuthorID   int64      `json:"author_id" gorm:"not null;index"`
	Author     *User      `json:"-" gorm:"foreignKey:AuthorID"`
	Categories []Category `json:"categories" gorm:"many2many:post_categories;constraint:OnDelete:CASCADE"`
	Comments   []Comment  `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Post model.
func (Post) TableName() string {
	return "posts"
}

// Comment belongs to a post. Hidden comments (Visible=false) stay in the
// table but are excluded from listings and stats.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Visible   bool      `json:"visible" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index"`
	Author    *User     `json:"-" gorm:"foreignKey:AuthorID"`
	PostID    int64     `json:"post_id" gorm:"not null;index"`
}

// TableName returns the database table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}

// Category groups posts. Names are unique and compared exactly.
type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:64;not null"`
}

// TableName returns the database table name for the Category model.
func (Category) TableName() string {
	return "categories"
}

// PostCategoryTable is the join table between posts and categories.
const PostCategoryTable = "post_categories"

// Stats is the read-only aggregate served to moderators and admins.
type Stats struct {
	TotalPosts      int64 `json:"total_posts" db:"total_posts"`
	TotalComments   int64 `json:"total_comments" db:"total_comments"`
	TotalCategories int64 `json:"total_categories" db:"total_categories"`
	PostsLastWeek   int64 `json:"posts_last_week" db:"posts_last_week"`
}

// All returns every model managed by the schema, in migration order.
func All() []interface{} {
	return []interface{}{&User{}, &Credential{}, &Category{}, &Post{}, &Comment{}}
}
