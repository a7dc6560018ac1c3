package models

import "time"

type Post struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PostView is the response projection of a Post. It is built fresh for every
// response and never shares state with the stored entity.
type PostView struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
}

func NewPostView(p Post) PostView {
	return PostView{
		ID:         p.ID,
		CreatedAt:  p.CreatedAt,
		ModifiedAt: p.UpdatedAt,
		Title:      p.Title,
		Content:    p.Content,
	}
}

func NewPostViews(posts []Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, NewPostView(p))
	}
	return views
}
