// Package posts manages the blog's postagens: creation, retrieval with
// pagination and title search, updates and deletion, plus filtering by tema
// and by author. This file defines the DTOs exchanged with API clients.
package posts

import "time"

// TopicRef is the embedded tema view inside a post response.
type TopicRef struct {
	ID          int64  `json:"id" example:"1"`
	Description string `json:"descricao" example:"Tecnologia"`
}

// AuthorRef is the embedded author view inside a post response. No password
// material ever reaches this struct.
type AuthorRef struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"nome" example:"João Silva"`
	Username  string    `json:"username" example:"joaosilva"`
	Email     string    `json:"email" example:"joao@email.com"`
	Photo     *string   `json:"foto,omitempty"`
	CreatedAt time.Time `json:"creationTimestamp"`
}

// PostResponse is the public representation of a postagem.
type PostResponse struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"titulo" example:"Minha primeira postagem"`
	Text      string    `json:"texto"`
	Topic     TopicRef  `json:"tema"`
	Author    AuthorRef `json:"usuario"`
	CreatedAt time.Time `json:"creationTimestamp"`
	UpdatedAt time.Time `json:"updateTimestamp"`
}

// CreatePostRequest carries the payload for creating a postagem. UserID must
// match the authenticated caller; nobody posts under someone else's name.
type CreatePostRequest struct {
	Title   string `json:"titulo" validate:"required,max=255"`
	Text    string `json:"texto" validate:"required"`
	TopicID int64  `json:"temaId" validate:"required,gt=0"`
	UserID  int64  `json:"usuarioId" validate:"required,gt=0"`
}

// UpdatePostRequest carries the payload for updating a postagem. TopicID is
// optional; when nil the tema is kept.
type UpdatePostRequest struct {
	Title   string `json:"titulo" validate:"required,max=255"`
	Text    string `json:"texto" validate:"required"`
	TopicID *int64 `json:"temaId,omitempty" validate:"omitempty,gt=0"`
}

// Page is a paginated slice of post responses.
type Page struct {
	Content       []PostResponse `json:"content"`
	Number        int64          `json:"number" example:"0"`
	Size          int64          `json:"size" example:"10"`
	TotalElements int64          `json:"totalElements" example:"42"`
	TotalPages    int64          `json:"totalPages" example:"5"`
}
