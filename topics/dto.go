// Package topics manages the blog's temas: the categories posts are filed
// under. This file defines the DTOs exchanged with API clients.
package topics

// Topic represents a tema.
type Topic struct {
	ID          int64  `json:"id" example:"1"`
	Description string `json:"descricao" example:"Tecnologia"`
}

// CreateTopicRequest carries the payload for creating or updating a tema.
type CreateTopicRequest struct {
	Description string `json:"descricao" validate:"required,max=255" example:"Tecnologia"`
}
