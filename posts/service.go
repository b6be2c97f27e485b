// Package posts, service layer.
package posts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/blogpessoal-go/apperror"
)

// PostService provides postagem management operations. Authorization is the
// handler's concern; the service reports what exists and who owns it.
type PostService struct {
	db *pgxpool.Pool
}

// NewPostService creates a new PostService.
func NewPostService(db *pgxpool.Pool) *PostService {
	return &PostService{db: db}
}

// postSelect joins a postagem with its tema and author. Every read goes
// through this same projection so responses are uniform.
const postSelect = `
	SELECT p.id, p.titulo, p.texto,
	       t.id, t.descricao,
	       u.id, u.nome, u.username, u.email, u.foto, u.creation_timestamp,
	       p.creation_timestamp, p.update_timestamp
	FROM tb_postagens p
	JOIN tb_temas t ON t.id = p.tema_id
	JOIN tb_users u ON u.id = p.usuario_id`

func scanPost(row pgx.Row) (*PostResponse, error) {
	var p PostResponse
	err := row.Scan(
		&p.ID, &p.Title, &p.Text,
		&p.Topic.ID, &p.Topic.Description,
		&p.Author.ID, &p.Author.Name, &p.Author.Username, &p.Author.Email,
		&p.Author.Photo, &p.Author.CreatedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// paginate runs the joined query with an optional WHERE filter and returns
// one page plus the total count for the same filter.
func (s *PostService) paginate(ctx context.Context, where string, filterArgs []interface{}, page, size int64) (*Page, error) {
	countQuery := `SELECT count(*) FROM tb_postagens p` + where
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, filterArgs...).Scan(&total); err != nil {
		return nil, apperror.NewDatabaseError("failed to count posts", err)
	}

	args := append(append([]interface{}{}, filterArgs...), size, page*size)
	query := fmt.Sprintf("%s%s ORDER BY p.creation_timestamp DESC LIMIT $%d OFFSET $%d",
		postSelect, where, len(filterArgs)+1, len(filterArgs)+2)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}
	defer rows.Close()

	content := []PostResponse{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan post", err)
		}
		content = append(content, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}

	totalPages := int64(0)
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return &Page{
		Content:       content,
		Number:        page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// List returns a page of posts, optionally filtered by a case-insensitive
// partial match on titulo.
func (s *PostService) List(ctx context.Context, title string, page, size int64) (*Page, error) {
	if title != "" {
		return s.paginate(ctx, ` WHERE p.titulo ILIKE '%' || $1 || '%'`, []interface{}{title}, page, size)
	}
	return s.paginate(ctx, "", nil, page, size)
}

// ListByTopic returns a page of posts filed under the given tema.
func (s *PostService) ListByTopic(ctx context.Context, topicID, page, size int64) (*Page, error) {
	return s.paginate(ctx, ` WHERE p.tema_id = $1`, []interface{}{topicID}, page, size)
}

// ListByUser returns a page of posts written by the given user.
func (s *PostService) ListByUser(ctx context.Context, userID, page, size int64) (*Page, error) {
	return s.paginate(ctx, ` WHERE p.usuario_id = $1`, []interface{}{userID}, page, size)
}

// Get fetches a post by id. Handlers call this before any authorization
// decision so an absent post reports 404, never 403.
func (s *PostService) Get(ctx context.Context, id int64) (*PostResponse, error) {
	post, err := scanPost(s.db.QueryRow(ctx, postSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("postagem não encontrada", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get post", err)
	}
	return post, nil
}

// topicExists reports whether a tema exists, as a NotFoundError when it doesn't.
func (s *PostService) topicExists(ctx context.Context, topicID int64) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tb_temas WHERE id = $1)`, topicID).Scan(&exists)
	if err != nil {
		return apperror.NewDatabaseError("failed to check topic", err)
	}
	if !exists {
		return apperror.NewNotFoundError(fmt.Sprintf("tema não encontrado com ID: %d", topicID), nil)
	}
	return nil
}

// Create inserts a new postagem. The referenced tema must exist; the author
// is taken from the request after the handler has checked it matches the
// caller.
func (s *PostService) Create(ctx context.Context, req *CreatePostRequest) (*PostResponse, error) {
	if err := s.topicExists(ctx, req.TopicID); err != nil {
		return nil, err
	}

	var id int64
	err := s.db.QueryRow(ctx,
		`INSERT INTO tb_postagens (titulo, texto, tema_id, usuario_id)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		req.Title, req.Text, req.TopicID, req.UserID,
	).Scan(&id)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create post", err)
	}

	return s.Get(ctx, id)
}

// Update changes titulo/texto and optionally re-files the post under a new
// tema.
func (s *PostService) Update(ctx context.Context, id int64, req *UpdatePostRequest) (*PostResponse, error) {
	if req.TopicID != nil {
		if err := s.topicExists(ctx, *req.TopicID); err != nil {
			return nil, err
		}
	}

	var tag string
	var args []interface{}
	if req.TopicID != nil {
		tag = `UPDATE tb_postagens SET titulo = $1, texto = $2, tema_id = $3, update_timestamp = now() WHERE id = $4`
		args = []interface{}{req.Title, req.Text, *req.TopicID, id}
	} else {
		tag = `UPDATE tb_postagens SET titulo = $1, texto = $2, update_timestamp = now() WHERE id = $3`
		args = []interface{}{req.Title, req.Text, id}
	}

	ct, err := s.db.Exec(ctx, tag, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to update post", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError("postagem não encontrada", nil)
	}

	return s.Get(ctx, id)
}

// Delete removes a postagem.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tb_postagens WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("postagem não encontrada", nil)
	}
	return nil
}
