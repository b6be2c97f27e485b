// Package topics, service layer.
package topics

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/blogpessoal-go/apperror"
)

// TopicService provides tema management operations.
type TopicService struct {
	db *pgxpool.Pool
}

// NewTopicService creates a new TopicService.
func NewTopicService(db *pgxpool.Pool) *TopicService {
	return &TopicService{db: db}
}

// Create inserts a new tema.
func (s *TopicService) Create(ctx context.Context, req *CreateTopicRequest) (*Topic, error) {
	var topic Topic
	err := s.db.QueryRow(ctx,
		`INSERT INTO tb_temas (descricao) VALUES ($1) RETURNING id, descricao`,
		req.Description,
	).Scan(&topic.ID, &topic.Description)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create topic", err)
	}
	return &topic, nil
}

// List returns all temas, optionally filtered by a case-insensitive partial
// match on descricao.
func (s *TopicService) List(ctx context.Context, description string) ([]Topic, error) {
	query := `SELECT id, descricao FROM tb_temas ORDER BY id`
	args := []interface{}{}
	if description != "" {
		query = `SELECT id, descricao FROM tb_temas WHERE descricao ILIKE '%' || $1 || '%' ORDER BY id`
		args = append(args, description)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list topics", err)
	}
	defer rows.Close()

	topics := []Topic{}
	for rows.Next() {
		var t Topic
		if err := rows.Scan(&t.ID, &t.Description); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan topic", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list topics", err)
	}
	return topics, nil
}

// Get fetches a tema by id.
func (s *TopicService) Get(ctx context.Context, id int64) (*Topic, error) {
	var topic Topic
	err := s.db.QueryRow(ctx,
		`SELECT id, descricao FROM tb_temas WHERE id = $1`, id,
	).Scan(&topic.ID, &topic.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("tema não encontrado", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get topic", err)
	}
	return &topic, nil
}

// Update changes a tema's descricao.
func (s *TopicService) Update(ctx context.Context, id int64, req *CreateTopicRequest) (*Topic, error) {
	var topic Topic
	err := s.db.QueryRow(ctx,
		`UPDATE tb_temas SET descricao = $1 WHERE id = $2 RETURNING id, descricao`,
		req.Description, id,
	).Scan(&topic.ID, &topic.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("tema não encontrado", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update topic", err)
	}
	return &topic, nil
}

// Delete removes a tema. Deletion is refused while posts still reference it.
func (s *TopicService) Delete(ctx context.Context, id int64) error {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM tb_postagens WHERE tema_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return apperror.NewDatabaseError("failed to check topic usage", err)
	}
	if count > 0 {
		return apperror.NewBadRequestError("não é possível deletar um tema com postagens associadas", nil)
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM tb_temas WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete topic", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("tema não encontrado", nil)
	}
	return nil
}
