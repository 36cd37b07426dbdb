package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubops/clubledger/internal/domain"
)

// MemberRepository implements usecase.MemberRepository.
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// Create inserts a new member.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (id, name, email, role, joined_at, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Email,
		string(member.Role),
		member.JoinedAt,
		member.Active,
		member.CreatedAt,
		member.UpdatedAt,
	)

	return err
}

// GetByID retrieves a member by ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `
		SELECT id, name, email, role, joined_at, active, created_at, updated_at
		FROM members
		WHERE id = $1
	`

	var (
		member domain.Member
		role   string
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&role,
		&member.JoinedAt,
		&member.Active,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	member.Role = domain.MemberRole(role)

	return &member, nil
}

// Update updates a member record.
func (r *MemberRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members
		SET name = $2, email = $3, role = $4, active = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Email,
		string(member.Role),
		member.Active,
		member.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}

	return nil
}

// List lists members with pagination.
func (r *MemberRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*domain.Member, error) {
	query := `
		SELECT id, name, email, role, joined_at, active, created_at, updated_at
		FROM members
		WHERE NOT $1::bool OR active
		ORDER BY name, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member

	for rows.Next() {
		var (
			member domain.Member
			role   string
		)

		err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Email,
			&role,
			&member.JoinedAt,
			&member.Active,
			&member.CreatedAt,
			&member.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		member.Role = domain.MemberRole(role)
		members = append(members, &member)
	}

	return members, rows.Err()
}
