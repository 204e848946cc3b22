package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/internal/platform/database/schema"
	"github.com/foliumhq/folium/internal/platform/dberr"
	"github.com/foliumhq/folium/pkg/uuidv7"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

var profileColumns = strings.Join(schema.ContentProfile.Columns(), ", ")

// dataColumns are the owner-editable columns written by Update, in the
// order dataArgs produces them.
var dataColumns = []string{
	schema.ContentProfile.Handle,
	schema.ContentProfile.DisplayName,
	schema.ContentProfile.Headline,
	schema.ContentProfile.Bio,
	schema.ContentProfile.Location,
	schema.ContentProfile.AvatarURL,
	schema.ContentProfile.ResumeURL,
	schema.ContentProfile.WebsiteURL,
	schema.ContentProfile.GithubURL,
	schema.ContentProfile.LinkedinURL,
	schema.ContentProfile.ShowProjects,
	schema.ContentProfile.ShowExperience,
	schema.ContentProfile.ShowEducation,
	schema.ContentProfile.ShowSkills,
	schema.ContentProfile.ShowCerts,
	schema.ContentProfile.ShowBlog,
	schema.ContentProfile.ShowTestimonials,
	schema.ContentProfile.ShowContacts,
}

func dataArgs(record *Profile) []any {
	return []any{
		record.Handle,
		record.DisplayName,
		record.Headline,
		record.Bio,
		record.Location,
		record.AvatarURL,
		record.ResumeURL,
		record.WebsiteURL,
		record.GithubURL,
		record.LinkedinURL,
		record.ShowProjects,
		record.ShowExperience,
		record.ShowEducation,
		record.ShowSkills,
		record.ShowCerts,
		record.ShowBlog,
		record.ShowTestimonials,
		record.ShowContacts,
	}
}

// GetOrCreate implements [Store].
//
// The insert races safely: ON CONFLICT (owner_id) DO NOTHING means the
// loser of a concurrent first access simply reads the winner's row.
func (s *PostgresStore) GetOrCreate(ctx context.Context, ownerID string) (*Profile, error) {
	insert := fmt.Sprintf(
		`INSERT INTO %s (id, owner_id, handle,
		     show_projects, show_experience, show_education, show_skills,
		     show_certifications, show_blog, show_testimonials, show_contacts,
		     created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		 ON CONFLICT (owner_id) DO NOTHING`,
		schema.ContentProfile.Table,
	)

	defaults := DefaultVisibility
	args := []any{
		uuidv7.New(), ownerID, DefaultHandle(ownerID),
		defaults.ShowProjects, defaults.ShowExperience, defaults.ShowEducation, defaults.ShowSkills,
		defaults.ShowCerts, defaults.ShowBlog, defaults.ShowTestimonials, defaults.ShowContacts,
	}
	if _, err := s.db.Exec(ctx, insert, args...); err != nil {
		return nil, dberr.Wrap(err, "create_profile")
	}

	return s.fetchBy(ctx, schema.ContentProfile.OwnerID, ownerID)
}

// Update implements [Store].
func (s *PostgresStore) Update(ctx context.Context, record *Profile) error {
	assignments := make([]string, len(dataColumns))
	for i, column := range dataColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+2)
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $1 RETURNING updated_at",
		schema.ContentProfile.Table, strings.Join(assignments, ", "),
	)

	args := append([]any{record.ID}, dataArgs(record)...)
	err := s.db.QueryRow(ctx, query, args...).Scan(&record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Profile")
	}
	return dberr.Wrap(err, "update_profile")
}

// FindByHandle implements [Store].
func (s *PostgresStore) FindByHandle(ctx context.Context, handle string) (*Profile, error) {
	return s.fetchBy(ctx, schema.ContentProfile.Handle, handle)
}

// ExistsHandle implements [Store].
func (s *PostgresStore) ExistsHandle(ctx context.Context, handle, excludeID string) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1",
		schema.ContentProfile.Table, schema.ContentProfile.Handle,
	)
	args := []any{handle}

	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	query += ")"

	var exists bool
	if err := s.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "exists_profile_handle")
	}
	return exists, nil
}

// DeleteByOwner implements [Store].
func (s *PostgresStore) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.ContentProfile.Table, schema.ContentProfile.OwnerID)

	cmd, err := s.db.Exec(ctx, query, ownerID)
	if err != nil {
		return 0, dberr.Wrap(err, "purge_profile")
	}
	return cmd.RowsAffected(), nil
}

func (s *PostgresStore) fetchBy(ctx context.Context, column, value string) (*Profile, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", profileColumns, schema.ContentProfile.Table, column)

	rows, err := s.db.Query(ctx, query, value)
	if err != nil {
		return nil, dberr.Wrap(err, "fetch_profile")
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[Profile])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Profile")
		}
		return nil, dberr.Wrap(err, "fetch_profile")
	}

	return record, nil
}
