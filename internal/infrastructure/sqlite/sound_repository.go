package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kobeSmallman/mobileSoundboard/internal/infrastructure/migrations"
	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

const tracerName = "github.com/kobeSmallman/mobileSoundboard/internal/infrastructure/sqlite"

// soundRepository implements domain.SoundRepository using SQLite.
type soundRepository struct {
	db     *sql.DB
	tracer trace.Tracer
}

func newSoundRepository(db *sql.DB) *soundRepository {
	return &soundRepository{db: db, tracer: otel.Tracer(tracerName)}
}

var _ domain.SoundRepository = (*soundRepository)(nil)

// Init applies the schema. Already-applied migrations are a no-op.
func (r *soundRepository) Init(ctx context.Context) (err error) {
	_, span := r.tracer.Start(ctx, "sounds.init")
	defer func() { endSpan(span, err) }()

	if err := migrations.RunMigrations(r.db); err != nil {
		return &domain.StorageError{Op: "init", Err: err}
	}
	return nil
}

// Add inserts a sound and returns its id.
func (r *soundRepository) Add(ctx context.Context, label, uri string) (id int64, err error) {
	ctx, span := r.tracer.Start(ctx, "sounds.add")
	defer func() { endSpan(span, err) }()

	result, err := r.db.ExecContext(ctx, `INSERT INTO sounds (label, uri) VALUES (?, ?)`, label, uri)
	if err != nil {
		log.ErrorErr(log.CatDB, "Insert sound failed", err, "label", label)
		return 0, &domain.StorageError{Op: "add", Err: err}
	}
	id, err = result.LastInsertId()
	if err != nil {
		return 0, &domain.StorageError{Op: "add", Err: fmt.Errorf("failed to get last insert id: %w", err)}
	}
	span.SetAttributes(attribute.Int64("sound.id", id))
	log.Debug(log.CatDB, "Inserted sound", "id", id, "label", label)
	return id, nil
}

// List returns all sounds ordered by id.
func (r *soundRepository) List(ctx context.Context) (sounds []domain.Sound, err error) {
	ctx, span := r.tracer.Start(ctx, "sounds.list")
	defer func() { endSpan(span, err) }()

	rows, err := r.db.QueryContext(ctx, `SELECT id, label, uri FROM sounds ORDER BY id`)
	if err != nil {
		return nil, &domain.StorageError{Op: "list", Err: err}
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var m SoundModel
		if err := rows.Scan(&m.ID, &m.Label, &m.URI); err != nil {
			return nil, &domain.StorageError{Op: "list", Err: fmt.Errorf("failed to scan sound row: %w", err)}
		}
		sounds = append(sounds, m.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "list", Err: fmt.Errorf("error iterating sound rows: %w", err)}
	}
	span.SetAttributes(attribute.Int("sound.count", len(sounds)))
	return sounds, nil
}

// UpdateLabel renames a sound. Returns SoundNotFoundError when no row matched.
func (r *soundRepository) UpdateLabel(ctx context.Context, id int64, label string) (err error) {
	ctx, span := r.tracer.Start(ctx, "sounds.update_label", trace.WithAttributes(attribute.Int64("sound.id", id)))
	defer func() { endSpan(span, err) }()

	result, err := r.db.ExecContext(ctx, `UPDATE sounds SET label = ? WHERE id = ?`, label, id)
	if err != nil {
		return &domain.StorageError{Op: "update", Err: err}
	}
	n, err := result.RowsAffected()
	if err != nil {
		return &domain.StorageError{Op: "update", Err: fmt.Errorf("failed to get rows affected: %w", err)}
	}
	if n == 0 {
		return &domain.SoundNotFoundError{ID: id}
	}
	return nil
}

// Remove deletes a sound. Missing ids are ignored.
func (r *soundRepository) Remove(ctx context.Context, id int64) (err error) {
	ctx, span := r.tracer.Start(ctx, "sounds.remove", trace.WithAttributes(attribute.Int64("sound.id", id)))
	defer func() { endSpan(span, err) }()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM sounds WHERE id = ?`, id); err != nil {
		return &domain.StorageError{Op: "remove", Err: err}
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
