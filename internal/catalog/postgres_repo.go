package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the dataset from the catalog_* tables.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (r *PostgresSource) Load(ctx context.Context) (*Catalog, error) {
	authors, err := r.authors(ctx)
	if err != nil {
		return nil, err
	}
	genres, err := r.genres(ctx)
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(items, authors, genres)
}

func (r *PostgresSource) authors(ctx context.Context) ([]Author, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM catalog_authors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Author, error) {
		var a Author
		err := row.Scan(&a.ID, &a.Name)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w", err)
	}
	return out, nil
}

func (r *PostgresSource) genres(ctx context.Context) ([]Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM catalog_genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Genre, error) {
		var g Genre
		err := row.Scan(&g.ID, &g.Name)
		return g, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan genres: %w", err)
	}
	return out, nil
}

func (r *PostgresSource) items(ctx context.Context) ([]Item, error) {
	const query = `
		SELECT id, title, author_id, image, description, published_date, genre_ids
		FROM catalog_items
		ORDER BY position ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.Title, &it.AuthorID, &it.Image,
			&it.Description, &it.PublishedDate, &it.GenreIDs,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Seed replaces the stored dataset with ds in a single transaction.
func (r *PostgresSource) Seed(ctx context.Context, ds Dataset) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, stmt := range []string{
		`DELETE FROM catalog_items`,
		`DELETE FROM catalog_genres`,
		`DELETE FROM catalog_authors`,
	} {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}
	}

	batch := &pgx.Batch{}
	for _, a := range ds.Authors {
		batch.Queue(`INSERT INTO catalog_authors (id, name) VALUES ($1, $2)`, a.ID, a.Name)
	}
	for _, g := range ds.Genres {
		batch.Queue(`INSERT INTO catalog_genres (id, name) VALUES ($1, $2)`, g.ID, g.Name)
	}
	for pos, it := range ds.Books {
		batch.Queue(`
			INSERT INTO catalog_items (id, position, title, author_id, image, description, published_date, genre_ids)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, pos, it.Title, it.AuthorID, it.Image, it.Description, it.PublishedDate, genreIDs(it),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}

	return tx.Commit(ctx)
}

func genreIDs(it Item) []string {
	if it.GenreIDs == nil {
		return []string{}
	}
	return it.GenreIDs
}
