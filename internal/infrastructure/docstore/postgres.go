package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStore lưu mỗi collection trong một bảng (doc JSONB NOT NULL)
// với unique index trên doc->>'id'. Predicates compile thành WHERE clauses
// trên các JSONB text/numeric projections.
type postgresStore struct {
	pool *pgxpool.Pool

	mu      sync.RWMutex
	ensured map[string]bool
}

// Collection names are used as table identifiers; whitelist strictly.
var collectionNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// NewPostgresStore creates a Store backed by PostgreSQL JSONB tables.
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{
		pool:    pool,
		ensured: make(map[string]bool),
	}
}

// EnsureCollection tạo bảng và index nếu chưa có.
func (s *postgresStore) EnsureCollection(ctx context.Context, collection string) error {
	if !collectionNameRe.MatchString(collection) {
		return fmt.Errorf("invalid collection name: %q", collection)
	}

	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (doc JSONB NOT NULL)`, collection)
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", collection, err)
	}

	idx := fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %s_id_idx ON %s ((doc->>'id'))`,
		collection, collection,
	)
	if _, err := s.pool.Exec(ctx, idx); err != nil {
		return fmt.Errorf("failed to index collection %s: %w", collection, err)
	}

	s.mu.Lock()
	s.ensured[collection] = true
	s.mu.Unlock()

	return nil
}

// table validates that the collection was ensured and returns its identifier.
func (s *postgresStore) table(collection string) (string, error) {
	s.mu.RLock()
	ok := s.ensured[collection]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("unknown collection: %q", collection)
	}
	return collection, nil
}

func (s *postgresStore) Insert(ctx context.Context, collection string, doc Document) error {
	table, err := s.table(collection)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (doc) VALUES ($1)`, table)
	if _, err := s.pool.Exec(ctx, query, raw); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return nil
}

func (s *postgresStore) Find(ctx context.Context, collection string, p Predicate, limit int) ([]Document, error) {
	table, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	var args []interface{}
	where := buildWhere(p, &args)

	var query strings.Builder
	fmt.Fprintf(&query, `SELECT doc FROM %s WHERE %s`, table, where)
	if limit > 0 {
		query.WriteString(" LIMIT " + strconv.Itoa(limit))
	}

	rows, err := s.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", collection, err)
	}

	return docs, nil
}

func (s *postgresStore) FindOne(ctx context.Context, collection string, p Predicate) (Document, error) {
	docs, err := s.Find(ctx, collection, p, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs[0], nil
}

func (s *postgresStore) UpdateFields(ctx context.Context, collection string, p Predicate, fields Document) (int64, error) {
	table, err := s.table(collection)
	if err != nil {
		return 0, err
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal fields: %w", err)
	}

	args := []interface{}{raw}
	where := buildWhere(p, &args)

	// JSONB concatenation merges top-level keys, overwriting existing values.
	query := fmt.Sprintf(`UPDATE %s SET doc = doc || $1::jsonb WHERE %s`, table, where)

	cmdTag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", collection, err)
	}

	return cmdTag.RowsAffected(), nil
}

func (s *postgresStore) Delete(ctx context.Context, collection string, p Predicate) (int64, error) {
	table, err := s.table(collection)
	if err != nil {
		return 0, err
	}

	var args []interface{}
	where := buildWhere(p, &args)

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s`, table, where)

	cmdTag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", collection, err)
	}

	return cmdTag.RowsAffected(), nil
}

func (s *postgresStore) Distinct(ctx context.Context, collection, field string) ([]string, error) {
	table, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT DISTINCT doc->>$1 FROM %s WHERE doc->>$1 IS NOT NULL AND doc->>$1 <> ''`,
		table,
	)

	rows, err := s.pool.Query(ctx, query, field)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s.%s: %w", collection, field, err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct value: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distinct values: %w", err)
	}

	return values, nil
}

func (s *postgresStore) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// ──────────────────────────────────────────────
// Predicate -> SQL compilation
// ──────────────────────────────────────────────

// buildWhere compiles a predicate into a WHERE fragment over the doc column,
// appending bind values to args. Numbered placeholders continue from len(args).
func buildWhere(p Predicate, args *[]interface{}) string {
	switch pred := p.(type) {
	case eqPredicate:
		if isNumeric(pred.value) {
			*args = append(*args, pred.value)
			return fmt.Sprintf("(doc->>%s)::numeric = $%d", quoteField(pred.field), len(*args))
		}
		*args = append(*args, pred.value)
		return fmt.Sprintf("doc->>%s = $%d", quoteField(pred.field), len(*args))

	case containsPredicate:
		*args = append(*args, "%"+escapeLike(pred.value)+"%")
		return fmt.Sprintf("doc->>%s ILIKE $%d", quoteField(pred.field), len(*args))

	case rangePredicate:
		var parts []string
		if pred.min != nil {
			*args = append(*args, *pred.min)
			parts = append(parts, fmt.Sprintf("(doc->>%s)::numeric >= $%d", quoteField(pred.field), len(*args)))
		}
		if pred.max != nil {
			*args = append(*args, *pred.max)
			parts = append(parts, fmt.Sprintf("(doc->>%s)::numeric <= $%d", quoteField(pred.field), len(*args)))
		}
		if len(parts) == 0 {
			return "TRUE"
		}
		return "(" + strings.Join(parts, " AND ") + ")"

	case orPredicate:
		if len(pred.preds) == 0 {
			return "FALSE"
		}
		parts := make([]string, len(pred.preds))
		for i, sub := range pred.preds {
			parts[i] = buildWhere(sub, args)
		}
		return "(" + strings.Join(parts, " OR ") + ")"

	case andPredicate:
		if len(pred.preds) == 0 {
			return "TRUE"
		}
		parts := make([]string, len(pred.preds))
		for i, sub := range pred.preds {
			parts[i] = buildWhere(sub, args)
		}
		return "(" + strings.Join(parts, " AND ") + ")"

	default:
		// Unreachable for predicates built through this package.
		return "FALSE"
	}
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}

// quoteField renders a field name as a SQL string literal.
// Field names come from repository code, not request input.
func quoteField(field string) string {
	return "'" + strings.ReplaceAll(field, "'", "''") + "'"
}
