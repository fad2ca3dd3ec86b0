package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/leapstack-labs/itemdb/internal/item"
)

// quoteIdent quotes a column name. Several item columns (class, delay,
// block) read like keywords, so every identifier is quoted.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func columnList() string {
	names := item.ColumnNames()
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}

// createTableSQL builds the items DDL from the item column mapping.
func createTableSQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", item.TableName)
	cols := item.Columns()
	for i, c := range cols {
		b.WriteString("    ")
		b.WriteString(quoteIdent(c.Name))
		b.WriteString(" ")
		b.WriteString(c.Type)
		switch {
		case c.Name == item.PrimaryKey:
			b.WriteString(" PRIMARY KEY")
		case c.Type == "TEXT":
			b.WriteString(" NOT NULL DEFAULT ''")
		default:
			b.WriteString(" NOT NULL DEFAULT 0")
		}
		if i < len(cols)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

func insertSQL() string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", item.ColumnCount()), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", item.TableName, columnList(), placeholders)
}

func selectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", columnList(), item.TableName)
}

// CreateTable creates the items table with every column of the item mapping.
// It is idempotent.
func (s *SQLiteStore) CreateTable(ctx context.Context) error {
	if s.db == nil {
		return ErrNotOpened
	}
	if _, err := s.db.ExecContext(ctx, createTableSQL()); err != nil {
		return fmt.Errorf("failed to create items table: %w", err)
	}
	return nil
}

// TableColumns returns the column names of table as SQLite reports them.
func (s *SQLiteStore) TableColumns(ctx context.Context, table string) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotOpened
	}

	rows, err := s.db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?) ORDER BY cid", table)
	if err != nil {
		return nil, fmt.Errorf("failed to read table info: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
