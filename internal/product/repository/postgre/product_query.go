package postgre

import (
	"fmt"
	"strings"

	repo "product-catalog/internal/product/repository"
)

// likeEscaper escapes LIKE metacharacters so a keyword matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildFilter builds the WHERE clause + args for a Filter. Placeholders start at $start.
func (r *implRepository) buildFilter(f repo.Filter, start int) (string, []any) {
	var conditions []string
	var args []any
	idx := start

	if f.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, f.Category)
		idx++
	}
	if f.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildSearch builds the WHERE clause + args for a keyword search.
func (r *implRepository) buildSearch(opt repo.SearchProductsOptions) (string, []any) {
	pattern := "%" + likeEscaper.Replace(opt.Keyword) + "%"
	if opt.NameOnly {
		return `name ILIKE $1 ESCAPE '\'`, []any{pattern}
	}
	return `(name ILIKE $1 ESCAPE '\' OR description ILIKE $1 ESCAPE '\')`, []any{pattern}
}

// buildOrderBy renders the ORDER BY clause with id ascending as the tie-break.
// Unknown columns fall back to id so nothing unvetted reaches the SQL text.
func (r *implRepository) buildOrderBy(o repo.OrderBy) string {
	col := o.Column
	if !col.Valid() {
		col = repo.ColumnID
	}
	dir := "ASC"
	if o.Desc {
		dir = "DESC"
	}
	if col == repo.ColumnID {
		return fmt.Sprintf("ORDER BY id %s", dir)
	}
	return fmt.Sprintf("ORDER BY %s %s, id ASC", col, dir)
}

// buildPageQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for PageProducts.
func (r *implRepository) buildPageQuery(opt repo.PageProductsOptions) (string, []any) {
	where, args := r.buildFilter(opt.Filter, 1)
	idx := len(args) + 1

	parts := []string{"WHERE " + where, r.buildOrderBy(opt.OrderBy)}

	parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
	args = append(args, opt.Limit)
	idx++

	parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
	args = append(args, opt.Offset)

	return strings.Join(parts, " "), args
}
