package query

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// ParamType defines how a search parameter maps onto SQL.
type ParamType int

const (
	ParamToken  ParamType = iota // exact match on a column (status, role, category)
	ParamString                  // case-insensitive substring match
	ParamDate                    // equality on a date column (YYYY-MM-DD)
)

// ParamConfig maps a search parameter name to its database column.
type ParamConfig struct {
	Type   ParamType
	Column string
}

// Builder assembles SQL WHERE clauses from request search parameters. It
// encapsulates the common search pattern used across the domain repositories.
type Builder struct {
	table   string
	cols    string
	where   string
	args    []interface{}
	idx     int
	orderBy string
}

// New creates a Builder for the given table and column list.
func New(table, cols string) *Builder {
	return &Builder{
		table: table,
		cols:  cols,
		idx:   1,
	}
}

// Add appends a raw WHERE clause fragment (without leading "AND"). The clause
// must use $N placeholders starting at Idx().
func (b *Builder) Add(clause string, args ...interface{}) {
	b.where += " AND " + clause
	b.args = append(b.args, args...)
	b.idx += len(args)
}

// Idx returns the next available parameter index.
func (b *Builder) Idx() int { return b.idx }

// ApplyParam applies a single search parameter using the config.
func (b *Builder) ApplyParam(config ParamConfig, value string) {
	switch config.Type {
	case ParamToken, ParamDate:
		b.where += fmt.Sprintf(" AND %s = $%d", config.Column, b.idx)
		b.args = append(b.args, value)
		b.idx++
	case ParamString:
		b.where += fmt.Sprintf(" AND %s ILIKE $%d", config.Column, b.idx)
		b.args = append(b.args, "%"+value+"%")
		b.idx++
	}
}

// ApplyParams applies all matching search parameters from the given map.
// Unknown parameters are ignored.
func (b *Builder) ApplyParams(params map[string]string, configs map[string]ParamConfig) {
	for name, value := range params {
		if config, ok := configs[name]; ok {
			b.ApplyParam(config, value)
		}
	}
}

// OrderBy sets the ORDER BY clause (without the "ORDER BY" keyword).
func (b *Builder) OrderBy(orderBy string) {
	b.orderBy = orderBy
}

// CountSQL returns the count query SQL.
func (b *Builder) CountSQL() string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE 1=1%s", b.table, b.where)
}

// CountArgs returns the arguments for the count query.
func (b *Builder) CountArgs() []interface{} {
	return b.args
}

// DataSQL returns the data query SQL with ORDER BY and LIMIT/OFFSET.
func (b *Builder) DataSQL(limit, offset int) string {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE 1=1%s", b.cols, b.table, b.where)
	if b.orderBy != "" {
		sql += " ORDER BY " + b.orderBy
	}
	sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", b.idx, b.idx+1)
	return sql
}

// DataArgs returns the arguments for the data query (search args + limit + offset).
func (b *Builder) DataArgs(limit, offset int) []interface{} {
	result := make([]interface{}, len(b.args)+2)
	copy(result, b.args)
	result[len(b.args)] = limit
	result[len(b.args)+1] = offset
	return result
}

// ExtractParams extracts search parameters from the query string, excluding
// pagination controls. Unknown params are included; ApplyParams ignores ones
// not in the repo's config.
func ExtractParams(c echo.Context) map[string]string {
	params := map[string]string{}
	for k, v := range c.QueryParams() {
		if len(v) == 0 || k == "limit" || k == "offset" || strings.HasPrefix(k, "_") {
			continue
		}
		params[k] = v[0]
	}
	return params
}
