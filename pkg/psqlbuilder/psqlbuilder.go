package psqlbuilder

import (
	sq "github.com/Masterminds/squirrel"
)

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Builder возвращает построитель запросов для PostgreSQL ($1, $2, ...)
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ForDriver возвращает построитель с форматом плейсхолдеров под драйвер.
// Для неизвестного драйвера используется формат PostgreSQL.
func ForDriver(driver string) sq.StatementBuilderType {
	switch driver {
	case DriverSQLite:
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	case DriverPostgres:
		return Builder()
	}
	return Builder()
}
