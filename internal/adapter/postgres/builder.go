package postgres

import "github.com/Masterminds/squirrel"

// Builder is a squirrel statement builder using PostgreSQL $n placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
