package db

import sq "github.com/Masterminds/squirrel"

// qb is the shared Squirrel statement builder, configured for MySQL question
// mark placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)
