package commands

import (
	"fmt"
	"regexp"
	"strings"
)

// readStatements are the leading keywords of statements that only read the
// export database
var readStatements = map[string]bool{
	"select":  true,
	"with":    true,
	"values":  true,
	"explain": true,
	"pragma":  true,
}

// inspectionPragmas describe the exported flights table without changing it
var inspectionPragmas = map[string]bool{
	"table_info":      true,
	"table_xinfo":     true,
	"table_list":      true,
	"index_list":      true,
	"index_info":      true,
	"user_version":    true,
	"schema_version":  true,
	"database_list":   true,
	"compile_options": true,
}

var (
	writeKeywordRegex = regexp.MustCompile(`\b(insert|update|delete|drop|create|alter|attach|detach|vacuum|reindex|begin|commit|rollback|savepoint|release)\b`)
	pragmaRegex       = regexp.MustCompile(`^pragma\s+(?:\w+\.)?(\w+)\s*(=|\()?`)
	leadingWordRegex  = regexp.MustCompile(`^[a-z]+`)
)

// ValidateReadOnlyQuery checks that query is a single statement that reads
// the exported flights. It gives early, readable errors; the query
// connection itself is opened read-only.
func ValidateReadOnlyQuery(query string) error {
	stmt, err := singleStatement(stripLiterals(query))
	if err != nil {
		return err
	}

	verb := leadingWordRegex.FindString(stmt)
	if verb == "" {
		return fmt.Errorf("query must start with a SQL keyword")
	}
	if !readStatements[verb] {
		return fmt.Errorf("%s statements are not allowed: the export database is read-only", strings.ToUpper(verb))
	}

	if verb == "pragma" {
		m := pragmaRegex.FindStringSubmatch(stmt)
		if m == nil {
			return fmt.Errorf("malformed PRAGMA statement")
		}
		if m[2] == "=" {
			return fmt.Errorf("PRAGMA assignments are not allowed: the export database is read-only")
		}
		if !inspectionPragmas[m[1]] {
			return fmt.Errorf("PRAGMA %s is not allowed: only schema inspection pragmas can be run", m[1])
		}
	}

	if kw := writeKeywordRegex.FindString(stmt); kw != "" {
		return fmt.Errorf("query contains %s: the export database is read-only", strings.ToUpper(kw))
	}

	return nil
}

// singleStatement returns the one non-empty statement of query, lowercased
func singleStatement(query string) (string, error) {
	var statements []string
	for _, part := range strings.Split(query, ";") {
		if s := strings.TrimSpace(part); s != "" {
			statements = append(statements, strings.ToLower(s))
		}
	}

	switch len(statements) {
	case 0:
		return "", fmt.Errorf("empty query")
	case 1:
		return statements[0], nil
	default:
		return "", fmt.Errorf("%d statements given: run one query at a time", len(statements))
	}
}

// stripLiterals blanks out string literals, quoted identifiers and comments
// so that their contents are not mistaken for SQL keywords or separators.
func stripLiterals(query string) string {
	var b strings.Builder
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			end := strings.IndexByte(query[i+1:], c)
			if end < 0 {
				i = len(query)
			} else {
				i += end + 1
			}
			b.WriteString(" ''")
		case c == '[':
			end := strings.IndexByte(query[i+1:], ']')
			if end < 0 {
				i = len(query)
			} else {
				i += end + 1
			}
			b.WriteString(" ''")
		case c == '-' && i+1 < len(query) && query[i+1] == '-':
			end := strings.IndexByte(query[i:], '\n')
			if end < 0 {
				i = len(query)
			} else {
				i += end
			}
			b.WriteByte(' ')
		case c == '/' && i+1 < len(query) && query[i+1] == '*':
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				i = len(query)
			} else {
				i += end + 3
			}
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
