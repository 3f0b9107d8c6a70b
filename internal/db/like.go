package db

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains returns a LIKE/ILIKE pattern matching s as a literal substring.
// Wildcards in s are escaped with the default backslash escape character.
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
