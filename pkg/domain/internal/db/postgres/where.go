package postgres

import (
	"fmt"
	"strings"
)

// Where builds a where clause with positional parameters.
//
//	w := Where{}
//	Any(&w, `"status"`, []string{"new"})
//	w.Add(`%s <= "updated_at"`, since)
//	rows, err := conn.Query(ctx, `select ... from "leads" `+w.String(), w.Args()...)
type Where struct {
	conds []string
	args  []any
}

// Add adds a condition. format should have one "%s", which is replaced with the parameter placeholder.
func (w *Where) Add(format string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(format, fmt.Sprintf("$%d", len(w.args))))
}

// Any adds `column = any($n)`, unless values are empty.
func Any[T ~string](w *Where, column string, values []T) {
	if len(values) == 0 {
		return
	}
	w.Add(column+` = any(%s)`, Strings(values))
}

// Strings converts string-like values into []string, which pgx can send as an array.
func Strings[T ~string](values []T) []string {
	ret := make([]string, len(values))
	for i := range values {
		ret[i] = string(values[i])
	}
	return ret
}

func (w *Where) Args() []any {
	return w.args
}

func (w *Where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "where " + strings.Join(w.conds, " and ")
}
