package scanner

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type Queryer interface {
	Query(context.Context, string, ...any) (pgx.Rows, error)
}

// Scanner reads pgx.Rows into []T.
//
// When T is a struct, a column is stored into the field
//
//  1. tagged `sql:"column_name"`, or
//  2. named as the column in CamelCase ("client_id" -> "ClientId").
//
// Otherwise, rows must have exactly one column and it is scanned into T.
type Scanner[T any] interface {
	ScanAll(pgx.Rows) ([]T, error)
	QueryAll(ctx context.Context, q Queryer, sql string, args ...any) ([]T, error)
}

func New[T any]() Scanner[T] {
	typ := reflect.TypeOf(*new(T))
	if typ.Kind() != reflect.Struct || typ == reflect.TypeOf(time.Time{}) {
		return single[T]{}
	}

	fields := map[string]int{}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if tag, ok := f.Tag.Lookup("sql"); ok {
			fields[tag] = i
			continue
		}
		if _, ok := fields[f.Name]; !ok {
			fields[f.Name] = i
		}
	}
	return record[T]{fields: fields}
}

func camel(s string) string {
	b := &strings.Builder{}
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

type record[T any] struct {
	fields map[string]int
}

func (r record[T]) ScanAll(rows pgx.Rows) ([]T, error) {
	cols := rows.FieldDescriptions()
	index := make([]int, len(cols))
	for nth, fd := range cols {
		col := string(fd.Name)
		i, ok := r.fields[col]
		if !ok {
			i, ok = r.fields[camel(col)]
		}
		if !ok {
			return nil, fmt.Errorf(
				`field for column "%s" (%s) is not found in type %T`,
				col, oidName(fd.DataTypeOID), *new(T),
			)
		}
		index[nth] = i
	}

	ret := []T{}
	for rows.Next() {
		elem := new(T)
		v := reflect.ValueOf(elem).Elem()
		dest := make([]any, len(index))
		for nth, i := range index {
			dest[nth] = v.Field(i).Addr().Interface()
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		ret = append(ret, *elem)
	}
	return ret, rows.Err()
}

func (r record[T]) QueryAll(ctx context.Context, q Queryer, sql string, args ...any) ([]T, error) {
	return queryAll[T](ctx, r, q, sql, args...)
}

type single[T any] struct{}

func (single[T]) ScanAll(rows pgx.Rows) ([]T, error) {
	if cols := rows.FieldDescriptions(); len(cols) != 1 {
		return nil, fmt.Errorf("%d columns can not be scanned into %T", len(cols), *new(T))
	}
	ret := []T{}
	for rows.Next() {
		var elem T
		if err := rows.Scan(&elem); err != nil {
			return nil, err
		}
		ret = append(ret, elem)
	}
	return ret, rows.Err()
}

func (s single[T]) QueryAll(ctx context.Context, q Queryer, sql string, args ...any) ([]T, error) {
	return queryAll[T](ctx, s, q, sql, args...)
}

func queryAll[T any](ctx context.Context, s Scanner[T], q Queryer, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return s.ScanAll(rows)
}

var connInfo = pgtype.NewConnInfo()

func oidName(oid uint32) string {
	if dt, ok := connInfo.DataTypeForOID(oid); ok {
		return dt.Name
	}
	return fmt.Sprintf("oid %d", oid)
}
