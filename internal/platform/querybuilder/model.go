package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel starts an INSERT with one column per db-tagged exported field
// of model. Problems with model are reported by ToSQL.
func InsertModel(table string, model any) *InsertBuilder {
	b := InsertInto(table)
	cols, vals, err := modelColumns(model)
	if err != nil {
		b.err = err
		return b
	}
	return b.Columns(cols...).Values(vals...)
}

// UpdateModel starts an UPDATE that sets every db-tagged field of model.
// Callers still add Where conditions and expression columns.
func UpdateModel(table string, model any) *UpdateBuilder {
	b := Update(table)
	cols, vals, err := modelColumns(model)
	if err != nil {
		b.err = err
		return b
	}
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b
}

func modelColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", value.Kind())
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return cols, vals, nil
}
