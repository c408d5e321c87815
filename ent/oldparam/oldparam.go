// Code generated by ent, DO NOT EDIT.

package oldparam

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the oldparam type in the database.
	Label = "old_param"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIDTest holds the string denoting the id_test field in the database.
	FieldIDTest = "id_test"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldTestParams holds the string denoting the test_params field in the database.
	FieldTestParams = "test_params"
	// FieldChanged holds the string denoting the changed field in the database.
	FieldChanged = "changed"
	// Table holds the table name of the oldparam in the database.
	Table = "old_params"
)

// Columns holds all SQL columns for oldparam fields.
var Columns = []string{
	FieldID,
	FieldIDTest,
	FieldVersion,
	FieldTestParams,
	FieldChanged,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the OldParam queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIDTest orders the results by the id_test field.
func ByIDTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIDTest, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByTestParams orders the results by the test_params field.
func ByTestParams(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestParams, opts...).ToFunc()
}

// ByChanged orders the results by the changed field.
func ByChanged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChanged, opts...).ToFunc()
}
