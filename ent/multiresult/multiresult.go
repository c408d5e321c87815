// Code generated by ent, DO NOT EDIT.

package multiresult

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the multiresult type in the database.
	Label = "multi_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrchestratorName holds the string denoting the orchestrator_name field in the database.
	FieldOrchestratorName = "orchestrator_name"
	// FieldTestIds holds the string denoting the test_ids field in the database.
	FieldTestIds = "test_ids"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldLastUsedTime holds the string denoting the last_used_time field in the database.
	FieldLastUsedTime = "last_used_time"
	// Table holds the table name of the multiresult in the database.
	Table = "multi_results"
)

// Columns holds all SQL columns for multiresult fields.
var Columns = []string{
	FieldID,
	FieldOrchestratorName,
	FieldTestIds,
	FieldKey,
	FieldLastUsedTime,
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

// OrderOption defines the ordering options for the MultiResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrchestratorName orders the results by the orchestrator_name field.
func ByOrchestratorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrchestratorName, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByLastUsedTime orders the results by the last_used_time field.
func ByLastUsedTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedTime, opts...).ToFunc()
}
