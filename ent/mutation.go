// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/event"
	"github.com/inventor-project/symon/ent/multiresult"
	"github.com/inventor-project/symon/ent/nonce"
	"github.com/inventor-project/symon/ent/oldparam"
	"github.com/inventor-project/symon/ent/orchestrator"
	"github.com/inventor-project/symon/ent/predicate"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/result"
	"github.com/inventor-project/symon/ent/run"
	"github.com/inventor-project/symon/ent/stat"
	"github.com/inventor-project/symon/ent/test"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvent        = "Event"
	TypeMultiResult  = "MultiResult"
	TypeNonce        = "Nonce"
	TypeOldParam     = "OldParam"
	TypeOrchestrator = "Orchestrator"
	TypeRequest      = "Request"
	TypeResult       = "Result"
	TypeRun          = "Run"
	TypeStat         = "Stat"
	TypeTest         = "Test"
)

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	id_test             *int
	addid_test          *int
	run_at              *time.Time
	source              *event.Source
	recovery_attempt    *int
	addrecovery_attempt *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Event, error)
	predicates          []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIDTest sets the "id_test" field.
func (m *EventMutation) SetIDTest(i int) {
	m.id_test = &i
	m.addid_test = nil
}

// IDTest returns the value of the "id_test" field in the mutation.
func (m *EventMutation) IDTest() (r int, exists bool) {
	v := m.id_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIDTest returns the old "id_test" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIDTest(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDTest: %w", err)
	}
	return oldValue.IDTest, nil
}

// AddIDTest adds i to the "id_test" field.
func (m *EventMutation) AddIDTest(i int) {
	if m.addid_test != nil {
		*m.addid_test += i
	} else {
		m.addid_test = &i
	}
}

// AddedIDTest returns the value that was added to the "id_test" field in this mutation.
func (m *EventMutation) AddedIDTest() (r int, exists bool) {
	v := m.addid_test
	if v == nil {
		return
	}
	return *v, true
}

// ResetIDTest resets all changes to the "id_test" field.
func (m *EventMutation) ResetIDTest() {
	m.id_test = nil
	m.addid_test = nil
}

// SetRunAt sets the "run_at" field.
func (m *EventMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *EventMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *EventMutation) ResetRunAt() {
	m.run_at = nil
}

// SetSource sets the "source" field.
func (m *EventMutation) SetSource(e event.Source) {
	m.source = &e
}

// Source returns the value of the "source" field in the mutation.
func (m *EventMutation) Source() (r event.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSource(ctx context.Context) (v event.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EventMutation) ResetSource() {
	m.source = nil
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (m *EventMutation) SetRecoveryAttempt(i int) {
	m.recovery_attempt = &i
	m.addrecovery_attempt = nil
}

// RecoveryAttempt returns the value of the "recovery_attempt" field in the mutation.
func (m *EventMutation) RecoveryAttempt() (r int, exists bool) {
	v := m.recovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempt returns the old "recovery_attempt" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRecoveryAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempt: %w", err)
	}
	return oldValue.RecoveryAttempt, nil
}

// AddRecoveryAttempt adds i to the "recovery_attempt" field.
func (m *EventMutation) AddRecoveryAttempt(i int) {
	if m.addrecovery_attempt != nil {
		*m.addrecovery_attempt += i
	} else {
		m.addrecovery_attempt = &i
	}
}

// AddedRecoveryAttempt returns the value that was added to the "recovery_attempt" field in this mutation.
func (m *EventMutation) AddedRecoveryAttempt() (r int, exists bool) {
	v := m.addrecovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempt resets all changes to the "recovery_attempt" field.
func (m *EventMutation) ResetRecoveryAttempt() {
	m.recovery_attempt = nil
	m.addrecovery_attempt = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.id_test != nil {
		fields = append(fields, event.FieldIDTest)
	}
	if m.run_at != nil {
		fields = append(fields, event.FieldRunAt)
	}
	if m.source != nil {
		fields = append(fields, event.FieldSource)
	}
	if m.recovery_attempt != nil {
		fields = append(fields, event.FieldRecoveryAttempt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldIDTest:
		return m.IDTest()
	case event.FieldRunAt:
		return m.RunAt()
	case event.FieldSource:
		return m.Source()
	case event.FieldRecoveryAttempt:
		return m.RecoveryAttempt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldIDTest:
		return m.OldIDTest(ctx)
	case event.FieldRunAt:
		return m.OldRunAt(ctx)
	case event.FieldSource:
		return m.OldSource(ctx)
	case event.FieldRecoveryAttempt:
		return m.OldRecoveryAttempt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDTest(v)
		return nil
	case event.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case event.FieldSource:
		v, ok := value.(event.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case event.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addid_test != nil {
		fields = append(fields, event.FieldIDTest)
	}
	if m.addrecovery_attempt != nil {
		fields = append(fields, event.FieldRecoveryAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldIDTest:
		return m.AddedIDTest()
	case event.FieldRecoveryAttempt:
		return m.AddedRecoveryAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIDTest(v)
		return nil
	case event.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldIDTest:
		m.ResetIDTest()
		return nil
	case event.FieldRunAt:
		m.ResetRunAt()
		return nil
	case event.FieldSource:
		m.ResetSource()
		return nil
	case event.FieldRecoveryAttempt:
		m.ResetRecoveryAttempt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// MultiResultMutation represents an operation that mutates the MultiResult nodes in the graph.
type MultiResultMutation struct {
	config
	op                Op
	typ               string
	id                *int
	orchestrator_name *string
	test_ids          *[]int
	appendtest_ids    []int
	key               *string
	last_used_time    *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*MultiResult, error)
	predicates        []predicate.MultiResult
}

var _ ent.Mutation = (*MultiResultMutation)(nil)

// multiresultOption allows management of the mutation configuration using functional options.
type multiresultOption func(*MultiResultMutation)

// newMultiResultMutation creates new mutation for the MultiResult entity.
func newMultiResultMutation(c config, op Op, opts ...multiresultOption) *MultiResultMutation {
	m := &MultiResultMutation{
		config:        c,
		op:            op,
		typ:           TypeMultiResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMultiResultID sets the ID field of the mutation.
func withMultiResultID(id int) multiresultOption {
	return func(m *MultiResultMutation) {
		var (
			err   error
			once  sync.Once
			value *MultiResult
		)
		m.oldValue = func(ctx context.Context) (*MultiResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MultiResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMultiResult sets the old MultiResult of the mutation.
func withMultiResult(node *MultiResult) multiresultOption {
	return func(m *MultiResultMutation) {
		m.oldValue = func(context.Context) (*MultiResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MultiResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MultiResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MultiResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MultiResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MultiResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrchestratorName sets the "orchestrator_name" field.
func (m *MultiResultMutation) SetOrchestratorName(s string) {
	m.orchestrator_name = &s
}

// OrchestratorName returns the value of the "orchestrator_name" field in the mutation.
func (m *MultiResultMutation) OrchestratorName() (r string, exists bool) {
	v := m.orchestrator_name
	if v == nil {
		return
	}
	return *v, true
}

// OldOrchestratorName returns the old "orchestrator_name" field's value of the MultiResult entity.
// If the MultiResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MultiResultMutation) OldOrchestratorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrchestratorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrchestratorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrchestratorName: %w", err)
	}
	return oldValue.OrchestratorName, nil
}

// ResetOrchestratorName resets all changes to the "orchestrator_name" field.
func (m *MultiResultMutation) ResetOrchestratorName() {
	m.orchestrator_name = nil
}

// SetTestIds sets the "test_ids" field.
func (m *MultiResultMutation) SetTestIds(i []int) {
	m.test_ids = &i
	m.appendtest_ids = nil
}

// TestIds returns the value of the "test_ids" field in the mutation.
func (m *MultiResultMutation) TestIds() (r []int, exists bool) {
	v := m.test_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldTestIds returns the old "test_ids" field's value of the MultiResult entity.
// If the MultiResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MultiResultMutation) OldTestIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestIds: %w", err)
	}
	return oldValue.TestIds, nil
}

// AppendTestIds adds i to the "test_ids" field.
func (m *MultiResultMutation) AppendTestIds(i []int) {
	m.appendtest_ids = append(m.appendtest_ids, i...)
}

// AppendedTestIds returns the list of values that were appended to the "test_ids" field in this mutation.
func (m *MultiResultMutation) AppendedTestIds() ([]int, bool) {
	if len(m.appendtest_ids) == 0 {
		return nil, false
	}
	return m.appendtest_ids, true
}

// ResetTestIds resets all changes to the "test_ids" field.
func (m *MultiResultMutation) ResetTestIds() {
	m.test_ids = nil
	m.appendtest_ids = nil
}

// SetKey sets the "key" field.
func (m *MultiResultMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *MultiResultMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the MultiResult entity.
// If the MultiResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MultiResultMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *MultiResultMutation) ResetKey() {
	m.key = nil
}

// SetLastUsedTime sets the "last_used_time" field.
func (m *MultiResultMutation) SetLastUsedTime(t time.Time) {
	m.last_used_time = &t
}

// LastUsedTime returns the value of the "last_used_time" field in the mutation.
func (m *MultiResultMutation) LastUsedTime() (r time.Time, exists bool) {
	v := m.last_used_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedTime returns the old "last_used_time" field's value of the MultiResult entity.
// If the MultiResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MultiResultMutation) OldLastUsedTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedTime: %w", err)
	}
	return oldValue.LastUsedTime, nil
}

// ClearLastUsedTime clears the value of the "last_used_time" field.
func (m *MultiResultMutation) ClearLastUsedTime() {
	m.last_used_time = nil
	m.clearedFields[multiresult.FieldLastUsedTime] = struct{}{}
}

// LastUsedTimeCleared returns if the "last_used_time" field was cleared in this mutation.
func (m *MultiResultMutation) LastUsedTimeCleared() bool {
	_, ok := m.clearedFields[multiresult.FieldLastUsedTime]
	return ok
}

// ResetLastUsedTime resets all changes to the "last_used_time" field.
func (m *MultiResultMutation) ResetLastUsedTime() {
	m.last_used_time = nil
	delete(m.clearedFields, multiresult.FieldLastUsedTime)
}

// Where appends a list predicates to the MultiResultMutation builder.
func (m *MultiResultMutation) Where(ps ...predicate.MultiResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MultiResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MultiResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MultiResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MultiResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MultiResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MultiResult).
func (m *MultiResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MultiResultMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.orchestrator_name != nil {
		fields = append(fields, multiresult.FieldOrchestratorName)
	}
	if m.test_ids != nil {
		fields = append(fields, multiresult.FieldTestIds)
	}
	if m.key != nil {
		fields = append(fields, multiresult.FieldKey)
	}
	if m.last_used_time != nil {
		fields = append(fields, multiresult.FieldLastUsedTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MultiResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case multiresult.FieldOrchestratorName:
		return m.OrchestratorName()
	case multiresult.FieldTestIds:
		return m.TestIds()
	case multiresult.FieldKey:
		return m.Key()
	case multiresult.FieldLastUsedTime:
		return m.LastUsedTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MultiResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case multiresult.FieldOrchestratorName:
		return m.OldOrchestratorName(ctx)
	case multiresult.FieldTestIds:
		return m.OldTestIds(ctx)
	case multiresult.FieldKey:
		return m.OldKey(ctx)
	case multiresult.FieldLastUsedTime:
		return m.OldLastUsedTime(ctx)
	}
	return nil, fmt.Errorf("unknown MultiResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MultiResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case multiresult.FieldOrchestratorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrchestratorName(v)
		return nil
	case multiresult.FieldTestIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestIds(v)
		return nil
	case multiresult.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case multiresult.FieldLastUsedTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedTime(v)
		return nil
	}
	return fmt.Errorf("unknown MultiResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MultiResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MultiResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MultiResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MultiResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MultiResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(multiresult.FieldLastUsedTime) {
		fields = append(fields, multiresult.FieldLastUsedTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MultiResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MultiResultMutation) ClearField(name string) error {
	switch name {
	case multiresult.FieldLastUsedTime:
		m.ClearLastUsedTime()
		return nil
	}
	return fmt.Errorf("unknown MultiResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MultiResultMutation) ResetField(name string) error {
	switch name {
	case multiresult.FieldOrchestratorName:
		m.ResetOrchestratorName()
		return nil
	case multiresult.FieldTestIds:
		m.ResetTestIds()
		return nil
	case multiresult.FieldKey:
		m.ResetKey()
		return nil
	case multiresult.FieldLastUsedTime:
		m.ResetLastUsedTime()
		return nil
	}
	return fmt.Errorf("unknown MultiResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MultiResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MultiResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MultiResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MultiResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MultiResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MultiResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MultiResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MultiResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MultiResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MultiResult edge %s", name)
}

// NonceMutation represents an operation that mutates the Nonce nodes in the graph.
type NonceMutation struct {
	config
	op            Op
	typ           string
	id            *int
	nonce         *string
	used_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Nonce, error)
	predicates    []predicate.Nonce
}

var _ ent.Mutation = (*NonceMutation)(nil)

// nonceOption allows management of the mutation configuration using functional options.
type nonceOption func(*NonceMutation)

// newNonceMutation creates new mutation for the Nonce entity.
func newNonceMutation(c config, op Op, opts ...nonceOption) *NonceMutation {
	m := &NonceMutation{
		config:        c,
		op:            op,
		typ:           TypeNonce,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNonceID sets the ID field of the mutation.
func withNonceID(id int) nonceOption {
	return func(m *NonceMutation) {
		var (
			err   error
			once  sync.Once
			value *Nonce
		)
		m.oldValue = func(ctx context.Context) (*Nonce, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Nonce.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNonce sets the old Nonce of the mutation.
func withNonce(node *Nonce) nonceOption {
	return func(m *NonceMutation) {
		m.oldValue = func(context.Context) (*Nonce, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NonceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NonceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NonceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NonceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Nonce.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNonce sets the "nonce" field.
func (m *NonceMutation) SetNonce(s string) {
	m.nonce = &s
}

// Nonce returns the value of the "nonce" field in the mutation.
func (m *NonceMutation) Nonce() (r string, exists bool) {
	v := m.nonce
	if v == nil {
		return
	}
	return *v, true
}

// OldNonce returns the old "nonce" field's value of the Nonce entity.
// If the Nonce object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NonceMutation) OldNonce(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNonce is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNonce requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNonce: %w", err)
	}
	return oldValue.Nonce, nil
}

// ResetNonce resets all changes to the "nonce" field.
func (m *NonceMutation) ResetNonce() {
	m.nonce = nil
}

// SetUsedAt sets the "used_at" field.
func (m *NonceMutation) SetUsedAt(t time.Time) {
	m.used_at = &t
}

// UsedAt returns the value of the "used_at" field in the mutation.
func (m *NonceMutation) UsedAt() (r time.Time, exists bool) {
	v := m.used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUsedAt returns the old "used_at" field's value of the Nonce entity.
// If the Nonce object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NonceMutation) OldUsedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsedAt: %w", err)
	}
	return oldValue.UsedAt, nil
}

// ResetUsedAt resets all changes to the "used_at" field.
func (m *NonceMutation) ResetUsedAt() {
	m.used_at = nil
}

// Where appends a list predicates to the NonceMutation builder.
func (m *NonceMutation) Where(ps ...predicate.Nonce) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NonceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NonceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Nonce, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NonceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NonceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Nonce).
func (m *NonceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NonceMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.nonce != nil {
		fields = append(fields, nonce.FieldNonce)
	}
	if m.used_at != nil {
		fields = append(fields, nonce.FieldUsedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NonceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nonce.FieldNonce:
		return m.Nonce()
	case nonce.FieldUsedAt:
		return m.UsedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NonceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nonce.FieldNonce:
		return m.OldNonce(ctx)
	case nonce.FieldUsedAt:
		return m.OldUsedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Nonce field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NonceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nonce.FieldNonce:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNonce(v)
		return nil
	case nonce.FieldUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Nonce field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NonceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NonceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NonceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Nonce numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NonceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NonceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NonceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Nonce nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NonceMutation) ResetField(name string) error {
	switch name {
	case nonce.FieldNonce:
		m.ResetNonce()
		return nil
	case nonce.FieldUsedAt:
		m.ResetUsedAt()
		return nil
	}
	return fmt.Errorf("unknown Nonce field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NonceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NonceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NonceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NonceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NonceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NonceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NonceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Nonce unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NonceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Nonce edge %s", name)
}

// OldParamMutation represents an operation that mutates the OldParam nodes in the graph.
type OldParamMutation struct {
	config
	op            Op
	typ           string
	id            *int
	id_test       *int
	addid_test    *int
	version       *int
	addversion    *int
	test_params   *string
	changed       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*OldParam, error)
	predicates    []predicate.OldParam
}

var _ ent.Mutation = (*OldParamMutation)(nil)

// oldparamOption allows management of the mutation configuration using functional options.
type oldparamOption func(*OldParamMutation)

// newOldParamMutation creates new mutation for the OldParam entity.
func newOldParamMutation(c config, op Op, opts ...oldparamOption) *OldParamMutation {
	m := &OldParamMutation{
		config:        c,
		op:            op,
		typ:           TypeOldParam,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOldParamID sets the ID field of the mutation.
func withOldParamID(id int) oldparamOption {
	return func(m *OldParamMutation) {
		var (
			err   error
			once  sync.Once
			value *OldParam
		)
		m.oldValue = func(ctx context.Context) (*OldParam, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OldParam.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOldParam sets the old OldParam of the mutation.
func withOldParam(node *OldParam) oldparamOption {
	return func(m *OldParamMutation) {
		m.oldValue = func(context.Context) (*OldParam, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OldParamMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OldParamMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OldParamMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OldParamMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OldParam.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIDTest sets the "id_test" field.
func (m *OldParamMutation) SetIDTest(i int) {
	m.id_test = &i
	m.addid_test = nil
}

// IDTest returns the value of the "id_test" field in the mutation.
func (m *OldParamMutation) IDTest() (r int, exists bool) {
	v := m.id_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIDTest returns the old "id_test" field's value of the OldParam entity.
// If the OldParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OldParamMutation) OldIDTest(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDTest: %w", err)
	}
	return oldValue.IDTest, nil
}

// AddIDTest adds i to the "id_test" field.
func (m *OldParamMutation) AddIDTest(i int) {
	if m.addid_test != nil {
		*m.addid_test += i
	} else {
		m.addid_test = &i
	}
}

// AddedIDTest returns the value that was added to the "id_test" field in this mutation.
func (m *OldParamMutation) AddedIDTest() (r int, exists bool) {
	v := m.addid_test
	if v == nil {
		return
	}
	return *v, true
}

// ResetIDTest resets all changes to the "id_test" field.
func (m *OldParamMutation) ResetIDTest() {
	m.id_test = nil
	m.addid_test = nil
}

// SetVersion sets the "version" field.
func (m *OldParamMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *OldParamMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the OldParam entity.
// If the OldParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OldParamMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *OldParamMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *OldParamMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *OldParamMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetTestParams sets the "test_params" field.
func (m *OldParamMutation) SetTestParams(s string) {
	m.test_params = &s
}

// TestParams returns the value of the "test_params" field in the mutation.
func (m *OldParamMutation) TestParams() (r string, exists bool) {
	v := m.test_params
	if v == nil {
		return
	}
	return *v, true
}

// OldTestParams returns the old "test_params" field's value of the OldParam entity.
// If the OldParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OldParamMutation) OldTestParams(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestParams: %w", err)
	}
	return oldValue.TestParams, nil
}

// ResetTestParams resets all changes to the "test_params" field.
func (m *OldParamMutation) ResetTestParams() {
	m.test_params = nil
}

// SetChanged sets the "changed" field.
func (m *OldParamMutation) SetChanged(t time.Time) {
	m.changed = &t
}

// Changed returns the value of the "changed" field in the mutation.
func (m *OldParamMutation) Changed() (r time.Time, exists bool) {
	v := m.changed
	if v == nil {
		return
	}
	return *v, true
}

// OldChanged returns the old "changed" field's value of the OldParam entity.
// If the OldParam object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OldParamMutation) OldChanged(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChanged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChanged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChanged: %w", err)
	}
	return oldValue.Changed, nil
}

// ResetChanged resets all changes to the "changed" field.
func (m *OldParamMutation) ResetChanged() {
	m.changed = nil
}

// Where appends a list predicates to the OldParamMutation builder.
func (m *OldParamMutation) Where(ps ...predicate.OldParam) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OldParamMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OldParamMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OldParam, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OldParamMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OldParamMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OldParam).
func (m *OldParamMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OldParamMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.id_test != nil {
		fields = append(fields, oldparam.FieldIDTest)
	}
	if m.version != nil {
		fields = append(fields, oldparam.FieldVersion)
	}
	if m.test_params != nil {
		fields = append(fields, oldparam.FieldTestParams)
	}
	if m.changed != nil {
		fields = append(fields, oldparam.FieldChanged)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OldParamMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oldparam.FieldIDTest:
		return m.IDTest()
	case oldparam.FieldVersion:
		return m.Version()
	case oldparam.FieldTestParams:
		return m.TestParams()
	case oldparam.FieldChanged:
		return m.Changed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OldParamMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oldparam.FieldIDTest:
		return m.OldIDTest(ctx)
	case oldparam.FieldVersion:
		return m.OldVersion(ctx)
	case oldparam.FieldTestParams:
		return m.OldTestParams(ctx)
	case oldparam.FieldChanged:
		return m.OldChanged(ctx)
	}
	return nil, fmt.Errorf("unknown OldParam field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OldParamMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oldparam.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDTest(v)
		return nil
	case oldparam.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case oldparam.FieldTestParams:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestParams(v)
		return nil
	case oldparam.FieldChanged:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChanged(v)
		return nil
	}
	return fmt.Errorf("unknown OldParam field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OldParamMutation) AddedFields() []string {
	var fields []string
	if m.addid_test != nil {
		fields = append(fields, oldparam.FieldIDTest)
	}
	if m.addversion != nil {
		fields = append(fields, oldparam.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OldParamMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case oldparam.FieldIDTest:
		return m.AddedIDTest()
	case oldparam.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OldParamMutation) AddField(name string, value ent.Value) error {
	switch name {
	case oldparam.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIDTest(v)
		return nil
	case oldparam.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown OldParam numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OldParamMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OldParamMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OldParamMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OldParam nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OldParamMutation) ResetField(name string) error {
	switch name {
	case oldparam.FieldIDTest:
		m.ResetIDTest()
		return nil
	case oldparam.FieldVersion:
		m.ResetVersion()
		return nil
	case oldparam.FieldTestParams:
		m.ResetTestParams()
		return nil
	case oldparam.FieldChanged:
		m.ResetChanged()
		return nil
	}
	return fmt.Errorf("unknown OldParam field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OldParamMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OldParamMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OldParamMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OldParamMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OldParamMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OldParamMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OldParamMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OldParam unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OldParamMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OldParam edge %s", name)
}

// OrchestratorMutation represents an operation that mutates the Orchestrator nodes in the graph.
type OrchestratorMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	last_seen     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Orchestrator, error)
	predicates    []predicate.Orchestrator
}

var _ ent.Mutation = (*OrchestratorMutation)(nil)

// orchestratorOption allows management of the mutation configuration using functional options.
type orchestratorOption func(*OrchestratorMutation)

// newOrchestratorMutation creates new mutation for the Orchestrator entity.
func newOrchestratorMutation(c config, op Op, opts ...orchestratorOption) *OrchestratorMutation {
	m := &OrchestratorMutation{
		config:        c,
		op:            op,
		typ:           TypeOrchestrator,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrchestratorID sets the ID field of the mutation.
func withOrchestratorID(id int) orchestratorOption {
	return func(m *OrchestratorMutation) {
		var (
			err   error
			once  sync.Once
			value *Orchestrator
		)
		m.oldValue = func(ctx context.Context) (*Orchestrator, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Orchestrator.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrchestrator sets the old Orchestrator of the mutation.
func withOrchestrator(node *Orchestrator) orchestratorOption {
	return func(m *OrchestratorMutation) {
		m.oldValue = func(context.Context) (*Orchestrator, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrchestratorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrchestratorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrchestratorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrchestratorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Orchestrator.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OrchestratorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrchestratorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Orchestrator entity.
// If the Orchestrator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrchestratorMutation) ResetName() {
	m.name = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *OrchestratorMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *OrchestratorMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Orchestrator entity.
// If the Orchestrator object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrchestratorMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *OrchestratorMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the OrchestratorMutation builder.
func (m *OrchestratorMutation) Where(ps ...predicate.Orchestrator) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrchestratorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrchestratorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Orchestrator, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrchestratorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrchestratorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Orchestrator).
func (m *OrchestratorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrchestratorMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, orchestrator.FieldName)
	}
	if m.last_seen != nil {
		fields = append(fields, orchestrator.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrchestratorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orchestrator.FieldName:
		return m.Name()
	case orchestrator.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrchestratorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orchestrator.FieldName:
		return m.OldName(ctx)
	case orchestrator.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown Orchestrator field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orchestrator.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case orchestrator.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Orchestrator field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrchestratorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrchestratorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrchestratorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Orchestrator numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrchestratorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrchestratorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrchestratorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Orchestrator nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrchestratorMutation) ResetField(name string) error {
	switch name {
	case orchestrator.FieldName:
		m.ResetName()
		return nil
	case orchestrator.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Orchestrator field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrchestratorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrchestratorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrchestratorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrchestratorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrchestratorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrchestratorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrchestratorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Orchestrator unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrchestratorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Orchestrator edge %s", name)
}

// RequestMutation represents an operation that mutates the Request nodes in the graph.
type RequestMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	id_test             *int
	addid_test          *int
	reason              *request.Reason
	recovery_attempt    *int
	addrecovery_attempt *int
	added_time          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Request, error)
	predicates          []predicate.Request
}

var _ ent.Mutation = (*RequestMutation)(nil)

// requestOption allows management of the mutation configuration using functional options.
type requestOption func(*RequestMutation)

// newRequestMutation creates new mutation for the Request entity.
func newRequestMutation(c config, op Op, opts ...requestOption) *RequestMutation {
	m := &RequestMutation{
		config:        c,
		op:            op,
		typ:           TypeRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRequestID sets the ID field of the mutation.
func withRequestID(id int) requestOption {
	return func(m *RequestMutation) {
		var (
			err   error
			once  sync.Once
			value *Request
		)
		m.oldValue = func(ctx context.Context) (*Request, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Request.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRequest sets the old Request of the mutation.
func withRequest(node *Request) requestOption {
	return func(m *RequestMutation) {
		m.oldValue = func(context.Context) (*Request, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RequestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RequestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Request.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIDTest sets the "id_test" field.
func (m *RequestMutation) SetIDTest(i int) {
	m.id_test = &i
	m.addid_test = nil
}

// IDTest returns the value of the "id_test" field in the mutation.
func (m *RequestMutation) IDTest() (r int, exists bool) {
	v := m.id_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIDTest returns the old "id_test" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldIDTest(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDTest: %w", err)
	}
	return oldValue.IDTest, nil
}

// AddIDTest adds i to the "id_test" field.
func (m *RequestMutation) AddIDTest(i int) {
	if m.addid_test != nil {
		*m.addid_test += i
	} else {
		m.addid_test = &i
	}
}

// AddedIDTest returns the value that was added to the "id_test" field in this mutation.
func (m *RequestMutation) AddedIDTest() (r int, exists bool) {
	v := m.addid_test
	if v == nil {
		return
	}
	return *v, true
}

// ResetIDTest resets all changes to the "id_test" field.
func (m *RequestMutation) ResetIDTest() {
	m.id_test = nil
	m.addid_test = nil
}

// SetReason sets the "reason" field.
func (m *RequestMutation) SetReason(r request.Reason) {
	m.reason = &r
}

// Reason returns the value of the "reason" field in the mutation.
func (m *RequestMutation) Reason() (r request.Reason, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldReason(ctx context.Context) (v request.Reason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *RequestMutation) ResetReason() {
	m.reason = nil
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (m *RequestMutation) SetRecoveryAttempt(i int) {
	m.recovery_attempt = &i
	m.addrecovery_attempt = nil
}

// RecoveryAttempt returns the value of the "recovery_attempt" field in the mutation.
func (m *RequestMutation) RecoveryAttempt() (r int, exists bool) {
	v := m.recovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempt returns the old "recovery_attempt" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldRecoveryAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempt: %w", err)
	}
	return oldValue.RecoveryAttempt, nil
}

// AddRecoveryAttempt adds i to the "recovery_attempt" field.
func (m *RequestMutation) AddRecoveryAttempt(i int) {
	if m.addrecovery_attempt != nil {
		*m.addrecovery_attempt += i
	} else {
		m.addrecovery_attempt = &i
	}
}

// AddedRecoveryAttempt returns the value that was added to the "recovery_attempt" field in this mutation.
func (m *RequestMutation) AddedRecoveryAttempt() (r int, exists bool) {
	v := m.addrecovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempt resets all changes to the "recovery_attempt" field.
func (m *RequestMutation) ResetRecoveryAttempt() {
	m.recovery_attempt = nil
	m.addrecovery_attempt = nil
}

// SetAddedTime sets the "added_time" field.
func (m *RequestMutation) SetAddedTime(t time.Time) {
	m.added_time = &t
}

// AddedTime returns the value of the "added_time" field in the mutation.
func (m *RequestMutation) AddedTime() (r time.Time, exists bool) {
	v := m.added_time
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedTime returns the old "added_time" field's value of the Request entity.
// If the Request object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RequestMutation) OldAddedTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedTime: %w", err)
	}
	return oldValue.AddedTime, nil
}

// ResetAddedTime resets all changes to the "added_time" field.
func (m *RequestMutation) ResetAddedTime() {
	m.added_time = nil
}

// Where appends a list predicates to the RequestMutation builder.
func (m *RequestMutation) Where(ps ...predicate.Request) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Request, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Request).
func (m *RequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RequestMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.id_test != nil {
		fields = append(fields, request.FieldIDTest)
	}
	if m.reason != nil {
		fields = append(fields, request.FieldReason)
	}
	if m.recovery_attempt != nil {
		fields = append(fields, request.FieldRecoveryAttempt)
	}
	if m.added_time != nil {
		fields = append(fields, request.FieldAddedTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case request.FieldIDTest:
		return m.IDTest()
	case request.FieldReason:
		return m.Reason()
	case request.FieldRecoveryAttempt:
		return m.RecoveryAttempt()
	case request.FieldAddedTime:
		return m.AddedTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case request.FieldIDTest:
		return m.OldIDTest(ctx)
	case request.FieldReason:
		return m.OldReason(ctx)
	case request.FieldRecoveryAttempt:
		return m.OldRecoveryAttempt(ctx)
	case request.FieldAddedTime:
		return m.OldAddedTime(ctx)
	}
	return nil, fmt.Errorf("unknown Request field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case request.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDTest(v)
		return nil
	case request.FieldReason:
		v, ok := value.(request.Reason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case request.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempt(v)
		return nil
	case request.FieldAddedTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedTime(v)
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RequestMutation) AddedFields() []string {
	var fields []string
	if m.addid_test != nil {
		fields = append(fields, request.FieldIDTest)
	}
	if m.addrecovery_attempt != nil {
		fields = append(fields, request.FieldRecoveryAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case request.FieldIDTest:
		return m.AddedIDTest()
	case request.FieldRecoveryAttempt:
		return m.AddedRecoveryAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case request.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIDTest(v)
		return nil
	case request.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Request numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RequestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RequestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Request nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RequestMutation) ResetField(name string) error {
	switch name {
	case request.FieldIDTest:
		m.ResetIDTest()
		return nil
	case request.FieldReason:
		m.ResetReason()
		return nil
	case request.FieldRecoveryAttempt:
		m.ResetRecoveryAttempt()
		return nil
	case request.FieldAddedTime:
		m.ResetAddedTime()
		return nil
	}
	return fmt.Errorf("unknown Request field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Request unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Request edge %s", name)
}

// ResultMutation represents an operation that mutates the Result nodes in the graph.
type ResultMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	id_test             *int
	addid_test          *int
	version             *int
	addversion          *int
	planned             *time.Time
	started             *time.Time
	finished            *time.Time
	status              *result.Status
	recovery_attempt    *int
	addrecovery_attempt *int
	data                *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Result, error)
	predicates          []predicate.Result
}

var _ ent.Mutation = (*ResultMutation)(nil)

// resultOption allows management of the mutation configuration using functional options.
type resultOption func(*ResultMutation)

// newResultMutation creates new mutation for the Result entity.
func newResultMutation(c config, op Op, opts ...resultOption) *ResultMutation {
	m := &ResultMutation{
		config:        c,
		op:            op,
		typ:           TypeResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResultID sets the ID field of the mutation.
func withResultID(id int) resultOption {
	return func(m *ResultMutation) {
		var (
			err   error
			once  sync.Once
			value *Result
		)
		m.oldValue = func(ctx context.Context) (*Result, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Result.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResult sets the old Result of the mutation.
func withResult(node *Result) resultOption {
	return func(m *ResultMutation) {
		m.oldValue = func(context.Context) (*Result, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Result.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIDTest sets the "id_test" field.
func (m *ResultMutation) SetIDTest(i int) {
	m.id_test = &i
	m.addid_test = nil
}

// IDTest returns the value of the "id_test" field in the mutation.
func (m *ResultMutation) IDTest() (r int, exists bool) {
	v := m.id_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIDTest returns the old "id_test" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldIDTest(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDTest: %w", err)
	}
	return oldValue.IDTest, nil
}

// AddIDTest adds i to the "id_test" field.
func (m *ResultMutation) AddIDTest(i int) {
	if m.addid_test != nil {
		*m.addid_test += i
	} else {
		m.addid_test = &i
	}
}

// AddedIDTest returns the value that was added to the "id_test" field in this mutation.
func (m *ResultMutation) AddedIDTest() (r int, exists bool) {
	v := m.addid_test
	if v == nil {
		return
	}
	return *v, true
}

// ResetIDTest resets all changes to the "id_test" field.
func (m *ResultMutation) ResetIDTest() {
	m.id_test = nil
	m.addid_test = nil
}

// SetVersion sets the "version" field.
func (m *ResultMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ResultMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ResultMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ResultMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ResultMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPlanned sets the "planned" field.
func (m *ResultMutation) SetPlanned(t time.Time) {
	m.planned = &t
}

// Planned returns the value of the "planned" field in the mutation.
func (m *ResultMutation) Planned() (r time.Time, exists bool) {
	v := m.planned
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanned returns the old "planned" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldPlanned(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanned: %w", err)
	}
	return oldValue.Planned, nil
}

// ResetPlanned resets all changes to the "planned" field.
func (m *ResultMutation) ResetPlanned() {
	m.planned = nil
}

// SetStarted sets the "started" field.
func (m *ResultMutation) SetStarted(t time.Time) {
	m.started = &t
}

// Started returns the value of the "started" field in the mutation.
func (m *ResultMutation) Started() (r time.Time, exists bool) {
	v := m.started
	if v == nil {
		return
	}
	return *v, true
}

// OldStarted returns the old "started" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldStarted(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStarted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStarted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStarted: %w", err)
	}
	return oldValue.Started, nil
}

// ClearStarted clears the value of the "started" field.
func (m *ResultMutation) ClearStarted() {
	m.started = nil
	m.clearedFields[result.FieldStarted] = struct{}{}
}

// StartedCleared returns if the "started" field was cleared in this mutation.
func (m *ResultMutation) StartedCleared() bool {
	_, ok := m.clearedFields[result.FieldStarted]
	return ok
}

// ResetStarted resets all changes to the "started" field.
func (m *ResultMutation) ResetStarted() {
	m.started = nil
	delete(m.clearedFields, result.FieldStarted)
}

// SetFinished sets the "finished" field.
func (m *ResultMutation) SetFinished(t time.Time) {
	m.finished = &t
}

// Finished returns the value of the "finished" field in the mutation.
func (m *ResultMutation) Finished() (r time.Time, exists bool) {
	v := m.finished
	if v == nil {
		return
	}
	return *v, true
}

// OldFinished returns the old "finished" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldFinished(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinished: %w", err)
	}
	return oldValue.Finished, nil
}

// ResetFinished resets all changes to the "finished" field.
func (m *ResultMutation) ResetFinished() {
	m.finished = nil
}

// SetStatus sets the "status" field.
func (m *ResultMutation) SetStatus(r result.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *ResultMutation) Status() (r result.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldStatus(ctx context.Context) (v result.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResultMutation) ResetStatus() {
	m.status = nil
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (m *ResultMutation) SetRecoveryAttempt(i int) {
	m.recovery_attempt = &i
	m.addrecovery_attempt = nil
}

// RecoveryAttempt returns the value of the "recovery_attempt" field in the mutation.
func (m *ResultMutation) RecoveryAttempt() (r int, exists bool) {
	v := m.recovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempt returns the old "recovery_attempt" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldRecoveryAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempt: %w", err)
	}
	return oldValue.RecoveryAttempt, nil
}

// AddRecoveryAttempt adds i to the "recovery_attempt" field.
func (m *ResultMutation) AddRecoveryAttempt(i int) {
	if m.addrecovery_attempt != nil {
		*m.addrecovery_attempt += i
	} else {
		m.addrecovery_attempt = &i
	}
}

// AddedRecoveryAttempt returns the value that was added to the "recovery_attempt" field in this mutation.
func (m *ResultMutation) AddedRecoveryAttempt() (r int, exists bool) {
	v := m.addrecovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempt resets all changes to the "recovery_attempt" field.
func (m *ResultMutation) ResetRecoveryAttempt() {
	m.recovery_attempt = nil
	m.addrecovery_attempt = nil
}

// SetData sets the "data" field.
func (m *ResultMutation) SetData(s string) {
	m.data = &s
}

// Data returns the value of the "data" field in the mutation.
func (m *ResultMutation) Data() (r string, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Result entity.
// If the Result object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResultMutation) OldData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *ResultMutation) ClearData() {
	m.data = nil
	m.clearedFields[result.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *ResultMutation) DataCleared() bool {
	_, ok := m.clearedFields[result.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *ResultMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, result.FieldData)
}

// Where appends a list predicates to the ResultMutation builder.
func (m *ResultMutation) Where(ps ...predicate.Result) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Result, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Result).
func (m *ResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResultMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.id_test != nil {
		fields = append(fields, result.FieldIDTest)
	}
	if m.version != nil {
		fields = append(fields, result.FieldVersion)
	}
	if m.planned != nil {
		fields = append(fields, result.FieldPlanned)
	}
	if m.started != nil {
		fields = append(fields, result.FieldStarted)
	}
	if m.finished != nil {
		fields = append(fields, result.FieldFinished)
	}
	if m.status != nil {
		fields = append(fields, result.FieldStatus)
	}
	if m.recovery_attempt != nil {
		fields = append(fields, result.FieldRecoveryAttempt)
	}
	if m.data != nil {
		fields = append(fields, result.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case result.FieldIDTest:
		return m.IDTest()
	case result.FieldVersion:
		return m.Version()
	case result.FieldPlanned:
		return m.Planned()
	case result.FieldStarted:
		return m.Started()
	case result.FieldFinished:
		return m.Finished()
	case result.FieldStatus:
		return m.Status()
	case result.FieldRecoveryAttempt:
		return m.RecoveryAttempt()
	case result.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case result.FieldIDTest:
		return m.OldIDTest(ctx)
	case result.FieldVersion:
		return m.OldVersion(ctx)
	case result.FieldPlanned:
		return m.OldPlanned(ctx)
	case result.FieldStarted:
		return m.OldStarted(ctx)
	case result.FieldFinished:
		return m.OldFinished(ctx)
	case result.FieldStatus:
		return m.OldStatus(ctx)
	case result.FieldRecoveryAttempt:
		return m.OldRecoveryAttempt(ctx)
	case result.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Result field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case result.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDTest(v)
		return nil
	case result.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case result.FieldPlanned:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanned(v)
		return nil
	case result.FieldStarted:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStarted(v)
		return nil
	case result.FieldFinished:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinished(v)
		return nil
	case result.FieldStatus:
		v, ok := value.(result.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case result.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempt(v)
		return nil
	case result.FieldData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Result field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResultMutation) AddedFields() []string {
	var fields []string
	if m.addid_test != nil {
		fields = append(fields, result.FieldIDTest)
	}
	if m.addversion != nil {
		fields = append(fields, result.FieldVersion)
	}
	if m.addrecovery_attempt != nil {
		fields = append(fields, result.FieldRecoveryAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case result.FieldIDTest:
		return m.AddedIDTest()
	case result.FieldVersion:
		return m.AddedVersion()
	case result.FieldRecoveryAttempt:
		return m.AddedRecoveryAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case result.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIDTest(v)
		return nil
	case result.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case result.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Result numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(result.FieldStarted) {
		fields = append(fields, result.FieldStarted)
	}
	if m.FieldCleared(result.FieldData) {
		fields = append(fields, result.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResultMutation) ClearField(name string) error {
	switch name {
	case result.FieldStarted:
		m.ClearStarted()
		return nil
	case result.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Result nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResultMutation) ResetField(name string) error {
	switch name {
	case result.FieldIDTest:
		m.ResetIDTest()
		return nil
	case result.FieldVersion:
		m.ResetVersion()
		return nil
	case result.FieldPlanned:
		m.ResetPlanned()
		return nil
	case result.FieldStarted:
		m.ResetStarted()
		return nil
	case result.FieldFinished:
		m.ResetFinished()
		return nil
	case result.FieldStatus:
		m.ResetStatus()
		return nil
	case result.FieldRecoveryAttempt:
		m.ResetRecoveryAttempt()
		return nil
	case result.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Result field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Result unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Result edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	id_test             *int
	addid_test          *int
	version             *int
	addversion          *int
	state               *run.State
	pid                 *int
	addpid              *int
	planned             *time.Time
	started             *time.Time
	deadline            *time.Time
	recovery_attempt    *int
	addrecovery_attempt *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Run, error)
	predicates          []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id int) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIDTest sets the "id_test" field.
func (m *RunMutation) SetIDTest(i int) {
	m.id_test = &i
	m.addid_test = nil
}

// IDTest returns the value of the "id_test" field in the mutation.
func (m *RunMutation) IDTest() (r int, exists bool) {
	v := m.id_test
	if v == nil {
		return
	}
	return *v, true
}

// OldIDTest returns the old "id_test" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldIDTest(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIDTest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIDTest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIDTest: %w", err)
	}
	return oldValue.IDTest, nil
}

// AddIDTest adds i to the "id_test" field.
func (m *RunMutation) AddIDTest(i int) {
	if m.addid_test != nil {
		*m.addid_test += i
	} else {
		m.addid_test = &i
	}
}

// AddedIDTest returns the value that was added to the "id_test" field in this mutation.
func (m *RunMutation) AddedIDTest() (r int, exists bool) {
	v := m.addid_test
	if v == nil {
		return
	}
	return *v, true
}

// ResetIDTest resets all changes to the "id_test" field.
func (m *RunMutation) ResetIDTest() {
	m.id_test = nil
	m.addid_test = nil
}

// SetVersion sets the "version" field.
func (m *RunMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RunMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RunMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RunMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RunMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetState sets the "state" field.
func (m *RunMutation) SetState(r run.State) {
	m.state = &r
}

// State returns the value of the "state" field in the mutation.
func (m *RunMutation) State() (r run.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldState(ctx context.Context) (v run.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RunMutation) ResetState() {
	m.state = nil
}

// SetPid sets the "pid" field.
func (m *RunMutation) SetPid(i int) {
	m.pid = &i
	m.addpid = nil
}

// Pid returns the value of the "pid" field in the mutation.
func (m *RunMutation) Pid() (r int, exists bool) {
	v := m.pid
	if v == nil {
		return
	}
	return *v, true
}

// OldPid returns the old "pid" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPid(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPid: %w", err)
	}
	return oldValue.Pid, nil
}

// AddPid adds i to the "pid" field.
func (m *RunMutation) AddPid(i int) {
	if m.addpid != nil {
		*m.addpid += i
	} else {
		m.addpid = &i
	}
}

// AddedPid returns the value that was added to the "pid" field in this mutation.
func (m *RunMutation) AddedPid() (r int, exists bool) {
	v := m.addpid
	if v == nil {
		return
	}
	return *v, true
}

// ClearPid clears the value of the "pid" field.
func (m *RunMutation) ClearPid() {
	m.pid = nil
	m.addpid = nil
	m.clearedFields[run.FieldPid] = struct{}{}
}

// PidCleared returns if the "pid" field was cleared in this mutation.
func (m *RunMutation) PidCleared() bool {
	_, ok := m.clearedFields[run.FieldPid]
	return ok
}

// ResetPid resets all changes to the "pid" field.
func (m *RunMutation) ResetPid() {
	m.pid = nil
	m.addpid = nil
	delete(m.clearedFields, run.FieldPid)
}

// SetPlanned sets the "planned" field.
func (m *RunMutation) SetPlanned(t time.Time) {
	m.planned = &t
}

// Planned returns the value of the "planned" field in the mutation.
func (m *RunMutation) Planned() (r time.Time, exists bool) {
	v := m.planned
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanned returns the old "planned" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPlanned(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanned: %w", err)
	}
	return oldValue.Planned, nil
}

// ResetPlanned resets all changes to the "planned" field.
func (m *RunMutation) ResetPlanned() {
	m.planned = nil
}

// SetStarted sets the "started" field.
func (m *RunMutation) SetStarted(t time.Time) {
	m.started = &t
}

// Started returns the value of the "started" field in the mutation.
func (m *RunMutation) Started() (r time.Time, exists bool) {
	v := m.started
	if v == nil {
		return
	}
	return *v, true
}

// OldStarted returns the old "started" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStarted(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStarted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStarted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStarted: %w", err)
	}
	return oldValue.Started, nil
}

// ClearStarted clears the value of the "started" field.
func (m *RunMutation) ClearStarted() {
	m.started = nil
	m.clearedFields[run.FieldStarted] = struct{}{}
}

// StartedCleared returns if the "started" field was cleared in this mutation.
func (m *RunMutation) StartedCleared() bool {
	_, ok := m.clearedFields[run.FieldStarted]
	return ok
}

// ResetStarted resets all changes to the "started" field.
func (m *RunMutation) ResetStarted() {
	m.started = nil
	delete(m.clearedFields, run.FieldStarted)
}

// SetDeadline sets the "deadline" field.
func (m *RunMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *RunMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *RunMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[run.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *RunMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[run.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *RunMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, run.FieldDeadline)
}

// SetRecoveryAttempt sets the "recovery_attempt" field.
func (m *RunMutation) SetRecoveryAttempt(i int) {
	m.recovery_attempt = &i
	m.addrecovery_attempt = nil
}

// RecoveryAttempt returns the value of the "recovery_attempt" field in the mutation.
func (m *RunMutation) RecoveryAttempt() (r int, exists bool) {
	v := m.recovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempt returns the old "recovery_attempt" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRecoveryAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempt: %w", err)
	}
	return oldValue.RecoveryAttempt, nil
}

// AddRecoveryAttempt adds i to the "recovery_attempt" field.
func (m *RunMutation) AddRecoveryAttempt(i int) {
	if m.addrecovery_attempt != nil {
		*m.addrecovery_attempt += i
	} else {
		m.addrecovery_attempt = &i
	}
}

// AddedRecoveryAttempt returns the value that was added to the "recovery_attempt" field in this mutation.
func (m *RunMutation) AddedRecoveryAttempt() (r int, exists bool) {
	v := m.addrecovery_attempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempt resets all changes to the "recovery_attempt" field.
func (m *RunMutation) ResetRecoveryAttempt() {
	m.recovery_attempt = nil
	m.addrecovery_attempt = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.id_test != nil {
		fields = append(fields, run.FieldIDTest)
	}
	if m.version != nil {
		fields = append(fields, run.FieldVersion)
	}
	if m.state != nil {
		fields = append(fields, run.FieldState)
	}
	if m.pid != nil {
		fields = append(fields, run.FieldPid)
	}
	if m.planned != nil {
		fields = append(fields, run.FieldPlanned)
	}
	if m.started != nil {
		fields = append(fields, run.FieldStarted)
	}
	if m.deadline != nil {
		fields = append(fields, run.FieldDeadline)
	}
	if m.recovery_attempt != nil {
		fields = append(fields, run.FieldRecoveryAttempt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldIDTest:
		return m.IDTest()
	case run.FieldVersion:
		return m.Version()
	case run.FieldState:
		return m.State()
	case run.FieldPid:
		return m.Pid()
	case run.FieldPlanned:
		return m.Planned()
	case run.FieldStarted:
		return m.Started()
	case run.FieldDeadline:
		return m.Deadline()
	case run.FieldRecoveryAttempt:
		return m.RecoveryAttempt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldIDTest:
		return m.OldIDTest(ctx)
	case run.FieldVersion:
		return m.OldVersion(ctx)
	case run.FieldState:
		return m.OldState(ctx)
	case run.FieldPid:
		return m.OldPid(ctx)
	case run.FieldPlanned:
		return m.OldPlanned(ctx)
	case run.FieldStarted:
		return m.OldStarted(ctx)
	case run.FieldDeadline:
		return m.OldDeadline(ctx)
	case run.FieldRecoveryAttempt:
		return m.OldRecoveryAttempt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIDTest(v)
		return nil
	case run.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case run.FieldState:
		v, ok := value.(run.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case run.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPid(v)
		return nil
	case run.FieldPlanned:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanned(v)
		return nil
	case run.FieldStarted:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStarted(v)
		return nil
	case run.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case run.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addid_test != nil {
		fields = append(fields, run.FieldIDTest)
	}
	if m.addversion != nil {
		fields = append(fields, run.FieldVersion)
	}
	if m.addpid != nil {
		fields = append(fields, run.FieldPid)
	}
	if m.addrecovery_attempt != nil {
		fields = append(fields, run.FieldRecoveryAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldIDTest:
		return m.AddedIDTest()
	case run.FieldVersion:
		return m.AddedVersion()
	case run.FieldPid:
		return m.AddedPid()
	case run.FieldRecoveryAttempt:
		return m.AddedRecoveryAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldIDTest:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIDTest(v)
		return nil
	case run.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case run.FieldPid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPid(v)
		return nil
	case run.FieldRecoveryAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldPid) {
		fields = append(fields, run.FieldPid)
	}
	if m.FieldCleared(run.FieldStarted) {
		fields = append(fields, run.FieldStarted)
	}
	if m.FieldCleared(run.FieldDeadline) {
		fields = append(fields, run.FieldDeadline)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldPid:
		m.ClearPid()
		return nil
	case run.FieldStarted:
		m.ClearStarted()
		return nil
	case run.FieldDeadline:
		m.ClearDeadline()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldIDTest:
		m.ResetIDTest()
		return nil
	case run.FieldVersion:
		m.ResetVersion()
		return nil
	case run.FieldState:
		m.ResetState()
		return nil
	case run.FieldPid:
		m.ResetPid()
		return nil
	case run.FieldPlanned:
		m.ResetPlanned()
		return nil
	case run.FieldStarted:
		m.ResetStarted()
		return nil
	case run.FieldDeadline:
		m.ResetDeadline()
		return nil
	case run.FieldRecoveryAttempt:
		m.ResetRecoveryAttempt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Run edge %s", name)
}

// StatMutation represents an operation that mutates the Stat nodes in the graph.
type StatMutation struct {
	config
	op            Op
	typ           string
	id            *int
	time          *time.Time
	table_name    *string
	category      *string
	value         *int
	addvalue      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Stat, error)
	predicates    []predicate.Stat
}

var _ ent.Mutation = (*StatMutation)(nil)

// statOption allows management of the mutation configuration using functional options.
type statOption func(*StatMutation)

// newStatMutation creates new mutation for the Stat entity.
func newStatMutation(c config, op Op, opts ...statOption) *StatMutation {
	m := &StatMutation{
		config:        c,
		op:            op,
		typ:           TypeStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatID sets the ID field of the mutation.
func withStatID(id int) statOption {
	return func(m *StatMutation) {
		var (
			err   error
			once  sync.Once
			value *Stat
		)
		m.oldValue = func(ctx context.Context) (*Stat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Stat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStat sets the old Stat of the mutation.
func withStat(node *Stat) statOption {
	return func(m *StatMutation) {
		m.oldValue = func(context.Context) (*Stat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Stat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTime sets the "time" field.
func (m *StatMutation) SetTime(t time.Time) {
	m.time = &t
}

// Time returns the value of the "time" field in the mutation.
func (m *StatMutation) Time() (r time.Time, exists bool) {
	v := m.time
	if v == nil {
		return
	}
	return *v, true
}

// OldTime returns the old "time" field's value of the Stat entity.
// If the Stat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatMutation) OldTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTime: %w", err)
	}
	return oldValue.Time, nil
}

// ResetTime resets all changes to the "time" field.
func (m *StatMutation) ResetTime() {
	m.time = nil
}

// SetTableName sets the "table_name" field.
func (m *StatMutation) SetTableName(s string) {
	m.table_name = &s
}

// TableName returns the value of the "table_name" field in the mutation.
func (m *StatMutation) TableName() (r string, exists bool) {
	v := m.table_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTableName returns the old "table_name" field's value of the Stat entity.
// If the Stat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatMutation) OldTableName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableName: %w", err)
	}
	return oldValue.TableName, nil
}

// ResetTableName resets all changes to the "table_name" field.
func (m *StatMutation) ResetTableName() {
	m.table_name = nil
}

// SetCategory sets the "category" field.
func (m *StatMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *StatMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Stat entity.
// If the Stat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *StatMutation) ResetCategory() {
	m.category = nil
}

// SetValue sets the "value" field.
func (m *StatMutation) SetValue(i int) {
	m.value = &i
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *StatMutation) Value() (r int, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Stat entity.
// If the Stat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatMutation) OldValue(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds i to the "value" field.
func (m *StatMutation) AddValue(i int) {
	if m.addvalue != nil {
		*m.addvalue += i
	} else {
		m.addvalue = &i
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *StatMutation) AddedValue() (r int, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ResetValue resets all changes to the "value" field.
func (m *StatMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
}

// Where appends a list predicates to the StatMutation builder.
func (m *StatMutation) Where(ps ...predicate.Stat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Stat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Stat).
func (m *StatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.time != nil {
		fields = append(fields, stat.FieldTime)
	}
	if m.table_name != nil {
		fields = append(fields, stat.FieldTableName)
	}
	if m.category != nil {
		fields = append(fields, stat.FieldCategory)
	}
	if m.value != nil {
		fields = append(fields, stat.FieldValue)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stat.FieldTime:
		return m.Time()
	case stat.FieldTableName:
		return m.TableName()
	case stat.FieldCategory:
		return m.Category()
	case stat.FieldValue:
		return m.Value()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stat.FieldTime:
		return m.OldTime(ctx)
	case stat.FieldTableName:
		return m.OldTableName(ctx)
	case stat.FieldCategory:
		return m.OldCategory(ctx)
	case stat.FieldValue:
		return m.OldValue(ctx)
	}
	return nil, fmt.Errorf("unknown Stat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stat.FieldTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTime(v)
		return nil
	case stat.FieldTableName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableName(v)
		return nil
	case stat.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case stat.FieldValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	}
	return fmt.Errorf("unknown Stat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, stat.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stat.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stat.FieldValue:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown Stat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Stat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatMutation) ResetField(name string) error {
	switch name {
	case stat.FieldTime:
		m.ResetTime()
		return nil
	case stat.FieldTableName:
		m.ResetTableName()
		return nil
	case stat.FieldCategory:
		m.ResetCategory()
		return nil
	case stat.FieldValue:
		m.ResetValue()
		return nil
	}
	return fmt.Errorf("unknown Stat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Stat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Stat edge %s", name)
}

// TestMutation represents an operation that mutates the Test nodes in the graph.
type TestMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	name                      *string
	description               *string
	version                   *int
	addversion                *int
	state                     *test.State
	test_params               *string
	timeout                   *int
	addtimeout                *int
	scheduling_interval       *int
	addscheduling_interval    *int
	scheduling_from           *time.Time
	scheduling_until          *time.Time
	recovery_interval         *int
	addrecovery_interval      *int
	recovery_attempt_limit    *int
	addrecovery_attempt_limit *int
	key_ro                    *string
	key_rw                    *string
	created                   *time.Time
	last_started_time         *time.Time
	last_result_time          *time.Time
	last_result_status        *test.LastResultStatus
	last_downloaded_time      *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*Test, error)
	predicates                []predicate.Test
}

var _ ent.Mutation = (*TestMutation)(nil)

// testOption allows management of the mutation configuration using functional options.
type testOption func(*TestMutation)

// newTestMutation creates new mutation for the Test entity.
func newTestMutation(c config, op Op, opts ...testOption) *TestMutation {
	m := &TestMutation{
		config:        c,
		op:            op,
		typ:           TypeTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestID sets the ID field of the mutation.
func withTestID(id int) testOption {
	return func(m *TestMutation) {
		var (
			err   error
			once  sync.Once
			value *Test
		)
		m.oldValue = func(ctx context.Context) (*Test, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Test.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTest sets the old Test of the mutation.
func withTest(node *Test) testOption {
	return func(m *TestMutation) {
		m.oldValue = func(context.Context) (*Test, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Test.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TestMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TestMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TestMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TestMutation) ResetDescription() {
	m.description = nil
}

// SetVersion sets the "version" field.
func (m *TestMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TestMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TestMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TestMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TestMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetState sets the "state" field.
func (m *TestMutation) SetState(t test.State) {
	m.state = &t
}

// State returns the value of the "state" field in the mutation.
func (m *TestMutation) State() (r test.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldState(ctx context.Context) (v test.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *TestMutation) ResetState() {
	m.state = nil
}

// SetTestParams sets the "test_params" field.
func (m *TestMutation) SetTestParams(s string) {
	m.test_params = &s
}

// TestParams returns the value of the "test_params" field in the mutation.
func (m *TestMutation) TestParams() (r string, exists bool) {
	v := m.test_params
	if v == nil {
		return
	}
	return *v, true
}

// OldTestParams returns the old "test_params" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTestParams(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestParams: %w", err)
	}
	return oldValue.TestParams, nil
}

// ResetTestParams resets all changes to the "test_params" field.
func (m *TestMutation) ResetTestParams() {
	m.test_params = nil
}

// SetTimeout sets the "timeout" field.
func (m *TestMutation) SetTimeout(i int) {
	m.timeout = &i
	m.addtimeout = nil
}

// Timeout returns the value of the "timeout" field in the mutation.
func (m *TestMutation) Timeout() (r int, exists bool) {
	v := m.timeout
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeout returns the old "timeout" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTimeout(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeout: %w", err)
	}
	return oldValue.Timeout, nil
}

// AddTimeout adds i to the "timeout" field.
func (m *TestMutation) AddTimeout(i int) {
	if m.addtimeout != nil {
		*m.addtimeout += i
	} else {
		m.addtimeout = &i
	}
}

// AddedTimeout returns the value that was added to the "timeout" field in this mutation.
func (m *TestMutation) AddedTimeout() (r int, exists bool) {
	v := m.addtimeout
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeout resets all changes to the "timeout" field.
func (m *TestMutation) ResetTimeout() {
	m.timeout = nil
	m.addtimeout = nil
}

// SetSchedulingInterval sets the "scheduling_interval" field.
func (m *TestMutation) SetSchedulingInterval(i int) {
	m.scheduling_interval = &i
	m.addscheduling_interval = nil
}

// SchedulingInterval returns the value of the "scheduling_interval" field in the mutation.
func (m *TestMutation) SchedulingInterval() (r int, exists bool) {
	v := m.scheduling_interval
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedulingInterval returns the old "scheduling_interval" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldSchedulingInterval(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedulingInterval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedulingInterval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedulingInterval: %w", err)
	}
	return oldValue.SchedulingInterval, nil
}

// AddSchedulingInterval adds i to the "scheduling_interval" field.
func (m *TestMutation) AddSchedulingInterval(i int) {
	if m.addscheduling_interval != nil {
		*m.addscheduling_interval += i
	} else {
		m.addscheduling_interval = &i
	}
}

// AddedSchedulingInterval returns the value that was added to the "scheduling_interval" field in this mutation.
func (m *TestMutation) AddedSchedulingInterval() (r int, exists bool) {
	v := m.addscheduling_interval
	if v == nil {
		return
	}
	return *v, true
}

// ClearSchedulingInterval clears the value of the "scheduling_interval" field.
func (m *TestMutation) ClearSchedulingInterval() {
	m.scheduling_interval = nil
	m.addscheduling_interval = nil
	m.clearedFields[test.FieldSchedulingInterval] = struct{}{}
}

// SchedulingIntervalCleared returns if the "scheduling_interval" field was cleared in this mutation.
func (m *TestMutation) SchedulingIntervalCleared() bool {
	_, ok := m.clearedFields[test.FieldSchedulingInterval]
	return ok
}

// ResetSchedulingInterval resets all changes to the "scheduling_interval" field.
func (m *TestMutation) ResetSchedulingInterval() {
	m.scheduling_interval = nil
	m.addscheduling_interval = nil
	delete(m.clearedFields, test.FieldSchedulingInterval)
}

// SetSchedulingFrom sets the "scheduling_from" field.
func (m *TestMutation) SetSchedulingFrom(t time.Time) {
	m.scheduling_from = &t
}

// SchedulingFrom returns the value of the "scheduling_from" field in the mutation.
func (m *TestMutation) SchedulingFrom() (r time.Time, exists bool) {
	v := m.scheduling_from
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedulingFrom returns the old "scheduling_from" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldSchedulingFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedulingFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedulingFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedulingFrom: %w", err)
	}
	return oldValue.SchedulingFrom, nil
}

// ClearSchedulingFrom clears the value of the "scheduling_from" field.
func (m *TestMutation) ClearSchedulingFrom() {
	m.scheduling_from = nil
	m.clearedFields[test.FieldSchedulingFrom] = struct{}{}
}

// SchedulingFromCleared returns if the "scheduling_from" field was cleared in this mutation.
func (m *TestMutation) SchedulingFromCleared() bool {
	_, ok := m.clearedFields[test.FieldSchedulingFrom]
	return ok
}

// ResetSchedulingFrom resets all changes to the "scheduling_from" field.
func (m *TestMutation) ResetSchedulingFrom() {
	m.scheduling_from = nil
	delete(m.clearedFields, test.FieldSchedulingFrom)
}

// SetSchedulingUntil sets the "scheduling_until" field.
func (m *TestMutation) SetSchedulingUntil(t time.Time) {
	m.scheduling_until = &t
}

// SchedulingUntil returns the value of the "scheduling_until" field in the mutation.
func (m *TestMutation) SchedulingUntil() (r time.Time, exists bool) {
	v := m.scheduling_until
	if v == nil {
		return
	}
	return *v, true
}

// OldSchedulingUntil returns the old "scheduling_until" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldSchedulingUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchedulingUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchedulingUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchedulingUntil: %w", err)
	}
	return oldValue.SchedulingUntil, nil
}

// ClearSchedulingUntil clears the value of the "scheduling_until" field.
func (m *TestMutation) ClearSchedulingUntil() {
	m.scheduling_until = nil
	m.clearedFields[test.FieldSchedulingUntil] = struct{}{}
}

// SchedulingUntilCleared returns if the "scheduling_until" field was cleared in this mutation.
func (m *TestMutation) SchedulingUntilCleared() bool {
	_, ok := m.clearedFields[test.FieldSchedulingUntil]
	return ok
}

// ResetSchedulingUntil resets all changes to the "scheduling_until" field.
func (m *TestMutation) ResetSchedulingUntil() {
	m.scheduling_until = nil
	delete(m.clearedFields, test.FieldSchedulingUntil)
}

// SetRecoveryInterval sets the "recovery_interval" field.
func (m *TestMutation) SetRecoveryInterval(i int) {
	m.recovery_interval = &i
	m.addrecovery_interval = nil
}

// RecoveryInterval returns the value of the "recovery_interval" field in the mutation.
func (m *TestMutation) RecoveryInterval() (r int, exists bool) {
	v := m.recovery_interval
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryInterval returns the old "recovery_interval" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldRecoveryInterval(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryInterval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryInterval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryInterval: %w", err)
	}
	return oldValue.RecoveryInterval, nil
}

// AddRecoveryInterval adds i to the "recovery_interval" field.
func (m *TestMutation) AddRecoveryInterval(i int) {
	if m.addrecovery_interval != nil {
		*m.addrecovery_interval += i
	} else {
		m.addrecovery_interval = &i
	}
}

// AddedRecoveryInterval returns the value that was added to the "recovery_interval" field in this mutation.
func (m *TestMutation) AddedRecoveryInterval() (r int, exists bool) {
	v := m.addrecovery_interval
	if v == nil {
		return
	}
	return *v, true
}

// ClearRecoveryInterval clears the value of the "recovery_interval" field.
func (m *TestMutation) ClearRecoveryInterval() {
	m.recovery_interval = nil
	m.addrecovery_interval = nil
	m.clearedFields[test.FieldRecoveryInterval] = struct{}{}
}

// RecoveryIntervalCleared returns if the "recovery_interval" field was cleared in this mutation.
func (m *TestMutation) RecoveryIntervalCleared() bool {
	_, ok := m.clearedFields[test.FieldRecoveryInterval]
	return ok
}

// ResetRecoveryInterval resets all changes to the "recovery_interval" field.
func (m *TestMutation) ResetRecoveryInterval() {
	m.recovery_interval = nil
	m.addrecovery_interval = nil
	delete(m.clearedFields, test.FieldRecoveryInterval)
}

// SetRecoveryAttemptLimit sets the "recovery_attempt_limit" field.
func (m *TestMutation) SetRecoveryAttemptLimit(i int) {
	m.recovery_attempt_limit = &i
	m.addrecovery_attempt_limit = nil
}

// RecoveryAttemptLimit returns the value of the "recovery_attempt_limit" field in the mutation.
func (m *TestMutation) RecoveryAttemptLimit() (r int, exists bool) {
	v := m.recovery_attempt_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttemptLimit returns the old "recovery_attempt_limit" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldRecoveryAttemptLimit(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttemptLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttemptLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttemptLimit: %w", err)
	}
	return oldValue.RecoveryAttemptLimit, nil
}

// AddRecoveryAttemptLimit adds i to the "recovery_attempt_limit" field.
func (m *TestMutation) AddRecoveryAttemptLimit(i int) {
	if m.addrecovery_attempt_limit != nil {
		*m.addrecovery_attempt_limit += i
	} else {
		m.addrecovery_attempt_limit = &i
	}
}

// AddedRecoveryAttemptLimit returns the value that was added to the "recovery_attempt_limit" field in this mutation.
func (m *TestMutation) AddedRecoveryAttemptLimit() (r int, exists bool) {
	v := m.addrecovery_attempt_limit
	if v == nil {
		return
	}
	return *v, true
}

// ClearRecoveryAttemptLimit clears the value of the "recovery_attempt_limit" field.
func (m *TestMutation) ClearRecoveryAttemptLimit() {
	m.recovery_attempt_limit = nil
	m.addrecovery_attempt_limit = nil
	m.clearedFields[test.FieldRecoveryAttemptLimit] = struct{}{}
}

// RecoveryAttemptLimitCleared returns if the "recovery_attempt_limit" field was cleared in this mutation.
func (m *TestMutation) RecoveryAttemptLimitCleared() bool {
	_, ok := m.clearedFields[test.FieldRecoveryAttemptLimit]
	return ok
}

// ResetRecoveryAttemptLimit resets all changes to the "recovery_attempt_limit" field.
func (m *TestMutation) ResetRecoveryAttemptLimit() {
	m.recovery_attempt_limit = nil
	m.addrecovery_attempt_limit = nil
	delete(m.clearedFields, test.FieldRecoveryAttemptLimit)
}

// SetKeyRo sets the "key_ro" field.
func (m *TestMutation) SetKeyRo(s string) {
	m.key_ro = &s
}

// KeyRo returns the value of the "key_ro" field in the mutation.
func (m *TestMutation) KeyRo() (r string, exists bool) {
	v := m.key_ro
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyRo returns the old "key_ro" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldKeyRo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyRo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyRo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyRo: %w", err)
	}
	return oldValue.KeyRo, nil
}

// ResetKeyRo resets all changes to the "key_ro" field.
func (m *TestMutation) ResetKeyRo() {
	m.key_ro = nil
}

// SetKeyRw sets the "key_rw" field.
func (m *TestMutation) SetKeyRw(s string) {
	m.key_rw = &s
}

// KeyRw returns the value of the "key_rw" field in the mutation.
func (m *TestMutation) KeyRw() (r string, exists bool) {
	v := m.key_rw
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyRw returns the old "key_rw" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldKeyRw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyRw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyRw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyRw: %w", err)
	}
	return oldValue.KeyRw, nil
}

// ResetKeyRw resets all changes to the "key_rw" field.
func (m *TestMutation) ResetKeyRw() {
	m.key_rw = nil
}

// SetCreated sets the "created" field.
func (m *TestMutation) SetCreated(t time.Time) {
	m.created = &t
}

// Created returns the value of the "created" field in the mutation.
func (m *TestMutation) Created() (r time.Time, exists bool) {
	v := m.created
	if v == nil {
		return
	}
	return *v, true
}

// OldCreated returns the old "created" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldCreated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreated: %w", err)
	}
	return oldValue.Created, nil
}

// ResetCreated resets all changes to the "created" field.
func (m *TestMutation) ResetCreated() {
	m.created = nil
}

// SetLastStartedTime sets the "last_started_time" field.
func (m *TestMutation) SetLastStartedTime(t time.Time) {
	m.last_started_time = &t
}

// LastStartedTime returns the value of the "last_started_time" field in the mutation.
func (m *TestMutation) LastStartedTime() (r time.Time, exists bool) {
	v := m.last_started_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStartedTime returns the old "last_started_time" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldLastStartedTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStartedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStartedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStartedTime: %w", err)
	}
	return oldValue.LastStartedTime, nil
}

// ClearLastStartedTime clears the value of the "last_started_time" field.
func (m *TestMutation) ClearLastStartedTime() {
	m.last_started_time = nil
	m.clearedFields[test.FieldLastStartedTime] = struct{}{}
}

// LastStartedTimeCleared returns if the "last_started_time" field was cleared in this mutation.
func (m *TestMutation) LastStartedTimeCleared() bool {
	_, ok := m.clearedFields[test.FieldLastStartedTime]
	return ok
}

// ResetLastStartedTime resets all changes to the "last_started_time" field.
func (m *TestMutation) ResetLastStartedTime() {
	m.last_started_time = nil
	delete(m.clearedFields, test.FieldLastStartedTime)
}

// SetLastResultTime sets the "last_result_time" field.
func (m *TestMutation) SetLastResultTime(t time.Time) {
	m.last_result_time = &t
}

// LastResultTime returns the value of the "last_result_time" field in the mutation.
func (m *TestMutation) LastResultTime() (r time.Time, exists bool) {
	v := m.last_result_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResultTime returns the old "last_result_time" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldLastResultTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResultTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResultTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResultTime: %w", err)
	}
	return oldValue.LastResultTime, nil
}

// ClearLastResultTime clears the value of the "last_result_time" field.
func (m *TestMutation) ClearLastResultTime() {
	m.last_result_time = nil
	m.clearedFields[test.FieldLastResultTime] = struct{}{}
}

// LastResultTimeCleared returns if the "last_result_time" field was cleared in this mutation.
func (m *TestMutation) LastResultTimeCleared() bool {
	_, ok := m.clearedFields[test.FieldLastResultTime]
	return ok
}

// ResetLastResultTime resets all changes to the "last_result_time" field.
func (m *TestMutation) ResetLastResultTime() {
	m.last_result_time = nil
	delete(m.clearedFields, test.FieldLastResultTime)
}

// SetLastResultStatus sets the "last_result_status" field.
func (m *TestMutation) SetLastResultStatus(trs test.LastResultStatus) {
	m.last_result_status = &trs
}

// LastResultStatus returns the value of the "last_result_status" field in the mutation.
func (m *TestMutation) LastResultStatus() (r test.LastResultStatus, exists bool) {
	v := m.last_result_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLastResultStatus returns the old "last_result_status" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldLastResultStatus(ctx context.Context) (v test.LastResultStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastResultStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastResultStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastResultStatus: %w", err)
	}
	return oldValue.LastResultStatus, nil
}

// ClearLastResultStatus clears the value of the "last_result_status" field.
func (m *TestMutation) ClearLastResultStatus() {
	m.last_result_status = nil
	m.clearedFields[test.FieldLastResultStatus] = struct{}{}
}

// LastResultStatusCleared returns if the "last_result_status" field was cleared in this mutation.
func (m *TestMutation) LastResultStatusCleared() bool {
	_, ok := m.clearedFields[test.FieldLastResultStatus]
	return ok
}

// ResetLastResultStatus resets all changes to the "last_result_status" field.
func (m *TestMutation) ResetLastResultStatus() {
	m.last_result_status = nil
	delete(m.clearedFields, test.FieldLastResultStatus)
}

// SetLastDownloadedTime sets the "last_downloaded_time" field.
func (m *TestMutation) SetLastDownloadedTime(t time.Time) {
	m.last_downloaded_time = &t
}

// LastDownloadedTime returns the value of the "last_downloaded_time" field in the mutation.
func (m *TestMutation) LastDownloadedTime() (r time.Time, exists bool) {
	v := m.last_downloaded_time
	if v == nil {
		return
	}
	return *v, true
}

// OldLastDownloadedTime returns the old "last_downloaded_time" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldLastDownloadedTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastDownloadedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastDownloadedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastDownloadedTime: %w", err)
	}
	return oldValue.LastDownloadedTime, nil
}

// ClearLastDownloadedTime clears the value of the "last_downloaded_time" field.
func (m *TestMutation) ClearLastDownloadedTime() {
	m.last_downloaded_time = nil
	m.clearedFields[test.FieldLastDownloadedTime] = struct{}{}
}

// LastDownloadedTimeCleared returns if the "last_downloaded_time" field was cleared in this mutation.
func (m *TestMutation) LastDownloadedTimeCleared() bool {
	_, ok := m.clearedFields[test.FieldLastDownloadedTime]
	return ok
}

// ResetLastDownloadedTime resets all changes to the "last_downloaded_time" field.
func (m *TestMutation) ResetLastDownloadedTime() {
	m.last_downloaded_time = nil
	delete(m.clearedFields, test.FieldLastDownloadedTime)
}

// Where appends a list predicates to the TestMutation builder.
func (m *TestMutation) Where(ps ...predicate.Test) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Test, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Test).
func (m *TestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.name != nil {
		fields = append(fields, test.FieldName)
	}
	if m.description != nil {
		fields = append(fields, test.FieldDescription)
	}
	if m.version != nil {
		fields = append(fields, test.FieldVersion)
	}
	if m.state != nil {
		fields = append(fields, test.FieldState)
	}
	if m.test_params != nil {
		fields = append(fields, test.FieldTestParams)
	}
	if m.timeout != nil {
		fields = append(fields, test.FieldTimeout)
	}
	if m.scheduling_interval != nil {
		fields = append(fields, test.FieldSchedulingInterval)
	}
	if m.scheduling_from != nil {
		fields = append(fields, test.FieldSchedulingFrom)
	}
	if m.scheduling_until != nil {
		fields = append(fields, test.FieldSchedulingUntil)
	}
	if m.recovery_interval != nil {
		fields = append(fields, test.FieldRecoveryInterval)
	}
	if m.recovery_attempt_limit != nil {
		fields = append(fields, test.FieldRecoveryAttemptLimit)
	}
	if m.key_ro != nil {
		fields = append(fields, test.FieldKeyRo)
	}
	if m.key_rw != nil {
		fields = append(fields, test.FieldKeyRw)
	}
	if m.created != nil {
		fields = append(fields, test.FieldCreated)
	}
	if m.last_started_time != nil {
		fields = append(fields, test.FieldLastStartedTime)
	}
	if m.last_result_time != nil {
		fields = append(fields, test.FieldLastResultTime)
	}
	if m.last_result_status != nil {
		fields = append(fields, test.FieldLastResultStatus)
	}
	if m.last_downloaded_time != nil {
		fields = append(fields, test.FieldLastDownloadedTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case test.FieldName:
		return m.Name()
	case test.FieldDescription:
		return m.Description()
	case test.FieldVersion:
		return m.Version()
	case test.FieldState:
		return m.State()
	case test.FieldTestParams:
		return m.TestParams()
	case test.FieldTimeout:
		return m.Timeout()
	case test.FieldSchedulingInterval:
		return m.SchedulingInterval()
	case test.FieldSchedulingFrom:
		return m.SchedulingFrom()
	case test.FieldSchedulingUntil:
		return m.SchedulingUntil()
	case test.FieldRecoveryInterval:
		return m.RecoveryInterval()
	case test.FieldRecoveryAttemptLimit:
		return m.RecoveryAttemptLimit()
	case test.FieldKeyRo:
		return m.KeyRo()
	case test.FieldKeyRw:
		return m.KeyRw()
	case test.FieldCreated:
		return m.Created()
	case test.FieldLastStartedTime:
		return m.LastStartedTime()
	case test.FieldLastResultTime:
		return m.LastResultTime()
	case test.FieldLastResultStatus:
		return m.LastResultStatus()
	case test.FieldLastDownloadedTime:
		return m.LastDownloadedTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case test.FieldName:
		return m.OldName(ctx)
	case test.FieldDescription:
		return m.OldDescription(ctx)
	case test.FieldVersion:
		return m.OldVersion(ctx)
	case test.FieldState:
		return m.OldState(ctx)
	case test.FieldTestParams:
		return m.OldTestParams(ctx)
	case test.FieldTimeout:
		return m.OldTimeout(ctx)
	case test.FieldSchedulingInterval:
		return m.OldSchedulingInterval(ctx)
	case test.FieldSchedulingFrom:
		return m.OldSchedulingFrom(ctx)
	case test.FieldSchedulingUntil:
		return m.OldSchedulingUntil(ctx)
	case test.FieldRecoveryInterval:
		return m.OldRecoveryInterval(ctx)
	case test.FieldRecoveryAttemptLimit:
		return m.OldRecoveryAttemptLimit(ctx)
	case test.FieldKeyRo:
		return m.OldKeyRo(ctx)
	case test.FieldKeyRw:
		return m.OldKeyRw(ctx)
	case test.FieldCreated:
		return m.OldCreated(ctx)
	case test.FieldLastStartedTime:
		return m.OldLastStartedTime(ctx)
	case test.FieldLastResultTime:
		return m.OldLastResultTime(ctx)
	case test.FieldLastResultStatus:
		return m.OldLastResultStatus(ctx)
	case test.FieldLastDownloadedTime:
		return m.OldLastDownloadedTime(ctx)
	}
	return nil, fmt.Errorf("unknown Test field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case test.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case test.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case test.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case test.FieldState:
		v, ok := value.(test.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case test.FieldTestParams:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestParams(v)
		return nil
	case test.FieldTimeout:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeout(v)
		return nil
	case test.FieldSchedulingInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedulingInterval(v)
		return nil
	case test.FieldSchedulingFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedulingFrom(v)
		return nil
	case test.FieldSchedulingUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchedulingUntil(v)
		return nil
	case test.FieldRecoveryInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryInterval(v)
		return nil
	case test.FieldRecoveryAttemptLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttemptLimit(v)
		return nil
	case test.FieldKeyRo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyRo(v)
		return nil
	case test.FieldKeyRw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyRw(v)
		return nil
	case test.FieldCreated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreated(v)
		return nil
	case test.FieldLastStartedTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStartedTime(v)
		return nil
	case test.FieldLastResultTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResultTime(v)
		return nil
	case test.FieldLastResultStatus:
		v, ok := value.(test.LastResultStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastResultStatus(v)
		return nil
	case test.FieldLastDownloadedTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastDownloadedTime(v)
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, test.FieldVersion)
	}
	if m.addtimeout != nil {
		fields = append(fields, test.FieldTimeout)
	}
	if m.addscheduling_interval != nil {
		fields = append(fields, test.FieldSchedulingInterval)
	}
	if m.addrecovery_interval != nil {
		fields = append(fields, test.FieldRecoveryInterval)
	}
	if m.addrecovery_attempt_limit != nil {
		fields = append(fields, test.FieldRecoveryAttemptLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case test.FieldVersion:
		return m.AddedVersion()
	case test.FieldTimeout:
		return m.AddedTimeout()
	case test.FieldSchedulingInterval:
		return m.AddedSchedulingInterval()
	case test.FieldRecoveryInterval:
		return m.AddedRecoveryInterval()
	case test.FieldRecoveryAttemptLimit:
		return m.AddedRecoveryAttemptLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case test.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case test.FieldTimeout:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeout(v)
		return nil
	case test.FieldSchedulingInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchedulingInterval(v)
		return nil
	case test.FieldRecoveryInterval:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryInterval(v)
		return nil
	case test.FieldRecoveryAttemptLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttemptLimit(v)
		return nil
	}
	return fmt.Errorf("unknown Test numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(test.FieldSchedulingInterval) {
		fields = append(fields, test.FieldSchedulingInterval)
	}
	if m.FieldCleared(test.FieldSchedulingFrom) {
		fields = append(fields, test.FieldSchedulingFrom)
	}
	if m.FieldCleared(test.FieldSchedulingUntil) {
		fields = append(fields, test.FieldSchedulingUntil)
	}
	if m.FieldCleared(test.FieldRecoveryInterval) {
		fields = append(fields, test.FieldRecoveryInterval)
	}
	if m.FieldCleared(test.FieldRecoveryAttemptLimit) {
		fields = append(fields, test.FieldRecoveryAttemptLimit)
	}
	if m.FieldCleared(test.FieldLastStartedTime) {
		fields = append(fields, test.FieldLastStartedTime)
	}
	if m.FieldCleared(test.FieldLastResultTime) {
		fields = append(fields, test.FieldLastResultTime)
	}
	if m.FieldCleared(test.FieldLastResultStatus) {
		fields = append(fields, test.FieldLastResultStatus)
	}
	if m.FieldCleared(test.FieldLastDownloadedTime) {
		fields = append(fields, test.FieldLastDownloadedTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestMutation) ClearField(name string) error {
	switch name {
	case test.FieldSchedulingInterval:
		m.ClearSchedulingInterval()
		return nil
	case test.FieldSchedulingFrom:
		m.ClearSchedulingFrom()
		return nil
	case test.FieldSchedulingUntil:
		m.ClearSchedulingUntil()
		return nil
	case test.FieldRecoveryInterval:
		m.ClearRecoveryInterval()
		return nil
	case test.FieldRecoveryAttemptLimit:
		m.ClearRecoveryAttemptLimit()
		return nil
	case test.FieldLastStartedTime:
		m.ClearLastStartedTime()
		return nil
	case test.FieldLastResultTime:
		m.ClearLastResultTime()
		return nil
	case test.FieldLastResultStatus:
		m.ClearLastResultStatus()
		return nil
	case test.FieldLastDownloadedTime:
		m.ClearLastDownloadedTime()
		return nil
	}
	return fmt.Errorf("unknown Test nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestMutation) ResetField(name string) error {
	switch name {
	case test.FieldName:
		m.ResetName()
		return nil
	case test.FieldDescription:
		m.ResetDescription()
		return nil
	case test.FieldVersion:
		m.ResetVersion()
		return nil
	case test.FieldState:
		m.ResetState()
		return nil
	case test.FieldTestParams:
		m.ResetTestParams()
		return nil
	case test.FieldTimeout:
		m.ResetTimeout()
		return nil
	case test.FieldSchedulingInterval:
		m.ResetSchedulingInterval()
		return nil
	case test.FieldSchedulingFrom:
		m.ResetSchedulingFrom()
		return nil
	case test.FieldSchedulingUntil:
		m.ResetSchedulingUntil()
		return nil
	case test.FieldRecoveryInterval:
		m.ResetRecoveryInterval()
		return nil
	case test.FieldRecoveryAttemptLimit:
		m.ResetRecoveryAttemptLimit()
		return nil
	case test.FieldKeyRo:
		m.ResetKeyRo()
		return nil
	case test.FieldKeyRw:
		m.ResetKeyRw()
		return nil
	case test.FieldCreated:
		m.ResetCreated()
		return nil
	case test.FieldLastStartedTime:
		m.ResetLastStartedTime()
		return nil
	case test.FieldLastResultTime:
		m.ResetLastResultTime()
		return nil
	case test.FieldLastResultStatus:
		m.ResetLastResultStatus()
		return nil
	case test.FieldLastDownloadedTime:
		m.ResetLastDownloadedTime()
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Test unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Test edge %s", name)
}
