// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/inventor-project/symon/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/inventor-project/symon/ent/event"
	"github.com/inventor-project/symon/ent/multiresult"
	"github.com/inventor-project/symon/ent/nonce"
	"github.com/inventor-project/symon/ent/oldparam"
	"github.com/inventor-project/symon/ent/orchestrator"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/result"
	"github.com/inventor-project/symon/ent/run"
	"github.com/inventor-project/symon/ent/stat"
	"github.com/inventor-project/symon/ent/test"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// MultiResult is the client for interacting with the MultiResult builders.
	MultiResult *MultiResultClient
	// Nonce is the client for interacting with the Nonce builders.
	Nonce *NonceClient
	// OldParam is the client for interacting with the OldParam builders.
	OldParam *OldParamClient
	// Orchestrator is the client for interacting with the Orchestrator builders.
	Orchestrator *OrchestratorClient
	// Request is the client for interacting with the Request builders.
	Request *RequestClient
	// Result is the client for interacting with the Result builders.
	Result *ResultClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// Stat is the client for interacting with the Stat builders.
	Stat *StatClient
	// Test is the client for interacting with the Test builders.
	Test *TestClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Event = NewEventClient(c.config)
	c.MultiResult = NewMultiResultClient(c.config)
	c.Nonce = NewNonceClient(c.config)
	c.OldParam = NewOldParamClient(c.config)
	c.Orchestrator = NewOrchestratorClient(c.config)
	c.Request = NewRequestClient(c.config)
	c.Result = NewResultClient(c.config)
	c.Run = NewRunClient(c.config)
	c.Stat = NewStatClient(c.config)
	c.Test = NewTestClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Event:        NewEventClient(cfg),
		MultiResult:  NewMultiResultClient(cfg),
		Nonce:        NewNonceClient(cfg),
		OldParam:     NewOldParamClient(cfg),
		Orchestrator: NewOrchestratorClient(cfg),
		Request:      NewRequestClient(cfg),
		Result:       NewResultClient(cfg),
		Run:          NewRunClient(cfg),
		Stat:         NewStatClient(cfg),
		Test:         NewTestClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Event:        NewEventClient(cfg),
		MultiResult:  NewMultiResultClient(cfg),
		Nonce:        NewNonceClient(cfg),
		OldParam:     NewOldParamClient(cfg),
		Orchestrator: NewOrchestratorClient(cfg),
		Request:      NewRequestClient(cfg),
		Result:       NewResultClient(cfg),
		Run:          NewRunClient(cfg),
		Stat:         NewStatClient(cfg),
		Test:         NewTestClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Event.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Event, c.MultiResult, c.Nonce, c.OldParam, c.Orchestrator, c.Request,
		c.Result, c.Run, c.Stat, c.Test,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Event, c.MultiResult, c.Nonce, c.OldParam, c.Orchestrator, c.Request,
		c.Result, c.Run, c.Stat, c.Test,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *MultiResultMutation:
		return c.MultiResult.mutate(ctx, m)
	case *NonceMutation:
		return c.Nonce.mutate(ctx, m)
	case *OldParamMutation:
		return c.OldParam.mutate(ctx, m)
	case *OrchestratorMutation:
		return c.Orchestrator.mutate(ctx, m)
	case *RequestMutation:
		return c.Request.mutate(ctx, m)
	case *ResultMutation:
		return c.Result.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *StatMutation:
		return c.Stat.mutate(ctx, m)
	case *TestMutation:
		return c.Test.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// MultiResultClient is a client for the MultiResult schema.
type MultiResultClient struct {
	config
}

// NewMultiResultClient returns a client for the MultiResult from the given config.
func NewMultiResultClient(c config) *MultiResultClient {
	return &MultiResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `multiresult.Hooks(f(g(h())))`.
func (c *MultiResultClient) Use(hooks ...Hook) {
	c.hooks.MultiResult = append(c.hooks.MultiResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `multiresult.Intercept(f(g(h())))`.
func (c *MultiResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.MultiResult = append(c.inters.MultiResult, interceptors...)
}

// Create returns a builder for creating a MultiResult entity.
func (c *MultiResultClient) Create() *MultiResultCreate {
	mutation := newMultiResultMutation(c.config, OpCreate)
	return &MultiResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MultiResult entities.
func (c *MultiResultClient) CreateBulk(builders ...*MultiResultCreate) *MultiResultCreateBulk {
	return &MultiResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MultiResultClient) MapCreateBulk(slice any, setFunc func(*MultiResultCreate, int)) *MultiResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MultiResultCreateBulk{err: fmt.Errorf("calling to MultiResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MultiResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MultiResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MultiResult.
func (c *MultiResultClient) Update() *MultiResultUpdate {
	mutation := newMultiResultMutation(c.config, OpUpdate)
	return &MultiResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MultiResultClient) UpdateOne(_m *MultiResult) *MultiResultUpdateOne {
	mutation := newMultiResultMutation(c.config, OpUpdateOne, withMultiResult(_m))
	return &MultiResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MultiResultClient) UpdateOneID(id int) *MultiResultUpdateOne {
	mutation := newMultiResultMutation(c.config, OpUpdateOne, withMultiResultID(id))
	return &MultiResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MultiResult.
func (c *MultiResultClient) Delete() *MultiResultDelete {
	mutation := newMultiResultMutation(c.config, OpDelete)
	return &MultiResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MultiResultClient) DeleteOne(_m *MultiResult) *MultiResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MultiResultClient) DeleteOneID(id int) *MultiResultDeleteOne {
	builder := c.Delete().Where(multiresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MultiResultDeleteOne{builder}
}

// Query returns a query builder for MultiResult.
func (c *MultiResultClient) Query() *MultiResultQuery {
	return &MultiResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMultiResult},
		inters: c.Interceptors(),
	}
}

// Get returns a MultiResult entity by its id.
func (c *MultiResultClient) Get(ctx context.Context, id int) (*MultiResult, error) {
	return c.Query().Where(multiresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MultiResultClient) GetX(ctx context.Context, id int) *MultiResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MultiResultClient) Hooks() []Hook {
	return c.hooks.MultiResult
}

// Interceptors returns the client interceptors.
func (c *MultiResultClient) Interceptors() []Interceptor {
	return c.inters.MultiResult
}

func (c *MultiResultClient) mutate(ctx context.Context, m *MultiResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MultiResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MultiResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MultiResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MultiResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MultiResult mutation op: %q", m.Op())
	}
}

// NonceClient is a client for the Nonce schema.
type NonceClient struct {
	config
}

// NewNonceClient returns a client for the Nonce from the given config.
func NewNonceClient(c config) *NonceClient {
	return &NonceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nonce.Hooks(f(g(h())))`.
func (c *NonceClient) Use(hooks ...Hook) {
	c.hooks.Nonce = append(c.hooks.Nonce, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nonce.Intercept(f(g(h())))`.
func (c *NonceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Nonce = append(c.inters.Nonce, interceptors...)
}

// Create returns a builder for creating a Nonce entity.
func (c *NonceClient) Create() *NonceCreate {
	mutation := newNonceMutation(c.config, OpCreate)
	return &NonceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Nonce entities.
func (c *NonceClient) CreateBulk(builders ...*NonceCreate) *NonceCreateBulk {
	return &NonceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NonceClient) MapCreateBulk(slice any, setFunc func(*NonceCreate, int)) *NonceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NonceCreateBulk{err: fmt.Errorf("calling to NonceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NonceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NonceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Nonce.
func (c *NonceClient) Update() *NonceUpdate {
	mutation := newNonceMutation(c.config, OpUpdate)
	return &NonceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NonceClient) UpdateOne(_m *Nonce) *NonceUpdateOne {
	mutation := newNonceMutation(c.config, OpUpdateOne, withNonce(_m))
	return &NonceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NonceClient) UpdateOneID(id int) *NonceUpdateOne {
	mutation := newNonceMutation(c.config, OpUpdateOne, withNonceID(id))
	return &NonceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Nonce.
func (c *NonceClient) Delete() *NonceDelete {
	mutation := newNonceMutation(c.config, OpDelete)
	return &NonceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NonceClient) DeleteOne(_m *Nonce) *NonceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NonceClient) DeleteOneID(id int) *NonceDeleteOne {
	builder := c.Delete().Where(nonce.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NonceDeleteOne{builder}
}

// Query returns a query builder for Nonce.
func (c *NonceClient) Query() *NonceQuery {
	return &NonceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNonce},
		inters: c.Interceptors(),
	}
}

// Get returns a Nonce entity by its id.
func (c *NonceClient) Get(ctx context.Context, id int) (*Nonce, error) {
	return c.Query().Where(nonce.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NonceClient) GetX(ctx context.Context, id int) *Nonce {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NonceClient) Hooks() []Hook {
	return c.hooks.Nonce
}

// Interceptors returns the client interceptors.
func (c *NonceClient) Interceptors() []Interceptor {
	return c.inters.Nonce
}

func (c *NonceClient) mutate(ctx context.Context, m *NonceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NonceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NonceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NonceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NonceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Nonce mutation op: %q", m.Op())
	}
}

// OldParamClient is a client for the OldParam schema.
type OldParamClient struct {
	config
}

// NewOldParamClient returns a client for the OldParam from the given config.
func NewOldParamClient(c config) *OldParamClient {
	return &OldParamClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oldparam.Hooks(f(g(h())))`.
func (c *OldParamClient) Use(hooks ...Hook) {
	c.hooks.OldParam = append(c.hooks.OldParam, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oldparam.Intercept(f(g(h())))`.
func (c *OldParamClient) Intercept(interceptors ...Interceptor) {
	c.inters.OldParam = append(c.inters.OldParam, interceptors...)
}

// Create returns a builder for creating a OldParam entity.
func (c *OldParamClient) Create() *OldParamCreate {
	mutation := newOldParamMutation(c.config, OpCreate)
	return &OldParamCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OldParam entities.
func (c *OldParamClient) CreateBulk(builders ...*OldParamCreate) *OldParamCreateBulk {
	return &OldParamCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OldParamClient) MapCreateBulk(slice any, setFunc func(*OldParamCreate, int)) *OldParamCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OldParamCreateBulk{err: fmt.Errorf("calling to OldParamClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OldParamCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OldParamCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OldParam.
func (c *OldParamClient) Update() *OldParamUpdate {
	mutation := newOldParamMutation(c.config, OpUpdate)
	return &OldParamUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OldParamClient) UpdateOne(_m *OldParam) *OldParamUpdateOne {
	mutation := newOldParamMutation(c.config, OpUpdateOne, withOldParam(_m))
	return &OldParamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OldParamClient) UpdateOneID(id int) *OldParamUpdateOne {
	mutation := newOldParamMutation(c.config, OpUpdateOne, withOldParamID(id))
	return &OldParamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OldParam.
func (c *OldParamClient) Delete() *OldParamDelete {
	mutation := newOldParamMutation(c.config, OpDelete)
	return &OldParamDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OldParamClient) DeleteOne(_m *OldParam) *OldParamDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OldParamClient) DeleteOneID(id int) *OldParamDeleteOne {
	builder := c.Delete().Where(oldparam.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OldParamDeleteOne{builder}
}

// Query returns a query builder for OldParam.
func (c *OldParamClient) Query() *OldParamQuery {
	return &OldParamQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOldParam},
		inters: c.Interceptors(),
	}
}

// Get returns a OldParam entity by its id.
func (c *OldParamClient) Get(ctx context.Context, id int) (*OldParam, error) {
	return c.Query().Where(oldparam.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OldParamClient) GetX(ctx context.Context, id int) *OldParam {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OldParamClient) Hooks() []Hook {
	return c.hooks.OldParam
}

// Interceptors returns the client interceptors.
func (c *OldParamClient) Interceptors() []Interceptor {
	return c.inters.OldParam
}

func (c *OldParamClient) mutate(ctx context.Context, m *OldParamMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OldParamCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OldParamUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OldParamUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OldParamDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OldParam mutation op: %q", m.Op())
	}
}

// OrchestratorClient is a client for the Orchestrator schema.
type OrchestratorClient struct {
	config
}

// NewOrchestratorClient returns a client for the Orchestrator from the given config.
func NewOrchestratorClient(c config) *OrchestratorClient {
	return &OrchestratorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orchestrator.Hooks(f(g(h())))`.
func (c *OrchestratorClient) Use(hooks ...Hook) {
	c.hooks.Orchestrator = append(c.hooks.Orchestrator, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orchestrator.Intercept(f(g(h())))`.
func (c *OrchestratorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Orchestrator = append(c.inters.Orchestrator, interceptors...)
}

// Create returns a builder for creating a Orchestrator entity.
func (c *OrchestratorClient) Create() *OrchestratorCreate {
	mutation := newOrchestratorMutation(c.config, OpCreate)
	return &OrchestratorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Orchestrator entities.
func (c *OrchestratorClient) CreateBulk(builders ...*OrchestratorCreate) *OrchestratorCreateBulk {
	return &OrchestratorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrchestratorClient) MapCreateBulk(slice any, setFunc func(*OrchestratorCreate, int)) *OrchestratorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrchestratorCreateBulk{err: fmt.Errorf("calling to OrchestratorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrchestratorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrchestratorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Orchestrator.
func (c *OrchestratorClient) Update() *OrchestratorUpdate {
	mutation := newOrchestratorMutation(c.config, OpUpdate)
	return &OrchestratorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrchestratorClient) UpdateOne(_m *Orchestrator) *OrchestratorUpdateOne {
	mutation := newOrchestratorMutation(c.config, OpUpdateOne, withOrchestrator(_m))
	return &OrchestratorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrchestratorClient) UpdateOneID(id int) *OrchestratorUpdateOne {
	mutation := newOrchestratorMutation(c.config, OpUpdateOne, withOrchestratorID(id))
	return &OrchestratorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Orchestrator.
func (c *OrchestratorClient) Delete() *OrchestratorDelete {
	mutation := newOrchestratorMutation(c.config, OpDelete)
	return &OrchestratorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrchestratorClient) DeleteOne(_m *Orchestrator) *OrchestratorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrchestratorClient) DeleteOneID(id int) *OrchestratorDeleteOne {
	builder := c.Delete().Where(orchestrator.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrchestratorDeleteOne{builder}
}

// Query returns a query builder for Orchestrator.
func (c *OrchestratorClient) Query() *OrchestratorQuery {
	return &OrchestratorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrchestrator},
		inters: c.Interceptors(),
	}
}

// Get returns a Orchestrator entity by its id.
func (c *OrchestratorClient) Get(ctx context.Context, id int) (*Orchestrator, error) {
	return c.Query().Where(orchestrator.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrchestratorClient) GetX(ctx context.Context, id int) *Orchestrator {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrchestratorClient) Hooks() []Hook {
	return c.hooks.Orchestrator
}

// Interceptors returns the client interceptors.
func (c *OrchestratorClient) Interceptors() []Interceptor {
	return c.inters.Orchestrator
}

func (c *OrchestratorClient) mutate(ctx context.Context, m *OrchestratorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrchestratorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrchestratorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrchestratorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrchestratorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Orchestrator mutation op: %q", m.Op())
	}
}

// RequestClient is a client for the Request schema.
type RequestClient struct {
	config
}

// NewRequestClient returns a client for the Request from the given config.
func NewRequestClient(c config) *RequestClient {
	return &RequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `request.Hooks(f(g(h())))`.
func (c *RequestClient) Use(hooks ...Hook) {
	c.hooks.Request = append(c.hooks.Request, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `request.Intercept(f(g(h())))`.
func (c *RequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.Request = append(c.inters.Request, interceptors...)
}

// Create returns a builder for creating a Request entity.
func (c *RequestClient) Create() *RequestCreate {
	mutation := newRequestMutation(c.config, OpCreate)
	return &RequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Request entities.
func (c *RequestClient) CreateBulk(builders ...*RequestCreate) *RequestCreateBulk {
	return &RequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestClient) MapCreateBulk(slice any, setFunc func(*RequestCreate, int)) *RequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestCreateBulk{err: fmt.Errorf("calling to RequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Request.
func (c *RequestClient) Update() *RequestUpdate {
	mutation := newRequestMutation(c.config, OpUpdate)
	return &RequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestClient) UpdateOne(_m *Request) *RequestUpdateOne {
	mutation := newRequestMutation(c.config, OpUpdateOne, withRequest(_m))
	return &RequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestClient) UpdateOneID(id int) *RequestUpdateOne {
	mutation := newRequestMutation(c.config, OpUpdateOne, withRequestID(id))
	return &RequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Request.
func (c *RequestClient) Delete() *RequestDelete {
	mutation := newRequestMutation(c.config, OpDelete)
	return &RequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestClient) DeleteOne(_m *Request) *RequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestClient) DeleteOneID(id int) *RequestDeleteOne {
	builder := c.Delete().Where(request.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestDeleteOne{builder}
}

// Query returns a query builder for Request.
func (c *RequestClient) Query() *RequestQuery {
	return &RequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a Request entity by its id.
func (c *RequestClient) Get(ctx context.Context, id int) (*Request, error) {
	return c.Query().Where(request.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestClient) GetX(ctx context.Context, id int) *Request {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RequestClient) Hooks() []Hook {
	return c.hooks.Request
}

// Interceptors returns the client interceptors.
func (c *RequestClient) Interceptors() []Interceptor {
	return c.inters.Request
}

func (c *RequestClient) mutate(ctx context.Context, m *RequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Request mutation op: %q", m.Op())
	}
}

// ResultClient is a client for the Result schema.
type ResultClient struct {
	config
}

// NewResultClient returns a client for the Result from the given config.
func NewResultClient(c config) *ResultClient {
	return &ResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `result.Hooks(f(g(h())))`.
func (c *ResultClient) Use(hooks ...Hook) {
	c.hooks.Result = append(c.hooks.Result, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `result.Intercept(f(g(h())))`.
func (c *ResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.Result = append(c.inters.Result, interceptors...)
}

// Create returns a builder for creating a Result entity.
func (c *ResultClient) Create() *ResultCreate {
	mutation := newResultMutation(c.config, OpCreate)
	return &ResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Result entities.
func (c *ResultClient) CreateBulk(builders ...*ResultCreate) *ResultCreateBulk {
	return &ResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResultClient) MapCreateBulk(slice any, setFunc func(*ResultCreate, int)) *ResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResultCreateBulk{err: fmt.Errorf("calling to ResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Result.
func (c *ResultClient) Update() *ResultUpdate {
	mutation := newResultMutation(c.config, OpUpdate)
	return &ResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResultClient) UpdateOne(_m *Result) *ResultUpdateOne {
	mutation := newResultMutation(c.config, OpUpdateOne, withResult(_m))
	return &ResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResultClient) UpdateOneID(id int) *ResultUpdateOne {
	mutation := newResultMutation(c.config, OpUpdateOne, withResultID(id))
	return &ResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Result.
func (c *ResultClient) Delete() *ResultDelete {
	mutation := newResultMutation(c.config, OpDelete)
	return &ResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResultClient) DeleteOne(_m *Result) *ResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResultClient) DeleteOneID(id int) *ResultDeleteOne {
	builder := c.Delete().Where(result.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResultDeleteOne{builder}
}

// Query returns a query builder for Result.
func (c *ResultClient) Query() *ResultQuery {
	return &ResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResult},
		inters: c.Interceptors(),
	}
}

// Get returns a Result entity by its id.
func (c *ResultClient) Get(ctx context.Context, id int) (*Result, error) {
	return c.Query().Where(result.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResultClient) GetX(ctx context.Context, id int) *Result {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResultClient) Hooks() []Hook {
	return c.hooks.Result
}

// Interceptors returns the client interceptors.
func (c *ResultClient) Interceptors() []Interceptor {
	return c.inters.Result
}

func (c *ResultClient) mutate(ctx context.Context, m *ResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Result mutation op: %q", m.Op())
	}
}

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id int) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id int) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id int) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id int) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// StatClient is a client for the Stat schema.
type StatClient struct {
	config
}

// NewStatClient returns a client for the Stat from the given config.
func NewStatClient(c config) *StatClient {
	return &StatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stat.Hooks(f(g(h())))`.
func (c *StatClient) Use(hooks ...Hook) {
	c.hooks.Stat = append(c.hooks.Stat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stat.Intercept(f(g(h())))`.
func (c *StatClient) Intercept(interceptors ...Interceptor) {
	c.inters.Stat = append(c.inters.Stat, interceptors...)
}

// Create returns a builder for creating a Stat entity.
func (c *StatClient) Create() *StatCreate {
	mutation := newStatMutation(c.config, OpCreate)
	return &StatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Stat entities.
func (c *StatClient) CreateBulk(builders ...*StatCreate) *StatCreateBulk {
	return &StatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StatClient) MapCreateBulk(slice any, setFunc func(*StatCreate, int)) *StatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StatCreateBulk{err: fmt.Errorf("calling to StatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Stat.
func (c *StatClient) Update() *StatUpdate {
	mutation := newStatMutation(c.config, OpUpdate)
	return &StatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StatClient) UpdateOne(_m *Stat) *StatUpdateOne {
	mutation := newStatMutation(c.config, OpUpdateOne, withStat(_m))
	return &StatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StatClient) UpdateOneID(id int) *StatUpdateOne {
	mutation := newStatMutation(c.config, OpUpdateOne, withStatID(id))
	return &StatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Stat.
func (c *StatClient) Delete() *StatDelete {
	mutation := newStatMutation(c.config, OpDelete)
	return &StatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StatClient) DeleteOne(_m *Stat) *StatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StatClient) DeleteOneID(id int) *StatDeleteOne {
	builder := c.Delete().Where(stat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StatDeleteOne{builder}
}

// Query returns a query builder for Stat.
func (c *StatClient) Query() *StatQuery {
	return &StatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStat},
		inters: c.Interceptors(),
	}
}

// Get returns a Stat entity by its id.
func (c *StatClient) Get(ctx context.Context, id int) (*Stat, error) {
	return c.Query().Where(stat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StatClient) GetX(ctx context.Context, id int) *Stat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StatClient) Hooks() []Hook {
	return c.hooks.Stat
}

// Interceptors returns the client interceptors.
func (c *StatClient) Interceptors() []Interceptor {
	return c.inters.Stat
}

func (c *StatClient) mutate(ctx context.Context, m *StatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Stat mutation op: %q", m.Op())
	}
}

// TestClient is a client for the Test schema.
type TestClient struct {
	config
}

// NewTestClient returns a client for the Test from the given config.
func NewTestClient(c config) *TestClient {
	return &TestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `test.Hooks(f(g(h())))`.
func (c *TestClient) Use(hooks ...Hook) {
	c.hooks.Test = append(c.hooks.Test, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `test.Intercept(f(g(h())))`.
func (c *TestClient) Intercept(interceptors ...Interceptor) {
	c.inters.Test = append(c.inters.Test, interceptors...)
}

// Create returns a builder for creating a Test entity.
func (c *TestClient) Create() *TestCreate {
	mutation := newTestMutation(c.config, OpCreate)
	return &TestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Test entities.
func (c *TestClient) CreateBulk(builders ...*TestCreate) *TestCreateBulk {
	return &TestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestClient) MapCreateBulk(slice any, setFunc func(*TestCreate, int)) *TestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestCreateBulk{err: fmt.Errorf("calling to TestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Test.
func (c *TestClient) Update() *TestUpdate {
	mutation := newTestMutation(c.config, OpUpdate)
	return &TestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestClient) UpdateOne(_m *Test) *TestUpdateOne {
	mutation := newTestMutation(c.config, OpUpdateOne, withTest(_m))
	return &TestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestClient) UpdateOneID(id int) *TestUpdateOne {
	mutation := newTestMutation(c.config, OpUpdateOne, withTestID(id))
	return &TestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Test.
func (c *TestClient) Delete() *TestDelete {
	mutation := newTestMutation(c.config, OpDelete)
	return &TestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestClient) DeleteOne(_m *Test) *TestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestClient) DeleteOneID(id int) *TestDeleteOne {
	builder := c.Delete().Where(test.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestDeleteOne{builder}
}

// Query returns a query builder for Test.
func (c *TestClient) Query() *TestQuery {
	return &TestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTest},
		inters: c.Interceptors(),
	}
}

// Get returns a Test entity by its id.
func (c *TestClient) Get(ctx context.Context, id int) (*Test, error) {
	return c.Query().Where(test.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestClient) GetX(ctx context.Context, id int) *Test {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TestClient) Hooks() []Hook {
	return c.hooks.Test
}

// Interceptors returns the client interceptors.
func (c *TestClient) Interceptors() []Interceptor {
	return c.inters.Test
}

func (c *TestClient) mutate(ctx context.Context, m *TestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Test mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Event, MultiResult, Nonce, OldParam, Orchestrator, Request, Result, Run, Stat,
		Test []ent.Hook
	}
	inters struct {
		Event, MultiResult, Nonce, OldParam, Orchestrator, Request, Result, Run, Stat,
		Test []ent.Interceptor
	}
)
