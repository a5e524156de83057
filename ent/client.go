// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/geomiz/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/geomiz/ent/answerevent"
	"github.com/abhisek/geomiz/ent/checkpointcache"
	"github.com/abhisek/geomiz/ent/checkpointevent"
	"github.com/abhisek/geomiz/ent/llmrequestevent"
	"github.com/abhisek/geomiz/ent/phaseevent"
	"github.com/abhisek/geomiz/ent/remediationevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// CheckpointCache is the client for interacting with the CheckpointCache builders.
	CheckpointCache *CheckpointCacheClient
	// CheckpointEvent is the client for interacting with the CheckpointEvent builders.
	CheckpointEvent *CheckpointEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PhaseEvent is the client for interacting with the PhaseEvent builders.
	PhaseEvent *PhaseEventClient
	// RemediationEvent is the client for interacting with the RemediationEvent builders.
	RemediationEvent *RemediationEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.CheckpointCache = NewCheckpointCacheClient(c.config)
	c.CheckpointEvent = NewCheckpointEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PhaseEvent = NewPhaseEventClient(c.config)
	c.RemediationEvent = NewRemediationEventClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AnswerEvent:      NewAnswerEventClient(cfg),
		CheckpointCache:  NewCheckpointCacheClient(cfg),
		CheckpointEvent:  NewCheckpointEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PhaseEvent:       NewPhaseEventClient(cfg),
		RemediationEvent: NewRemediationEventClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AnswerEvent:      NewAnswerEventClient(cfg),
		CheckpointCache:  NewCheckpointCacheClient(cfg),
		CheckpointEvent:  NewCheckpointEventClient(cfg),
		LLMRequestEvent:  NewLLMRequestEventClient(cfg),
		PhaseEvent:       NewPhaseEventClient(cfg),
		RemediationEvent: NewRemediationEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
		c.AnswerEvent, c.CheckpointCache, c.CheckpointEvent, c.LLMRequestEvent,
		c.PhaseEvent, c.RemediationEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerEvent, c.CheckpointCache, c.CheckpointEvent, c.LLMRequestEvent,
		c.PhaseEvent, c.RemediationEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *CheckpointCacheMutation:
		return c.CheckpointCache.mutate(ctx, m)
	case *CheckpointEventMutation:
		return c.CheckpointEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PhaseEventMutation:
		return c.PhaseEvent.mutate(ctx, m)
	case *RemediationEventMutation:
		return c.RemediationEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// CheckpointCacheClient is a client for the CheckpointCache schema.
type CheckpointCacheClient struct {
	config
}

// NewCheckpointCacheClient returns a client for the CheckpointCache from the given config.
func NewCheckpointCacheClient(c config) *CheckpointCacheClient {
	return &CheckpointCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpointcache.Hooks(f(g(h())))`.
func (c *CheckpointCacheClient) Use(hooks ...Hook) {
	c.hooks.CheckpointCache = append(c.hooks.CheckpointCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpointcache.Intercept(f(g(h())))`.
func (c *CheckpointCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.CheckpointCache = append(c.inters.CheckpointCache, interceptors...)
}

// Create returns a builder for creating a CheckpointCache entity.
func (c *CheckpointCacheClient) Create() *CheckpointCacheCreate {
	mutation := newCheckpointCacheMutation(c.config, OpCreate)
	return &CheckpointCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CheckpointCache entities.
func (c *CheckpointCacheClient) CreateBulk(builders ...*CheckpointCacheCreate) *CheckpointCacheCreateBulk {
	return &CheckpointCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointCacheClient) MapCreateBulk(slice any, setFunc func(*CheckpointCacheCreate, int)) *CheckpointCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCacheCreateBulk{err: fmt.Errorf("calling to CheckpointCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CheckpointCache.
func (c *CheckpointCacheClient) Update() *CheckpointCacheUpdate {
	mutation := newCheckpointCacheMutation(c.config, OpUpdate)
	return &CheckpointCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointCacheClient) UpdateOne(_m *CheckpointCache) *CheckpointCacheUpdateOne {
	mutation := newCheckpointCacheMutation(c.config, OpUpdateOne, withCheckpointCache(_m))
	return &CheckpointCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointCacheClient) UpdateOneID(id int) *CheckpointCacheUpdateOne {
	mutation := newCheckpointCacheMutation(c.config, OpUpdateOne, withCheckpointCacheID(id))
	return &CheckpointCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CheckpointCache.
func (c *CheckpointCacheClient) Delete() *CheckpointCacheDelete {
	mutation := newCheckpointCacheMutation(c.config, OpDelete)
	return &CheckpointCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointCacheClient) DeleteOne(_m *CheckpointCache) *CheckpointCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointCacheClient) DeleteOneID(id int) *CheckpointCacheDeleteOne {
	builder := c.Delete().Where(checkpointcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointCacheDeleteOne{builder}
}

// Query returns a query builder for CheckpointCache.
func (c *CheckpointCacheClient) Query() *CheckpointCacheQuery {
	return &CheckpointCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpointCache},
		inters: c.Interceptors(),
	}
}

// Get returns a CheckpointCache entity by its id.
func (c *CheckpointCacheClient) Get(ctx context.Context, id int) (*CheckpointCache, error) {
	return c.Query().Where(checkpointcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointCacheClient) GetX(ctx context.Context, id int) *CheckpointCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointCacheClient) Hooks() []Hook {
	return c.hooks.CheckpointCache
}

// Interceptors returns the client interceptors.
func (c *CheckpointCacheClient) Interceptors() []Interceptor {
	return c.inters.CheckpointCache
}

func (c *CheckpointCacheClient) mutate(ctx context.Context, m *CheckpointCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CheckpointCache mutation op: %q", m.Op())
	}
}

// CheckpointEventClient is a client for the CheckpointEvent schema.
type CheckpointEventClient struct {
	config
}

// NewCheckpointEventClient returns a client for the CheckpointEvent from the given config.
func NewCheckpointEventClient(c config) *CheckpointEventClient {
	return &CheckpointEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpointevent.Hooks(f(g(h())))`.
func (c *CheckpointEventClient) Use(hooks ...Hook) {
	c.hooks.CheckpointEvent = append(c.hooks.CheckpointEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpointevent.Intercept(f(g(h())))`.
func (c *CheckpointEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CheckpointEvent = append(c.inters.CheckpointEvent, interceptors...)
}

// Create returns a builder for creating a CheckpointEvent entity.
func (c *CheckpointEventClient) Create() *CheckpointEventCreate {
	mutation := newCheckpointEventMutation(c.config, OpCreate)
	return &CheckpointEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CheckpointEvent entities.
func (c *CheckpointEventClient) CreateBulk(builders ...*CheckpointEventCreate) *CheckpointEventCreateBulk {
	return &CheckpointEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointEventClient) MapCreateBulk(slice any, setFunc func(*CheckpointEventCreate, int)) *CheckpointEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointEventCreateBulk{err: fmt.Errorf("calling to CheckpointEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CheckpointEvent.
func (c *CheckpointEventClient) Update() *CheckpointEventUpdate {
	mutation := newCheckpointEventMutation(c.config, OpUpdate)
	return &CheckpointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointEventClient) UpdateOne(_m *CheckpointEvent) *CheckpointEventUpdateOne {
	mutation := newCheckpointEventMutation(c.config, OpUpdateOne, withCheckpointEvent(_m))
	return &CheckpointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointEventClient) UpdateOneID(id int) *CheckpointEventUpdateOne {
	mutation := newCheckpointEventMutation(c.config, OpUpdateOne, withCheckpointEventID(id))
	return &CheckpointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CheckpointEvent.
func (c *CheckpointEventClient) Delete() *CheckpointEventDelete {
	mutation := newCheckpointEventMutation(c.config, OpDelete)
	return &CheckpointEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointEventClient) DeleteOne(_m *CheckpointEvent) *CheckpointEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointEventClient) DeleteOneID(id int) *CheckpointEventDeleteOne {
	builder := c.Delete().Where(checkpointevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointEventDeleteOne{builder}
}

// Query returns a query builder for CheckpointEvent.
func (c *CheckpointEventClient) Query() *CheckpointEventQuery {
	return &CheckpointEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpointEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CheckpointEvent entity by its id.
func (c *CheckpointEventClient) Get(ctx context.Context, id int) (*CheckpointEvent, error) {
	return c.Query().Where(checkpointevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointEventClient) GetX(ctx context.Context, id int) *CheckpointEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CheckpointEventClient) Hooks() []Hook {
	return c.hooks.CheckpointEvent
}

// Interceptors returns the client interceptors.
func (c *CheckpointEventClient) Interceptors() []Interceptor {
	return c.inters.CheckpointEvent
}

func (c *CheckpointEventClient) mutate(ctx context.Context, m *CheckpointEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CheckpointEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PhaseEventClient is a client for the PhaseEvent schema.
type PhaseEventClient struct {
	config
}

// NewPhaseEventClient returns a client for the PhaseEvent from the given config.
func NewPhaseEventClient(c config) *PhaseEventClient {
	return &PhaseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phaseevent.Hooks(f(g(h())))`.
func (c *PhaseEventClient) Use(hooks ...Hook) {
	c.hooks.PhaseEvent = append(c.hooks.PhaseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phaseevent.Intercept(f(g(h())))`.
func (c *PhaseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhaseEvent = append(c.inters.PhaseEvent, interceptors...)
}

// Create returns a builder for creating a PhaseEvent entity.
func (c *PhaseEventClient) Create() *PhaseEventCreate {
	mutation := newPhaseEventMutation(c.config, OpCreate)
	return &PhaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhaseEvent entities.
func (c *PhaseEventClient) CreateBulk(builders ...*PhaseEventCreate) *PhaseEventCreateBulk {
	return &PhaseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhaseEventClient) MapCreateBulk(slice any, setFunc func(*PhaseEventCreate, int)) *PhaseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhaseEventCreateBulk{err: fmt.Errorf("calling to PhaseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhaseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhaseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhaseEvent.
func (c *PhaseEventClient) Update() *PhaseEventUpdate {
	mutation := newPhaseEventMutation(c.config, OpUpdate)
	return &PhaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhaseEventClient) UpdateOne(_m *PhaseEvent) *PhaseEventUpdateOne {
	mutation := newPhaseEventMutation(c.config, OpUpdateOne, withPhaseEvent(_m))
	return &PhaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhaseEventClient) UpdateOneID(id int) *PhaseEventUpdateOne {
	mutation := newPhaseEventMutation(c.config, OpUpdateOne, withPhaseEventID(id))
	return &PhaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhaseEvent.
func (c *PhaseEventClient) Delete() *PhaseEventDelete {
	mutation := newPhaseEventMutation(c.config, OpDelete)
	return &PhaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhaseEventClient) DeleteOne(_m *PhaseEvent) *PhaseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhaseEventClient) DeleteOneID(id int) *PhaseEventDeleteOne {
	builder := c.Delete().Where(phaseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhaseEventDeleteOne{builder}
}

// Query returns a query builder for PhaseEvent.
func (c *PhaseEventClient) Query() *PhaseEventQuery {
	return &PhaseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhaseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PhaseEvent entity by its id.
func (c *PhaseEventClient) Get(ctx context.Context, id int) (*PhaseEvent, error) {
	return c.Query().Where(phaseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhaseEventClient) GetX(ctx context.Context, id int) *PhaseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PhaseEventClient) Hooks() []Hook {
	return c.hooks.PhaseEvent
}

// Interceptors returns the client interceptors.
func (c *PhaseEventClient) Interceptors() []Interceptor {
	return c.inters.PhaseEvent
}

func (c *PhaseEventClient) mutate(ctx context.Context, m *PhaseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhaseEvent mutation op: %q", m.Op())
	}
}

// RemediationEventClient is a client for the RemediationEvent schema.
type RemediationEventClient struct {
	config
}

// NewRemediationEventClient returns a client for the RemediationEvent from the given config.
func NewRemediationEventClient(c config) *RemediationEventClient {
	return &RemediationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `remediationevent.Hooks(f(g(h())))`.
func (c *RemediationEventClient) Use(hooks ...Hook) {
	c.hooks.RemediationEvent = append(c.hooks.RemediationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `remediationevent.Intercept(f(g(h())))`.
func (c *RemediationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RemediationEvent = append(c.inters.RemediationEvent, interceptors...)
}

// Create returns a builder for creating a RemediationEvent entity.
func (c *RemediationEventClient) Create() *RemediationEventCreate {
	mutation := newRemediationEventMutation(c.config, OpCreate)
	return &RemediationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RemediationEvent entities.
func (c *RemediationEventClient) CreateBulk(builders ...*RemediationEventCreate) *RemediationEventCreateBulk {
	return &RemediationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RemediationEventClient) MapCreateBulk(slice any, setFunc func(*RemediationEventCreate, int)) *RemediationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RemediationEventCreateBulk{err: fmt.Errorf("calling to RemediationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RemediationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RemediationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RemediationEvent.
func (c *RemediationEventClient) Update() *RemediationEventUpdate {
	mutation := newRemediationEventMutation(c.config, OpUpdate)
	return &RemediationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RemediationEventClient) UpdateOne(_m *RemediationEvent) *RemediationEventUpdateOne {
	mutation := newRemediationEventMutation(c.config, OpUpdateOne, withRemediationEvent(_m))
	return &RemediationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RemediationEventClient) UpdateOneID(id int) *RemediationEventUpdateOne {
	mutation := newRemediationEventMutation(c.config, OpUpdateOne, withRemediationEventID(id))
	return &RemediationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RemediationEvent.
func (c *RemediationEventClient) Delete() *RemediationEventDelete {
	mutation := newRemediationEventMutation(c.config, OpDelete)
	return &RemediationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RemediationEventClient) DeleteOne(_m *RemediationEvent) *RemediationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RemediationEventClient) DeleteOneID(id int) *RemediationEventDeleteOne {
	builder := c.Delete().Where(remediationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RemediationEventDeleteOne{builder}
}

// Query returns a query builder for RemediationEvent.
func (c *RemediationEventClient) Query() *RemediationEventQuery {
	return &RemediationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRemediationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RemediationEvent entity by its id.
func (c *RemediationEventClient) Get(ctx context.Context, id int) (*RemediationEvent, error) {
	return c.Query().Where(remediationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RemediationEventClient) GetX(ctx context.Context, id int) *RemediationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RemediationEventClient) Hooks() []Hook {
	return c.hooks.RemediationEvent
}

// Interceptors returns the client interceptors.
func (c *RemediationEventClient) Interceptors() []Interceptor {
	return c.inters.RemediationEvent
}

func (c *RemediationEventClient) mutate(ctx context.Context, m *RemediationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RemediationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RemediationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RemediationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RemediationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RemediationEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, CheckpointCache, CheckpointEvent, LLMRequestEvent, PhaseEvent,
		RemediationEvent []ent.Hook
	}
	inters struct {
		AnswerEvent, CheckpointCache, CheckpointEvent, LLMRequestEvent, PhaseEvent,
		RemediationEvent []ent.Interceptor
	}
)
