// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/catalogkit/extractor/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/catalogkit/extractor/gen/ent/consolidateditem"
	"github.com/catalogkit/extractor/gen/ent/document"
	"github.com/catalogkit/extractor/gen/ent/extracteditem"
	"github.com/catalogkit/extractor/gen/ent/extractionpass"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ConsolidatedItem is the client for interacting with the ConsolidatedItem builders.
	ConsolidatedItem *ConsolidatedItemClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtractedItem is the client for interacting with the ExtractedItem builders.
	ExtractedItem *ExtractedItemClient
	// ExtractionPass is the client for interacting with the ExtractionPass builders.
	ExtractionPass *ExtractionPassClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ConsolidatedItem = NewConsolidatedItemClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.ExtractedItem = NewExtractedItemClient(c.config)
	c.ExtractionPass = NewExtractionPassClient(c.config)
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
		ConsolidatedItem: NewConsolidatedItemClient(cfg),
		Document:         NewDocumentClient(cfg),
		ExtractedItem:    NewExtractedItemClient(cfg),
		ExtractionPass:   NewExtractionPassClient(cfg),
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
		ConsolidatedItem: NewConsolidatedItemClient(cfg),
		Document:         NewDocumentClient(cfg),
		ExtractedItem:    NewExtractedItemClient(cfg),
		ExtractionPass:   NewExtractionPassClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ConsolidatedItem.
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
	c.ConsolidatedItem.Use(hooks...)
	c.Document.Use(hooks...)
	c.ExtractedItem.Use(hooks...)
	c.ExtractionPass.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ConsolidatedItem.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.ExtractedItem.Intercept(interceptors...)
	c.ExtractionPass.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ConsolidatedItemMutation:
		return c.ConsolidatedItem.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtractedItemMutation:
		return c.ExtractedItem.mutate(ctx, m)
	case *ExtractionPassMutation:
		return c.ExtractionPass.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ConsolidatedItemClient is a client for the ConsolidatedItem schema.
type ConsolidatedItemClient struct {
	config
}

// NewConsolidatedItemClient returns a client for the ConsolidatedItem from the given config.
func NewConsolidatedItemClient(c config) *ConsolidatedItemClient {
	return &ConsolidatedItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `consolidateditem.Hooks(f(g(h())))`.
func (c *ConsolidatedItemClient) Use(hooks ...Hook) {
	c.hooks.ConsolidatedItem = append(c.hooks.ConsolidatedItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `consolidateditem.Intercept(f(g(h())))`.
func (c *ConsolidatedItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConsolidatedItem = append(c.inters.ConsolidatedItem, interceptors...)
}

// Create returns a builder for creating a ConsolidatedItem entity.
func (c *ConsolidatedItemClient) Create() *ConsolidatedItemCreate {
	mutation := newConsolidatedItemMutation(c.config, OpCreate)
	return &ConsolidatedItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConsolidatedItem entities.
func (c *ConsolidatedItemClient) CreateBulk(builders ...*ConsolidatedItemCreate) *ConsolidatedItemCreateBulk {
	return &ConsolidatedItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConsolidatedItemClient) MapCreateBulk(slice any, setFunc func(*ConsolidatedItemCreate, int)) *ConsolidatedItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConsolidatedItemCreateBulk{err: fmt.Errorf("calling to ConsolidatedItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConsolidatedItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConsolidatedItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConsolidatedItem.
func (c *ConsolidatedItemClient) Update() *ConsolidatedItemUpdate {
	mutation := newConsolidatedItemMutation(c.config, OpUpdate)
	return &ConsolidatedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConsolidatedItemClient) UpdateOne(_m *ConsolidatedItem) *ConsolidatedItemUpdateOne {
	mutation := newConsolidatedItemMutation(c.config, OpUpdateOne, withConsolidatedItem(_m))
	return &ConsolidatedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConsolidatedItemClient) UpdateOneID(id uuid.UUID) *ConsolidatedItemUpdateOne {
	mutation := newConsolidatedItemMutation(c.config, OpUpdateOne, withConsolidatedItemID(id))
	return &ConsolidatedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConsolidatedItem.
func (c *ConsolidatedItemClient) Delete() *ConsolidatedItemDelete {
	mutation := newConsolidatedItemMutation(c.config, OpDelete)
	return &ConsolidatedItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConsolidatedItemClient) DeleteOne(_m *ConsolidatedItem) *ConsolidatedItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConsolidatedItemClient) DeleteOneID(id uuid.UUID) *ConsolidatedItemDeleteOne {
	builder := c.Delete().Where(consolidateditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConsolidatedItemDeleteOne{builder}
}

// Query returns a query builder for ConsolidatedItem.
func (c *ConsolidatedItemClient) Query() *ConsolidatedItemQuery {
	return &ConsolidatedItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConsolidatedItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ConsolidatedItem entity by its id.
func (c *ConsolidatedItemClient) Get(ctx context.Context, id uuid.UUID) (*ConsolidatedItem, error) {
	return c.Query().Where(consolidateditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConsolidatedItemClient) GetX(ctx context.Context, id uuid.UUID) *ConsolidatedItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ConsolidatedItem.
func (c *ConsolidatedItemClient) QueryDocument(_m *ConsolidatedItem) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(consolidateditem.Table, consolidateditem.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, consolidateditem.DocumentTable, consolidateditem.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConsolidatedItemClient) Hooks() []Hook {
	return c.hooks.ConsolidatedItem
}

// Interceptors returns the client interceptors.
func (c *ConsolidatedItemClient) Interceptors() []Interceptor {
	return c.inters.ConsolidatedItem
}

func (c *ConsolidatedItemClient) mutate(ctx context.Context, m *ConsolidatedItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConsolidatedItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConsolidatedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConsolidatedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConsolidatedItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConsolidatedItem mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPasses queries the passes edge of a Document.
func (c *DocumentClient) QueryPasses(_m *Document) *ExtractionPassQuery {
	query := (&ExtractionPassClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extractionpass.Table, extractionpass.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.PassesTable, document.PassesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConsolidatedItems queries the consolidated_items edge of a Document.
func (c *DocumentClient) QueryConsolidatedItems(_m *Document) *ConsolidatedItemQuery {
	query := (&ConsolidatedItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(consolidateditem.Table, consolidateditem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ConsolidatedItemsTable, document.ConsolidatedItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtractedItemClient is a client for the ExtractedItem schema.
type ExtractedItemClient struct {
	config
}

// NewExtractedItemClient returns a client for the ExtractedItem from the given config.
func NewExtractedItemClient(c config) *ExtractedItemClient {
	return &ExtractedItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extracteditem.Hooks(f(g(h())))`.
func (c *ExtractedItemClient) Use(hooks ...Hook) {
	c.hooks.ExtractedItem = append(c.hooks.ExtractedItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extracteditem.Intercept(f(g(h())))`.
func (c *ExtractedItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedItem = append(c.inters.ExtractedItem, interceptors...)
}

// Create returns a builder for creating a ExtractedItem entity.
func (c *ExtractedItemClient) Create() *ExtractedItemCreate {
	mutation := newExtractedItemMutation(c.config, OpCreate)
	return &ExtractedItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedItem entities.
func (c *ExtractedItemClient) CreateBulk(builders ...*ExtractedItemCreate) *ExtractedItemCreateBulk {
	return &ExtractedItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedItemClient) MapCreateBulk(slice any, setFunc func(*ExtractedItemCreate, int)) *ExtractedItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedItemCreateBulk{err: fmt.Errorf("calling to ExtractedItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedItem.
func (c *ExtractedItemClient) Update() *ExtractedItemUpdate {
	mutation := newExtractedItemMutation(c.config, OpUpdate)
	return &ExtractedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedItemClient) UpdateOne(_m *ExtractedItem) *ExtractedItemUpdateOne {
	mutation := newExtractedItemMutation(c.config, OpUpdateOne, withExtractedItem(_m))
	return &ExtractedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedItemClient) UpdateOneID(id uuid.UUID) *ExtractedItemUpdateOne {
	mutation := newExtractedItemMutation(c.config, OpUpdateOne, withExtractedItemID(id))
	return &ExtractedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedItem.
func (c *ExtractedItemClient) Delete() *ExtractedItemDelete {
	mutation := newExtractedItemMutation(c.config, OpDelete)
	return &ExtractedItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedItemClient) DeleteOne(_m *ExtractedItem) *ExtractedItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedItemClient) DeleteOneID(id uuid.UUID) *ExtractedItemDeleteOne {
	builder := c.Delete().Where(extracteditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedItemDeleteOne{builder}
}

// Query returns a query builder for ExtractedItem.
func (c *ExtractedItemClient) Query() *ExtractedItemQuery {
	return &ExtractedItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedItem entity by its id.
func (c *ExtractedItemClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedItem, error) {
	return c.Query().Where(extracteditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedItemClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPass queries the pass edge of a ExtractedItem.
func (c *ExtractedItemClient) QueryPass(_m *ExtractedItem) *ExtractionPassQuery {
	query := (&ExtractionPassClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extracteditem.Table, extracteditem.FieldID, id),
			sqlgraph.To(extractionpass.Table, extractionpass.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extracteditem.PassTable, extracteditem.PassColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedItemClient) Hooks() []Hook {
	return c.hooks.ExtractedItem
}

// Interceptors returns the client interceptors.
func (c *ExtractedItemClient) Interceptors() []Interceptor {
	return c.inters.ExtractedItem
}

func (c *ExtractedItemClient) mutate(ctx context.Context, m *ExtractedItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedItem mutation op: %q", m.Op())
	}
}

// ExtractionPassClient is a client for the ExtractionPass schema.
type ExtractionPassClient struct {
	config
}

// NewExtractionPassClient returns a client for the ExtractionPass from the given config.
func NewExtractionPassClient(c config) *ExtractionPassClient {
	return &ExtractionPassClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionpass.Hooks(f(g(h())))`.
func (c *ExtractionPassClient) Use(hooks ...Hook) {
	c.hooks.ExtractionPass = append(c.hooks.ExtractionPass, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionpass.Intercept(f(g(h())))`.
func (c *ExtractionPassClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionPass = append(c.inters.ExtractionPass, interceptors...)
}

// Create returns a builder for creating a ExtractionPass entity.
func (c *ExtractionPassClient) Create() *ExtractionPassCreate {
	mutation := newExtractionPassMutation(c.config, OpCreate)
	return &ExtractionPassCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionPass entities.
func (c *ExtractionPassClient) CreateBulk(builders ...*ExtractionPassCreate) *ExtractionPassCreateBulk {
	return &ExtractionPassCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionPassClient) MapCreateBulk(slice any, setFunc func(*ExtractionPassCreate, int)) *ExtractionPassCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionPassCreateBulk{err: fmt.Errorf("calling to ExtractionPassClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionPassCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionPassCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionPass.
func (c *ExtractionPassClient) Update() *ExtractionPassUpdate {
	mutation := newExtractionPassMutation(c.config, OpUpdate)
	return &ExtractionPassUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionPassClient) UpdateOne(_m *ExtractionPass) *ExtractionPassUpdateOne {
	mutation := newExtractionPassMutation(c.config, OpUpdateOne, withExtractionPass(_m))
	return &ExtractionPassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionPassClient) UpdateOneID(id uuid.UUID) *ExtractionPassUpdateOne {
	mutation := newExtractionPassMutation(c.config, OpUpdateOne, withExtractionPassID(id))
	return &ExtractionPassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionPass.
func (c *ExtractionPassClient) Delete() *ExtractionPassDelete {
	mutation := newExtractionPassMutation(c.config, OpDelete)
	return &ExtractionPassDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionPassClient) DeleteOne(_m *ExtractionPass) *ExtractionPassDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionPassClient) DeleteOneID(id uuid.UUID) *ExtractionPassDeleteOne {
	builder := c.Delete().Where(extractionpass.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionPassDeleteOne{builder}
}

// Query returns a query builder for ExtractionPass.
func (c *ExtractionPassClient) Query() *ExtractionPassQuery {
	return &ExtractionPassQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionPass},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionPass entity by its id.
func (c *ExtractionPassClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionPass, error) {
	return c.Query().Where(extractionpass.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionPassClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionPass {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ExtractionPass.
func (c *ExtractionPassClient) QueryDocument(_m *ExtractionPass) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionpass.Table, extractionpass.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionpass.DocumentTable, extractionpass.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a ExtractionPass.
func (c *ExtractionPassClient) QueryItems(_m *ExtractionPass) *ExtractedItemQuery {
	query := (&ExtractedItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionpass.Table, extractionpass.FieldID, id),
			sqlgraph.To(extracteditem.Table, extracteditem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionpass.ItemsTable, extractionpass.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionPassClient) Hooks() []Hook {
	return c.hooks.ExtractionPass
}

// Interceptors returns the client interceptors.
func (c *ExtractionPassClient) Interceptors() []Interceptor {
	return c.inters.ExtractionPass
}

func (c *ExtractionPassClient) mutate(ctx context.Context, m *ExtractionPassMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionPassCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionPassUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionPassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionPassDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionPass mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ConsolidatedItem, Document, ExtractedItem, ExtractionPass []ent.Hook
	}
	inters struct {
		ConsolidatedItem, Document, ExtractedItem, ExtractionPass []ent.Interceptor
	}
)
