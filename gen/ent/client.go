// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/seyi-ajayi/examscan/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedpassage"
	"github.com/seyi-ajayi/examscan/gen/ent/extractedquestion"
	"github.com/seyi-ajayi/examscan/gen/ent/extractionjob"
	"github.com/seyi-ajayi/examscan/gen/ent/jobpage"
	"github.com/seyi-ajayi/examscan/gen/ent/passage"
	"github.com/seyi-ajayi/examscan/gen/ent/question"
	"github.com/seyi-ajayi/examscan/gen/ent/test"
	"github.com/seyi-ajayi/examscan/gen/ent/testmodule"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractedPassage is the client for interacting with the ExtractedPassage builders.
	ExtractedPassage *ExtractedPassageClient
	// ExtractedQuestion is the client for interacting with the ExtractedQuestion builders.
	ExtractedQuestion *ExtractedQuestionClient
	// ExtractionJob is the client for interacting with the ExtractionJob builders.
	ExtractionJob *ExtractionJobClient
	// JobPage is the client for interacting with the JobPage builders.
	JobPage *JobPageClient
	// Passage is the client for interacting with the Passage builders.
	Passage *PassageClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// Test is the client for interacting with the Test builders.
	Test *TestClient
	// TestModule is the client for interacting with the TestModule builders.
	TestModule *TestModuleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractedPassage = NewExtractedPassageClient(c.config)
	c.ExtractedQuestion = NewExtractedQuestionClient(c.config)
	c.ExtractionJob = NewExtractionJobClient(c.config)
	c.JobPage = NewJobPageClient(c.config)
	c.Passage = NewPassageClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.Test = NewTestClient(c.config)
	c.TestModule = NewTestModuleClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ExtractedPassage:  NewExtractedPassageClient(cfg),
		ExtractedQuestion: NewExtractedQuestionClient(cfg),
		ExtractionJob:     NewExtractionJobClient(cfg),
		JobPage:           NewJobPageClient(cfg),
		Passage:           NewPassageClient(cfg),
		Question:          NewQuestionClient(cfg),
		Test:              NewTestClient(cfg),
		TestModule:        NewTestModuleClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ExtractedPassage:  NewExtractedPassageClient(cfg),
		ExtractedQuestion: NewExtractedQuestionClient(cfg),
		ExtractionJob:     NewExtractionJobClient(cfg),
		JobPage:           NewJobPageClient(cfg),
		Passage:           NewPassageClient(cfg),
		Question:          NewQuestionClient(cfg),
		Test:              NewTestClient(cfg),
		TestModule:        NewTestModuleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractedPassage.
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
		c.ExtractedPassage, c.ExtractedQuestion, c.ExtractionJob, c.JobPage, c.Passage,
		c.Question, c.Test, c.TestModule,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ExtractedPassage, c.ExtractedQuestion, c.ExtractionJob, c.JobPage, c.Passage,
		c.Question, c.Test, c.TestModule,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractedPassageMutation:
		return c.ExtractedPassage.mutate(ctx, m)
	case *ExtractedQuestionMutation:
		return c.ExtractedQuestion.mutate(ctx, m)
	case *ExtractionJobMutation:
		return c.ExtractionJob.mutate(ctx, m)
	case *JobPageMutation:
		return c.JobPage.mutate(ctx, m)
	case *PassageMutation:
		return c.Passage.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *TestMutation:
		return c.Test.mutate(ctx, m)
	case *TestModuleMutation:
		return c.TestModule.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractedPassageClient is a client for the ExtractedPassage schema.
type ExtractedPassageClient struct {
	config
}

// NewExtractedPassageClient returns a client for the ExtractedPassage from the given config.
func NewExtractedPassageClient(c config) *ExtractedPassageClient {
	return &ExtractedPassageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedpassage.Hooks(f(g(h())))`.
func (c *ExtractedPassageClient) Use(hooks ...Hook) {
	c.hooks.ExtractedPassage = append(c.hooks.ExtractedPassage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedpassage.Intercept(f(g(h())))`.
func (c *ExtractedPassageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedPassage = append(c.inters.ExtractedPassage, interceptors...)
}

// Create returns a builder for creating a ExtractedPassage entity.
func (c *ExtractedPassageClient) Create() *ExtractedPassageCreate {
	mutation := newExtractedPassageMutation(c.config, OpCreate)
	return &ExtractedPassageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedPassage entities.
func (c *ExtractedPassageClient) CreateBulk(builders ...*ExtractedPassageCreate) *ExtractedPassageCreateBulk {
	return &ExtractedPassageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedPassageClient) MapCreateBulk(slice any, setFunc func(*ExtractedPassageCreate, int)) *ExtractedPassageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedPassageCreateBulk{err: fmt.Errorf("calling to ExtractedPassageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedPassageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedPassageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedPassage.
func (c *ExtractedPassageClient) Update() *ExtractedPassageUpdate {
	mutation := newExtractedPassageMutation(c.config, OpUpdate)
	return &ExtractedPassageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedPassageClient) UpdateOne(_m *ExtractedPassage) *ExtractedPassageUpdateOne {
	mutation := newExtractedPassageMutation(c.config, OpUpdateOne, withExtractedPassage(_m))
	return &ExtractedPassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedPassageClient) UpdateOneID(id uuid.UUID) *ExtractedPassageUpdateOne {
	mutation := newExtractedPassageMutation(c.config, OpUpdateOne, withExtractedPassageID(id))
	return &ExtractedPassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedPassage.
func (c *ExtractedPassageClient) Delete() *ExtractedPassageDelete {
	mutation := newExtractedPassageMutation(c.config, OpDelete)
	return &ExtractedPassageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedPassageClient) DeleteOne(_m *ExtractedPassage) *ExtractedPassageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedPassageClient) DeleteOneID(id uuid.UUID) *ExtractedPassageDeleteOne {
	builder := c.Delete().Where(extractedpassage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedPassageDeleteOne{builder}
}

// Query returns a query builder for ExtractedPassage.
func (c *ExtractedPassageClient) Query() *ExtractedPassageQuery {
	return &ExtractedPassageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedPassage},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedPassage entity by its id.
func (c *ExtractedPassageClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedPassage, error) {
	return c.Query().Where(extractedpassage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedPassageClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedPassage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ExtractedPassage.
func (c *ExtractedPassageClient) QueryJob(_m *ExtractedPassage) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedpassage.Table, extractedpassage.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedpassage.JobTable, extractedpassage.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPage queries the page edge of a ExtractedPassage.
func (c *ExtractedPassageClient) QueryPage(_m *ExtractedPassage) *JobPageQuery {
	query := (&JobPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedpassage.Table, extractedpassage.FieldID, id),
			sqlgraph.To(jobpage.Table, jobpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedpassage.PageTable, extractedpassage.PageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a ExtractedPassage.
func (c *ExtractedPassageClient) QueryQuestions(_m *ExtractedPassage) *ExtractedQuestionQuery {
	query := (&ExtractedQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedpassage.Table, extractedpassage.FieldID, id),
			sqlgraph.To(extractedquestion.Table, extractedquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractedpassage.QuestionsTable, extractedpassage.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedPassageClient) Hooks() []Hook {
	return c.hooks.ExtractedPassage
}

// Interceptors returns the client interceptors.
func (c *ExtractedPassageClient) Interceptors() []Interceptor {
	return c.inters.ExtractedPassage
}

func (c *ExtractedPassageClient) mutate(ctx context.Context, m *ExtractedPassageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedPassageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedPassageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedPassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedPassageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedPassage mutation op: %q", m.Op())
	}
}

// ExtractedQuestionClient is a client for the ExtractedQuestion schema.
type ExtractedQuestionClient struct {
	config
}

// NewExtractedQuestionClient returns a client for the ExtractedQuestion from the given config.
func NewExtractedQuestionClient(c config) *ExtractedQuestionClient {
	return &ExtractedQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedquestion.Hooks(f(g(h())))`.
func (c *ExtractedQuestionClient) Use(hooks ...Hook) {
	c.hooks.ExtractedQuestion = append(c.hooks.ExtractedQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedquestion.Intercept(f(g(h())))`.
func (c *ExtractedQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedQuestion = append(c.inters.ExtractedQuestion, interceptors...)
}

// Create returns a builder for creating a ExtractedQuestion entity.
func (c *ExtractedQuestionClient) Create() *ExtractedQuestionCreate {
	mutation := newExtractedQuestionMutation(c.config, OpCreate)
	return &ExtractedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedQuestion entities.
func (c *ExtractedQuestionClient) CreateBulk(builders ...*ExtractedQuestionCreate) *ExtractedQuestionCreateBulk {
	return &ExtractedQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedQuestionClient) MapCreateBulk(slice any, setFunc func(*ExtractedQuestionCreate, int)) *ExtractedQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedQuestionCreateBulk{err: fmt.Errorf("calling to ExtractedQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedQuestion.
func (c *ExtractedQuestionClient) Update() *ExtractedQuestionUpdate {
	mutation := newExtractedQuestionMutation(c.config, OpUpdate)
	return &ExtractedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedQuestionClient) UpdateOne(_m *ExtractedQuestion) *ExtractedQuestionUpdateOne {
	mutation := newExtractedQuestionMutation(c.config, OpUpdateOne, withExtractedQuestion(_m))
	return &ExtractedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedQuestionClient) UpdateOneID(id uuid.UUID) *ExtractedQuestionUpdateOne {
	mutation := newExtractedQuestionMutation(c.config, OpUpdateOne, withExtractedQuestionID(id))
	return &ExtractedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedQuestion.
func (c *ExtractedQuestionClient) Delete() *ExtractedQuestionDelete {
	mutation := newExtractedQuestionMutation(c.config, OpDelete)
	return &ExtractedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedQuestionClient) DeleteOne(_m *ExtractedQuestion) *ExtractedQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedQuestionClient) DeleteOneID(id uuid.UUID) *ExtractedQuestionDeleteOne {
	builder := c.Delete().Where(extractedquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedQuestionDeleteOne{builder}
}

// Query returns a query builder for ExtractedQuestion.
func (c *ExtractedQuestionClient) Query() *ExtractedQuestionQuery {
	return &ExtractedQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedQuestion entity by its id.
func (c *ExtractedQuestionClient) Get(ctx context.Context, id uuid.UUID) (*ExtractedQuestion, error) {
	return c.Query().Where(extractedquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedQuestionClient) GetX(ctx context.Context, id uuid.UUID) *ExtractedQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ExtractedQuestion.
func (c *ExtractedQuestionClient) QueryJob(_m *ExtractedQuestion) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedquestion.Table, extractedquestion.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedquestion.JobTable, extractedquestion.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPage queries the page edge of a ExtractedQuestion.
func (c *ExtractedQuestionClient) QueryPage(_m *ExtractedQuestion) *JobPageQuery {
	query := (&JobPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedquestion.Table, extractedquestion.FieldID, id),
			sqlgraph.To(jobpage.Table, jobpage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedquestion.PageTable, extractedquestion.PageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPassage queries the passage edge of a ExtractedQuestion.
func (c *ExtractedQuestionClient) QueryPassage(_m *ExtractedQuestion) *ExtractedPassageQuery {
	query := (&ExtractedPassageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedquestion.Table, extractedquestion.FieldID, id),
			sqlgraph.To(extractedpassage.Table, extractedpassage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedquestion.PassageTable, extractedquestion.PassageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedQuestionClient) Hooks() []Hook {
	return c.hooks.ExtractedQuestion
}

// Interceptors returns the client interceptors.
func (c *ExtractedQuestionClient) Interceptors() []Interceptor {
	return c.inters.ExtractedQuestion
}

func (c *ExtractedQuestionClient) mutate(ctx context.Context, m *ExtractedQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedQuestion mutation op: %q", m.Op())
	}
}

// ExtractionJobClient is a client for the ExtractionJob schema.
type ExtractionJobClient struct {
	config
}

// NewExtractionJobClient returns a client for the ExtractionJob from the given config.
func NewExtractionJobClient(c config) *ExtractionJobClient {
	return &ExtractionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionjob.Hooks(f(g(h())))`.
func (c *ExtractionJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractionJob = append(c.hooks.ExtractionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionjob.Intercept(f(g(h())))`.
func (c *ExtractionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionJob = append(c.inters.ExtractionJob, interceptors...)
}

// Create returns a builder for creating a ExtractionJob entity.
func (c *ExtractionJobClient) Create() *ExtractionJobCreate {
	mutation := newExtractionJobMutation(c.config, OpCreate)
	return &ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionJob entities.
func (c *ExtractionJobClient) CreateBulk(builders ...*ExtractionJobCreate) *ExtractionJobCreateBulk {
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionJobClient) MapCreateBulk(slice any, setFunc func(*ExtractionJobCreate, int)) *ExtractionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionJobCreateBulk{err: fmt.Errorf("calling to ExtractionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionJob.
func (c *ExtractionJobClient) Update() *ExtractionJobUpdate {
	mutation := newExtractionJobMutation(c.config, OpUpdate)
	return &ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionJobClient) UpdateOne(_m *ExtractionJob) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJob(_m))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionJobClient) UpdateOneID(id uuid.UUID) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJobID(id))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionJob.
func (c *ExtractionJobClient) Delete() *ExtractionJobDelete {
	mutation := newExtractionJobMutation(c.config, OpDelete)
	return &ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionJobClient) DeleteOne(_m *ExtractionJob) *ExtractionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionJobClient) DeleteOneID(id uuid.UUID) *ExtractionJobDeleteOne {
	builder := c.Delete().Where(extractionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionJobDeleteOne{builder}
}

// Query returns a query builder for ExtractionJob.
func (c *ExtractionJobClient) Query() *ExtractionJobQuery {
	return &ExtractionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionJob entity by its id.
func (c *ExtractionJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionJob, error) {
	return c.Query().Where(extractionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPages queries the pages edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryPages(_m *ExtractionJob) *JobPageQuery {
	query := (&JobPageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(jobpage.Table, jobpage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionjob.PagesTable, extractionjob.PagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryQuestions(_m *ExtractionJob) *ExtractedQuestionQuery {
	query := (&ExtractedQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(extractedquestion.Table, extractedquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionjob.QuestionsTable, extractionjob.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPassages queries the passages edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryPassages(_m *ExtractionJob) *ExtractedPassageQuery {
	query := (&ExtractedPassageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(extractedpassage.Table, extractedpassage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionjob.PassagesTable, extractionjob.PassagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionJobClient) Hooks() []Hook {
	return c.hooks.ExtractionJob
}

// Interceptors returns the client interceptors.
func (c *ExtractionJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractionJob
}

func (c *ExtractionJobClient) mutate(ctx context.Context, m *ExtractionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionJob mutation op: %q", m.Op())
	}
}

// JobPageClient is a client for the JobPage schema.
type JobPageClient struct {
	config
}

// NewJobPageClient returns a client for the JobPage from the given config.
func NewJobPageClient(c config) *JobPageClient {
	return &JobPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobpage.Hooks(f(g(h())))`.
func (c *JobPageClient) Use(hooks ...Hook) {
	c.hooks.JobPage = append(c.hooks.JobPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobpage.Intercept(f(g(h())))`.
func (c *JobPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobPage = append(c.inters.JobPage, interceptors...)
}

// Create returns a builder for creating a JobPage entity.
func (c *JobPageClient) Create() *JobPageCreate {
	mutation := newJobPageMutation(c.config, OpCreate)
	return &JobPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobPage entities.
func (c *JobPageClient) CreateBulk(builders ...*JobPageCreate) *JobPageCreateBulk {
	return &JobPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobPageClient) MapCreateBulk(slice any, setFunc func(*JobPageCreate, int)) *JobPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobPageCreateBulk{err: fmt.Errorf("calling to JobPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobPage.
func (c *JobPageClient) Update() *JobPageUpdate {
	mutation := newJobPageMutation(c.config, OpUpdate)
	return &JobPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobPageClient) UpdateOne(_m *JobPage) *JobPageUpdateOne {
	mutation := newJobPageMutation(c.config, OpUpdateOne, withJobPage(_m))
	return &JobPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobPageClient) UpdateOneID(id uuid.UUID) *JobPageUpdateOne {
	mutation := newJobPageMutation(c.config, OpUpdateOne, withJobPageID(id))
	return &JobPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobPage.
func (c *JobPageClient) Delete() *JobPageDelete {
	mutation := newJobPageMutation(c.config, OpDelete)
	return &JobPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobPageClient) DeleteOne(_m *JobPage) *JobPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobPageClient) DeleteOneID(id uuid.UUID) *JobPageDeleteOne {
	builder := c.Delete().Where(jobpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobPageDeleteOne{builder}
}

// Query returns a query builder for JobPage.
func (c *JobPageClient) Query() *JobPageQuery {
	return &JobPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobPage},
		inters: c.Interceptors(),
	}
}

// Get returns a JobPage entity by its id.
func (c *JobPageClient) Get(ctx context.Context, id uuid.UUID) (*JobPage, error) {
	return c.Query().Where(jobpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobPageClient) GetX(ctx context.Context, id uuid.UUID) *JobPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobPage.
func (c *JobPageClient) QueryJob(_m *JobPage) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobpage.Table, jobpage.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobpage.JobTable, jobpage.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a JobPage.
func (c *JobPageClient) QueryQuestions(_m *JobPage) *ExtractedQuestionQuery {
	query := (&ExtractedQuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobpage.Table, jobpage.FieldID, id),
			sqlgraph.To(extractedquestion.Table, extractedquestion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobpage.QuestionsTable, jobpage.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPassages queries the passages edge of a JobPage.
func (c *JobPageClient) QueryPassages(_m *JobPage) *ExtractedPassageQuery {
	query := (&ExtractedPassageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobpage.Table, jobpage.FieldID, id),
			sqlgraph.To(extractedpassage.Table, extractedpassage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, jobpage.PassagesTable, jobpage.PassagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobPageClient) Hooks() []Hook {
	return c.hooks.JobPage
}

// Interceptors returns the client interceptors.
func (c *JobPageClient) Interceptors() []Interceptor {
	return c.inters.JobPage
}

func (c *JobPageClient) mutate(ctx context.Context, m *JobPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobPage mutation op: %q", m.Op())
	}
}

// PassageClient is a client for the Passage schema.
type PassageClient struct {
	config
}

// NewPassageClient returns a client for the Passage from the given config.
func NewPassageClient(c config) *PassageClient {
	return &PassageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `passage.Hooks(f(g(h())))`.
func (c *PassageClient) Use(hooks ...Hook) {
	c.hooks.Passage = append(c.hooks.Passage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `passage.Intercept(f(g(h())))`.
func (c *PassageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Passage = append(c.inters.Passage, interceptors...)
}

// Create returns a builder for creating a Passage entity.
func (c *PassageClient) Create() *PassageCreate {
	mutation := newPassageMutation(c.config, OpCreate)
	return &PassageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Passage entities.
func (c *PassageClient) CreateBulk(builders ...*PassageCreate) *PassageCreateBulk {
	return &PassageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PassageClient) MapCreateBulk(slice any, setFunc func(*PassageCreate, int)) *PassageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PassageCreateBulk{err: fmt.Errorf("calling to PassageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PassageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PassageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Passage.
func (c *PassageClient) Update() *PassageUpdate {
	mutation := newPassageMutation(c.config, OpUpdate)
	return &PassageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PassageClient) UpdateOne(_m *Passage) *PassageUpdateOne {
	mutation := newPassageMutation(c.config, OpUpdateOne, withPassage(_m))
	return &PassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PassageClient) UpdateOneID(id uuid.UUID) *PassageUpdateOne {
	mutation := newPassageMutation(c.config, OpUpdateOne, withPassageID(id))
	return &PassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Passage.
func (c *PassageClient) Delete() *PassageDelete {
	mutation := newPassageMutation(c.config, OpDelete)
	return &PassageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PassageClient) DeleteOne(_m *Passage) *PassageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PassageClient) DeleteOneID(id uuid.UUID) *PassageDeleteOne {
	builder := c.Delete().Where(passage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PassageDeleteOne{builder}
}

// Query returns a query builder for Passage.
func (c *PassageClient) Query() *PassageQuery {
	return &PassageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePassage},
		inters: c.Interceptors(),
	}
}

// Get returns a Passage entity by its id.
func (c *PassageClient) Get(ctx context.Context, id uuid.UUID) (*Passage, error) {
	return c.Query().Where(passage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PassageClient) GetX(ctx context.Context, id uuid.UUID) *Passage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryQuestions queries the questions edge of a Passage.
func (c *PassageClient) QueryQuestions(_m *Passage) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(passage.Table, passage.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, passage.QuestionsTable, passage.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PassageClient) Hooks() []Hook {
	return c.hooks.Passage
}

// Interceptors returns the client interceptors.
func (c *PassageClient) Interceptors() []Interceptor {
	return c.inters.Passage
}

func (c *PassageClient) mutate(ctx context.Context, m *PassageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PassageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PassageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PassageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PassageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Passage mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id uuid.UUID) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id uuid.UUID) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id uuid.UUID) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id uuid.UUID) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryModule queries the module edge of a Question.
func (c *QuestionClient) QueryModule(_m *Question) *TestModuleQuery {
	query := (&TestModuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(testmodule.Table, testmodule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, question.ModuleTable, question.ModuleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPassage queries the passage edge of a Question.
func (c *QuestionClient) QueryPassage(_m *Question) *PassageQuery {
	query := (&PassageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(passage.Table, passage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, question.PassageTable, question.PassageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
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
func (c *TestClient) UpdateOneID(id uuid.UUID) *TestUpdateOne {
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
func (c *TestClient) DeleteOneID(id uuid.UUID) *TestDeleteOne {
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
func (c *TestClient) Get(ctx context.Context, id uuid.UUID) (*Test, error) {
	return c.Query().Where(test.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestClient) GetX(ctx context.Context, id uuid.UUID) *Test {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryModules queries the modules edge of a Test.
func (c *TestClient) QueryModules(_m *Test) *TestModuleQuery {
	query := (&TestModuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(test.Table, test.FieldID, id),
			sqlgraph.To(testmodule.Table, testmodule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, test.ModulesTable, test.ModulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// TestModuleClient is a client for the TestModule schema.
type TestModuleClient struct {
	config
}

// NewTestModuleClient returns a client for the TestModule from the given config.
func NewTestModuleClient(c config) *TestModuleClient {
	return &TestModuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testmodule.Hooks(f(g(h())))`.
func (c *TestModuleClient) Use(hooks ...Hook) {
	c.hooks.TestModule = append(c.hooks.TestModule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testmodule.Intercept(f(g(h())))`.
func (c *TestModuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestModule = append(c.inters.TestModule, interceptors...)
}

// Create returns a builder for creating a TestModule entity.
func (c *TestModuleClient) Create() *TestModuleCreate {
	mutation := newTestModuleMutation(c.config, OpCreate)
	return &TestModuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestModule entities.
func (c *TestModuleClient) CreateBulk(builders ...*TestModuleCreate) *TestModuleCreateBulk {
	return &TestModuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestModuleClient) MapCreateBulk(slice any, setFunc func(*TestModuleCreate, int)) *TestModuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestModuleCreateBulk{err: fmt.Errorf("calling to TestModuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestModuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestModuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestModule.
func (c *TestModuleClient) Update() *TestModuleUpdate {
	mutation := newTestModuleMutation(c.config, OpUpdate)
	return &TestModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestModuleClient) UpdateOne(_m *TestModule) *TestModuleUpdateOne {
	mutation := newTestModuleMutation(c.config, OpUpdateOne, withTestModule(_m))
	return &TestModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestModuleClient) UpdateOneID(id uuid.UUID) *TestModuleUpdateOne {
	mutation := newTestModuleMutation(c.config, OpUpdateOne, withTestModuleID(id))
	return &TestModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestModule.
func (c *TestModuleClient) Delete() *TestModuleDelete {
	mutation := newTestModuleMutation(c.config, OpDelete)
	return &TestModuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestModuleClient) DeleteOne(_m *TestModule) *TestModuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestModuleClient) DeleteOneID(id uuid.UUID) *TestModuleDeleteOne {
	builder := c.Delete().Where(testmodule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestModuleDeleteOne{builder}
}

// Query returns a query builder for TestModule.
func (c *TestModuleClient) Query() *TestModuleQuery {
	return &TestModuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestModule},
		inters: c.Interceptors(),
	}
}

// Get returns a TestModule entity by its id.
func (c *TestModuleClient) Get(ctx context.Context, id uuid.UUID) (*TestModule, error) {
	return c.Query().Where(testmodule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestModuleClient) GetX(ctx context.Context, id uuid.UUID) *TestModule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTest queries the test edge of a TestModule.
func (c *TestModuleClient) QueryTest(_m *TestModule) *TestQuery {
	query := (&TestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testmodule.Table, testmodule.FieldID, id),
			sqlgraph.To(test.Table, test.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, testmodule.TestTable, testmodule.TestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a TestModule.
func (c *TestModuleClient) QueryQuestions(_m *TestModule) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testmodule.Table, testmodule.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, testmodule.QuestionsTable, testmodule.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TestModuleClient) Hooks() []Hook {
	return c.hooks.TestModule
}

// Interceptors returns the client interceptors.
func (c *TestModuleClient) Interceptors() []Interceptor {
	return c.inters.TestModule
}

func (c *TestModuleClient) mutate(ctx context.Context, m *TestModuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestModuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestModuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestModuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestModuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestModule mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractedPassage, ExtractedQuestion, ExtractionJob, JobPage, Passage, Question,
		Test, TestModule []ent.Hook
	}
	inters struct {
		ExtractedPassage, ExtractedQuestion, ExtractionJob, JobPage, Passage, Question,
		Test, TestModule []ent.Interceptor
	}
)
