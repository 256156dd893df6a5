// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/jordanlanch/affiliatedb/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/affiliatedb/ent/affiliate"
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/auditlog"
	"github.com/jordanlanch/affiliatedb/ent/order"
	"github.com/jordanlanch/affiliatedb/ent/orderitem"
	"github.com/jordanlanch/affiliatedb/ent/product"
	"github.com/jordanlanch/affiliatedb/ent/productcommission"
	"github.com/jordanlanch/affiliatedb/ent/sale"
	"github.com/jordanlanch/affiliatedb/ent/user"
	"github.com/jordanlanch/affiliatedb/ent/withdrawalrequest"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Affiliate is the client for interacting with the Affiliate builders.
	Affiliate *AffiliateClient
	// AffiliateBalance is the client for interacting with the AffiliateBalance builders.
	AffiliateBalance *AffiliateBalanceClient
	// AffiliateTransaction is the client for interacting with the AffiliateTransaction builders.
	AffiliateTransaction *AffiliateTransactionClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// OrderItem is the client for interacting with the OrderItem builders.
	OrderItem *OrderItemClient
	// Product is the client for interacting with the Product builders.
	Product *ProductClient
	// ProductCommission is the client for interacting with the ProductCommission builders.
	ProductCommission *ProductCommissionClient
	// Sale is the client for interacting with the Sale builders.
	Sale *SaleClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WithdrawalRequest is the client for interacting with the WithdrawalRequest builders.
	WithdrawalRequest *WithdrawalRequestClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Affiliate = NewAffiliateClient(c.config)
	c.AffiliateBalance = NewAffiliateBalanceClient(c.config)
	c.AffiliateTransaction = NewAffiliateTransactionClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.OrderItem = NewOrderItemClient(c.config)
	c.Product = NewProductClient(c.config)
	c.ProductCommission = NewProductCommissionClient(c.config)
	c.Sale = NewSaleClient(c.config)
	c.User = NewUserClient(c.config)
	c.WithdrawalRequest = NewWithdrawalRequestClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Affiliate:            NewAffiliateClient(cfg),
		AffiliateBalance:     NewAffiliateBalanceClient(cfg),
		AffiliateTransaction: NewAffiliateTransactionClient(cfg),
		AuditLog:             NewAuditLogClient(cfg),
		Order:                NewOrderClient(cfg),
		OrderItem:            NewOrderItemClient(cfg),
		Product:              NewProductClient(cfg),
		ProductCommission:    NewProductCommissionClient(cfg),
		Sale:                 NewSaleClient(cfg),
		User:                 NewUserClient(cfg),
		WithdrawalRequest:    NewWithdrawalRequestClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Affiliate:            NewAffiliateClient(cfg),
		AffiliateBalance:     NewAffiliateBalanceClient(cfg),
		AffiliateTransaction: NewAffiliateTransactionClient(cfg),
		AuditLog:             NewAuditLogClient(cfg),
		Order:                NewOrderClient(cfg),
		OrderItem:            NewOrderItemClient(cfg),
		Product:              NewProductClient(cfg),
		ProductCommission:    NewProductCommissionClient(cfg),
		Sale:                 NewSaleClient(cfg),
		User:                 NewUserClient(cfg),
		WithdrawalRequest:    NewWithdrawalRequestClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Affiliate.
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
		c.Affiliate, c.AffiliateBalance, c.AffiliateTransaction, c.AuditLog, c.Order,
		c.OrderItem, c.Product, c.ProductCommission, c.Sale, c.User,
		c.WithdrawalRequest,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Affiliate, c.AffiliateBalance, c.AffiliateTransaction, c.AuditLog, c.Order,
		c.OrderItem, c.Product, c.ProductCommission, c.Sale, c.User,
		c.WithdrawalRequest,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AffiliateMutation:
		return c.Affiliate.mutate(ctx, m)
	case *AffiliateBalanceMutation:
		return c.AffiliateBalance.mutate(ctx, m)
	case *AffiliateTransactionMutation:
		return c.AffiliateTransaction.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *OrderItemMutation:
		return c.OrderItem.mutate(ctx, m)
	case *ProductMutation:
		return c.Product.mutate(ctx, m)
	case *ProductCommissionMutation:
		return c.ProductCommission.mutate(ctx, m)
	case *SaleMutation:
		return c.Sale.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WithdrawalRequestMutation:
		return c.WithdrawalRequest.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AffiliateClient is a client for the Affiliate schema.
type AffiliateClient struct {
	config
}

// NewAffiliateClient returns a client for the Affiliate from the given config.
func NewAffiliateClient(c config) *AffiliateClient {
	return &AffiliateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `affiliate.Hooks(f(g(h())))`.
func (c *AffiliateClient) Use(hooks ...Hook) {
	c.hooks.Affiliate = append(c.hooks.Affiliate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `affiliate.Intercept(f(g(h())))`.
func (c *AffiliateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Affiliate = append(c.inters.Affiliate, interceptors...)
}

// Create returns a builder for creating a Affiliate entity.
func (c *AffiliateClient) Create() *AffiliateCreate {
	mutation := newAffiliateMutation(c.config, OpCreate)
	return &AffiliateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Affiliate entities.
func (c *AffiliateClient) CreateBulk(builders ...*AffiliateCreate) *AffiliateCreateBulk {
	return &AffiliateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AffiliateClient) MapCreateBulk(slice any, setFunc func(*AffiliateCreate, int)) *AffiliateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AffiliateCreateBulk{err: fmt.Errorf("calling to AffiliateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AffiliateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AffiliateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Affiliate.
func (c *AffiliateClient) Update() *AffiliateUpdate {
	mutation := newAffiliateMutation(c.config, OpUpdate)
	return &AffiliateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AffiliateClient) UpdateOne(a *Affiliate) *AffiliateUpdateOne {
	mutation := newAffiliateMutation(c.config, OpUpdateOne, withAffiliate(a))
	return &AffiliateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AffiliateClient) UpdateOneID(id int) *AffiliateUpdateOne {
	mutation := newAffiliateMutation(c.config, OpUpdateOne, withAffiliateID(id))
	return &AffiliateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Affiliate.
func (c *AffiliateClient) Delete() *AffiliateDelete {
	mutation := newAffiliateMutation(c.config, OpDelete)
	return &AffiliateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AffiliateClient) DeleteOne(a *Affiliate) *AffiliateDeleteOne {
	return c.DeleteOneID(a.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AffiliateClient) DeleteOneID(id int) *AffiliateDeleteOne {
	builder := c.Delete().Where(affiliate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AffiliateDeleteOne{builder}
}

// Query returns a query builder for Affiliate.
func (c *AffiliateClient) Query() *AffiliateQuery {
	return &AffiliateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAffiliate},
		inters: c.Interceptors(),
	}
}

// Get returns a Affiliate entity by its id.
func (c *AffiliateClient) Get(ctx context.Context, id int) (*Affiliate, error) {
	return c.Query().Where(affiliate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AffiliateClient) GetX(ctx context.Context, id int) *Affiliate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AffiliateClient) Hooks() []Hook {
	return c.hooks.Affiliate
}

// Interceptors returns the client interceptors.
func (c *AffiliateClient) Interceptors() []Interceptor {
	return c.inters.Affiliate
}

func (c *AffiliateClient) mutate(ctx context.Context, m *AffiliateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AffiliateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AffiliateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AffiliateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AffiliateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Affiliate mutation op: %q", m.Op())
	}
}

// AffiliateBalanceClient is a client for the AffiliateBalance schema.
type AffiliateBalanceClient struct {
	config
}

// NewAffiliateBalanceClient returns a client for the AffiliateBalance from the given config.
func NewAffiliateBalanceClient(c config) *AffiliateBalanceClient {
	return &AffiliateBalanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `affiliatebalance.Hooks(f(g(h())))`.
func (c *AffiliateBalanceClient) Use(hooks ...Hook) {
	c.hooks.AffiliateBalance = append(c.hooks.AffiliateBalance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `affiliatebalance.Intercept(f(g(h())))`.
func (c *AffiliateBalanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AffiliateBalance = append(c.inters.AffiliateBalance, interceptors...)
}

// Create returns a builder for creating a AffiliateBalance entity.
func (c *AffiliateBalanceClient) Create() *AffiliateBalanceCreate {
	mutation := newAffiliateBalanceMutation(c.config, OpCreate)
	return &AffiliateBalanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AffiliateBalance entities.
func (c *AffiliateBalanceClient) CreateBulk(builders ...*AffiliateBalanceCreate) *AffiliateBalanceCreateBulk {
	return &AffiliateBalanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AffiliateBalanceClient) MapCreateBulk(slice any, setFunc func(*AffiliateBalanceCreate, int)) *AffiliateBalanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AffiliateBalanceCreateBulk{err: fmt.Errorf("calling to AffiliateBalanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AffiliateBalanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AffiliateBalanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AffiliateBalance.
func (c *AffiliateBalanceClient) Update() *AffiliateBalanceUpdate {
	mutation := newAffiliateBalanceMutation(c.config, OpUpdate)
	return &AffiliateBalanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AffiliateBalanceClient) UpdateOne(ab *AffiliateBalance) *AffiliateBalanceUpdateOne {
	mutation := newAffiliateBalanceMutation(c.config, OpUpdateOne, withAffiliateBalance(ab))
	return &AffiliateBalanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AffiliateBalanceClient) UpdateOneID(id int) *AffiliateBalanceUpdateOne {
	mutation := newAffiliateBalanceMutation(c.config, OpUpdateOne, withAffiliateBalanceID(id))
	return &AffiliateBalanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AffiliateBalance.
func (c *AffiliateBalanceClient) Delete() *AffiliateBalanceDelete {
	mutation := newAffiliateBalanceMutation(c.config, OpDelete)
	return &AffiliateBalanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AffiliateBalanceClient) DeleteOne(ab *AffiliateBalance) *AffiliateBalanceDeleteOne {
	return c.DeleteOneID(ab.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AffiliateBalanceClient) DeleteOneID(id int) *AffiliateBalanceDeleteOne {
	builder := c.Delete().Where(affiliatebalance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AffiliateBalanceDeleteOne{builder}
}

// Query returns a query builder for AffiliateBalance.
func (c *AffiliateBalanceClient) Query() *AffiliateBalanceQuery {
	return &AffiliateBalanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAffiliateBalance},
		inters: c.Interceptors(),
	}
}

// Get returns a AffiliateBalance entity by its id.
func (c *AffiliateBalanceClient) Get(ctx context.Context, id int) (*AffiliateBalance, error) {
	return c.Query().Where(affiliatebalance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AffiliateBalanceClient) GetX(ctx context.Context, id int) *AffiliateBalance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AffiliateBalanceClient) Hooks() []Hook {
	return c.hooks.AffiliateBalance
}

// Interceptors returns the client interceptors.
func (c *AffiliateBalanceClient) Interceptors() []Interceptor {
	return c.inters.AffiliateBalance
}

func (c *AffiliateBalanceClient) mutate(ctx context.Context, m *AffiliateBalanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AffiliateBalanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AffiliateBalanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AffiliateBalanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AffiliateBalanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AffiliateBalance mutation op: %q", m.Op())
	}
}

// AffiliateTransactionClient is a client for the AffiliateTransaction schema.
type AffiliateTransactionClient struct {
	config
}

// NewAffiliateTransactionClient returns a client for the AffiliateTransaction from the given config.
func NewAffiliateTransactionClient(c config) *AffiliateTransactionClient {
	return &AffiliateTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `affiliatetransaction.Hooks(f(g(h())))`.
func (c *AffiliateTransactionClient) Use(hooks ...Hook) {
	c.hooks.AffiliateTransaction = append(c.hooks.AffiliateTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `affiliatetransaction.Intercept(f(g(h())))`.
func (c *AffiliateTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AffiliateTransaction = append(c.inters.AffiliateTransaction, interceptors...)
}

// Create returns a builder for creating a AffiliateTransaction entity.
func (c *AffiliateTransactionClient) Create() *AffiliateTransactionCreate {
	mutation := newAffiliateTransactionMutation(c.config, OpCreate)
	return &AffiliateTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AffiliateTransaction entities.
func (c *AffiliateTransactionClient) CreateBulk(builders ...*AffiliateTransactionCreate) *AffiliateTransactionCreateBulk {
	return &AffiliateTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AffiliateTransactionClient) MapCreateBulk(slice any, setFunc func(*AffiliateTransactionCreate, int)) *AffiliateTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AffiliateTransactionCreateBulk{err: fmt.Errorf("calling to AffiliateTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AffiliateTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AffiliateTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AffiliateTransaction.
func (c *AffiliateTransactionClient) Update() *AffiliateTransactionUpdate {
	mutation := newAffiliateTransactionMutation(c.config, OpUpdate)
	return &AffiliateTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AffiliateTransactionClient) UpdateOne(at *AffiliateTransaction) *AffiliateTransactionUpdateOne {
	mutation := newAffiliateTransactionMutation(c.config, OpUpdateOne, withAffiliateTransaction(at))
	return &AffiliateTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AffiliateTransactionClient) UpdateOneID(id int) *AffiliateTransactionUpdateOne {
	mutation := newAffiliateTransactionMutation(c.config, OpUpdateOne, withAffiliateTransactionID(id))
	return &AffiliateTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AffiliateTransaction.
func (c *AffiliateTransactionClient) Delete() *AffiliateTransactionDelete {
	mutation := newAffiliateTransactionMutation(c.config, OpDelete)
	return &AffiliateTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AffiliateTransactionClient) DeleteOne(at *AffiliateTransaction) *AffiliateTransactionDeleteOne {
	return c.DeleteOneID(at.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AffiliateTransactionClient) DeleteOneID(id int) *AffiliateTransactionDeleteOne {
	builder := c.Delete().Where(affiliatetransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AffiliateTransactionDeleteOne{builder}
}

// Query returns a query builder for AffiliateTransaction.
func (c *AffiliateTransactionClient) Query() *AffiliateTransactionQuery {
	return &AffiliateTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAffiliateTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a AffiliateTransaction entity by its id.
func (c *AffiliateTransactionClient) Get(ctx context.Context, id int) (*AffiliateTransaction, error) {
	return c.Query().Where(affiliatetransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AffiliateTransactionClient) GetX(ctx context.Context, id int) *AffiliateTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AffiliateTransactionClient) Hooks() []Hook {
	return c.hooks.AffiliateTransaction
}

// Interceptors returns the client interceptors.
func (c *AffiliateTransactionClient) Interceptors() []Interceptor {
	return c.inters.AffiliateTransaction
}

func (c *AffiliateTransactionClient) mutate(ctx context.Context, m *AffiliateTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AffiliateTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AffiliateTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AffiliateTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AffiliateTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AffiliateTransaction mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(al *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(al))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id int) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(al *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(al.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id int) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id int) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id int) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(o *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(o))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id int) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(o *Order) *OrderDeleteOne {
	return c.DeleteOneID(o.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id int) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id int) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id int) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Order mutation op: %q", m.Op())
	}
}

// OrderItemClient is a client for the OrderItem schema.
type OrderItemClient struct {
	config
}

// NewOrderItemClient returns a client for the OrderItem from the given config.
func NewOrderItemClient(c config) *OrderItemClient {
	return &OrderItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderitem.Hooks(f(g(h())))`.
func (c *OrderItemClient) Use(hooks ...Hook) {
	c.hooks.OrderItem = append(c.hooks.OrderItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderitem.Intercept(f(g(h())))`.
func (c *OrderItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderItem = append(c.inters.OrderItem, interceptors...)
}

// Create returns a builder for creating a OrderItem entity.
func (c *OrderItemClient) Create() *OrderItemCreate {
	mutation := newOrderItemMutation(c.config, OpCreate)
	return &OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderItem entities.
func (c *OrderItemClient) CreateBulk(builders ...*OrderItemCreate) *OrderItemCreateBulk {
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderItemClient) MapCreateBulk(slice any, setFunc func(*OrderItemCreate, int)) *OrderItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderItemCreateBulk{err: fmt.Errorf("calling to OrderItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderItem.
func (c *OrderItemClient) Update() *OrderItemUpdate {
	mutation := newOrderItemMutation(c.config, OpUpdate)
	return &OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderItemClient) UpdateOne(oi *OrderItem) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItem(oi))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderItemClient) UpdateOneID(id int) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItemID(id))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderItem.
func (c *OrderItemClient) Delete() *OrderItemDelete {
	mutation := newOrderItemMutation(c.config, OpDelete)
	return &OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderItemClient) DeleteOne(oi *OrderItem) *OrderItemDeleteOne {
	return c.DeleteOneID(oi.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderItemClient) DeleteOneID(id int) *OrderItemDeleteOne {
	builder := c.Delete().Where(orderitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderItemDeleteOne{builder}
}

// Query returns a query builder for OrderItem.
func (c *OrderItemClient) Query() *OrderItemQuery {
	return &OrderItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderItem},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderItem entity by its id.
func (c *OrderItemClient) Get(ctx context.Context, id int) (*OrderItem, error) {
	return c.Query().Where(orderitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderItemClient) GetX(ctx context.Context, id int) *OrderItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OrderItemClient) Hooks() []Hook {
	return c.hooks.OrderItem
}

// Interceptors returns the client interceptors.
func (c *OrderItemClient) Interceptors() []Interceptor {
	return c.inters.OrderItem
}

func (c *OrderItemClient) mutate(ctx context.Context, m *OrderItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderItem mutation op: %q", m.Op())
	}
}

// ProductClient is a client for the Product schema.
type ProductClient struct {
	config
}

// NewProductClient returns a client for the Product from the given config.
func NewProductClient(c config) *ProductClient {
	return &ProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `product.Hooks(f(g(h())))`.
func (c *ProductClient) Use(hooks ...Hook) {
	c.hooks.Product = append(c.hooks.Product, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `product.Intercept(f(g(h())))`.
func (c *ProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.Product = append(c.inters.Product, interceptors...)
}

// Create returns a builder for creating a Product entity.
func (c *ProductClient) Create() *ProductCreate {
	mutation := newProductMutation(c.config, OpCreate)
	return &ProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Product entities.
func (c *ProductClient) CreateBulk(builders ...*ProductCreate) *ProductCreateBulk {
	return &ProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProductClient) MapCreateBulk(slice any, setFunc func(*ProductCreate, int)) *ProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProductCreateBulk{err: fmt.Errorf("calling to ProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Product.
func (c *ProductClient) Update() *ProductUpdate {
	mutation := newProductMutation(c.config, OpUpdate)
	return &ProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProductClient) UpdateOne(pr *Product) *ProductUpdateOne {
	mutation := newProductMutation(c.config, OpUpdateOne, withProduct(pr))
	return &ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProductClient) UpdateOneID(id int) *ProductUpdateOne {
	mutation := newProductMutation(c.config, OpUpdateOne, withProductID(id))
	return &ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Product.
func (c *ProductClient) Delete() *ProductDelete {
	mutation := newProductMutation(c.config, OpDelete)
	return &ProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProductClient) DeleteOne(pr *Product) *ProductDeleteOne {
	return c.DeleteOneID(pr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProductClient) DeleteOneID(id int) *ProductDeleteOne {
	builder := c.Delete().Where(product.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProductDeleteOne{builder}
}

// Query returns a query builder for Product.
func (c *ProductClient) Query() *ProductQuery {
	return &ProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a Product entity by its id.
func (c *ProductClient) Get(ctx context.Context, id int) (*Product, error) {
	return c.Query().Where(product.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProductClient) GetX(ctx context.Context, id int) *Product {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProductClient) Hooks() []Hook {
	return c.hooks.Product
}

// Interceptors returns the client interceptors.
func (c *ProductClient) Interceptors() []Interceptor {
	return c.inters.Product
}

func (c *ProductClient) mutate(ctx context.Context, m *ProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Product mutation op: %q", m.Op())
	}
}

// ProductCommissionClient is a client for the ProductCommission schema.
type ProductCommissionClient struct {
	config
}

// NewProductCommissionClient returns a client for the ProductCommission from the given config.
func NewProductCommissionClient(c config) *ProductCommissionClient {
	return &ProductCommissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `productcommission.Hooks(f(g(h())))`.
func (c *ProductCommissionClient) Use(hooks ...Hook) {
	c.hooks.ProductCommission = append(c.hooks.ProductCommission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `productcommission.Intercept(f(g(h())))`.
func (c *ProductCommissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProductCommission = append(c.inters.ProductCommission, interceptors...)
}

// Create returns a builder for creating a ProductCommission entity.
func (c *ProductCommissionClient) Create() *ProductCommissionCreate {
	mutation := newProductCommissionMutation(c.config, OpCreate)
	return &ProductCommissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProductCommission entities.
func (c *ProductCommissionClient) CreateBulk(builders ...*ProductCommissionCreate) *ProductCommissionCreateBulk {
	return &ProductCommissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProductCommissionClient) MapCreateBulk(slice any, setFunc func(*ProductCommissionCreate, int)) *ProductCommissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProductCommissionCreateBulk{err: fmt.Errorf("calling to ProductCommissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProductCommissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProductCommissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProductCommission.
func (c *ProductCommissionClient) Update() *ProductCommissionUpdate {
	mutation := newProductCommissionMutation(c.config, OpUpdate)
	return &ProductCommissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProductCommissionClient) UpdateOne(pc *ProductCommission) *ProductCommissionUpdateOne {
	mutation := newProductCommissionMutation(c.config, OpUpdateOne, withProductCommission(pc))
	return &ProductCommissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProductCommissionClient) UpdateOneID(id int) *ProductCommissionUpdateOne {
	mutation := newProductCommissionMutation(c.config, OpUpdateOne, withProductCommissionID(id))
	return &ProductCommissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProductCommission.
func (c *ProductCommissionClient) Delete() *ProductCommissionDelete {
	mutation := newProductCommissionMutation(c.config, OpDelete)
	return &ProductCommissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProductCommissionClient) DeleteOne(pc *ProductCommission) *ProductCommissionDeleteOne {
	return c.DeleteOneID(pc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProductCommissionClient) DeleteOneID(id int) *ProductCommissionDeleteOne {
	builder := c.Delete().Where(productcommission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProductCommissionDeleteOne{builder}
}

// Query returns a query builder for ProductCommission.
func (c *ProductCommissionClient) Query() *ProductCommissionQuery {
	return &ProductCommissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProductCommission},
		inters: c.Interceptors(),
	}
}

// Get returns a ProductCommission entity by its id.
func (c *ProductCommissionClient) Get(ctx context.Context, id int) (*ProductCommission, error) {
	return c.Query().Where(productcommission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProductCommissionClient) GetX(ctx context.Context, id int) *ProductCommission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProductCommissionClient) Hooks() []Hook {
	return c.hooks.ProductCommission
}

// Interceptors returns the client interceptors.
func (c *ProductCommissionClient) Interceptors() []Interceptor {
	return c.inters.ProductCommission
}

func (c *ProductCommissionClient) mutate(ctx context.Context, m *ProductCommissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProductCommissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProductCommissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProductCommissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProductCommissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProductCommission mutation op: %q", m.Op())
	}
}

// SaleClient is a client for the Sale schema.
type SaleClient struct {
	config
}

// NewSaleClient returns a client for the Sale from the given config.
func NewSaleClient(c config) *SaleClient {
	return &SaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sale.Hooks(f(g(h())))`.
func (c *SaleClient) Use(hooks ...Hook) {
	c.hooks.Sale = append(c.hooks.Sale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sale.Intercept(f(g(h())))`.
func (c *SaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sale = append(c.inters.Sale, interceptors...)
}

// Create returns a builder for creating a Sale entity.
func (c *SaleClient) Create() *SaleCreate {
	mutation := newSaleMutation(c.config, OpCreate)
	return &SaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sale entities.
func (c *SaleClient) CreateBulk(builders ...*SaleCreate) *SaleCreateBulk {
	return &SaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SaleClient) MapCreateBulk(slice any, setFunc func(*SaleCreate, int)) *SaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SaleCreateBulk{err: fmt.Errorf("calling to SaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sale.
func (c *SaleClient) Update() *SaleUpdate {
	mutation := newSaleMutation(c.config, OpUpdate)
	return &SaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SaleClient) UpdateOne(s *Sale) *SaleUpdateOne {
	mutation := newSaleMutation(c.config, OpUpdateOne, withSale(s))
	return &SaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SaleClient) UpdateOneID(id int) *SaleUpdateOne {
	mutation := newSaleMutation(c.config, OpUpdateOne, withSaleID(id))
	return &SaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sale.
func (c *SaleClient) Delete() *SaleDelete {
	mutation := newSaleMutation(c.config, OpDelete)
	return &SaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SaleClient) DeleteOne(s *Sale) *SaleDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SaleClient) DeleteOneID(id int) *SaleDeleteOne {
	builder := c.Delete().Where(sale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SaleDeleteOne{builder}
}

// Query returns a query builder for Sale.
func (c *SaleClient) Query() *SaleQuery {
	return &SaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSale},
		inters: c.Interceptors(),
	}
}

// Get returns a Sale entity by its id.
func (c *SaleClient) Get(ctx context.Context, id int) (*Sale, error) {
	return c.Query().Where(sale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SaleClient) GetX(ctx context.Context, id int) *Sale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SaleClient) Hooks() []Hook {
	return c.hooks.Sale
}

// Interceptors returns the client interceptors.
func (c *SaleClient) Interceptors() []Interceptor {
	return c.inters.Sale
}

func (c *SaleClient) mutate(ctx context.Context, m *SaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sale mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WithdrawalRequestClient is a client for the WithdrawalRequest schema.
type WithdrawalRequestClient struct {
	config
}

// NewWithdrawalRequestClient returns a client for the WithdrawalRequest from the given config.
func NewWithdrawalRequestClient(c config) *WithdrawalRequestClient {
	return &WithdrawalRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `withdrawalrequest.Hooks(f(g(h())))`.
func (c *WithdrawalRequestClient) Use(hooks ...Hook) {
	c.hooks.WithdrawalRequest = append(c.hooks.WithdrawalRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `withdrawalrequest.Intercept(f(g(h())))`.
func (c *WithdrawalRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.WithdrawalRequest = append(c.inters.WithdrawalRequest, interceptors...)
}

// Create returns a builder for creating a WithdrawalRequest entity.
func (c *WithdrawalRequestClient) Create() *WithdrawalRequestCreate {
	mutation := newWithdrawalRequestMutation(c.config, OpCreate)
	return &WithdrawalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WithdrawalRequest entities.
func (c *WithdrawalRequestClient) CreateBulk(builders ...*WithdrawalRequestCreate) *WithdrawalRequestCreateBulk {
	return &WithdrawalRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WithdrawalRequestClient) MapCreateBulk(slice any, setFunc func(*WithdrawalRequestCreate, int)) *WithdrawalRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WithdrawalRequestCreateBulk{err: fmt.Errorf("calling to WithdrawalRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WithdrawalRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WithdrawalRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WithdrawalRequest.
func (c *WithdrawalRequestClient) Update() *WithdrawalRequestUpdate {
	mutation := newWithdrawalRequestMutation(c.config, OpUpdate)
	return &WithdrawalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WithdrawalRequestClient) UpdateOne(wr *WithdrawalRequest) *WithdrawalRequestUpdateOne {
	mutation := newWithdrawalRequestMutation(c.config, OpUpdateOne, withWithdrawalRequest(wr))
	return &WithdrawalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WithdrawalRequestClient) UpdateOneID(id int) *WithdrawalRequestUpdateOne {
	mutation := newWithdrawalRequestMutation(c.config, OpUpdateOne, withWithdrawalRequestID(id))
	return &WithdrawalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WithdrawalRequest.
func (c *WithdrawalRequestClient) Delete() *WithdrawalRequestDelete {
	mutation := newWithdrawalRequestMutation(c.config, OpDelete)
	return &WithdrawalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WithdrawalRequestClient) DeleteOne(wr *WithdrawalRequest) *WithdrawalRequestDeleteOne {
	return c.DeleteOneID(wr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WithdrawalRequestClient) DeleteOneID(id int) *WithdrawalRequestDeleteOne {
	builder := c.Delete().Where(withdrawalrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WithdrawalRequestDeleteOne{builder}
}

// Query returns a query builder for WithdrawalRequest.
func (c *WithdrawalRequestClient) Query() *WithdrawalRequestQuery {
	return &WithdrawalRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWithdrawalRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a WithdrawalRequest entity by its id.
func (c *WithdrawalRequestClient) Get(ctx context.Context, id int) (*WithdrawalRequest, error) {
	return c.Query().Where(withdrawalrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WithdrawalRequestClient) GetX(ctx context.Context, id int) *WithdrawalRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WithdrawalRequestClient) Hooks() []Hook {
	return c.hooks.WithdrawalRequest
}

// Interceptors returns the client interceptors.
func (c *WithdrawalRequestClient) Interceptors() []Interceptor {
	return c.inters.WithdrawalRequest
}

func (c *WithdrawalRequestClient) mutate(ctx context.Context, m *WithdrawalRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WithdrawalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WithdrawalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WithdrawalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WithdrawalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WithdrawalRequest mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Affiliate, AffiliateBalance, AffiliateTransaction, AuditLog, Order, OrderItem,
		Product, ProductCommission, Sale, User, WithdrawalRequest []ent.Hook
	}
	inters struct {
		Affiliate, AffiliateBalance, AffiliateTransaction, AuditLog, Order, OrderItem,
		Product, ProductCommission, Sale, User, WithdrawalRequest []ent.Interceptor
	}
)
