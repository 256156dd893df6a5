// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jordanlanch/affiliatedb/ent/affiliatetransaction"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AffiliateTransactionQuery is the builder for querying AffiliateTransaction entities.
type AffiliateTransactionQuery struct {
	config
	ctx        *QueryContext
	order      []affiliatetransaction.OrderOption
	inters     []Interceptor
	predicates []predicate.AffiliateTransaction
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AffiliateTransactionQuery builder.
func (atq *AffiliateTransactionQuery) Where(ps ...predicate.AffiliateTransaction) *AffiliateTransactionQuery {
	atq.predicates = append(atq.predicates, ps...)
	return atq
}

// Limit the number of records to be returned by this query.
func (atq *AffiliateTransactionQuery) Limit(limit int) *AffiliateTransactionQuery {
	atq.ctx.Limit = &limit
	return atq
}

// Offset to start from.
func (atq *AffiliateTransactionQuery) Offset(offset int) *AffiliateTransactionQuery {
	atq.ctx.Offset = &offset
	return atq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (atq *AffiliateTransactionQuery) Unique(unique bool) *AffiliateTransactionQuery {
	atq.ctx.Unique = &unique
	return atq
}

// Order specifies how the records should be ordered.
func (atq *AffiliateTransactionQuery) Order(o ...affiliatetransaction.OrderOption) *AffiliateTransactionQuery {
	atq.order = append(atq.order, o...)
	return atq
}

// First returns the first AffiliateTransaction entity from the query.
// Returns a *NotFoundError when no AffiliateTransaction was found.
func (atq *AffiliateTransactionQuery) First(ctx context.Context) (*AffiliateTransaction, error) {
	nodes, err := atq.Limit(1).All(setContextOp(ctx, atq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{affiliatetransaction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) FirstX(ctx context.Context) *AffiliateTransaction {
	node, err := atq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AffiliateTransaction ID from the query.
// Returns a *NotFoundError when no AffiliateTransaction ID was found.
func (atq *AffiliateTransactionQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = atq.Limit(1).IDs(setContextOp(ctx, atq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{affiliatetransaction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) FirstIDX(ctx context.Context) int {
	id, err := atq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AffiliateTransaction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AffiliateTransaction entity is found.
// Returns a *NotFoundError when no AffiliateTransaction entities are found.
func (atq *AffiliateTransactionQuery) Only(ctx context.Context) (*AffiliateTransaction, error) {
	nodes, err := atq.Limit(2).All(setContextOp(ctx, atq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{affiliatetransaction.Label}
	default:
		return nil, &NotSingularError{affiliatetransaction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) OnlyX(ctx context.Context) *AffiliateTransaction {
	node, err := atq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AffiliateTransaction ID in the query.
// Returns a *NotSingularError when more than one AffiliateTransaction ID is found.
// Returns a *NotFoundError when no entities are found.
func (atq *AffiliateTransactionQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = atq.Limit(2).IDs(setContextOp(ctx, atq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{affiliatetransaction.Label}
	default:
		err = &NotSingularError{affiliatetransaction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) OnlyIDX(ctx context.Context) int {
	id, err := atq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AffiliateTransactions.
func (atq *AffiliateTransactionQuery) All(ctx context.Context) ([]*AffiliateTransaction, error) {
	ctx = setContextOp(ctx, atq.ctx, ent.OpQueryAll)
	if err := atq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AffiliateTransaction, *AffiliateTransactionQuery]()
	return withInterceptors[[]*AffiliateTransaction](ctx, atq, qr, atq.inters)
}

// AllX is like All, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) AllX(ctx context.Context) []*AffiliateTransaction {
	nodes, err := atq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AffiliateTransaction IDs.
func (atq *AffiliateTransactionQuery) IDs(ctx context.Context) (ids []int, err error) {
	if atq.ctx.Unique == nil && atq.path != nil {
		atq.Unique(true)
	}
	ctx = setContextOp(ctx, atq.ctx, ent.OpQueryIDs)
	if err = atq.Select(affiliatetransaction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) IDsX(ctx context.Context) []int {
	ids, err := atq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (atq *AffiliateTransactionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, atq.ctx, ent.OpQueryCount)
	if err := atq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, atq, querierCount[*AffiliateTransactionQuery](), atq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) CountX(ctx context.Context) int {
	count, err := atq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (atq *AffiliateTransactionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, atq.ctx, ent.OpQueryExist)
	switch _, err := atq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (atq *AffiliateTransactionQuery) ExistX(ctx context.Context) bool {
	exist, err := atq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AffiliateTransactionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (atq *AffiliateTransactionQuery) Clone() *AffiliateTransactionQuery {
	if atq == nil {
		return nil
	}
	return &AffiliateTransactionQuery{
		config:     atq.config,
		ctx:        atq.ctx.Clone(),
		order:      append([]affiliatetransaction.OrderOption{}, atq.order...),
		inters:     append([]Interceptor{}, atq.inters...),
		predicates: append([]predicate.AffiliateTransaction{}, atq.predicates...),
		// clone intermediate query.
		sql:  atq.sql.Clone(),
		path: atq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BalanceID int `json:"balance_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AffiliateTransaction.Query().
//		GroupBy(affiliatetransaction.FieldBalanceID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (atq *AffiliateTransactionQuery) GroupBy(field string, fields ...string) *AffiliateTransactionGroupBy {
	atq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AffiliateTransactionGroupBy{build: atq}
	grbuild.flds = &atq.ctx.Fields
	grbuild.label = affiliatetransaction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BalanceID int `json:"balance_id,omitempty"`
//	}
//
//	client.AffiliateTransaction.Query().
//		Select(affiliatetransaction.FieldBalanceID).
//		Scan(ctx, &v)
func (atq *AffiliateTransactionQuery) Select(fields ...string) *AffiliateTransactionSelect {
	atq.ctx.Fields = append(atq.ctx.Fields, fields...)
	sbuild := &AffiliateTransactionSelect{AffiliateTransactionQuery: atq}
	sbuild.label = affiliatetransaction.Label
	sbuild.flds, sbuild.scan = &atq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AffiliateTransactionSelect configured with the given aggregations.
func (atq *AffiliateTransactionQuery) Aggregate(fns ...AggregateFunc) *AffiliateTransactionSelect {
	return atq.Select().Aggregate(fns...)
}

func (atq *AffiliateTransactionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range atq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, atq); err != nil {
				return err
			}
		}
	}
	for _, f := range atq.ctx.Fields {
		if !affiliatetransaction.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if atq.path != nil {
		prev, err := atq.path(ctx)
		if err != nil {
			return err
		}
		atq.sql = prev
	}
	return nil
}

func (atq *AffiliateTransactionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AffiliateTransaction, error) {
	var (
		nodes = []*AffiliateTransaction{}
		_spec = atq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AffiliateTransaction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AffiliateTransaction{config: atq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, atq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (atq *AffiliateTransactionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := atq.querySpec()
	_spec.Node.Columns = atq.ctx.Fields
	if len(atq.ctx.Fields) > 0 {
		_spec.Unique = atq.ctx.Unique != nil && *atq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, atq.driver, _spec)
}

func (atq *AffiliateTransactionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(affiliatetransaction.Table, affiliatetransaction.Columns, sqlgraph.NewFieldSpec(affiliatetransaction.FieldID, field.TypeInt))
	_spec.From = atq.sql
	if unique := atq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if atq.path != nil {
		_spec.Unique = true
	}
	if fields := atq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, affiliatetransaction.FieldID)
		for i := range fields {
			if fields[i] != affiliatetransaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := atq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := atq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := atq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := atq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (atq *AffiliateTransactionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(atq.driver.Dialect())
	t1 := builder.Table(affiliatetransaction.Table)
	columns := atq.ctx.Fields
	if len(columns) == 0 {
		columns = affiliatetransaction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if atq.sql != nil {
		selector = atq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if atq.ctx.Unique != nil && *atq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range atq.predicates {
		p(selector)
	}
	for _, p := range atq.order {
		p(selector)
	}
	if offset := atq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := atq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AffiliateTransactionGroupBy is the group-by builder for AffiliateTransaction entities.
type AffiliateTransactionGroupBy struct {
	selector
	build *AffiliateTransactionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (atgb *AffiliateTransactionGroupBy) Aggregate(fns ...AggregateFunc) *AffiliateTransactionGroupBy {
	atgb.fns = append(atgb.fns, fns...)
	return atgb
}

// Scan applies the selector query and scans the result into the given value.
func (atgb *AffiliateTransactionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, atgb.build.ctx, ent.OpQueryGroupBy)
	if err := atgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AffiliateTransactionQuery, *AffiliateTransactionGroupBy](ctx, atgb.build, atgb, atgb.build.inters, v)
}

func (atgb *AffiliateTransactionGroupBy) sqlScan(ctx context.Context, root *AffiliateTransactionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(atgb.fns))
	for _, fn := range atgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*atgb.flds)+len(atgb.fns))
		for _, f := range *atgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*atgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := atgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AffiliateTransactionSelect is the builder for selecting fields of AffiliateTransaction entities.
type AffiliateTransactionSelect struct {
	*AffiliateTransactionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ats *AffiliateTransactionSelect) Aggregate(fns ...AggregateFunc) *AffiliateTransactionSelect {
	ats.fns = append(ats.fns, fns...)
	return ats
}

// Scan applies the selector query and scans the result into the given value.
func (ats *AffiliateTransactionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ats.ctx, ent.OpQuerySelect)
	if err := ats.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AffiliateTransactionQuery, *AffiliateTransactionSelect](ctx, ats.AffiliateTransactionQuery, ats, ats.inters, v)
}

func (ats *AffiliateTransactionSelect) sqlScan(ctx context.Context, root *AffiliateTransactionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ats.fns))
	for _, fn := range ats.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ats.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ats.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
