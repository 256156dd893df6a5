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
	"github.com/jordanlanch/affiliatedb/ent/affiliatebalance"
	"github.com/jordanlanch/affiliatedb/ent/predicate"
)

// AffiliateBalanceQuery is the builder for querying AffiliateBalance entities.
type AffiliateBalanceQuery struct {
	config
	ctx        *QueryContext
	order      []affiliatebalance.OrderOption
	inters     []Interceptor
	predicates []predicate.AffiliateBalance
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AffiliateBalanceQuery builder.
func (abq *AffiliateBalanceQuery) Where(ps ...predicate.AffiliateBalance) *AffiliateBalanceQuery {
	abq.predicates = append(abq.predicates, ps...)
	return abq
}

// Limit the number of records to be returned by this query.
func (abq *AffiliateBalanceQuery) Limit(limit int) *AffiliateBalanceQuery {
	abq.ctx.Limit = &limit
	return abq
}

// Offset to start from.
func (abq *AffiliateBalanceQuery) Offset(offset int) *AffiliateBalanceQuery {
	abq.ctx.Offset = &offset
	return abq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (abq *AffiliateBalanceQuery) Unique(unique bool) *AffiliateBalanceQuery {
	abq.ctx.Unique = &unique
	return abq
}

// Order specifies how the records should be ordered.
func (abq *AffiliateBalanceQuery) Order(o ...affiliatebalance.OrderOption) *AffiliateBalanceQuery {
	abq.order = append(abq.order, o...)
	return abq
}

// First returns the first AffiliateBalance entity from the query.
// Returns a *NotFoundError when no AffiliateBalance was found.
func (abq *AffiliateBalanceQuery) First(ctx context.Context) (*AffiliateBalance, error) {
	nodes, err := abq.Limit(1).All(setContextOp(ctx, abq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{affiliatebalance.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) FirstX(ctx context.Context) *AffiliateBalance {
	node, err := abq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AffiliateBalance ID from the query.
// Returns a *NotFoundError when no AffiliateBalance ID was found.
func (abq *AffiliateBalanceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = abq.Limit(1).IDs(setContextOp(ctx, abq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{affiliatebalance.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) FirstIDX(ctx context.Context) int {
	id, err := abq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AffiliateBalance entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AffiliateBalance entity is found.
// Returns a *NotFoundError when no AffiliateBalance entities are found.
func (abq *AffiliateBalanceQuery) Only(ctx context.Context) (*AffiliateBalance, error) {
	nodes, err := abq.Limit(2).All(setContextOp(ctx, abq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{affiliatebalance.Label}
	default:
		return nil, &NotSingularError{affiliatebalance.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) OnlyX(ctx context.Context) *AffiliateBalance {
	node, err := abq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AffiliateBalance ID in the query.
// Returns a *NotSingularError when more than one AffiliateBalance ID is found.
// Returns a *NotFoundError when no entities are found.
func (abq *AffiliateBalanceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = abq.Limit(2).IDs(setContextOp(ctx, abq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{affiliatebalance.Label}
	default:
		err = &NotSingularError{affiliatebalance.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) OnlyIDX(ctx context.Context) int {
	id, err := abq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AffiliateBalances.
func (abq *AffiliateBalanceQuery) All(ctx context.Context) ([]*AffiliateBalance, error) {
	ctx = setContextOp(ctx, abq.ctx, ent.OpQueryAll)
	if err := abq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AffiliateBalance, *AffiliateBalanceQuery]()
	return withInterceptors[[]*AffiliateBalance](ctx, abq, qr, abq.inters)
}

// AllX is like All, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) AllX(ctx context.Context) []*AffiliateBalance {
	nodes, err := abq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AffiliateBalance IDs.
func (abq *AffiliateBalanceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if abq.ctx.Unique == nil && abq.path != nil {
		abq.Unique(true)
	}
	ctx = setContextOp(ctx, abq.ctx, ent.OpQueryIDs)
	if err = abq.Select(affiliatebalance.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) IDsX(ctx context.Context) []int {
	ids, err := abq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (abq *AffiliateBalanceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, abq.ctx, ent.OpQueryCount)
	if err := abq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, abq, querierCount[*AffiliateBalanceQuery](), abq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) CountX(ctx context.Context) int {
	count, err := abq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (abq *AffiliateBalanceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, abq.ctx, ent.OpQueryExist)
	switch _, err := abq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (abq *AffiliateBalanceQuery) ExistX(ctx context.Context) bool {
	exist, err := abq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AffiliateBalanceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (abq *AffiliateBalanceQuery) Clone() *AffiliateBalanceQuery {
	if abq == nil {
		return nil
	}
	return &AffiliateBalanceQuery{
		config:     abq.config,
		ctx:        abq.ctx.Clone(),
		order:      append([]affiliatebalance.OrderOption{}, abq.order...),
		inters:     append([]Interceptor{}, abq.inters...),
		predicates: append([]predicate.AffiliateBalance{}, abq.predicates...),
		// clone intermediate query.
		sql:  abq.sql.Clone(),
		path: abq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AffiliateID int `json:"affiliate_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AffiliateBalance.Query().
//		GroupBy(affiliatebalance.FieldAffiliateID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (abq *AffiliateBalanceQuery) GroupBy(field string, fields ...string) *AffiliateBalanceGroupBy {
	abq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AffiliateBalanceGroupBy{build: abq}
	grbuild.flds = &abq.ctx.Fields
	grbuild.label = affiliatebalance.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AffiliateID int `json:"affiliate_id,omitempty"`
//	}
//
//	client.AffiliateBalance.Query().
//		Select(affiliatebalance.FieldAffiliateID).
//		Scan(ctx, &v)
func (abq *AffiliateBalanceQuery) Select(fields ...string) *AffiliateBalanceSelect {
	abq.ctx.Fields = append(abq.ctx.Fields, fields...)
	sbuild := &AffiliateBalanceSelect{AffiliateBalanceQuery: abq}
	sbuild.label = affiliatebalance.Label
	sbuild.flds, sbuild.scan = &abq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AffiliateBalanceSelect configured with the given aggregations.
func (abq *AffiliateBalanceQuery) Aggregate(fns ...AggregateFunc) *AffiliateBalanceSelect {
	return abq.Select().Aggregate(fns...)
}

func (abq *AffiliateBalanceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range abq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, abq); err != nil {
				return err
			}
		}
	}
	for _, f := range abq.ctx.Fields {
		if !affiliatebalance.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if abq.path != nil {
		prev, err := abq.path(ctx)
		if err != nil {
			return err
		}
		abq.sql = prev
	}
	return nil
}

func (abq *AffiliateBalanceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AffiliateBalance, error) {
	var (
		nodes = []*AffiliateBalance{}
		_spec = abq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AffiliateBalance).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AffiliateBalance{config: abq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, abq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (abq *AffiliateBalanceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := abq.querySpec()
	_spec.Node.Columns = abq.ctx.Fields
	if len(abq.ctx.Fields) > 0 {
		_spec.Unique = abq.ctx.Unique != nil && *abq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, abq.driver, _spec)
}

func (abq *AffiliateBalanceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(affiliatebalance.Table, affiliatebalance.Columns, sqlgraph.NewFieldSpec(affiliatebalance.FieldID, field.TypeInt))
	_spec.From = abq.sql
	if unique := abq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if abq.path != nil {
		_spec.Unique = true
	}
	if fields := abq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, affiliatebalance.FieldID)
		for i := range fields {
			if fields[i] != affiliatebalance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := abq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := abq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := abq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := abq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (abq *AffiliateBalanceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(abq.driver.Dialect())
	t1 := builder.Table(affiliatebalance.Table)
	columns := abq.ctx.Fields
	if len(columns) == 0 {
		columns = affiliatebalance.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if abq.sql != nil {
		selector = abq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if abq.ctx.Unique != nil && *abq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range abq.predicates {
		p(selector)
	}
	for _, p := range abq.order {
		p(selector)
	}
	if offset := abq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := abq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AffiliateBalanceGroupBy is the group-by builder for AffiliateBalance entities.
type AffiliateBalanceGroupBy struct {
	selector
	build *AffiliateBalanceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (abgb *AffiliateBalanceGroupBy) Aggregate(fns ...AggregateFunc) *AffiliateBalanceGroupBy {
	abgb.fns = append(abgb.fns, fns...)
	return abgb
}

// Scan applies the selector query and scans the result into the given value.
func (abgb *AffiliateBalanceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, abgb.build.ctx, ent.OpQueryGroupBy)
	if err := abgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AffiliateBalanceQuery, *AffiliateBalanceGroupBy](ctx, abgb.build, abgb, abgb.build.inters, v)
}

func (abgb *AffiliateBalanceGroupBy) sqlScan(ctx context.Context, root *AffiliateBalanceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(abgb.fns))
	for _, fn := range abgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*abgb.flds)+len(abgb.fns))
		for _, f := range *abgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*abgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := abgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AffiliateBalanceSelect is the builder for selecting fields of AffiliateBalance entities.
type AffiliateBalanceSelect struct {
	*AffiliateBalanceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (abs *AffiliateBalanceSelect) Aggregate(fns ...AggregateFunc) *AffiliateBalanceSelect {
	abs.fns = append(abs.fns, fns...)
	return abs
}

// Scan applies the selector query and scans the result into the given value.
func (abs *AffiliateBalanceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, abs.ctx, ent.OpQuerySelect)
	if err := abs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AffiliateBalanceQuery, *AffiliateBalanceSelect](ctx, abs.AffiliateBalanceQuery, abs, abs.inters, v)
}

func (abs *AffiliateBalanceSelect) sqlScan(ctx context.Context, root *AffiliateBalanceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(abs.fns))
	for _, fn := range abs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*abs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := abs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
