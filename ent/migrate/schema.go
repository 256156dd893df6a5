// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AffiliatesColumns holds the columns for the "affiliates" table.
	AffiliatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Unique: true},
		{Name: "referral_code", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "commission_rate", Type: field.TypeFloat64, Default: 0.05},
		{Name: "is_global", Type: field.TypeBool, Default: false},
		{Name: "request_status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "blocked"}, Default: "pending"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AffiliatesTable holds the schema information for the "affiliates" table.
	AffiliatesTable = &schema.Table{
		Name:       "affiliates",
		Columns:    AffiliatesColumns,
		PrimaryKey: []*schema.Column{AffiliatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "affiliate_referral_code",
				Unique:  true,
				Columns: []*schema.Column{AffiliatesColumns[2]},
			},
			{
				Name:    "affiliate_user_id",
				Unique:  true,
				Columns: []*schema.Column{AffiliatesColumns[1]},
			},
			{
				Name:    "affiliate_request_status",
				Unique:  false,
				Columns: []*schema.Column{AffiliatesColumns[5]},
			},
		},
	}
	// AffiliateBalancesColumns holds the columns for the "affiliate_balances" table.
	AffiliateBalancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "affiliate_id", Type: field.TypeInt, Unique: true},
		{Name: "current_balance", Type: field.TypeFloat64, Default: 0},
		{Name: "total_earned", Type: field.TypeFloat64, Default: 0},
		{Name: "total_withdrawn", Type: field.TypeFloat64, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// AffiliateBalancesTable holds the schema information for the "affiliate_balances" table.
	AffiliateBalancesTable = &schema.Table{
		Name:       "affiliate_balances",
		Columns:    AffiliateBalancesColumns,
		PrimaryKey: []*schema.Column{AffiliateBalancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "affiliatebalance_affiliate_id",
				Unique:  true,
				Columns: []*schema.Column{AffiliateBalancesColumns[1]},
			},
		},
	}
	// AffiliateTransactionsColumns holds the columns for the "affiliate_transactions" table.
	AffiliateTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "balance_id", Type: field.TypeInt},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"commission", "withdrawal", "adjustment"}},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "description", Type: field.TypeString, Size: 255},
		{Name: "reference_id", Type: field.TypeInt, Nullable: true},
		{Name: "transaction_date", Type: field.TypeTime},
	}
	// AffiliateTransactionsTable holds the schema information for the "affiliate_transactions" table.
	AffiliateTransactionsTable = &schema.Table{
		Name:       "affiliate_transactions",
		Columns:    AffiliateTransactionsColumns,
		PrimaryKey: []*schema.Column{AffiliateTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "affiliatetransaction_balance_id",
				Unique:  false,
				Columns: []*schema.Column{AffiliateTransactionsColumns[1]},
			},
			{
				Name:    "affiliatetransaction_type",
				Unique:  false,
				Columns: []*schema.Column{AffiliateTransactionsColumns[2]},
			},
			{
				Name:    "affiliatetransaction_transaction_date",
				Unique:  false,
				Columns: []*schema.Column{AffiliateTransactionsColumns[6]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"affiliate_request", "affiliate_approved", "affiliate_blocked", "product_terms_updated", "sale_attributed", "withdrawal_requested", "withdrawal_approved", "withdrawal_rejected", "withdrawal_paid", "ledger_adjustment", "ledger_drift"}},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "error", "critical"}, Default: "info"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_severity",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[6]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[8]},
			},
		},
	}
	// OrdersColumns holds the columns for the "orders" table.
	OrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"processing", "shipped", "delivered", "returned"}, Default: "processing"},
		{Name: "total", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// OrdersTable holds the schema information for the "orders" table.
	OrdersTable = &schema.Table{
		Name:       "orders",
		Columns:    OrdersColumns,
		PrimaryKey: []*schema.Column{OrdersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "order_user_id",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[1]},
			},
			{
				Name:    "order_status",
				Unique:  false,
				Columns: []*schema.Column{OrdersColumns[2]},
			},
		},
	}
	// OrderItemsColumns holds the columns for the "order_items" table.
	OrderItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "order_id", Type: field.TypeInt},
		{Name: "product_id", Type: field.TypeInt},
		{Name: "quantity", Type: field.TypeInt},
		{Name: "price", Type: field.TypeFloat64},
	}
	// OrderItemsTable holds the schema information for the "order_items" table.
	OrderItemsTable = &schema.Table{
		Name:       "order_items",
		Columns:    OrderItemsColumns,
		PrimaryKey: []*schema.Column{OrderItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orderitem_order_id",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[1]},
			},
			{
				Name:    "orderitem_product_id",
				Unique:  false,
				Columns: []*schema.Column{OrderItemsColumns[2]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "price", Type: field.TypeFloat64},
		{Name: "stock", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
	}
	// ProductCommissionsColumns holds the columns for the "product_commissions" table.
	ProductCommissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "affiliate_id", Type: field.TypeInt},
		{Name: "product_id", Type: field.TypeInt},
		{Name: "commission_type", Type: field.TypeEnum, Enums: []string{"percentage", "fixed"}},
		{Name: "commission_value", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "blocked"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProductCommissionsTable holds the schema information for the "product_commissions" table.
	ProductCommissionsTable = &schema.Table{
		Name:       "product_commissions",
		Columns:    ProductCommissionsColumns,
		PrimaryKey: []*schema.Column{ProductCommissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "productcommission_affiliate_id_product_id",
				Unique:  true,
				Columns: []*schema.Column{ProductCommissionsColumns[1], ProductCommissionsColumns[2]},
			},
			{
				Name:    "productcommission_product_id",
				Unique:  false,
				Columns: []*schema.Column{ProductCommissionsColumns[2]},
			},
		},
	}
	// SalesColumns holds the columns for the "sales" table.
	SalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "affiliate_id", Type: field.TypeInt},
		{Name: "order_id", Type: field.TypeInt, Unique: true},
		{Name: "commission", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SalesTable holds the schema information for the "sales" table.
	SalesTable = &schema.Table{
		Name:       "sales",
		Columns:    SalesColumns,
		PrimaryKey: []*schema.Column{SalesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sale_order_id",
				Unique:  true,
				Columns: []*schema.Column{SalesColumns[2]},
			},
			{
				Name:    "sale_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{SalesColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "manager", "affiliate", "user"}, Default: "user"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[2]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// WithdrawalRequestsColumns holds the columns for the "withdrawal_requests" table.
	WithdrawalRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "affiliate_id", Type: field.TypeInt},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "paid"}, Default: "pending"},
		{Name: "payment_method", Type: field.TypeString, Size: 50},
		{Name: "payment_details", Type: field.TypeString, Size: 2147483647},
		{Name: "admin_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transaction_id", Type: field.TypeInt, Nullable: true},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// WithdrawalRequestsTable holds the schema information for the "withdrawal_requests" table.
	WithdrawalRequestsTable = &schema.Table{
		Name:       "withdrawal_requests",
		Columns:    WithdrawalRequestsColumns,
		PrimaryKey: []*schema.Column{WithdrawalRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "withdrawalrequest_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{WithdrawalRequestsColumns[1]},
			},
			{
				Name:    "withdrawalrequest_status",
				Unique:  false,
				Columns: []*schema.Column{WithdrawalRequestsColumns[3]},
			},
			{
				Name:    "withdrawalrequest_requested_at",
				Unique:  false,
				Columns: []*schema.Column{WithdrawalRequestsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AffiliatesTable,
		AffiliateBalancesTable,
		AffiliateTransactionsTable,
		AuditLogsTable,
		OrdersTable,
		OrderItemsTable,
		ProductsTable,
		ProductCommissionsTable,
		SalesTable,
		UsersTable,
		WithdrawalRequestsTable,
	}
)

func init() {
}
