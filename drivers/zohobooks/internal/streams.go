package driver

import "github.com/openledgerio/booksync/types"

// buildRegistry wires the full stream tree. Everything hangs off the
// organizations root; the organization_id context scopes every descendant
// request to one tenant.
func buildRegistry() *types.Stream {
	organizations := &types.Stream{
		Name:        "organizations",
		Path:        "/organizations",
		PrimaryKeys: []string{"organization_id"},
		RecordsPath: "organizations",
		ContextKey:  "organization_id",
	}

	journalsID := organizations.AddChild(&types.Stream{
		Name:        "journals_id",
		Path:        "/journals",
		PrimaryKeys: []string{"journal_id"},
		RecordsPath: "journals",
		ContextKey:  "journal_id",
	})
	// the per-journal detail endpoint returns a single object and bills a
	// full request per journal, so it is paced and keeps one global cursor
	journalsID.AddChild(&types.Stream{
		Name:               "journals",
		Path:               "/journals/{journal_id}",
		PrimaryKeys:        []string{"journal_id"},
		ReplicationKey:     "last_modified_time",
		RecordsPath:        "journal",
		Paced:              true,
		IgnoreParentCursor: true,
	})

	organizations.AddChild(&types.Stream{
		Name:           "chart_of_accounts",
		Path:           "/chartofaccounts",
		PrimaryKeys:    []string{"account_id"},
		ReplicationKey: "last_modified_time",
		RecordsPath:    "chartofaccounts",
	})

	organizations.AddChild(&types.Stream{
		Name:                     "items",
		Path:                     "/items",
		PrimaryKeys:              []string{"item_id"},
		ReplicationKey:           "last_modified_time",
		RecordsPath:              "items",
		RequiresDetailEnrichment: true,
		Detail: &types.DetailSpec{
			Path:        "/items/itemdetails",
			IDParam:     "item_ids",
			RecordsPath: "items",
			Toggle:      "use_item_details",
		},
	})

	organizations.AddChild(&types.Stream{
		Name:           "invoices",
		Path:           "/invoices",
		PrimaryKeys:    []string{"invoice_id"},
		ReplicationKey: "last_modified_time",
		RecordsPath:    "invoices",
	})

	organizations.AddChild(&types.Stream{
		Name:           "contacts",
		Path:           "/contacts",
		PrimaryKeys:    []string{"contact_id"},
		ReplicationKey: "last_modified_time",
		RecordsPath:    "contacts",
	})

	organizations.AddChild(&types.Stream{
		Name:           "bills",
		Path:           "/bills",
		PrimaryKeys:    []string{"bill_id"},
		ReplicationKey: "last_modified_time",
		RecordsPath:    "bills",
	})

	// vendors are contacts filtered server-side, the payload carries
	// contact_id as its identity
	organizations.AddChild(&types.Stream{
		Name:           "vendors",
		Path:           "/vendors",
		PrimaryKeys:    []string{"contact_id"},
		ReplicationKey: "last_modified_time",
		RecordsPath:    "contacts",
	})

	salesOrders := organizations.AddChild(&types.Stream{
		Name:                     "sales_orders",
		Path:                     "/salesorders",
		PrimaryKeys:              []string{"salesorder_id"},
		ReplicationKey:           "last_modified_time",
		RecordsPath:              "salesorders",
		ContextKey:               "salesorder_id",
		RequiresDetailEnrichment: true,
		Detail: &types.DetailSpec{
			Path:        "/salesorders/salesorderdetails",
			IDParam:     "salesorder_ids",
			RecordsPath: "salesorders",
			Toggle:      "use_sales_details",
		},
	})
	salesOrders.AddChild(&types.Stream{
		Name:               "sales_orders_details",
		Path:               "/salesorders/{salesorder_id}",
		PrimaryKeys:        []string{"salesorder_id"},
		ReplicationKey:     "last_modified_time",
		RecordsPath:        "salesorder",
		Paced:              true,
		IgnoreParentCursor: true,
	})

	purchaseOrders := organizations.AddChild(&types.Stream{
		Name:           "purchase_orders",
		Path:           "/purchaseorders",
		PrimaryKeys:    []string{"purchaseorder_id"},
		ReplicationKey: "last_modified_time",
		RecordsPath:    "purchaseorders",
		ContextKey:     "purchaseorder_id",
	})
	purchaseOrders.AddChild(&types.Stream{
		Name:               "purchase_orders_details",
		Path:               "/purchaseorders/{purchaseorder_id}",
		PrimaryKeys:        []string{"purchaseorder_id"},
		ReplicationKey:     "last_modified_time",
		RecordsPath:        "purchaseorder",
		Paced:              true,
		IgnoreParentCursor: true,
	})

	organizations.AddChild(&types.Stream{
		Name:           "profit_and_loss",
		Path:           "/reports/profitandloss",
		ReplicationKey: "last_modified_time",
		RecordsPath:    "profit_and_loss",
		IsReportStream: true,
	})
	organizations.AddChild(&types.Stream{
		Name:           "profit_and_loss_cash_based",
		Path:           "/reports/profitandloss",
		ReplicationKey: "last_modified_time",
		RecordsPath:    "profit_and_loss",
		IsReportStream: true,
		CashBased:      true,
	})
	organizations.AddChild(&types.Stream{
		Name:           "report_account_transactions",
		Path:           "/reports/accounttransactions",
		ReplicationKey: "last_modified_time",
		RecordsPath:    "account_transactions",
		IsReportStream: true,
	})
	organizations.AddChild(&types.Stream{
		Name:           "report_account_transactions_cash_based",
		Path:           "/reports/accounttransactions",
		ReplicationKey: "last_modified_time",
		RecordsPath:    "account_transactions",
		IsReportStream: true,
		CashBased:      true,
	})

	return organizations
}
