package router

import (
	"github.com/gin-gonic/gin"
	"github.com/goldledger/backend/internal/interfaces/http/handler"
)

// Handlers bundles the handlers mounted under the versioned API prefix
type Handlers struct {
	Customer    *handler.CustomerHandler
	Transaction *handler.TransactionHandler
	Job         *handler.JobHandler
	Dashboard   *handler.DashboardHandler
	System      *handler.SystemHandler
}

// APIGroups builds the ledger route groups.
// createGuard runs in front of every create endpoint and may be nil.
func APIGroups(h Handlers, createGuard gin.HandlerFunc) []*DomainGroup {
	create := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if createGuard == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{createGuard, fn}
	}

	customers := NewDomainGroup("customers", "/customers")
	customers.POST("", create(h.Customer.Create)...)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", h.Customer.Delete)
	customers.GET("/:id/balance", h.Customer.GetBalance)
	customers.GET("/:id/statement", h.Customer.GetStatement)

	// singular path kept for clients of the first release
	legacy := NewDomainGroup("customer", "/customer")
	legacy.GET("/:id/balance", h.Customer.GetBalance)

	transactions := NewDomainGroup("transactions", "/transactions")
	transactions.POST("", create(h.Transaction.Create)...)
	transactions.GET("", h.Transaction.List)
	transactions.GET("/:id", h.Transaction.GetByID)
	transactions.PUT("/:id", h.Transaction.Update)
	transactions.DELETE("/:id", h.Transaction.Delete)

	jobs := NewDomainGroup("jobs", "/jobs")
	jobs.POST("", create(h.Job.Create)...)
	jobs.GET("", h.Job.List)
	jobs.GET("/:id", h.Job.GetByID)
	jobs.PUT("/:id", h.Job.Update)
	jobs.PUT("/:id/status", h.Job.UpdateStatus)
	jobs.DELETE("/:id", h.Job.Delete)

	dashboard := NewDomainGroup("dashboard", "/dashboard")
	dashboard.GET("", h.Dashboard.Get)

	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.System.GetSystemInfo)
	system.GET("/ping", h.System.Ping)

	return []*DomainGroup{customers, legacy, transactions, jobs, dashboard, system}
}
