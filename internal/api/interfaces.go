package api

import (
	"context"

	"github.com/finlens/finlens/internal/model"
)

// Service defines the full backend surface. Commands depend on this
// interface rather than *Client so tests can substitute MockClient.
type Service interface {
	Login(ctx context.Context, email, password string) (*model.Token, error)
	Register(ctx context.Context, fullName, email, password, imagePath string) (*model.User, error)
	GetUser(ctx context.Context) (*model.User, error)
	UploadProfileImage(ctx context.Context, imagePath string) (*model.User, error)

	ListExpenses(ctx context.Context) ([]model.Expense, error)
	AddExpense(ctx context.Context, expense model.Expense) (*model.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error
	DownloadExpenses(ctx context.Context) ([]byte, error)

	ListIncomes(ctx context.Context) ([]model.Income, error)
	AddIncome(ctx context.Context, income model.Income) (*model.Income, error)
	DeleteIncome(ctx context.Context, id int64) error
	DownloadIncomes(ctx context.Context) ([]byte, error)

	GetDashboard(ctx context.Context) (*model.DashboardSummary, error)

	ListBudgets(ctx context.Context) ([]model.Budget, error)
	SetBudget(ctx context.Context, budget model.Budget) (*model.Budget, error)
	BudgetAlerts(ctx context.Context) ([]model.BudgetAlert, error)

	ScanReceipt(ctx context.Context, imagePath string) (*model.ScanResult, error)
}

var _ Service = (*Client)(nil)
