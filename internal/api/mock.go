package api

import (
	"context"

	"github.com/finlens/finlens/internal/model"
)

// MockClient is a mock implementation of Service for testing. Tests set the
// Fn fields they care about; unset functions return zero values.
type MockClient struct {
	LoginFn              func(ctx context.Context, email, password string) (*model.Token, error)
	RegisterFn           func(ctx context.Context, fullName, email, password, imagePath string) (*model.User, error)
	GetUserFn            func(ctx context.Context) (*model.User, error)
	UploadProfileImageFn func(ctx context.Context, imagePath string) (*model.User, error)
	ListExpensesFn       func(ctx context.Context) ([]model.Expense, error)
	AddExpenseFn         func(ctx context.Context, expense model.Expense) (*model.Expense, error)
	DeleteExpenseFn      func(ctx context.Context, id int64) error
	DownloadExpensesFn   func(ctx context.Context) ([]byte, error)
	ListIncomesFn        func(ctx context.Context) ([]model.Income, error)
	AddIncomeFn          func(ctx context.Context, income model.Income) (*model.Income, error)
	DeleteIncomeFn       func(ctx context.Context, id int64) error
	DownloadIncomesFn    func(ctx context.Context) ([]byte, error)
	GetDashboardFn       func(ctx context.Context) (*model.DashboardSummary, error)
	ListBudgetsFn        func(ctx context.Context) ([]model.Budget, error)
	SetBudgetFn          func(ctx context.Context, budget model.Budget) (*model.Budget, error)
	BudgetAlertsFn       func(ctx context.Context) ([]model.BudgetAlert, error)
	ScanReceiptFn        func(ctx context.Context, imagePath string) (*model.ScanResult, error)

	// Call tracking for the mutating operations.
	AddExpenseCalls []model.Expense
	AddIncomeCalls  []model.Income
	SetBudgetCalls  []model.Budget
}

var _ Service = (*MockClient)(nil)

// Login implements Service.Login.
func (m *MockClient) Login(ctx context.Context, email, password string) (*model.Token, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return &model.Token{}, nil
}

// Register implements Service.Register.
func (m *MockClient) Register(ctx context.Context, fullName, email, password, imagePath string) (*model.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, fullName, email, password, imagePath)
	}
	return &model.User{}, nil
}

// GetUser implements Service.GetUser.
func (m *MockClient) GetUser(ctx context.Context) (*model.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx)
	}
	return &model.User{}, nil
}

// UploadProfileImage implements Service.UploadProfileImage.
func (m *MockClient) UploadProfileImage(ctx context.Context, imagePath string) (*model.User, error) {
	if m.UploadProfileImageFn != nil {
		return m.UploadProfileImageFn(ctx, imagePath)
	}
	return &model.User{}, nil
}

// ListExpenses implements Service.ListExpenses.
func (m *MockClient) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	if m.ListExpensesFn != nil {
		return m.ListExpensesFn(ctx)
	}
	return []model.Expense{}, nil
}

// AddExpense implements Service.AddExpense.
func (m *MockClient) AddExpense(ctx context.Context, expense model.Expense) (*model.Expense, error) {
	m.AddExpenseCalls = append(m.AddExpenseCalls, expense)

	if m.AddExpenseFn != nil {
		return m.AddExpenseFn(ctx, expense)
	}
	created := expense
	created.ID = int64(len(m.AddExpenseCalls))
	return &created, nil
}

// DeleteExpense implements Service.DeleteExpense.
func (m *MockClient) DeleteExpense(ctx context.Context, id int64) error {
	if m.DeleteExpenseFn != nil {
		return m.DeleteExpenseFn(ctx, id)
	}
	return nil
}

// DownloadExpenses implements Service.DownloadExpenses.
func (m *MockClient) DownloadExpenses(ctx context.Context) ([]byte, error) {
	if m.DownloadExpensesFn != nil {
		return m.DownloadExpensesFn(ctx)
	}
	return []byte{}, nil
}

// ListIncomes implements Service.ListIncomes.
func (m *MockClient) ListIncomes(ctx context.Context) ([]model.Income, error) {
	if m.ListIncomesFn != nil {
		return m.ListIncomesFn(ctx)
	}
	return []model.Income{}, nil
}

// AddIncome implements Service.AddIncome.
func (m *MockClient) AddIncome(ctx context.Context, income model.Income) (*model.Income, error) {
	m.AddIncomeCalls = append(m.AddIncomeCalls, income)

	if m.AddIncomeFn != nil {
		return m.AddIncomeFn(ctx, income)
	}
	created := income
	created.ID = int64(len(m.AddIncomeCalls))
	return &created, nil
}

// DeleteIncome implements Service.DeleteIncome.
func (m *MockClient) DeleteIncome(ctx context.Context, id int64) error {
	if m.DeleteIncomeFn != nil {
		return m.DeleteIncomeFn(ctx, id)
	}
	return nil
}

// DownloadIncomes implements Service.DownloadIncomes.
func (m *MockClient) DownloadIncomes(ctx context.Context) ([]byte, error) {
	if m.DownloadIncomesFn != nil {
		return m.DownloadIncomesFn(ctx)
	}
	return []byte{}, nil
}

// GetDashboard implements Service.GetDashboard.
func (m *MockClient) GetDashboard(ctx context.Context) (*model.DashboardSummary, error) {
	if m.GetDashboardFn != nil {
		return m.GetDashboardFn(ctx)
	}
	return &model.DashboardSummary{}, nil
}

// ListBudgets implements Service.ListBudgets.
func (m *MockClient) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	if m.ListBudgetsFn != nil {
		return m.ListBudgetsFn(ctx)
	}
	return []model.Budget{}, nil
}

// SetBudget implements Service.SetBudget.
func (m *MockClient) SetBudget(ctx context.Context, budget model.Budget) (*model.Budget, error) {
	m.SetBudgetCalls = append(m.SetBudgetCalls, budget)

	if m.SetBudgetFn != nil {
		return m.SetBudgetFn(ctx, budget)
	}
	stored := budget
	return &stored, nil
}

// BudgetAlerts implements Service.BudgetAlerts.
func (m *MockClient) BudgetAlerts(ctx context.Context) ([]model.BudgetAlert, error) {
	if m.BudgetAlertsFn != nil {
		return m.BudgetAlertsFn(ctx)
	}
	return []model.BudgetAlert{}, nil
}

// ScanReceipt implements Service.ScanReceipt.
func (m *MockClient) ScanReceipt(ctx context.Context, imagePath string) (*model.ScanResult, error) {
	if m.ScanReceiptFn != nil {
		return m.ScanReceiptFn(ctx, imagePath)
	}
	return &model.ScanResult{}, nil
}
