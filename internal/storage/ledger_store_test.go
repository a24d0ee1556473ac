package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prorab-finance/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLedgerStore_WorksAndPayments(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectStore(db)
	ledger := NewLedgerStore(db)

	p, err := projects.Create(1, "Дом", 1000)
	require.NoError(t, err)

	err = ledger.CreateWork(&models.AdditionalWork{
		ProjectID: p.ID, Date: day(2024, 6, 1), Amount: 200, Description: "Утепление",
	})
	require.NoError(t, err)
	err = ledger.CreatePayment(&models.ClientPayment{
		ProjectID: p.ID, Date: day(2024, 6, 5), Amount: 500, PaymentMethodID: "m1",
	})
	require.NoError(t, err)

	works, err := ledger.WorksByProject(p.ID)
	require.NoError(t, err)
	require.Len(t, works, 1)
	require.Equal(t, 200.0, works[0].Amount)

	payments, err := ledger.PaymentsByProject(p.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	byProject, err := ledger.PaymentsByOwner(1)
	require.NoError(t, err)
	require.Len(t, byProject[p.ID], 1)

	// чужие строки в выборку по владельцу не попадают
	other, err := projects.Create(2, "Чужой дом", 500)
	require.NoError(t, err)
	err = ledger.CreatePayment(&models.ClientPayment{
		ProjectID: other.ID, Date: day(2024, 6, 5), Amount: 100,
	})
	require.NoError(t, err)

	byProject, err = ledger.PaymentsByOwner(1)
	require.NoError(t, err)
	require.Len(t, byProject, 1)
}

func TestLedgerStore_DeleteScoping(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectStore(db)
	ledger := NewLedgerStore(db)

	p, err := projects.Create(1, "Дом", 1000)
	require.NoError(t, err)

	work := models.AdditionalWork{ProjectID: p.ID, Date: day(2024, 6, 1), Amount: 200}
	require.NoError(t, ledger.CreateWork(&work))

	// чужой пользователь удалить не может
	require.ErrorIs(t, ledger.DeleteWork(2, work.ID), ErrNotFound)

	require.NoError(t, ledger.DeleteWork(1, work.ID))
	works, err := ledger.WorksByProject(p.ID)
	require.NoError(t, err)
	require.Empty(t, works)

	// повторное удаление — not found
	require.ErrorIs(t, ledger.DeleteWork(1, work.ID), ErrNotFound)
}

func TestLedgerStore_ExpenseFilter(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectStore(db)
	ledger := NewLedgerStore(db)

	p, err := projects.Create(1, "Дом", 1000)
	require.NoError(t, err)
	pid := p.ID

	require.NoError(t, ledger.CreateExpense(&models.Expense{
		UserID: 1, ProjectID: &pid, Date: day(2024, 6, 10), Amount: 50, CategoryID: "c1",
	}))
	require.NoError(t, ledger.CreateExpense(&models.Expense{
		UserID: 1, Date: day(2024, 6, 15), Amount: 30, CategoryID: "c1",
	}))
	require.NoError(t, ledger.CreateExpense(&models.Expense{
		UserID: 1, Date: day(2024, 7, 1), Amount: 70, CategoryID: "c2",
	}))

	// без project_id — только общие расходы
	global, err := ledger.Expenses(1, ExpenseFilter{})
	require.NoError(t, err)
	require.Len(t, global, 2)

	object, err := ledger.Expenses(1, ExpenseFilter{ProjectID: &pid})
	require.NoError(t, err)
	require.Len(t, object, 1)
	require.Equal(t, 50.0, object[0].Amount)

	// верхняя граница включительно: расход за 15-е попадает в [1, 15]
	from, to := day(2024, 6, 1), day(2024, 6, 15)
	filtered, err := ledger.Expenses(1, ExpenseFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	require.Equal(t, 30.0, filtered[0].Amount)

	objAll, err := ledger.ObjectExpenses(1)
	require.NoError(t, err)
	require.Len(t, objAll, 1)

	globAll, err := ledger.GlobalExpenses(1)
	require.NoError(t, err)
	require.Len(t, globAll, 2)
}

func TestReferenceStore(t *testing.T) {
	refs := NewReferenceStore(newTestDB(t))

	cat, err := refs.CreateCategory(1, "Материалы")
	require.NoError(t, err)
	require.NotEmpty(t, cat.ID)

	method, err := refs.CreatePaymentMethod(1, "Наличные")
	require.NoError(t, err)

	names, err := refs.CategoryNames(1)
	require.NoError(t, err)
	require.Equal(t, "Материалы", names[cat.ID])

	methodNames, err := refs.PaymentMethodNames(1)
	require.NoError(t, err)
	require.Equal(t, "Наличные", methodNames[method.ID])

	// чужому пользователю справочник не виден
	names, err = refs.CategoryNames(2)
	require.NoError(t, err)
	require.Empty(t, names)

	require.ErrorIs(t, refs.DeleteCategory(2, cat.ID), ErrNotFound)
	require.NoError(t, refs.DeleteCategory(1, cat.ID))
	require.NoError(t, refs.DeletePaymentMethod(1, method.ID))
}
