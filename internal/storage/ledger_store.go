package storage

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"prorab-finance/internal/models"
)

// LedgerStore — доступ к сырым строкам журнала: доп. работы, оплаты,
// расходы. Строки создаются и удаляются независимо; все производные цифры
// пересчитываются из текущего состояния при каждом чтении, никакие
// агрегаты здесь не кэшируются.
type LedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// подзапрос для проверки принадлежности объекта пользователю
func (s *LedgerStore) ownedProjects(userID uint) *gorm.DB {
	return s.db.Model(&models.Project{}).Select("id").Where("user_id = ?", userID)
}

//
// ДОП. РАБОТЫ
//

func (s *LedgerStore) CreateWork(w *models.AdditionalWork) error {
	if err := s.db.Create(w).Error; err != nil {
		return fmt.Errorf("create additional work: %w", err)
	}
	return nil
}

func (s *LedgerStore) WorksByProject(projectID uint) ([]models.AdditionalWork, error) {
	var works []models.AdditionalWork
	if err := s.db.Where("project_id = ?", projectID).Order("date desc").Find(&works).Error; err != nil {
		return nil, fmt.Errorf("list additional works: %w", err)
	}
	return works, nil
}

// WorksByOwner возвращает все доп. работы пользователя, сгруппированные
// по id объекта — в таком виде их ждёт построитель отчёта.
func (s *LedgerStore) WorksByOwner(userID uint) (map[uint][]models.AdditionalWork, error) {
	var works []models.AdditionalWork
	if err := s.db.Where("project_id IN (?)", s.ownedProjects(userID)).Find(&works).Error; err != nil {
		return nil, fmt.Errorf("list additional works: %w", err)
	}
	byProject := map[uint][]models.AdditionalWork{}
	for _, w := range works {
		byProject[w.ProjectID] = append(byProject[w.ProjectID], w)
	}
	return byProject, nil
}

func (s *LedgerStore) DeleteWork(userID, id uint) error {
	res := s.db.Where("id = ? AND project_id IN (?)", id, s.ownedProjects(userID)).
		Delete(&models.AdditionalWork{})
	if res.Error != nil {
		return fmt.Errorf("delete additional work: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// ОПЛАТЫ
//

func (s *LedgerStore) CreatePayment(p *models.ClientPayment) error {
	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (s *LedgerStore) PaymentsByProject(projectID uint) ([]models.ClientPayment, error) {
	var payments []models.ClientPayment
	if err := s.db.Where("project_id = ?", projectID).Order("date desc").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (s *LedgerStore) PaymentsByOwner(userID uint) (map[uint][]models.ClientPayment, error) {
	var payments []models.ClientPayment
	if err := s.db.Where("project_id IN (?)", s.ownedProjects(userID)).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	byProject := map[uint][]models.ClientPayment{}
	for _, p := range payments {
		byProject[p.ProjectID] = append(byProject[p.ProjectID], p)
	}
	return byProject, nil
}

func (s *LedgerStore) DeletePayment(userID, id uint) error {
	res := s.db.Where("id = ? AND project_id IN (?)", id, s.ownedProjects(userID)).
		Delete(&models.ClientPayment{})
	if res.Error != nil {
		return fmt.Errorf("delete payment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

//
// РАСХОДЫ
//

// ExpenseFilter — фильтр выборки расходов. ProjectID nil — общие расходы
// бизнеса (без объекта). Верхняя граница даты включительно, до конца дня.
type ExpenseFilter struct {
	ProjectID *uint
	From      *time.Time
	To        *time.Time
}

func (s *LedgerStore) CreateExpense(e *models.Expense) error {
	if err := s.db.Create(e).Error; err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

func (s *LedgerStore) Expenses(userID uint, f ExpenseFilter) ([]models.Expense, error) {
	q := s.db.Where("user_id = ?", userID)
	if f.ProjectID != nil {
		q = q.Where("project_id = ?", *f.ProjectID)
	} else {
		q = q.Where("project_id IS NULL")
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date < ?", f.To.AddDate(0, 0, 1))
	}

	var expenses []models.Expense
	if err := q.Order("date desc").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// ObjectExpenses — все расходы пользователя, привязанные к объектам.
func (s *LedgerStore) ObjectExpenses(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND project_id IS NOT NULL", userID).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list object expenses: %w", err)
	}
	return expenses, nil
}

// GlobalExpenses — общие расходы бизнеса (без объекта).
func (s *LedgerStore) GlobalExpenses(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND project_id IS NULL", userID).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list global expenses: %w", err)
	}
	return expenses, nil
}

// ExpensesByProject — расходы одного объекта, без фильтра по датам
// (нужны для прибыли по объекту).
func (s *LedgerStore) ExpensesByProject(projectID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("project_id = ?", projectID).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list project expenses: %w", err)
	}
	return expenses, nil
}

func (s *LedgerStore) DeleteExpense(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{})
	if res.Error != nil {
		return fmt.Errorf("delete expense: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
