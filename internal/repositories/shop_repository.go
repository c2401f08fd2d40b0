package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	"github.com/homebase-labs/seller-marketplace/internal/utils"
)

type ShopRepository interface {
	CreateSaleRecord(ctx context.Context, sale *models.SaleRecord) error
	ListSales(ctx context.Context, q models.SaleQuery) ([]*models.SaleRecord, int, error)
	ListSalesInWindow(ctx context.Context, sellerID string, start, end time.Time) ([]*models.SaleRecord, error)
	CreateExpenseRecord(ctx context.Context, expense *models.ExpenseRecord) error
	GetExpenseByIDAndSeller(ctx context.Context, id uuid.UUID, sellerID string) (*models.ExpenseRecord, error)
	UpdateExpenseRecord(ctx context.Context, expense *models.ExpenseRecord) error
	DeleteExpenseRecord(ctx context.Context, id uuid.UUID) error
	ListExpenses(ctx context.Context, q models.ExpenseQuery) ([]*models.ExpenseRecord, int, error)
	ListExpensesInWindow(ctx context.Context, sellerID string, start, end time.Time) ([]*models.ExpenseRecord, error)
}

type shopRepository struct {
	DB *sql.DB
}

func NewShopRepo(db *sql.DB) ShopRepository {
	return &shopRepository{DB: db}
}

const saleColumns = `id, seller_id, order_id, catalog_entry_id, product_name, custom_name,
	quantity, selling_price, cost_price, total_amount, total_cost, profit, sale_type, category,
	is_weight_based, unit, image_url, customer_name, customer_phone, notes, sale_date, created_at, updated_at`

const expenseColumns = `id, seller_id, title, description, amount, category, type, reference,
	attachment_url, expense_date, created_at, updated_at`

func scanSaleRecord(row interface{ Scan(...any) error }) (*models.SaleRecord, error) {

	s := &models.SaleRecord{}

	var catalogID uuid.NullUUID

	err := row.Scan(&s.ID, &s.SellerID, &s.OrderID, &catalogID, &s.ProductName, &s.CustomName,
		&s.Quantity, &s.SellingPrice, &s.CostPrice, &s.TotalAmount, &s.TotalCost, &s.Profit,
		&s.SaleType, &s.Category, &s.IsWeightBased, &s.Unit, &s.ImageURL,
		&s.CustomerName, &s.CustomerPhone, &s.Notes, &s.SaleDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if catalogID.Valid {
		id := catalogID.UUID
		s.CatalogEntryID = &id
	}

	return s, nil
}

func scanExpenseRecord(row interface{ Scan(...any) error }) (*models.ExpenseRecord, error) {

	e := &models.ExpenseRecord{}

	err := row.Scan(&e.ID, &e.SellerID, &e.Title, &e.Description, &e.Amount, &e.Category,
		&e.Type, &e.Reference, &e.AttachmentURL, &e.ExpenseDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return e, nil
}

func (r *shopRepository) CreateSaleRecord(ctx context.Context, sale *models.SaleRecord) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO sale_records (id, seller_id, order_id, catalog_entry_id, product_name, custom_name,
			  quantity, selling_price, cost_price, total_amount, total_cost, profit, sale_type, category,
			  is_weight_based, unit, image_url, customer_name, customer_phone, notes, sale_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			  RETURNING created_at, updated_at`

	var catalogID any
	if sale.CatalogEntryID != nil {
		catalogID = *sale.CatalogEntryID
	}

	return r.DB.QueryRowContext(dbCtx, query,
		sale.ID, sale.SellerID, sale.OrderID, catalogID, sale.ProductName, sale.CustomName,
		sale.Quantity, sale.SellingPrice, sale.CostPrice, sale.TotalAmount, sale.TotalCost, sale.Profit,
		sale.SaleType, sale.Category, sale.IsWeightBased, sale.Unit, sale.ImageURL,
		sale.CustomerName, sale.CustomerPhone, sale.Notes, sale.SaleDate).
		Scan(&sale.CreatedAt, &sale.UpdatedAt)
}

func (r *shopRepository) ListSales(ctx context.Context, q models.SaleQuery) ([]*models.SaleRecord, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	conds := []string{}
	args := []any{}

	args = append(args, q.SellerID)
	conds = append(conds, fmt.Sprintf("seller_id = $%d", len(args)))

	if q.StartDate != nil {
		args = append(args, *q.StartDate)
		conds = append(conds, fmt.Sprintf("sale_date >= $%d", len(args)))
	}

	if q.EndDate != nil {
		args = append(args, *q.EndDate)
		conds = append(conds, fmt.Sprintf("sale_date <= $%d", len(args)))
	}

	if q.Category != "" {
		args = append(args, q.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	if q.CatalogEntryID != nil {
		args = append(args, *q.CatalogEntryID)
		conds = append(conds, fmt.Sprintf("catalog_entry_id = $%d", len(args)))
	}

	if q.SaleType != "" {
		args = append(args, q.SaleType)
		conds = append(conds, fmt.Sprintf("sale_type = $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conds, " AND ")

	var total int
	if err := r.DB.QueryRowContext(dbCtx, "SELECT COUNT(*) FROM sale_records"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	args = append(args, q.PageSize, offset)

	query := fmt.Sprintf("SELECT "+saleColumns+" FROM sale_records"+where+
		" ORDER BY sale_date DESC, id ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var sales []*models.SaleRecord

	for rows.Next() {
		s, err := scanSaleRecord(rows)
		if err != nil {
			return nil, 0, err
		}

		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return sales, total, nil
}

func (r *shopRepository) ListSalesInWindow(ctx context.Context, sellerID string, start, end time.Time) ([]*models.SaleRecord, error) {

	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := `SELECT ` + saleColumns + ` FROM sale_records
			  WHERE seller_id = $1 AND sale_date >= $2 AND sale_date <= $3
			  ORDER BY sale_date DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, sellerID, start, end)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var sales []*models.SaleRecord

	for rows.Next() {
		s, err := scanSaleRecord(rows)
		if err != nil {
			return nil, err
		}

		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *shopRepository) CreateExpenseRecord(ctx context.Context, expense *models.ExpenseRecord) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO expense_records (id, seller_id, title, description, amount, category, type, reference, attachment_url, expense_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		expense.ID, expense.SellerID, expense.Title, expense.Description, expense.Amount,
		expense.Category, expense.Type, expense.Reference, expense.AttachmentURL, expense.ExpenseDate).
		Scan(&expense.CreatedAt, &expense.UpdatedAt)
}

func (r *shopRepository) GetExpenseByIDAndSeller(ctx context.Context, id uuid.UUID, sellerID string) (*models.ExpenseRecord, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + expenseColumns + ` FROM expense_records WHERE id = $1 AND seller_id = $2`

	return scanExpenseRecord(r.DB.QueryRowContext(dbCtx, query, id, sellerID))
}

func (r *shopRepository) UpdateExpenseRecord(ctx context.Context, expense *models.ExpenseRecord) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE expense_records
			  SET title = $1, description = $2, amount = $3, category = $4, type = $5,
			      reference = $6, attachment_url = $7, expense_date = $8, updated_at = NOW()
			  WHERE id = $9
			  RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		expense.Title, expense.Description, expense.Amount, expense.Category, expense.Type,
		expense.Reference, expense.AttachmentURL, expense.ExpenseDate, expense.ID).
		Scan(&expense.UpdatedAt)
}

func (r *shopRepository) DeleteExpenseRecord(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM expense_records WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *shopRepository) ListExpenses(ctx context.Context, q models.ExpenseQuery) ([]*models.ExpenseRecord, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	conds := []string{}
	args := []any{}

	args = append(args, q.SellerID)
	conds = append(conds, fmt.Sprintf("seller_id = $%d", len(args)))

	if q.StartDate != nil {
		args = append(args, *q.StartDate)
		conds = append(conds, fmt.Sprintf("expense_date >= $%d", len(args)))
	}

	if q.EndDate != nil {
		args = append(args, *q.EndDate)
		conds = append(conds, fmt.Sprintf("expense_date <= $%d", len(args)))
	}

	if q.Category != "" {
		args = append(args, q.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	if q.Type != "" {
		args = append(args, q.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conds, " AND ")

	var total int
	if err := r.DB.QueryRowContext(dbCtx, "SELECT COUNT(*) FROM expense_records"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	args = append(args, q.PageSize, offset)

	query := fmt.Sprintf("SELECT "+expenseColumns+" FROM expense_records"+where+
		" ORDER BY expense_date DESC, id ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var expenses []*models.ExpenseRecord

	for rows.Next() {
		e, err := scanExpenseRecord(rows)
		if err != nil {
			return nil, 0, err
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

func (r *shopRepository) ListExpensesInWindow(ctx context.Context, sellerID string, start, end time.Time) ([]*models.ExpenseRecord, error) {

	dbCtx, cancel := utils.WithReportTimeout(ctx)
	defer cancel()

	query := `SELECT ` + expenseColumns + ` FROM expense_records
			  WHERE seller_id = $1 AND expense_date >= $2 AND expense_date <= $3
			  ORDER BY expense_date DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, sellerID, start, end)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var expenses []*models.ExpenseRecord

	for rows.Next() {
		e, err := scanExpenseRecord(rows)
		if err != nil {
			return nil, err
		}

		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}
