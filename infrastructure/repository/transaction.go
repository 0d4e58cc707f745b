package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

const (
	transactionsTable = "transactions t"
)

//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks

// TransactionRepository é o record store de transações de varejo. Fetch
// suporta apenas os predicados exigidos pelo núcleo: igualdade exata de
// Invoice e pertencimento a um conjunto de países.
type TransactionRepository interface {
	Fetch(filter *domain.RecordFilter, limit uint64) ([]*domain.RawTransaction, error)
	Insert(record *domain.RawTransaction) (string, error)
	InsertBatch(records []*domain.RawTransaction) (int64, error)
	Update(id string, fields map[string]interface{}) (int64, error)
	Delete(id string) (int64, error)
}

type transactionRepository struct {
	conn postgres.Queryer
}

func NewTransactionRepository(conn postgres.Queryer) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) Fetch(filter *domain.RecordFilter, limit uint64) ([]*domain.RawTransaction, error) {
	builder := squirrel.
		Select("t.id, t.invoice, t.stock_code, t.description, t.quantity, t.price, t.customer_id, t.invoice_date, t.country").
		From(transactionsTable).
		OrderBy("t.id ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.Invoice != "" {
			builder = builder.Where(squirrel.Eq{"t.invoice": filter.Invoice})
		}
		if len(filter.Countries) > 0 {
			builder = builder.Where(squirrel.Eq{"t.country": filter.Countries})
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RawTransaction, 0)
	for rows.Next() {
		record, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *transactionRepository) Insert(record *domain.RawTransaction) (string, error) {
	id := record.ID
	if id == "" {
		var err error
		id, err = utils.GenerateID()
		if err != nil {
			return "", fmt.Errorf("erro ao gerar id da transação: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("transactions").
		Columns("id", "invoice", "stock_code", "description", "quantity", "price", "customer_id", "invoice_date", "country").
		Values(
			id,
			record.Invoice,
			record.StockCode,
			record.Description,
			record.Quantity,
			record.Price,
			record.CustomerID,
			record.InvoiceDate,
			record.Country,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("erro ao executar a query: %w", err)
	}

	return id, nil
}

// InsertBatch insere um lote de transações em um único statement. Usado pelo
// importador de CSV.
func (r *transactionRepository) InsertBatch(records []*domain.RawTransaction) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	builder := squirrel.StatementBuilder.
		Insert("transactions").
		Columns("id", "invoice", "stock_code", "description", "quantity", "price", "customer_id", "invoice_date", "country").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		id := record.ID
		if id == "" {
			var err error
			id, err = utils.GenerateID()
			if err != nil {
				return 0, fmt.Errorf("erro ao gerar id da transação: %w", err)
			}
		}

		builder = builder.Values(
			id,
			record.Invoice,
			record.StockCode,
			record.Description,
			record.Quantity,
			record.Price,
			record.CustomerID,
			record.InvoiceDate,
			record.Country,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *transactionRepository) Update(id string, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("nenhum campo para atualizar")
	}

	builder := squirrel.StatementBuilder.
		Update("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	for column, value := range fields {
		builder = builder.Set(column, value)
	}
	builder = builder.Set("updated_at", squirrel.Expr("NOW()"))

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *transactionRepository) Delete(id string) (int64, error) {
	query, args, err := squirrel.
		Delete("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *transactionRepository) scanTransaction(rows *sql.Rows) (*domain.RawTransaction, error) {
	record := &domain.RawTransaction{}
	var invoice, stockCode, description, quantity, price, customerID, invoiceDate, country sql.NullString

	err := rows.Scan(
		&record.ID,
		&invoice,
		&stockCode,
		&description,
		&quantity,
		&price,
		&customerID,
		&invoiceDate,
		&country,
	)
	if err != nil {
		return nil, err
	}

	record.Invoice = invoice.String
	record.StockCode = stockCode.String
	record.Description = description.String
	record.Quantity = quantity.String
	record.Price = price.String
	record.CustomerID = customerID.String
	record.InvoiceDate = invoiceDate.String
	record.Country = country.String

	return record, nil
}
