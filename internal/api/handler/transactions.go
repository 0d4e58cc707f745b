package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/retail-analytics-api/pkg/utils"
)

// transactionPayload é o corpo tipado de criação/atualização de transações.
// Ponteiros distinguem "campo ausente" de "valor zero".
type transactionPayload struct {
	Invoice     *string  `json:"Invoice"`
	StockCode   *string  `json:"StockCode"`
	Description *string  `json:"Description"`
	Quantity    *int     `json:"Quantity"`
	Price       *float64 `json:"Price"`
	CustomerID  *int64   `json:"CustomerID"`
	InvoiceDate *string  `json:"InvoiceDate"`
	Country     *string  `json:"Country"`
}

// ListTransactions lista transações normalizadas com filtros opcionais
func ListTransactions(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, err := parseDateRange(r)
		if err != nil {
			logrus.WithError(err).Warn("transactions: invalid date parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem usar o formato YYYY-MM-DD", nil)
			return
		}

		limit := cfg.Analytics.DefaultListLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err = strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
		}

		records := analyzing.FilterByDateRange(service.Load(parseRecordFilter(r)), window)
		if len(records) > limit {
			records = records[:limit]
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logrus.WithError(err).Error("transactions: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// CreateTransaction insere uma nova transação no record store
func CreateTransaction(repo repository.TransactionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload transactionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.WithError(err).Warn("transactions: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if payload.Invoice == nil || *payload.Invoice == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Invoice é obrigatório", nil)
			return
		}

		record, err := payloadToRaw(&payload)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		// Sem data informada, a transação recebe o instante atual
		if record.InvoiceDate == "" {
			record.InvoiceDate = time.Now().UTC().Format(time.RFC3339)
		}

		id, err := repo.Insert(record)
		if err != nil {
			logrus.WithError(err).Error("transactions: failed to insert record")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao inserir transação", nil)
			return
		}

		logrus.WithField("transaction_id", id).Info("transactions: record created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(map[string]string{"inserted_id": id}); err != nil {
			logrus.WithError(err).Error("transactions: failed to encode response")
		}
	})
}

// UpdateTransaction atualiza campos de uma transação existente
func UpdateTransaction(repo repository.TransactionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da transação não fornecido", nil)
			return
		}

		var payload transactionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logrus.WithError(err).Warn("transactions: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		fields, err := payloadToFields(&payload)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		if len(fields) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum campo para atualizar", nil)
			return
		}

		modified, err := repo.Update(id, fields)
		if err != nil {
			logrus.WithError(err).WithField("transaction_id", id).Error("transactions: failed to update record")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar transação", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"transaction_id": id,
			"modified":       modified,
		}).Info("transactions: record updated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int64{"modified": modified}); err != nil {
			logrus.WithError(err).Error("transactions: failed to encode response")
		}
	})
}

// DeleteTransaction remove uma transação do record store
func DeleteTransaction(repo repository.TransactionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da transação não fornecido", nil)
			return
		}

		deleted, err := repo.Delete(id)
		if err != nil {
			logrus.WithError(err).WithField("transaction_id", id).Error("transactions: failed to delete record")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover transação", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"transaction_id": id,
			"deleted":        deleted,
		}).Info("transactions: record deleted")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int64{"deleted": deleted}); err != nil {
			logrus.WithError(err).Error("transactions: failed to encode response")
		}
	})
}

func payloadToRaw(payload *transactionPayload) (*domain.RawTransaction, error) {
	record := &domain.RawTransaction{}

	if payload.Invoice != nil {
		record.Invoice = *payload.Invoice
	}
	if payload.StockCode != nil {
		record.StockCode = *payload.StockCode
	}
	if payload.Description != nil {
		record.Description = *payload.Description
	}
	if payload.Quantity != nil {
		record.Quantity = strconv.Itoa(*payload.Quantity)
	}
	if payload.Price != nil {
		record.Price = strconv.FormatFloat(*payload.Price, 'f', -1, 64)
	}
	if payload.CustomerID != nil {
		record.CustomerID = strconv.FormatInt(*payload.CustomerID, 10)
	}
	if payload.Country != nil {
		record.Country = *payload.Country
	}
	if payload.InvoiceDate != nil && *payload.InvoiceDate != "" {
		date, err := utils.ParseDate(*payload.InvoiceDate)
		if err != nil {
			return nil, err
		}
		record.InvoiceDate = date.Format(time.RFC3339)
	}

	return record, nil
}

func payloadToFields(payload *transactionPayload) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if payload.Invoice != nil {
		fields["invoice"] = *payload.Invoice
	}
	if payload.StockCode != nil {
		fields["stock_code"] = *payload.StockCode
	}
	if payload.Description != nil {
		fields["description"] = *payload.Description
	}
	if payload.Quantity != nil {
		fields["quantity"] = strconv.Itoa(*payload.Quantity)
	}
	if payload.Price != nil {
		fields["price"] = strconv.FormatFloat(*payload.Price, 'f', -1, 64)
	}
	if payload.CustomerID != nil {
		fields["customer_id"] = strconv.FormatInt(*payload.CustomerID, 10)
	}
	if payload.Country != nil {
		fields["country"] = *payload.Country
	}
	if payload.InvoiceDate != nil && *payload.InvoiceDate != "" {
		date, err := utils.ParseDate(*payload.InvoiceDate)
		if err != nil {
			return nil, err
		}
		fields["invoice_date"] = date.Format(time.RFC3339)
	}

	return fields, nil
}
