package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-analytics-api/infrastructure/repository"
	"github.com/vfg2006/retail-analytics-api/internal/config"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
	"github.com/vfg2006/retail-analytics-api/internal/usecases/analyzing"
)

const batchSize = 1000

// Importador do CSV de varejo para o banco. Normaliza os cabeçalhos
// ("Customer ID" vira "CustomerID"), mantém os valores brutos como texto e
// insere em lotes.
func main() {
	csvPath := flag.String("csv", "data.csv", "caminho do arquivo CSV de transações")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	repo := repository.NewTransactionRepository(conn)

	total, err := importCSV(*csvPath, repo)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao importar CSV")
	}

	logrus.WithField("total", total).Info("Importação concluída")
}

func importCSV(path string, repo repository.TransactionRepository) (int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao abrir o arquivo CSV")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao ler o cabeçalho do CSV")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		// "Customer ID" -> "CustomerID"
		columns[strings.ReplaceAll(strings.TrimSpace(name), " ", "")] = i
	}

	for _, required := range []string{"Invoice", "StockCode", "Quantity", "Price", "Country"} {
		if _, ok := columns[required]; !ok {
			return 0, errors.Errorf("coluna obrigatória ausente no CSV: %s", required)
		}
	}

	bar := progressbar.Default(-1, "importando transações")

	var total int64
	batch := make([]*domain.RawTransaction, 0, batchSize)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, errors.Wrap(err, "erro ao ler linha do CSV")
		}

		batch = append(batch, rowToRaw(row, columns))

		if len(batch) >= batchSize {
			inserted, err := repo.InsertBatch(batch)
			if err != nil {
				return total, errors.Wrap(err, "erro ao inserir lote")
			}
			total += inserted
			_ = bar.Add(len(batch))
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		inserted, err := repo.InsertBatch(batch)
		if err != nil {
			return total, errors.Wrap(err, "erro ao inserir lote final")
		}
		total += inserted
		_ = bar.Add(len(batch))
	}

	return total, nil
}

func rowToRaw(row []string, columns map[string]int) *domain.RawTransaction {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	// Datas interpretáveis são normalizadas para RFC3339; o restante fica
	// como veio, e a coerção do loader decide na leitura.
	invoiceDate := field("InvoiceDate")
	if parsed := analyzing.CoerceInvoiceDate(invoiceDate); parsed != nil {
		invoiceDate = parsed.Format(time.RFC3339)
	}

	return &domain.RawTransaction{
		Invoice:     field("Invoice"),
		StockCode:   field("StockCode"),
		Description: field("Description"),
		Quantity:    field("Quantity"),
		Price:       field("Price"),
		CustomerID:  field("CustomerID"),
		InvoiceDate: invoiceDate,
		Country:     field("Country"),
	}
}
