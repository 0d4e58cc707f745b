package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/infrastructure/database/postgres"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type healthcheckResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

func HealthcheckHandler(conn *postgres.Connection) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dbStatus := "connected"
		if err := conn.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("healthcheck: database unreachable")
			dbStatus = "disconnected"
		}

		response := healthcheckResponse{
			Status:    "ok",
			Database:  dbStatus,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
