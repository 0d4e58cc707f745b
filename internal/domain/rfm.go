package domain

// CustomerRFM é a linha de características Recency/Frequency/Monetary de um
// cliente, com o rótulo de cluster atribuído pela segmentação. Cluster vale
// 0 quando a clusterização é pulada por falta de dados.
//
// Invariantes: Recency >= 0, Frequency > 0, Monetary > 0. Linhas que violam
// qualquer uma são descartadas antes da clusterização.
type CustomerRFM struct {
	CustomerID int64   `json:"CustomerID"`
	Recency    int     `json:"Recency"`
	Frequency  int     `json:"Frequency"`
	Monetary   float64 `json:"Monetary"`
	Cluster    int     `json:"cluster"`
}
