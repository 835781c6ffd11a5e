package dto

type StatusResponse struct {
	CatalogSource   string `json:"catalog_source"`
	TotalCareers    int    `json:"total_careers"`
	CatalogHealthy  bool   `json:"catalog_healthy"`
	DatabaseHealthy bool   `json:"database_healthy"`
	CacheHealthy    bool   `json:"cache_healthy"`
	ServerTime      string `json:"server_time"`
}
