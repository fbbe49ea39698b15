package cmd

type Config struct {
	HTTPPort               string
	BackendBaseURL         string
	SessionFile            string
	OpenAPIPath            string
	CatalogRefreshSchedule string
}
