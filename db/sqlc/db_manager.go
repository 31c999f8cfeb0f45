package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Saves     *SaveManager
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Saves:     NewSaveManager(queries),
		Analytics: NewAnalyticsManager(queries),
	}
}
