package takeql

import (
	"log/slog"

	"github.com/nickyhof/takeql/db"
)

type Instance struct {
	Logger *slog.Logger
}

// Open returns an Instance whose engines log to logger. A nil logger discards
// all output.
func Open(logger *slog.Logger) *Instance {
	return &Instance{
		Logger: logger,
	}
}

func (instance *Instance) Engine() *db.Engine {
	return db.NewEngine(db.WithLogger(instance.Logger))
}
