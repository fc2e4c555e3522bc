package camper

import (
	"log/slog"

	"camp-signup/internal/global/logger"
)

var log *slog.Logger

type ModuleCamper struct{}

func (p *ModuleCamper) GetName() string {
	return "Camper"
}

func (p *ModuleCamper) Init() {
	log = logger.New("Camper")
}
