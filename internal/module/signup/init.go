package signup

import (
	"log/slog"

	"camp-signup/internal/global/logger"
)

var log *slog.Logger

type ModuleSignup struct{}

func (p *ModuleSignup) GetName() string {
	return "Signup"
}

func (p *ModuleSignup) Init() {
	log = logger.New("Signup")
}
