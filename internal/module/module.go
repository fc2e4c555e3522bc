package module

import (
	"camp-signup/internal/module/activity"
	"camp-signup/internal/module/camper"
	"camp-signup/internal/module/ping"
	"camp-signup/internal/module/signup"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&camper.ModuleCamper{},
		&activity.ModuleActivity{},
		&signup.ModuleSignup{},
	})
}
