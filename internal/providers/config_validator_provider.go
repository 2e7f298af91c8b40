package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"skillbot/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %w", v.Errors)
	}

	l := cv.conf.Limits
	if l.SessionMinMinutes > l.SessionMaxMinutes {
		return fmt.Errorf("invalid config: session minutes range %d..%d", l.SessionMinMinutes, l.SessionMaxMinutes)
	}
	if l.GoalMinMinutes > l.GoalMaxMinutes {
		return fmt.Errorf("invalid config: goal minutes range %d..%d", l.GoalMinMinutes, l.GoalMaxMinutes)
	}
	if l.SkillNameMin > l.SkillNameMax {
		return fmt.Errorf("invalid config: skill name length range %d..%d", l.SkillNameMin, l.SkillNameMax)
	}
	if cv.conf.Storage.Driver == "redis" && cv.conf.Redis.Addr == "" {
		return fmt.Errorf("invalid config: redis.addr is required for the redis storage driver")
	}
	if err := cv.conf.Catalog.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}
