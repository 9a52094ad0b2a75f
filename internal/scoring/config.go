package scoring

import (
	"time"

	"github.com/spigell/jobfit/internal/mismatch"
)

// Config is the explicit configuration of the scoring engine.
type Config struct {
	// DefaultLocation is shown to the semantic matcher when a job has no location.
	DefaultLocation string `mapstructure:"default-location"`
	// RelevantSkillThreshold is the number of matched skills that excuses an industry mismatch.
	RelevantSkillThreshold int `mapstructure:"relevant-skill-threshold"`
	// Now is the clock used for experience aggregation.
	Now func() time.Time `mapstructure:"-" json:"-"`
}

func (c Config) withDefaults() Config {
	if c.RelevantSkillThreshold <= 0 {
		c.RelevantSkillThreshold = mismatch.DefaultRelevantSkillThreshold
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
