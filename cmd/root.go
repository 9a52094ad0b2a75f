package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/jobfit/internal/batch"
	"github.com/spigell/jobfit/internal/scoring"
)

const (
	app = "jobfit"
)

type Config struct {
	Profile     string         `mapstructure:"profile"`
	Jobs        *JobsConfig    `mapstructure:"jobs"`
	ExcludeFile string         `mapstructure:"exclude-file"`
	Exclude     *ExcludeConfig `mapstructure:"exclude"`
	Scoring     *ScoringConfig `mapstructure:"scoring"`
	AI          *AIConfig      `mapstructure:"ai"`
	Cache       *CacheConfig   `mapstructure:"cache"`
}

type JobsConfig struct {
	Files  []string `mapstructure:"files"`
	DB     string   `mapstructure:"db"`
	Status string   `mapstructure:"status"`
	Limit  int      `mapstructure:"limit"`
}

type ExcludeConfig struct {
	Companies []string `mapstructure:"companies"`
}

type ScoringConfig struct {
	scoring.Config `mapstructure:",squash"`
	batch.Options  `mapstructure:",squash"`
	MinimumScore   int `mapstructure:"minimum-score"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type CacheConfig struct {
	Redis *RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password" json:"-"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobfit scores how well a candidate profile fits job postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"ai.gemini.api-key-file": "GEMINI_API_KEY_FILE",
		"jobs.db":                "JOBFIT_DB",
		"cache.redis.addr":       "REDIS_ADDR",
	}
	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("scoring.minimum-score", 50)
	viper.SetDefault("scoring.concurrency", batch.DefaultConcurrency)
	viper.SetDefault("jobs.status", "new")

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobfit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The run command cannot proceed without a config. Others work from flags and env alone.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" && runCmd.CalledAs() == "" {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Jobs == nil {
		config.Jobs = &JobsConfig{}
	}
	if config.Exclude == nil {
		config.Exclude = &ExcludeConfig{}
	}
	if config.Scoring == nil {
		config.Scoring = &ScoringConfig{}
	}
	if config.Cache == nil {
		config.Cache = &CacheConfig{}
	}

	return config, nil
}
