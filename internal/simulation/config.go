package simulation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/osse101/AquaponicsSim_Go/internal/bot"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
)

// Config controls a batch run. Zero values are not defaults; start from
// DefaultConfig and override.
type Config struct {
	MaxTurns            int      `toml:"max_turns" json:"max_turns" validate:"gt=0"`
	BankruptcyThreshold float64  `toml:"bankruptcy_threshold" json:"bankruptcy_threshold"`
	SuccessThreshold    float64  `toml:"success_threshold" json:"success_threshold" validate:"gtfield=BankruptcyThreshold"`
	BatchSize           int      `toml:"batch_size" json:"batch_size" validate:"gt=0"`
	MaxActionsPerDay    int      `toml:"max_actions_per_day" json:"max_actions_per_day" validate:"gte=0"`
	SnapshotInterval    int      `toml:"snapshot_interval" json:"snapshot_interval" validate:"gt=0"`
	Workers             int      `toml:"workers" json:"workers" validate:"gt=0"`
	Seed                int64    `toml:"seed" json:"seed"`
	Strategies          []string `toml:"strategies" json:"strategies" validate:"min=1,dive,oneof=conservative aggressive balanced random"`
}

// DefaultConfig runs a year per game across every strategy
func DefaultConfig() Config {
	names := make([]string, 0, len(bot.Strategies()))
	for _, s := range bot.Strategies() {
		names = append(names, string(s))
	}
	return Config{
		MaxTurns:            DefaultMaxTurns,
		BankruptcyThreshold: DefaultBankruptcyThreshold,
		SuccessThreshold:    DefaultSuccessThreshold,
		BatchSize:           DefaultBatchSize,
		MaxActionsPerDay:    DefaultMaxActionsPerDay,
		SnapshotInterval:    DefaultSnapshotInterval,
		Workers:             DefaultWorkers,
		Seed:                DefaultSeed,
		Strategies:          names,
	}
}

// LoadConfig reads a TOML file over the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf(ErrMsgOpenConfigFmt, err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf(ErrMsgDecodeConfigFmt, path, err)
	}
	return cfg, cfg.Validate()
}

var configValidator = validator.New()

// Validate checks ranges and strategy names
func (c Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf(ErrMsgInvalidConfigFmt, domain.ErrInvalidInput, err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf(ErrMsgInvalidConfigFmt, domain.ErrInvalidInput, strings.Join(fields, ", "))
}

// StrategyList converts the configured names. Call Validate first.
func (c Config) StrategyList() []bot.Strategy {
	out := make([]bot.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		out = append(out, bot.Strategy(name))
	}
	return out
}
