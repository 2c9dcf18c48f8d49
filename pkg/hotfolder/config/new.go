package config

import (
	. "github.com/black-desk/lib/go/errwrap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func New(opts ...Opt) (ret *Config, err error) {
	defer Wrap(&err, "load configuration")

	cfg := &Config{}
	for i := range opts {
		cfg, err = opts[i](cfg)
		if err != nil {
			return
		}
	}

	if cfg.log == nil {
		cfg.log = zap.NewNop().Sugar()
	}

	if cfg.raw != nil {
		err = yaml.Unmarshal(cfg.raw, cfg)
		if err != nil {
			Wrap(&err, "unmarshal configuration")
			return
		}
	}

	err = cfg.check()
	if err != nil {
		return
	}

	ret = cfg
	return
}

type Opt func(cfg *Config) (ret *Config, err error)

func WithContent(content []byte) Opt {
	return func(cfg *Config) (ret *Config, err error) {
		cfg.raw = content
		ret = cfg
		return
	}
}

// WithArgs applies the positional command line arguments
// [watchPath] [moveToFolder] [printFlag] on top of the file content.
// Argument application happens after unmarshalling, inside check, so
// an argument always wins over the file.
func WithArgs(args []string) Opt {
	return func(cfg *Config) (ret *Config, err error) {
		if len(args) > 3 {
			err = ErrTooManyArguments
			return
		}

		cfg.args = args
		ret = cfg
		return
	}
}

func WithLogger(log *zap.SugaredLogger) Opt {
	return func(cfg *Config) (ret *Config, err error) {
		cfg.log = log
		ret = cfg
		return
	}
}
