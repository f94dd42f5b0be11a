// Command strsplit reads lines from a file or stdin and writes each line
// filtered, normalized and tokenized to stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	strsplit "github.com/jamesainslie/go-strsplit"
	"github.com/jamesainslie/go-strsplit/analyzer"
	"github.com/jamesainslie/go-strsplit/filter"
	"github.com/jamesainslie/go-strsplit/lexicon"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

const (
	envPrefix = "STRSPLIT"

	// stdinSentinel ends interactive input.
	stdinSentinel = "EOS"
)

// settings is the resolved command configuration.
type settings struct {
	Input       string `mapstructure:"input"`
	PreFilter   string `mapstructure:"pre_filter"`
	NoNormalize bool   `mapstructure:"no_normalize"`
	NoTokenize  bool   `mapstructure:"no_tokenize"`
	MecabDic    string `mapstructure:"mecab_dic"`
	UserDic     string `mapstructure:"user_dic"`
	UseBaseform bool   `mapstructure:"use_baseform"`
	TokenFilter string `mapstructure:"token_filter"`
	UseWordnet  bool   `mapstructure:"use_wordnet"`
	Lexicon     string `mapstructure:"lexicon"`
	CutProlong  bool   `mapstructure:"cut_prolong"`
	ChunkLimit  int    `mapstructure:"chunk_limit"`
	Workers     int    `mapstructure:"workers"`
	LogLevel    string `mapstructure:"log_level"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "strsplit: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "strsplit [flags]",
		Short: "Filter, normalize and tokenize text line by line",
		Long: `strsplit reads lines from --input (or stdin, until a line "EOS") and
writes one processed line per input line to stdout.

Every flag may also be set as a STRSPLIT_* environment variable (a .env file
in the working directory is loaded first) or in a YAML file given by --config.`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var s settings
			if err := v.Unmarshal(&s); err != nil {
				return fmt.Errorf("decoding settings: %w", err)
			}
			return run(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.String("input", "", "input file (default: stdin, terminated by an EOS line)")
	f.String("pre_filter", filter.DefaultPreFilter, "regular expression removed before normalization (empty disables)")
	f.Bool("no_normalize", false, "disable NFKC normalization and case folding")
	f.Bool("no_tokenize", false, "disable morphological analysis")
	f.String("mecab_dic", "", `kagome dictionary file ("ipa" or empty for the embedded IPA dictionary)`)
	f.String("user_dic", "", "kagome user dictionary file")
	f.Bool("use_baseform", false, "output base forms instead of surfaces")
	f.String("token_filter", "", "regular expression removed from every output token")
	f.Bool("use_wordnet", false, "replace tokens with their lexicon base form")
	f.String("lexicon", lexicon.BackendAuto, "lexicon backend: auto, kagome, english or snowball")
	f.Bool("cut_prolong", false, "trim a trailing prolong mark from long tokens")
	f.Int("chunk_limit", analyzer.DefaultMaxInput, "largest chunk in bytes handed to the analyzer")
	f.Int("workers", 1, "analyzer sessions; lines are processed in batches of this size")
	f.String("log_level", "warn", "log level: debug, info, warn or error")
	f.String("config", "", "optional YAML config file")

	return cmd
}

// loadConfig layers flags over STRSPLIT_* environment variables over the
// config file over flag defaults.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	_ = godotenv.Load()

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return nil
}

func run(ctx context.Context, s settings, stdin io.Reader, stdout, stderr io.Writer) error {
	logger, err := newLogger(s.LogLevel, stderr)
	if err != nil {
		return err
	}

	in := stdin
	sentinel := stdinSentinel
	if s.Input != "" {
		file, err := os.Open(s.Input)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", strsplit.ErrInputNotFound, s.Input)
			}
			return fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = file.Close() }()
		in = file
		sentinel = ""
	}

	sp, err := strsplit.New(options(s, sentinel, logger)...)
	if err != nil {
		return err
	}
	defer func() { _ = sp.Close() }()

	logger.Debug("processing", "input", s.Input, "workers", s.Workers, "chunk_limit", s.ChunkLimit)
	return sp.Run(ctx, in, stdout)
}

func options(s settings, sentinel string, logger *slog.Logger) []strsplit.Option {
	opts := []strsplit.Option{
		strsplit.WithLogger(logger),
		strsplit.WithPreFilter(s.PreFilter),
		strsplit.WithDictionary(s.MecabDic),
		strsplit.WithUserDictionary(s.UserDic),
		strsplit.WithBaseForm(s.UseBaseform),
		strsplit.WithTokenFilter(s.TokenFilter),
		strsplit.WithCutProlong(s.CutProlong),
		strsplit.WithChunkLimit(s.ChunkLimit),
		strsplit.WithPoolSize(s.Workers),
		strsplit.WithSentinel(sentinel),
	}
	if s.NoNormalize {
		opts = append(opts, strsplit.WithoutNormalize())
	}
	if s.NoTokenize {
		opts = append(opts, strsplit.WithoutTokenize())
	}
	if s.UseWordnet {
		opts = append(opts, strsplit.WithLexiconBackend(s.Lexicon))
	}
	return opts
}

func versionString() string {
	if commit == "" {
		return version
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
