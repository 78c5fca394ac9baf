package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/aglyzov/go-qptrie/qptrie"
)

type byteTrie = qptrie.Trie[[]byte, string]

// withTrie loads the input into a trie before running the action.
func withTrie(action func(*cli.Context, *byteTrie, *zap.Logger) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		log, err := newLogger(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		qp, err := loadTrie(ctx, log)
		if err != nil {
			return err
		}

		return action(ctx, qp, log)
	}
}

func newLogger(ctx *cli.Context) (*zap.Logger, error) {
	var cfg zap.Config

	if ctx.Bool(verboseFlag.Name) {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create a logger: %w", err)
	}

	return log.Named("qptrie"), nil
}

func loadTrie(ctx *cli.Context, log *zap.Logger) (*byteTrie, error) {
	var opts []qptrie.Option

	if ctx.IsSet(maxHeightFlag.Name) {
		opts = append(opts, qptrie.WithMaxHeight(ctx.Int(maxHeightFlag.Name)))
	}

	var (
		qp     = qptrie.New[[]byte, string](opts...)
		input  io.Reader
		source = ctx.String(inputFlag.Name)
	)

	switch source {
	case "", "-":
		input = ctx.App.Reader
		source = "stdin"
	default:
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()

		input = file
	}

	var (
		scanner                        = bufio.NewScanner(input)
		line, added, replaced, refused int
	)

	for scanner.Scan() {
		line++

		text := scanner.Text()
		if text == "" {
			continue
		}

		rawKey, val, _ := strings.Cut(text, "\t")

		key, err := parseKey(ctx, rawKey)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}

		_, exists := qp.Get(key)

		switch {
		case qp.Insert(key, val):
			added++
		case exists:
			replaced++
			log.Debug("value replaced", zap.String("key", rawKey), zap.Int("line", line))
		default:
			refused++
			log.Warn("key refused by the height limit", zap.String("key", rawKey), zap.Int("line", line))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	log.Info("trie loaded",
		zap.String("source", source),
		zap.Int("lines", line),
		zap.Int("added", added),
		zap.Int("replaced", replaced),
		zap.Int("refused", refused),
		zap.Int("len", qp.Len()),
	)

	return qp, nil
}

func parseKey(ctx *cli.Context, raw string) ([]byte, error) {
	if !ctx.Bool(hexFlag.Name) {
		if raw == "" {
			return nil, fmt.Errorf("empty key")
		}

		return []byte(raw), nil
	}

	key, err := hex.DecodeString(strings.ReplaceAll(raw, "_", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex key %q: %w", raw, err)
	}

	if len(key) == 0 {
		return nil, fmt.Errorf("empty key")
	}

	return key, nil
}

func formatKey(ctx *cli.Context, key []byte) string {
	if ctx.Bool(hexFlag.Name) {
		return hex.EncodeToString(key)
	}

	return string(key)
}
