package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	keyFlag = cli.StringFlag{
		Name:     "key",
		Aliases:  []string{"k"},
		Usage:    "the key to look up",
		Required: true,
	}
	prefixFlag = cli.StringFlag{
		Name:    "prefix",
		Aliases: []string{"p"},
		Usage:   "list keys starting with this prefix, all keys if empty",
	}
	includePrefixFlag = cli.BoolFlag{
		Name:  "include-prefix",
		Usage: "list the prefix itself if it is a key",
	}
	limitFlag = cli.IntFlag{
		Name:  "limit",
		Usage: "stop after this many keys, no limit if 0",
	}
	strictFlag = cli.BoolFlag{
		Name:  "strict",
		Usage: "find the first key strictly greater than the given one",
	}
)

var GetCmd = cli.Command{
	Action: withTrie(doGet),
	Name:   "get",
	Usage:  "prints the value stored under a key",
	Flags: []cli.Flag{
		&keyFlag,
	},
}

var ScanCmd = cli.Command{
	Action: withTrie(doScan),
	Name:   "scan",
	Usage:  "lists keys sharing a prefix in ascending order",
	Flags: []cli.Flag{
		&prefixFlag,
		&includePrefixFlag,
		&limitFlag,
	},
}

var SeekCmd = cli.Command{
	Action: withTrie(doSeek),
	Name:   "seek",
	Usage:  "prints the first key greater than or equal to the given one",
	Flags: []cli.Flag{
		&keyFlag,
		&strictFlag,
	},
}

var CheckCmd = cli.Command{
	Action: withTrie(doCheck),
	Name:   "check",
	Usage:  "verifies the trie structure and prints its stats",
}

var DumpCmd = cli.Command{
	Action: withTrie(doDump),
	Name:   "dump",
	Usage:  "prints the trie structure",
}

func doGet(ctx *cli.Context, qp *byteTrie, _ *zap.Logger) error {
	key, err := parseKey(ctx, ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}

	val, ok := qp.Get(key)
	if !ok {
		return fmt.Errorf("key %s not found", formatKey(ctx, key))
	}

	_, err = fmt.Fprintln(ctx.App.Writer, val)

	return err
}

func doScan(ctx *cli.Context, qp *byteTrie, log *zap.Logger) error {
	var prefix []byte

	if raw := ctx.String(prefixFlag.Name); raw != "" {
		var err error
		if prefix, err = parseKey(ctx, raw); err != nil {
			return err
		}
	}

	it := qp.PrefixIter(prefix)
	if ctx.Bool(includePrefixFlag.Name) {
		it.IncludePrefix()
	}

	var (
		limit = ctx.Int(limitFlag.Name)
		count int
	)

	for key, val := range it.All() {
		if limit > 0 && count == limit {
			break
		}

		if _, err := fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", formatKey(ctx, key), val); err != nil {
			return err
		}

		count++
	}

	log.Debug("scan done", zap.Binary("prefix", prefix), zap.Int("count", count))

	return nil
}

func doSeek(ctx *cli.Context, qp *byteTrie, _ *zap.Logger) error {
	key, err := parseKey(ctx, ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}

	seek := qp.NextGE
	if ctx.Bool(strictFlag.Name) {
		seek = qp.NextGT
	}

	found, val, ok := seek(key)
	if !ok {
		return fmt.Errorf("no key after %s", formatKey(ctx, key))
	}

	_, err = fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", formatKey(ctx, found), val)

	return err
}

func doCheck(ctx *cli.Context, qp *byteTrie, log *zap.Logger) error {
	if err := qp.Verify(); err != nil {
		log.Error("trie is corrupted", zap.Error(err))

		return err
	}

	st := qp.Stats()

	log.Info("trie is consistent",
		zap.Int("leaves", st.Leaves),
		zap.Int("branches", st.Branches),
		zap.Int("height", st.Height),
		zap.Int("max-fanout", st.MaxFanout),
	)

	_, err := fmt.Fprintf(ctx.App.Writer, "leaves=%d branches=%d height=%d max-fanout=%d\n",
		st.Leaves, st.Branches, st.Height, st.MaxFanout)

	return err
}

func doDump(ctx *cli.Context, qp *byteTrie, _ *zap.Logger) error {
	return qp.Dump(ctx.App.Writer)
}
