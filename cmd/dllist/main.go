// Command dllist seeds a list from a JSON config and logs the result of
// each list operation.
package main

import (
	"errors"
	"flag"
	log "log/slog"
	"os"

	dllist "go-dllist"
)

func main() {
	path := flag.String("config", "", "path to a JSON config file")
	flag.Parse()

	config, err := LoadConfig(*path)
	if err != nil {
		log.Error("load config", "path", *path, "error", err)
		os.Exit(1)
	}
	lvl, err := config.Level()
	if err != nil {
		log.Error("load config", "path", *path, "error", err)
		os.Exit(1)
	}
	log.SetDefault(log.New(log.NewTextHandler(os.Stderr, &log.HandlerOptions{Level: lvl})))

	if err := run(config); err != nil {
		log.Error("run", "error", err)
		os.Exit(1)
	}
}

func run(config *Config) error {
	l := dllist.New[int]()
	var handles []dllist.Handle[int]
	for _, v := range config.Values {
		handles = append(handles, l.AddToTail(v))
		log.Debug("add to tail", "value", v, "len", l.Len())
	}
	log.Info("seeded", "values", snapshot(l), "len", l.Len())

	if len(handles) > 1 {
		if err := l.MoveToFront(handles[len(handles)-1]); err != nil {
			return err
		}
		log.Info("move to front", "values", snapshot(l))
		if err := l.MoveToEnd(handles[0]); err != nil {
			return err
		}
		log.Info("move to end", "values", snapshot(l))
	}

	best, err := dllist.Max(l)
	switch {
	case errors.Is(err, dllist.ErrEmptyList):
		log.Warn("max of empty list")
	case err != nil:
		return err
	default:
		log.Info("max", "value", best)
	}

	for l.Len() > 0 {
		v, _ := l.RemoveFromHead()
		log.Debug("remove from head", "value", v, "len", l.Len())
	}
	if _, ok := l.RemoveFromTail(); !ok {
		log.Info("drained", "len", l.Len())
	}
	return l.Verify()
}

func snapshot(l *dllist.List[int]) []int {
	out := make([]int, 0, l.Len())
	for h, ok := l.Head(); ok; h, ok = l.Next(h) {
		v, _ := l.Value(h)
		out = append(out, v)
	}
	return out
}
