// Package main implements the namemagic command, a one-shot terminal front end
// for revealing the fun meaning of a name.
//
// Usage:
//
//	namemagic reveal --lang hindi Aria
//	namemagic reveal --share Aria
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(defaultDeps())
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
