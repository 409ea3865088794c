package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/prov"
)

// resultFetcher is the part of the result client used by the result command.
type resultFetcher interface {
	FetchResult(ctx context.Context, id string) (core.Result, error)
}

func runResult(ctx context.Context, arg *args, id string, out io.Writer) error {
	if err := initLogger(arg); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(arg)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return printResult(ctx, prov.New(cfg.API), id, out)
}

func printResult(ctx context.Context, client resultFetcher, id string, out io.Writer) error {
	res, err := client.FetchResult(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch result: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, res, "", "  "); err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}

	buf.WriteByte('\n')

	if _, err := buf.WriteTo(out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
