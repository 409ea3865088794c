package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/conv"
	"github.com/ksysoev/feedsurvey-tgbot/pkg/i18n"
)

// ObtainResult looks up the result of a submitted survey by its id.
// With an empty id the respondent is asked to type one in.
func (s *Service) ObtainResult(ctx context.Context, userID, id string) (*Response, error) {
	c, tbl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	id = strings.TrimSpace(id)
	if id != "" {
		return s.fetchResult(ctx, c, tbl, id)
	}

	if c.Active() {
		return &Response{Message: tbl.T("obtain.errorIdRequired")}, nil
	}

	return s.askResultID(ctx, c, tbl)
}

func (s *Service) askResultID(ctx context.Context, c *conv.Conversation, tbl *i18n.Table) (*Response, error) {
	if err := c.AwaitResultID(); err != nil {
		return nil, fmt.Errorf("failed to start result lookup: %w", err)
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	resp := s.prompt(c, tbl)
	if c.LastResultID != "" {
		resp.Answers = []string{c.LastResultID}
	}

	return resp, nil
}

// fetchResult loads and renders the result document. Lookup failures are reported to the respondent,
// anything else is returned as an error.
func (s *Service) fetchResult(ctx context.Context, c *conv.Conversation, tbl *i18n.Table, id string) (*Response, error) {
	if id == "" {
		return &Response{Message: tbl.T("obtain.errorIdRequired")}, nil
	}

	res, err := s.prov.FetchResult(ctx, id)

	var fetchErr *FetchError

	switch {
	case errors.Is(err, ErrNotFound):
		return &Response{Message: tbl.T("obtain.errorNotFound")}, nil
	case errors.As(err, &fetchErr):
		if fetchErr.Message == "" {
			return &Response{Message: tbl.T("result.loadError")}, nil
		}

		return &Response{Message: fetchErr.Message}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to fetch result: %w", err)
	}

	if c.State == conv.StateAwaitingResultID {
		c.Reset()

		if err := s.save(ctx, c); err != nil {
			return nil, err
		}
	}

	return &Response{Message: formatResult(tbl, id, res)}, nil
}

func formatResult(tbl *i18n.Table, id string, res Result) string {
	var body bytes.Buffer
	if err := json.Indent(&body, res, "", "  "); err != nil {
		body.Reset()
		body.Write(res)
	}

	return tbl.T("result.title") + "\n\n" + tbl.Tf("result.id", id) + "\n\n" + body.String()
}
