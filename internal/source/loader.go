// Package source orchestrates dataset ingestion: remote fetch first, local
// workbook on failure, hard stop only when both are unavailable.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"ilm-dashboard/internal/cache"
	"ilm-dashboard/internal/ilm"
	"ilm-dashboard/internal/sheets"
)

// ErrSourceUnavailable signals that neither the remote source nor the local
// fallback produced a usable Virtual Access dataset.
var ErrSourceUnavailable = errors.New("no data source available")

// Loader binds the two fetchers to the worksheet names and assembles
// canonical tables from whichever source responds.
type Loader struct {
	remote   sheets.Fetcher
	fallback sheets.Fetcher
	vaSheet  string
	taSheet  string
}

// NewLoader creates a loader. Either fetcher may be nil to disable that path.
func NewLoader(remote, fallback sheets.Fetcher, vaSheet, taSheet string) *Loader {
	return &Loader{remote: remote, fallback: fallback, vaSheet: vaSheet, taSheet: taSheet}
}

// Load produces a complete snapshot. The remote source is authoritative;
// any remote failure (fetch or reconciliation) falls back to the workbook.
// The TA worksheet is optional on both paths: a missing worksheet degrades
// to an empty TA table instead of failing the snapshot.
func (l *Loader) Load(ctx context.Context) (*cache.Snapshot, error) {
	if l.remote != nil {
		snap, err := l.loadFrom(ctx, l.remote, ilm.SourceRemote)
		if err == nil {
			return snap, nil
		}
		log.Warn().Err(err).Msg("Remote source unavailable, trying workbook fallback")
	}

	if l.fallback != nil {
		snap, err := l.loadFrom(ctx, l.fallback, ilm.SourceLocal)
		if err == nil {
			return snap, nil
		}
		log.Error().Err(err).Msg("Workbook fallback unavailable")
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return nil, ErrSourceUnavailable
}

func (l *Loader) loadFrom(ctx context.Context, f sheets.Fetcher, src ilm.Source) (*cache.Snapshot, error) {
	var vaRaw, taRaw *sheets.RawSheet

	// The two worksheets are independent reads of the same source.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vaRaw, err = f.Fetch(gctx, l.vaSheet)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", l.vaSheet, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		taRaw, err = f.Fetch(gctx, l.taSheet)
		if err != nil && !errors.Is(err, sheets.ErrWorksheetNotFound) {
			return fmt.Errorf("fetch %s: %w", l.taSheet, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	va, err := ilm.Assemble(ilm.VirtualAccess, vaRaw.Header, vaRaw.Rows, src)
	if err != nil {
		return nil, fmt.Errorf("assemble VA: %w", err)
	}

	var ta *ilm.Table
	if taRaw == nil {
		log.Warn().Str("worksheet", l.taSheet).Msg("TA worksheet missing, dataset empty")
		ta, _ = ilm.EmptyTable(ilm.TransnationalAccess, src)
	} else {
		ta, err = ilm.Assemble(ilm.TransnationalAccess, taRaw.Header, taRaw.Rows, src)
		if err != nil {
			// A rejected TA header degrades to an empty dataset rather than
			// a partially populated one; VA keeps rendering.
			log.Error().Err(err).Msg("TA reconciliation rejected, dataset empty")
			ta, _ = ilm.EmptyTable(ilm.TransnationalAccess, src)
		}
	}

	log.Info().
		Str("source", string(src)).
		Int("vaRecords", va.Len()).
		Int("taRecords", ta.Len()).
		Msg("Snapshot assembled")

	return &cache.Snapshot{VA: va, TA: ta, FetchedAt: time.Now()}, nil
}
