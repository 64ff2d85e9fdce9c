package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/core/ports/driving"
	"github.com/alao-ohio/roster/internal/logger"
	"github.com/alao-ohio/roster/internal/pipeline"
)

// Ensure Cleaner implements the interface.
var _ driving.CleanService = (*Cleaner)(nil)

// Cleaner drives a roster through read, drop, normalise and write.
type Cleaner struct {
	settings driving.SettingsService
	factory  driven.PipelineFactory
	readers  map[string]driven.TableReader
	writers  map[string]driven.TableWriter
	runs     driven.RunStore
	watcher  driven.FileWatcher

	now   func() time.Time
	newID func() string
}

// NewCleaner creates a new cleaner. Readers and writers are selected by
// file extension; a later adapter wins when two claim the same one.
// runs and watcher are optional: without runs no history is recorded,
// without watcher Watch fails.
func NewCleaner(
	settings driving.SettingsService,
	factory driven.PipelineFactory,
	readers []driven.TableReader,
	writers []driven.TableWriter,
	runs driven.RunStore,
	watcher driven.FileWatcher,
) *Cleaner {
	c := &Cleaner{
		settings: settings,
		factory:  factory,
		readers:  make(map[string]driven.TableReader),
		writers:  make(map[string]driven.TableWriter),
		runs:     runs,
		watcher:  watcher,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, r := range readers {
		for _, ext := range r.Extensions() {
			c.readers[strings.ToLower(ext)] = r
		}
	}
	for _, w := range writers {
		for _, ext := range w.Extensions() {
			c.writers[strings.ToLower(ext)] = w
		}
	}
	return c
}

// Clean runs the pipeline once. The returned run is recorded in history
// whether or not the clean succeeded, unless the request skips history.
func (c *Cleaner) Clean(ctx context.Context, req driving.CleanRequest) (*domain.Run, error) {
	settings, err := c.resolve(req)
	if err != nil {
		return nil, err
	}

	run := &domain.Run{
		ID:         c.newID(),
		InputPath:  settings.InputPath,
		OutputPath: settings.OutputPath,
		StartedAt:  c.now().UTC(),
	}

	logger.Section("Clean")
	logger.Info("run %s: %s -> %s", run.ID, run.InputPath, run.OutputPath)

	err = c.clean(ctx, settings, run)

	run.EndedAt = c.now().UTC()
	if err != nil {
		run.Error = err.Error()
		logger.Warn("run %s failed: %v", run.ID, err)
	} else {
		logger.Info("run %s: %d rows, %d cells changed in %s",
			run.ID, run.Rows, run.Changed(), run.Duration())
	}

	if !req.SkipHistory && c.runs != nil {
		// A cancelled run is still recorded
		if saveErr := c.runs.SaveRun(context.WithoutCancel(ctx), run); saveErr != nil {
			logger.Warn("recording run %s: %v", run.ID, saveErr)
		}
	}

	return run, err
}

func (c *Cleaner) clean(ctx context.Context, settings *domain.CleanSettings, run *domain.Run) error {
	if sameFile(settings.InputPath, settings.OutputPath) {
		return fmt.Errorf("%w: output would overwrite input %s", domain.ErrInvalidInput, settings.InputPath)
	}

	reader, err := c.reader(settings.InputPath)
	if err != nil {
		return err
	}
	writer, err := c.writer(settings.OutputPath)
	if err != nil {
		return err
	}

	table, err := reader.Read(ctx, settings.InputPath, driven.ReadOptions{
		MissingMarkers:   settings.MissingMarkers,
		NormalizeUnicode: settings.NormalizeUnicode,
	})
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	run.Rows = table.Len()
	logger.Info("read %d rows, %d columns", table.Len(), len(table.Columns))

	dropped, err := table.Drop(settings.DropColumns, settings.Strict)
	if err != nil {
		return fmt.Errorf("drop columns: %w", err)
	}
	run.Dropped = dropped
	if skipped := len(uniqueSet(settings.DropColumns)) - len(dropped); skipped > 0 {
		logger.Warn("%d drop columns not present in %s", skipped, settings.InputPath)
	}

	bindings := settings.Bindings
	if !settings.Strict {
		bindings = presentBindings(table, bindings)
	}

	p, err := c.factory.Build(bindings, ruleConfig(settings))
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}

	stats, err := p.Apply(ctx, table)
	run.Columns = stats
	if err != nil {
		return fmt.Errorf("normalise: %w", err)
	}

	if err := writer.Write(ctx, settings.OutputPath, table, driven.WriteOptions{
		Index: settings.WriteIndex,
		RunID: run.ID,
	}); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("wrote %s", settings.OutputPath)

	return nil
}

// Watch runs Clean once, then again after each change to the input file,
// until ctx is cancelled.
func (c *Cleaner) Watch(ctx context.Context, req driving.CleanRequest, onRun func(*domain.Run, error)) error {
	if c.watcher == nil {
		return fmt.Errorf("%w: file watching is not available", domain.ErrInvalidInput)
	}
	if onRun == nil {
		onRun = func(*domain.Run, error) {}
	}

	settings, err := c.resolve(req)
	if err != nil {
		return err
	}

	changes, err := c.watcher.Watch(ctx, settings.InputPath)
	if err != nil {
		return fmt.Errorf("watch input: %w", err)
	}
	logger.Info("watching %s", settings.InputPath)

	onRun(c.Clean(ctx, req))

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			onRun(c.Clean(ctx, req))
		}
	}
}

// NormaliseValue applies a single rule to one value.
func (c *Cleaner) NormaliseValue(rule domain.Rule, value string) (string, error) {
	settings, err := c.settings.Get()
	if err != nil {
		return "", err
	}

	n, err := c.factory.Normaliser(rule.String(), ruleConfig(settings)[rule.String()])
	if err != nil {
		return "", err
	}

	out := n.Normalise([]domain.Value{domain.Text(value)})
	if len(out) != 1 {
		return "", fmt.Errorf("%w: %s returned %d values", domain.ErrColumnLength, rule, len(out))
	}
	return out[0], nil
}

// Rules returns the registered rule names, sorted.
func (c *Cleaner) Rules() []string {
	return c.factory.Rules()
}

// resolve loads settings and applies request overrides.
func (c *Cleaner) resolve(req driving.CleanRequest) (*domain.CleanSettings, error) {
	settings, err := c.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if req.InputPath != "" {
		settings.InputPath = req.InputPath
	}
	if req.OutputPath != "" {
		settings.OutputPath = req.OutputPath
	}
	if req.Strict != nil {
		settings.Strict = *req.Strict
	}
	if req.WriteIndex != nil {
		settings.WriteIndex = *req.WriteIndex
	}

	return settings, nil
}

func (c *Cleaner) reader(path string) (driven.TableReader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	r, ok := c.readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: cannot read %q files", domain.ErrUnsupportedFormat, ext)
	}
	return r, nil
}

func (c *Cleaner) writer(path string) (driven.TableWriter, error) {
	ext := strings.ToLower(filepath.Ext(path))
	w, ok := c.writers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: cannot write %q files", domain.ErrUnsupportedFormat, ext)
	}
	return w, nil
}

// ruleConfig builds per-rule builder settings.
func ruleConfig(settings *domain.CleanSettings) map[string]map[string]any {
	cfg := make(map[string]map[string]any)
	if len(settings.OrganizationAliases) > 0 {
		cfg[domain.RuleOrganization.String()] = map[string]any{
			pipeline.AliasesKey: settings.OrganizationAliases,
		}
	}
	return cfg
}

// presentBindings drops bindings for columns the table lacks, logging each.
func presentBindings(table *domain.Table, bindings []domain.ColumnBinding) []domain.ColumnBinding {
	present := make([]domain.ColumnBinding, 0, len(bindings))
	for _, b := range bindings {
		if !table.Has(b.Column) {
			logger.Warn("column %q not present, skipping %s", b.Column, b.Rule)
			continue
		}
		present = append(present, b)
	}
	return present
}

func uniqueSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
