package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driving"
)

// mockCleanService implements driving.CleanService for testing.
type mockCleanService struct {
	lastReq   driving.CleanRequest
	run       *domain.Run
	err       error
	watchRuns int
}

func (m *mockCleanService) Clean(_ context.Context, req driving.CleanRequest) (*domain.Run, error) {
	m.lastReq = req
	return m.run, m.err
}

func (m *mockCleanService) Watch(ctx context.Context, req driving.CleanRequest, onRun func(*domain.Run, error)) error {
	m.lastReq = req
	for i := 0; i < m.watchRuns; i++ {
		onRun(m.run, m.err)
	}
	return nil
}

func (m *mockCleanService) NormaliseValue(rule domain.Rule, value string) (string, error) {
	if !rule.IsValid() {
		return "", domain.ErrUnknownRule
	}
	return string(rule) + ":" + value, nil
}

func (m *mockCleanService) Rules() []string {
	rules := domain.AllRules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.String()
	}
	return names
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings    domain.CleanSettings
	saved       *domain.CleanSettings
	validateErr error
	path        string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultCleanSettings(), path: "/nonexistent/config.toml"}
}

func (m *mockSettingsService) Get() (*domain.CleanSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.CleanSettings) error {
	m.saved = settings
	return nil
}

func (m *mockSettingsService) Validate() error { return m.validateErr }

func (m *mockSettingsService) GetDefaults() domain.CleanSettings {
	return domain.DefaultCleanSettings()
}

func (m *mockSettingsService) Path() string { return m.path }

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	runs      []domain.Run
	lastLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Run, error) {
	m.lastLimit = limit
	return m.runs, nil
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type testServices struct {
	clean    *mockCleanService
	settings *mockSettingsService
	history  *mockHistoryService
}

func sampleRun() *domain.Run {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Run{
		ID:         "0f8c2d4e-1111-2222-3333-444455556666",
		InputPath:  "data/raw/ALAOdata.csv",
		OutputPath: "data/processed/ALAOdata-clean.csv",
		StartedAt:  started,
		EndedAt:    started.Add(1500 * time.Millisecond),
		Rows:       42,
		Dropped:    []string{"Password", "Notes"},
		Columns: []domain.ColumnStats{
			{Column: "Work Phone", Rule: "phone", Changed: 30, Blanked: 2, Missing: 5},
		},
	}
}

// setupServices installs mocks and returns a restore function.
func setupServices(t *testing.T) (*testServices, func()) {
	t.Helper()
	oldClean, oldSettings, oldHistory := cleanService, settingsService, historyService

	svc := &testServices{
		clean:    &mockCleanService{run: sampleRun()},
		settings: newMockSettingsService(),
		history:  &mockHistoryService{runs: []domain.Run{*sampleRun()}},
	}
	SetServices(svc.clean, svc.settings, svc.history)

	return svc, func() {
		SetServices(oldClean, oldSettings, oldHistory)
	}
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
