package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"check-compromised/internal/adapters"
	"check-compromised/internal/core"
	"check-compromised/internal/ports"
)

const progressMessage = "Retrieving the versions of the affected packages ..."

// Check enumerates installed packages, intersects them with the
// compromised list and prints the report. Once enumeration has been
// attempted the inventory file is removed exactly once, whatever the
// outcome.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	baseDir := strings.TrimSpace(req.BaseDir)
	if baseDir == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("base directory is required")
	}
	compromisedPath := resolvePath(baseDir, req.CompromisedPath)
	if compromisedPath == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("compromised list path is required")
	}
	inventoryPath := resolvePath(baseDir, req.InventoryPath)
	if inventoryPath == "" {
		return CheckResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("inventory path is required")
	}
	ecosystem, err := core.ParseEcosystem(req.Ecosystem)
	if err != nil {
		return CheckResult{}, err
	}
	installedReader, err := s.installedReader(req)
	if err != nil {
		return CheckResult{}, err
	}
	enumerator := s.enumerator(req, baseDir)
	out := s.out()

	defer s.cleanup(inventoryPath)

	fmt.Fprintln(out, progressMessage)
	if err := enumerator.Enumerate(ctx, inventoryPath); err != nil {
		return CheckResult{}, err
	}
	fmt.Fprintf(out, "%s generated.\n", filepath.Base(inventoryPath))

	entries, err := s.compromisedList().LoadCompromised(compromisedPath)
	if err != nil {
		return CheckResult{}, err
	}
	set := core.NewCompromisedSet(entries, ecosystem)
	installed, err := installedReader.ReadInstalled(inventoryPath)
	if err != nil {
		return CheckResult{}, err
	}
	result := core.Match(set, installed)
	log.Debug().
		Int("compromised", set.Len()).
		Int("installed", len(installed)).
		Int("matches", len(result.Matches)).
		Str("ecosystem", string(ecosystem)).
		Msg("inventory checked")

	if err := s.reporter().WriteReport(out, result); err != nil {
		return CheckResult{}, err
	}
	checked := CheckResult{
		InventoryPath:    inventoryPath,
		CompromisedCount: set.Len(),
		InstalledCount:   len(installed),
		Result:           result,
	}
	if req.FailOnMatch && !result.Empty() {
		return checked, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("%d compromised packages installed", len(result.Matches)))
	}
	return checked, nil
}

func (s Service) cleanup(path string) {
	if err := s.cleaner().Remove(path); err != nil {
		log.Warn().
			Err(err).
			Str("path", path).
			Msgf("could not remove %s", filepath.Base(path))
	}
}

func (s Service) enumerator(req CheckRequest, baseDir string) ports.EnumeratorPort {
	if s.Enumerator != nil {
		return s.Enumerator
	}
	adapter := adapters.NewScriptEnumeratorAdapter(req.Shell, req.Script, baseDir)
	adapter.Stdout = s.out()
	if s.ErrOut != nil {
		adapter.Stderr = s.ErrOut
	}
	return adapter
}

func (s Service) installedReader(req CheckRequest) (ports.InstalledListPort, error) {
	if s.Installed != nil {
		return s.Installed, nil
	}
	format, err := adapters.ParseInventoryFormat(req.Format)
	if err != nil {
		return nil, err
	}
	return adapters.NewInstalledFileAdapter(format), nil
}

func (s Service) compromisedList() ports.CompromisedListPort {
	if s.Compromised != nil {
		return s.Compromised
	}
	return adapters.NewCompromisedFileAdapter()
}

func (s Service) reporter() ports.ReportPort {
	if s.Reporter != nil {
		return s.Reporter
	}
	return adapters.NewTextReportAdapter()
}

func (s Service) cleaner() ports.TransientFilePort {
	if s.Cleaner != nil {
		return s.Cleaner
	}
	return adapters.NewTransientFileAdapter()
}

func (s Service) out() io.Writer {
	if s.Out == nil {
		return io.Discard
	}
	return s.Out
}

func resolvePath(baseDir string, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
