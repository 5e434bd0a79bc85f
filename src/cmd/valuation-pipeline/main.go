package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"valuation-report/src/pkg/config"
	"valuation-report/src/pkg/extract"
	"valuation-report/src/pkg/report"
	"valuation-report/src/pkg/util"
	"valuation-report/src/pkg/workbook"
)

/*
main runs the full weekly valuation pipeline.

-xlsx can be:
  - a single workbook file (.xlsx/.xlsm)
  - a directory containing workbooks (.xlsx/.xlsm)

For each workbook:
 1. Extract the ProjectRecord into an output run directory
 2. Save record.json and a copy of the original workbook there
 3. Render and save the standalone HTML report
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	xlsxPath := flag.String("xlsx", "", "Path to a valuation workbook OR a directory with workbooks (.xlsx/.xlsm).")
	outputDirPath := flag.String("out", "", "Directory where run artifacts will be stored. Defaults to report_out_dir from config.")

	flag.Parse()
	util.RequiredFlag(xlsxPath, "xlsx")
	util.EnsureFlags()
	config.InitializeConfig(*configPath)

	outDir := *outputDirPath
	if outDir == "" {
		outDir = config.Cfg.ReportOutDir
	}

	// Build year-month suffix like "september-2026".
	currentTime := time.Now()
	monthName := strings.ToLower(currentTime.Month().String())
	yearValue := currentTime.Year()
	yearMonthDirName := fmt.Sprintf("%s-%04d", monthName, yearValue)

	finalOutputDirPath := filepath.Join(outDir, yearMonthDirName)

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Config path: '%s'",
		"Running full valuation pipeline", *configPath,
	)
	tl.Log(
		tl.Info1, palette.Cyan, "%s '%s'",
		"Using output directory", finalOutputDirPath,
	)

	workbooksToProcess, e := resolveWorkbooksToProcess(*xlsxPath)
	e.QuitIf("error")

	if len(workbooksToProcess) == 0 {
		tl.Log(
			tl.Warning, palette.PurpleBold, "No .xlsx/.xlsm files found at: '%s'",
			*xlsxPath,
		)
		os.Exit(0)
	}

	if len(workbooksToProcess) > 1 {
		tl.Log(
			tl.Notice1, palette.GreenBold, "Found '%d' workbooks to process",
			len(workbooksToProcess),
		)
	}

	processedCount := 0
	skippedCount := 0

	for _, wbPath := range workbooksToProcess {
		tl.Log(tl.Notice, palette.BlueBold, "%s '%s'", "Processing workbook", wbPath)

		runDirPath, e := processOneWorkbook(wbPath, finalOutputDirPath)
		if e != nil {
			skippedCount++
			tl.Log(
				tl.Error, palette.RedBold, "Failed processing '%s': '%s'",
				wbPath, e,
			)
			continue
		}

		processedCount++
		tl.Log(
			tl.Notice1, palette.GreenBold, "%s. Results stored in '%s'",
			"Extraction+report completed", runDirPath,
		)
	}

	tl.Log(
		tl.Notice, palette.GreenBold, "Done. Processed: '%d', skipped: '%d'",
		processedCount, skippedCount,
	)
}

func resolveWorkbooksToProcess(inputPath string) (workbooks []string, e *xerr.Error) {
	trimmed := strings.TrimSpace(inputPath)
	if trimmed == "" {
		err := fmt.Errorf("input path is empty")
		e = xerr.NewError(err, "missing -xlsx input", inputPath)
		return
	}

	info, statErr := os.Stat(trimmed)
	if statErr != nil {
		e = xerr.NewError(statErr, "stat -xlsx input path", trimmed)
		return
	}

	if info.IsDir() {
		return listWorkbooksInDir(trimmed)
	}

	// File path
	ext := strings.ToLower(filepath.Ext(trimmed))
	if !isAllowedWorkbookExt(ext) {
		err := fmt.Errorf("unsupported workbook extension: %s", ext)
		e = xerr.NewError(err, "input file is not .xlsx/.xlsm", trimmed)
		return
	}

	return []string{trimmed}, nil
}

func listWorkbooksInDir(dirPath string) (workbooks []string, e *xerr.Error) {
	entries, readErr := os.ReadDir(dirPath)
	if readErr != nil {
		e = xerr.NewError(readErr, "read directory", dirPath)
		return
	}

	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}

		// Excel leaves ~$-prefixed lock files next to open workbooks.
		if strings.HasPrefix(ent.Name(), "~$") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(ent.Name()))
		if !isAllowedWorkbookExt(ext) {
			continue
		}

		workbooks = append(workbooks, filepath.Join(dirPath, ent.Name()))
	}

	sort.Strings(workbooks)
	return
}

func isAllowedWorkbookExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}

func processOneWorkbook(xlsxPath string, finalOutputDirPath string) (runDirPath string, e *xerr.Error) {
	xlsxBytes, readErr := os.ReadFile(xlsxPath)
	if readErr != nil {
		e = xerr.NewError(readErr, "read workbook file", xlsxPath)
		return
	}

	wb, e := workbook.LoadWorkbook(xlsxBytes)
	if e != nil {
		return "", e
	}

	record, e := extract.ProcessWorkbook(wb)
	if e != nil {
		return "", e
	}

	// Run directory name: short project name + timestamp, unique per run.
	runStamp := time.Now().Format("2006-01-02_15-04-05")
	runDirName := fmt.Sprintf("%s-%s", strings.ReplaceAll(record.ShortName, " ", "_"), runStamp)
	runDirPath = filepath.Join(finalOutputDirPath, runDirName)

	mkdirErr := os.MkdirAll(runDirPath, 0o755)
	if mkdirErr != nil {
		e = xerr.NewError(mkdirErr, "create run directory", runDirPath)
		return "", e
	}

	// Keep a copy of the original workbook next to the artifacts.
	origPath := filepath.Join(runDirPath, "orig"+strings.ToLower(filepath.Ext(xlsxPath)))
	writeErr := os.WriteFile(origPath, xlsxBytes, 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "copy original workbook", origPath)
		return "", e
	}

	recordPath := filepath.Join(runDirPath, "record.json")
	jsonBytes, marshalErr := json.MarshalIndent(record, "", "  ")
	if marshalErr != nil {
		e = xerr.NewError(marshalErr, "marshal project record to JSON", runDirPath)
		return "", e
	}
	writeErr = os.WriteFile(recordPath, jsonBytes, 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write record.json file", recordPath)
		return "", e
	}

	tl.LogJSON(tl.Verbose, palette.CyanDim, "ProjectRecord", record)

	htmlDocument, fileName := report.Generate(record)
	reportPath := filepath.Join(runDirPath, fileName)
	writeErr = os.WriteFile(reportPath, []byte(htmlDocument), 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write report file", reportPath)
		return "", e
	}

	tl.Log(
		tl.Info, palette.Green, "%s to '%s'",
		"Saved report", reportPath,
	)

	return runDirPath, nil
}
