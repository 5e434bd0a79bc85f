package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"

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
main turns one valuation workbook into a standalone HTML report:

 1. Load the .xlsx into memory
 2. Extract the ProjectRecord (RES-COSTO, RVAL, optional CURVA)
 3. Render the report and save it under -out with its conventional name
*/
func main() {
	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// Program-specific flags.
	xlsxPath := flag.String("xlsx", "", "Path to the weekly valuation workbook (.xlsx).")
	outputDirPath := flag.String("out", "", "Directory for the generated report. Defaults to report_out_dir from config.")
	saveRecord := flag.Bool("json", false, "Also save the extracted record as JSON next to the report.")

	flag.Parse()
	util.RequiredFlag(xlsxPath, "xlsx")
	util.EnsureFlags()
	config.InitializeConfig(*configPath)

	outDir := *outputDirPath
	if outDir == "" {
		outDir = config.Cfg.ReportOutDir
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Workbook: '%s'",
		"Running report generation", *xlsxPath,
	)

	reportPath, e := generateReportFile(*xlsxPath, outDir, *saveRecord)
	e.QuitIf("error")

	tl.Log(
		tl.Notice, palette.GreenBold, "%s. Report saved to '%s'",
		"Report generation completed", reportPath,
	)
}

func generateReportFile(xlsxPath string, outDir string, saveRecord bool) (reportPath string, e *xerr.Error) {
	xlsxBytes, readErr := os.ReadFile(xlsxPath)
	if readErr != nil {
		e = xerr.NewError(readErr, "read workbook file", xlsxPath)
		return
	}

	wb, e := workbook.LoadWorkbook(xlsxBytes)
	if e != nil {
		return
	}

	record, e := extract.ProcessWorkbook(wb)
	if e != nil {
		return
	}

	htmlDocument, fileName := report.Generate(record)

	mkdirErr := os.MkdirAll(outDir, 0o755)
	if mkdirErr != nil {
		e = xerr.NewError(mkdirErr, "create output directory", outDir)
		return
	}

	reportPath = filepath.Join(outDir, fileName)
	writeErr := os.WriteFile(reportPath, []byte(htmlDocument), 0o644)
	if writeErr != nil {
		e = xerr.NewError(writeErr, "write report file", reportPath)
		return
	}

	if saveRecord {
		recordPath := strings.TrimSuffix(reportPath, ".html") + ".json"
		jsonBytes, marshalErr := json.MarshalIndent(record, "", "  ")
		if marshalErr != nil {
			e = xerr.NewError(marshalErr, "marshal project record to JSON", recordPath)
			return
		}
		writeErr = os.WriteFile(recordPath, jsonBytes, 0o644)
		if writeErr != nil {
			e = xerr.NewError(writeErr, "write project record JSON", recordPath)
			return
		}
		tl.Log(tl.Info, palette.Green, "%s to '%s'", "Saved project record", recordPath)
	}

	return reportPath, nil
}
