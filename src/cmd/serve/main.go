package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/labstack/echo/v4"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"valuation-report/src/pkg/config"
	echomw "valuation-report/src/pkg/echo-middleware"
	"valuation-report/src/pkg/extract"
	"valuation-report/src/pkg/report"
	"valuation-report/src/pkg/workbook"
)

/*
main runs the report intake server.

POST /reports accepts a multipart upload ("workbook" field, .xlsx) and
responds with the rendered standalone HTML report. The route is bearer
token protected (VAL_REPORT_BEARER_TOKEN) and rate limited per client IP.
*/
func main() {
	config.CheckIfEnvVarsPresent(echomw.EnvIntakeBearerToken)

	// Common flags.
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	flag.Parse()
	config.InitializeConfig(*configPath)

	// The echo-middleware section travels as raw JSON inside the main
	// config; hand it over if present.
	var mwConfig *echomw.Config
	if len(config.Cfg.EchoMiddleware) > 0 {
		parsed := echomw.Config{}
		unmarshalErr := json.Unmarshal(config.Cfg.EchoMiddleware, &parsed)
		if unmarshalErr != nil {
			tl.Log(
				tl.Warning, palette.YellowDim, "Unable to parse %s config section: '%s'. Keeping %s",
				"echo_middleware", unmarshalErr, "defaults",
			)
		} else {
			mwConfig = &parsed
		}
	}
	echomw.InitializeConfig(mwConfig)
	echomw.UptdateRateLimits(echomw.Cfg.MiddlewareRateLimit, echomw.Cfg.MiddlewareBurst)

	server := echo.New()
	server.HideBanner = true
	server.Use(echomw.RouteAccessLoggerMiddleware)
	server.Use(echomw.RateLimiterMiddleware)

	server.GET("/healthz", handleHealthz)
	server.POST("/reports", handleGenerateReport, echomw.RequireBearerToken)

	address := fmt.Sprintf("%s:%d", echomw.Cfg.Address, echomw.Cfg.Port)
	tl.Log(tl.Notice, palette.BlueBold, "%s on '%s'", "Starting report intake server", address)

	startErr := server.Start(address)
	xerr.QuitIfError(startErr, "Unable to start the intake server")
}

func handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func handleGenerateReport(c echo.Context) error {
	fileHeader, formErr := c.FormFile("workbook")
	if formErr != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "missing multipart field 'workbook'",
		})
	}

	upload, openErr := fileHeader.Open()
	if openErr != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "unable to open uploaded file",
		})
	}
	defer upload.Close()

	xlsxBytes, readErr := io.ReadAll(upload)
	if readErr != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "unable to read uploaded file",
		})
	}

	tl.Log(
		tl.Info, palette.Cyan, "Received workbook '%s' ('%d' bytes)",
		fileHeader.Filename, len(xlsxBytes),
	)

	wb, e := workbook.LoadWorkbook(xlsxBytes)
	if e != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": fmt.Sprintf("%s", e),
		})
	}

	record, e := extract.ProcessWorkbook(wb)
	if e != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": fmt.Sprintf("%s", e),
		})
	}

	htmlDocument, fileName := report.Generate(record)

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, fileName),
	)

	// Reports compress well; honor brotli when the client offers it.
	if strings.Contains(c.Request().Header.Get("Accept-Encoding"), "br") {
		var compressed bytes.Buffer
		brotliWriter := brotli.NewWriter(&compressed)
		_, writeErr := brotliWriter.Write([]byte(htmlDocument))
		closeErr := brotliWriter.Close()
		if writeErr == nil && closeErr == nil {
			c.Response().Header().Set(echo.HeaderContentEncoding, "br")
			return c.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, compressed.Bytes())
		}
		tl.Log(tl.Warning, palette.YellowDim, "%s, sending the report uncompressed", "Brotli compression failed")
	}

	return c.HTML(http.StatusOK, htmlDocument)
}
