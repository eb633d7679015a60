// Package export hands rendered letters to a headless browser's print pipeline.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// DefaultTimeout bounds one print job, browser start-up included.
const DefaultTimeout = 30 * time.Second

// A4 paper in inches, the unit the print API expects.
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// ErrEmptyDocument is returned when there is no HTML to print.
var ErrEmptyDocument = errors.New("export: empty document")

// PrintOptions configure a print job. Zero values select A4, one-inch
// margins and DefaultTimeout.
type PrintOptions struct {
	Timeout      time.Duration
	PaperWidth   float64 // inches
	PaperHeight  float64 // inches
	MarginInches float64
	Landscape    bool
	// ExecPath selects a browser binary; empty searches the usual locations.
	ExecPath string
}

func (o PrintOptions) withDefaults() PrintOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.PaperWidth <= 0 {
		o.PaperWidth = a4Width
	}
	if o.PaperHeight <= 0 {
		o.PaperHeight = a4Height
	}
	if o.MarginInches <= 0 {
		o.MarginInches = 1
	}
	return o
}

// PrintError wraps a failure inside the browser
type PrintError struct {
	Message string
	Cause   error
}

func (e *PrintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("print error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("print error: %s", e.Message)
}

func (e *PrintError) Unwrap() error {
	return e.Cause
}

// Printer prints HTML documents to PDF.
type Printer interface {
	PrintPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromePrinter drives a headless Chrome/Chromium found on the system.
type ChromePrinter struct {
	opts   PrintOptions
	logger *zap.Logger
}

// NewChromePrinter returns a Printer backed by headless Chrome.
func NewChromePrinter(opts PrintOptions, logger *zap.Logger) *ChromePrinter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChromePrinter{opts: opts.withDefaults(), logger: logger}
}

// PrintPDF loads html into a blank page and prints it to PDF bytes.
// Requires Chrome/Chromium to be installed on the system.
func (p *ChromePrinter) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, ErrEmptyDocument
	}

	start := time.Now()
	p.logger.Debug("starting headless browser for print", zap.Int("html_bytes", len(html)))

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p.opts.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, p.opts.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(p.opts.Landscape).
				WithPaperWidth(p.opts.PaperWidth).
				WithPaperHeight(p.opts.PaperHeight).
				WithMarginTop(p.opts.MarginInches).
				WithMarginBottom(p.opts.MarginInches).
				WithMarginLeft(p.opts.MarginInches).
				WithMarginRight(p.opts.MarginInches).
				Do(ctx)
			pdf = buf
			return err
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: "browser print failed", Cause: err}
	}

	p.logger.Debug("printed letter",
		zap.Int("pdf_bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)))

	return pdf, nil
}
